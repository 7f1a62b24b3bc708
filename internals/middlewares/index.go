package middlewares

import (
	"github.com/gofiber/fiber/v2"

	"kelasvideo_backend/internals/configs"
	loggerMiddleware "kelasvideo_backend/internals/middlewares/logger"
)

// SetupMiddlewares memasang middleware global dengan urutan yang benar:
// recovery paling luar, lalu CORS, access log, dan guard ukuran multipart.
func SetupMiddlewares(app *fiber.App, cfg *configs.Config) {
	app.Use(RecoveryMiddleware())
	app.Use(CorsMiddleware())
	app.Use(loggerMiddleware.LoggerMiddleware())
	app.Use(MultipartSizeGuard(cfg.MultipartLimitBytes))
}
