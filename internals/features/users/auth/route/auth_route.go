// file: internals/features/users/auth/route/auth_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"kelasvideo_backend/internals/configs"
	controller "kelasvideo_backend/internals/features/users/auth/controller"
	rateLimiter "kelasvideo_backend/internals/middlewares"
	authMiddleware "kelasvideo_backend/internals/middlewares/auth"
)

func AuthRoutes(app *fiber.App, db *gorm.DB, cfg *configs.Config) {
	authController := controller.NewAuthController(db, cfg)

	// ==========================
	// PUBLIC - Base: /api/auth
	// ==========================
	baseAuth := app.Group("/api/auth")

	baseAuth.Post("/login", rateLimiter.LoginRateLimiter(), authController.Login)
	baseAuth.Post("/register", rateLimiter.RegisterRateLimiter(), authController.Register)
	baseAuth.Post("/logout", authController.Logout)

	// ==========================
	// PROTECTED
	// ==========================
	protectedAuth := app.Group("/api/auth", authMiddleware.AuthMiddleware(db, cfg))
	protectedAuth.Get("/me", authController.Me)
}
