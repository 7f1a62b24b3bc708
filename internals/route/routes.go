// file: internals/route/routes.go
package routes

import (
	"log"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"kelasvideo_backend/internals/configs"
	"kelasvideo_backend/internals/constants"
	lessonRoutes "kelasvideo_backend/internals/features/lessons/route"
	authRoutes "kelasvideo_backend/internals/features/users/auth/route"
	"kelasvideo_backend/internals/helpers/storage"
	rateLimiter "kelasvideo_backend/internals/middlewares"
	authMiddleware "kelasvideo_backend/internals/middlewares/auth"
)

func SetupRoutes(app *fiber.App, db *gorm.DB, cfg *configs.Config, media storage.VideoStorage) {
	// rate limiter global
	app.Use(rateLimiter.GlobalRateLimiter())

	// ===================== AUTH =====================
	log.Println("[INFO] Setting up AuthRoutes...")
	authRoutes.AuthRoutes(app, db, cfg)

	// ===================== INFO (public) =====================
	app.Get("/api/info", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"max_file_size_mb":         cfg.MaxUploadBytes / (1024 * 1024),
			"multipart_limit_mb":       cfg.MultipartLimitBytes / (1024 * 1024),
			"supported_video_formats":  constants.SupportedVideoFormats,
			"media_storage_configured": cfg.CloudinaryURL != "",
		})
	})

	// ===================== GROUPS =====================

	// USER (semua role, wajib login)
	log.Println("[INFO] Setting up USER group...")
	user := app.Group("/api/u",
		authMiddleware.AuthMiddleware(db, cfg),
	)

	// TEACHER / ADMIN
	log.Println("[INFO] Setting up TEACHER group...")
	teacher := app.Group("/api/t",
		authMiddleware.AuthMiddleware(db, cfg),
		authMiddleware.OnlyRoles(constants.RoleErrorTeacher("upload video"), constants.TeacherAndAdmin...),
	)

	// ADMIN ONLY
	log.Println("[INFO] Setting up ADMIN group...")
	admin := app.Group("/api/a",
		authMiddleware.AuthMiddleware(db, cfg),
		authMiddleware.OnlyRoles(constants.RoleErrorAdmin("moderasi konten"), constants.AdminOnly...),
	)

	// ===================== MOUNT ROUTES =====================
	log.Println("[INFO] Mounting Lesson routes...")
	lessonRoutes.LessonUserRoutes(user, db)
	lessonRoutes.LessonTeacherRoutes(teacher, db, cfg, media)
	lessonRoutes.LessonAdminRoutes(admin, db, media)
}
