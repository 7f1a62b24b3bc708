package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"kelasvideo_backend/internals/configs"
	controller "kelasvideo_backend/internals/features/lessons/controller"
	"kelasvideo_backend/internals/helpers/storage"
)

// LessonTeacherRoutes: upload video. Mount di group teacher-or-admin.
func LessonTeacherRoutes(router fiber.Router, db *gorm.DB, cfg *configs.Config, media storage.VideoStorage) {
	uploadController := controller.NewUploadController(db, cfg, media)

	router.Post("/lessons/upload", uploadController.PostUpload)
}
