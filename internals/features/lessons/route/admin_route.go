package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	controller "kelasvideo_backend/internals/features/lessons/controller"
	"kelasvideo_backend/internals/helpers/storage"
)

// LessonAdminRoutes: moderasi + hapus lesson. Mount di group admin-only.
func LessonAdminRoutes(router fiber.Router, db *gorm.DB, media storage.VideoStorage) {
	adminController := controller.NewAdminVideoController(db, media)

	router.Get("/videos/pending", adminController.GetPendingVideos)
	router.Patch("/videos/:id/status", adminController.UpdateVideoStatus)
	router.Delete("/lessons/:id", adminController.DeleteLesson)
}
