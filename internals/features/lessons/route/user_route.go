package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	controller "kelasvideo_backend/internals/features/lessons/controller"
)

// LessonUserRoutes: listing untuk semua user yang sudah login.
// Mount di group yang SUDAH dipasangi AuthMiddleware.
func LessonUserRoutes(router fiber.Router, db *gorm.DB) {
	lessonController := controller.NewLessonController(db)

	router.Get("/lessons", lessonController.GetLessons)
}
