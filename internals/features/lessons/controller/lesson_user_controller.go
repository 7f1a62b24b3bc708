package controller

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"kelasvideo_backend/internals/features/lessons/dto"
	"kelasvideo_backend/internals/features/lessons/service"
	helper "kelasvideo_backend/internals/helpers"
)

type LessonController struct {
	DB *gorm.DB
}

func NewLessonController(db *gorm.DB) *LessonController {
	return &LessonController{DB: db}
}

// GetLessons: listing utama. Wajib login (middleware). Non-admin hanya dapat
// video approved; filter bahasa via ?lang= ("All" / kosong = semua).
func (ctl *LessonController) GetLessons(c *fiber.Ctx) error {
	role, _ := c.Locals("userRole").(string)
	lang := c.Query("lang")

	lessons, languages, err := service.ListLessons(ctl.DB, role, lang)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil daftar lesson")
	}

	currentLang := lang
	if currentLang == "" {
		currentLang = "All"
	}

	return helper.JsonListEx(c, "ok", dto.ToLessonResponseList(lessons), fiber.Map{
		"languages":    languages,
		"current_lang": currentLang,
	})
}
