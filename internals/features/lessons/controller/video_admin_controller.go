package controller

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"kelasvideo_backend/internals/features/lessons/dto"
	"kelasvideo_backend/internals/features/lessons/model"
	"kelasvideo_backend/internals/features/lessons/service"
	helper "kelasvideo_backend/internals/helpers"
	"kelasvideo_backend/internals/helpers/storage"
)

type AdminVideoController struct {
	DB    *gorm.DB
	Media storage.VideoStorage
}

func NewAdminVideoController(db *gorm.DB, media storage.VideoStorage) *AdminVideoController {
	return &AdminVideoController{DB: db, Media: media}
}

// GetPendingVideos: daftar moderasi, hanya status pending.
func (ctl *AdminVideoController) GetPendingVideos(c *fiber.Ctx) error {
	videos, err := service.ListPendingVideos(ctl.DB)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil video pending")
	}
	return helper.JsonListEx(c, "ok", dto.ToVideoResponseList(videos), nil)
}

// UpdateVideoStatus: admin boleh pindah ke status mana pun dari status mana pun.
func (ctl *AdminVideoController) UpdateVideoStatus(c *fiber.Ctx) error {
	videoID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID video tidak valid")
	}

	var input dto.UpdateVideoStatusRequest
	if err := c.BodyParser(&input); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validate.Struct(&input); err != nil {
		return helper.JsonValidationError(c, fieldErrors(err))
	}

	actor, _ := c.Locals("user_name").(string)
	video, err := service.UpdateVideoStatus(ctl.DB, videoID, model.ApprovalStatus(input.Status), actor)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	return helper.JsonUpdated(c, "Status video diperbarui", dto.ToVideoResponse(video))
}

// DeleteLesson: hapus lesson + semua videonya. Media remote best-effort.
func (ctl *AdminVideoController) DeleteLesson(c *fiber.Ctx) error {
	lessonID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID lesson tidak valid")
	}

	if err := service.DeleteLesson(c.UserContext(), ctl.DB, ctl.Media, lessonID); err != nil {
		return helper.FromFiberError(c, err)
	}
	return helper.JsonDeleted(c, "Lesson beserta videonya terhapus", fiber.Map{
		"lesson_id": lessonID.String(),
	})
}
