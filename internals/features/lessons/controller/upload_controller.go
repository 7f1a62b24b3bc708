package controller

import (
	"log"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"kelasvideo_backend/internals/configs"
	"kelasvideo_backend/internals/features/lessons/dto"
	"kelasvideo_backend/internals/features/lessons/service"
	helper "kelasvideo_backend/internals/helpers"
	"kelasvideo_backend/internals/helpers/storage"
)

var validate = validator.New()

type UploadController struct {
	DB    *gorm.DB
	Cfg   *configs.Config
	Media storage.VideoStorage
}

func NewUploadController(db *gorm.DB, cfg *configs.Config, media storage.VideoStorage) *UploadController {
	return &UploadController{DB: db, Cfg: cfg, Media: media}
}

// PostUpload: teacher & admin. Video yang masuk SELALU pending, siapa pun
// yang mengupload.
func (ctl *UploadController) PostUpload(c *fiber.Ctx) error {
	var input dto.UploadVideoRequest
	if err := c.BodyParser(&input); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validate.Struct(&input); err != nil {
		return helper.JsonValidationError(c, fieldErrors(err))
	}

	fh, err := c.FormFile("video_file")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "File video wajib diisi (field: video_file)")
	}

	src, err := fh.Open()
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Gagal membuka file upload")
	}
	defer src.Close()

	uploader, _ := c.Locals("user_name").(string)
	video, err := service.AcceptUpload(c.UserContext(), ctl.DB, ctl.Media, ctl.Cfg, service.UploadInput{
		Title:       input.Title,
		Category:    input.Category,
		Language:    input.Language,
		ContentType: fh.Header.Get(fiber.HeaderContentType),
		File:        src,
		Uploader:    uploader,
	})
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	// thumbnail opsional; gagal bukan alasan menggagalkan upload video
	if thumbFH, err := c.FormFile("thumbnail"); err == nil && thumbFH != nil {
		if thumbSrc, err := thumbFH.Open(); err == nil {
			defer thumbSrc.Close()
			if err := service.SetLessonThumbnail(c.UserContext(), ctl.DB, ctl.Media, ctl.Cfg,
				video.VideoLessonID, thumbSrc, thumbFH.Filename); err != nil {
				log.Println("[WARN] Gagal set thumbnail lesson:", err)
			}
		}
	}

	return helper.JsonCreated(c, "Video berhasil diupload, menunggu persetujuan admin",
		dto.ToVideoResponse(video))
}

func fieldErrors(err error) map[string][]string {
	out := map[string][]string{}
	if ve, ok := err.(validator.ValidationErrors); ok {
		for _, fe := range ve {
			out[fe.Field()] = append(out[fe.Field()], fe.Tag())
		}
	}
	return out
}
