package service

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"kelasvideo_backend/internals/configs"
	"kelasvideo_backend/internals/constants"
	"kelasvideo_backend/internals/features/lessons/model"
	helper "kelasvideo_backend/internals/helpers"
	"kelasvideo_backend/internals/helpers/storage"
)

type UploadInput struct {
	Title    string
	Category string
	Language string

	// content type yang dideklarasikan client di part multipart
	ContentType string
	File        io.Reader
	Uploader    string
}

// ValidateVideoContentType dicek PALING awal, sebelum payload dibaca dan
// sebelum ada panggilan ke media host.
func ValidateVideoContentType(contentType string) error {
	if !constants.IsAllowedVideoType(contentType) {
		return fiber.NewError(fiber.StatusUnsupportedMediaType,
			"Tipe file tidak didukung. Gunakan format video: mp4/avi/mov/webm/quicktime")
	}
	return nil
}

// AcceptUpload menjalankan seluruh alur upload:
// validasi tipe → baca payload (ukuran + kosong) → resolve/create lesson →
// kirim ke media host → simpan video dengan status pending.
func AcceptUpload(ctx context.Context, db *gorm.DB, media storage.VideoStorage, cfg *configs.Config, in UploadInput) (*model.VideoModel, error) {
	if err := ValidateVideoContentType(in.ContentType); err != nil {
		return nil, err
	}

	// Ukuran diukur dengan membaca payload penuh; LimitReader +1 byte cukup
	// untuk tahu batas terlampaui tanpa menampung sisa file.
	payload, err := io.ReadAll(io.LimitReader(in.File, cfg.MaxUploadBytes+1))
	if err != nil {
		return nil, fiber.NewError(fiber.StatusBadRequest, "Gagal membaca file upload")
	}
	if int64(len(payload)) > cfg.MaxUploadBytes {
		return nil, fiber.NewError(fiber.StatusRequestEntityTooLarge,
			fmt.Sprintf("File terlalu besar. Maksimum: %dMB", cfg.MaxUploadBytes/(1024*1024)))
	}
	if len(payload) == 0 {
		return nil, fiber.NewError(fiber.StatusBadRequest, "File kosong, tidak ada yang diupload")
	}

	lesson, err := resolveOrCreateLesson(db, in.Title, in.Category)
	if err != nil {
		return nil, err
	}

	// Lesson yang baru dibuat TIDAK di-rollback kalau langkah storage gagal.
	res, err := media.UploadVideo(ctx, bytes.NewReader(payload), cfg.UploadFolder)
	if err != nil {
		log.Println("[ERROR] Upload ke media host gagal:", err)
		return nil, fiber.NewError(fiber.StatusBadGateway, "Upload ke media host gagal")
	}
	if res == nil || res.SecureURL == "" || res.PublicID == "" {
		log.Println("[ERROR] Media host tidak mengembalikan URL/public_id lengkap")
		return nil, fiber.NewError(fiber.StatusBadGateway, "Media host tidak mengembalikan data lengkap")
	}

	video := model.VideoModel{
		VideoLessonID:       lesson.LessonID,
		VideoURL:            res.SecureURL,
		VideoPublicID:       res.PublicID,
		VideoLanguage:       in.Language,
		VideoApprovalStatus: model.StatusPending, // selalu pending, admin pun tidak dapat shortcut
	}
	if err := db.Create(&video).Error; err != nil {
		log.Println("[ERROR] Gagal simpan video:", err)
		return nil, fiber.NewError(fiber.StatusInternalServerError, "Gagal menyimpan video")
	}

	log.Printf("[SUCCESS] Video terupload oleh %s: %s (lesson=%s)", in.Uploader, res.SecureURL, lesson.LessonTitle)
	return &video, nil
}

// resolveOrCreateLesson: match exact judul. Upload pertama mengunci kategori;
// kategori pada upload berikutnya untuk judul yang sama diabaikan diam-diam.
func resolveOrCreateLesson(db *gorm.DB, title, category string) (*model.LessonModel, error) {
	var lesson model.LessonModel
	err := db.Where("lesson_title = ?", title).First(&lesson).Error
	if err == nil {
		return &lesson, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fiber.NewError(fiber.StatusInternalServerError, "Internal Server Error")
	}

	lesson = model.LessonModel{
		LessonTitle:    title,
		LessonCategory: category,
	}
	if err := db.Create(&lesson).Error; err != nil {
		// dua upload serentak dengan judul baru yang sama: unique index yang memutuskan
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			if err2 := db.Where("lesson_title = ?", title).First(&lesson).Error; err2 == nil {
				return &lesson, nil
			}
		}
		return nil, fiber.NewError(fiber.StatusInternalServerError, "Gagal membuat lesson")
	}
	return &lesson, nil
}

// SetLessonThumbnail: fitur pelengkap, re-encode gambar ke WebP lalu upload
// sebagai image. Kegagalan di sini tidak menggagalkan upload video.
func SetLessonThumbnail(ctx context.Context, db *gorm.DB, media storage.VideoStorage, cfg *configs.Config, lessonID uuid.UUID, r io.Reader, filename string) error {
	webpData, err := helper.ConvertThumbnailToWebP(r, filename)
	if err != nil {
		return err
	}
	res, err := media.UploadImage(ctx, bytes.NewReader(webpData), cfg.UploadFolder+"/thumbnails")
	if err != nil {
		return err
	}
	if res == nil || res.SecureURL == "" {
		return fmt.Errorf("media host tidak mengembalikan URL thumbnail")
	}
	// simpan public_id juga, supaya DeleteLesson bisa membersihkan thumbnail di host
	return db.Model(&model.LessonModel{}).
		Where("lesson_id = ?", lessonID).
		Updates(map[string]interface{}{
			"lesson_thumbnail_url":       res.SecureURL,
			"lesson_thumbnail_public_id": res.PublicID,
		}).Error
}
