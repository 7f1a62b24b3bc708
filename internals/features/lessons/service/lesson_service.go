package service

import (
	"context"
	"errors"
	"log"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"kelasvideo_backend/internals/constants"
	"kelasvideo_backend/internals/features/lessons/model"
	"kelasvideo_backend/internals/helpers/storage"
)

// ListLessons mengembalikan lessons + daftar bahasa yang ada (untuk filter link).
// Non-admin hanya melihat video approved; admin melihat semua status.
func ListLessons(db *gorm.DB, role, lang string) ([]model.LessonModel, []string, error) {
	var languages []string
	if err := db.Model(&model.VideoModel{}).
		Distinct("video_language").
		Where("video_language <> ''").
		Pluck("video_language", &languages).Error; err != nil {
		return nil, nil, err
	}

	lang = strings.TrimSpace(lang)
	filterLang := lang != "" && lang != "All"

	q := db.Model(&model.LessonModel{}).
		Preload("Videos", func(tx *gorm.DB) *gorm.DB {
			if role != constants.RoleAdmin {
				tx = tx.Where("video_approval_status = ?", model.StatusApproved)
			}
			if filterLang {
				tx = tx.Where("video_language = ?", lang)
			}
			return tx.Order("created_at ASC")
		}).
		Order("lesson_title ASC")

	if filterLang {
		q = q.Where("lesson_id IN (?)",
			db.Model(&model.VideoModel{}).
				Select("video_lesson_id").
				Where("video_language = ?", lang))
	}

	var lessons []model.LessonModel
	if err := q.Find(&lessons).Error; err != nil {
		return nil, nil, err
	}
	return lessons, languages, nil
}

// ListPendingVideos untuk dashboard moderasi admin.
func ListPendingVideos(db *gorm.DB) ([]model.VideoModel, error) {
	var videos []model.VideoModel
	err := db.Where("video_approval_status = ?", model.StatusPending).
		Order("created_at ASC").
		Find(&videos).Error
	return videos, err
}

// UpdateVideoStatus: graf transisi lengkap atas {pending, approved, rejected}.
// Tidak ada pembatasan berdasarkan status asal: rejected boleh dibuka lagi,
// approved boleh ditarik ke pending, dst. Tidak ada history, last-write-wins.
func UpdateVideoStatus(db *gorm.DB, videoID uuid.UUID, newStatus model.ApprovalStatus, actor string) (*model.VideoModel, error) {
	if !newStatus.Valid() {
		return nil, fiber.NewError(fiber.StatusUnprocessableEntity, "Status tidak dikenal")
	}

	var video model.VideoModel
	if err := db.Where("video_id = ?", videoID).First(&video).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fiber.NewError(fiber.StatusNotFound, "Video tidak ditemukan")
		}
		return nil, fiber.NewError(fiber.StatusInternalServerError, "Internal Server Error")
	}

	oldStatus := video.VideoApprovalStatus
	video.VideoApprovalStatus = newStatus
	if err := db.Model(&video).
		Update("video_approval_status", newStatus).Error; err != nil {
		return nil, fiber.NewError(fiber.StatusInternalServerError, "Gagal update status video")
	}

	log.Printf("[INFO] Status video %s: %s → %s (oleh %s)", video.VideoID, oldStatus, newStatus, actor)
	return &video, nil
}

// DeleteLesson: hapus media di host per video (best-effort, kegagalan cuma
// dilog), lalu hapus lesson + semua video dalam SATU transaksi lokal.
// Baris lokal selalu hilang; media remote yang gagal dihapus jadi orphan.
func DeleteLesson(ctx context.Context, db *gorm.DB, media storage.VideoStorage, lessonID uuid.UUID) error {
	var lesson model.LessonModel
	if err := db.Preload("Videos").Where("lesson_id = ?", lessonID).First(&lesson).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "Lesson tidak ditemukan")
		}
		return fiber.NewError(fiber.StatusInternalServerError, "Internal Server Error")
	}

	for i := range lesson.Videos {
		v := &lesson.Videos[i]
		if v.VideoPublicID == "" {
			continue
		}
		if err := media.Destroy(ctx, v.VideoPublicID); err != nil {
			log.Printf("[WARN] Gagal hapus media %s di host: %v", v.VideoPublicID, err)
			continue
		}
		log.Printf("[INFO] Media %s terhapus dari host", v.VideoPublicID)
	}

	// thumbnail ikut dibersihkan, sama-sama best-effort
	if lesson.LessonThumbnailPublicID != "" {
		if err := media.DestroyImage(ctx, lesson.LessonThumbnailPublicID); err != nil {
			log.Printf("[WARN] Gagal hapus thumbnail %s di host: %v", lesson.LessonThumbnailPublicID, err)
		}
	}

	err := db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("video_lesson_id = ?", lesson.LessonID).
			Delete(&model.VideoModel{}).Error; err != nil {
			return err
		}
		return tx.Where("lesson_id = ?", lesson.LessonID).
			Delete(&model.LessonModel{}).Error
	})
	if err != nil {
		log.Println("[ERROR] Gagal hapus lesson:", err)
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal menghapus lesson")
	}
	return nil
}
