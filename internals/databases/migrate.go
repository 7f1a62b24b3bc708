package database

import (
	"log"

	"gorm.io/gorm"

	lessonModel "kelasvideo_backend/internals/features/lessons/model"
	userModel "kelasvideo_backend/internals/features/users/auth/model"
)

// EnsureSchema menjalankan AutoMigrate + langkah defensif untuk instalasi lama:
// tabel videos yang belum punya kolom status moderasi mendapat kolomnya,
// dan baris yang sudah ada di-backfill ke approved supaya konten lama tetap tampil.
func EnsureSchema(db *gorm.DB) error {
	m := db.Migrator()

	backfill := m.HasTable(&lessonModel.VideoModel{}) &&
		!m.HasColumn(&lessonModel.VideoModel{}, "video_approval_status")

	if backfill {
		log.Println("⚠️ Kolom video_approval_status belum ada, menambahkan...")
		if err := m.AddColumn(&lessonModel.VideoModel{}, "VideoApprovalStatus"); err != nil {
			return err
		}
		if err := db.Model(&lessonModel.VideoModel{}).
			Where("1 = 1").
			Update("video_approval_status", lessonModel.StatusApproved).Error; err != nil {
			return err
		}
		log.Println("✅ Backfill video lama ke status approved selesai.")
	}

	return db.AutoMigrate(
		&userModel.UserModel{},
		&lessonModel.LessonModel{},
		&lessonModel.VideoModel{},
	)
}
