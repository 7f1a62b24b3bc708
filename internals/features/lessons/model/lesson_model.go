package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// LessonModel: grouping video berdasarkan judul. Kategori terkunci saat lesson
// pertama kali dibuat oleh upload pertama dengan judul tersebut.
type LessonModel struct {
	LessonID           uuid.UUID `gorm:"column:lesson_id;type:uuid;primaryKey" json:"lesson_id"`
	LessonTitle        string    `gorm:"column:lesson_title;size:255;uniqueIndex;not null" json:"lesson_title"`
	LessonCategory     string    `gorm:"column:lesson_category;size:100;not null" json:"lesson_category"`
	LessonThumbnailURL *string   `gorm:"column:lesson_thumbnail_url" json:"lesson_thumbnail_url,omitempty"`

	// handle delete thumbnail di media host
	LessonThumbnailPublicID string `gorm:"column:lesson_thumbnail_public_id" json:"-"`

	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`

	Videos []VideoModel `gorm:"foreignKey:VideoLessonID;references:LessonID;constraint:OnDelete:CASCADE" json:"videos,omitempty"`
}

func (LessonModel) TableName() string {
	return "lessons"
}

func (l *LessonModel) BeforeCreate(tx *gorm.DB) error {
	if l.LessonID == uuid.Nil {
		l.LessonID = uuid.New()
	}
	return nil
}
