package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ApprovalStatus adalah enum tertutup. Nilai di luar tiga konstanta ini
// ditolak di boundary, bukan pas dipakai.
type ApprovalStatus string

const (
	StatusPending  ApprovalStatus = "pending"
	StatusApproved ApprovalStatus = "approved"
	StatusRejected ApprovalStatus = "rejected"
)

func (s ApprovalStatus) Valid() bool {
	switch s {
	case StatusPending, StatusApproved, StatusRejected:
		return true
	}
	return false
}

const DefaultLanguage = "English"

type VideoModel struct {
	VideoID       uuid.UUID `gorm:"column:video_id;type:uuid;primaryKey" json:"video_id"`
	VideoLessonID uuid.UUID `gorm:"column:video_lesson_id;type:uuid;not null;index" json:"video_lesson_id"`

	// URL tayang + handle delete di media host
	VideoURL      string `gorm:"column:video_url;not null" json:"video_url"`
	VideoPublicID string `gorm:"column:video_public_id;not null" json:"-"`

	VideoLanguage       string         `gorm:"column:video_language;size:50;not null;default:'English'" json:"video_language"`
	VideoApprovalStatus ApprovalStatus `gorm:"column:video_approval_status;type:varchar(20);not null;default:'pending'" json:"video_approval_status"`

	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
}

func (VideoModel) TableName() string {
	return "videos"
}

func (v *VideoModel) BeforeCreate(tx *gorm.DB) error {
	if v.VideoID == uuid.Nil {
		v.VideoID = uuid.New()
	}
	if v.VideoLanguage == "" {
		v.VideoLanguage = DefaultLanguage
	}
	if v.VideoApprovalStatus == "" {
		v.VideoApprovalStatus = StatusPending
	}
	return nil
}
