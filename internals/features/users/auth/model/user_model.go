package model

import (
	"errors"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"kelasvideo_backend/internals/constants"
)

// Validator instance
var validate = validator.New()

// UserModel merepresentasikan tabel users di database
type UserModel struct {
	UserID       uuid.UUID `gorm:"column:user_id;type:uuid;primaryKey" json:"user_id"`
	UserName     string    `gorm:"column:user_name;size:50;uniqueIndex;not null" json:"user_name" validate:"required,min=3,max=50"`
	UserPassword string    `gorm:"column:user_password;not null" json:"-" validate:"required"`
	UserRole     string    `gorm:"column:user_role;type:varchar(20);not null;default:'student'" json:"user_role" validate:"required,oneof=student teacher admin"`

	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
}

// TableName memastikan nama tabel sesuai dengan skema database
func (UserModel) TableName() string {
	return "users"
}

func (u *UserModel) BeforeCreate(tx *gorm.DB) error {
	if u.UserID == uuid.Nil {
		u.UserID = uuid.New()
	}
	return nil
}

// SetDefaultValues memastikan nilai default sebelum validasi
func (u *UserModel) SetDefaultValues() {
	if u.UserRole == "" {
		u.UserRole = constants.RoleStudent
	}
}

// Validate memeriksa apakah input sesuai aturan yang telah didefinisikan
func (u *UserModel) Validate() error {
	u.SetDefaultValues()

	if err := validate.Struct(u); err != nil {
		if _, ok := err.(validator.ValidationErrors); ok {
			return errors.New("data user tidak valid")
		}
		return err
	}
	return nil
}
