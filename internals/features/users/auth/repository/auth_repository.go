package repository

import (
	"github.com/google/uuid"
	"gorm.io/gorm"

	"kelasvideo_backend/internals/features/users/auth/model"
)

func FindUserByUserName(db *gorm.DB, userName string) (*model.UserModel, error) {
	var user model.UserModel
	if err := db.Where("user_name = ?", userName).First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func FindUserByID(db *gorm.DB, id uuid.UUID) (*model.UserModel, error) {
	var user model.UserModel
	if err := db.Where("user_id = ?", id).First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func IsUserNameTaken(db *gorm.DB, userName string) (bool, error) {
	var count int64
	if err := db.Model(&model.UserModel{}).
		Where("user_name = ?", userName).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

func CreateUser(db *gorm.DB, user *model.UserModel) error {
	return db.Create(user).Error
}
