package dto

import (
	"kelasvideo_backend/internals/features/users/auth/model"
)

type RegisterRequest struct {
	UserName string `json:"user_name" form:"user_name" validate:"required,min=3,max=50"`
	Password string `json:"password" form:"password" validate:"required,min=8,max=72"`
}

type LoginRequest struct {
	UserName string `json:"user_name" form:"user_name" validate:"required"`
	Password string `json:"password" form:"password" validate:"required"`
}

type UserResponse struct {
	UserID   string `json:"user_id"`
	UserName string `json:"user_name"`
	UserRole string `json:"user_role"`
}

func ToUserResponse(u *model.UserModel) UserResponse {
	return UserResponse{
		UserID:   u.UserID.String(),
		UserName: u.UserName,
		UserRole: u.UserRole,
	}
}

type LoginResponse struct {
	AccessToken string       `json:"access_token"`
	User        UserResponse `json:"user"`
}
