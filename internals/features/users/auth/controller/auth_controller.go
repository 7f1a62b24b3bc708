package controller

import (
	"errors"
	"log"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"kelasvideo_backend/internals/configs"
	"kelasvideo_backend/internals/constants"
	"kelasvideo_backend/internals/features/users/auth/dto"
	authHelper "kelasvideo_backend/internals/features/users/auth/helper"
	"kelasvideo_backend/internals/features/users/auth/model"
	authRepo "kelasvideo_backend/internals/features/users/auth/repository"
	authService "kelasvideo_backend/internals/features/users/auth/service"
	helper "kelasvideo_backend/internals/helpers"
)

var validate = validator.New()

// Pesan login gagal sengaja satu macam: user tidak ada vs password salah
// tidak boleh kelihatan bedanya.
const msgLoginFailed = "Username atau password salah"

type AuthController struct {
	DB  *gorm.DB
	Cfg *configs.Config
}

func NewAuthController(db *gorm.DB, cfg *configs.Config) *AuthController {
	return &AuthController{DB: db, Cfg: cfg}
}

// ========================== REGISTER ==========================
// Registrasi publik SELALU menghasilkan role student. Teacher/admin dibuat
// lewat provisioning di luar alur ini.
func (ctl *AuthController) Register(c *fiber.Ctx) error {
	var input dto.RegisterRequest
	if err := c.BodyParser(&input); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validate.Struct(&input); err != nil {
		return helper.JsonValidationError(c, fieldErrors(err))
	}

	taken, err := authRepo.IsUserNameTaken(ctl.DB, input.UserName)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Internal Server Error")
	}
	if taken {
		return helper.JsonError(c, fiber.StatusConflict, "Username sudah terdaftar")
	}

	passwordHash, err := authHelper.HashPassword(input.Password)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Password hashing failed")
	}

	user := model.UserModel{
		UserName:     input.UserName,
		UserPassword: passwordHash,
		UserRole:     constants.RoleStudent,
	}
	if err := authRepo.CreateUser(ctl.DB, &user); err != nil {
		// dua request balapan bisa lolos pre-check; unique index yang menang
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return helper.JsonError(c, fiber.StatusConflict, "Username sudah terdaftar")
		}
		log.Println("[ERROR] Gagal create user:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Internal Server Error")
	}

	return helper.JsonCreated(c, "Registrasi berhasil", dto.ToUserResponse(&user))
}

// ========================== LOGIN ==========================
func (ctl *AuthController) Login(c *fiber.Ctx) error {
	var input dto.LoginRequest
	if err := c.BodyParser(&input); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validate.Struct(&input); err != nil {
		return helper.JsonValidationError(c, fieldErrors(err))
	}

	user, err := authRepo.FindUserByUserName(ctl.DB, input.UserName)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusUnauthorized, msgLoginFailed)
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Internal Server Error")
	}
	if err := authHelper.CheckPasswordHash(user.UserPassword, input.Password); err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, msgLoginFailed)
	}

	token, err := authService.IssueAccessToken(ctl.Cfg, user.UserName)
	if err != nil {
		log.Println("[ERROR] Gagal menerbitkan token:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Internal Server Error")
	}

	c.Cookie(&fiber.Cookie{
		Name:     "access_token",
		Value:    token,
		HTTPOnly: true,
		SameSite: "Lax",
		Expires:  time.Now().Add(ctl.Cfg.TokenTTL),
	})

	return helper.JsonOK(c, "Login berhasil", dto.LoginResponse{
		AccessToken: token,
		User:        dto.ToUserResponse(user),
	})
}

// ========================== LOGOUT ==========================
func (ctl *AuthController) Logout(c *fiber.Ctx) error {
	c.Cookie(&fiber.Cookie{
		Name:     "access_token",
		Value:    "",
		HTTPOnly: true,
		SameSite: "Lax",
		Expires:  time.Now().Add(-time.Hour),
	})
	return helper.JsonOK(c, "Logout berhasil", nil)
}

// ========================== ME ==========================
func (ctl *AuthController) Me(c *fiber.Ctx) error {
	return helper.JsonOK(c, "ok", fiber.Map{
		"user_id":   c.Locals("user_id"),
		"user_name": c.Locals("user_name"),
		"user_role": c.Locals("userRole"),
	})
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
