// internals/middlewares/auth/auth_middleware.go
package auth

import (
	"errors"
	"log"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"kelasvideo_backend/internals/configs"
	authRepo "kelasvideo_backend/internals/features/users/auth/repository"
	authService "kelasvideo_backend/internals/features/users/auth/service"
	helper "kelasvideo_backend/internals/helpers"
)

// Pesan 401 sengaja satu macam: bad signature / malformed / expired / user hilang
// tidak boleh bisa dibedakan dari luar.
const msgUnauthorized = "Unauthorized - Silakan login terlebih dahulu"

func AuthMiddleware(db *gorm.DB, cfg *configs.Config) fiber.Handler {
	return func(c *fiber.Ctx) error {
		// 1) Ambil token (cookie / Bearer)
		tokenString := helper.GetRawAccessToken(c)
		if tokenString == "" {
			return helper.JsonError(c, fiber.StatusUnauthorized, msgUnauthorized)
		}

		// 2) Verifikasi signature + expiry
		username, err := authService.VerifyAccessToken(cfg, tokenString)
		if err != nil {
			log.Println("[WARN] Token ditolak:", err)
			return helper.JsonError(c, fiber.StatusUnauthorized, msgUnauthorized)
		}

		// 3) Subject wajib masih ada di tabel users; user yang dihapus otomatis
		// mematikan semua token lamanya.
		user, err := authRepo.FindUserByUserName(db, username)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return helper.JsonError(c, fiber.StatusUnauthorized, msgUnauthorized)
			}
			log.Println("[ERROR] DB error saat resolve user token:", err)
			return helper.JsonError(c, fiber.StatusInternalServerError, "Internal Server Error")
		}

		// 4) Simpan info ke context
		c.Locals("user_id", user.UserID.String())
		c.Locals("user_name", user.UserName)
		c.Locals("userRole", user.UserRole)
		helper.SetRawAccessToken(c, tokenString)

		return c.Next()
	}
}
