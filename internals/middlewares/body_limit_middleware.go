package middlewares

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"

	helper "kelasvideo_backend/internals/helpers"
)

// MultipartSizeGuard menolak submit multipart yang Content-Length-nya di atas
// batas server SEBELUM body dibaca. Validasi ukuran per-file yang lebih ketat
// tetap jalan di upload service (baca payload penuh).
func MultipartSizeGuard(limitBytes int64) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if c.Method() != fiber.MethodPost && c.Method() != fiber.MethodPut {
			return c.Next()
		}
		if !strings.Contains(c.Get(fiber.HeaderContentType), "multipart/form-data") {
			return c.Next()
		}
		if cl := c.Get(fiber.HeaderContentLength); cl != "" {
			if n, err := strconv.ParseInt(cl, 10, 64); err == nil && n > limitBytes {
				return helper.JsonError(c, fiber.StatusRequestEntityTooLarge,
					fmt.Sprintf("File terlalu besar. Maksimum: %dMB", limitBytes/(1024*1024)))
			}
		}
		return c.Next()
	}
}
