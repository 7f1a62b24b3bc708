package middlewares

import (
	"bytes"
	"mime/multipart"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// multipartBody membuat body multipart/form-data valid berisi satu field.
func multipartBody(t *testing.T, value string) (*bytes.Buffer, string) {
	t.Helper()
	buf := new(bytes.Buffer)
	w := multipart.NewWriter(buf)
	require.NoError(t, w.WriteField("data", value))
	require.NoError(t, w.Close())
	return buf, w.FormDataContentType()
}

func newGuardApp(limit int64) *fiber.App {
	app := fiber.New()
	app.Use(MultipartSizeGuard(limit))
	app.Post("/upload", func(c *fiber.Ctx) error { return c.SendString("ok") })
	app.Get("/upload", func(c *fiber.Ctx) error { return c.SendString("ok") })
	return app
}

func TestMultipartSizeGuardRejectsOversized(t *testing.T) {
	app := newGuardApp(10)

	body, ct := multipartBody(t, strings.Repeat("x", 64)) // Content-Length > limit 10
	req := httptest.NewRequest("POST", "/upload", body)
	req.Header.Set(fiber.HeaderContentType, ct)

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusRequestEntityTooLarge, resp.StatusCode)
}

func TestMultipartSizeGuardAllowsSmallBody(t *testing.T) {
	app := newGuardApp(1024)

	body, ct := multipartBody(t, "kecil")
	req := httptest.NewRequest("POST", "/upload", body)
	req.Header.Set(fiber.HeaderContentType, ct)

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
}

// Guard hanya berlaku untuk submit multipart; request lain lewat saja.
func TestMultipartSizeGuardIgnoresNonMultipart(t *testing.T) {
	app := newGuardApp(10)

	big := strings.Repeat("x", 64)
	req := httptest.NewRequest("POST", "/upload", strings.NewReader(big))
	req.Header.Set(fiber.HeaderContentType, "application/json")

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	resp, err = app.Test(httptest.NewRequest("GET", "/upload", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
}
