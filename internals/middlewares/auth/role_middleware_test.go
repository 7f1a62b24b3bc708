package auth

import (
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"kelasvideo_backend/internals/constants"
)

func newRoleApp(role string, allowedRoles ...string) *fiber.App {
	app := fiber.New()
	app.Use(func(c *fiber.Ctx) error {
		if role != "" {
			c.Locals("userRole", role)
		}
		return c.Next()
	})
	app.Get("/protected", OnlyRoles("", allowedRoles...), func(c *fiber.Ctx) error {
		return c.SendString("ok")
	})
	return app
}

func TestOnlyRolesAdminPolicy(t *testing.T) {
	cases := map[string]int{
		constants.RoleAdmin:   fiber.StatusOK,
		constants.RoleTeacher: fiber.StatusForbidden,
		constants.RoleStudent: fiber.StatusForbidden,
	}
	for role, want := range cases {
		app := newRoleApp(role, constants.AdminOnly...)
		resp, err := app.Test(httptest.NewRequest("GET", "/protected", nil))
		require.NoError(t, err)
		assert.Equal(t, want, resp.StatusCode, "role %s", role)
	}
}

func TestOnlyRolesTeacherOrAdminPolicy(t *testing.T) {
	cases := map[string]int{
		constants.RoleAdmin:   fiber.StatusOK,
		constants.RoleTeacher: fiber.StatusOK,
		constants.RoleStudent: fiber.StatusForbidden,
	}
	for role, want := range cases {
		app := newRoleApp(role, constants.TeacherAndAdmin...)
		resp, err := app.Test(httptest.NewRequest("GET", "/protected", nil))
		require.NoError(t, err)
		assert.Equal(t, want, resp.StatusCode, "role %s", role)
	}
}

// Role di luar tiga role kanonik HARUS ditolak, bahkan kalau string-nya
// kebetulan masuk daftar allowed.
func TestOnlyRolesRejectsUnknownRole(t *testing.T) {
	app := newRoleApp("superuser", "superuser")
	resp, err := app.Test(httptest.NewRequest("GET", "/protected", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusForbidden, resp.StatusCode)
}

func TestOnlyRolesMissingRole(t *testing.T) {
	app := newRoleApp("", constants.AdminOnly...)
	resp, err := app.Test(httptest.NewRequest("GET", "/protected", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}
