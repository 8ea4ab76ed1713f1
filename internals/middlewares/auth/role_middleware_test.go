// file: internals/middlewares/auth/role_middleware_test.go
package auth

import (
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"catatanku_backend/internals/constants"
	helperAuth "catatanku_backend/internals/helpers/auth"
)

func statusWithRole(t *testing.T, role string, mw fiber.Handler) int {
	t.Helper()

	app := fiber.New()
	app.Use(func(c *fiber.Ctx) error {
		if role != "" {
			c.Locals(helperAuth.LocalRole, role)
		}
		return c.Next()
	})
	app.Get("/x", mw, func(c *fiber.Ctx) error {
		return c.SendStatus(fiber.StatusOK)
	})

	resp, err := app.Test(httptest.NewRequest("GET", "/x", nil))
	require.NoError(t, err)
	return resp.StatusCode
}

func TestRequireAdmin(t *testing.T) {
	mw := RequireAdmin("kelola subject")

	assert.Equal(t, fiber.StatusOK, statusWithRole(t, constants.RoleAdmin, mw))
	assert.Equal(t, fiber.StatusOK, statusWithRole(t, constants.RoleOwner, mw))
	assert.Equal(t, fiber.StatusForbidden, statusWithRole(t, constants.RoleRepresentative, mw))
	assert.Equal(t, fiber.StatusForbidden, statusWithRole(t, "", mw))
}

func TestRequireRepresentativeOrAbove(t *testing.T) {
	mw := RequireRepresentativeOrAbove("upload resource")

	assert.Equal(t, fiber.StatusOK, statusWithRole(t, constants.RoleRepresentative, mw))
	assert.Equal(t, fiber.StatusOK, statusWithRole(t, constants.RoleAdmin, mw))
	assert.Equal(t, fiber.StatusOK, statusWithRole(t, constants.RoleOwner, mw))
	assert.Equal(t, fiber.StatusForbidden, statusWithRole(t, constants.RoleStudent, mw))
	assert.Equal(t, fiber.StatusForbidden, statusWithRole(t, "", mw))
}

func TestRequireRoles_CustomSet(t *testing.T) {
	mw := RequireRoles("khusus owner", constants.RoleOwner)

	assert.Equal(t, fiber.StatusOK, statusWithRole(t, constants.RoleOwner, mw))
	assert.Equal(t, fiber.StatusForbidden, statusWithRole(t, constants.RoleAdmin, mw))
}
