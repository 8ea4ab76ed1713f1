// internals/middlewares/auth/role_middleware.go
package auth

import (
	"github.com/gofiber/fiber/v2"

	"catatanku_backend/internals/constants"
	helperAuth "catatanku_backend/internals/helpers/auth"
)

// RequireRoles menolak request kalau role di token tidak ada di daftar
func RequireRoles(feature string, allowed ...string) fiber.Handler {
	allowedSet := make(map[string]struct{}, len(allowed))
	for _, r := range allowed {
		allowedSet[r] = struct{}{}
	}
	return func(c *fiber.Ctx) error {
		role := helperAuth.GetRole(c)
		if _, ok := allowedSet[role]; !ok {
			return fiber.NewError(fiber.StatusForbidden, constants.RoleErrorAdmin(feature))
		}
		return c.Next()
	}
}

// RequireAdmin: hanya role admin/owner
func RequireAdmin(feature string) fiber.Handler {
	return RequireRoles(feature, constants.AdminAndAbove...)
}

// RequireRepresentativeOrAbove: representative/admin/owner
func RequireRepresentativeOrAbove(feature string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		role := helperAuth.GetRole(c)
		for _, allowed := range constants.RepresentativeAndAbove {
			if role == allowed {
				return c.Next()
			}
		}
		return fiber.NewError(fiber.StatusForbidden, constants.RoleErrorRepresentative(feature))
	}
}
