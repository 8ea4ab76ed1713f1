// file: internals/helpers/auth/claims.go
package auth

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"catatanku_backend/internals/constants"
)

// Locals keys yang diisi AuthMiddleware
const (
	LocalAdminID   = "admin_id"
	LocalRole      = "role"
	LocalBranchID  = "scope_branch_id"
	LocalYearID    = "scope_year_id"
	LocalAdminName = "admin_name"
)

// GetAdminID membaca admin_id dari locals (diisi AuthMiddleware).
func GetAdminID(c *fiber.Ctx) (uuid.UUID, error) {
	raw, _ := c.Locals(LocalAdminID).(string)
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return uuid.Nil, fiber.NewError(fiber.StatusUnauthorized, "Token tidak memuat admin_id")
	}
	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, fiber.NewError(fiber.StatusUnauthorized, "admin_id pada token tidak valid")
	}
	return id, nil
}

func GetRole(c *fiber.Ctx) string {
	role, _ := c.Locals(LocalRole).(string)
	return role
}

// GetRepScope membaca scope representative (branch & year) dari locals.
// nil berarti tidak ada scope (role admin/owner).
func GetRepScope(c *fiber.Ctx) (branchID, yearID *uuid.UUID) {
	if raw, ok := c.Locals(LocalBranchID).(string); ok && raw != "" {
		if id, err := uuid.Parse(raw); err == nil {
			branchID = &id
		}
	}
	if raw, ok := c.Locals(LocalYearID).(string); ok && raw != "" {
		if id, err := uuid.Parse(raw); err == nil {
			yearID = &id
		}
	}
	return
}

// IsAdminOrAbove: role admin/owner bebas scope
func IsAdminOrAbove(c *fiber.Ctx) bool {
	role := GetRole(c)
	return role == constants.RoleAdmin || role == constants.RoleOwner
}

// EnsureBranchScope memastikan caller boleh menyentuh data pada branch tertentu.
// Admin/owner selalu boleh; representative hanya branch miliknya.
func EnsureBranchScope(c *fiber.Ctx, branchID uuid.UUID) error {
	if IsAdminOrAbove(c) {
		return nil
	}
	scopeBranch, _ := GetRepScope(c)
	if scopeBranch != nil && *scopeBranch == branchID {
		return nil
	}
	return fiber.NewError(fiber.StatusForbidden, "Branch di luar scope representative Anda")
}
