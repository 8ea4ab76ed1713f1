// internals/middlewares/auth/claim_utils.go
package auth

import (
	"errors"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"

	helperAuth "catatanku_backend/internals/helpers/auth"
)

// extractBearerToken: Authorization header dulu, fallback cookie access_token
func extractBearerToken(c *fiber.Ctx) (string, error) {
	authHeader := strings.TrimSpace(c.Get(fiber.HeaderAuthorization))
	if authHeader != "" {
		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) == 2 && strings.EqualFold(parts[0], "Bearer") && strings.TrimSpace(parts[1]) != "" {
			return strings.TrimSpace(parts[1]), nil
		}
		return "", errors.New("Format Authorization header tidak valid")
	}
	if tok := strings.TrimSpace(c.Cookies("access_token")); tok != "" {
		return tok, nil
	}
	return "", errors.New("Token tidak ditemukan")
}

// ValidateTokenExpiry memeriksa klaim exp dengan leeway
func ValidateTokenExpiry(claims jwt.MapClaims, leeway time.Duration) error {
	expRaw, ok := claims["exp"]
	if !ok {
		return errors.New("klaim exp tidak ada")
	}
	expFloat, ok := expRaw.(float64)
	if !ok {
		return errors.New("klaim exp bukan angka")
	}
	expTime := time.Unix(int64(expFloat), 0)
	if time.Now().After(expTime.Add(leeway)) {
		return errors.New("token sudah kadaluarsa")
	}
	return nil
}

// StoreClaimsToLocals menyalin sub/role/scope dari klaim ke fiber locals
func StoreClaimsToLocals(c *fiber.Ctx, claims jwt.MapClaims) error {
	sub, _ := claims["sub"].(string)
	if strings.TrimSpace(sub) == "" {
		return fiber.NewError(fiber.StatusUnauthorized, "Unauthorized - Invalid or missing admin ID")
	}
	c.Locals(helperAuth.LocalAdminID, sub)

	if role, ok := claims["role"].(string); ok {
		c.Locals(helperAuth.LocalRole, role)
	}
	if name, ok := claims["name"].(string); ok {
		c.Locals(helperAuth.LocalAdminName, name)
	}
	if branch, ok := claims["scope_branch_id"].(string); ok && branch != "" {
		c.Locals(helperAuth.LocalBranchID, branch)
	}
	if year, ok := claims["scope_year_id"].(string); ok && year != "" {
		c.Locals(helperAuth.LocalYearID, year)
	}
	return nil
}
