// file: internals/middlewares/auth/claim_utils_test.go
package auth

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	helperAuth "catatanku_backend/internals/helpers/auth"
)

func TestExtractBearerToken(t *testing.T) {
	do := func(t *testing.T, header, cookie string) (string, error) {
		t.Helper()
		var gotTok string
		var gotErr error

		app := fiber.New()
		app.Get("/x", func(c *fiber.Ctx) error {
			gotTok, gotErr = extractBearerToken(c)
			return c.SendStatus(fiber.StatusOK)
		})

		req := httptest.NewRequest("GET", "/x", nil)
		if header != "" {
			req.Header.Set(fiber.HeaderAuthorization, header)
		}
		if cookie != "" {
			req.AddCookie(&http.Cookie{Name: "access_token", Value: cookie})
		}
		resp, err := app.Test(req)
		require.NoError(t, err)
		require.Equal(t, fiber.StatusOK, resp.StatusCode)
		return gotTok, gotErr
	}

	t.Run("bearer header", func(t *testing.T) {
		tok, err := do(t, "Bearer abc.def.ghi", "")
		require.NoError(t, err)
		assert.Equal(t, "abc.def.ghi", tok)
	})

	t.Run("case-insensitive scheme", func(t *testing.T) {
		tok, err := do(t, "bearer abc", "")
		require.NoError(t, err)
		assert.Equal(t, "abc", tok)
	})

	t.Run("malformed header", func(t *testing.T) {
		_, err := do(t, "abc", "")
		assert.Error(t, err)
	})

	t.Run("cookie fallback", func(t *testing.T) {
		tok, err := do(t, "", "dari-cookie")
		require.NoError(t, err)
		assert.Equal(t, "dari-cookie", tok)
	})

	t.Run("missing", func(t *testing.T) {
		_, err := do(t, "", "")
		assert.Error(t, err)
	})
}

func TestValidateTokenExpiry(t *testing.T) {
	now := time.Now()

	t.Run("valid", func(t *testing.T) {
		claims := jwt.MapClaims{"exp": float64(now.Add(time.Hour).Unix())}
		assert.NoError(t, ValidateTokenExpiry(claims, 0))
	})

	t.Run("expired", func(t *testing.T) {
		claims := jwt.MapClaims{"exp": float64(now.Add(-time.Hour).Unix())}
		assert.Error(t, ValidateTokenExpiry(claims, 0))
	})

	t.Run("expired but within leeway", func(t *testing.T) {
		claims := jwt.MapClaims{"exp": float64(now.Add(-10 * time.Second).Unix())}
		assert.NoError(t, ValidateTokenExpiry(claims, 30*time.Second))
	})

	t.Run("missing exp", func(t *testing.T) {
		assert.Error(t, ValidateTokenExpiry(jwt.MapClaims{}, 0))
	})

	t.Run("exp wrong type", func(t *testing.T) {
		assert.Error(t, ValidateTokenExpiry(jwt.MapClaims{"exp": "besok"}, 0))
	})
}

func TestStoreClaimsToLocals(t *testing.T) {
	adminID := uuid.New().String()
	branchID := uuid.New().String()

	app := fiber.New()
	app.Get("/x", func(c *fiber.Ctx) error {
		claims := jwt.MapClaims{
			"sub":             adminID,
			"role":            "representative",
			"name":            "Komting 21",
			"scope_branch_id": branchID,
		}
		require.NoError(t, StoreClaimsToLocals(c, claims))

		assert.Equal(t, adminID, c.Locals(helperAuth.LocalAdminID))
		assert.Equal(t, "representative", c.Locals(helperAuth.LocalRole))
		assert.Equal(t, "Komting 21", c.Locals(helperAuth.LocalAdminName))
		assert.Equal(t, branchID, c.Locals(helperAuth.LocalBranchID))
		assert.Nil(t, c.Locals(helperAuth.LocalYearID))
		return c.SendStatus(fiber.StatusOK)
	})

	resp, err := app.Test(httptest.NewRequest("GET", "/x", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
}

func TestStoreClaimsToLocals_MissingSub(t *testing.T) {
	app := fiber.New()
	app.Get("/x", func(c *fiber.Ctx) error {
		err := StoreClaimsToLocals(c, jwt.MapClaims{"role": "admin"})
		assert.Error(t, err)
		return c.SendStatus(fiber.StatusOK)
	})

	resp, err := app.Test(httptest.NewRequest("GET", "/x", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
}
