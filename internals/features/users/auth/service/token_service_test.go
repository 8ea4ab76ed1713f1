// file: internals/features/users/auth/service/token_service_test.go
package service

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"catatanku_backend/internals/configs"
	adminModel "catatanku_backend/internals/features/users/admins/model"
)

func withSecrets(t *testing.T) {
	t.Helper()
	oldA, oldR := configs.JWTSecret, configs.JWTRefreshSecret
	configs.JWTSecret = "test-access-secret"
	configs.JWTRefreshSecret = "test-refresh-secret"
	t.Cleanup(func() {
		configs.JWTSecret, configs.JWTRefreshSecret = oldA, oldR
	})
}

func TestBuildAccessClaims(t *testing.T) {
	branchID := uuid.New()
	now := time.Now().UTC()

	a := adminModel.AdminModel{
		AdminID:       uuid.New(),
		AdminName:     "Komting 21",
		AdminRole:     "representative",
		AdminBranchID: &branchID,
	}
	claims := BuildAccessClaims(a, now)

	assert.Equal(t, a.AdminID.String(), claims["sub"])
	assert.Equal(t, "representative", claims["role"])
	assert.Equal(t, "Komting 21", claims["name"])
	assert.Equal(t, branchID.String(), claims["scope_branch_id"])
	assert.NotContains(t, claims, "scope_year_id", "scope nil tidak boleh ikut")
	assert.Equal(t, now.Add(AccessTTL).Unix(), claims["exp"])
}

func TestBuildAccessClaims_NoScope(t *testing.T) {
	a := adminModel.AdminModel{AdminID: uuid.New(), AdminRole: "admin"}
	claims := BuildAccessClaims(a, time.Now())

	assert.NotContains(t, claims, "scope_branch_id")
	assert.NotContains(t, claims, "scope_year_id")
}

func TestParseRefreshToken_RoundTrip(t *testing.T) {
	withSecrets(t)

	adminID := uuid.New()
	refresh, err := jwt.NewWithClaims(jwt.SigningMethodHS256,
		BuildRefreshClaims(adminID, time.Now().UTC())).
		SignedString([]byte(configs.JWTRefreshSecret))
	require.NoError(t, err)

	got, err := ParseRefreshToken(refresh)
	require.NoError(t, err)
	assert.Equal(t, adminID, got)
}

func TestParseRefreshToken_Rejects(t *testing.T) {
	withSecrets(t)
	adminID := uuid.New()

	t.Run("wrong secret", func(t *testing.T) {
		tok, err := jwt.NewWithClaims(jwt.SigningMethodHS256,
			BuildRefreshClaims(adminID, time.Now().UTC())).
			SignedString([]byte("secret-lain"))
		require.NoError(t, err)

		_, err = ParseRefreshToken(tok)
		assert.Error(t, err)
	})

	t.Run("expired", func(t *testing.T) {
		tok, err := jwt.NewWithClaims(jwt.SigningMethodHS256,
			BuildRefreshClaims(adminID, time.Now().UTC().Add(-RefreshTTL-time.Hour))).
			SignedString([]byte(configs.JWTRefreshSecret))
		require.NoError(t, err)

		_, err = ParseRefreshToken(tok)
		assert.Error(t, err)
	})

	t.Run("garbage", func(t *testing.T) {
		_, err := ParseRefreshToken("bukan.jwt.valid")
		assert.Error(t, err)
	})
}

func TestComputeRefreshHash(t *testing.T) {
	h1 := ComputeRefreshHash("token-a", "secret")
	h2 := ComputeRefreshHash("token-a", "secret")
	h3 := ComputeRefreshHash("token-b", "secret")
	h4 := ComputeRefreshHash("token-a", "secret-lain")

	assert.Equal(t, h1, h2, "deterministik")
	assert.NotEqual(t, h1, h3)
	assert.NotEqual(t, h1, h4)
	assert.Len(t, h1, 64, "hex sha256")
	assert.NotContains(t, h1, "token-a", "token mentah tidak boleh bocor")
}
