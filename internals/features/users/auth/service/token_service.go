// internals/features/users/auth/service/token_service.go
package service

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"catatanku_backend/internals/configs"
	authModel "catatanku_backend/internals/features/users/auth/model"
	adminModel "catatanku_backend/internals/features/users/admins/model"
)

const (
	AccessTTL  = 2 * time.Hour
	RefreshTTL = 7 * 24 * time.Hour
)

var (
	ErrMissingSecret = errors.New("JWT secret belum diset")
)

// BuildAccessClaims menyusun klaim access token (sub/role/scope)
func BuildAccessClaims(a adminModel.AdminModel, now time.Time) jwt.MapClaims {
	claims := jwt.MapClaims{
		"sub":  a.AdminID.String(),
		"role": a.AdminRole,
		"name": a.AdminName,
		"iat":  now.Unix(),
		"exp":  now.Add(AccessTTL).Unix(),
	}
	if a.AdminBranchID != nil {
		claims["scope_branch_id"] = a.AdminBranchID.String()
	}
	if a.AdminYearID != nil {
		claims["scope_year_id"] = a.AdminYearID.String()
	}
	return claims
}

func BuildRefreshClaims(adminID uuid.UUID, now time.Time) jwt.MapClaims {
	return jwt.MapClaims{
		"sub": adminID.String(),
		"typ": "refresh",
		"iat": now.Unix(),
		"exp": now.Add(RefreshTTL).Unix(),
	}
}

// IssueTokenPair membuat access+refresh dan menyimpan hash refresh di DB
func IssueTokenPair(db *gorm.DB, a adminModel.AdminModel, userAgent, ip string) (access, refresh string, err error) {
	if configs.JWTSecret == "" || configs.JWTRefreshSecret == "" {
		return "", "", ErrMissingSecret
	}
	now := time.Now().UTC()

	access, err = jwt.NewWithClaims(jwt.SigningMethodHS256, BuildAccessClaims(a, now)).
		SignedString([]byte(configs.JWTSecret))
	if err != nil {
		return "", "", err
	}
	refresh, err = jwt.NewWithClaims(jwt.SigningMethodHS256, BuildRefreshClaims(a.AdminID, now)).
		SignedString([]byte(configs.JWTRefreshSecret))
	if err != nil {
		return "", "", err
	}

	row := authModel.RefreshTokenModel{
		AdminID:   a.AdminID,
		Token:     ComputeRefreshHash(refresh, configs.JWTRefreshSecret),
		ExpiresAt: now.Add(RefreshTTL),
	}
	if userAgent != "" {
		row.UserAgent = &userAgent
	}
	if ip != "" {
		row.IP = &ip
	}
	if err := db.Create(&row).Error; err != nil {
		return "", "", err
	}
	return access, refresh, nil
}

// ComputeRefreshHash: HMAC-SHA256(token, secret) → hex.
// Yang tersimpan di DB hanya hash, token mentah tidak pernah disimpan.
func ComputeRefreshHash(token, secret string) string {
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write([]byte(token))
	return hex.EncodeToString(mac.Sum(nil))
}

// ParseRefreshToken memverifikasi refresh JWT dan mengembalikan admin id
func ParseRefreshToken(refresh string) (uuid.UUID, error) {
	if configs.JWTRefreshSecret == "" {
		return uuid.Nil, ErrMissingSecret
	}
	tok, err := jwt.Parse(refresh, func(t *jwt.Token) (any, error) {
		if t.Method.Alg() != jwt.SigningMethodHS256.Alg() {
			return nil, errors.New("unexpected signing method")
		}
		return []byte(configs.JWTRefreshSecret), nil
	})
	if err != nil || !tok.Valid {
		return uuid.Nil, errors.New("refresh token invalid")
	}
	claims, _ := tok.Claims.(jwt.MapClaims)
	sub, _ := claims["sub"].(string)
	id, err := uuid.Parse(sub)
	if err != nil {
		return uuid.Nil, errors.New("refresh token invalid")
	}
	return id, nil
}

// DeleteRefreshTokenByHash menghapus hash refresh lama (rotate)
func DeleteRefreshTokenByHash(db *gorm.DB, refresh string) error {
	h := ComputeRefreshHash(refresh, configs.JWTRefreshSecret)
	return db.Where("token = ?", h).Delete(&authModel.RefreshTokenModel{}).Error
}

// RefreshHashExists memastikan hash refresh dikenal di DB (belum dirotasi/dicabut)
func RefreshHashExists(db *gorm.DB, refresh string) (bool, error) {
	h := ComputeRefreshHash(refresh, configs.JWTRefreshSecret)
	var exists bool
	err := db.Raw(`SELECT EXISTS(SELECT 1 FROM refresh_tokens WHERE token = ? AND expires_at > now())`, h).
		Scan(&exists).Error
	return exists, err
}
