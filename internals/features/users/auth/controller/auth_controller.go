// file: internals/features/users/auth/controller/auth_controller.go
package controller

import (
	"errors"
	"log"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"catatanku_backend/internals/configs"
	authDTO "catatanku_backend/internals/features/users/auth/dto"
	authModel "catatanku_backend/internals/features/users/auth/model"
	authService "catatanku_backend/internals/features/users/auth/service"
	adminModel "catatanku_backend/internals/features/users/admins/model"
	helper "catatanku_backend/internals/helpers"
	helperAuth "catatanku_backend/internals/helpers/auth"
)

type AuthController struct {
	DB        *gorm.DB
	Validator interface{ Struct(any) error }
}

func NewAuthController(db *gorm.DB, v interface{ Struct(any) error }) *AuthController {
	return &AuthController{DB: db, Validator: v}
}

/* =========================================================
   LOGIN — email + access key (bcrypt)
   ========================================================= */

func (h *AuthController) Login(c *fiber.Ctx) error {
	var p authDTO.LoginRequest
	if err := c.BodyParser(&p); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	p.Normalize()
	if err := h.Validator.Struct(p); err != nil {
		return helper.JsonValidationError(c, err)
	}

	var admin adminModel.AdminModel
	if err := h.DB.WithContext(c.UserContext()).
		Where("lower(admin_email) = ? AND admin_deleted_at IS NULL", p.Email).
		First(&admin).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			// pesan sengaja sama dengan access key salah
			return helper.JsonError(c, fiber.StatusUnauthorized, "Email atau access key salah")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal memuat data admin")
	}
	if !admin.AdminIsActive {
		return helper.JsonError(c, fiber.StatusForbidden, "Akun Anda telah dinonaktifkan")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(admin.AdminAccessKeyHash), []byte(p.AccessKey)); err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Email atau access key salah")
	}

	access, refresh, err := authService.IssueTokenPair(h.DB, admin, c.Get("User-Agent"), c.IP())
	if err != nil {
		log.Printf("[AUTH] issue token gagal: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal membuat token")
	}

	return helper.JsonOK(c, "Login berhasil", authDTO.LoginResponse{
		AccessToken:  access,
		RefreshToken: refresh,
		Admin:        authDTO.FromAdminModel(admin),
	})
}

/* =========================================================
   REFRESH — rotate refresh token
   ========================================================= */

func (h *AuthController) Refresh(c *fiber.Ctx) error {
	// body dulu, fallback cookie
	var p authDTO.RefreshRequest
	_ = c.BodyParser(&p)
	refresh := strings.TrimSpace(p.RefreshToken)
	if refresh == "" {
		refresh = strings.TrimSpace(c.Cookies("refresh_token"))
	}
	if refresh == "" {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Refresh token tidak ada")
	}

	adminID, err := authService.ParseRefreshToken(refresh)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Refresh token invalid")
	}

	known, err := authService.RefreshHashExists(h.DB, refresh)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "DB error")
	}
	if !known {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Refresh token tidak dikenal")
	}

	var admin adminModel.AdminModel
	if err := h.DB.First(&admin, "admin_id = ? AND admin_deleted_at IS NULL", adminID).Error; err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Admin tidak ditemukan")
	}
	if !admin.AdminIsActive {
		return helper.JsonError(c, fiber.StatusForbidden, "Akun dinonaktifkan")
	}

	// ROTATE: hapus hash lama
	if err := authService.DeleteRefreshTokenByHash(h.DB, refresh); err != nil {
		log.Printf("[refresh] delete old hash failed: %v", err)
	}

	access, newRefresh, err := authService.IssueTokenPair(h.DB, admin, c.Get("User-Agent"), c.IP())
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal membuat token baru")
	}

	return helper.JsonOK(c, "Token diperbarui", authDTO.LoginResponse{
		AccessToken:  access,
		RefreshToken: newRefresh,
		Admin:        authDTO.FromAdminModel(admin),
	})
}

/* =========================================================
   LOGOUT — blacklist access token sampai exp
   ========================================================= */

func (h *AuthController) Logout(c *fiber.Ctx) error {
	authHeader := strings.TrimSpace(c.Get(fiber.HeaderAuthorization))
	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return helper.JsonError(c, fiber.StatusBadRequest, "Authorization header tidak valid")
	}
	tokenString := strings.TrimSpace(parts[1])

	// ambil exp dari token (tanpa peduli valid/tidaknya signature sisa klaim)
	expiredAt := time.Now().Add(authService.AccessTTL)
	claims := jwt.MapClaims{}
	parser := jwt.Parser{SkipClaimsValidation: true}
	if _, err := parser.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		return []byte(configs.JWTSecret), nil
	}); err == nil {
		if expFloat, ok := claims["exp"].(float64); ok {
			expiredAt = time.Unix(int64(expFloat), 0)
		}
	}

	row := authModel.TokenBlacklist{Token: tokenString, ExpiredAt: expiredAt}
	if err := h.DB.Create(&row).Error; err != nil {
		if helper.IsUniqueViolation(err) {
			return helper.JsonOK(c, "Sudah logout", nil)
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal logout")
	}

	// refresh token ikut dicabut bila dikirim
	if refresh := strings.TrimSpace(c.Cookies("refresh_token")); refresh != "" {
		_ = authService.DeleteRefreshTokenByHash(h.DB, refresh)
	}

	return helper.JsonOK(c, "Logout berhasil", nil)
}

/* =========================================================
   ME — verifikasi role + scope dari token
   ========================================================= */

func (h *AuthController) Me(c *fiber.Ctx) error {
	adminID, err := helperAuth.GetAdminID(c)
	if err != nil {
		if fe, ok := err.(*fiber.Error); ok {
			return helper.JsonError(c, fe.Code, fe.Message)
		}
		return helper.JsonError(c, fiber.StatusUnauthorized, "Unauthorized")
	}

	var admin adminModel.AdminModel
	if err := h.DB.First(&admin, "admin_id = ? AND admin_deleted_at IS NULL", adminID).Error; err != nil {
		status, msg := helper.TranslateDBError(err, "Admin tidak ditemukan", "")
		return helper.JsonError(c, status, msg)
	}

	return helper.JsonOK(c, "OK", authDTO.FromAdminModel(admin))
}
