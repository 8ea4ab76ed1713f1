// file: internals/features/users/auth/dto/auth_dto.go
package dto

import (
	"strings"

	"github.com/google/uuid"

	adminModel "catatanku_backend/internals/features/users/admins/model"
)

/* =========================================================
   LOGIN
   ========================================================= */

type LoginRequest struct {
	Email     string `json:"email" validate:"required,email,max=160"`
	AccessKey string `json:"access_key" validate:"required,min=8,max=128"`
}

func (r *LoginRequest) Normalize() {
	r.Email = strings.ToLower(strings.TrimSpace(r.Email))
	r.AccessKey = strings.TrimSpace(r.AccessKey)
}

type AdminLite struct {
	AdminID       uuid.UUID  `json:"admin_id"`
	AdminEmail    string     `json:"admin_email"`
	AdminName     string     `json:"admin_name"`
	AdminRole     string     `json:"admin_role"`
	AdminBranchID *uuid.UUID `json:"admin_branch_id,omitempty"`
	AdminYearID   *uuid.UUID `json:"admin_year_id,omitempty"`
}

func FromAdminModel(m adminModel.AdminModel) AdminLite {
	return AdminLite{
		AdminID:       m.AdminID,
		AdminEmail:    m.AdminEmail,
		AdminName:     m.AdminName,
		AdminRole:     m.AdminRole,
		AdminBranchID: m.AdminBranchID,
		AdminYearID:   m.AdminYearID,
	}
}

type LoginResponse struct {
	AccessToken  string    `json:"access_token"`
	RefreshToken string    `json:"refresh_token"`
	Admin        AdminLite `json:"admin"`
}

/* =========================================================
   REFRESH / LOGOUT
   ========================================================= */

type RefreshRequest struct {
	RefreshToken string `json:"refresh_token"`
}
