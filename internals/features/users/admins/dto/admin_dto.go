// file: internals/features/users/admins/dto/admin_dto.go
package dto

import (
	"strings"

	"github.com/google/uuid"

	adminModel "catatanku_backend/internals/features/users/admins/model"
)

/* =========================================================
   CREATE
   ========================================================= */

type CreateAdminRequest struct {
	Email     string `json:"admin_email" validate:"required,email,max=160"`
	Name      string `json:"admin_name" validate:"required,min=2,max=120"`
	Role      string `json:"admin_role" validate:"required,oneof=representative admin owner"`
	AccessKey string `json:"access_key" validate:"required,min=8,max=128"`

	// scope wajib untuk representative, diabaikan untuk admin/owner
	BranchID *uuid.UUID `json:"admin_branch_id"`
	YearID   *uuid.UUID `json:"admin_year_id"`

	IsActive *bool `json:"admin_is_active"`
}

func (r *CreateAdminRequest) Normalize() {
	r.Email = strings.ToLower(strings.TrimSpace(r.Email))
	r.Name = strings.TrimSpace(r.Name)
	r.Role = strings.ToLower(strings.TrimSpace(r.Role))
	r.AccessKey = strings.TrimSpace(r.AccessKey)
}

func (r CreateAdminRequest) ToModel(accessKeyHash string) adminModel.AdminModel {
	m := adminModel.AdminModel{
		AdminEmail:         r.Email,
		AdminName:          r.Name,
		AdminRole:          r.Role,
		AdminBranchID:      r.BranchID,
		AdminYearID:        r.YearID,
		AdminAccessKeyHash: accessKeyHash,
		AdminIsActive:      true,
	}
	if r.IsActive != nil {
		m.AdminIsActive = *r.IsActive
	}
	return m
}

/* =========================================================
   UPDATE (partial)
   ========================================================= */

type UpdateAdminRequest struct {
	Name      *string    `json:"admin_name" validate:"omitempty,min=2,max=120"`
	Role      *string    `json:"admin_role" validate:"omitempty,oneof=representative admin owner"`
	AccessKey *string    `json:"access_key" validate:"omitempty,min=8,max=128"`
	BranchID  *uuid.UUID `json:"admin_branch_id"`
	YearID    *uuid.UUID `json:"admin_year_id"`
	IsActive  *bool      `json:"admin_is_active"`
}

func (r *UpdateAdminRequest) Normalize() {
	trimPtr := func(pp **string, lower bool) {
		if pp == nil || *pp == nil {
			return
		}
		v := strings.TrimSpace(**pp)
		if v == "" {
			*pp = nil
			return
		}
		if lower {
			v = strings.ToLower(v)
		}
		*pp = &v
	}
	trimPtr(&r.Name, false)
	trimPtr(&r.Role, true)
	trimPtr(&r.AccessKey, false)
}

/* =========================================================
   RESPONSE
   ========================================================= */

type AdminResponse struct {
	AdminID       uuid.UUID  `json:"admin_id"`
	AdminEmail    string     `json:"admin_email"`
	AdminName     string     `json:"admin_name"`
	AdminRole     string     `json:"admin_role"`
	AdminBranchID *uuid.UUID `json:"admin_branch_id,omitempty"`
	AdminYearID   *uuid.UUID `json:"admin_year_id,omitempty"`
	AdminIsActive bool       `json:"admin_is_active"`
}

func FromModel(m adminModel.AdminModel) AdminResponse {
	return AdminResponse{
		AdminID:       m.AdminID,
		AdminEmail:    m.AdminEmail,
		AdminName:     m.AdminName,
		AdminRole:     m.AdminRole,
		AdminBranchID: m.AdminBranchID,
		AdminYearID:   m.AdminYearID,
		AdminIsActive: m.AdminIsActive,
	}
}

func FromModels(ms []adminModel.AdminModel) []AdminResponse {
	out := make([]AdminResponse, 0, len(ms))
	for _, m := range ms {
		out = append(out, FromModel(m))
	}
	return out
}
