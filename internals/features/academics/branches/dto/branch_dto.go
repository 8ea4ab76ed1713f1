// file: internals/features/academics/branches/dto/branch_dto.go
package dto

import (
	"strings"

	branchModel "catatanku_backend/internals/features/academics/branches/model"
	helper "catatanku_backend/internals/helpers"
)

/* =========================================================
   CREATE
   ========================================================= */

type CreateBranchRequest struct {
	Code string  `json:"branch_code" validate:"required,min=1,max=40"`
	Name string  `json:"branch_name" validate:"required,min=2,max=120"`
	Desc *string `json:"branch_desc"`

	// Slug opsional — controller auto-generate dari name kalau kosong
	Slug *string `json:"branch_slug" validate:"omitempty,min=1,max=160"`

	IsActive *bool `json:"branch_is_active"`
}

func (r *CreateBranchRequest) Normalize() {
	r.Code = strings.ToUpper(strings.TrimSpace(r.Code))
	r.Name = strings.TrimSpace(r.Name)
	if r.Desc != nil {
		v := strings.TrimSpace(*r.Desc)
		if v == "" {
			r.Desc = nil
		} else {
			r.Desc = &v
		}
	}
	if r.Slug != nil {
		s := helper.Slugify(strings.TrimSpace(*r.Slug), 160)
		if s == "" {
			r.Slug = nil
		} else {
			r.Slug = &s
		}
	}
}

func (r CreateBranchRequest) ToModel(slug string) branchModel.BranchModel {
	m := branchModel.BranchModel{
		BranchCode:     r.Code,
		BranchName:     r.Name,
		BranchSlug:     slug,
		BranchDesc:     r.Desc,
		BranchIsActive: true,
	}
	if r.IsActive != nil {
		m.BranchIsActive = *r.IsActive
	}
	return m
}

/* =========================================================
   UPDATE (partial)
   ========================================================= */

type UpdateBranchRequest struct {
	Code     *string `json:"branch_code" validate:"omitempty,min=1,max=40"`
	Name     *string `json:"branch_name" validate:"omitempty,min=2,max=120"`
	Desc     *string `json:"branch_desc"`
	IsActive *bool   `json:"branch_is_active"`
}

func (r *UpdateBranchRequest) Normalize() {
	if r.Code != nil {
		v := strings.ToUpper(strings.TrimSpace(*r.Code))
		if v == "" {
			r.Code = nil
		} else {
			r.Code = &v
		}
	}
	if r.Name != nil {
		v := strings.TrimSpace(*r.Name)
		if v == "" {
			r.Name = nil
		} else {
			r.Name = &v
		}
	}
	if r.Desc != nil {
		v := strings.TrimSpace(*r.Desc)
		r.Desc = &v // string kosong = hapus desc
	}
}
