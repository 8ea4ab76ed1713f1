// file: internals/features/users/profiles/dto/profile_dto.go
package dto

import (
	"strings"

	"github.com/google/uuid"

	profileModel "catatanku_backend/internals/features/users/profiles/model"
)

/* =========================================================
   CREATE
   ========================================================= */

type CreateProfileRequest struct {
	Email      string  `json:"profile_email" validate:"required,email,max=160"`
	Name       string  `json:"profile_name" validate:"required,min=2,max=120"`
	CollegeID  *string `json:"profile_college_id" validate:"omitempty,max=40"`

	BranchID   uuid.UUID `json:"profile_branch_id" validate:"required"`
	YearID     uuid.UUID `json:"profile_year_id" validate:"required"`
	SemesterID uuid.UUID `json:"profile_semester_id" validate:"required"`
}

func (r *CreateProfileRequest) Normalize() {
	r.Email = strings.ToLower(strings.TrimSpace(r.Email))
	r.Name = strings.TrimSpace(r.Name)
	if r.CollegeID != nil {
		v := strings.TrimSpace(*r.CollegeID)
		if v == "" {
			r.CollegeID = nil
		} else {
			r.CollegeID = &v
		}
	}
}

func (r CreateProfileRequest) ToModel() profileModel.ProfileModel {
	return profileModel.ProfileModel{
		ProfileEmail:      r.Email,
		ProfileName:       r.Name,
		ProfileCollegeID:  r.CollegeID,
		ProfileBranchID:   r.BranchID,
		ProfileYearID:     r.YearID,
		ProfileSemesterID: r.SemesterID,
	}
}

/* =========================================================
   UPDATE (partial)
   ========================================================= */

type UpdateProfileRequest struct {
	Name       *string    `json:"profile_name" validate:"omitempty,min=2,max=120"`
	CollegeID  *string    `json:"profile_college_id" validate:"omitempty,max=40"`
	BranchID   *uuid.UUID `json:"profile_branch_id"`
	YearID     *uuid.UUID `json:"profile_year_id"`
	SemesterID *uuid.UUID `json:"profile_semester_id"`
}

func (r *UpdateProfileRequest) Normalize() {
	if r.Name != nil {
		v := strings.TrimSpace(*r.Name)
		if v == "" {
			r.Name = nil
		} else {
			r.Name = &v
		}
	}
	if r.CollegeID != nil {
		v := strings.TrimSpace(*r.CollegeID)
		r.CollegeID = &v // string kosong = hapus college id
	}
}
