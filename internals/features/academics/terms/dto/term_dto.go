// file: internals/features/academics/terms/dto/term_dto.go
package dto

import (
	"strings"

	"github.com/google/uuid"

	termModel "catatanku_backend/internals/features/academics/terms/model"
)

/* =========================================================
   YEAR
   ========================================================= */

type CreateYearRequest struct {
	Number int16  `json:"year_number" validate:"required,min=1,max=4"`
	Label  string `json:"year_label" validate:"required,min=1,max=60"`
}

func (r *CreateYearRequest) Normalize() {
	r.Label = strings.TrimSpace(r.Label)
}

func (r CreateYearRequest) ToModel() termModel.YearModel {
	return termModel.YearModel{
		YearNumber: r.Number,
		YearLabel:  r.Label,
	}
}

type UpdateYearRequest struct {
	Number *int16  `json:"year_number" validate:"omitempty,min=1,max=4"`
	Label  *string `json:"year_label" validate:"omitempty,min=1,max=60"`
}

/* =========================================================
   SEMESTER
   ========================================================= */

type CreateSemesterRequest struct {
	YearID uuid.UUID `json:"semester_year_id" validate:"required"`
	Number int16     `json:"semester_number" validate:"required,min=1,max=8"`
	Label  string    `json:"semester_label" validate:"required,min=1,max=60"`
}

func (r *CreateSemesterRequest) Normalize() {
	r.Label = strings.TrimSpace(r.Label)
}

func (r CreateSemesterRequest) ToModel() termModel.SemesterModel {
	return termModel.SemesterModel{
		SemesterYearID: r.YearID,
		SemesterNumber: r.Number,
		SemesterLabel:  r.Label,
	}
}

type UpdateSemesterRequest struct {
	Number *int16  `json:"semester_number" validate:"omitempty,min=1,max=8"`
	Label  *string `json:"semester_label" validate:"omitempty,min=1,max=60"`
}
