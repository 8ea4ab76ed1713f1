// file: internals/features/academics/subjects/dto/subject_dto.go
package dto

import (
	"strings"

	"github.com/google/uuid"

	subjectModel "catatanku_backend/internals/features/academics/subjects/model"
	helper "catatanku_backend/internals/helpers"
)

/* =========================================================
   CREATE
   ========================================================= */

type CreateSubjectRequest struct {
	Code string  `json:"subject_code" validate:"required,min=1,max=40"`
	Name string  `json:"subject_name" validate:"required,min=1,max=120"`
	Desc *string `json:"subject_desc"`

	// Slug: NOT NULL di DB — controller biasanya auto-generate
	Slug *string `json:"subject_slug" validate:"omitempty,min=1,max=160"`

	IsActive *bool `json:"subject_is_active"`
}

func (r *CreateSubjectRequest) Normalize() {
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

	// slug → sanitasi pakai Slugify(…, 160)
	if r.Slug != nil {
		s := helper.Slugify(strings.TrimSpace(*r.Slug), 160)
		if s == "" {
			r.Slug = nil
		} else {
			r.Slug = &s
		}
	}
}

func (r CreateSubjectRequest) ToModel(slug string) subjectModel.SubjectModel {
	m := subjectModel.SubjectModel{
		SubjectCode:     r.Code,
		SubjectName:     r.Name,
		SubjectSlug:     slug,
		SubjectDesc:     r.Desc,
		SubjectIsActive: true,
	}
	if r.IsActive != nil {
		m.SubjectIsActive = *r.IsActive
	}
	return m
}

/* =========================================================
   UPDATE (partial)
   ========================================================= */

type UpdateSubjectRequest struct {
	Code     *string `json:"subject_code" validate:"omitempty,min=1,max=40"`
	Name     *string `json:"subject_name" validate:"omitempty,min=1,max=120"`
	Desc     *string `json:"subject_desc"`
	IsActive *bool   `json:"subject_is_active"`
}

func (r *UpdateSubjectRequest) Normalize() {
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

/* =========================================================
   OFFERING
   ========================================================= */

type CreateOfferingRequest struct {
	SubjectID  uuid.UUID `json:"offering_subject_id" validate:"required"`
	BranchID   uuid.UUID `json:"offering_branch_id" validate:"required"`
	SemesterID uuid.UUID `json:"offering_semester_id" validate:"required"`
	OrderIndex *int      `json:"offering_order_index" validate:"omitempty,min=0"`
}

func (r CreateOfferingRequest) ToModel(orderIndex int) subjectModel.SubjectOfferingModel {
	return subjectModel.SubjectOfferingModel{
		OfferingSubjectID:  r.SubjectID,
		OfferingBranchID:   r.BranchID,
		OfferingSemesterID: r.SemesterID,
		OfferingOrderIndex: orderIndex,
	}
}

// ReorderOfferingsRequest: daftar subject id terurut untuk satu kombinasi
// branch+semester. Semua offering kombinasi tsb harus tercantum.
type ReorderOfferingsRequest struct {
	BranchID   uuid.UUID   `json:"branch_id" validate:"required"`
	SemesterID uuid.UUID   `json:"semester_id" validate:"required"`
	SubjectIDs []uuid.UUID `json:"subject_ids" validate:"required,min=1,dive,required"`
}

/* =========================================================
   RESPONSE — subject + urutan offering
   ========================================================= */

type OrderedSubject struct {
	subjectModel.SubjectModel
	OfferingID         uuid.UUID `json:"offering_id"`
	OfferingOrderIndex int       `json:"offering_order_index"`
}
