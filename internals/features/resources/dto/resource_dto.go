// file: internals/features/resources/dto/resource_dto.go
package dto

import (
	"strings"

	"github.com/google/uuid"

	resourceModel "catatanku_backend/internals/features/resources/model"
)

/* =========================================================
   CREATE
   ========================================================= */

type CreateResourceRequest struct {
	SubjectID uuid.UUID `json:"resource_subject_id" validate:"required"`
	Type      string    `json:"resource_type" validate:"required,oneof=note assignment paper"`
	Title     string    `json:"resource_title" validate:"required,min=2,max=200"`
	Unit      *int16    `json:"resource_unit" validate:"omitempty,min=1,max=20"`

	FileURL  string  `json:"resource_file_url" validate:"required,url,max=2048"`
	FileSize *int64  `json:"resource_file_size" validate:"omitempty,min=0"`
	FileMime *string `json:"resource_file_mime" validate:"omitempty,max=120"`

	UploadedBy *string `json:"resource_uploaded_by" validate:"omitempty,max=120"`
	IsActive   *bool   `json:"resource_is_active"`
}

func (r *CreateResourceRequest) Normalize() {
	trimPtr := func(pp **string) {
		if pp == nil || *pp == nil {
			return
		}
		v := strings.TrimSpace(**pp)
		if v == "" {
			*pp = nil
			return
		}
		*pp = &v
	}

	r.Type = strings.ToLower(strings.TrimSpace(r.Type))
	r.Title = strings.TrimSpace(r.Title)
	r.FileURL = strings.TrimSpace(r.FileURL)
	trimPtr(&r.FileMime)
	trimPtr(&r.UploadedBy)
}

func (r CreateResourceRequest) ToModel() resourceModel.ResourceModel {
	m := resourceModel.ResourceModel{
		ResourceSubjectID:  r.SubjectID,
		ResourceType:       r.Type,
		ResourceTitle:      r.Title,
		ResourceUnit:       r.Unit,
		ResourceFileURL:    r.FileURL,
		ResourceFileSize:   r.FileSize,
		ResourceFileMime:   r.FileMime,
		ResourceUploadedBy: r.UploadedBy,
		ResourceIsActive:   true,
	}
	if r.IsActive != nil {
		m.ResourceIsActive = *r.IsActive
	}
	return m
}

/* =========================================================
   UPDATE (partial)
   ========================================================= */

type UpdateResourceRequest struct {
	Type     *string `json:"resource_type" validate:"omitempty,oneof=note assignment paper"`
	Title    *string `json:"resource_title" validate:"omitempty,min=2,max=200"`
	Unit     *int16  `json:"resource_unit" validate:"omitempty,min=1,max=20"`
	FileURL  *string `json:"resource_file_url" validate:"omitempty,url,max=2048"`
	FileSize *int64  `json:"resource_file_size" validate:"omitempty,min=0"`
	FileMime *string `json:"resource_file_mime" validate:"omitempty,max=120"`
	IsActive *bool   `json:"resource_is_active"`
}

func (r *UpdateResourceRequest) Normalize() {
	if r.Type != nil {
		v := strings.ToLower(strings.TrimSpace(*r.Type))
		if v == "" {
			r.Type = nil
		} else {
			r.Type = &v
		}
	}
	if r.Title != nil {
		v := strings.TrimSpace(*r.Title)
		if v == "" {
			r.Title = nil
		} else {
			r.Title = &v
		}
	}
	if r.FileURL != nil {
		v := strings.TrimSpace(*r.FileURL)
		if v == "" {
			r.FileURL = nil
		} else {
			r.FileURL = &v
		}
	}
}
