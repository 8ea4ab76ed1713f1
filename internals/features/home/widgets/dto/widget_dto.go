// file: internals/features/home/widgets/dto/widget_dto.go
package dto

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"

	widgetModel "catatanku_backend/internals/features/home/widgets/model"
)

func trimPtr(pp **string) {
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

/* =========================================================
   REMINDER
   ========================================================= */

type CreateReminderRequest struct {
	Title      string     `json:"reminder_title" validate:"required,min=2,max=200"`
	Message    *string    `json:"reminder_message" validate:"omitempty,max=2000"`
	DueAt      time.Time  `json:"reminder_due_at" validate:"required"`
	BranchID   *uuid.UUID `json:"reminder_branch_id"`
	SemesterID *uuid.UUID `json:"reminder_semester_id"`
	IsActive   *bool      `json:"reminder_is_active"`
}

func (r *CreateReminderRequest) Normalize() {
	r.Title = strings.TrimSpace(r.Title)
	trimPtr(&r.Message)
}

func (r CreateReminderRequest) ToModel() widgetModel.ReminderModel {
	m := widgetModel.ReminderModel{
		ReminderTitle:      r.Title,
		ReminderMessage:    r.Message,
		ReminderDueAt:      r.DueAt,
		ReminderBranchID:   r.BranchID,
		ReminderSemesterID: r.SemesterID,
		ReminderIsActive:   true,
	}
	if r.IsActive != nil {
		m.ReminderIsActive = *r.IsActive
	}
	return m
}

type UpdateReminderRequest struct {
	Title      *string    `json:"reminder_title" validate:"omitempty,min=2,max=200"`
	Message    *string    `json:"reminder_message" validate:"omitempty,max=2000"`
	DueAt      *time.Time `json:"reminder_due_at"`
	BranchID   *uuid.UUID `json:"reminder_branch_id"`
	SemesterID *uuid.UUID `json:"reminder_semester_id"`
	IsActive   *bool      `json:"reminder_is_active"`
}

func (r *UpdateReminderRequest) Normalize() {
	trimPtr(&r.Title)
	trimPtr(&r.Message)
}

/* =========================================================
   EXAM
   ========================================================= */

type CreateExamRequest struct {
	SubjectID  *uuid.UUID `json:"exam_subject_id"`
	Title      string     `json:"exam_title" validate:"required,min=2,max=200"`
	StartsAt   time.Time  `json:"exam_starts_at" validate:"required"`
	BranchID   *uuid.UUID `json:"exam_branch_id"`
	SemesterID *uuid.UUID `json:"exam_semester_id"`
	IsActive   *bool      `json:"exam_is_active"`
}

func (r *CreateExamRequest) Normalize() {
	r.Title = strings.TrimSpace(r.Title)
}

func (r CreateExamRequest) ToModel() widgetModel.ExamModel {
	m := widgetModel.ExamModel{
		ExamSubjectID:  r.SubjectID,
		ExamTitle:      r.Title,
		ExamStartsAt:   r.StartsAt,
		ExamBranchID:   r.BranchID,
		ExamSemesterID: r.SemesterID,
		ExamIsActive:   true,
	}
	if r.IsActive != nil {
		m.ExamIsActive = *r.IsActive
	}
	return m
}

type UpdateExamRequest struct {
	SubjectID  *uuid.UUID `json:"exam_subject_id"`
	Title      *string    `json:"exam_title" validate:"omitempty,min=2,max=200"`
	StartsAt   *time.Time `json:"exam_starts_at"`
	BranchID   *uuid.UUID `json:"exam_branch_id"`
	SemesterID *uuid.UUID `json:"exam_semester_id"`
	IsActive   *bool      `json:"exam_is_active"`
}

func (r *UpdateExamRequest) Normalize() {
	trimPtr(&r.Title)
}

/* =========================================================
   RECENT UPDATE
   ========================================================= */

type CreateRecentUpdateRequest struct {
	Title   string            `json:"update_title" validate:"required,min=2,max=200"`
	Body    string            `json:"update_body" validate:"required,min=1"`
	Link    *string           `json:"update_link" validate:"omitempty,url,max=2048"`
	Payload datatypes.JSONMap `json:"update_payload"`
}

func (r *CreateRecentUpdateRequest) Normalize() {
	r.Title = strings.TrimSpace(r.Title)
	r.Body = strings.TrimSpace(r.Body)
	trimPtr(&r.Link)
}

func (r CreateRecentUpdateRequest) ToModel() widgetModel.RecentUpdateModel {
	return widgetModel.RecentUpdateModel{
		UpdateTitle:   r.Title,
		UpdateBody:    r.Body,
		UpdateLink:    r.Link,
		UpdatePayload: r.Payload,
	}
}

type UpdateRecentUpdateRequest struct {
	Title   *string           `json:"update_title" validate:"omitempty,min=2,max=200"`
	Body    *string           `json:"update_body" validate:"omitempty,min=1"`
	Link    *string           `json:"update_link" validate:"omitempty,url,max=2048"`
	Payload datatypes.JSONMap `json:"update_payload"`
}

func (r *UpdateRecentUpdateRequest) Normalize() {
	trimPtr(&r.Title)
	trimPtr(&r.Body)
	trimPtr(&r.Link)
}
