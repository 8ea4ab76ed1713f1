// file: internals/features/home/widgets/model/widget_models.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

/* =========================================================
   REMINDER — disapu scheduler saat due_at lewat
   ========================================================= */

type ReminderModel struct {
	ReminderID      uuid.UUID `gorm:"column:reminder_id;type:uuid;default:gen_random_uuid();primaryKey" json:"reminder_id"`
	ReminderTitle   string    `gorm:"column:reminder_title;type:varchar(200);not null" json:"reminder_title"`
	ReminderMessage *string   `gorm:"column:reminder_message;type:text" json:"reminder_message,omitempty"`
	ReminderDueAt   time.Time `gorm:"column:reminder_due_at;type:timestamptz;not null;index:idx_reminders_due" json:"reminder_due_at"`

	// Scope opsional — NULL berarti tampil untuk semua kombinasi
	ReminderBranchID   *uuid.UUID `gorm:"column:reminder_branch_id;type:uuid;index:idx_reminders_scope" json:"reminder_branch_id,omitempty"`
	ReminderSemesterID *uuid.UUID `gorm:"column:reminder_semester_id;type:uuid;index:idx_reminders_scope" json:"reminder_semester_id,omitempty"`

	ReminderIsActive  bool           `gorm:"column:reminder_is_active;not null;default:true;index:idx_reminders_active" json:"reminder_is_active"`
	ReminderCreatedAt time.Time      `gorm:"column:reminder_created_at;type:timestamptz;not null;default:now();autoCreateTime" json:"reminder_created_at"`
	ReminderUpdatedAt time.Time      `gorm:"column:reminder_updated_at;type:timestamptz;not null;default:now();autoUpdateTime" json:"reminder_updated_at"`
	ReminderDeletedAt gorm.DeletedAt `gorm:"column:reminder_deleted_at;index" json:"reminder_deleted_at,omitempty"`
}

func (ReminderModel) TableName() string { return "reminders" }

/* =========================================================
   EXAM
   ========================================================= */

type ExamModel struct {
	ExamID        uuid.UUID  `gorm:"column:exam_id;type:uuid;default:gen_random_uuid();primaryKey" json:"exam_id"`
	ExamSubjectID *uuid.UUID `gorm:"column:exam_subject_id;type:uuid;index:idx_exams_subject" json:"exam_subject_id,omitempty"`
	ExamTitle     string     `gorm:"column:exam_title;type:varchar(200);not null" json:"exam_title"`
	ExamStartsAt  time.Time  `gorm:"column:exam_starts_at;type:timestamptz;not null;index:idx_exams_starts" json:"exam_starts_at"`

	ExamBranchID   *uuid.UUID `gorm:"column:exam_branch_id;type:uuid;index:idx_exams_scope" json:"exam_branch_id,omitempty"`
	ExamSemesterID *uuid.UUID `gorm:"column:exam_semester_id;type:uuid;index:idx_exams_scope" json:"exam_semester_id,omitempty"`

	ExamIsActive  bool           `gorm:"column:exam_is_active;not null;default:true" json:"exam_is_active"`
	ExamCreatedAt time.Time      `gorm:"column:exam_created_at;type:timestamptz;not null;default:now();autoCreateTime" json:"exam_created_at"`
	ExamUpdatedAt time.Time      `gorm:"column:exam_updated_at;type:timestamptz;not null;default:now();autoUpdateTime" json:"exam_updated_at"`
	ExamDeletedAt gorm.DeletedAt `gorm:"column:exam_deleted_at;index" json:"exam_deleted_at,omitempty"`
}

func (ExamModel) TableName() string { return "exams" }

/* =========================================================
   RECENT UPDATE — payload bebas (JSONB)
   ========================================================= */

type RecentUpdateModel struct {
	UpdateID      uuid.UUID         `gorm:"column:update_id;type:uuid;default:gen_random_uuid();primaryKey" json:"update_id"`
	UpdateTitle   string            `gorm:"column:update_title;type:varchar(200);not null" json:"update_title"`
	UpdateBody    string            `gorm:"column:update_body;type:text;not null" json:"update_body"`
	UpdateLink    *string           `gorm:"column:update_link;type:text" json:"update_link,omitempty"`
	UpdatePayload datatypes.JSONMap `gorm:"column:update_payload;type:jsonb" json:"update_payload,omitempty"`

	UpdateCreatedAt time.Time      `gorm:"column:update_created_at;type:timestamptz;not null;default:now();autoCreateTime" json:"update_created_at"`
	UpdateUpdatedAt time.Time      `gorm:"column:update_updated_at;type:timestamptz;not null;default:now();autoUpdateTime" json:"update_updated_at"`
	UpdateDeletedAt gorm.DeletedAt `gorm:"column:update_deleted_at;index" json:"update_deleted_at,omitempty"`
}

func (RecentUpdateModel) TableName() string { return "recent_updates" }
