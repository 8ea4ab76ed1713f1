// file: internals/features/academics/terms/model/term_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type YearModel struct {
	YearID     uuid.UUID `gorm:"column:year_id;type:uuid;default:gen_random_uuid();primaryKey" json:"year_id"`
	YearNumber int16     `gorm:"column:year_number;not null;uniqueIndex:uq_years_number_alive" json:"year_number"`
	YearLabel  string    `gorm:"column:year_label;type:varchar(60);not null" json:"year_label"`

	YearCreatedAt time.Time      `gorm:"column:year_created_at;type:timestamptz;not null;default:now();autoCreateTime" json:"year_created_at"`
	YearUpdatedAt time.Time      `gorm:"column:year_updated_at;type:timestamptz;not null;default:now();autoUpdateTime" json:"year_updated_at"`
	YearDeletedAt gorm.DeletedAt `gorm:"column:year_deleted_at;index" json:"year_deleted_at,omitempty"`
}

func (YearModel) TableName() string { return "years" }

type SemesterModel struct {
	SemesterID     uuid.UUID `gorm:"column:semester_id;type:uuid;default:gen_random_uuid();primaryKey" json:"semester_id"`
	SemesterYearID uuid.UUID `gorm:"column:semester_year_id;type:uuid;not null;index:idx_semesters_year;uniqueIndex:uq_semesters_year_number" json:"semester_year_id"`
	SemesterNumber int16     `gorm:"column:semester_number;not null;uniqueIndex:uq_semesters_year_number" json:"semester_number"`
	SemesterLabel  string    `gorm:"column:semester_label;type:varchar(60);not null" json:"semester_label"`

	SemesterCreatedAt time.Time      `gorm:"column:semester_created_at;type:timestamptz;not null;default:now();autoCreateTime" json:"semester_created_at"`
	SemesterUpdatedAt time.Time      `gorm:"column:semester_updated_at;type:timestamptz;not null;default:now();autoUpdateTime" json:"semester_updated_at"`
	SemesterDeletedAt gorm.DeletedAt `gorm:"column:semester_deleted_at;index" json:"semester_deleted_at,omitempty"`
}

func (SemesterModel) TableName() string { return "semesters" }
