// file: internals/features/users/profiles/model/profile_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ProfileModel struct {
	/* ============ PK ============ */
	ProfileID uuid.UUID `gorm:"column:profile_id;type:uuid;default:gen_random_uuid();primaryKey" json:"profile_id"`

	/* ============ Identitas ============ */
	ProfileEmail     string  `gorm:"column:profile_email;type:varchar(160);not null;uniqueIndex:uq_profiles_email_alive" json:"profile_email"`
	ProfileName      string  `gorm:"column:profile_name;type:varchar(120);not null" json:"profile_name"`
	ProfileCollegeID *string `gorm:"column:profile_college_id;type:varchar(40)" json:"profile_college_id,omitempty"`

	/* ============ Penempatan akademik ============ */
	ProfileBranchID   uuid.UUID `gorm:"column:profile_branch_id;type:uuid;not null;index:idx_profiles_branch" json:"profile_branch_id"`
	ProfileYearID     uuid.UUID `gorm:"column:profile_year_id;type:uuid;not null" json:"profile_year_id"`
	ProfileSemesterID uuid.UUID `gorm:"column:profile_semester_id;type:uuid;not null" json:"profile_semester_id"`

	/* ============ Audit ============ */
	ProfileCreatedAt time.Time      `gorm:"column:profile_created_at;type:timestamptz;not null;default:now();autoCreateTime" json:"profile_created_at"`
	ProfileUpdatedAt time.Time      `gorm:"column:profile_updated_at;type:timestamptz;not null;default:now();autoUpdateTime" json:"profile_updated_at"`
	ProfileDeletedAt gorm.DeletedAt `gorm:"column:profile_deleted_at;index" json:"profile_deleted_at,omitempty"`
}

func (ProfileModel) TableName() string { return "profiles" }
