// file: internals/features/academics/subjects/model/subject_offering_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// SubjectOfferingModel = relasi many-to-many subject ↔ (branch, semester)
// dengan urutan tampilan per kombinasi.
type SubjectOfferingModel struct {
	/* ============ PK ============ */
	OfferingID uuid.UUID `gorm:"column:offering_id;type:uuid;default:gen_random_uuid();primaryKey" json:"offering_id"`

	/* ============ FK eksplisit ============ */
	OfferingSubjectID  uuid.UUID `gorm:"column:offering_subject_id;type:uuid;not null;uniqueIndex:uq_offerings_triplet;index:idx_offerings_subject" json:"offering_subject_id"`
	OfferingBranchID   uuid.UUID `gorm:"column:offering_branch_id;type:uuid;not null;uniqueIndex:uq_offerings_triplet;index:idx_offerings_branch_semester" json:"offering_branch_id"`
	OfferingSemesterID uuid.UUID `gorm:"column:offering_semester_id;type:uuid;not null;uniqueIndex:uq_offerings_triplet;index:idx_offerings_branch_semester" json:"offering_semester_id"`

	/* ============ Urutan ============ */
	OfferingOrderIndex int `gorm:"column:offering_order_index;not null;default:0" json:"offering_order_index"`

	/* ============ Audit ============ */
	OfferingCreatedAt time.Time      `gorm:"column:offering_created_at;type:timestamptz;not null;default:now();autoCreateTime" json:"offering_created_at"`
	OfferingUpdatedAt time.Time      `gorm:"column:offering_updated_at;type:timestamptz;not null;default:now();autoUpdateTime" json:"offering_updated_at"`
	OfferingDeletedAt gorm.DeletedAt `gorm:"column:offering_deleted_at;index" json:"offering_deleted_at,omitempty"`
}

func (SubjectOfferingModel) TableName() string { return "subject_offerings" }
