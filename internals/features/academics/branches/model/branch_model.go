// file: internals/features/academics/branches/model/branch_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type BranchModel struct {
	/* ============ PK ============ */
	BranchID uuid.UUID `gorm:"column:branch_id;type:uuid;default:gen_random_uuid();primaryKey" json:"branch_id"`

	/* ============ Identitas ============ */
	BranchCode string  `gorm:"column:branch_code;type:varchar(40);not null;uniqueIndex:uq_branches_code_alive" json:"branch_code"`
	BranchName string  `gorm:"column:branch_name;type:varchar(120);not null" json:"branch_name"`
	BranchSlug string  `gorm:"column:branch_slug;type:varchar(160);not null;uniqueIndex:uq_branches_slug_alive" json:"branch_slug"`
	BranchDesc *string `gorm:"column:branch_desc;type:text" json:"branch_desc,omitempty"`

	/* ============ Status & audit ============ */
	BranchIsActive  bool           `gorm:"column:branch_is_active;not null;default:true;index:idx_branches_active" json:"branch_is_active"`
	BranchCreatedAt time.Time      `gorm:"column:branch_created_at;type:timestamptz;not null;default:now();autoCreateTime" json:"branch_created_at"`
	BranchUpdatedAt time.Time      `gorm:"column:branch_updated_at;type:timestamptz;not null;default:now();autoUpdateTime" json:"branch_updated_at"`
	BranchDeletedAt gorm.DeletedAt `gorm:"column:branch_deleted_at;index" json:"branch_deleted_at,omitempty"`
}

func (BranchModel) TableName() string { return "branches" }
