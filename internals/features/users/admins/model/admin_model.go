// file: internals/features/users/admins/model/admin_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type AdminModel struct {
	/* ============ PK ============ */
	AdminID uuid.UUID `gorm:"column:admin_id;type:uuid;default:gen_random_uuid();primaryKey" json:"admin_id"`

	/* ============ Identitas ============ */
	AdminEmail string `gorm:"column:admin_email;type:varchar(160);not null;uniqueIndex:uq_admins_email_alive" json:"admin_email"`
	AdminName  string `gorm:"column:admin_name;type:varchar(120);not null" json:"admin_name"`

	/* ============ Role & scope (representative) ============ */
	AdminRole     string     `gorm:"column:admin_role;type:varchar(32);not null;default:'representative';index:idx_admins_role" json:"admin_role"`
	AdminBranchID *uuid.UUID `gorm:"column:admin_branch_id;type:uuid;index:idx_admins_branch" json:"admin_branch_id,omitempty"`
	AdminYearID   *uuid.UUID `gorm:"column:admin_year_id;type:uuid" json:"admin_year_id,omitempty"`

	/* ============ Kredensial ============ */
	AdminAccessKeyHash string `gorm:"column:admin_access_key_hash;type:text;not null" json:"-"`

	/* ============ Status & audit ============ */
	AdminIsActive  bool           `gorm:"column:admin_is_active;not null;default:true" json:"admin_is_active"`
	AdminCreatedAt time.Time      `gorm:"column:admin_created_at;type:timestamptz;not null;default:now();autoCreateTime" json:"admin_created_at"`
	AdminUpdatedAt time.Time      `gorm:"column:admin_updated_at;type:timestamptz;not null;default:now();autoUpdateTime" json:"admin_updated_at"`
	AdminDeletedAt gorm.DeletedAt `gorm:"column:admin_deleted_at;index" json:"admin_deleted_at,omitempty"`
}

func (AdminModel) TableName() string { return "admins" }
