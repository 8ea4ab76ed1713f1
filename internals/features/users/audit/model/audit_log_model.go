// file: internals/features/users/audit/model/audit_log_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

type AuditLogModel struct {
	AuditLogID      uuid.UUID  `gorm:"column:audit_log_id;type:uuid;default:gen_random_uuid();primaryKey" json:"audit_log_id"`
	AuditLogAdminID uuid.UUID  `gorm:"column:audit_log_admin_id;type:uuid;not null;index:idx_audit_logs_admin" json:"audit_log_admin_id"`

	AuditLogAction   string     `gorm:"column:audit_log_action;type:varchar(40);not null" json:"audit_log_action"`
	AuditLogEntity   string     `gorm:"column:audit_log_entity;type:varchar(60);not null;index:idx_audit_logs_entity" json:"audit_log_entity"`
	AuditLogEntityID *uuid.UUID `gorm:"column:audit_log_entity_id;type:uuid" json:"audit_log_entity_id,omitempty"`

	// snapshot sebelum/sesudah (jsonb)
	AuditLogBefore datatypes.JSON `gorm:"column:audit_log_before;type:jsonb" json:"audit_log_before,omitempty"`
	AuditLogAfter  datatypes.JSON `gorm:"column:audit_log_after;type:jsonb" json:"audit_log_after,omitempty"`

	AuditLogCreatedAt time.Time `gorm:"column:audit_log_created_at;type:timestamptz;not null;default:now();autoCreateTime" json:"audit_log_created_at"`
}

func (AuditLogModel) TableName() string { return "audit_logs" }
