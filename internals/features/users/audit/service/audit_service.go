// file: internals/features/users/audit/service/audit_service.go
package service

import (
	"encoding/json"
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	auditModel "catatanku_backend/internals/features/users/audit/model"
	helperAuth "catatanku_backend/internals/helpers/auth"
)

// Action constants supaya konsisten di semua controller
const (
	ActionCreate  = "create"
	ActionUpdate  = "update"
	ActionDelete  = "delete"
	ActionReorder = "reorder"
	ActionFlush   = "cache_flush"
)

// Record menulis satu baris audit. Kegagalan audit TIDAK membatalkan
// mutasi utamanya, hanya dicatat di log.
func Record(db *gorm.DB, c *fiber.Ctx, action, entity string, entityID *uuid.UUID, before, after any) {
	adminID, err := helperAuth.GetAdminID(c)
	if err != nil {
		log.Printf("[AUDIT] skip: admin_id tidak ada di context (%v)", err)
		return
	}

	row := auditModel.AuditLogModel{
		AuditLogAdminID:  adminID,
		AuditLogAction:   action,
		AuditLogEntity:   entity,
		AuditLogEntityID: entityID,
		AuditLogBefore:   marshalSnapshot(before),
		AuditLogAfter:    marshalSnapshot(after),
	}
	if err := db.Create(&row).Error; err != nil {
		log.Printf("[AUDIT] gagal tulis audit %s/%s: %v", entity, action, err)
	}
}

func marshalSnapshot(v any) datatypes.JSON {
	if v == nil {
		return nil
	}
	b, err := json.Marshal(v)
	if err != nil {
		return nil
	}
	return datatypes.JSON(b)
}
