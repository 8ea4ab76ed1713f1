// file: internals/features/users/audit/controller/audit_controller.go
package controller

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	auditModel "catatanku_backend/internals/features/users/audit/model"
	helper "catatanku_backend/internals/helpers"
)

type AuditController struct {
	DB *gorm.DB
}

func NewAuditController(db *gorm.DB) *AuditController {
	return &AuditController{DB: db}
}

// List: GET /audit-logs?entity=&admin_id=&page=&per_page=
func (h *AuditController) List(c *fiber.Ctx) error {
	paging := helper.ResolvePaging(c, 25, 200)

	q := h.DB.WithContext(c.UserContext()).Model(&auditModel.AuditLogModel{})

	if entity := strings.TrimSpace(c.Query("entity")); entity != "" {
		q = q.Where("audit_log_entity = ?", entity)
	}
	if raw := strings.TrimSpace(c.Query("admin_id")); raw != "" {
		adminID, err := uuid.Parse(raw)
		if err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "admin_id tidak valid")
		}
		q = q.Where("audit_log_admin_id = ?", adminID)
	}
	if action := strings.TrimSpace(c.Query("action")); action != "" {
		q = q.Where("audit_log_action = ?", action)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menghitung audit log")
	}

	var rows []auditModel.AuditLogModel
	if err := q.
		Order("audit_log_created_at DESC").
		Limit(paging.Limit).
		Offset(paging.Offset).
		Find(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal memuat audit log")
	}

	return helper.JsonList(c, "OK", rows,
		helper.BuildPaginationFromPage(total, paging.Page, paging.PerPage, len(rows)))
}
