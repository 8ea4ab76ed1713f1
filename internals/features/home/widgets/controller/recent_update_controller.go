// file: internals/features/home/widgets/controller/recent_update_controller.go
package controller

import (
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	bulkService "catatanku_backend/internals/features/home/bulk/service"
	widgetDTO "catatanku_backend/internals/features/home/widgets/dto"
	widgetModel "catatanku_backend/internals/features/home/widgets/model"
	auditService "catatanku_backend/internals/features/users/audit/service"
	helper "catatanku_backend/internals/helpers"
)

/* =========================================================
   LIST (public) — N terbaru, default 10
   ========================================================= */

func (h *WidgetsController) ListRecentUpdates(c *fiber.Ctx) error {
	limit := 10
	if raw := strings.TrimSpace(c.Query("limit")); raw != "" {
		if n, err := strconv.Atoi(raw); err == nil && n > 0 {
			limit = n
		}
	}
	if limit > 50 {
		limit = 50
	}

	var rows []widgetModel.RecentUpdateModel
	if err := h.DB.WithContext(c.UserContext()).
		Where("update_deleted_at IS NULL").
		Order("update_created_at DESC").
		Limit(limit).
		Find(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal memuat recent updates")
	}
	return helper.JsonOK(c, "OK", rows)
}

/* =========================================================
   CREATE / UPDATE / DELETE (admin)
   ========================================================= */

func (h *WidgetsController) CreateRecentUpdate(c *fiber.Ctx) error {
	var p widgetDTO.CreateRecentUpdateRequest
	if err := c.BodyParser(&p); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	p.Normalize()
	if err := h.Validator.Struct(p); err != nil {
		return helper.JsonValidationError(c, err)
	}

	ent := p.ToModel()
	if err := h.DB.WithContext(c.UserContext()).Create(&ent).Error; err != nil {
		status, msg := helper.TranslateDBError(err, "", "")
		return helper.JsonError(c, status, msg)
	}

	auditService.Record(h.DB, c, auditService.ActionCreate, "recent_updates", &ent.UpdateID, nil, ent)
	bulkService.Store.InvalidateWidgets()

	return helper.JsonCreated(c, "Berhasil membuat recent update", ent)
}

func (h *WidgetsController) UpdateRecentUpdate(c *fiber.Ctx) error {
	id, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID tidak valid")
	}

	var p widgetDTO.UpdateRecentUpdateRequest
	if err := c.BodyParser(&p); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	p.Normalize()
	if err := h.Validator.Struct(p); err != nil {
		return helper.JsonValidationError(c, err)
	}

	var ent widgetModel.RecentUpdateModel
	if err := h.DB.First(&ent, "update_id = ? AND update_deleted_at IS NULL", id).Error; err != nil {
		status, msg := helper.TranslateDBError(err, "Recent update tidak ditemukan", "")
		return helper.JsonError(c, status, msg)
	}
	before := ent

	updates := map[string]any{}
	if p.Title != nil {
		updates["update_title"] = *p.Title
	}
	if p.Body != nil {
		updates["update_body"] = *p.Body
	}
	if p.Link != nil {
		updates["update_link"] = *p.Link
	}
	if p.Payload != nil {
		updates["update_payload"] = p.Payload
	}
	if len(updates) == 0 {
		return helper.JsonOK(c, "Tidak ada perubahan", ent)
	}

	if err := h.DB.WithContext(c.UserContext()).Model(&ent).Updates(updates).Error; err != nil {
		status, msg := helper.TranslateDBError(err, "", "")
		return helper.JsonError(c, status, msg)
	}
	_ = h.DB.First(&ent, "update_id = ?", id).Error

	auditService.Record(h.DB, c, auditService.ActionUpdate, "recent_updates", &ent.UpdateID, before, ent)
	bulkService.Store.InvalidateWidgets()

	return helper.JsonUpdated(c, "Berhasil memperbarui recent update", ent)
}

func (h *WidgetsController) DeleteRecentUpdate(c *fiber.Ctx) error {
	id, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID tidak valid")
	}

	var ent widgetModel.RecentUpdateModel
	if err := h.DB.First(&ent, "update_id = ? AND update_deleted_at IS NULL", id).Error; err != nil {
		status, msg := helper.TranslateDBError(err, "Recent update tidak ditemukan", "")
		return helper.JsonError(c, status, msg)
	}

	if err := h.DB.WithContext(c.UserContext()).Delete(&ent).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menghapus recent update")
	}

	auditService.Record(h.DB, c, auditService.ActionDelete, "recent_updates", &ent.UpdateID, ent, nil)
	bulkService.Store.InvalidateWidgets()

	return helper.JsonDeleted(c, "Berhasil menghapus recent update", fiber.Map{"update_id": ent.UpdateID})
}
