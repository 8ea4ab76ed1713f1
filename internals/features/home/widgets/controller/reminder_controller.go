// file: internals/features/home/widgets/controller/reminder_controller.go
package controller

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	widgetDTO "catatanku_backend/internals/features/home/widgets/dto"
	widgetModel "catatanku_backend/internals/features/home/widgets/model"
	auditService "catatanku_backend/internals/features/users/audit/service"
	helper "catatanku_backend/internals/helpers"
)

/* =========================================================
   LIST (public) — aktif saja, scope NULL ikut tampil
   ========================================================= */

func (h *WidgetsController) ListReminders(c *fiber.Ctx) error {
	branchID, semesterID, err := parseScopeQuery(c)
	if err != nil {
		fe := err.(*fiber.Error)
		return helper.JsonError(c, fe.Code, fe.Message)
	}

	q := h.DB.WithContext(c.UserContext()).
		Model(&widgetModel.ReminderModel{}).
		Where("reminder_is_active = TRUE AND reminder_deleted_at IS NULL")
	if branchID != nil {
		q = q.Where("(reminder_branch_id IS NULL OR reminder_branch_id = ?)", *branchID)
	}
	if semesterID != nil {
		q = q.Where("(reminder_semester_id IS NULL OR reminder_semester_id = ?)", *semesterID)
	}

	var rows []widgetModel.ReminderModel
	if err := q.Order("reminder_due_at ASC").Limit(50).Find(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal memuat reminder")
	}
	return helper.JsonOK(c, "OK", rows)
}

/* =========================================================
   CREATE / UPDATE / DELETE (admin)
   ========================================================= */

func (h *WidgetsController) CreateReminder(c *fiber.Ctx) error {
	var p widgetDTO.CreateReminderRequest
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

	auditService.Record(h.DB, c, auditService.ActionCreate, "reminders", &ent.ReminderID, nil, ent)
	invalidateWidgetScope(ent.ReminderBranchID, ent.ReminderSemesterID)

	return helper.JsonCreated(c, "Berhasil membuat reminder", ent)
}

func (h *WidgetsController) UpdateReminder(c *fiber.Ctx) error {
	id, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID tidak valid")
	}

	var p widgetDTO.UpdateReminderRequest
	if err := c.BodyParser(&p); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	p.Normalize()
	if err := h.Validator.Struct(p); err != nil {
		return helper.JsonValidationError(c, err)
	}

	var ent widgetModel.ReminderModel
	if err := h.DB.First(&ent, "reminder_id = ? AND reminder_deleted_at IS NULL", id).Error; err != nil {
		status, msg := helper.TranslateDBError(err, "Reminder tidak ditemukan", "")
		return helper.JsonError(c, status, msg)
	}
	before := ent

	updates := map[string]any{}
	if p.Title != nil {
		updates["reminder_title"] = *p.Title
	}
	if p.Message != nil {
		updates["reminder_message"] = *p.Message
	}
	if p.DueAt != nil {
		updates["reminder_due_at"] = *p.DueAt
	}
	if p.BranchID != nil {
		updates["reminder_branch_id"] = *p.BranchID
	}
	if p.SemesterID != nil {
		updates["reminder_semester_id"] = *p.SemesterID
	}
	if p.IsActive != nil {
		updates["reminder_is_active"] = *p.IsActive
	}
	if len(updates) == 0 {
		return helper.JsonOK(c, "Tidak ada perubahan", ent)
	}

	if err := h.DB.WithContext(c.UserContext()).Model(&ent).Updates(updates).Error; err != nil {
		status, msg := helper.TranslateDBError(err, "", "")
		return helper.JsonError(c, status, msg)
	}
	_ = h.DB.First(&ent, "reminder_id = ?", id).Error

	auditService.Record(h.DB, c, auditService.ActionUpdate, "reminders", &ent.ReminderID, before, ent)
	invalidateWidgetScope(ent.ReminderBranchID, ent.ReminderSemesterID)

	return helper.JsonUpdated(c, "Berhasil memperbarui reminder", ent)
}

func (h *WidgetsController) DeleteReminder(c *fiber.Ctx) error {
	id, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID tidak valid")
	}

	var ent widgetModel.ReminderModel
	if err := h.DB.First(&ent, "reminder_id = ? AND reminder_deleted_at IS NULL", id).Error; err != nil {
		status, msg := helper.TranslateDBError(err, "Reminder tidak ditemukan", "")
		return helper.JsonError(c, status, msg)
	}

	if err := h.DB.WithContext(c.UserContext()).Delete(&ent).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menghapus reminder")
	}

	auditService.Record(h.DB, c, auditService.ActionDelete, "reminders", &ent.ReminderID, ent, nil)
	invalidateWidgetScope(ent.ReminderBranchID, ent.ReminderSemesterID)

	return helper.JsonDeleted(c, "Berhasil menghapus reminder", fiber.Map{"reminder_id": ent.ReminderID})
}
