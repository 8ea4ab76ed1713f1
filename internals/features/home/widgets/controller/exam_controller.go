// file: internals/features/home/widgets/controller/exam_controller.go
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
   LIST (public) — ujian mendatang dulu
   ========================================================= */

func (h *WidgetsController) ListExams(c *fiber.Ctx) error {
	branchID, semesterID, err := parseScopeQuery(c)
	if err != nil {
		fe := err.(*fiber.Error)
		return helper.JsonError(c, fe.Code, fe.Message)
	}

	q := h.DB.WithContext(c.UserContext()).
		Model(&widgetModel.ExamModel{}).
		Where("exam_is_active = TRUE AND exam_deleted_at IS NULL")
	if branchID != nil {
		q = q.Where("(exam_branch_id IS NULL OR exam_branch_id = ?)", *branchID)
	}
	if semesterID != nil {
		q = q.Where("(exam_semester_id IS NULL OR exam_semester_id = ?)", *semesterID)
	}

	var rows []widgetModel.ExamModel
	if err := q.Order("exam_starts_at ASC").Limit(50).Find(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal memuat jadwal ujian")
	}
	return helper.JsonOK(c, "OK", rows)
}

/* =========================================================
   CREATE / UPDATE / DELETE (admin)
   ========================================================= */

func (h *WidgetsController) CreateExam(c *fiber.Ctx) error {
	var p widgetDTO.CreateExamRequest
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

	auditService.Record(h.DB, c, auditService.ActionCreate, "exams", &ent.ExamID, nil, ent)
	invalidateWidgetScope(ent.ExamBranchID, ent.ExamSemesterID)

	return helper.JsonCreated(c, "Berhasil membuat jadwal ujian", ent)
}

func (h *WidgetsController) UpdateExam(c *fiber.Ctx) error {
	id, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID tidak valid")
	}

	var p widgetDTO.UpdateExamRequest
	if err := c.BodyParser(&p); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	p.Normalize()
	if err := h.Validator.Struct(p); err != nil {
		return helper.JsonValidationError(c, err)
	}

	var ent widgetModel.ExamModel
	if err := h.DB.First(&ent, "exam_id = ? AND exam_deleted_at IS NULL", id).Error; err != nil {
		status, msg := helper.TranslateDBError(err, "Jadwal ujian tidak ditemukan", "")
		return helper.JsonError(c, status, msg)
	}
	before := ent

	updates := map[string]any{}
	if p.SubjectID != nil {
		updates["exam_subject_id"] = *p.SubjectID
	}
	if p.Title != nil {
		updates["exam_title"] = *p.Title
	}
	if p.StartsAt != nil {
		updates["exam_starts_at"] = *p.StartsAt
	}
	if p.BranchID != nil {
		updates["exam_branch_id"] = *p.BranchID
	}
	if p.SemesterID != nil {
		updates["exam_semester_id"] = *p.SemesterID
	}
	if p.IsActive != nil {
		updates["exam_is_active"] = *p.IsActive
	}
	if len(updates) == 0 {
		return helper.JsonOK(c, "Tidak ada perubahan", ent)
	}

	if err := h.DB.WithContext(c.UserContext()).Model(&ent).Updates(updates).Error; err != nil {
		status, msg := helper.TranslateDBError(err, "", "")
		return helper.JsonError(c, status, msg)
	}
	_ = h.DB.First(&ent, "exam_id = ?", id).Error

	auditService.Record(h.DB, c, auditService.ActionUpdate, "exams", &ent.ExamID, before, ent)
	invalidateWidgetScope(ent.ExamBranchID, ent.ExamSemesterID)

	return helper.JsonUpdated(c, "Berhasil memperbarui jadwal ujian", ent)
}

func (h *WidgetsController) DeleteExam(c *fiber.Ctx) error {
	id, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID tidak valid")
	}

	var ent widgetModel.ExamModel
	if err := h.DB.First(&ent, "exam_id = ? AND exam_deleted_at IS NULL", id).Error; err != nil {
		status, msg := helper.TranslateDBError(err, "Jadwal ujian tidak ditemukan", "")
		return helper.JsonError(c, status, msg)
	}

	if err := h.DB.WithContext(c.UserContext()).Delete(&ent).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menghapus jadwal ujian")
	}

	auditService.Record(h.DB, c, auditService.ActionDelete, "exams", &ent.ExamID, ent, nil)
	invalidateWidgetScope(ent.ExamBranchID, ent.ExamSemesterID)

	return helper.JsonDeleted(c, "Berhasil menghapus jadwal ujian", fiber.Map{"exam_id": ent.ExamID})
}
