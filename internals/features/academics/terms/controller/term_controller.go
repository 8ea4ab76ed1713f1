// file: internals/features/academics/terms/controller/term_controller.go
package controller

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	termDTO "catatanku_backend/internals/features/academics/terms/dto"
	termModel "catatanku_backend/internals/features/academics/terms/model"
	bulkService "catatanku_backend/internals/features/home/bulk/service"
	auditService "catatanku_backend/internals/features/users/audit/service"
	helper "catatanku_backend/internals/helpers"
)

type TermsController struct {
	DB        *gorm.DB
	Validator interface{ Struct(any) error }
}

func NewTermsController(db *gorm.DB, v interface{ Struct(any) error }) *TermsController {
	return &TermsController{DB: db, Validator: v}
}

/* =========================================================
   YEARS
   ========================================================= */

func (h *TermsController) CreateYear(c *fiber.Ctx) error {
	var p termDTO.CreateYearRequest
	if err := c.BodyParser(&p); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	p.Normalize()
	if err := h.Validator.Struct(p); err != nil {
		return helper.JsonValidationError(c, err)
	}

	ent := p.ToModel()
	if err := h.DB.WithContext(c.UserContext()).Create(&ent).Error; err != nil {
		status, msg := helper.TranslateDBError(err, "", "Tahun dengan nomor ini sudah ada")
		return helper.JsonError(c, status, msg)
	}

	auditService.Record(h.DB, c, auditService.ActionCreate, "years", &ent.YearID, nil, ent)
	return helper.JsonCreated(c, "Berhasil membuat tahun", ent)
}

func (h *TermsController) ListYears(c *fiber.Ctx) error {
	var rows []termModel.YearModel
	if err := h.DB.WithContext(c.UserContext()).
		Where("year_deleted_at IS NULL").
		Order("year_number ASC").
		Find(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal memuat tahun")
	}
	return helper.JsonOK(c, "OK", rows)
}

func (h *TermsController) UpdateYear(c *fiber.Ctx) error {
	id, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID tidak valid")
	}

	var p termDTO.UpdateYearRequest
	if err := c.BodyParser(&p); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := h.Validator.Struct(p); err != nil {
		return helper.JsonValidationError(c, err)
	}

	var ent termModel.YearModel
	if err := h.DB.First(&ent, "year_id = ? AND year_deleted_at IS NULL", id).Error; err != nil {
		status, msg := helper.TranslateDBError(err, "Tahun tidak ditemukan", "")
		return helper.JsonError(c, status, msg)
	}
	before := ent

	updates := map[string]any{}
	if p.Number != nil {
		updates["year_number"] = *p.Number
	}
	if p.Label != nil {
		if v := strings.TrimSpace(*p.Label); v != "" {
			updates["year_label"] = v
		}
	}
	if len(updates) == 0 {
		return helper.JsonOK(c, "Tidak ada perubahan", ent)
	}

	if err := h.DB.WithContext(c.UserContext()).Model(&ent).Updates(updates).Error; err != nil {
		status, msg := helper.TranslateDBError(err, "", "Tahun dengan nomor ini sudah ada")
		return helper.JsonError(c, status, msg)
	}
	_ = h.DB.First(&ent, "year_id = ?", id).Error

	auditService.Record(h.DB, c, auditService.ActionUpdate, "years", &ent.YearID, before, ent)
	bulkService.Store.InvalidateAll()
	return helper.JsonUpdated(c, "Berhasil memperbarui tahun", ent)
}

func (h *TermsController) DeleteYear(c *fiber.Ctx) error {
	id, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID tidak valid")
	}

	var ent termModel.YearModel
	if err := h.DB.First(&ent, "year_id = ? AND year_deleted_at IS NULL", id).Error; err != nil {
		status, msg := helper.TranslateDBError(err, "Tahun tidak ditemukan", "")
		return helper.JsonError(c, status, msg)
	}

	// tolak kalau masih punya semester alive
	var cnt int64
	if err := h.DB.Model(&termModel.SemesterModel{}).
		Where("semester_year_id = ? AND semester_deleted_at IS NULL", id).
		Count(&cnt).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal cek semester")
	}
	if cnt > 0 {
		return helper.JsonError(c, fiber.StatusConflict, "Tahun masih memiliki semester aktif")
	}

	if err := h.DB.WithContext(c.UserContext()).Delete(&ent).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menghapus tahun")
	}

	auditService.Record(h.DB, c, auditService.ActionDelete, "years", &ent.YearID, ent, nil)
	bulkService.Store.InvalidateAll()
	return helper.JsonDeleted(c, "Berhasil menghapus tahun", fiber.Map{"year_id": ent.YearID})
}

/* =========================================================
   SEMESTERS
   ========================================================= */

func (h *TermsController) CreateSemester(c *fiber.Ctx) error {
	var p termDTO.CreateSemesterRequest
	if err := c.BodyParser(&p); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	p.Normalize()
	if err := h.Validator.Struct(p); err != nil {
		return helper.JsonValidationError(c, err)
	}

	// pastikan tahun ada
	var year termModel.YearModel
	if err := h.DB.First(&year, "year_id = ? AND year_deleted_at IS NULL", p.YearID).Error; err != nil {
		status, msg := helper.TranslateDBError(err, "Tahun tidak ditemukan", "")
		return helper.JsonError(c, status, msg)
	}

	ent := p.ToModel()
	if err := h.DB.WithContext(c.UserContext()).Create(&ent).Error; err != nil {
		status, msg := helper.TranslateDBError(err, "", "Semester dengan nomor ini sudah ada di tahun tsb")
		return helper.JsonError(c, status, msg)
	}

	auditService.Record(h.DB, c, auditService.ActionCreate, "semesters", &ent.SemesterID, nil, ent)
	return helper.JsonCreated(c, "Berhasil membuat semester", ent)
}

func (h *TermsController) ListSemesters(c *fiber.Ctx) error {
	q := h.DB.WithContext(c.UserContext()).Model(&termModel.SemesterModel{}).
		Where("semester_deleted_at IS NULL")

	if raw := strings.TrimSpace(c.Query("year_id")); raw != "" {
		yearID, err := uuid.Parse(raw)
		if err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "year_id tidak valid")
		}
		q = q.Where("semester_year_id = ?", yearID)
	}

	var rows []termModel.SemesterModel
	if err := q.Order("semester_number ASC").Find(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal memuat semester")
	}
	return helper.JsonOK(c, "OK", rows)
}

func (h *TermsController) UpdateSemester(c *fiber.Ctx) error {
	id, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID tidak valid")
	}

	var p termDTO.UpdateSemesterRequest
	if err := c.BodyParser(&p); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := h.Validator.Struct(p); err != nil {
		return helper.JsonValidationError(c, err)
	}

	var ent termModel.SemesterModel
	if err := h.DB.First(&ent, "semester_id = ? AND semester_deleted_at IS NULL", id).Error; err != nil {
		status, msg := helper.TranslateDBError(err, "Semester tidak ditemukan", "")
		return helper.JsonError(c, status, msg)
	}
	before := ent

	updates := map[string]any{}
	if p.Number != nil {
		updates["semester_number"] = *p.Number
	}
	if p.Label != nil {
		if v := strings.TrimSpace(*p.Label); v != "" {
			updates["semester_label"] = v
		}
	}
	if len(updates) == 0 {
		return helper.JsonOK(c, "Tidak ada perubahan", ent)
	}

	if err := h.DB.WithContext(c.UserContext()).Model(&ent).Updates(updates).Error; err != nil {
		status, msg := helper.TranslateDBError(err, "", "Semester dengan nomor ini sudah ada di tahun tsb")
		return helper.JsonError(c, status, msg)
	}
	_ = h.DB.First(&ent, "semester_id = ?", id).Error

	auditService.Record(h.DB, c, auditService.ActionUpdate, "semesters", &ent.SemesterID, before, ent)
	bulkService.Store.InvalidateAll()
	return helper.JsonUpdated(c, "Berhasil memperbarui semester", ent)
}

func (h *TermsController) DeleteSemester(c *fiber.Ctx) error {
	id, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID tidak valid")
	}

	var ent termModel.SemesterModel
	if err := h.DB.First(&ent, "semester_id = ? AND semester_deleted_at IS NULL", id).Error; err != nil {
		status, msg := helper.TranslateDBError(err, "Semester tidak ditemukan", "")
		return helper.JsonError(c, status, msg)
	}

	if err := h.DB.WithContext(c.UserContext()).Delete(&ent).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menghapus semester")
	}

	auditService.Record(h.DB, c, auditService.ActionDelete, "semesters", &ent.SemesterID, ent, nil)
	bulkService.Store.InvalidateAll()
	return helper.JsonDeleted(c, "Berhasil menghapus semester", fiber.Map{"semester_id": ent.SemesterID})
}
