// file: internals/features/resources/controller/resource_controller.go
package controller

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	bulkService "catatanku_backend/internals/features/home/bulk/service"
	resourceDTO "catatanku_backend/internals/features/resources/dto"
	resourceModel "catatanku_backend/internals/features/resources/model"
	auditService "catatanku_backend/internals/features/users/audit/service"
	helper "catatanku_backend/internals/helpers"
	helperAuth "catatanku_backend/internals/helpers/auth"
)

type ResourcesController struct {
	DB        *gorm.DB
	Validator interface{ Struct(any) error }
}

func NewResourcesController(db *gorm.DB, v interface{ Struct(any) error }) *ResourcesController {
	return &ResourcesController{DB: db, Validator: v}
}

// ensureSubjectScope: representative hanya boleh menyentuh resource
// milik subject yang ditawarkan (offering alive) di branch scope-nya.
func (h *ResourcesController) ensureSubjectScope(c *fiber.Ctx, subjectID uuid.UUID) error {
	if helperAuth.IsAdminOrAbove(c) {
		return nil
	}
	scopeBranch, scopeYear := helperAuth.GetRepScope(c)
	if scopeBranch == nil {
		return fiber.NewError(fiber.StatusForbidden, "Representative tanpa scope branch")
	}

	q := h.DB.Table("subject_offerings").
		Where(`offering_subject_id = ? AND offering_branch_id = ? AND offering_deleted_at IS NULL`,
			subjectID, *scopeBranch)
	if scopeYear != nil {
		q = q.Where(`offering_semester_id IN (
			SELECT semester_id FROM semesters
			WHERE semester_year_id = ? AND semester_deleted_at IS NULL)`, *scopeYear)
	}

	var cnt int64
	if err := q.Count(&cnt).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal memeriksa scope subject")
	}
	if cnt == 0 {
		return fiber.NewError(fiber.StatusForbidden, "Subject di luar scope representative Anda")
	}
	return nil
}

/* =========================================================
   LIST (public) — filter subject/type/unit, terbaru dulu
   ========================================================= */

func (h *ResourcesController) List(c *fiber.Ctx) error {
	subjectRaw := strings.TrimSpace(c.Query("subject_id"))
	if subjectRaw == "" {
		return helper.JsonError(c, fiber.StatusBadRequest, "subject_id wajib dikirim")
	}
	subjectID, err := uuid.Parse(subjectRaw)
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "subject_id tidak valid")
	}

	pg := helper.ResolvePaging(c, 20, 100)

	q := h.DB.WithContext(c.UserContext()).
		Model(&resourceModel.ResourceModel{}).
		Where("resource_subject_id = ? AND resource_deleted_at IS NULL AND resource_is_active = TRUE", subjectID)

	if t := strings.ToLower(strings.TrimSpace(c.Query("type"))); t != "" {
		if !resourceModel.ValidResourceType(t) {
			return helper.JsonError(c, fiber.StatusBadRequest, "type harus note/assignment/paper")
		}
		q = q.Where("resource_type = ?", t)
	}
	if u := strings.TrimSpace(c.Query("unit")); u != "" {
		q = q.Where("resource_unit = ?", u)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menghitung resource")
	}

	var rows []resourceModel.ResourceModel
	if err := q.Order("resource_created_at DESC").
		Limit(pg.Limit).Offset(pg.Offset).
		Find(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal memuat resource")
	}

	return helper.JsonList(c, "OK", rows,
		helper.BuildPaginationFromPage(total, pg.Page, pg.PerPage, len(rows)))
}

/* =========================================================
   GET BY ID (public)
   ========================================================= */

func (h *ResourcesController) GetByID(c *fiber.Ctx) error {
	id, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID tidak valid")
	}

	var ent resourceModel.ResourceModel
	if err := h.DB.WithContext(c.UserContext()).
		First(&ent, "resource_id = ? AND resource_deleted_at IS NULL", id).Error; err != nil {
		status, msg := helper.TranslateDBError(err, "Resource tidak ditemukan", "")
		return helper.JsonError(c, status, msg)
	}
	return helper.JsonOK(c, "OK", ent)
}

/* =========================================================
   CREATE (representative+)
   ========================================================= */

func (h *ResourcesController) Create(c *fiber.Ctx) error {
	var p resourceDTO.CreateResourceRequest
	if err := c.BodyParser(&p); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	p.Normalize()
	if err := h.Validator.Struct(p); err != nil {
		return helper.JsonValidationError(c, err)
	}

	// subject harus ada & alive
	var cnt int64
	if err := h.DB.Table("subjects").
		Where("subject_id = ? AND subject_deleted_at IS NULL", p.SubjectID).
		Count(&cnt).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal memeriksa subject")
	}
	if cnt == 0 {
		return helper.JsonError(c, fiber.StatusBadRequest, "Subject tidak ditemukan")
	}

	if err := h.ensureSubjectScope(c, p.SubjectID); err != nil {
		if fe, ok := err.(*fiber.Error); ok {
			return helper.JsonError(c, fe.Code, fe.Message)
		}
		return helper.JsonError(c, fiber.StatusForbidden, err.Error())
	}

	ent := p.ToModel()
	if ent.ResourceUploadedBy == nil {
		if name, ok := c.Locals(helperAuth.LocalAdminName).(string); ok && name != "" {
			ent.ResourceUploadedBy = &name
		}
	}

	if err := h.DB.WithContext(c.UserContext()).Create(&ent).Error; err != nil {
		status, msg := helper.TranslateDBError(err, "", "Resource duplikat")
		return helper.JsonError(c, status, msg)
	}

	auditService.Record(h.DB, c, auditService.ActionCreate, "resources", &ent.ResourceID, nil, ent)
	bulkService.Store.InvalidateAcademic()

	return helper.JsonCreated(c, "Berhasil menambah resource", ent)
}

/* =========================================================
   UPDATE (partial, representative+)
   ========================================================= */

func (h *ResourcesController) Update(c *fiber.Ctx) error {
	id, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID tidak valid")
	}

	var p resourceDTO.UpdateResourceRequest
	if err := c.BodyParser(&p); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	p.Normalize()
	if err := h.Validator.Struct(p); err != nil {
		return helper.JsonValidationError(c, err)
	}

	var ent resourceModel.ResourceModel
	if err := h.DB.First(&ent, "resource_id = ? AND resource_deleted_at IS NULL", id).Error; err != nil {
		status, msg := helper.TranslateDBError(err, "Resource tidak ditemukan", "")
		return helper.JsonError(c, status, msg)
	}
	before := ent

	if err := h.ensureSubjectScope(c, ent.ResourceSubjectID); err != nil {
		if fe, ok := err.(*fiber.Error); ok {
			return helper.JsonError(c, fe.Code, fe.Message)
		}
		return helper.JsonError(c, fiber.StatusForbidden, err.Error())
	}

	updates := map[string]any{}
	if p.Type != nil {
		updates["resource_type"] = *p.Type
	}
	if p.Title != nil {
		updates["resource_title"] = *p.Title
	}
	if p.Unit != nil {
		updates["resource_unit"] = *p.Unit
	}
	if p.FileURL != nil {
		updates["resource_file_url"] = *p.FileURL
	}
	if p.FileSize != nil {
		updates["resource_file_size"] = *p.FileSize
	}
	if p.FileMime != nil {
		updates["resource_file_mime"] = *p.FileMime
	}
	if p.IsActive != nil {
		updates["resource_is_active"] = *p.IsActive
	}
	if len(updates) == 0 {
		return helper.JsonOK(c, "Tidak ada perubahan", ent)
	}

	if err := h.DB.WithContext(c.UserContext()).Model(&ent).Updates(updates).Error; err != nil {
		status, msg := helper.TranslateDBError(err, "", "Resource duplikat")
		return helper.JsonError(c, status, msg)
	}
	_ = h.DB.First(&ent, "resource_id = ?", id).Error

	auditService.Record(h.DB, c, auditService.ActionUpdate, "resources", &ent.ResourceID, before, ent)
	bulkService.Store.InvalidateAcademic()

	return helper.JsonUpdated(c, "Berhasil memperbarui resource", ent)
}

/* =========================================================
   DELETE (soft, representative+)
   ========================================================= */

func (h *ResourcesController) Delete(c *fiber.Ctx) error {
	id, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID tidak valid")
	}

	var ent resourceModel.ResourceModel
	if err := h.DB.First(&ent, "resource_id = ? AND resource_deleted_at IS NULL", id).Error; err != nil {
		status, msg := helper.TranslateDBError(err, "Resource tidak ditemukan", "")
		return helper.JsonError(c, status, msg)
	}

	if err := h.ensureSubjectScope(c, ent.ResourceSubjectID); err != nil {
		if fe, ok := err.(*fiber.Error); ok {
			return helper.JsonError(c, fe.Code, fe.Message)
		}
		return helper.JsonError(c, fiber.StatusForbidden, err.Error())
	}

	if err := h.DB.WithContext(c.UserContext()).Delete(&ent).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menghapus resource")
	}

	auditService.Record(h.DB, c, auditService.ActionDelete, "resources", &ent.ResourceID, ent, nil)
	bulkService.Store.InvalidateAcademic()

	return helper.JsonDeleted(c, "Berhasil menghapus resource", fiber.Map{"resource_id": ent.ResourceID})
}
