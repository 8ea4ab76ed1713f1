// file: internals/features/academics/branches/controller/branch_controller.go
package controller

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	branchDTO "catatanku_backend/internals/features/academics/branches/dto"
	branchModel "catatanku_backend/internals/features/academics/branches/model"
	bulkService "catatanku_backend/internals/features/home/bulk/service"
	auditService "catatanku_backend/internals/features/users/audit/service"
	helper "catatanku_backend/internals/helpers"
)

type BranchesController struct {
	DB        *gorm.DB
	Validator interface{ Struct(any) error }
}

func NewBranchesController(db *gorm.DB, v interface{ Struct(any) error }) *BranchesController {
	return &BranchesController{DB: db, Validator: v}
}

/* =========================================================
   CREATE (admin only) — slug unik
   ========================================================= */

func (h *BranchesController) Create(c *fiber.Ctx) error {
	var p branchDTO.CreateBranchRequest
	if err := c.BodyParser(&p); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	p.Normalize()
	if err := h.Validator.Struct(p); err != nil {
		return helper.JsonValidationError(c, err)
	}

	// code unik (alive)
	var cnt int64
	if err := h.DB.Model(&branchModel.BranchModel{}).
		Where("lower(branch_code) = lower(?) AND branch_deleted_at IS NULL", p.Code).
		Count(&cnt).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal cek duplikasi kode")
	}
	if cnt > 0 {
		return helper.JsonError(c, fiber.StatusConflict, "Kode branch sudah digunakan")
	}

	// slug unik
	baseSlug := ""
	if p.Slug != nil {
		baseSlug = *p.Slug
	} else {
		baseSlug = helper.Slugify(p.Name, 160)
		if baseSlug == "" {
			baseSlug = "branch"
		}
	}
	uniqueSlug, err := helper.EnsureUniqueSlug(h.DB, baseSlug, "branches", "branch_slug")
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menghasilkan slug unik")
	}

	ent := p.ToModel(uniqueSlug)
	if err := h.DB.WithContext(c.UserContext()).Create(&ent).Error; err != nil {
		status, msg := helper.TranslateDBError(err, "", "Kode/slug branch sudah digunakan")
		return helper.JsonError(c, status, msg)
	}

	auditService.Record(h.DB, c, auditService.ActionCreate, "branches", &ent.BranchID, nil, ent)
	bulkService.Store.InvalidateAll()

	return helper.JsonCreated(c, "Berhasil membuat branch", ent)
}

/* =========================================================
   LIST (public) — aktif saja kecuali ?include_inactive=true
   ========================================================= */

func (h *BranchesController) List(c *fiber.Ctx) error {
	q := h.DB.WithContext(c.UserContext()).Model(&branchModel.BranchModel{}).
		Where("branch_deleted_at IS NULL")

	if !strings.EqualFold(c.Query("include_inactive"), "true") {
		q = q.Where("branch_is_active = TRUE")
	}

	var rows []branchModel.BranchModel
	if err := q.Order("branch_code ASC").Find(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal memuat branch")
	}
	return helper.JsonOK(c, "OK", rows)
}

/* =========================================================
   GET BY ID / SLUG
   ========================================================= */

func (h *BranchesController) GetByID(c *fiber.Ctx) error {
	raw := strings.TrimSpace(c.Params("id"))

	var ent branchModel.BranchModel
	var err error
	if id, parseErr := uuid.Parse(raw); parseErr == nil {
		err = h.DB.First(&ent, "branch_id = ? AND branch_deleted_at IS NULL", id).Error
	} else {
		// fallback: anggap slug
		err = h.DB.First(&ent, "branch_slug = ? AND branch_deleted_at IS NULL", raw).Error
	}
	if err != nil {
		status, msg := helper.TranslateDBError(err, "Branch tidak ditemukan", "")
		return helper.JsonError(c, status, msg)
	}
	return helper.JsonOK(c, "OK", ent)
}

/* =========================================================
   UPDATE (partial, admin only)
   ========================================================= */

func (h *BranchesController) Update(c *fiber.Ctx) error {
	id, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID tidak valid")
	}

	var p branchDTO.UpdateBranchRequest
	if err := c.BodyParser(&p); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	p.Normalize()
	if err := h.Validator.Struct(p); err != nil {
		return helper.JsonValidationError(c, err)
	}

	var ent branchModel.BranchModel
	if err := h.DB.First(&ent, "branch_id = ? AND branch_deleted_at IS NULL", id).Error; err != nil {
		status, msg := helper.TranslateDBError(err, "Branch tidak ditemukan", "")
		return helper.JsonError(c, status, msg)
	}
	before := ent

	updates := map[string]any{}
	if p.Code != nil {
		updates["branch_code"] = *p.Code
	}
	if p.Name != nil {
		updates["branch_name"] = *p.Name
	}
	if p.Desc != nil {
		if *p.Desc == "" {
			updates["branch_desc"] = nil
		} else {
			updates["branch_desc"] = *p.Desc
		}
	}
	if p.IsActive != nil {
		updates["branch_is_active"] = *p.IsActive
	}
	if len(updates) == 0 {
		return helper.JsonOK(c, "Tidak ada perubahan", ent)
	}

	if err := h.DB.WithContext(c.UserContext()).
		Model(&ent).Updates(updates).Error; err != nil {
		status, msg := helper.TranslateDBError(err, "", "Kode branch sudah digunakan")
		return helper.JsonError(c, status, msg)
	}

	_ = h.DB.First(&ent, "branch_id = ?", id).Error

	auditService.Record(h.DB, c, auditService.ActionUpdate, "branches", &ent.BranchID, before, ent)
	bulkService.Store.InvalidateAll()

	return helper.JsonUpdated(c, "Berhasil memperbarui branch", ent)
}

/* =========================================================
   DELETE (soft, admin only)
   ========================================================= */

func (h *BranchesController) Delete(c *fiber.Ctx) error {
	id, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID tidak valid")
	}

	var ent branchModel.BranchModel
	if err := h.DB.First(&ent, "branch_id = ? AND branch_deleted_at IS NULL", id).Error; err != nil {
		status, msg := helper.TranslateDBError(err, "Branch tidak ditemukan", "")
		return helper.JsonError(c, status, msg)
	}

	if err := h.DB.WithContext(c.UserContext()).Delete(&ent).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menghapus branch")
	}

	auditService.Record(h.DB, c, auditService.ActionDelete, "branches", &ent.BranchID, ent, nil)
	bulkService.Store.InvalidateAll()

	return helper.JsonDeleted(c, "Berhasil menghapus branch", fiber.Map{"branch_id": ent.BranchID})
}
