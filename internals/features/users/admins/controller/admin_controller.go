// file: internals/features/users/admins/controller/admin_controller.go
package controller

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	adminDTO "catatanku_backend/internals/features/users/admins/dto"
	adminModel "catatanku_backend/internals/features/users/admins/model"
	auditService "catatanku_backend/internals/features/users/audit/service"
	helper "catatanku_backend/internals/helpers"

	"catatanku_backend/internals/constants"
)

type AdminsController struct {
	DB        *gorm.DB
	Validator interface{ Struct(any) error }
}

func NewAdminsController(db *gorm.DB, v interface{ Struct(any) error }) *AdminsController {
	return &AdminsController{DB: db, Validator: v}
}

/* =========================================================
   CREATE — admin/representative baru
   ========================================================= */

func (h *AdminsController) Create(c *fiber.Ctx) error {
	var p adminDTO.CreateAdminRequest
	if err := c.BodyParser(&p); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	p.Normalize()
	if err := h.Validator.Struct(p); err != nil {
		return helper.JsonValidationError(c, err)
	}

	// representative wajib punya scope branch
	if p.Role == constants.RoleRepresentative && p.BranchID == nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Representative wajib punya admin_branch_id")
	}
	// admin/owner tidak membawa scope
	if p.Role != constants.RoleRepresentative {
		p.BranchID = nil
		p.YearID = nil
	}

	// email unik (alive)
	var cnt int64
	if err := h.DB.Model(&adminModel.AdminModel{}).
		Where("lower(admin_email) = ? AND admin_deleted_at IS NULL", p.Email).
		Count(&cnt).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal cek duplikasi email")
	}
	if cnt > 0 {
		return helper.JsonError(c, fiber.StatusConflict, "Email sudah terdaftar")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(p.AccessKey), bcrypt.DefaultCost)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal memproses access key")
	}

	ent := p.ToModel(string(hash))
	if err := h.DB.WithContext(c.UserContext()).Create(&ent).Error; err != nil {
		status, msg := helper.TranslateDBError(err, "", "Email sudah terdaftar")
		return helper.JsonError(c, status, msg)
	}

	auditService.Record(h.DB, c, auditService.ActionCreate, "admins", &ent.AdminID, nil, adminDTO.FromModel(ent))

	return helper.JsonCreated(c, "Berhasil membuat admin", adminDTO.FromModel(ent))
}

/* =========================================================
   LIST — filter role/branch + paging
   ========================================================= */

func (h *AdminsController) List(c *fiber.Ctx) error {
	paging := helper.ResolvePaging(c, 25, 200)

	q := h.DB.WithContext(c.UserContext()).Model(&adminModel.AdminModel{}).
		Where("admin_deleted_at IS NULL")

	if role := strings.ToLower(strings.TrimSpace(c.Query("role"))); role != "" {
		if !constants.ValidAdminRole(role) {
			return helper.JsonError(c, fiber.StatusBadRequest, "role tidak dikenal")
		}
		q = q.Where("admin_role = ?", role)
	}
	if raw := strings.TrimSpace(c.Query("branch_id")); raw != "" {
		branchID, err := uuid.Parse(raw)
		if err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "branch_id tidak valid")
		}
		q = q.Where("admin_branch_id = ?", branchID)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menghitung admin")
	}

	var rows []adminModel.AdminModel
	if err := q.
		Order("admin_created_at DESC").
		Limit(paging.Limit).
		Offset(paging.Offset).
		Find(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal memuat admin")
	}

	return helper.JsonList(c, "OK", adminDTO.FromModels(rows),
		helper.BuildPaginationFromPage(total, paging.Page, paging.PerPage, len(rows)))
}

/* =========================================================
   GET BY ID
   ========================================================= */

func (h *AdminsController) GetByID(c *fiber.Ctx) error {
	id, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID tidak valid")
	}

	var ent adminModel.AdminModel
	if err := h.DB.First(&ent, "admin_id = ? AND admin_deleted_at IS NULL", id).Error; err != nil {
		status, msg := helper.TranslateDBError(err, "Admin tidak ditemukan", "")
		return helper.JsonError(c, status, msg)
	}
	return helper.JsonOK(c, "OK", adminDTO.FromModel(ent))
}

/* =========================================================
   UPDATE (partial)
   ========================================================= */

func (h *AdminsController) Update(c *fiber.Ctx) error {
	id, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID tidak valid")
	}

	var p adminDTO.UpdateAdminRequest
	if err := c.BodyParser(&p); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	p.Normalize()
	if err := h.Validator.Struct(p); err != nil {
		return helper.JsonValidationError(c, err)
	}

	var ent adminModel.AdminModel
	if err := h.DB.First(&ent, "admin_id = ? AND admin_deleted_at IS NULL", id).Error; err != nil {
		status, msg := helper.TranslateDBError(err, "Admin tidak ditemukan", "")
		return helper.JsonError(c, status, msg)
	}
	before := adminDTO.FromModel(ent)

	updates := map[string]any{}
	if p.Name != nil {
		updates["admin_name"] = *p.Name
	}
	if p.Role != nil {
		updates["admin_role"] = *p.Role
		if *p.Role != constants.RoleRepresentative {
			updates["admin_branch_id"] = nil
			updates["admin_year_id"] = nil
		}
	}
	if p.BranchID != nil {
		updates["admin_branch_id"] = *p.BranchID
	}
	if p.YearID != nil {
		updates["admin_year_id"] = *p.YearID
	}
	if p.IsActive != nil {
		updates["admin_is_active"] = *p.IsActive
	}
	if p.AccessKey != nil {
		hash, err := bcrypt.GenerateFromPassword([]byte(*p.AccessKey), bcrypt.DefaultCost)
		if err != nil {
			return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal memproses access key")
		}
		updates["admin_access_key_hash"] = string(hash)
	}
	if len(updates) == 0 {
		return helper.JsonOK(c, "Tidak ada perubahan", adminDTO.FromModel(ent))
	}

	if err := h.DB.WithContext(c.UserContext()).
		Model(&ent).Updates(updates).Error; err != nil {
		status, msg := helper.TranslateDBError(err, "", "Email sudah terdaftar")
		return helper.JsonError(c, status, msg)
	}

	// reload
	_ = h.DB.First(&ent, "admin_id = ?", id).Error

	auditService.Record(h.DB, c, auditService.ActionUpdate, "admins", &ent.AdminID, before, adminDTO.FromModel(ent))

	return helper.JsonUpdated(c, "Berhasil memperbarui admin", adminDTO.FromModel(ent))
}

/* =========================================================
   DELETE (soft)
   ========================================================= */

func (h *AdminsController) Delete(c *fiber.Ctx) error {
	id, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID tidak valid")
	}

	var ent adminModel.AdminModel
	if err := h.DB.First(&ent, "admin_id = ? AND admin_deleted_at IS NULL", id).Error; err != nil {
		status, msg := helper.TranslateDBError(err, "Admin tidak ditemukan", "")
		return helper.JsonError(c, status, msg)
	}

	if err := h.DB.WithContext(c.UserContext()).Delete(&ent).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menghapus admin")
	}

	auditService.Record(h.DB, c, auditService.ActionDelete, "admins", &ent.AdminID, adminDTO.FromModel(ent), nil)

	return helper.JsonDeleted(c, "Berhasil menghapus admin", fiber.Map{"admin_id": ent.AdminID})
}
