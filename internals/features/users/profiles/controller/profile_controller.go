// file: internals/features/users/profiles/controller/profile_controller.go
package controller

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	profileDTO "catatanku_backend/internals/features/users/profiles/dto"
	profileModel "catatanku_backend/internals/features/users/profiles/model"
	helper "catatanku_backend/internals/helpers"
)

type ProfilesController struct {
	DB        *gorm.DB
	Validator interface{ Struct(any) error }
}

func NewProfilesController(db *gorm.DB, v interface{ Struct(any) error }) *ProfilesController {
	return &ProfilesController{DB: db, Validator: v}
}

/* =========================================================
   CREATE — 409 kalau email sudah punya profile
   ========================================================= */

func (h *ProfilesController) Create(c *fiber.Ctx) error {
	var p profileDTO.CreateProfileRequest
	if err := c.BodyParser(&p); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	p.Normalize()
	if err := h.Validator.Struct(p); err != nil {
		return helper.JsonValidationError(c, err)
	}

	var cnt int64
	if err := h.DB.Model(&profileModel.ProfileModel{}).
		Where("lower(profile_email) = ? AND profile_deleted_at IS NULL", p.Email).
		Count(&cnt).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal cek duplikasi email")
	}
	if cnt > 0 {
		return helper.JsonError(c, fiber.StatusConflict, "Profile untuk email ini sudah ada")
	}

	ent := p.ToModel()
	if err := h.DB.WithContext(c.UserContext()).Create(&ent).Error; err != nil {
		status, msg := helper.TranslateDBError(err, "", "Profile untuk email ini sudah ada")
		return helper.JsonError(c, status, msg)
	}

	return helper.JsonCreated(c, "Berhasil membuat profile", ent)
}

/* =========================================================
   GET BY EMAIL — ?email=
   ========================================================= */

func (h *ProfilesController) GetByEmail(c *fiber.Ctx) error {
	email := strings.ToLower(strings.TrimSpace(c.Query("email")))
	if email == "" {
		return helper.JsonError(c, fiber.StatusBadRequest, "Query email wajib diisi")
	}

	var ent profileModel.ProfileModel
	if err := h.DB.WithContext(c.UserContext()).
		Where("lower(profile_email) = ? AND profile_deleted_at IS NULL", email).
		First(&ent).Error; err != nil {
		status, msg := helper.TranslateDBError(err, "Profile tidak ditemukan", "")
		return helper.JsonError(c, status, msg)
	}
	return helper.JsonOK(c, "OK", ent)
}

/* =========================================================
   UPDATE — partial by email
   ========================================================= */

func (h *ProfilesController) Update(c *fiber.Ctx) error {
	email := strings.ToLower(strings.TrimSpace(c.Query("email")))
	if email == "" {
		return helper.JsonError(c, fiber.StatusBadRequest, "Query email wajib diisi")
	}

	var p profileDTO.UpdateProfileRequest
	if err := c.BodyParser(&p); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	p.Normalize()
	if err := h.Validator.Struct(p); err != nil {
		return helper.JsonValidationError(c, err)
	}

	var ent profileModel.ProfileModel
	if err := h.DB.
		Where("lower(profile_email) = ? AND profile_deleted_at IS NULL", email).
		First(&ent).Error; err != nil {
		status, msg := helper.TranslateDBError(err, "Profile tidak ditemukan", "")
		return helper.JsonError(c, status, msg)
	}

	updates := map[string]any{}
	if p.Name != nil {
		updates["profile_name"] = *p.Name
	}
	if p.CollegeID != nil {
		if *p.CollegeID == "" {
			updates["profile_college_id"] = nil
		} else {
			updates["profile_college_id"] = *p.CollegeID
		}
	}
	if p.BranchID != nil {
		updates["profile_branch_id"] = *p.BranchID
	}
	if p.YearID != nil {
		updates["profile_year_id"] = *p.YearID
	}
	if p.SemesterID != nil {
		updates["profile_semester_id"] = *p.SemesterID
	}
	if len(updates) == 0 {
		return helper.JsonOK(c, "Tidak ada perubahan", ent)
	}

	if err := h.DB.WithContext(c.UserContext()).
		Model(&ent).Updates(updates).Error; err != nil {
		status, msg := helper.TranslateDBError(err, "", "")
		return helper.JsonError(c, status, msg)
	}

	_ = h.DB.First(&ent, "profile_id = ?", ent.ProfileID).Error
	return helper.JsonUpdated(c, "Berhasil memperbarui profile", ent)
}
