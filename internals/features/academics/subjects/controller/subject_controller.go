// file: internals/features/academics/subjects/controller/subject_controller.go
package controller

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	subjectDTO "catatanku_backend/internals/features/academics/subjects/dto"
	subjectModel "catatanku_backend/internals/features/academics/subjects/model"
	bulkService "catatanku_backend/internals/features/home/bulk/service"
	auditService "catatanku_backend/internals/features/users/audit/service"
	helper "catatanku_backend/internals/helpers"
)

type SubjectsController struct {
	DB        *gorm.DB
	Validator interface{ Struct(any) error }
}

func NewSubjectsController(db *gorm.DB, v interface{ Struct(any) error }) *SubjectsController {
	return &SubjectsController{DB: db, Validator: v}
}

/* =========================================================
   CREATE (admin only) — slug unik
   ========================================================= */

func (h *SubjectsController) Create(c *fiber.Ctx) error {
	var p subjectDTO.CreateSubjectRequest
	if err := c.BodyParser(&p); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	p.Normalize()
	if err := h.Validator.Struct(p); err != nil {
		return helper.JsonValidationError(c, err)
	}

	// code unik (alive, CI)
	var cnt int64
	if err := h.DB.Model(&subjectModel.SubjectModel{}).
		Where("lower(subject_code) = lower(?) AND subject_deleted_at IS NULL", p.Code).
		Count(&cnt).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal cek duplikasi kode")
	}
	if cnt > 0 {
		return helper.JsonError(c, fiber.StatusConflict, "Kode subject sudah digunakan")
	}

	// slug unik
	baseSlug := ""
	if p.Slug != nil {
		baseSlug = *p.Slug
	} else {
		baseSlug = helper.Slugify(p.Name, 160)
		if baseSlug == "" {
			baseSlug = "subject"
		}
	}
	uniqueSlug, err := helper.EnsureUniqueSlug(h.DB, baseSlug, "subjects", "subject_slug")
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menghasilkan slug unik")
	}

	ent := p.ToModel(uniqueSlug)
	if err := h.DB.WithContext(c.UserContext()).Create(&ent).Error; err != nil {
		status, msg := helper.TranslateDBError(err, "", "Kode/slug subject sudah digunakan")
		return helper.JsonError(c, status, msg)
	}

	auditService.Record(h.DB, c, auditService.ActionCreate, "subjects", &ent.SubjectID, nil, ent)
	bulkService.Store.InvalidateAcademic()

	return helper.JsonCreated(c, "Berhasil membuat subject", ent)
}

/* =========================================================
   LIST — ?branch_id=&semester_id= → urut offering,
   tanpa filter → semua subject urut nama
   ========================================================= */

func (h *SubjectsController) List(c *fiber.Ctx) error {
	branchRaw := strings.TrimSpace(c.Query("branch_id"))
	semesterRaw := strings.TrimSpace(c.Query("semester_id"))

	// tanpa kombinasi → daftar master subject
	if branchRaw == "" && semesterRaw == "" {
		var rows []subjectModel.SubjectModel
		q := h.DB.WithContext(c.UserContext()).
			Where("subject_deleted_at IS NULL")
		if !strings.EqualFold(c.Query("include_inactive"), "true") {
			q = q.Where("subject_is_active = TRUE")
		}
		if err := q.Order("subject_name ASC").Find(&rows).Error; err != nil {
			return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal memuat subject")
		}
		return helper.JsonOK(c, "OK", rows)
	}

	if branchRaw == "" || semesterRaw == "" {
		return helper.JsonError(c, fiber.StatusBadRequest, "branch_id dan semester_id harus dikirim bersama")
	}
	branchID, err := uuid.Parse(branchRaw)
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "branch_id tidak valid")
	}
	semesterID, err := uuid.Parse(semesterRaw)
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "semester_id tidak valid")
	}

	rows, err := ListOrderedSubjects(h.DB, branchID, semesterID)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal memuat subject")
	}
	return helper.JsonOK(c, "OK", rows)
}

// ListOrderedSubjects: subject aktif utk kombinasi branch+semester,
// urut offering_order_index.
func ListOrderedSubjects(db *gorm.DB, branchID, semesterID uuid.UUID) ([]subjectDTO.OrderedSubject, error) {
	var rows []subjectDTO.OrderedSubject
	err := db.
		Table("subject_offerings").
		Select("subjects.*, subject_offerings.offering_id, subject_offerings.offering_order_index").
		Joins("JOIN subjects ON subjects.subject_id = subject_offerings.offering_subject_id").
		Where(`subject_offerings.offering_branch_id = ?
			AND subject_offerings.offering_semester_id = ?
			AND subject_offerings.offering_deleted_at IS NULL
			AND subjects.subject_deleted_at IS NULL
			AND subjects.subject_is_active = TRUE`, branchID, semesterID).
		Order("subject_offerings.offering_order_index ASC, subjects.subject_name ASC").
		Find(&rows).Error
	return rows, err
}

/* =========================================================
   UPDATE (partial, admin only)
   ========================================================= */

func (h *SubjectsController) Update(c *fiber.Ctx) error {
	id, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID tidak valid")
	}

	var p subjectDTO.UpdateSubjectRequest
	if err := c.BodyParser(&p); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	p.Normalize()
	if err := h.Validator.Struct(p); err != nil {
		return helper.JsonValidationError(c, err)
	}

	var ent subjectModel.SubjectModel
	if err := h.DB.First(&ent, "subject_id = ? AND subject_deleted_at IS NULL", id).Error; err != nil {
		status, msg := helper.TranslateDBError(err, "Subject tidak ditemukan", "")
		return helper.JsonError(c, status, msg)
	}
	before := ent

	updates := map[string]any{}
	if p.Code != nil {
		updates["subject_code"] = *p.Code
	}
	if p.Name != nil {
		updates["subject_name"] = *p.Name
	}
	if p.Desc != nil {
		if *p.Desc == "" {
			updates["subject_desc"] = nil
		} else {
			updates["subject_desc"] = *p.Desc
		}
	}
	if p.IsActive != nil {
		updates["subject_is_active"] = *p.IsActive
	}
	if len(updates) == 0 {
		return helper.JsonOK(c, "Tidak ada perubahan", ent)
	}

	if err := h.DB.WithContext(c.UserContext()).Model(&ent).Updates(updates).Error; err != nil {
		status, msg := helper.TranslateDBError(err, "", "Kode subject sudah digunakan")
		return helper.JsonError(c, status, msg)
	}
	_ = h.DB.First(&ent, "subject_id = ?", id).Error

	auditService.Record(h.DB, c, auditService.ActionUpdate, "subjects", &ent.SubjectID, before, ent)
	bulkService.Store.InvalidateAcademic()

	return helper.JsonUpdated(c, "Berhasil memperbarui subject", ent)
}

/* =========================================================
   DELETE (soft, admin only) — offering ikut dibersihkan
   ========================================================= */

func (h *SubjectsController) Delete(c *fiber.Ctx) error {
	id, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID tidak valid")
	}

	var ent subjectModel.SubjectModel
	if err := h.DB.First(&ent, "subject_id = ? AND subject_deleted_at IS NULL", id).Error; err != nil {
		status, msg := helper.TranslateDBError(err, "Subject tidak ditemukan", "")
		return helper.JsonError(c, status, msg)
	}

	err = h.DB.WithContext(c.UserContext()).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("offering_subject_id = ?", id).
			Delete(&subjectModel.SubjectOfferingModel{}).Error; err != nil {
			return err
		}
		return tx.Delete(&ent).Error
	})
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menghapus subject")
	}

	auditService.Record(h.DB, c, auditService.ActionDelete, "subjects", &ent.SubjectID, ent, nil)
	bulkService.Store.InvalidateAcademic()

	return helper.JsonDeleted(c, "Berhasil menghapus subject", fiber.Map{"subject_id": ent.SubjectID})
}
