// file: internals/features/academics/subjects/controller/offering_controller.go
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
	helperAuth "catatanku_backend/internals/helpers/auth"
)

/* =========================================================
   OFFERING: CREATE — order index otomatis di akhir
   ========================================================= */

func (h *SubjectsController) CreateOffering(c *fiber.Ctx) error {
	var p subjectDTO.CreateOfferingRequest
	if err := c.BodyParser(&p); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := h.Validator.Struct(p); err != nil {
		return helper.JsonValidationError(c, err)
	}

	// representative hanya boleh branch miliknya
	if err := helperAuth.EnsureBranchScope(c, p.BranchID); err != nil {
		if fe, ok := err.(*fiber.Error); ok {
			return helper.JsonError(c, fe.Code, fe.Message)
		}
		return helper.JsonError(c, fiber.StatusForbidden, err.Error())
	}

	// duplikasi triplet (alive)
	var cnt int64
	if err := h.DB.Model(&subjectModel.SubjectOfferingModel{}).
		Where(`offering_subject_id = ? AND offering_branch_id = ? AND offering_semester_id = ?
			AND offering_deleted_at IS NULL`, p.SubjectID, p.BranchID, p.SemesterID).
		Count(&cnt).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal cek duplikasi offering")
	}
	if cnt > 0 {
		return helper.JsonError(c, fiber.StatusConflict, "Subject sudah ditawarkan di kombinasi ini")
	}

	// order index: pakai input, atau taruh di akhir
	orderIndex := 0
	if p.OrderIndex != nil {
		orderIndex = *p.OrderIndex
	} else {
		var maxIdx *int
		if err := h.DB.Model(&subjectModel.SubjectOfferingModel{}).
			Select("MAX(offering_order_index)").
			Where(`offering_branch_id = ? AND offering_semester_id = ? AND offering_deleted_at IS NULL`,
				p.BranchID, p.SemesterID).
			Scan(&maxIdx).Error; err != nil {
			return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menghitung urutan")
		}
		if maxIdx != nil {
			orderIndex = *maxIdx + 1
		}
	}

	ent := p.ToModel(orderIndex)
	if err := h.DB.WithContext(c.UserContext()).Create(&ent).Error; err != nil {
		status, msg := helper.TranslateDBError(err, "", "Subject sudah ditawarkan di kombinasi ini")
		return helper.JsonError(c, status, msg)
	}

	auditService.Record(h.DB, c, auditService.ActionCreate, "subject_offerings", &ent.OfferingID, nil, ent)
	bulkService.Store.InvalidateAcademicFor(p.BranchID, p.SemesterID)

	return helper.JsonCreated(c, "Berhasil menambah offering", ent)
}

/* =========================================================
   OFFERING: DELETE
   ========================================================= */

func (h *SubjectsController) DeleteOffering(c *fiber.Ctx) error {
	id, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID tidak valid")
	}

	var ent subjectModel.SubjectOfferingModel
	if err := h.DB.First(&ent, "offering_id = ? AND offering_deleted_at IS NULL", id).Error; err != nil {
		status, msg := helper.TranslateDBError(err, "Offering tidak ditemukan", "")
		return helper.JsonError(c, status, msg)
	}

	if err := helperAuth.EnsureBranchScope(c, ent.OfferingBranchID); err != nil {
		if fe, ok := err.(*fiber.Error); ok {
			return helper.JsonError(c, fe.Code, fe.Message)
		}
		return helper.JsonError(c, fiber.StatusForbidden, err.Error())
	}

	if err := h.DB.WithContext(c.UserContext()).Delete(&ent).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menghapus offering")
	}

	auditService.Record(h.DB, c, auditService.ActionDelete, "subject_offerings", &ent.OfferingID, ent, nil)
	bulkService.Store.InvalidateAcademicFor(ent.OfferingBranchID, ent.OfferingSemesterID)

	return helper.JsonDeleted(c, "Berhasil menghapus offering", fiber.Map{"offering_id": ent.OfferingID})
}

/* =========================================================
   OFFERING: REORDER — rekonsiliasi order_index transaksional
   ========================================================= */

func (h *SubjectsController) ReorderOfferings(c *fiber.Ctx) error {
	var p subjectDTO.ReorderOfferingsRequest
	if err := c.BodyParser(&p); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := h.Validator.Struct(p); err != nil {
		return helper.JsonValidationError(c, err)
	}

	if err := helperAuth.EnsureBranchScope(c, p.BranchID); err != nil {
		if fe, ok := err.(*fiber.Error); ok {
			return helper.JsonError(c, fe.Code, fe.Message)
		}
		return helper.JsonError(c, fiber.StatusForbidden, err.Error())
	}

	// tolak subject id dobel di payload
	seen := make(map[uuid.UUID]struct{}, len(p.SubjectIDs))
	for _, sid := range p.SubjectIDs {
		if _, dup := seen[sid]; dup {
			return helper.JsonError(c, fiber.StatusBadRequest, "subject_ids mengandung duplikat")
		}
		seen[sid] = struct{}{}
	}

	err := h.DB.WithContext(c.UserContext()).Transaction(func(tx *gorm.DB) error {
		var rows []subjectModel.SubjectOfferingModel
		if err := tx.
			Where(`offering_branch_id = ? AND offering_semester_id = ? AND offering_deleted_at IS NULL`,
				p.BranchID, p.SemesterID).
			Find(&rows).Error; err != nil {
			return err
		}

		// payload harus mencakup PERSIS offering yang ada
		if len(rows) != len(p.SubjectIDs) {
			return fiber.NewError(fiber.StatusBadRequest,
				"subject_ids harus mencakup semua offering kombinasi ini")
		}
		existing := make(map[uuid.UUID]uuid.UUID, len(rows)) // subject → offering
		for _, r := range rows {
			existing[r.OfferingSubjectID] = r.OfferingID
		}

		for idx, sid := range p.SubjectIDs {
			offeringID, ok := existing[sid]
			if !ok {
				return fiber.NewError(fiber.StatusBadRequest,
					"subject_ids memuat subject di luar kombinasi ini")
			}
			if err := tx.Model(&subjectModel.SubjectOfferingModel{}).
				Where("offering_id = ?", offeringID).
				Update("offering_order_index", idx).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		if fe, ok := err.(*fiber.Error); ok {
			return helper.JsonError(c, fe.Code, fe.Message)
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menyimpan urutan")
	}

	auditService.Record(h.DB, c, auditService.ActionReorder, "subject_offerings", nil,
		nil, fiber.Map{"branch_id": p.BranchID, "semester_id": p.SemesterID, "subject_ids": p.SubjectIDs})
	bulkService.Store.InvalidateAcademicFor(p.BranchID, p.SemesterID)

	rows, err := ListOrderedSubjects(h.DB, p.BranchID, p.SemesterID)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal memuat urutan baru")
	}
	return helper.JsonUpdated(c, "Urutan subject diperbarui", rows)
}
