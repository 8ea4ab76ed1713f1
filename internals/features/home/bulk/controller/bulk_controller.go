// file: internals/features/home/bulk/controller/bulk_controller.go
package controller

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	bulkService "catatanku_backend/internals/features/home/bulk/service"
	auditService "catatanku_backend/internals/features/users/audit/service"
	helper "catatanku_backend/internals/helpers"
)

type BulkController struct {
	DB      *gorm.DB
	Service *bulkService.BulkService
}

func NewBulkController(db *gorm.DB) *BulkController {
	return &BulkController{DB: db, Service: bulkService.NewBulkService(db)}
}

/* =========================================================
   GET /api/public/bulk-academic-data?email=
   ========================================================= */

func (h *BulkController) GetBulkAcademicData(c *fiber.Ctx) error {
	email := strings.TrimSpace(c.Query("email"))
	if email == "" {
		return helper.JsonError(c, fiber.StatusBadRequest, "email wajib dikirim")
	}

	resp, err := h.Service.GetBulkAcademicData(c.UserContext(), email)
	if err != nil {
		if fe, ok := err.(*fiber.Error); ok {
			return helper.JsonError(c, fe.Code, fe.Message)
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal merakit data akademik")
	}

	return helper.JsonOK(c, "OK", resp)
}

/* =========================================================
   POST /api/a/cache/invalidate (admin)
   ========================================================= */

func (h *BulkController) InvalidateCache(c *fiber.Ctx) error {
	dropped := bulkService.Store.ItemCount()
	bulkService.Store.InvalidateAll()

	auditService.Record(h.DB, c, auditService.ActionFlush, "cache", nil,
		nil, fiber.Map{"entries_dropped": dropped})

	return helper.JsonOK(c, "Cache dibersihkan", fiber.Map{"entries_dropped": dropped})
}
