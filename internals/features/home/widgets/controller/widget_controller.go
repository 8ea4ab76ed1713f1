// file: internals/features/home/widgets/controller/widget_controller.go
package controller

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	bulkService "catatanku_backend/internals/features/home/bulk/service"
)

type WidgetsController struct {
	DB        *gorm.DB
	Validator interface{ Struct(any) error }
}

func NewWidgetsController(db *gorm.DB, v interface{ Struct(any) error }) *WidgetsController {
	return &WidgetsController{DB: db, Validator: v}
}

// invalidateWidgetScope: scoped kalau kombinasi lengkap, selain itu semua key widget
func invalidateWidgetScope(branchID, semesterID *uuid.UUID) {
	if branchID != nil && semesterID != nil {
		bulkService.Store.InvalidateWidgetsFor(*branchID, *semesterID)
		return
	}
	bulkService.Store.InvalidateWidgets()
}

// parseScopeQuery membaca ?branch_id=&semester_id= (opsional, keduanya valid uuid).
func parseScopeQuery(c *fiber.Ctx) (branchID, semesterID *uuid.UUID, err error) {
	if raw := strings.TrimSpace(c.Query("branch_id")); raw != "" {
		id, e := uuid.Parse(raw)
		if e != nil {
			return nil, nil, fiber.NewError(fiber.StatusBadRequest, "branch_id tidak valid")
		}
		branchID = &id
	}
	if raw := strings.TrimSpace(c.Query("semester_id")); raw != "" {
		id, e := uuid.Parse(raw)
		if e != nil {
			return nil, nil, fiber.NewError(fiber.StatusBadRequest, "semester_id tidak valid")
		}
		semesterID = &id
	}
	return branchID, semesterID, nil
}
