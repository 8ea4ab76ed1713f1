// file: internals/route/details/home_routes.go
package details

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	bulkController "catatanku_backend/internals/features/home/bulk/controller"
	widgetController "catatanku_backend/internals/features/home/widgets/controller"
)

// HomePublicRoutes: widget dashboard + endpoint bulk.
func HomePublicRoutes(r fiber.Router, db *gorm.DB, v *validator.Validate) {
	widgets := widgetController.NewWidgetsController(db, v)
	bulk := bulkController.NewBulkController(db)

	r.Get("/reminders", widgets.ListReminders)
	r.Get("/exams", widgets.ListExams)
	r.Get("/recent-updates", widgets.ListRecentUpdates)

	r.Get("/bulk-academic-data", bulk.GetBulkAcademicData)
}

// HomeAdminRoutes: CRUD widget + flush cache (admin/owner).
func HomeAdminRoutes(r fiber.Router, db *gorm.DB, v *validator.Validate) {
	widgets := widgetController.NewWidgetsController(db, v)
	bulk := bulkController.NewBulkController(db)

	r.Post("/reminders", widgets.CreateReminder)
	r.Put("/reminders/:id", widgets.UpdateReminder)
	r.Delete("/reminders/:id", widgets.DeleteReminder)

	r.Post("/exams", widgets.CreateExam)
	r.Put("/exams/:id", widgets.UpdateExam)
	r.Delete("/exams/:id", widgets.DeleteExam)

	r.Post("/recent-updates", widgets.CreateRecentUpdate)
	r.Put("/recent-updates/:id", widgets.UpdateRecentUpdate)
	r.Delete("/recent-updates/:id", widgets.DeleteRecentUpdate)

	r.Post("/cache/invalidate", bulk.InvalidateCache)
}
