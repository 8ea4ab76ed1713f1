// file: internals/route/details/admin_routes.go
package details

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	adminController "catatanku_backend/internals/features/users/admins/controller"
	auditController "catatanku_backend/internals/features/users/audit/controller"
	profileController "catatanku_backend/internals/features/users/profiles/controller"
)

// AdminManagementRoutes: kelola admin, audit log, dan profile mahasiswa.
func AdminManagementRoutes(r fiber.Router, db *gorm.DB, v *validator.Validate) {
	admins := adminController.NewAdminsController(db, v)
	audits := auditController.NewAuditController(db)
	profiles := profileController.NewProfilesController(db, v)

	r.Post("/admins", admins.Create)
	r.Get("/admins", admins.List)
	r.Get("/admins/:id", admins.GetByID)
	r.Put("/admins/:id", admins.Update)
	r.Delete("/admins/:id", admins.Delete)

	r.Get("/audit-logs", audits.List)

	r.Put("/profiles", profiles.Update)
}

// ProfilePublicRoutes: onboarding profile dari aplikasi (pasca-login Google).
func ProfilePublicRoutes(r fiber.Router, db *gorm.DB, v *validator.Validate) {
	profiles := profileController.NewProfilesController(db, v)

	r.Post("/profiles", profiles.Create)
	r.Get("/profiles", profiles.GetByEmail)
}
