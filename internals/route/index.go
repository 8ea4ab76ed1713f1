// file: internals/route/index.go
package routes

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	authMiddleware "catatanku_backend/internals/middlewares/auth"
	details "catatanku_backend/internals/route/details"
)

// SetupRoutes memasang tiga group utama:
//   - /api/public : tanpa auth (read-only + login)
//   - /api/u      : butuh token (semua role admin)
//   - /api/a      : butuh token + role admin/owner
func SetupRoutes(app *fiber.App, db *gorm.DB) {
	v := validator.New()

	public := app.Group("/api/public")
	details.AuthPublicRoutes(public, db, v)
	details.AcademicPublicRoutes(public, db, v)
	details.ResourcePublicRoutes(public, db, v)
	details.HomePublicRoutes(public, db, v)
	details.ProfilePublicRoutes(public, db, v)

	// group login: butuh token valid (role apapun)
	user := app.Group("/api/u", authMiddleware.AuthMiddleware(db))
	details.AuthUserRoutes(user, db, v)
	details.ResourceUserRoutes(user, db, v)
	details.AcademicUserRoutes(user, db, v)

	// group admin: token + role admin/owner
	admin := app.Group("/api/a",
		authMiddleware.AuthMiddleware(db),
		authMiddleware.RequireAdmin("admin area"))
	details.AcademicAdminRoutes(admin, db, v)
	details.HomeAdminRoutes(admin, db, v)
	details.AdminManagementRoutes(admin, db, v)
}
