// file: internals/route/details/academic_routes.go
package details

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	branchController "catatanku_backend/internals/features/academics/branches/controller"
	subjectController "catatanku_backend/internals/features/academics/subjects/controller"
	termController "catatanku_backend/internals/features/academics/terms/controller"
	authMiddleware "catatanku_backend/internals/middlewares/auth"
)

// AcademicPublicRoutes: taxonomy & subject read-only.
func AcademicPublicRoutes(r fiber.Router, db *gorm.DB, v *validator.Validate) {
	branches := branchController.NewBranchesController(db, v)
	terms := termController.NewTermsController(db, v)
	subjects := subjectController.NewSubjectsController(db, v)

	r.Get("/branches", branches.List)
	r.Get("/branches/:id", branches.GetByID)

	r.Get("/years", terms.ListYears)
	r.Get("/semesters", terms.ListSemesters)

	r.Get("/subjects", subjects.List)
}

// AcademicUserRoutes: operasi offering utk representative+ (scope branch dicek controller).
func AcademicUserRoutes(r fiber.Router, db *gorm.DB, v *validator.Validate) {
	subjects := subjectController.NewSubjectsController(db, v)

	offerings := r.Group("/offerings",
		authMiddleware.RequireRepresentativeOrAbove("kelola offering"))
	offerings.Post("/", subjects.CreateOffering)
	offerings.Delete("/:id", subjects.DeleteOffering)
	offerings.Put("/reorder", subjects.ReorderOfferings)
}

// AcademicAdminRoutes: CRUD taxonomy & subject master (admin/owner).
func AcademicAdminRoutes(r fiber.Router, db *gorm.DB, v *validator.Validate) {
	branches := branchController.NewBranchesController(db, v)
	terms := termController.NewTermsController(db, v)
	subjects := subjectController.NewSubjectsController(db, v)

	r.Post("/branches", branches.Create)
	r.Put("/branches/:id", branches.Update)
	r.Delete("/branches/:id", branches.Delete)

	r.Post("/years", terms.CreateYear)
	r.Put("/years/:id", terms.UpdateYear)
	r.Delete("/years/:id", terms.DeleteYear)

	r.Post("/semesters", terms.CreateSemester)
	r.Put("/semesters/:id", terms.UpdateSemester)
	r.Delete("/semesters/:id", terms.DeleteSemester)

	r.Post("/subjects", subjects.Create)
	r.Put("/subjects/:id", subjects.Update)
	r.Delete("/subjects/:id", subjects.Delete)
}
