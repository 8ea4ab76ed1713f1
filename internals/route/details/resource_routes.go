// file: internals/route/details/resource_routes.go
package details

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	resourceController "catatanku_backend/internals/features/resources/controller"
	"catatanku_backend/internals/middlewares"
	authMiddleware "catatanku_backend/internals/middlewares/auth"
)

// ResourcePublicRoutes: listing & detail resource.
func ResourcePublicRoutes(r fiber.Router, db *gorm.DB, v *validator.Validate) {
	ctrl := resourceController.NewResourcesController(db, v)

	r.Get("/resources", ctrl.List)
	r.Get("/resources/:id", ctrl.GetByID)
}

// ResourceUserRoutes: mutasi resource utk representative+ (scope subject
// dicek controller), dibatasi limiter mutasi.
func ResourceUserRoutes(r fiber.Router, db *gorm.DB, v *validator.Validate) {
	ctrl := resourceController.NewResourcesController(db, v)
	limiter := middlewares.ResourceMutationRateLimiter()

	resources := r.Group("/resources",
		authMiddleware.RequireRepresentativeOrAbove("kelola resource"))
	resources.Post("/", limiter, ctrl.Create)
	resources.Put("/:id", limiter, ctrl.Update)
	resources.Delete("/:id", limiter, ctrl.Delete)
}
