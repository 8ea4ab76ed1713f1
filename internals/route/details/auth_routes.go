// file: internals/route/details/auth_routes.go
package details

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	authController "catatanku_backend/internals/features/users/auth/controller"
	"catatanku_backend/internals/middlewares"
)

// AuthPublicRoutes: login/refresh tanpa token, login dibatasi limiter.
func AuthPublicRoutes(r fiber.Router, db *gorm.DB, v *validator.Validate) {
	ctrl := authController.NewAuthController(db, v)

	auth := r.Group("/auth")
	auth.Post("/login", middlewares.LoginRateLimiter(), ctrl.Login)
	auth.Post("/refresh", ctrl.Refresh)
}

// AuthUserRoutes: endpoint yang butuh token valid.
func AuthUserRoutes(r fiber.Router, db *gorm.DB, v *validator.Validate) {
	ctrl := authController.NewAuthController(db, v)

	auth := r.Group("/auth")
	auth.Post("/logout", ctrl.Logout)
	auth.Get("/me", ctrl.Me)
}
