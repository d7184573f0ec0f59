// file: internals/features/lms/enrollments/route/admin_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"learnhub_backend/internals/features/lms/enrollments/controller"
	authMiddleware "learnhub_backend/internals/middlewares/auth"
)

// Rekalkulasi manual (login + admin/owner)
func EnrollmentAdminRoutes(api fiber.Router, db *gorm.DB) {
	admin := api.Group("/",
		authMiddleware.IsAdmin("merekalkulasi progres"),
	)

	ctrl := controller.NewEnrollmentAdminController(db)

	admin.Post("/enrollments/:id/recalc", ctrl.RecalcEnrollment)
	admin.Post("/courses/:id/recalc", ctrl.RecalcCourse)
}
