// file: internals/features/lms/enrollments/route/user_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"learnhub_backend/internals/features/lms/enrollments/controller"
)

// Progres belajar milik siswa sendiri (login)
func EnrollmentUserRoutes(api fiber.Router, db *gorm.DB) {
	ctrl := controller.NewEnrollmentUserController(db)

	enrollments := api.Group("/enrollments")
	enrollments.Get("/", ctrl.ListMine)
	enrollments.Get("/:id", ctrl.GetByID)
	enrollments.Post("/:id/lessons/:lesson_id/completion", ctrl.SetLessonCompletion)
}
