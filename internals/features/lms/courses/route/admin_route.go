// file: internals/features/lms/courses/route/admin_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"learnhub_backend/internals/features/lms/courses/controller"
	authMiddleware "learnhub_backend/internals/middlewares/auth"
)

// Manajemen katalog (login + instructor/admin/owner)
func CourseAdminRoutes(api fiber.Router, db *gorm.DB) {
	catalog := api.Group("/",
		authMiddleware.IsInstructorOrAdmin("mengelola katalog course"),
	)

	courseCtrl := controller.NewCourseController(db)
	sectionCtrl := controller.NewSectionController(db)
	lessonCtrl := controller.NewLessonController(db)
	categoryCtrl := controller.NewCategoryController(db)

	// /categories
	categories := catalog.Group("/categories")
	categories.Post("/", categoryCtrl.Create)
	categories.Get("/", categoryCtrl.List)

	// /courses
	courses := catalog.Group("/courses")
	courses.Post("/", courseCtrl.Create)
	courses.Get("/", courseCtrl.List)
	courses.Get("/:id", courseCtrl.GetByID)
	courses.Patch("/:id/status", courseCtrl.UpdateStatus)
	courses.Get("/:id/sections", sectionCtrl.ListByCourse)

	// /sections
	sections := catalog.Group("/sections")
	sections.Post("/", sectionCtrl.Create)
	sections.Post("/reorder", sectionCtrl.Reorder)
	sections.Get("/:id/lessons", lessonCtrl.ListBySection)

	// /lessons
	lessons := catalog.Group("/lessons")
	lessons.Post("/", lessonCtrl.Create)
	lessons.Patch("/:id/completion", lessonCtrl.SetGlobalCompletion) // cascade ke semua enrollment aktif
}
