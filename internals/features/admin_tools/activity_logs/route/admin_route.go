// file: internals/features/admin_tools/activity_logs/route/admin_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"learnhub_backend/internals/features/admin_tools/activity_logs/controller"
	authMiddleware "learnhub_backend/internals/middlewares/auth"
)

// Audit trail (login + admin/owner)
func ActivityLogAdminRoutes(api fiber.Router, db *gorm.DB) {
	admin := api.Group("/",
		authMiddleware.IsAdmin("melihat log aktivitas"),
	)

	ctrl := controller.NewActivityLogController(db)

	admin.Get("/activity-logs", ctrl.List)
	admin.Get("/admin-action-logs", ctrl.ListAdminActions)
}
