// file: internals/features/lms/payments/route/admin_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"learnhub_backend/internals/features/lms/payments/controller"
	authMiddleware "learnhub_backend/internals/middlewares/auth"
)

// Verifikasi pembayaran manual (login + admin/owner)
func PaymentAdminRoutes(api fiber.Router, db *gorm.DB) {
	admin := api.Group("/",
		authMiddleware.IsAdmin("verifikasi pembayaran"),
	)

	ctrl := controller.NewPaymentAdminController(db)

	payments := admin.Group("/payments")
	payments.Get("/", ctrl.List)
	payments.Post("/:id/approve", ctrl.Approve)
	payments.Post("/:id/reject", ctrl.Reject)
	payments.Post("/:id/refund", ctrl.Refund)
}
