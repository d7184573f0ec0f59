// file: internals/features/lms/payments/route/user_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"learnhub_backend/internals/features/lms/payments/controller"
	"learnhub_backend/internals/middlewares"
)

// Pembayaran milik siswa sendiri (login)
func PaymentUserRoutes(api fiber.Router, db *gorm.DB) {
	ctrl := controller.NewPaymentUserController(db)

	payments := api.Group("/payments")
	payments.Post("/", middlewares.PaymentSubmitRateLimiter(), ctrl.Submit)
	payments.Get("/", ctrl.ListMine)
}
