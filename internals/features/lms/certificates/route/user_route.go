// file: internals/features/lms/certificates/route/user_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"learnhub_backend/internals/features/lms/certificates/controller"
)

// Sertifikat milik siswa sendiri (login)
func CertificateUserRoutes(api fiber.Router, db *gorm.DB) {
	ctrl := controller.NewCertificateController(db)

	certificates := api.Group("/certificates")
	certificates.Get("/", ctrl.ListMine)
}

// Verifikasi publik nomor seri (tanpa login)
func CertificatePublicRoutes(api fiber.Router, db *gorm.DB) {
	ctrl := controller.NewCertificateController(db)

	api.Get("/certificates/:serial", ctrl.GetBySerial)
}
