// file: internals/route/index.go
package route

import (
	"log"
	"os"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	ActivityLogRoutes "learnhub_backend/internals/features/admin_tools/activity_logs/route"
	CertificateRoutes "learnhub_backend/internals/features/lms/certificates/route"
	CourseRoutes "learnhub_backend/internals/features/lms/courses/route"
	EnrollmentRoutes "learnhub_backend/internals/features/lms/enrollments/route"
	PaymentRoutes "learnhub_backend/internals/features/lms/payments/route"
	authMiddleware "learnhub_backend/internals/middlewares/auth"
)

func SetupRoutes(app *fiber.App, db *gorm.DB) {
	jwt := authMiddleware.AuthJWT(authMiddleware.AuthJWTOpts{
		Secret:              os.Getenv("JWT_SECRET"),
		AllowCookieFallback: true,
	})

	// ===================== PUBLIC =====================
	log.Println("[INFO] Setting up PUBLIC group...")
	public := app.Group("/api/public")
	CertificateRoutes.CertificatePublicRoutes(public, db)

	// ===================== PRIVATE (USER) =====================
	log.Println("[INFO] Setting up PRIVATE group (/api/u)...")
	private := app.Group("/api/u", jwt)

	// ===================== ADMIN =====================
	log.Println("[INFO] Setting up ADMIN group (/api/a)...")
	admin := app.Group("/api/a", jwt)

	// ===================== MOUNT ROUTES =====================
	log.Println("[INFO] Mounting Course routes...")
	CourseRoutes.CourseAdminRoutes(admin, db)

	log.Println("[INFO] Mounting Enrollment routes...")
	EnrollmentRoutes.EnrollmentUserRoutes(private, db)
	EnrollmentRoutes.EnrollmentAdminRoutes(admin, db)

	log.Println("[INFO] Mounting Certificate routes...")
	CertificateRoutes.CertificateUserRoutes(private, db)

	log.Println("[INFO] Mounting Payment routes...")
	PaymentRoutes.PaymentUserRoutes(private, db)
	PaymentRoutes.PaymentAdminRoutes(admin, db)

	log.Println("[INFO] Mounting ActivityLog routes...")
	ActivityLogRoutes.ActivityLogAdminRoutes(admin, db)
}
