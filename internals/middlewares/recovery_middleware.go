package middlewares

import (
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
)

// RecoveryMiddleware menangkap panic handler dan mengubahnya jadi 500,
// sambil mencatat lokasi panic lewat log aplikasi.
func RecoveryMiddleware() fiber.Handler {
	return recover.New(recover.Config{
		EnableStackTrace: true,
		StackTraceHandler: func(c *fiber.Ctx, e interface{}) {
			log.Printf("[ERROR] panic pada %s %s: %v", c.Method(), c.Path(), e)
		},
	})
}
