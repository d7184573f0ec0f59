package auth

import (
	"github.com/gofiber/fiber/v2"

	"learnhub_backend/internals/constants"
)

// OnlyRolesSlice membatasi akses berdasarkan role di token.
// Catatan: engine progress/payment sendiri tidak mengecek otorisasi —
// gate-nya di sini, di lapisan route.
func OnlyRolesSlice(errMessage string, allowed []string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		role, _ := c.Locals("user_role").(string)
		if role == "" {
			return fiber.NewError(fiber.StatusUnauthorized, "Role tidak ditemukan di token")
		}
		for _, r := range allowed {
			if role == r {
				return c.Next()
			}
		}
		return fiber.NewError(fiber.StatusForbidden, errMessage)
	}
}

// IsAdmin: shortcut untuk grup /api/a
func IsAdmin(feature string) fiber.Handler {
	return OnlyRolesSlice(constants.RoleErrorAdmin(feature), constants.AdminAndAbove)
}

// IsInstructorOrAdmin: untuk fitur pengajaran (toggle pelajaran global, dsb)
func IsInstructorOrAdmin(feature string) fiber.Handler {
	return OnlyRolesSlice(constants.RoleErrorInstructor(feature), constants.InstructorAndAbove)
}
