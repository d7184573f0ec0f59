package helper

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// GetUserIDFromToken membaca user_id yang sudah dihidrasi middleware AuthJWT.
func GetUserIDFromToken(c *fiber.Ctx) (uuid.UUID, error) {
	raw, ok := c.Locals("user_id").(string)
	if !ok || strings.TrimSpace(raw) == "" {
		return uuid.Nil, fiber.NewError(fiber.StatusUnauthorized, "User ID tidak ditemukan di token")
	}
	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, fiber.NewError(fiber.StatusUnauthorized, "User ID pada token tidak valid")
	}
	return id, nil
}

// GetRoleFromToken membaca role user dari locals (diset AuthJWT).
func GetRoleFromToken(c *fiber.Ctx) (string, error) {
	role, ok := c.Locals("user_role").(string)
	if !ok || strings.TrimSpace(role) == "" {
		return "", fiber.NewError(fiber.StatusUnauthorized, "Role tidak ditemukan di token")
	}
	return role, nil
}
