package helper

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

// ✅ Khusus error validasi (validator.v10) → map field → pesan
func ValidationError(c *fiber.Ctx, err error) error {
	ve, ok := err.(validator.ValidationErrors)
	if !ok {
		return JsonError(c, fiber.StatusBadRequest, "Input tidak valid")
	}

	errorsMap := make(map[string][]string)
	for _, fieldErr := range ve {
		errorsMap[fieldErr.Field()] = append(errorsMap[fieldErr.Field()], fieldErr.Tag())
	}

	return JsonValidationError(c, errorsMap)
}
