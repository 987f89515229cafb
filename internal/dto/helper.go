package dto

import (
	"github.com/gofiber/fiber/v2"

	apperrors "github.com/agrix/agrix/internal/pkg/errors"
	"github.com/agrix/agrix/internal/validator"
)

// ParseAndValidate parses the request body into the given struct and validates it.
// Nothing is written to the response; the caller renders the returned error.
func ParseAndValidate(c *fiber.Ctx, v any) error {
	if err := c.BodyParser(v); err != nil {
		return apperrors.BadRequest("Invalid request body: " + err.Error())
	}

	if err := validator.Validate(v); err != nil {
		return err
	}

	return nil
}
