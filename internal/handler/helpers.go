package handler

import (
	"errors"
	"strconv"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	apperrors "github.com/agrix/agrix/internal/pkg/errors"
	"github.com/agrix/agrix/internal/validator"
)

// ErrorResponse represents a standardized error response.
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}

// ValidationErrorResponse is returned when request fields fail validation.
type ValidationErrorResponse struct {
	Error   string                     `json:"error"`
	Message string                     `json:"message"`
	Errors  validator.ValidationErrors `json:"errors"`
}

// parseID reads a positive integer path parameter. resource names the
// entity in the error message, e.g. "farm".
func parseID(c *fiber.Ctx, param, resource string) (int64, error) {
	id, err := strconv.ParseInt(c.Params(param), 10, 64)
	if err != nil || id <= 0 {
		return 0, apperrors.BadRequest("Invalid " + resource + " ID")
	}
	return id, nil
}

// respondError renders err. Not-found, bad-request and validation errors
// are reported to the client as they are; anything else is logged and
// answered with a generic 500 naming the failed action.
func respondError(c *fiber.Ctx, logger *zap.Logger, err error, action string) error {
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		return c.Status(fiber.StatusBadRequest).JSON(ValidationErrorResponse{
			Error:   "Validation Error",
			Message: "Request validation failed",
			Errors:  verrs,
		})
	}

	if appErr := apperrors.GetAppError(err); appErr != nil && appErr.StatusCode < fiber.StatusInternalServerError {
		return errorResponse(c, appErr.StatusCode, appErr.Message)
	}

	logger.Error("failed to "+action, zap.Error(err))
	return errorResponse(c, fiber.StatusInternalServerError, "Failed to "+action)
}

// errorResponse creates a standardized JSON error response.
func errorResponse(c *fiber.Ctx, statusCode int, message string) error {
	errorName := "Error"
	switch statusCode {
	case fiber.StatusBadRequest:
		errorName = "Bad Request"
	case fiber.StatusNotFound:
		errorName = "Not Found"
	case fiber.StatusTooManyRequests:
		errorName = "Too Many Requests"
	case fiber.StatusInternalServerError:
		errorName = "Internal Server Error"
	}

	return c.Status(statusCode).JSON(ErrorResponse{
		Error:   errorName,
		Message: message,
	})
}
