package dto

import (
	"github.com/gofiber/fiber/v2"

	"github.com/agrix/agrix/internal/domain"
	apperrors "github.com/agrix/agrix/internal/pkg/errors"
	"github.com/agrix/agrix/internal/validator"
)

// HarvestIntervalQuery represents the query of GET /crops/search
type HarvestIntervalQuery struct {
	Start string `query:"start" validate:"required"`
	End   string `query:"end" validate:"required"`
}

// ParseHarvestInterval reads and parses the start and end dates of a
// harvest search
func ParseHarvestInterval(c *fiber.Ctx) (start, end domain.Date, err error) {
	var q HarvestIntervalQuery
	if err := c.QueryParser(&q); err != nil {
		return start, end, apperrors.BadRequest("Invalid query: " + err.Error())
	}
	if err := validator.Validate(&q); err != nil {
		return start, end, err
	}

	start, err = domain.ParseDate(q.Start)
	if err != nil {
		return start, end, apperrors.BadRequest("Invalid start date, expected YYYY-MM-DD")
	}
	end, err = domain.ParseDate(q.End)
	if err != nil {
		return start, end, apperrors.BadRequest("Invalid end date, expected YYYY-MM-DD")
	}

	return start, end, nil
}

// MessageResponse carries a confirmation message
type MessageResponse struct {
	Message string `json:"message"`
}
