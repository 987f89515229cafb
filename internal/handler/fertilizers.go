package handler

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/agrix/agrix/internal/domain"
	"github.com/agrix/agrix/internal/dto"
	"github.com/agrix/agrix/internal/service"
)

// FertilizersHandler handles fertilizer endpoints
type FertilizersHandler struct {
	fertilizerService *service.FertilizerService
	logger            *zap.Logger
}

// NewFertilizersHandler creates a new fertilizers handler
func NewFertilizersHandler(fertilizerService *service.FertilizerService, logger *zap.Logger) *FertilizersHandler {
	return &FertilizersHandler{
		fertilizerService: fertilizerService,
		logger:            logger,
	}
}

// ListFertilizers handles GET /fertilizers
func (h *FertilizersHandler) ListFertilizers(c *fiber.Ctx) error {
	fertilizers, err := h.fertilizerService.List(c.Context())
	if err != nil {
		return respondError(c, h.logger, err, "list fertilizers")
	}
	return c.JSON(fertilizers)
}

// GetFertilizer handles GET /fertilizers/:id
func (h *FertilizersHandler) GetFertilizer(c *fiber.Ctx) error {
	id, err := parseID(c, "id", "fertilizer")
	if err != nil {
		return respondError(c, h.logger, err, "get fertilizer")
	}

	fertilizer, err := h.fertilizerService.Get(c.Context(), id)
	if err != nil {
		return respondError(c, h.logger, err, "get fertilizer")
	}
	return c.JSON(fertilizer)
}

// CreateFertilizer handles POST /fertilizers
func (h *FertilizersHandler) CreateFertilizer(c *fiber.Ctx) error {
	var input domain.FertilizerInput
	if err := dto.ParseAndValidate(c, &input); err != nil {
		return respondError(c, h.logger, err, "create fertilizer")
	}

	fertilizer, err := h.fertilizerService.Create(c.Context(), &input)
	if err != nil {
		return respondError(c, h.logger, err, "create fertilizer")
	}
	return c.Status(fiber.StatusCreated).JSON(fertilizer)
}

// RegisterRoutes registers fertilizer routes
func (h *FertilizersHandler) RegisterRoutes(router fiber.Router) {
	fertilizers := router.Group("/fertilizers")
	fertilizers.Get("/", h.ListFertilizers)
	fertilizers.Post("/", h.CreateFertilizer)
	fertilizers.Get("/:id", h.GetFertilizer)
}
