package handler

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/agrix/agrix/internal/domain"
	"github.com/agrix/agrix/internal/dto"
	"github.com/agrix/agrix/internal/service"
)

// FarmsHandler handles farm endpoints
type FarmsHandler struct {
	farmService *service.FarmService
	logger      *zap.Logger
}

// NewFarmsHandler creates a new farms handler
func NewFarmsHandler(farmService *service.FarmService, logger *zap.Logger) *FarmsHandler {
	return &FarmsHandler{
		farmService: farmService,
		logger:      logger,
	}
}

// ListFarms handles GET /farms
func (h *FarmsHandler) ListFarms(c *fiber.Ctx) error {
	farms, err := h.farmService.List(c.Context())
	if err != nil {
		return respondError(c, h.logger, err, "list farms")
	}
	return c.JSON(farms)
}

// GetFarm handles GET /farms/:id
func (h *FarmsHandler) GetFarm(c *fiber.Ctx) error {
	id, err := parseID(c, "id", "farm")
	if err != nil {
		return respondError(c, h.logger, err, "get farm")
	}

	farm, err := h.farmService.Get(c.Context(), id)
	if err != nil {
		return respondError(c, h.logger, err, "get farm")
	}
	return c.JSON(farm)
}

// CreateFarm handles POST /farms
func (h *FarmsHandler) CreateFarm(c *fiber.Ctx) error {
	var input domain.FarmInput
	if err := dto.ParseAndValidate(c, &input); err != nil {
		return respondError(c, h.logger, err, "create farm")
	}

	farm, err := h.farmService.Create(c.Context(), &input)
	if err != nil {
		return respondError(c, h.logger, err, "create farm")
	}
	return c.Status(fiber.StatusCreated).JSON(farm)
}

// UpdateFarm handles PUT /farms/:id
func (h *FarmsHandler) UpdateFarm(c *fiber.Ctx) error {
	id, err := parseID(c, "id", "farm")
	if err != nil {
		return respondError(c, h.logger, err, "update farm")
	}

	var input domain.FarmUpdateInput
	if err := dto.ParseAndValidate(c, &input); err != nil {
		return respondError(c, h.logger, err, "update farm")
	}

	farm, err := h.farmService.Update(c.Context(), id, &input)
	if err != nil {
		return respondError(c, h.logger, err, "update farm")
	}
	return c.JSON(farm)
}

// DeleteFarm handles DELETE /farms/:id
func (h *FarmsHandler) DeleteFarm(c *fiber.Ctx) error {
	id, err := parseID(c, "id", "farm")
	if err != nil {
		return respondError(c, h.logger, err, "delete farm")
	}

	farm, err := h.farmService.Delete(c.Context(), id)
	if err != nil {
		return respondError(c, h.logger, err, "delete farm")
	}
	return c.JSON(farm)
}

// ListFarmCrops handles GET /farms/:id/crops
func (h *FarmsHandler) ListFarmCrops(c *fiber.Ctx) error {
	id, err := parseID(c, "id", "farm")
	if err != nil {
		return respondError(c, h.logger, err, "list farm crops")
	}

	crops, err := h.farmService.ListCrops(c.Context(), id)
	if err != nil {
		return respondError(c, h.logger, err, "list farm crops")
	}
	return c.JSON(crops)
}

// RegisterRoutes registers farm routes
func (h *FarmsHandler) RegisterRoutes(router fiber.Router) {
	farms := router.Group("/farms")
	farms.Get("/", h.ListFarms)
	farms.Post("/", h.CreateFarm)
	farms.Get("/:id", h.GetFarm)
	farms.Put("/:id", h.UpdateFarm)
	farms.Delete("/:id", h.DeleteFarm)
	farms.Get("/:id/crops", h.ListFarmCrops)
}
