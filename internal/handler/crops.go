package handler

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/agrix/agrix/internal/domain"
	"github.com/agrix/agrix/internal/dto"
	"github.com/agrix/agrix/internal/service"
)

// CropsHandler handles crop endpoints, including farm-scoped crop creation
type CropsHandler struct {
	cropService *service.CropService
	logger      *zap.Logger
}

// NewCropsHandler creates a new crops handler
func NewCropsHandler(cropService *service.CropService, logger *zap.Logger) *CropsHandler {
	return &CropsHandler{
		cropService: cropService,
		logger:      logger,
	}
}

// ListCrops handles GET /crops
func (h *CropsHandler) ListCrops(c *fiber.Ctx) error {
	crops, err := h.cropService.List(c.Context())
	if err != nil {
		return respondError(c, h.logger, err, "list crops")
	}
	return c.JSON(crops)
}

// SearchCrops handles GET /crops/search?start=YYYY-MM-DD&end=YYYY-MM-DD
func (h *CropsHandler) SearchCrops(c *fiber.Ctx) error {
	start, end, err := dto.ParseHarvestInterval(c)
	if err != nil {
		return respondError(c, h.logger, err, "search crops")
	}

	crops, err := h.cropService.ListByHarvestInterval(c.Context(), start, end)
	if err != nil {
		return respondError(c, h.logger, err, "search crops")
	}
	return c.JSON(crops)
}

// GetCrop handles GET /crops/:id
func (h *CropsHandler) GetCrop(c *fiber.Ctx) error {
	id, err := parseID(c, "id", "crop")
	if err != nil {
		return respondError(c, h.logger, err, "get crop")
	}

	crop, err := h.cropService.Get(c.Context(), id)
	if err != nil {
		return respondError(c, h.logger, err, "get crop")
	}
	return c.JSON(crop)
}

// CreateCrop handles POST /crops
func (h *CropsHandler) CreateCrop(c *fiber.Ctx) error {
	var input domain.CropInput
	if err := dto.ParseAndValidate(c, &input); err != nil {
		return respondError(c, h.logger, err, "create crop")
	}

	crop, err := h.cropService.Create(c.Context(), &input)
	if err != nil {
		return respondError(c, h.logger, err, "create crop")
	}
	return c.Status(fiber.StatusCreated).JSON(crop)
}

// CreateFarmCrop handles POST /farms/:id/crops
func (h *CropsHandler) CreateFarmCrop(c *fiber.Ctx) error {
	farmID, err := parseID(c, "id", "farm")
	if err != nil {
		return respondError(c, h.logger, err, "create crop")
	}

	var input domain.CropInput
	if err := dto.ParseAndValidate(c, &input); err != nil {
		return respondError(c, h.logger, err, "create crop")
	}

	crop, err := h.cropService.CreateForFarm(c.Context(), farmID, &input)
	if err != nil {
		return respondError(c, h.logger, err, "create crop")
	}
	return c.Status(fiber.StatusCreated).JSON(crop)
}

// UpdateCrop handles PUT /crops/:id
func (h *CropsHandler) UpdateCrop(c *fiber.Ctx) error {
	id, err := parseID(c, "id", "crop")
	if err != nil {
		return respondError(c, h.logger, err, "update crop")
	}

	var input domain.CropUpdateInput
	if err := dto.ParseAndValidate(c, &input); err != nil {
		return respondError(c, h.logger, err, "update crop")
	}

	crop, err := h.cropService.Update(c.Context(), id, &input)
	if err != nil {
		return respondError(c, h.logger, err, "update crop")
	}
	return c.JSON(crop)
}

// DeleteCrop handles DELETE /crops/:id
func (h *CropsHandler) DeleteCrop(c *fiber.Ctx) error {
	id, err := parseID(c, "id", "crop")
	if err != nil {
		return respondError(c, h.logger, err, "delete crop")
	}

	crop, err := h.cropService.Delete(c.Context(), id)
	if err != nil {
		return respondError(c, h.logger, err, "delete crop")
	}
	return c.JSON(crop)
}

// SetCropFarm handles PUT /crops/:id/farm/:farmId
func (h *CropsHandler) SetCropFarm(c *fiber.Ctx) error {
	cropID, err := parseID(c, "id", "crop")
	if err != nil {
		return respondError(c, h.logger, err, "set crop farm")
	}
	farmID, err := parseID(c, "farmId", "farm")
	if err != nil {
		return respondError(c, h.logger, err, "set crop farm")
	}

	crop, err := h.cropService.SetFarm(c.Context(), cropID, farmID)
	if err != nil {
		return respondError(c, h.logger, err, "set crop farm")
	}
	return c.JSON(crop)
}

// RemoveCropFarm handles DELETE /crops/:id/farm
func (h *CropsHandler) RemoveCropFarm(c *fiber.Ctx) error {
	cropID, err := parseID(c, "id", "crop")
	if err != nil {
		return respondError(c, h.logger, err, "remove crop farm")
	}

	crop, err := h.cropService.RemoveFarm(c.Context(), cropID)
	if err != nil {
		return respondError(c, h.logger, err, "remove crop farm")
	}
	return c.JSON(crop)
}

// ListCropFertilizers handles GET /crops/:id/fertilizers
func (h *CropsHandler) ListCropFertilizers(c *fiber.Ctx) error {
	cropID, err := parseID(c, "id", "crop")
	if err != nil {
		return respondError(c, h.logger, err, "list crop fertilizers")
	}

	fertilizers, err := h.cropService.ListFertilizers(c.Context(), cropID)
	if err != nil {
		return respondError(c, h.logger, err, "list crop fertilizers")
	}
	return c.JSON(fertilizers)
}

// AddCropFertilizer handles POST /crops/:id/fertilizers/:fertilizerId
func (h *CropsHandler) AddCropFertilizer(c *fiber.Ctx) error {
	cropID, err := parseID(c, "id", "crop")
	if err != nil {
		return respondError(c, h.logger, err, "add crop fertilizer")
	}
	fertilizerID, err := parseID(c, "fertilizerId", "fertilizer")
	if err != nil {
		return respondError(c, h.logger, err, "add crop fertilizer")
	}

	msg, err := h.cropService.AddFertilizer(c.Context(), cropID, fertilizerID)
	if err != nil {
		return respondError(c, h.logger, err, "add crop fertilizer")
	}
	return c.Status(fiber.StatusCreated).JSON(dto.MessageResponse{Message: msg})
}

// RegisterRoutes registers crop routes
func (h *CropsHandler) RegisterRoutes(router fiber.Router) {
	router.Post("/farms/:id/crops", h.CreateFarmCrop)

	crops := router.Group("/crops")
	crops.Get("/", h.ListCrops)
	crops.Post("/", h.CreateCrop)
	// Registered before /:id so "search" is not taken for an ID
	crops.Get("/search", h.SearchCrops)
	crops.Get("/:id", h.GetCrop)
	crops.Put("/:id", h.UpdateCrop)
	crops.Delete("/:id", h.DeleteCrop)
	crops.Put("/:id/farm/:farmId", h.SetCropFarm)
	crops.Delete("/:id/farm", h.RemoveCropFarm)
	crops.Get("/:id/fertilizers", h.ListCropFertilizers)
	crops.Post("/:id/fertilizers/:fertilizerId", h.AddCropFertilizer)
}
