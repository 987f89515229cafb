package service

import (
	"context"
	"fmt"

	"github.com/agrix/agrix/internal/domain"
)

// FertilizerAssociatedMessage confirms a successful AddFertilizer
const FertilizerAssociatedMessage = "Fertilizer and crop associated successfully!"

// CropRepository defines crop repository operations
type CropRepository interface {
	// GetByID loads the crop with its fertilizers
	GetByID(ctx context.Context, id int64) (*domain.Crop, error)
	List(ctx context.Context) ([]domain.Crop, error)
	ListByFarmID(ctx context.Context, farmID int64) ([]domain.Crop, error)
	Save(ctx context.Context, crop *domain.Crop) error
	Delete(ctx context.Context, id int64) error
	AddFertilizer(ctx context.Context, cropID, fertilizerID int64) error
}

// CropService handles crop operations and crop associations
type CropService struct {
	cropRepo          CropRepository
	farmService       *FarmService
	fertilizerService *FertilizerService
}

// NewCropService creates a new crop service
func NewCropService(
	cropRepo CropRepository,
	farmService *FarmService,
	fertilizerService *FertilizerService,
) *CropService {
	return &CropService{
		cropRepo:          cropRepo,
		farmService:       farmService,
		fertilizerService: fertilizerService,
	}
}

// Get retrieves a crop by ID
func (s *CropService) Get(ctx context.Context, id int64) (*domain.Crop, error) {
	return s.cropRepo.GetByID(ctx, id)
}

// List retrieves all crops
func (s *CropService) List(ctx context.Context) ([]domain.Crop, error) {
	return s.cropRepo.List(ctx)
}

// Create creates a crop that is not planted on any farm
func (s *CropService) Create(ctx context.Context, input *domain.CropInput) (*domain.Crop, error) {
	crop := newCrop(input)

	if err := s.cropRepo.Save(ctx, crop); err != nil {
		return nil, fmt.Errorf("failed to create crop: %w", err)
	}

	return crop, nil
}

// CreateForFarm creates a crop planted on an existing farm. Nothing is
// persisted when the farm does not exist.
func (s *CropService) CreateForFarm(ctx context.Context, farmID int64, input *domain.CropInput) (*domain.Crop, error) {
	farm, err := s.farmService.Get(ctx, farmID)
	if err != nil {
		return nil, err
	}

	crop := newCrop(input)
	crop.FarmID = &farm.ID

	if err := s.cropRepo.Save(ctx, crop); err != nil {
		return nil, fmt.Errorf("failed to create crop: %w", err)
	}

	return crop, nil
}

// Update applies a merge-patch to a crop. A farm ID in the input rebinds the
// crop after the farm is resolved. Planted and harvest dates are never
// changed.
func (s *CropService) Update(ctx context.Context, id int64, input *domain.CropUpdateInput) (*domain.Crop, error) {
	crop, err := s.cropRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	mergeString(&crop.Name, input.Name)
	mergeFloat(&crop.PlantedArea, input.PlantedArea)

	if input.FarmID != nil {
		farm, err := s.farmService.Get(ctx, *input.FarmID)
		if err != nil {
			return nil, err
		}
		crop.FarmID = &farm.ID
	}

	if err := s.cropRepo.Save(ctx, crop); err != nil {
		return nil, fmt.Errorf("failed to update crop: %w", err)
	}

	return crop, nil
}

// Delete deletes a crop and returns it as it was before deletion
func (s *CropService) Delete(ctx context.Context, id int64) (*domain.Crop, error) {
	crop, err := s.cropRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := s.cropRepo.Delete(ctx, id); err != nil {
		return nil, fmt.Errorf("failed to delete crop: %w", err)
	}

	return crop, nil
}

// SetFarm plants a crop on a farm. The crop is resolved before the farm.
func (s *CropService) SetFarm(ctx context.Context, cropID, farmID int64) (*domain.Crop, error) {
	crop, err := s.cropRepo.GetByID(ctx, cropID)
	if err != nil {
		return nil, err
	}

	farm, err := s.farmService.Get(ctx, farmID)
	if err != nil {
		return nil, err
	}

	crop.FarmID = &farm.ID

	if err := s.cropRepo.Save(ctx, crop); err != nil {
		return nil, fmt.Errorf("failed to set crop farm: %w", err)
	}

	return crop, nil
}

// RemoveFarm clears the farm of a crop. Fertilizers are kept.
func (s *CropService) RemoveFarm(ctx context.Context, cropID int64) (*domain.Crop, error) {
	crop, err := s.cropRepo.GetByID(ctx, cropID)
	if err != nil {
		return nil, err
	}

	crop.FarmID = nil

	if err := s.cropRepo.Save(ctx, crop); err != nil {
		return nil, fmt.Errorf("failed to remove crop farm: %w", err)
	}

	return crop, nil
}

// AddFertilizer applies a fertilizer to a crop and returns a confirmation
// message. The crop is resolved before the fertilizer. Applying the same
// fertilizer again adds a second association.
func (s *CropService) AddFertilizer(ctx context.Context, cropID, fertilizerID int64) (string, error) {
	crop, err := s.cropRepo.GetByID(ctx, cropID)
	if err != nil {
		return "", err
	}

	fertilizer, err := s.fertilizerService.Get(ctx, fertilizerID)
	if err != nil {
		return "", err
	}

	// TODO: decide whether re-applying a fertilizer should be a no-op; the
	// association is not deduplicated.
	crop.Fertilizers = append(crop.Fertilizers, *fertilizer)

	if err := s.cropRepo.AddFertilizer(ctx, crop.ID, fertilizer.ID); err != nil {
		return "", fmt.Errorf("failed to add fertilizer: %w", err)
	}

	return FertilizerAssociatedMessage, nil
}

// ListFertilizers retrieves the fertilizers applied to a crop. A crop with no
// fertilizers yields an empty slice.
func (s *CropService) ListFertilizers(ctx context.Context, cropID int64) ([]domain.Fertilizer, error) {
	crop, err := s.cropRepo.GetByID(ctx, cropID)
	if err != nil {
		return nil, err
	}

	if crop.Fertilizers == nil {
		return []domain.Fertilizer{}, nil
	}
	return crop.Fertilizers, nil
}

// ListByHarvestInterval retrieves the crops harvested between start and end,
// both inclusive. The filter runs over every crop in memory.
func (s *CropService) ListByHarvestInterval(ctx context.Context, start, end domain.Date) ([]domain.Crop, error) {
	crops, err := s.cropRepo.List(ctx)
	if err != nil {
		return nil, err
	}

	filter := domain.CropFilter{HarvestStart: start, HarvestEnd: end}
	matched := []domain.Crop{}
	for i := range crops {
		if filter.Matches(&crops[i]) {
			matched = append(matched, crops[i])
		}
	}

	return matched, nil
}

func newCrop(input *domain.CropInput) *domain.Crop {
	return &domain.Crop{
		Name:        input.Name,
		PlantedArea: input.PlantedArea,
		PlantedDate: input.PlantedDate,
		HarvestDate: input.HarvestDate,
	}
}
