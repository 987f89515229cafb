package service

import (
	"context"
	"fmt"

	"github.com/agrix/agrix/internal/domain"
)

// FarmRepository defines farm repository operations
type FarmRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Farm, error)
	List(ctx context.Context) ([]domain.Farm, error)
	Save(ctx context.Context, farm *domain.Farm) error
	Delete(ctx context.Context, id int64) error
}

// FarmService handles farm operations
type FarmService struct {
	farmRepo FarmRepository
	cropRepo CropRepository
}

// NewFarmService creates a new farm service
func NewFarmService(farmRepo FarmRepository, cropRepo CropRepository) *FarmService {
	return &FarmService{
		farmRepo: farmRepo,
		cropRepo: cropRepo,
	}
}

// Get retrieves a farm by ID
func (s *FarmService) Get(ctx context.Context, id int64) (*domain.Farm, error) {
	return s.farmRepo.GetByID(ctx, id)
}

// List retrieves all farms
func (s *FarmService) List(ctx context.Context) ([]domain.Farm, error) {
	return s.farmRepo.List(ctx)
}

// Create creates a new farm
func (s *FarmService) Create(ctx context.Context, input *domain.FarmInput) (*domain.Farm, error) {
	farm := &domain.Farm{
		Name: input.Name,
		Size: input.Size,
	}

	if err := s.farmRepo.Save(ctx, farm); err != nil {
		return nil, fmt.Errorf("failed to create farm: %w", err)
	}

	return farm, nil
}

// Update applies a merge-patch to a farm
func (s *FarmService) Update(ctx context.Context, id int64, input *domain.FarmUpdateInput) (*domain.Farm, error) {
	farm, err := s.farmRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	mergeString(&farm.Name, input.Name)
	mergeFloat(&farm.Size, input.Size)

	if err := s.farmRepo.Save(ctx, farm); err != nil {
		return nil, fmt.Errorf("failed to update farm: %w", err)
	}

	return farm, nil
}

// Delete deletes a farm and returns it as it was before deletion.
// Crops planted on the farm are left to the storage layer's policy.
func (s *FarmService) Delete(ctx context.Context, id int64) (*domain.Farm, error) {
	farm, err := s.farmRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := s.farmRepo.Delete(ctx, id); err != nil {
		return nil, fmt.Errorf("failed to delete farm: %w", err)
	}

	return farm, nil
}

// ListCrops retrieves the crops planted on a farm
func (s *FarmService) ListCrops(ctx context.Context, id int64) ([]domain.Crop, error) {
	if _, err := s.farmRepo.GetByID(ctx, id); err != nil {
		return nil, err
	}

	crops, err := s.cropRepo.ListByFarmID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to list farm crops: %w", err)
	}

	return crops, nil
}
