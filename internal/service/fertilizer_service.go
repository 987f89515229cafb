package service

import (
	"context"
	"fmt"

	"github.com/agrix/agrix/internal/domain"
)

// FertilizerRepository defines fertilizer repository operations
type FertilizerRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Fertilizer, error)
	List(ctx context.Context) ([]domain.Fertilizer, error)
	Save(ctx context.Context, fertilizer *domain.Fertilizer) error
}

// FertilizerService handles fertilizer operations
type FertilizerService struct {
	fertilizerRepo FertilizerRepository
}

// NewFertilizerService creates a new fertilizer service
func NewFertilizerService(fertilizerRepo FertilizerRepository) *FertilizerService {
	return &FertilizerService{fertilizerRepo: fertilizerRepo}
}

// Get retrieves a fertilizer by ID
func (s *FertilizerService) Get(ctx context.Context, id int64) (*domain.Fertilizer, error) {
	return s.fertilizerRepo.GetByID(ctx, id)
}

// List retrieves all fertilizers
func (s *FertilizerService) List(ctx context.Context) ([]domain.Fertilizer, error) {
	return s.fertilizerRepo.List(ctx)
}

// Create creates a new fertilizer
func (s *FertilizerService) Create(ctx context.Context, input *domain.FertilizerInput) (*domain.Fertilizer, error) {
	fertilizer := &domain.Fertilizer{
		Name:        input.Name,
		Brand:       input.Brand,
		Composition: input.Composition,
	}

	if err := s.fertilizerRepo.Save(ctx, fertilizer); err != nil {
		return nil, fmt.Errorf("failed to create fertilizer: %w", err)
	}

	return fertilizer, nil
}
