package service

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/agrix/agrix/internal/domain"
)

// MockFarmRepository is a mock implementation of FarmRepository
type MockFarmRepository struct {
	mock.Mock
}

func (m *MockFarmRepository) GetByID(ctx context.Context, id int64) (*domain.Farm, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Farm), args.Error(1)
}

func (m *MockFarmRepository) List(ctx context.Context) ([]domain.Farm, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Farm), args.Error(1)
}

func (m *MockFarmRepository) Save(ctx context.Context, farm *domain.Farm) error {
	args := m.Called(ctx, farm)
	return args.Error(0)
}

func (m *MockFarmRepository) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// MockCropRepository is a mock implementation of CropRepository. GetByID and
// ListByFarmID also accept a function return value, evaluated per call.
type MockCropRepository struct {
	mock.Mock
}

func (m *MockCropRepository) GetByID(ctx context.Context, id int64) (*domain.Crop, error) {
	args := m.Called(ctx, id)
	if fn, ok := args.Get(0).(func(context.Context, int64) *domain.Crop); ok {
		return fn(ctx, id), args.Error(1)
	}
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Crop), args.Error(1)
}

func (m *MockCropRepository) List(ctx context.Context) ([]domain.Crop, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Crop), args.Error(1)
}

func (m *MockCropRepository) ListByFarmID(ctx context.Context, farmID int64) ([]domain.Crop, error) {
	args := m.Called(ctx, farmID)
	if fn, ok := args.Get(0).(func(context.Context, int64) []domain.Crop); ok {
		return fn(ctx, farmID), args.Error(1)
	}
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Crop), args.Error(1)
}

func (m *MockCropRepository) Save(ctx context.Context, crop *domain.Crop) error {
	args := m.Called(ctx, crop)
	return args.Error(0)
}

func (m *MockCropRepository) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockCropRepository) AddFertilizer(ctx context.Context, cropID, fertilizerID int64) error {
	args := m.Called(ctx, cropID, fertilizerID)
	return args.Error(0)
}

// MockFertilizerRepository is a mock implementation of FertilizerRepository
type MockFertilizerRepository struct {
	mock.Mock
}

func (m *MockFertilizerRepository) GetByID(ctx context.Context, id int64) (*domain.Fertilizer, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Fertilizer), args.Error(1)
}

func (m *MockFertilizerRepository) List(ctx context.Context) ([]domain.Fertilizer, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Fertilizer), args.Error(1)
}

func (m *MockFertilizerRepository) Save(ctx context.Context, fertilizer *domain.Fertilizer) error {
	args := m.Called(ctx, fertilizer)
	return args.Error(0)
}
