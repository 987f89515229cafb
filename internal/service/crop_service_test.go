package service

import (
	"context"
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/agrix/agrix/internal/domain"
)

type cropServiceFixture struct {
	svc            *CropService
	cropRepo       *MockCropRepository
	farmRepo       *MockFarmRepository
	fertilizerRepo *MockFertilizerRepository
}

func newCropServiceFixture() *cropServiceFixture {
	cropRepo := new(MockCropRepository)
	farmRepo := new(MockFarmRepository)
	fertilizerRepo := new(MockFertilizerRepository)

	farmSvc := NewFarmService(farmRepo, cropRepo)
	fertilizerSvc := NewFertilizerService(fertilizerRepo)

	return &cropServiceFixture{
		svc:            NewCropService(cropRepo, farmSvc, fertilizerSvc),
		cropRepo:       cropRepo,
		farmRepo:       farmRepo,
		fertilizerRepo: fertilizerRepo,
	}
}

func testCrop() *domain.Crop {
	return &domain.Crop{
		ID:          10,
		Name:        "Corn",
		PlantedArea: 30.0,
		PlantedDate: domain.MustParseDate("2024-03-01"),
		HarvestDate: domain.MustParseDate("2024-07-01"),
	}
}

func TestCropService_Create(t *testing.T) {
	ctx := context.Background()
	input := &domain.CropInput{
		Name:        "Corn",
		PlantedArea: 30.0,
		PlantedDate: domain.MustParseDate("2024-03-01"),
		HarvestDate: domain.MustParseDate("2024-07-01"),
	}

	t.Run("standalone crop has no farm", func(t *testing.T) {
		f := newCropServiceFixture()
		f.cropRepo.On("Save", ctx, mock.AnythingOfType("*domain.Crop")).
			Run(func(args mock.Arguments) {
				args.Get(1).(*domain.Crop).ID = 10
			}).
			Return(nil)

		crop, err := f.svc.Create(ctx, input)

		require.NoError(t, err)
		assert.Equal(t, int64(10), crop.ID)
		assert.False(t, crop.HasFarm())
		assert.Equal(t, "2024-07-01", crop.HarvestDate.String())
	})

	t.Run("for farm binds crop", func(t *testing.T) {
		f := newCropServiceFixture()
		f.farmRepo.On("GetByID", ctx, int64(1)).Return(&domain.Farm{ID: 1}, nil)
		f.cropRepo.On("Save", ctx, mock.AnythingOfType("*domain.Crop")).Return(nil)

		crop, err := f.svc.CreateForFarm(ctx, 1, input)

		require.NoError(t, err)
		require.NotNil(t, crop.FarmID)
		assert.Equal(t, int64(1), *crop.FarmID)
	})

	t.Run("for unknown farm persists nothing", func(t *testing.T) {
		f := newCropServiceFixture()
		f.farmRepo.On("GetByID", ctx, int64(2)).Return(nil, domain.ErrFarmNotFound)

		_, err := f.svc.CreateForFarm(ctx, 2, input)

		assert.True(t, errors.Is(err, domain.ErrFarmNotFound))
		f.cropRepo.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
	})
}

func TestCropService_Update(t *testing.T) {
	ctx := context.Background()

	t.Run("empty changeset is identity", func(t *testing.T) {
		f := newCropServiceFixture()
		f.cropRepo.On("GetByID", ctx, int64(10)).Return(testCrop(), nil)
		f.cropRepo.On("Save", ctx, mock.Anything).Return(nil)

		got, err := f.svc.Update(ctx, 10, &domain.CropUpdateInput{})

		require.NoError(t, err)
		assert.Equal(t, testCrop(), got)
	})

	t.Run("single field leaves others untouched", func(t *testing.T) {
		f := newCropServiceFixture()
		f.cropRepo.On("GetByID", ctx, int64(10)).Return(testCrop(), nil)
		f.cropRepo.On("Save", ctx, mock.Anything).Return(nil)

		got, err := f.svc.Update(ctx, 10, &domain.CropUpdateInput{PlantedArea: floatPtr(45)})

		require.NoError(t, err)
		expected := testCrop()
		expected.PlantedArea = 45
		assert.Equal(t, expected, got)
	})

	t.Run("blank name and NaN area are ignored", func(t *testing.T) {
		f := newCropServiceFixture()
		f.cropRepo.On("GetByID", ctx, int64(10)).Return(testCrop(), nil)
		f.cropRepo.On("Save", ctx, mock.Anything).Return(nil)

		got, err := f.svc.Update(ctx, 10, &domain.CropUpdateInput{
			Name:        strPtr(" "),
			PlantedArea: floatPtr(math.NaN()),
		})

		require.NoError(t, err)
		assert.Equal(t, testCrop(), got)
	})

	t.Run("farm reference rebinds crop", func(t *testing.T) {
		f := newCropServiceFixture()
		f.cropRepo.On("GetByID", ctx, int64(10)).Return(testCrop(), nil)
		f.farmRepo.On("GetByID", ctx, int64(1)).Return(&domain.Farm{ID: 1}, nil)
		f.cropRepo.On("Save", ctx, mock.Anything).Return(nil)

		got, err := f.svc.Update(ctx, 10, &domain.CropUpdateInput{
			Name:   strPtr("Sweet Corn"),
			FarmID: int64Ptr(1),
		})

		require.NoError(t, err)
		assert.Equal(t, "Sweet Corn", got.Name)
		require.NotNil(t, got.FarmID)
		assert.Equal(t, int64(1), *got.FarmID)
	})

	t.Run("unknown farm reference fails before save", func(t *testing.T) {
		f := newCropServiceFixture()
		f.cropRepo.On("GetByID", ctx, int64(10)).Return(testCrop(), nil)
		f.farmRepo.On("GetByID", ctx, int64(99)).Return(nil, domain.ErrFarmNotFound)

		_, err := f.svc.Update(ctx, 10, &domain.CropUpdateInput{FarmID: int64Ptr(99)})

		assert.True(t, errors.Is(err, domain.ErrFarmNotFound))
		f.cropRepo.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
	})

	t.Run("unknown crop", func(t *testing.T) {
		f := newCropServiceFixture()
		f.cropRepo.On("GetByID", ctx, int64(11)).Return(nil, domain.ErrCropNotFound)

		_, err := f.svc.Update(ctx, 11, &domain.CropUpdateInput{FarmID: int64Ptr(1)})

		assert.True(t, errors.Is(err, domain.ErrCropNotFound))
		f.farmRepo.AssertNotCalled(t, "GetByID", mock.Anything, mock.Anything)
	})
}

func TestCropService_Delete(t *testing.T) {
	ctx := context.Background()
	f := newCropServiceFixture()

	f.cropRepo.On("GetByID", ctx, int64(10)).Return(testCrop(), nil).Once()
	f.cropRepo.On("Delete", ctx, int64(10)).Return(nil)
	f.cropRepo.On("GetByID", ctx, int64(10)).Return(nil, domain.ErrCropNotFound)

	deleted, err := f.svc.Delete(ctx, 10)
	require.NoError(t, err)
	assert.Equal(t, testCrop(), deleted)

	_, err = f.svc.Get(ctx, 10)
	assert.True(t, errors.Is(err, domain.ErrCropNotFound))
}

func TestCropService_SetFarm(t *testing.T) {
	ctx := context.Background()

	t.Run("crop is resolved before farm", func(t *testing.T) {
		f := newCropServiceFixture()
		f.cropRepo.On("GetByID", ctx, int64(10)).Return(nil, domain.ErrCropNotFound)

		_, err := f.svc.SetFarm(ctx, 10, 99)

		assert.True(t, errors.Is(err, domain.ErrCropNotFound))
		f.farmRepo.AssertNotCalled(t, "GetByID", mock.Anything, mock.Anything)
	})

	t.Run("unknown farm after crop found", func(t *testing.T) {
		f := newCropServiceFixture()
		f.cropRepo.On("GetByID", ctx, int64(10)).Return(testCrop(), nil)
		f.farmRepo.On("GetByID", ctx, int64(99)).Return(nil, domain.ErrFarmNotFound)

		_, err := f.svc.SetFarm(ctx, 10, 99)

		assert.True(t, errors.Is(err, domain.ErrFarmNotFound))
		f.cropRepo.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
	})
}

// Farm "Green Valley" gets a crop assigned, listed and then removed
func TestCropService_FarmLifecycle(t *testing.T) {
	ctx := context.Background()
	f := newCropServiceFixture()
	farmSvc := NewFarmService(f.farmRepo, f.cropRepo)

	farm := &domain.Farm{ID: 1, Name: "Green Valley", Size: 120.0}
	stored := testCrop()

	f.farmRepo.On("GetByID", ctx, int64(1)).Return(farm, nil)
	f.cropRepo.On("GetByID", ctx, stored.ID).Return(func(context.Context, int64) *domain.Crop {
		c := *stored
		return &c
	}, nil)
	f.cropRepo.On("Save", ctx, mock.AnythingOfType("*domain.Crop")).
		Run(func(args mock.Arguments) {
			*stored = *args.Get(1).(*domain.Crop)
		}).
		Return(nil)
	f.cropRepo.On("ListByFarmID", ctx, int64(1)).Return(func(context.Context, int64) []domain.Crop {
		if stored.FarmID != nil && *stored.FarmID == 1 {
			return []domain.Crop{*stored}
		}
		return []domain.Crop{}
	}, nil)

	crop, err := f.svc.SetFarm(ctx, stored.ID, 1)
	require.NoError(t, err)
	require.NotNil(t, crop.FarmID)
	assert.Equal(t, int64(1), *crop.FarmID)

	crops, err := farmSvc.ListCrops(ctx, 1)
	require.NoError(t, err)
	require.Len(t, crops, 1)
	assert.Equal(t, stored.ID, crops[0].ID)

	crop, err = f.svc.RemoveFarm(ctx, stored.ID)
	require.NoError(t, err)
	assert.Nil(t, crop.FarmID)

	crops, err = farmSvc.ListCrops(ctx, 1)
	require.NoError(t, err)
	assert.Empty(t, crops)
}

func TestCropService_RemoveFarm_KeepsFertilizers(t *testing.T) {
	ctx := context.Background()
	f := newCropServiceFixture()

	crop := testCrop()
	crop.FarmID = int64Ptr(1)
	crop.Fertilizers = []domain.Fertilizer{{ID: 5, Name: "Urea"}}
	f.cropRepo.On("GetByID", ctx, int64(10)).Return(crop, nil)
	f.cropRepo.On("Save", ctx, crop).Return(nil)

	got, err := f.svc.RemoveFarm(ctx, 10)

	require.NoError(t, err)
	assert.Nil(t, got.FarmID)
	assert.Equal(t, []domain.Fertilizer{{ID: 5, Name: "Urea"}}, got.Fertilizers)
}

func TestCropService_AddFertilizer(t *testing.T) {
	ctx := context.Background()
	fertilizer := &domain.Fertilizer{ID: 5, Name: "Urea", Brand: "Agro", Composition: "46-0-0"}

	t.Run("returns confirmation", func(t *testing.T) {
		f := newCropServiceFixture()
		f.cropRepo.On("GetByID", ctx, int64(10)).Return(testCrop(), nil)
		f.fertilizerRepo.On("GetByID", ctx, int64(5)).Return(fertilizer, nil)
		f.cropRepo.On("AddFertilizer", ctx, int64(10), int64(5)).Return(nil)

		msg, err := f.svc.AddFertilizer(ctx, 10, 5)

		require.NoError(t, err)
		assert.Equal(t, FertilizerAssociatedMessage, msg)
	})

	t.Run("applying twice is not deduplicated", func(t *testing.T) {
		f := newCropServiceFixture()

		var applied []domain.Fertilizer
		f.cropRepo.On("GetByID", ctx, int64(10)).Return(func(context.Context, int64) *domain.Crop {
			c := testCrop()
			c.Fertilizers = append([]domain.Fertilizer(nil), applied...)
			return c
		}, nil)
		f.fertilizerRepo.On("GetByID", ctx, int64(5)).Return(fertilizer, nil)
		f.cropRepo.On("AddFertilizer", ctx, int64(10), int64(5)).
			Run(func(mock.Arguments) { applied = append(applied, *fertilizer) }).
			Return(nil)

		_, err := f.svc.AddFertilizer(ctx, 10, 5)
		require.NoError(t, err)
		_, err = f.svc.AddFertilizer(ctx, 10, 5)
		require.NoError(t, err)

		got, err := f.svc.ListFertilizers(ctx, 10)
		require.NoError(t, err)
		assert.Equal(t, []domain.Fertilizer{*fertilizer, *fertilizer}, got)
		f.cropRepo.AssertNumberOfCalls(t, "AddFertilizer", 2)
	})

	t.Run("crop is resolved before fertilizer", func(t *testing.T) {
		f := newCropServiceFixture()
		f.cropRepo.On("GetByID", ctx, int64(10)).Return(nil, domain.ErrCropNotFound)

		_, err := f.svc.AddFertilizer(ctx, 10, 5)

		assert.True(t, errors.Is(err, domain.ErrCropNotFound))
		f.fertilizerRepo.AssertNotCalled(t, "GetByID", mock.Anything, mock.Anything)
	})

	t.Run("unknown fertilizer", func(t *testing.T) {
		f := newCropServiceFixture()
		f.cropRepo.On("GetByID", ctx, int64(10)).Return(testCrop(), nil)
		f.fertilizerRepo.On("GetByID", ctx, int64(6)).Return(nil, domain.ErrFertilizerNotFound)

		_, err := f.svc.AddFertilizer(ctx, 10, 6)

		assert.True(t, errors.Is(err, domain.ErrFertilizerNotFound))
		f.cropRepo.AssertNotCalled(t, "AddFertilizer", mock.Anything, mock.Anything, mock.Anything)
	})
}

func TestCropService_ListFertilizers(t *testing.T) {
	ctx := context.Background()

	t.Run("never associated yields empty slice", func(t *testing.T) {
		f := newCropServiceFixture()
		f.cropRepo.On("GetByID", ctx, int64(10)).Return(testCrop(), nil)

		got, err := f.svc.ListFertilizers(ctx, 10)

		require.NoError(t, err)
		assert.NotNil(t, got)
		assert.Empty(t, got)
	})

	t.Run("unknown crop", func(t *testing.T) {
		f := newCropServiceFixture()
		f.cropRepo.On("GetByID", ctx, int64(10)).Return(nil, domain.ErrCropNotFound)

		_, err := f.svc.ListFertilizers(ctx, 10)

		assert.True(t, errors.Is(err, domain.ErrCropNotFound))
	})
}

func TestCropService_ListByHarvestInterval(t *testing.T) {
	ctx := context.Background()

	crops := []domain.Crop{
		{ID: 1, Name: "May", HarvestDate: domain.MustParseDate("2024-05-01")},
		{ID: 2, Name: "July", HarvestDate: domain.MustParseDate("2024-07-01")},
		{ID: 3, Name: "NewYear", HarvestDate: domain.MustParseDate("2024-01-01")},
	}

	tests := []struct {
		name     string
		start    string
		end      string
		expected []int64
	}{
		{"inclusive start bound", "2024-01-01", "2024-06-30", []int64{1, 3}},
		{"inclusive end bound", "2024-05-01", "2024-07-01", []int64{1, 2}},
		{"single day", "2024-07-01", "2024-07-01", []int64{2}},
		{"no match", "2025-01-01", "2025-12-31", []int64{}},
		{"inverted interval", "2024-12-31", "2024-01-01", []int64{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newCropServiceFixture()
			f.cropRepo.On("List", ctx).Return(crops, nil)

			got, err := f.svc.ListByHarvestInterval(ctx,
				domain.MustParseDate(tt.start), domain.MustParseDate(tt.end))

			require.NoError(t, err)
			ids := []int64{}
			for _, c := range got {
				ids = append(ids, c.ID)
			}
			assert.Equal(t, tt.expected, ids)
		})
	}
}
