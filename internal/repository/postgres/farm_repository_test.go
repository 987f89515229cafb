package postgres

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agrix/agrix/internal/domain"
	apperrors "github.com/agrix/agrix/internal/pkg/errors"
)

func TestFarmRepository_SaveAndGet(t *testing.T) {
	db := getTestDB(t)
	if db == nil {
		return
	}
	defer db.Close()

	repo := NewFarmRepository(db)
	ctx := context.Background()

	farm := &domain.Farm{Name: "Green Valley", Size: 120.5}
	require.NoError(t, repo.Save(ctx, farm))
	assert.NotZero(t, farm.ID)

	fetched, err := repo.GetByID(ctx, farm.ID)
	require.NoError(t, err)
	assert.Equal(t, farm, fetched)

	farm.Name = "Sunny Acres"
	require.NoError(t, repo.Save(ctx, farm))

	fetched, err = repo.GetByID(ctx, farm.ID)
	require.NoError(t, err)
	assert.Equal(t, "Sunny Acres", fetched.Name)
	assert.Equal(t, 120.5, fetched.Size)
}

func TestFarmRepository_GetByID_NotFound(t *testing.T) {
	db := getTestDB(t)
	if db == nil {
		return
	}
	defer db.Close()

	repo := NewFarmRepository(db)

	_, err := repo.GetByID(context.Background(), 999999)
	require.Error(t, err)
	assert.True(t, apperrors.IsNotFound(err))
	assert.True(t, errors.Is(err, domain.ErrFarmNotFound))
}

func TestFarmRepository_List(t *testing.T) {
	db := getTestDB(t)
	if db == nil {
		return
	}
	defer db.Close()

	repo := NewFarmRepository(db)
	ctx := context.Background()

	farms, err := repo.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, farms)

	require.NoError(t, repo.Save(ctx, &domain.Farm{Name: "North", Size: 10}))
	require.NoError(t, repo.Save(ctx, &domain.Farm{Name: "South", Size: 20}))

	farms, err = repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, farms, 2)
	assert.Equal(t, "North", farms[0].Name)
	assert.Equal(t, "South", farms[1].Name)
}

func TestFarmRepository_Delete(t *testing.T) {
	db := getTestDB(t)
	if db == nil {
		return
	}
	defer db.Close()

	farmRepo := NewFarmRepository(db)
	cropRepo := NewCropRepository(db)
	ctx := context.Background()

	farm := &domain.Farm{Name: "Doomed", Size: 5}
	require.NoError(t, farmRepo.Save(ctx, farm))

	crop := &domain.Crop{
		Name:        "Wheat",
		PlantedArea: 2,
		PlantedDate: domain.MustParseDate("2024-03-01"),
		HarvestDate: domain.MustParseDate("2024-07-01"),
		FarmID:      &farm.ID,
	}
	require.NoError(t, cropRepo.Save(ctx, crop))

	require.NoError(t, farmRepo.Delete(ctx, farm.ID))

	_, err := farmRepo.GetByID(ctx, farm.ID)
	assert.True(t, apperrors.IsNotFound(err))

	// The crop survives with its farm cleared
	fetched, err := cropRepo.GetByID(ctx, crop.ID)
	require.NoError(t, err)
	assert.Nil(t, fetched.FarmID)

	err = farmRepo.Delete(ctx, farm.ID)
	assert.True(t, apperrors.IsNotFound(err))
}
