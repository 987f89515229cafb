package sqlite

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/agrix/agrix/internal/domain"
	"github.com/agrix/agrix/internal/pkg/database"
	apperrors "github.com/agrix/agrix/internal/pkg/errors"
)

// CropRepository handles crop data operations in SQLite
type CropRepository struct {
	db *gorm.DB
}

// NewCropRepository creates a new crop repository
func NewCropRepository(db *database.SQLiteDB) *CropRepository {
	return &CropRepository{db: db.DB}
}

// GetByID retrieves a crop by ID together with its fertilizers, in the
// order they were applied
func (r *CropRepository) GetByID(ctx context.Context, id int64) (*domain.Crop, error) {
	db := r.db.WithContext(ctx)

	var row cropRow
	if err := db.First(&row, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NotFound("crop")
		}
		return nil, fmt.Errorf("failed to get crop: %w", err)
	}

	var fertilizers []fertilizerRow
	err := db.Table("crop_fertilizers").
		Select("fertilizers.*").
		Joins("JOIN fertilizers ON fertilizers.id = crop_fertilizers.fertilizer_id").
		Where("crop_fertilizers.crop_id = ?", id).
		Order("crop_fertilizers.id").
		Scan(&fertilizers).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list crop fertilizers: %w", err)
	}

	crop := row.toDomain()
	if len(fertilizers) > 0 {
		crop.Fertilizers = toFertilizers(fertilizers)
	}
	return crop, nil
}

// List retrieves all crops ordered by ID. Fertilizers are not loaded.
func (r *CropRepository) List(ctx context.Context) ([]domain.Crop, error) {
	var rows []cropRow
	if err := r.db.WithContext(ctx).Order("id").Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to list crops: %w", err)
	}
	return toCrops(rows), nil
}

// ListByFarmID retrieves the crops planted on a farm
func (r *CropRepository) ListByFarmID(ctx context.Context, farmID int64) ([]domain.Crop, error) {
	var rows []cropRow
	if err := r.db.WithContext(ctx).Where("farm_id = ?", farmID).Order("id").Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to list crops by farm: %w", err)
	}
	return toCrops(rows), nil
}

// Save inserts the crop when it has no ID yet and updates it otherwise.
// Fertilizer associations are not written; use AddFertilizer.
func (r *CropRepository) Save(ctx context.Context, crop *domain.Crop) error {
	row := newCropRow(crop)

	if row.ID == 0 {
		if err := r.db.WithContext(ctx).Create(&row).Error; err != nil {
			return fmt.Errorf("failed to create crop: %w", err)
		}
		crop.ID = row.ID
		return nil
	}

	result := r.db.WithContext(ctx).Model(&cropRow{ID: row.ID}).Select("*").Updates(&row)
	if result.Error != nil {
		return fmt.Errorf("failed to update crop: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return apperrors.NotFound("crop")
	}
	return nil
}

// Delete deletes a crop and its fertilizer associations
func (r *CropRepository) Delete(ctx context.Context, id int64) error {
	result := r.db.WithContext(ctx).Delete(&cropRow{}, id)
	if result.Error != nil {
		return fmt.Errorf("failed to delete crop: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return apperrors.NotFound("crop")
	}
	return nil
}

// AddFertilizer records one application of a fertilizer to a crop
func (r *CropRepository) AddFertilizer(ctx context.Context, cropID, fertilizerID int64) error {
	row := cropFertilizerRow{CropID: cropID, FertilizerID: fertilizerID}
	if err := r.db.WithContext(ctx).Create(&row).Error; err != nil {
		return fmt.Errorf("failed to add fertilizer to crop: %w", err)
	}
	return nil
}

func toCrops(rows []cropRow) []domain.Crop {
	crops := make([]domain.Crop, 0, len(rows))
	for _, row := range rows {
		crops = append(crops, *row.toDomain())
	}
	return crops
}
