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

// FarmRepository handles farm data operations in SQLite
type FarmRepository struct {
	db *gorm.DB
}

// NewFarmRepository creates a new farm repository
func NewFarmRepository(db *database.SQLiteDB) *FarmRepository {
	return &FarmRepository{db: db.DB}
}

// GetByID retrieves a farm by ID
func (r *FarmRepository) GetByID(ctx context.Context, id int64) (*domain.Farm, error) {
	var row farmRow
	if err := r.db.WithContext(ctx).First(&row, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NotFound("farm")
		}
		return nil, fmt.Errorf("failed to get farm: %w", err)
	}
	return row.toDomain(), nil
}

// List retrieves all farms ordered by ID
func (r *FarmRepository) List(ctx context.Context) ([]domain.Farm, error) {
	var rows []farmRow
	if err := r.db.WithContext(ctx).Order("id").Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to list farms: %w", err)
	}

	farms := make([]domain.Farm, 0, len(rows))
	for _, row := range rows {
		farms = append(farms, *row.toDomain())
	}
	return farms, nil
}

// Save inserts the farm when it has no ID yet and updates it otherwise
func (r *FarmRepository) Save(ctx context.Context, farm *domain.Farm) error {
	row := newFarmRow(farm)

	if row.ID == 0 {
		if err := r.db.WithContext(ctx).Create(&row).Error; err != nil {
			return fmt.Errorf("failed to create farm: %w", err)
		}
		farm.ID = row.ID
		return nil
	}

	result := r.db.WithContext(ctx).Model(&farmRow{ID: row.ID}).Select("*").Updates(&row)
	if result.Error != nil {
		return fmt.Errorf("failed to update farm: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return apperrors.NotFound("farm")
	}
	return nil
}

// Delete deletes a farm and clears the farm of every crop planted on it
func (r *FarmRepository) Delete(ctx context.Context, id int64) error {
	result := r.db.WithContext(ctx).Delete(&farmRow{}, id)
	if result.Error != nil {
		return fmt.Errorf("failed to delete farm: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return apperrors.NotFound("farm")
	}
	return nil
}
