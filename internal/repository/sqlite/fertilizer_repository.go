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

// FertilizerRepository handles fertilizer data operations in SQLite
type FertilizerRepository struct {
	db *gorm.DB
}

// NewFertilizerRepository creates a new fertilizer repository
func NewFertilizerRepository(db *database.SQLiteDB) *FertilizerRepository {
	return &FertilizerRepository{db: db.DB}
}

// GetByID retrieves a fertilizer by ID
func (r *FertilizerRepository) GetByID(ctx context.Context, id int64) (*domain.Fertilizer, error) {
	var row fertilizerRow
	if err := r.db.WithContext(ctx).First(&row, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NotFound("fertilizer")
		}
		return nil, fmt.Errorf("failed to get fertilizer: %w", err)
	}
	return row.toDomain(), nil
}

// List retrieves all fertilizers ordered by ID
func (r *FertilizerRepository) List(ctx context.Context) ([]domain.Fertilizer, error) {
	var rows []fertilizerRow
	if err := r.db.WithContext(ctx).Order("id").Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to list fertilizers: %w", err)
	}
	return toFertilizers(rows), nil
}

// Save inserts the fertilizer when it has no ID yet and updates it otherwise
func (r *FertilizerRepository) Save(ctx context.Context, f *domain.Fertilizer) error {
	row := newFertilizerRow(f)

	if row.ID == 0 {
		if err := r.db.WithContext(ctx).Create(&row).Error; err != nil {
			return fmt.Errorf("failed to create fertilizer: %w", err)
		}
		f.ID = row.ID
		return nil
	}

	result := r.db.WithContext(ctx).Model(&fertilizerRow{ID: row.ID}).Select("*").Updates(&row)
	if result.Error != nil {
		return fmt.Errorf("failed to update fertilizer: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return apperrors.NotFound("fertilizer")
	}
	return nil
}

func toFertilizers(rows []fertilizerRow) []domain.Fertilizer {
	fertilizers := make([]domain.Fertilizer, 0, len(rows))
	for _, row := range rows {
		fertilizers = append(fertilizers, *row.toDomain())
	}
	return fertilizers
}
