package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"

	"github.com/agrix/agrix/internal/domain"
	"github.com/agrix/agrix/internal/pkg/database"
	apperrors "github.com/agrix/agrix/internal/pkg/errors"
)

const cropColumns = `id, name, planted_area, planted_date, harvest_date, farm_id`

// CropRepository handles crop data operations in PostgreSQL
type CropRepository struct {
	db *database.PostgresDB
}

// NewCropRepository creates a new crop repository
func NewCropRepository(db *database.PostgresDB) *CropRepository {
	return &CropRepository{db: db}
}

// GetByID retrieves a crop by ID together with its fertilizers, in the
// order they were applied
func (r *CropRepository) GetByID(ctx context.Context, id int64) (*domain.Crop, error) {
	query := `SELECT ` + cropColumns + ` FROM crops WHERE id = $1`

	crop, err := scanCrop(r.db.Pool.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NotFound("crop")
		}
		return nil, fmt.Errorf("failed to get crop: %w", err)
	}

	fertilizers, err := r.fertilizers(ctx, id)
	if err != nil {
		return nil, err
	}
	crop.Fertilizers = fertilizers

	return crop, nil
}

// List retrieves all crops ordered by ID. Fertilizers are not loaded.
func (r *CropRepository) List(ctx context.Context) ([]domain.Crop, error) {
	query := `SELECT ` + cropColumns + ` FROM crops ORDER BY id`

	rows, err := r.db.Pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list crops: %w", err)
	}
	return collectCrops(rows)
}

// ListByFarmID retrieves the crops planted on a farm
func (r *CropRepository) ListByFarmID(ctx context.Context, farmID int64) ([]domain.Crop, error) {
	query := `SELECT ` + cropColumns + ` FROM crops WHERE farm_id = $1 ORDER BY id`

	rows, err := r.db.Pool.Query(ctx, query, farmID)
	if err != nil {
		return nil, fmt.Errorf("failed to list crops by farm: %w", err)
	}
	return collectCrops(rows)
}

// Save inserts the crop when it has no ID yet and updates it otherwise.
// Fertilizer associations are not written; use AddFertilizer.
func (r *CropRepository) Save(ctx context.Context, crop *domain.Crop) error {
	if crop.ID == 0 {
		query := `
			INSERT INTO crops (name, planted_area, planted_date, harvest_date, farm_id)
			VALUES ($1, $2, $3, $4, $5)
			RETURNING id
		`
		err := r.db.Pool.QueryRow(ctx, query,
			crop.Name,
			crop.PlantedArea,
			dateParam(crop.PlantedDate),
			dateParam(crop.HarvestDate),
			crop.FarmID,
		).Scan(&crop.ID)
		if err != nil {
			return fmt.Errorf("failed to create crop: %w", err)
		}
		return nil
	}

	query := `
		UPDATE crops
		SET name = $2, planted_area = $3, planted_date = $4, harvest_date = $5, farm_id = $6
		WHERE id = $1
	`
	tag, err := r.db.Pool.Exec(ctx, query,
		crop.ID,
		crop.Name,
		crop.PlantedArea,
		dateParam(crop.PlantedDate),
		dateParam(crop.HarvestDate),
		crop.FarmID,
	)
	if err != nil {
		return fmt.Errorf("failed to update crop: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.NotFound("crop")
	}

	return nil
}

// Delete deletes a crop and its fertilizer associations
func (r *CropRepository) Delete(ctx context.Context, id int64) error {
	query := `DELETE FROM crops WHERE id = $1`

	tag, err := r.db.Pool.Exec(ctx, query, id)
	if err != nil {
		return fmt.Errorf("failed to delete crop: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.NotFound("crop")
	}

	return nil
}

// AddFertilizer records one application of a fertilizer to a crop.
// Repeated calls with the same pair add repeated associations.
func (r *CropRepository) AddFertilizer(ctx context.Context, cropID, fertilizerID int64) error {
	query := `INSERT INTO crop_fertilizers (crop_id, fertilizer_id) VALUES ($1, $2)`

	if _, err := r.db.Pool.Exec(ctx, query, cropID, fertilizerID); err != nil {
		return fmt.Errorf("failed to add fertilizer to crop: %w", err)
	}

	return nil
}

func (r *CropRepository) fertilizers(ctx context.Context, cropID int64) ([]domain.Fertilizer, error) {
	query := `
		SELECT f.id, f.name, f.brand, f.composition
		FROM crop_fertilizers cf
		JOIN fertilizers f ON f.id = cf.fertilizer_id
		WHERE cf.crop_id = $1
		ORDER BY cf.id
	`

	rows, err := r.db.Pool.Query(ctx, query, cropID)
	if err != nil {
		return nil, fmt.Errorf("failed to list crop fertilizers: %w", err)
	}
	defer rows.Close()

	var fertilizers []domain.Fertilizer
	for rows.Next() {
		var f domain.Fertilizer
		if err := rows.Scan(&f.ID, &f.Name, &f.Brand, &f.Composition); err != nil {
			return nil, fmt.Errorf("failed to scan fertilizer: %w", err)
		}
		fertilizers = append(fertilizers, f)
	}

	return fertilizers, rows.Err()
}

func scanCrop(row pgx.Row) (*domain.Crop, error) {
	var (
		crop                     domain.Crop
		plantedDate, harvestDate pgtype.Date
	)
	if err := row.Scan(
		&crop.ID,
		&crop.Name,
		&crop.PlantedArea,
		&plantedDate,
		&harvestDate,
		&crop.FarmID,
	); err != nil {
		return nil, err
	}
	crop.PlantedDate = fromPGDate(plantedDate)
	crop.HarvestDate = fromPGDate(harvestDate)
	return &crop, nil
}

func collectCrops(rows pgx.Rows) ([]domain.Crop, error) {
	defer rows.Close()

	crops := []domain.Crop{}
	for rows.Next() {
		crop, err := scanCrop(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan crop: %w", err)
		}
		crops = append(crops, *crop)
	}

	return crops, rows.Err()
}

func dateParam(d domain.Date) pgtype.Date {
	return pgtype.Date{Time: d.Time(), Valid: !d.IsZero()}
}

func fromPGDate(d pgtype.Date) domain.Date {
	if !d.Valid {
		return domain.Date{}
	}
	return domain.DateOf(d.Time)
}
