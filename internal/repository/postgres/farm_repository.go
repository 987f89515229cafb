package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/agrix/agrix/internal/domain"
	"github.com/agrix/agrix/internal/pkg/database"
	apperrors "github.com/agrix/agrix/internal/pkg/errors"
)

// FarmRepository handles farm data operations in PostgreSQL
type FarmRepository struct {
	db *database.PostgresDB
}

// NewFarmRepository creates a new farm repository
func NewFarmRepository(db *database.PostgresDB) *FarmRepository {
	return &FarmRepository{db: db}
}

// GetByID retrieves a farm by ID
func (r *FarmRepository) GetByID(ctx context.Context, id int64) (*domain.Farm, error) {
	query := `SELECT id, name, size FROM farms WHERE id = $1`

	var farm domain.Farm
	err := r.db.Pool.QueryRow(ctx, query, id).Scan(&farm.ID, &farm.Name, &farm.Size)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NotFound("farm")
		}
		return nil, fmt.Errorf("failed to get farm: %w", err)
	}

	return &farm, nil
}

// List retrieves all farms ordered by ID
func (r *FarmRepository) List(ctx context.Context) ([]domain.Farm, error) {
	query := `SELECT id, name, size FROM farms ORDER BY id`

	rows, err := r.db.Pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list farms: %w", err)
	}
	defer rows.Close()

	farms := []domain.Farm{}
	for rows.Next() {
		var farm domain.Farm
		if err := rows.Scan(&farm.ID, &farm.Name, &farm.Size); err != nil {
			return nil, fmt.Errorf("failed to scan farm: %w", err)
		}
		farms = append(farms, farm)
	}

	return farms, rows.Err()
}

// Save inserts the farm when it has no ID yet and updates it otherwise.
// On insert the generated ID is written back to farm.
func (r *FarmRepository) Save(ctx context.Context, farm *domain.Farm) error {
	if farm.ID == 0 {
		query := `INSERT INTO farms (name, size) VALUES ($1, $2) RETURNING id`
		if err := r.db.Pool.QueryRow(ctx, query, farm.Name, farm.Size).Scan(&farm.ID); err != nil {
			return fmt.Errorf("failed to create farm: %w", err)
		}
		return nil
	}

	query := `UPDATE farms SET name = $2, size = $3 WHERE id = $1`
	tag, err := r.db.Pool.Exec(ctx, query, farm.ID, farm.Name, farm.Size)
	if err != nil {
		return fmt.Errorf("failed to update farm: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.NotFound("farm")
	}

	return nil
}

// Delete deletes a farm. Crops planted on it are kept with their farm cleared.
func (r *FarmRepository) Delete(ctx context.Context, id int64) error {
	query := `DELETE FROM farms WHERE id = $1`

	tag, err := r.db.Pool.Exec(ctx, query, id)
	if err != nil {
		return fmt.Errorf("failed to delete farm: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.NotFound("farm")
	}

	return nil
}
