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

// FertilizerRepository handles fertilizer data operations in PostgreSQL
type FertilizerRepository struct {
	db *database.PostgresDB
}

// NewFertilizerRepository creates a new fertilizer repository
func NewFertilizerRepository(db *database.PostgresDB) *FertilizerRepository {
	return &FertilizerRepository{db: db}
}

// GetByID retrieves a fertilizer by ID
func (r *FertilizerRepository) GetByID(ctx context.Context, id int64) (*domain.Fertilizer, error) {
	query := `SELECT id, name, brand, composition FROM fertilizers WHERE id = $1`

	var f domain.Fertilizer
	err := r.db.Pool.QueryRow(ctx, query, id).Scan(&f.ID, &f.Name, &f.Brand, &f.Composition)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NotFound("fertilizer")
		}
		return nil, fmt.Errorf("failed to get fertilizer: %w", err)
	}

	return &f, nil
}

// List retrieves all fertilizers ordered by ID
func (r *FertilizerRepository) List(ctx context.Context) ([]domain.Fertilizer, error) {
	query := `SELECT id, name, brand, composition FROM fertilizers ORDER BY id`

	rows, err := r.db.Pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list fertilizers: %w", err)
	}
	defer rows.Close()

	fertilizers := []domain.Fertilizer{}
	for rows.Next() {
		var f domain.Fertilizer
		if err := rows.Scan(&f.ID, &f.Name, &f.Brand, &f.Composition); err != nil {
			return nil, fmt.Errorf("failed to scan fertilizer: %w", err)
		}
		fertilizers = append(fertilizers, f)
	}

	return fertilizers, rows.Err()
}

// Save inserts the fertilizer when it has no ID yet and updates it otherwise
func (r *FertilizerRepository) Save(ctx context.Context, f *domain.Fertilizer) error {
	if f.ID == 0 {
		query := `INSERT INTO fertilizers (name, brand, composition) VALUES ($1, $2, $3) RETURNING id`
		if err := r.db.Pool.QueryRow(ctx, query, f.Name, f.Brand, f.Composition).Scan(&f.ID); err != nil {
			return fmt.Errorf("failed to create fertilizer: %w", err)
		}
		return nil
	}

	query := `UPDATE fertilizers SET name = $2, brand = $3, composition = $4 WHERE id = $1`
	tag, err := r.db.Pool.Exec(ctx, query, f.ID, f.Name, f.Brand, f.Composition)
	if err != nil {
		return fmt.Errorf("failed to update fertilizer: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.NotFound("fertilizer")
	}

	return nil
}
