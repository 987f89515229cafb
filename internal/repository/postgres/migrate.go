package postgres

import (
	"context"
	_ "embed"
	"fmt"

	"github.com/agrix/agrix/internal/pkg/database"
)

// schemaSQL creates the tables if they do not already exist.
//
//go:embed schema.sql
var schemaSQL string

// Migrate applies the embedded schema. It is safe to run on every start.
func Migrate(ctx context.Context, db *database.PostgresDB) error {
	if _, err := db.Pool.Exec(ctx, schemaSQL); err != nil {
		return fmt.Errorf("failed to apply schema: %w", err)
	}
	return nil
}
