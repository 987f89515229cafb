package sqlite

import (
	"fmt"

	"github.com/agrix/agrix/internal/pkg/database"
)

// Migrate creates or updates the tables for every entity
func Migrate(db *database.SQLiteDB) error {
	if err := db.DB.AutoMigrate(
		&farmRow{},
		&cropRow{},
		&fertilizerRow{},
		&cropFertilizerRow{},
	); err != nil {
		return fmt.Errorf("failed to migrate sqlite schema: %w", err)
	}
	return nil
}
