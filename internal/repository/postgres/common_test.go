package postgres

import (
	"context"
	"os"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/agrix/agrix/internal/config"
	"github.com/agrix/agrix/internal/pkg/database"
)

// getTestDB returns a database connection for integration tests with the
// schema applied and all tables emptied.
// Returns nil if the database is not available (skips tests).
func getTestDB(t *testing.T) *database.PostgresDB {
	// Check if we're running integration tests
	if os.Getenv("POSTGRES_TEST_HOST") == "" {
		t.Skip("Skipping integration test: POSTGRES_TEST_HOST not set")
		return nil
	}

	cfg := config.PostgresConfig{
		Host:     os.Getenv("POSTGRES_TEST_HOST"),
		Port:     5432,
		User:     os.Getenv("POSTGRES_TEST_USER"),
		Password: os.Getenv("POSTGRES_TEST_PASS"),
		Database: os.Getenv("POSTGRES_TEST_DB"),
		SSLMode:  "disable",
		MaxConns: 5,
		MinConns: 1,
	}

	if cfg.Database == "" {
		cfg.Database = "test_agrix"
	}
	if cfg.User == "" {
		cfg.User = "postgres"
	}

	ctx := context.Background()
	db, err := database.NewPostgres(ctx, cfg)
	if err != nil {
		t.Skipf("Skipping integration test: failed to connect to PostgreSQL: %v", err)
		return nil
	}

	require.NoError(t, Migrate(ctx, db))
	cleanup(t, db)

	return db
}

// cleanup empties every table
func cleanup(t *testing.T, db *database.PostgresDB) {
	_, err := db.Pool.Exec(context.Background(),
		"TRUNCATE crop_fertilizers, crops, fertilizers, farms RESTART IDENTITY CASCADE")
	require.NoError(t, err)
}
