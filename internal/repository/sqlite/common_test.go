package sqlite

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/agrix/agrix/internal/pkg/database"
)

// newTestDB opens a migrated in-memory database that is closed with the test
func newTestDB(t *testing.T) *database.SQLiteDB {
	t.Helper()

	db, err := database.NewSQLite(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	require.NoError(t, Migrate(db))
	return db
}
