package testutil

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/agrix/agrix/internal/pkg/database"
	"github.com/agrix/agrix/internal/repository/sqlite"
	"github.com/agrix/agrix/internal/service"
)

// Services bundles the domain services over a private in-memory database.
type Services struct {
	DB          *database.SQLiteDB
	Farms       *service.FarmService
	Crops       *service.CropService
	Fertilizers *service.FertilizerService
}

// NewServices wires the services to a fresh, migrated in-memory SQLite
// database that is closed when the test ends.
func NewServices(t testing.TB) *Services {
	t.Helper()

	db, err := database.NewSQLite(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	require.NoError(t, sqlite.Migrate(db))

	farmRepo := sqlite.NewFarmRepository(db)
	cropRepo := sqlite.NewCropRepository(db)
	fertilizerRepo := sqlite.NewFertilizerRepository(db)

	farms := service.NewFarmService(farmRepo, cropRepo)
	fertilizers := service.NewFertilizerService(fertilizerRepo)

	return &Services{
		DB:          db,
		Farms:       farms,
		Crops:       service.NewCropService(cropRepo, farms, fertilizers),
		Fertilizers: fertilizers,
	}
}
