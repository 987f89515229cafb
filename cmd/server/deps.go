package main

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/agrix/agrix/internal/config"
	"github.com/agrix/agrix/internal/handler"
	"github.com/agrix/agrix/internal/pkg/database"
	"github.com/agrix/agrix/internal/pkg/logger"
	pgrepo "github.com/agrix/agrix/internal/repository/postgres"
	sqliterepo "github.com/agrix/agrix/internal/repository/sqlite"
	"github.com/agrix/agrix/internal/service"
)

// Dependencies holds all application dependencies
type Dependencies struct {
	Config *config.Config

	// Exactly one of Postgres and SQLite is set, per Storage.Driver.
	Postgres *database.PostgresDB
	SQLite   *database.SQLiteDB
	// Redis is only connected when rate limiting is enabled.
	Redis *database.RedisDB

	FarmService       *service.FarmService
	CropService       *service.CropService
	FertilizerService *service.FertilizerService

	Handlers *Handlers
}

// Handlers groups the HTTP handlers
type Handlers struct {
	Health      *handler.HealthHandler
	Docs        *handler.DocsHandler
	Farms       *handler.FarmsHandler
	Crops       *handler.CropsHandler
	Fertilizers *handler.FertilizersHandler
}

type repositories struct {
	farms       service.FarmRepository
	crops       service.CropRepository
	fertilizers service.FertilizerRepository
}

// initDependencies opens storage, wires repositories into services and
// builds the handlers.
func initDependencies(ctx context.Context, cfg *config.Config) (*Dependencies, error) {
	deps := &Dependencies{Config: cfg}

	repos, err := deps.initStorage(ctx)
	if err != nil {
		deps.Close()
		return nil, err
	}

	if cfg.RateLimit.Enabled {
		rdb, err := database.NewRedis(ctx, cfg.Redis)
		if err != nil {
			deps.Close()
			return nil, fmt.Errorf("failed to initialize Redis: %w", err)
		}
		deps.Redis = rdb
	}

	deps.FarmService = service.NewFarmService(repos.farms, repos.crops)
	deps.FertilizerService = service.NewFertilizerService(repos.fertilizers)
	deps.CropService = service.NewCropService(repos.crops, deps.FarmService, deps.FertilizerService)

	deps.Handlers = &Handlers{
		Health:      handler.NewHealthHandler(deps.pingers(), appVersion),
		Docs:        handler.NewDocsHandler(),
		Farms:       handler.NewFarmsHandler(deps.FarmService, logger.Named("farms")),
		Crops:       handler.NewCropsHandler(deps.CropService, logger.Named("crops")),
		Fertilizers: handler.NewFertilizersHandler(deps.FertilizerService, logger.Named("fertilizers")),
	}

	return deps, nil
}

func (d *Dependencies) initStorage(ctx context.Context) (*repositories, error) {
	switch d.Config.Storage.Driver {
	case config.StorageDriverPostgres:
		pgDB, err := database.NewPostgres(ctx, d.Config.Postgres)
		if err != nil {
			return nil, fmt.Errorf("failed to initialize PostgreSQL: %w", err)
		}
		d.Postgres = pgDB

		if err := pgrepo.Migrate(ctx, pgDB); err != nil {
			return nil, err
		}
		logger.Info("using PostgreSQL storage")

		return &repositories{
			farms:       pgrepo.NewFarmRepository(pgDB),
			crops:       pgrepo.NewCropRepository(pgDB),
			fertilizers: pgrepo.NewFertilizerRepository(pgDB),
		}, nil

	case config.StorageDriverSQLite:
		sqliteDB, err := database.NewSQLite(d.Config.Storage.SQLitePath)
		if err != nil {
			return nil, fmt.Errorf("failed to initialize SQLite: %w", err)
		}
		d.SQLite = sqliteDB

		if err := sqliterepo.Migrate(sqliteDB); err != nil {
			return nil, err
		}
		logger.Info("using SQLite storage")

		return &repositories{
			farms:       sqliterepo.NewFarmRepository(sqliteDB),
			crops:       sqliterepo.NewCropRepository(sqliteDB),
			fertilizers: sqliterepo.NewFertilizerRepository(sqliteDB),
		}, nil
	}

	return nil, fmt.Errorf("unknown storage driver %q", d.Config.Storage.Driver)
}

// pingers lists the connected dependencies for the readiness checks. Nil
// pointers are left out so no typed nil reaches the health handler.
func (d *Dependencies) pingers() map[string]handler.Pinger {
	pingers := make(map[string]handler.Pinger)
	if d.Postgres != nil {
		pingers["postgres"] = d.Postgres
	}
	if d.SQLite != nil {
		pingers["sqlite"] = d.SQLite
	}
	if d.Redis != nil {
		pingers["redis"] = d.Redis
	}
	return pingers
}

// Close releases all connections
func (d *Dependencies) Close() {
	if d.Redis != nil {
		if err := d.Redis.Close(); err != nil {
			logger.Warn("failed to close Redis", zap.Error(err))
		}
	}
	if d.Postgres != nil {
		d.Postgres.Close()
	}
	if d.SQLite != nil {
		if err := d.SQLite.Close(); err != nil {
			logger.Warn("failed to close SQLite", zap.Error(err))
		}
	}
}
