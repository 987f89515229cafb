package database

import (
	"context"
	"fmt"

	"github.com/glebarez/sqlite"
	"go.uber.org/zap"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/agrix/agrix/internal/pkg/logger"
)

// SQLiteDB wraps a gorm handle on a SQLite database
type SQLiteDB struct {
	DB    *gorm.DB
	stats *queryStats
}

// NewSQLite opens the SQLite database at path. Use ":memory:" for a
// throwaway database.
func NewSQLite(path string) (*SQLiteDB, error) {
	level := gormlogger.Warn
	if logger.IsDebug() {
		level = gormlogger.Info
	}
	stats := newQueryStats("sqlite", logger.Named("sqlite"))

	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{
		Logger: newGormLogger(level, stats),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to open sqlite: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get sqlite handle: %w", err)
	}
	// A single connection keeps ":memory:" databases shared and serializes
	// writers.
	sqlDB.SetMaxOpenConns(1)

	if err := db.Exec("PRAGMA foreign_keys = ON").Error; err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("failed to enable foreign keys: %w", err)
	}

	logger.Info("opened SQLite database", zap.String("path", path))

	return &SQLiteDB{DB: db, stats: stats}, nil
}

// Close closes the underlying connection
func (db *SQLiteDB) Close() error {
	if db.DB == nil {
		return nil
	}
	sqlDB, err := db.DB.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

// Ping checks the connection
func (db *SQLiteDB) Ping(ctx context.Context) error {
	sqlDB, err := db.DB.DB()
	if err != nil {
		return err
	}
	return sqlDB.PingContext(ctx)
}

// QueryMetrics returns a snapshot of the query counters
func (db *SQLiteDB) QueryMetrics() QueryMetrics {
	if db.stats == nil {
		return QueryMetrics{}
	}
	return db.stats.snapshot()
}
