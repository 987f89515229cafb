// Package repository contains data access implementations for Agrix.
//
// Repositories provide persistence operations for farms, crops and
// fertilizers. Two interchangeable backends are provided:
//   - postgres: pgx connection pool, schema applied from an embedded SQL file
//   - sqlite: gorm over a pure Go SQLite driver, for local runs and tests
//
// # Architecture
//
// Repository interfaces are defined at the service layer (consumer-defined
// interfaces). This package contains the concrete implementations.
//
// GetByID returns an apperrors NotFound error when the row is absent, which
// matches the domain.Err*NotFound values under errors.Is.
//
// Deleting a farm keeps its crops and clears their farm. Deleting a crop
// removes its fertilizer associations.
//
// # Thread Safety
//
// All repository implementations are safe for concurrent use.
// Connection pools are managed at the database layer.
package repository
