package config

import (
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := load(viper.New())
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Equal(t, "development", cfg.Server.Env)
	assert.True(t, cfg.IsDevelopment())
	assert.Equal(t, StorageDriverPostgres, cfg.Storage.Driver)
	assert.Equal(t, "localhost", cfg.Postgres.Host)
	assert.Equal(t, int32(10), cfg.Postgres.MaxConns)
	assert.False(t, cfg.RateLimit.Enabled)
	assert.Equal(t, "info", cfg.Log.Level)
}

func TestLoad_Environment(t *testing.T) {
	t.Setenv("SERVER_PORT", "9090")
	t.Setenv("SERVER_ENV", "production")
	t.Setenv("STORAGE_DRIVER", "SQLite")
	t.Setenv("SQLITE_PATH", "/tmp/agrix.db")
	t.Setenv("LOG_FORMAT", "console")

	cfg, err := load(viper.New())
	require.NoError(t, err)

	assert.Equal(t, 9090, cfg.Server.Port)
	assert.True(t, cfg.IsProduction())
	assert.Equal(t, StorageDriverSQLite, cfg.Storage.Driver)
	assert.Equal(t, "/tmp/agrix.db", cfg.Storage.SQLitePath)
	assert.Equal(t, "console", cfg.Log.Format)
}

func TestLoad_Invalid(t *testing.T) {
	t.Run("unknown storage driver", func(t *testing.T) {
		t.Setenv("STORAGE_DRIVER", "mongo")
		_, err := load(viper.New())
		assert.ErrorContains(t, err, "unknown storage driver")
	})

	t.Run("rate limit without budget", func(t *testing.T) {
		t.Setenv("RATE_LIMIT_ENABLED", "true")
		t.Setenv("RATE_LIMIT_REQUESTS_PER_MINUTE", "0")
		_, err := load(viper.New())
		assert.ErrorContains(t, err, "rate_limit_requests_per_minute")
	})
}

func TestAddrs(t *testing.T) {
	assert.Equal(t, "0.0.0.0:8080", ServerConfig{Host: "0.0.0.0", Port: 8080}.Addr())
	assert.Equal(t, "localhost:6379", RedisConfig{Host: "localhost", Port: 6379}.Addr())
	assert.Equal(t,
		"postgres://agrix:secret@db:5432/agrix?sslmode=disable",
		PostgresConfig{User: "agrix", Password: "secret", Host: "db", Port: 5432, Database: "agrix", SSLMode: "disable"}.DSN(),
	)
}
