// internal/config/config_test.go
package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "development", cfg.Environment)
	assert.Equal(t, "8080", cfg.Server.Port)
	assert.Equal(t, "stockpilot", cfg.Database.Database)
	assert.Equal(t, 5, cfg.Inventory.LowStockThreshold)
	assert.Empty(t, cfg.Export.GotenbergURL)
}

func TestLoadFromEnvironment(t *testing.T) {
	t.Setenv("LOW_STOCK_THRESHOLD", "12")
	t.Setenv("GOTENBERG_URL", "http://gotenberg:3000")
	t.Setenv("DB_MAX_OPEN_CONNS", "not-a-number")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 12, cfg.Inventory.LowStockThreshold)
	assert.Equal(t, "http://gotenberg:3000", cfg.Export.GotenbergURL)
	assert.Equal(t, 25, cfg.Database.MaxOpenConns)
}

func TestValidateRejectsNegativeThreshold(t *testing.T) {
	t.Setenv("LOW_STOCK_THRESHOLD", "-1")

	_, err := Load()
	assert.Error(t, err)
}

func TestValidateRequiresPasswordInProduction(t *testing.T) {
	t.Setenv("ENVIRONMENT", "production")
	t.Setenv("DB_PASSWORD", "")

	_, err := Load()
	assert.Error(t, err)
}

func TestDatabaseDSN(t *testing.T) {
	cfg := DatabaseConfig{
		Host:     "db",
		Port:     "5433",
		User:     "stock",
		Password: "secret",
		Database: "inventory",
		SSLMode:  "disable",
	}

	dsn := cfg.DSN()
	assert.Contains(t, dsn, "host=db")
	assert.Contains(t, dsn, "port=5433")
	assert.Contains(t, dsn, "user=stock")
	assert.Contains(t, dsn, "password=secret")
	assert.Contains(t, dsn, "dbname=inventory")
	assert.Contains(t, dsn, "sslmode=disable")
}
