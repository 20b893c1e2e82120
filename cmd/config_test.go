package cmd

import (
	"log/slog"
	"testing"

	"marketplace/internal/adapters/out/sqlstore"
	"marketplace/internal/core/domain/model/store"
	"marketplace/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_Defaults(t *testing.T) {
	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.HTTPPort)
	assert.Equal(t, StorageMemory, cfg.StorageDriver)
	assert.False(t, cfg.UsesSQL())
	assert.True(t, cfg.PackRequired)
	assert.Equal(t, 10, cfg.LowQuotaThreshold)
	assert.Equal(t, "0 * * * * *", cfg.PackExpirySchedule)

	policy, err := cfg.PurchasePolicy()
	require.NoError(t, err)
	assert.Equal(t, store.PolicyReject, policy)

	level, err := cfg.SlogLevel()
	require.NoError(t, err)
	assert.Equal(t, slog.LevelInfo, level)
}

func TestLoadConfig_FromEnvironment(t *testing.T) {
	t.Setenv("STORAGE_DRIVER", "sqlite")
	t.Setenv("SQLITE_PATH", "/tmp/market.db")
	t.Setenv("PACK_PURCHASE_POLICY", "stack")
	t.Setenv("PACK_REQUIRED", "false")
	t.Setenv("LOW_QUOTA_THRESHOLD", "3")
	t.Setenv("LOG_LEVEL", "debug")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.True(t, cfg.UsesSQL())
	assert.False(t, cfg.PackRequired)
	assert.Equal(t, 3, cfg.LowQuotaThreshold)

	policy, err := cfg.PurchasePolicy()
	require.NoError(t, err)
	assert.Equal(t, store.PolicyStack, policy)

	db := cfg.Database()
	assert.Equal(t, sqlstore.DriverSQLite, db.Driver)
	assert.Equal(t, "/tmp/market.db", db.SQLitePath)
}

func TestLoadConfig_RejectsMalformedNumber(t *testing.T) {
	t.Setenv("LOW_QUOTA_THRESHOLD", "ten")

	_, err := LoadConfig()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parse environment")
}

func TestConfig_Validate(t *testing.T) {
	valid := Config{
		StorageDriver:      StorageMemory,
		PackPurchasePolicy: "reject",
		LowQuotaThreshold:  10,
		LogLevel:           "info",
	}
	require.NoError(t, valid.Validate())

	tests := []struct {
		name   string
		mutate func(*Config)
		param  string
	}{
		{"unknown driver", func(c *Config) { c.StorageDriver = "oracle" }, "STORAGE_DRIVER"},
		{"negative threshold", func(c *Config) { c.LowQuotaThreshold = -1 }, "LOW_QUOTA_THRESHOLD"},
		{"unknown level", func(c *Config) { c.LogLevel = "loud" }, "LOG_LEVEL"},
		{"unknown policy", func(c *Config) { c.PackPurchasePolicy = "merge" }, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := valid
			tt.mutate(&cfg)

			err := cfg.Validate()
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.param)
			if tt.name != "negative threshold" {
				assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
			}
		})
	}
}

func TestConfig_ValidateJoinsEveryProblem(t *testing.T) {
	cfg := Config{StorageDriver: "oracle", PackPurchasePolicy: "merge", LowQuotaThreshold: -5, LogLevel: "loud"}

	err := cfg.Validate()
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
	assert.Contains(t, err.Error(), "STORAGE_DRIVER")
	assert.Contains(t, err.Error(), "LOG_LEVEL")
}
