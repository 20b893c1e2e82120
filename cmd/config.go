package cmd

import (
	"errors"
	"fmt"
	"log/slog"

	"marketplace/internal/adapters/out/sqlstore"
	"marketplace/internal/core/domain/model/store"
	"marketplace/internal/pkg/errs"

	"github.com/caarlos0/env/v9"
)

const StorageMemory = "memory"

type Config struct {
	HTTPPort string `env:"HTTP_PORT" envDefault:"8080"`

	StorageDriver string `env:"STORAGE_DRIVER" envDefault:"memory"`
	DBHost        string `env:"DB_HOST" envDefault:"localhost"`
	DBPort        string `env:"DB_PORT" envDefault:"5432"`
	DBUser        string `env:"DB_USER"`
	DBPassword    string `env:"DB_PASSWORD"`
	DBName        string `env:"DB_NAME"`
	DBSslMode     string `env:"DB_SSLMODE" envDefault:"disable"`
	SQLitePath    string `env:"SQLITE_PATH" envDefault:"marketplace.db"`
	SeedOnStart   bool   `env:"SEED_ON_START" envDefault:"false"`

	PackPurchasePolicy string `env:"PACK_PURCHASE_POLICY" envDefault:"reject"`
	PackRequired       bool   `env:"PACK_REQUIRED" envDefault:"true"`
	LowQuotaThreshold  int    `env:"LOW_QUOTA_THRESHOLD" envDefault:"10"`

	PackExpirySchedule string `env:"PACK_EXPIRY_SCHEDULE" envDefault:"0 * * * * *"`
	LowQuotaSchedule   string `env:"LOW_QUOTA_SCHEDULE" envDefault:"0 0 * * * *"`

	LogLevel string `env:"LOG_LEVEL" envDefault:"info"`
}

// LoadConfig reads the configuration from the environment and validates it.
func LoadConfig() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse environment: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) Validate() error {
	var storageErr error
	switch c.StorageDriver {
	case StorageMemory, sqlstore.DriverPostgres, sqlstore.DriverMySQL, sqlstore.DriverSQLite:
	default:
		storageErr = errs.NewValueIsInvalidErrorWithCause("STORAGE_DRIVER",
			fmt.Errorf("%q is not one of memory, postgres, mysql, sqlite", c.StorageDriver))
	}

	var thresholdErr error
	if c.LowQuotaThreshold < 0 {
		thresholdErr = errs.NewValueIsOutOfRangeError("LOW_QUOTA_THRESHOLD", c.LowQuotaThreshold, 0, "unbounded")
	}

	var levelErr error
	if _, err := c.SlogLevel(); err != nil {
		levelErr = err
	}

	_, policyErr := c.PurchasePolicy()

	return errors.Join(storageErr, thresholdErr, levelErr, policyErr)
}

func (c Config) PurchasePolicy() (store.PurchasePolicy, error) {
	return store.ParsePurchasePolicy(c.PackPurchasePolicy)
}

func (c Config) SlogLevel() (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return slog.LevelInfo, errs.NewValueIsInvalidErrorWithCause("LOG_LEVEL", err)
	}
	return level, nil
}

func (c Config) UsesSQL() bool {
	return c.StorageDriver != StorageMemory
}

func (c Config) Database() sqlstore.Config {
	return sqlstore.Config{
		Driver:     c.StorageDriver,
		Host:       c.DBHost,
		Port:       c.DBPort,
		User:       c.DBUser,
		Password:   c.DBPassword,
		Name:       c.DBName,
		SSLMode:    c.DBSslMode,
		SQLitePath: c.SQLitePath,
	}
}
