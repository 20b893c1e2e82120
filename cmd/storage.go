package cmd

import (
	"context"
	"fmt"
	"log/slog"

	"marketplace/internal/adapters/out/memory"
	"marketplace/internal/adapters/out/seed"
	"marketplace/internal/adapters/out/sqlstore"
	"marketplace/internal/core/ports"
)

// OpenStorage builds the unit of work factory for the configured backend. SQL
// schemas are migrated on open. The returned close function releases the
// connection pool and is safe to call for the memory backend.
func OpenStorage(cfg Config, logger *slog.Logger) (ports.UnitOfWorkFactory, func() error, error) {
	if !cfg.UsesSQL() {
		logger.Info("using in-memory storage")
		return memory.NewUnitOfWorkFactory(memory.NewDatabase()), func() error { return nil }, nil
	}

	db, err := sqlstore.Open(cfg.Database())
	if err != nil {
		return nil, nil, fmt.Errorf("connect to %s: %w", cfg.StorageDriver, err)
	}
	if err = sqlstore.Migrate(db); err != nil {
		return nil, nil, fmt.Errorf("migrate %s schema: %w", cfg.StorageDriver, err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, nil, err
	}

	logger.Info("using sql storage", "driver", cfg.StorageDriver)
	return sqlstore.NewGormUnitOfWorkFactory(db), sqlDB.Close, nil
}

// SeedIfNeeded loads the reference catalog. The memory backend always starts
// seeded; SQL backends only when SEED_ON_START is set.
func (c *CompositionRoot) SeedIfNeeded(ctx context.Context) error {
	if c.config.UsesSQL() && !c.config.SeedOnStart {
		return nil
	}
	return c.Seed(ctx)
}

func (c *CompositionRoot) Seed(ctx context.Context) error {
	fixture, err := seed.Default()
	if err != nil {
		return err
	}
	_, err = c.CreateSeeder().Apply(ctx, fixture, c.clock.Now())
	return err
}
