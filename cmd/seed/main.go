// Command seed loads the reference catalog into the configured storage.
// It is a no-op when the storage already holds users.
package main

import (
	"context"
	"errors"
	"log/slog"
	"os"

	"marketplace/cmd"
	"marketplace/internal/pkg/clock"

	"github.com/joho/godotenv"
	"github.com/labstack/gommon/log"
)

func main() {
	if err := godotenv.Load(".env"); err != nil && !errors.Is(err, os.ErrNotExist) {
		log.Fatalf("Error loading .env file: %v", err)
	}

	config, err := cmd.LoadConfig()
	if err != nil {
		log.Fatalf("Error reading configuration: %v", err)
	}

	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))
	if !config.UsesSQL() {
		logger.Warn("memory storage is seeded on every start; nothing to do")
		return
	}

	uowFactory, closeStorage, err := cmd.OpenStorage(config, logger)
	if err != nil {
		log.Fatalf("Error opening storage: %v", err)
	}
	defer closeStorage() //nolint:errcheck

	app := cmd.NewCompositionRoot(config, uowFactory, clock.System{}, logger)
	if err = app.Seed(context.Background()); err != nil {
		log.Errorf("Error seeding catalog: %v", err)
		os.Exit(1)
	}
}
