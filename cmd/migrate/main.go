// Command migrate applies the embedded schema migrations to the configured
// database and exits.
package main

import (
	"context"
	"log/slog"
	"os"

	"bistro/config"
	"bistro/internal/domain/lifecycle"
	logs "bistro/internal/infra/log"
	"bistro/internal/infra/persistence/database"
	"bistro/internal/infra/persistence/migrations"
)

func main() {
	if err := run(); err != nil {
		slog.Error("Migration failed", slog.Any("error", err))
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.New()
	if err != nil {
		return err
	}

	logger, err := logs.New(logs.Params{Config: cfg})
	if err != nil {
		return err
	}

	db, err := database.Open(cfg, logger)
	if err != nil {
		return err
	}

	sqlDB, err := database.SQLDB(db)
	if err != nil {
		return err
	}
	defer sqlDB.Close()

	ctx, cancel := context.WithTimeout(context.Background(), lifecycle.DefaultTimeout)
	defer cancel()

	applied, err := migrations.Up(ctx, sqlDB, cfg.Database.Driver)
	if err != nil {
		return err
	}

	logger.Info("Database migrations applied", slog.Int("count", applied), slog.String("driver", cfg.Database.Driver))

	return nil
}
