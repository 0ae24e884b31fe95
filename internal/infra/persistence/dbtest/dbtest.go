// Package dbtest provides a migrated, throwaway SQLite database for tests.
package dbtest

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"bistro/config"
	"bistro/internal/infra/persistence/database"
	"bistro/internal/infra/persistence/migrations"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// New opens a private in-memory database with the schema applied. It is
// closed when the test ends.
func New(t testing.TB) *gorm.DB {
	t.Helper()

	cfg := &config.Config{}
	cfg.Database.Driver = config.DriverSQLite
	cfg.Database.SQLite.DSN = "file:" + uuid.NewString() + "?mode=memory&cache=shared"

	db, err := database.Open(cfg, slog.New(slog.NewTextHandler(io.Discard, nil)))
	if err != nil {
		t.Fatalf("open test database: %v", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("get sql.DB: %v", err)
	}
	// One connection keeps the in-memory database alive for the whole test.
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	if _, err := migrations.Up(context.Background(), sqlDB, config.DriverSQLite); err != nil {
		t.Fatalf("migrate test database: %v", err)
	}

	return db
}
