package database

import (
	"io"
	"log/slog"
	"testing"

	"bistro/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestOpen_SQLite(t *testing.T) {
	cfg := &config.Config{}
	cfg.Database.Driver = config.DriverSQLite
	cfg.Database.SQLite.DSN = "file:open-test?mode=memory&cache=shared"

	db, err := Open(cfg, discardLogger())
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	defer sqlDB.Close()

	assert.NoError(t, sqlDB.Ping())
	assert.True(t, db.SkipDefaultTransaction)
}

func TestOpen_PostgresWithoutSection(t *testing.T) {
	cfg := &config.Config{}
	cfg.Database.Driver = config.DriverPostgres

	_, err := Open(cfg, discardLogger())
	assert.ErrorContains(t, err, "postgres section is missing")
}

func TestOpen_UnsupportedDriver(t *testing.T) {
	cfg := &config.Config{}
	cfg.Database.Driver = "mysql"

	_, err := Open(cfg, discardLogger())
	assert.ErrorContains(t, err, `unsupported database driver "mysql"`)
}
