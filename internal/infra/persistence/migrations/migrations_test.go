package migrations

import (
	"context"
	"database/sql"
	"testing"

	"bistro/config"

	_ "github.com/glebarez/go-sqlite"
	"github.com/google/uuid"
	"github.com/pressly/goose/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openSQLite(t *testing.T) *sql.DB {
	t.Helper()

	db, err := sql.Open("sqlite", "file:"+uuid.NewString()+"?mode=memory&cache=shared")
	require.NoError(t, err)
	db.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = db.Close() })

	return db
}

func TestDialect(t *testing.T) {
	dialect, err := Dialect(config.DriverPostgres)
	require.NoError(t, err)
	assert.Equal(t, goose.DialectPostgres, dialect)

	dialect, err = Dialect(config.DriverSQLite)
	require.NoError(t, err)
	assert.Equal(t, goose.DialectSQLite3, dialect)

	_, err = Dialect("mysql")
	assert.Error(t, err)
}

func TestUp_CreatesClientsOnce(t *testing.T) {
	db := openSQLite(t)
	ctx := context.Background()

	applied, err := Up(ctx, db, config.DriverSQLite)
	require.NoError(t, err)
	assert.Equal(t, 1, applied)

	applied, err = Up(ctx, db, config.DriverSQLite)
	require.NoError(t, err)
	assert.Zero(t, applied)

	_, err = db.ExecContext(ctx, "INSERT INTO clients (email, hashed_password) VALUES (?, ?)", "a@b.com", "h")
	require.NoError(t, err)

	_, err = db.ExecContext(ctx, "INSERT INTO clients (email, hashed_password) VALUES (?, ?)", "a@b.com", "h2")
	assert.Error(t, err)
}

func TestUp_UnknownDriver(t *testing.T) {
	_, err := Up(context.Background(), openSQLite(t), "oracle")
	assert.Error(t, err)
}
