// Package migrations embeds the SQL schema and applies it with goose.
package migrations

import (
	"context"
	"database/sql"
	"embed"

	"bistro/config"
	"bistro/internal/errors"

	"github.com/pressly/goose/v3"
)

//go:embed *.sql
var FS embed.FS

// Dialect maps a configured database driver onto the goose dialect.
func Dialect(driver string) (goose.Dialect, error) {
	switch driver {
	case config.DriverPostgres:
		return goose.DialectPostgres, nil
	case config.DriverSQLite:
		return goose.DialectSQLite3, nil
	default:
		return "", errors.Errorf("no migration dialect for driver %q", driver)
	}
}

// Up applies every pending migration and returns how many ran.
func Up(ctx context.Context, db *sql.DB, driver string) (int, error) {
	dialect, err := Dialect(driver)
	if err != nil {
		return 0, err
	}

	provider, err := goose.NewProvider(dialect, db, FS)
	if err != nil {
		return 0, errors.Wrap(err, "goose.NewProvider")
	}

	results, err := provider.Up(ctx)
	if err != nil {
		return 0, errors.Wrap(err, "apply migrations")
	}

	return len(results), nil
}
