// Package database opens the gorm connection behind the credential store and
// ties its lifetime to the fx application.
package database

import (
	"context"
	"database/sql"
	"log/slog"
	"time"

	"bistro/config"
	"bistro/internal/domain/lifecycle"
	"bistro/internal/errors"
	"bistro/internal/infra/persistence/migrations"

	"github.com/glebarez/sqlite"
	pgLib "github.com/slighter12/go-lib/database/postgres"
	"go.uber.org/fx"
	"gorm.io/gorm"
)

const (
	dbPoolMonitorInterval       = 5 * time.Second
	dbPoolWarnDurationThreshold = 50 * time.Millisecond
)

// Params defines the required parameters
type Params struct {
	fx.In
	fx.Lifecycle

	Config *config.Config
	Logger *slog.Logger
}

// New opens the configured database. The connection is pinged and migrated
// when the application starts and closed when it stops.
func New(params Params) (*gorm.DB, error) {
	db, err := Open(params.Config, params.Logger)
	if err != nil {
		return nil, err
	}

	sqlDB, err := SQLDB(db)
	if err != nil {
		return nil, err
	}

	monitorCtx, cancelMonitor := context.WithCancel(context.Background())

	params.Append(fx.Hook{
		OnStart: func(startCtx context.Context) error {
			ctx, cancel := context.WithTimeout(startCtx, lifecycle.DefaultTimeout)
			defer cancel()

			if err := sqlDB.PingContext(ctx); err != nil {
				return errors.Wrapf(err, "failed to ping %s", params.Config.Database.Driver)
			}

			if params.Config.Database.AutoMigrate {
				applied, err := migrations.Up(ctx, sqlDB, params.Config.Database.Driver)
				if err != nil {
					return err
				}
				params.Logger.Info("Database migrations applied", slog.Int("count", applied))
			}

			go monitorDBPool(monitorCtx, params.Logger, sqlDB, dbPoolMonitorInterval)

			return nil
		},
		OnStop: func(_ context.Context) error {
			cancelMonitor()

			return errors.WithStack(sqlDB.Close())
		},
	})

	return db, nil
}

// Open connects to the configured driver without registering lifecycle hooks.
func Open(cfg *config.Config, logger *slog.Logger) (*gorm.DB, error) {
	var (
		db  *gorm.DB
		err error
	)

	switch cfg.Database.Driver {
	case config.DriverPostgres:
		if cfg.Postgres == nil {
			return nil, errors.New("postgres driver selected but the postgres section is missing")
		}
		db, err = pgLib.New(cfg.Postgres)
		if err != nil {
			return nil, errors.Wrap(err, "failed to create PostgreSQL client")
		}
	case config.DriverSQLite:
		db, err = gorm.Open(sqlite.Open(cfg.Database.SQLite.DSN), &gorm.Config{TranslateError: true})
		if err != nil {
			return nil, errors.Wrap(err, "failed to open SQLite database")
		}
	default:
		return nil, errors.Errorf("unsupported database driver %q", cfg.Database.Driver)
	}

	return db.Session(&gorm.Session{
		// Statements run inside explicit sessions opened by the session manager.
		SkipDefaultTransaction: true,
		Logger:                 newGormSlogLogger(logger, cfg),
	}), nil
}

// SQLDB exposes the connection pool behind db.
func SQLDB(db *gorm.DB) (*sql.DB, error) {
	sqlDB, err := db.DB()
	if err != nil {
		return nil, errors.Wrap(err, "failed to get sql.DB")
	}

	return sqlDB, nil
}

func monitorDBPool(ctx context.Context, logger *slog.Logger, sqlDB *sql.DB, interval time.Duration) {
	if logger == nil || sqlDB == nil {
		return
	}

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	prev := sqlDB.Stats()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			cur := sqlDB.Stats()
			waitDelta := cur.WaitCount - prev.WaitCount
			waitDurationDelta := cur.WaitDuration - prev.WaitDuration

			if waitDelta > 0 {
				attrs := []slog.Attr{
					slog.Int64("wait_count_delta", waitDelta),
					slog.Duration("wait_duration_delta", waitDurationDelta),
					slog.Duration("avg_wait", waitDurationDelta/time.Duration(waitDelta)),
					slog.Int("max_open_conns", cur.MaxOpenConnections),
					slog.Int("open_conns", cur.OpenConnections),
					slog.Int("in_use_conns", cur.InUse),
					slog.Int("idle_conns", cur.Idle),
				}
				level := slog.LevelDebug
				if waitDurationDelta >= dbPoolWarnDurationThreshold {
					level = slog.LevelWarn
				}
				logger.LogAttrs(ctx, level, "Database pool wait observed", attrs...)
			}

			prev = cur
		}
	}
}
