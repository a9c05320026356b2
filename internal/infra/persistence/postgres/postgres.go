// Package postgres implements the persistence port with GORM and PostgreSQL.
package postgres

import (
	"context"
	"database/sql"
	"log/slog"
	"time"

	pgLib "github.com/slighter12/go-lib/database/postgres"
	"go.uber.org/fx"
	"gorm.io/gorm"

	"musea/config"
	"musea/internal/domain/lifecycle"
	"musea/internal/errors"
)

const poolStatsInterval = 30 * time.Second

// Params defines the required parameters
type Params struct {
	fx.In
	fx.Lifecycle

	Config *config.Config
	Logger *slog.Logger
}

// New creates the PostgreSQL client. The connection is verified and the
// schema migrated on startup through the fx lifecycle.
func New(params Params) (*gorm.DB, error) {
	db, err := pgLib.New(params.Config.Postgres)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create PostgreSQL client")
	}
	db = db.Session(&gorm.Session{
		// Every write here is a single statement; no implicit transactions needed.
		SkipDefaultTransaction: true,
		Logger:                 newGormSlogLogger(params.Logger, params.Config),
	})

	sqlDB, err := db.DB()
	if err != nil {
		return nil, errors.Wrap(err, "failed to get PostgreSQL sql.DB")
	}

	statsCtx, cancelStats := context.WithCancel(context.Background())

	params.Append(fx.Hook{
		OnStart: func(startCtx context.Context) error {
			ctx, cancel := context.WithTimeout(startCtx, lifecycle.DefaultTimeout)
			defer cancel()

			if err := sqlDB.PingContext(ctx); err != nil {
				return errors.Wrap(err, "failed to ping PostgreSQL")
			}

			go logPoolStats(statsCtx, params.Logger, sqlDB)

			return nil
		},
		OnStop: func(_ context.Context) error {
			cancelStats()

			return sqlDB.Close()
		},
	})

	return db, nil
}

// logPoolStats periodically reports connection pool pressure. Waits indicate
// the pool is undersized for the current load.
func logPoolStats(ctx context.Context, logger *slog.Logger, sqlDB *sql.DB) {
	ticker := time.NewTicker(poolStatsInterval)
	defer ticker.Stop()

	prevWaits := sqlDB.Stats().WaitCount
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			stats := sqlDB.Stats()
			if stats.WaitCount > prevWaits {
				logger.LogAttrs(ctx, slog.LevelWarn, "Postgres pool wait detected",
					slog.Int64("waitCountDelta", stats.WaitCount-prevWaits),
					slog.Duration("waitDurationTotal", stats.WaitDuration),
					slog.Int("openConns", stats.OpenConnections),
					slog.Int("inUseConns", stats.InUse),
				)
			}
			prevWaits = stats.WaitCount
		}
	}
}
