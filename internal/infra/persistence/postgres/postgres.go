package postgres

import (
	"context"
	"database/sql"
	"log/slog"
	"time"

	"haven/config"
	"haven/internal/domain/lifecycle"
	"haven/internal/errors"

	pgLib "github.com/slighter12/go-lib/database/postgres"
	"go.uber.org/fx"
	"gorm.io/gorm"
)

const (
	dbPoolMonitorInterval       = 30 * time.Second
	dbPoolWarnDurationThreshold = 50 * time.Millisecond
)

// Params defines the required parameters
type Params struct {
	fx.In
	fx.Lifecycle

	Config *config.Config
	Logger *slog.Logger
}

// New opens the identity store and ties its pool to the fx lifecycle.
func New(params Params) (*gorm.DB, error) {
	if params.Config.Postgres == nil {
		return nil, errors.New("postgres configuration is missing")
	}

	db, err := Open(params.Config, params.Logger)
	if err != nil {
		return nil, err
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, errors.Wrap(err, "failed to get PostgreSQL sql.DB")
	}

	monitorCtx, cancelMonitor := context.WithCancel(context.Background())

	params.Append(fx.Hook{
		OnStart: func(startCtx context.Context) error {
			ctx, cancel := context.WithTimeout(startCtx, lifecycle.DefaultTimeout)
			defer cancel()

			if err := sqlDB.PingContext(ctx); err != nil {
				return errors.Wrap(err, "failed to ping PostgreSQL")
			}

			watch := &poolWatch{db: sqlDB, logger: params.Logger}
			go watch.run(monitorCtx, dbPoolMonitorInterval)

			return nil
		},
		OnStop: func(_ context.Context) error {
			cancelMonitor()

			return sqlDB.Close()
		},
	})

	return db, nil
}

// Open connects without lifecycle hooks, for one-shot commands.
func Open(cfg *config.Config, logger *slog.Logger) (*gorm.DB, error) {
	db, err := pgLib.New(cfg.Postgres)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create PostgreSQL client")
	}

	return db.Session(&gorm.Session{
		// Registration is the only multi-statement write and uses txManager.Execute explicitly.
		SkipDefaultTransaction: true,
		Logger:                 newGormSlogLogger(logger, cfg),
	}), nil
}

// poolWatch logs when callers had to wait for an identity store connection
// during the last interval.
type poolWatch struct {
	db     *sql.DB
	logger *slog.Logger
	last   sql.DBStats
}

func (w *poolWatch) run(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	w.last = w.db.Stats()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			w.check(ctx, w.db.Stats())
		}
	}
}

func (w *poolWatch) check(ctx context.Context, now sql.DBStats) {
	waits := now.WaitCount - w.last.WaitCount
	waited := now.WaitDuration - w.last.WaitDuration
	w.last = now
	if waits <= 0 {
		return
	}

	level := slog.LevelDebug
	if waited >= dbPoolWarnDurationThreshold {
		level = slog.LevelWarn
	}
	w.logger.LogAttrs(ctx, level, "Identity store pool wait",
		slog.Int64("waits", waits),
		slog.Duration("avgWait", waited/time.Duration(waits)),
		slog.Int("open", now.OpenConnections),
		slog.Int("inUse", now.InUse),
	)
}
