package postgres

import (
	"context"
	"database/sql"
	"log/slog"
	"time"

	"portal/internal/errors"

	pgLib "github.com/slighter12/go-lib/database/postgres"
	"gorm.io/gorm"
)

const poolMonitorInterval = 30 * time.Second

// Open connects to PostgreSQL and routes GORM logs through slog.
func Open(conn *pgLib.DBConn, debug bool, logger *slog.Logger) (*gorm.DB, error) {
	if conn == nil {
		return nil, errors.New("storage.postgres is required for the postgres driver")
	}

	db, err := pgLib.New(conn)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create PostgreSQL client")
	}

	// Every statement here is a single-row upsert or delete.
	return db.Session(&gorm.Session{
		SkipDefaultTransaction: true,
		Logger:                 newQueryLogger(logger, debug),
	}), nil
}

// Ping checks connectivity within ctx.
func Ping(ctx context.Context, db *gorm.DB) error {
	sqlDB, err := db.DB()
	if err != nil {
		return errors.Wrap(err, "failed to get PostgreSQL sql.DB")
	}

	if err := sqlDB.PingContext(ctx); err != nil {
		return errors.Wrap(err, "failed to ping PostgreSQL")
	}

	return nil
}

// Close releases the pool.
func Close(db *gorm.DB) error {
	sqlDB, err := db.DB()
	if err != nil {
		return errors.Wrap(err, "failed to get PostgreSQL sql.DB")
	}

	return errors.WithStack(sqlDB.Close())
}

// MonitorPool logs connection waits until ctx is done.
func MonitorPool(ctx context.Context, logger *slog.Logger, db *gorm.DB) {
	sqlDB, err := db.DB()
	if err != nil {
		return
	}

	ticker := time.NewTicker(poolMonitorInterval)
	defer ticker.Stop()

	prev := sqlDB.Stats()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			cur := sqlDB.Stats()
			logPoolWaits(ctx, logger, prev, cur)
			prev = cur
		}
	}
}

func logPoolWaits(ctx context.Context, logger *slog.Logger, prev, cur sql.DBStats) {
	waits := cur.WaitCount - prev.WaitCount
	if waits <= 0 {
		return
	}

	logger.LogAttrs(ctx, slog.LevelWarn, "Session store pool wait detected",
		slog.Int64("waits", waits),
		slog.Duration("waited", cur.WaitDuration-prev.WaitDuration),
		slog.Int("openConns", cur.OpenConnections),
		slog.Int("inUseConns", cur.InUse),
	)
}
