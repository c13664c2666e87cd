// Package persistence selects the session snapshot backend.
package persistence

import (
	"context"
	"log/slog"

	"portal/config"
	"portal/internal/domain/lifecycle"
	"portal/internal/domain/repository"
	"portal/internal/errors"
	"portal/internal/infra/persistence/blob"
	"portal/internal/infra/persistence/postgres"
	"portal/internal/infra/persistence/redis"
	"portal/internal/infra/persistence/sealed"

	"go.uber.org/fx"
)

// Params holds the dependencies of the repository provider.
type Params struct {
	fx.In

	Lc     fx.Lifecycle
	Config *config.Config
	Logger *slog.Logger
}

// NewSessionRepository opens the backend named by storage.driver and ties its
// connection to the application lifecycle. Tokens are sealed when
// storage.encryptionKey is set.
func NewSessionRepository(params Params) (repository.SessionRepository, error) {
	cfg := params.Config.Storage
	logger := params.Logger.With(slog.String("storage", cfg.Driver))

	var key []byte
	if cfg.EncryptionKey != "" {
		var err error
		if key, err = sealed.ParseKey(cfg.EncryptionKey); err != nil {
			return nil, err
		}
	}

	repo, err := openBackend(params, logger)
	if err != nil {
		return nil, err
	}

	if key == nil {
		return repo, nil
	}
	logger.Info("Session tokens sealed at rest")

	return sealed.NewSessionRepository(repo, key)
}

func openBackend(params Params, logger *slog.Logger) (repository.SessionRepository, error) {
	cfg := params.Config.Storage

	switch cfg.Driver {
	case config.StorageDriverBlob:
		bucket, err := blob.OpenBucket(context.Background(), cfg.Blob.URL)
		if err != nil {
			return nil, err
		}
		params.Lc.Append(fx.Hook{
			OnStop: func(context.Context) error {
				return errors.WithStack(bucket.Close())
			},
		})
		logger.Info("Session snapshots stored in bucket", slog.String("url", cfg.Blob.URL))

		return blob.NewSessionRepository(bucket, cfg.Key), nil

	case config.StorageDriverRedis:
		client := redis.NewClient(cfg)
		params.Lc.Append(fx.Hook{
			OnStart: func(startCtx context.Context) error {
				ctx, cancel := context.WithTimeout(startCtx, lifecycle.DefaultTimeout)
				defer cancel()

				if err := client.Ping(ctx).Err(); err != nil {
					logger.Warn("Unable to reach redis", slog.Any("error", err))
				}

				return nil
			},
			OnStop: func(context.Context) error {
				return errors.WithStack(client.Close())
			},
		})
		logger.Info("Session snapshots stored in redis", slog.String("addr", cfg.Redis.Addr))

		return redis.NewSessionRepository(client, cfg.Key, cfg.Redis.TTL), nil

	case config.StorageDriverPostgres:
		db, err := postgres.Open(cfg.Postgres, params.Config.Env.Debug, params.Logger)
		if err != nil {
			return nil, err
		}

		monitorCtx, cancelMonitor := context.WithCancel(context.Background())
		params.Lc.Append(fx.Hook{
			OnStart: func(startCtx context.Context) error {
				ctx, cancel := context.WithTimeout(startCtx, lifecycle.DefaultTimeout)
				defer cancel()

				if err := postgres.Ping(ctx, db); err != nil {
					return err
				}
				if err := postgres.Migrate(ctx, db); err != nil {
					return err
				}

				go postgres.MonitorPool(monitorCtx, logger, db)

				return nil
			},
			OnStop: func(context.Context) error {
				cancelMonitor()

				return postgres.Close(db)
			},
		})
		logger.Info("Session snapshots stored in postgres")

		return postgres.NewSessionRepository(db, cfg.Key), nil

	default:
		return nil, errors.Errorf("unknown storage driver: %s", cfg.Driver)
	}
}

// Module provides the session repository.
//
//nolint:gochecknoglobals
var Module = fx.Options(
	fx.Provide(NewSessionRepository),
)
