// Package redis stores the session snapshot as a JSON string in Redis.
package redis

import (
	"context"
	"encoding/json"
	"time"

	"portal/config"
	"portal/internal/domain/entity"
	"portal/internal/domain/repository"
	"portal/internal/errors"

	"github.com/redis/go-redis/v9"
)

type sessionRepository struct {
	client redis.UniversalClient
	key    string
	ttl    time.Duration
}

// NewClient builds the go-redis client for the storage section.
func NewClient(cfg *config.StorageConfig) *redis.Client {
	return redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
}

// NewSessionRepository stores the snapshot under key. A zero ttl keeps it forever.
func NewSessionRepository(client redis.UniversalClient, key string, ttl time.Duration) repository.SessionRepository {
	return &sessionRepository{
		client: client,
		key:    key,
		ttl:    ttl,
	}
}

func (repo *sessionRepository) Load(ctx context.Context) (*entity.PersistedSession, error) {
	data, err := repo.client.Get(ctx, repo.key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, repository.ErrSessionNotFound
		}

		return nil, errors.Wrapf(err, "redis get %s", repo.key)
	}

	var snapshot entity.PersistedSession
	if err := json.Unmarshal(data, &snapshot); err != nil {
		return nil, errors.Wrapf(err, "decode %s", repo.key)
	}

	return &snapshot, nil
}

func (repo *sessionRepository) Save(ctx context.Context, snapshot *entity.PersistedSession) error {
	data, err := json.Marshal(snapshot)
	if err != nil {
		return errors.WithStack(err)
	}

	if err := repo.client.Set(ctx, repo.key, data, repo.ttl).Err(); err != nil {
		return errors.Wrapf(err, "redis set %s", repo.key)
	}

	return nil
}

func (repo *sessionRepository) Clear(ctx context.Context) error {
	if err := repo.client.Del(ctx, repo.key).Err(); err != nil {
		return errors.Wrapf(err, "redis del %s", repo.key)
	}

	return nil
}
