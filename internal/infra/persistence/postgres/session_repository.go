// Package postgres stores the session snapshot in PostgreSQL through GORM.
package postgres

import (
	"context"
	"encoding/json"

	"portal/internal/domain/entity"
	"portal/internal/domain/repository"
	"portal/internal/errors"
	"portal/internal/infra/persistence/model"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type sessionRepository struct {
	db  *gorm.DB
	key string
}

// NewSessionRepository stores the snapshot in the row identified by key.
func NewSessionRepository(db *gorm.DB, key string) repository.SessionRepository {
	return &sessionRepository{
		db:  db,
		key: key,
	}
}

func (repo *sessionRepository) Load(ctx context.Context) (*entity.PersistedSession, error) {
	var row model.SessionSnapshotModel
	err := repo.db.WithContext(ctx).
		Where("session_key = ?", repo.key).
		Take(&row).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrSessionNotFound
		}

		return nil, errors.Wrap(err, "failed to load session snapshot")
	}

	var snapshot entity.PersistedSession
	if err := json.Unmarshal(row.Payload, &snapshot); err != nil {
		return nil, errors.Wrap(err, "failed to decode session snapshot")
	}

	return &snapshot, nil
}

func (repo *sessionRepository) Save(ctx context.Context, snapshot *entity.PersistedSession) error {
	payload, err := json.Marshal(snapshot)
	if err != nil {
		return errors.WithStack(err)
	}

	row := &model.SessionSnapshotModel{
		SessionKey: repo.key,
		Payload:    payload,
	}

	err = repo.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "session_key"}},
			DoUpdates: clause.AssignmentColumns([]string{"payload", "updated_at"}),
		}).
		Create(row).Error
	if err != nil {
		return errors.Wrap(err, "failed to save session snapshot")
	}

	return nil
}

func (repo *sessionRepository) Clear(ctx context.Context) error {
	err := repo.db.WithContext(ctx).
		Where("session_key = ?", repo.key).
		Delete(&model.SessionSnapshotModel{}).Error
	if err != nil {
		return errors.Wrap(err, "failed to clear session snapshot")
	}

	return nil
}

// Migrate creates the snapshot table when missing.
func Migrate(ctx context.Context, db *gorm.DB) error {
	if err := db.WithContext(ctx).AutoMigrate(&model.SessionSnapshotModel{}); err != nil {
		return errors.Wrap(err, "failed to migrate session_snapshots")
	}

	return nil
}
