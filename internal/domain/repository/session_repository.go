// Package repository defines the persistence contracts of the domain.
package repository

import (
	"context"

	"portal/internal/domain/entity"
	"portal/internal/errors"
)

// ErrSessionNotFound is returned by Load when nothing has been persisted yet.
var ErrSessionNotFound = errors.New("session snapshot not found")

// SessionRepository persists the durable subset of the session.
// Implementations must be safe for concurrent use.
type SessionRepository interface {
	// Load returns the last saved snapshot or ErrSessionNotFound.
	Load(ctx context.Context) (*entity.PersistedSession, error)

	// Save replaces the stored snapshot.
	Save(ctx context.Context, snapshot *entity.PersistedSession) error

	// Clear removes the stored snapshot. Clearing an empty store is not an error.
	Clear(ctx context.Context) error
}
