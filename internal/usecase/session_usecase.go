// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"
	"time"

	"portal/internal/domain/entity"
)

// --- Output DTOs ---

// AuthResult is the outcome of a login or registration attempt. It is
// returned instead of an error so the caller can render it directly.
type AuthResult struct {
	Success bool   `json:"success"`
	Error   string `json:"error,omitempty"`
	Code    string `json:"code,omitempty"`
	Data    any    `json:"data,omitempty"`
}

// ResendResult is the outcome of a verification email resend.
type ResendResult struct {
	Success           bool          `json:"success"`
	Message           string        `json:"message,omitempty"`
	Error             string        `json:"error,omitempty"`
	Code              string        `json:"code,omitempty"`
	CooldownRemaining time.Duration `json:"cooldownRemaining"`
}

// SessionUsecase is the process-wide session store.
// It is the single writer of the session; every other component reads snapshots.
type SessionUsecase interface {
	// Initialize runs the startup session check once and reports whether the session is authenticated.
	// Concurrent callers share one run.
	Initialize(ctx context.Context) bool

	// AwaitInitialized blocks until initialization completed or ctx is done.
	AwaitInitialized(ctx context.Context) error

	// ForceReinitialize discards the initialized flag and runs the startup check again.
	ForceReinitialize(ctx context.Context) bool

	Login(ctx context.Context, credentials entity.Credentials) *AuthResult
	Register(ctx context.Context, registration entity.Registration) *AuthResult

	// Logout notifies the server best-effort and always clears the local session.
	Logout(ctx context.Context)

	// RefreshAccessToken rotates the token pair. A failure signs the user out.
	RefreshAccessToken(ctx context.Context) bool

	// CheckEntityStatus resolves the entity status of the signed-in identity.
	// Concurrent callers share one lookup unless forceRefresh is set.
	CheckEntityStatus(ctx context.Context, forceRefresh bool) (entity.EntityStatus, error)

	ResendVerification(ctx context.Context) *ResendResult
	CloseVerificationModal(ctx context.Context)

	// Snapshot returns a deep copy of the current state.
	Snapshot() entity.Session

	// Subscribe registers fn for entity status changes and returns the unsubscribe function.
	Subscribe(fn func(entity.StatusChange)) (unsubscribe func())

	HasRole(code entity.RoleCode) bool
	HasPermission(permission string) bool
	GetDefaultDashboard() string
	IsEntityActive() bool
	CanAccessFeature(feature string) bool
}
