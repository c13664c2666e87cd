package impl

import (
	"context"
	"log/slog"

	"portal/config"
	"portal/internal/domain/entity"
	domainerrors "portal/internal/domain/errors"
	"portal/internal/domain/repository"
	"portal/internal/errors"
)

// Initialize runs the startup session check. Concurrent callers share one run
// and a completed run is never repeated.
func (s *sessionStore) Initialize(ctx context.Context) bool {
	if state := s.read(); state.IsInitialized {
		return state.IsAuthenticated
	}

	authenticated, _, _ := s.flights.Do(flightInitialize, func() (any, error) {
		return s.initialize(context.WithoutCancel(ctx)), nil
	})

	return authenticated.(bool)
}

// AwaitInitialized blocks until initialization completed or ctx is done.
func (s *sessionStore) AwaitInitialized(ctx context.Context) error {
	s.mu.RLock()
	initialized := s.state.IsInitialized
	done := s.initDone
	s.mu.RUnlock()

	if initialized {
		return nil
	}

	select {
	case <-done:
		return nil
	case <-ctx.Done():
		return errors.Wrap(ctx.Err(), "session initialization still in progress")
	}
}

// ForceReinitialize discards the initialized flag and runs the startup check again.
func (s *sessionStore) ForceReinitialize(ctx context.Context) bool {
	s.mu.Lock()
	if s.state.IsInitialized {
		s.state.IsInitialized = false
		s.initDone = make(chan struct{})
		s.initClosed = false
	}
	s.mu.Unlock()

	return s.Initialize(ctx)
}

func (s *sessionStore) initialize(ctx context.Context) bool {
	// 1. A run that lost the race to a finished one has nothing left to do.
	state := s.rehydrate(ctx)
	if state.IsInitialized {
		return state.IsAuthenticated
	}

	// 2. Nothing cached: settle on signed out without any network I/O.
	if state.AccessToken == "" && state.RefreshToken == "" {
		s.log(ctx).Debug("No cached session, starting signed out")

		return s.completeInitialize(ctx, false, true)
	}

	// 3. Optimistic trust: a cached user with a locally unexpired token is accepted as is.
	if s.initPolicy == config.InitPolicyTrustCache && state.HasCredentials() && !s.tokenExpired(state.AccessToken) {
		s.log(ctx).Debug("Trusting cached session", slog.String("userID", state.User.ID))

		return s.completeInitialize(ctx, true, false)
	}

	// 4. Only a refresh token survives: go straight to rotation.
	if state.AccessToken == "" {
		return s.completeWithRefresh(ctx)
	}

	// 5. Ask the server who the token belongs to.
	user, err := s.gateway.Verify(ctx, state.AccessToken)
	switch {
	case err == nil:
		s.transition(ctx, func(cur entity.Session) entity.Session {
			cur.User = user.Clone()
			cur.Permissions = permissionsOf(user)
			cur.IsAuthenticated = true
			cur.Error = ""

			return cur
		})

		return s.completeInitialize(ctx, true, false)
	case domainerrors.IsUnauthorized(err):
		s.log(ctx).Info("Cached access token rejected, refreshing", slog.Any("error", err))

		return s.completeWithRefresh(ctx)
	case domainerrors.IsNetwork(err) && state.HasCredentials():
		s.log(ctx).Warn("Session verification unreachable, keeping cached session", slog.Any("error", err))

		return s.completeInitialize(ctx, true, false)
	default:
		s.log(ctx).Warn("Session verification failed, signing out", slog.Any("error", err))

		return s.completeInitialize(ctx, false, true)
	}
}

// rehydrate loads the persisted snapshot once per process and returns the resulting state.
func (s *sessionStore) rehydrate(ctx context.Context) *entity.Session {
	s.mu.RLock()
	done := s.rehydrated
	s.mu.RUnlock()
	if done {
		state := s.read()

		return &state
	}

	persisted, err := s.repo.Load(ctx)
	switch {
	case errors.Is(err, repository.ErrSessionNotFound):
		persisted = nil
	case err != nil:
		s.log(ctx).Warn("Failed to load persisted session, starting empty", slog.Any("error", err))
		persisted = nil
	case persisted != nil && persisted.Version != entity.PersistedSessionVersion:
		s.log(ctx).Info("Discarding persisted session of another version", slog.Int("version", persisted.Version))
		persisted = nil
	}

	s.mu.Lock()
	if !s.rehydrated {
		s.rehydrated = true
		if persisted != nil && !s.state.IsInitialized {
			s.state = persisted.Restore()
		}
	}
	state := s.state.Clone()
	s.mu.Unlock()

	return &state
}

func (s *sessionStore) tokenExpired(token string) bool {
	if s.inspector == nil {
		return false
	}
	expiresAt, ok := s.inspector.ExpiresAt(token)
	if !ok {
		return false
	}

	return !s.now().Before(expiresAt)
}

func (s *sessionStore) completeWithRefresh(ctx context.Context) bool {
	authenticated := s.RefreshAccessToken(ctx)

	return s.completeInitialize(ctx, authenticated, false)
}

// completeInitialize marks the session initialized and wakes AwaitInitialized callers.
func (s *sessionStore) completeInitialize(ctx context.Context, authenticated, clear bool) bool {
	final := s.transition(ctx, func(cur entity.Session) entity.Session {
		if clear {
			cur = cur.Cleared()
		}
		cur.IsAuthenticated = authenticated && cur.HasCredentials()
		cur.IsInitialized = true

		return cur
	})

	s.mu.Lock()
	if !s.initClosed {
		close(s.initDone)
		s.initClosed = true
	}
	s.mu.Unlock()

	s.log(ctx).Info("Session initialized", slog.Bool("authenticated", final.IsAuthenticated))

	return final.IsAuthenticated
}
