package impl

import (
	"context"
	"log/slog"

	"portal/internal/domain/entity"
	domainerrors "portal/internal/domain/errors"
)

// RefreshAccessToken rotates the token pair. Concurrent callers share one
// rotation. Any failure signs the user out.
func (s *sessionStore) RefreshAccessToken(ctx context.Context) bool {
	refreshed, _, _ := s.flights.Do(flightRefresh, func() (any, error) {
		return s.refresh(context.WithoutCancel(ctx)), nil
	})

	return refreshed.(bool)
}

func (s *sessionStore) refresh(ctx context.Context) bool {
	state := s.read()

	// 1. Without a refresh token there is nothing to rotate.
	if state.RefreshToken == "" {
		s.log(ctx).Info("Refresh skipped", slog.Any("error", domainerrors.ErrRefreshTokenMissing))
		s.metrics.ObserveRefresh(false)
		s.Logout(ctx)

		return false
	}

	// 2. Exchange the refresh token.
	payload, err := s.gateway.Refresh(ctx, state.RefreshToken)
	if err == nil && (payload == nil || payload.AccessToken == "") {
		err = domainerrors.ErrSessionExpired
	}
	if err != nil {
		s.log(ctx).Warn("Token refresh failed, signing out", slog.Any("error", err))
		s.metrics.ObserveRefresh(false)
		s.Logout(ctx)

		return false
	}

	// 3. Install the new pair. A user in the response replaces the cached one.
	next, applied := s.transitionIf(ctx, func(cur entity.Session) (entity.Session, bool) {
		if cur.RefreshToken != state.RefreshToken {
			// Signed out or replaced by a login while the rotation was in flight.
			return cur, false
		}

		cur.AccessToken = payload.AccessToken
		if payload.RefreshToken != "" {
			cur.RefreshToken = payload.RefreshToken
		}
		if payload.User != nil {
			cur.User = payload.User.Clone()
			cur.Permissions = permissionsOf(payload.User)
		}
		cur.IsAuthenticated = cur.HasCredentials()
		cur.Error = ""

		return cur, true
	})
	if !applied {
		s.metrics.ObserveRefresh(false)

		return next.IsAuthenticated
	}

	s.metrics.ObserveRefresh(next.IsAuthenticated)
	s.log(ctx).Debug("Access token refreshed", slog.Bool("authenticated", next.IsAuthenticated))

	return next.IsAuthenticated
}
