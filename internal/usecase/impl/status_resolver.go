package impl

import (
	"context"
	"log/slog"
	"slices"
	"time"

	"portal/internal/domain/entity"
	domainerrors "portal/internal/domain/errors"
	"portal/internal/domain/service"
	"portal/internal/errors"

	"github.com/oklog/ulid/v2"
)

// Status check outcomes recorded by the metrics recorder.
const (
	statusOutcomeResolved   = "resolved"
	statusOutcomeFailClosed = "fail_closed"
	statusOutcomeStale      = "stale"
)

// Default explanations when the server sends none.
const (
	messageEntityInactive   = "Your organization's account is inactive. Please contact your administrator."
	messageEntityTerminated = "Your organization's account has been terminated. Please contact your administrator."
	messageStatusFailClosed = "Unable to verify your organization's status. Access is restricted until it can be confirmed."
)

// CheckEntityStatus resolves the entity status of the signed-in identity.
// Concurrent callers share one lookup; forceRefresh starts a new one, and only
// the newest lookup may write its result.
func (s *sessionStore) CheckEntityStatus(ctx context.Context, forceRefresh bool) (entity.EntityStatus, error) {
	state := s.read()
	if !state.IsAuthenticated || state.User == nil || state.AccessToken == "" {
		return state.EntityStatus, nil
	}

	if forceRefresh {
		s.flights.Forget(flightStatus)
	}

	result, err, _ := s.flights.Do(flightStatus, func() (any, error) {
		return s.checkEntityStatus(context.WithoutCancel(ctx))
	})
	status, _ := result.(entity.EntityStatus)

	return status.Clone(), err
}

func (s *sessionStore) checkEntityStatus(ctx context.Context) (entity.EntityStatus, error) {
	gen := s.statusGen.Add(1)

	// 1. Mark loading.
	state := s.transition(ctx, func(cur entity.Session) entity.Session {
		cur.EntityStatus.IsStatusLoading = true

		return cur
	})
	if !state.IsAuthenticated || state.User == nil {
		return state.EntityStatus, nil
	}
	userID := state.User.ID
	previous := state.EntityStatus

	// 2. Look up outside the lock.
	lookup, err := s.lookup.LookupStatus(ctx, userID, state.AccessToken)

	// 3. A rejected token gets one refresh and one retry. A failed refresh
	// signs the user out, which supersedes this lookup below.
	if domainerrors.IsUnauthorized(err) && s.RefreshAccessToken(ctx) {
		if refreshed := s.read(); refreshed.User != nil && refreshed.User.ID == userID {
			lookup, err = s.lookup.LookupStatus(ctx, userID, refreshed.AccessToken)
		}
	}
	now := s.now()

	// 4. Fail closed, or resolve.
	var resolved entity.EntityStatus
	if err != nil {
		resolved = entity.FailClosedStatus(previous, now, messageStatusFailClosed)
	} else {
		resolved = resolveEntityStatus(lookup, now)
	}

	// 5. Write only if no newer lookup or sign-out happened meanwhile.
	final, applied := s.transitionIf(ctx, func(cur entity.Session) (entity.Session, bool) {
		if s.statusGen.Load() != gen || cur.User == nil || cur.User.ID != userID {
			return cur, false
		}
		cur.EntityStatus = resolved

		return cur, true
	})
	if !applied {
		s.metrics.ObserveStatusCheck(statusOutcomeStale)
		s.log(ctx).Debug("Discarding superseded entity status", slog.String("userID", userID))

		return final.EntityStatus, nil
	}

	if err != nil {
		s.metrics.ObserveStatusCheck(statusOutcomeFailClosed)
		s.log(ctx).Warn("Entity status lookup failed, restricting access",
			slog.String("userID", userID), slog.Any("error", err))

		return final.EntityStatus, errors.Wrap(domainerrors.ErrEntityStatusUnavailable, err.Error())
	}

	s.metrics.ObserveStatusCheck(statusOutcomeResolved)
	s.log(ctx).Debug("Entity status resolved",
		slog.String("userID", userID),
		slog.String("entityStatus", string(resolved.EntityStatus)),
		slog.String("effectiveStatus", string(resolved.EffectiveStatus)))

	// 6. Announce a change of the direct status. The first resolution is not a change.
	if previous.Checked() && previous.EntityStatus != "" && previous.EntityStatus != resolved.EntityStatus {
		s.notify(ctx, entity.StatusChange{
			ID:              ulid.Make().String(),
			UserID:          userID,
			EntityType:      resolved.EntityType,
			EntityID:        resolved.EntityID,
			OldStatus:       previous.EntityStatus,
			NewStatus:       resolved.EntityStatus,
			EffectiveStatus: resolved.EffectiveStatus,
			OccurredAt:      now,
		})
	}

	return final.EntityStatus, nil
}

// resolveEntityStatus turns a lookup answer into the stored status.
// The effective status is never more permissive than the direct one, except
// for system identities which are always active.
func resolveEntityStatus(lookup *service.StatusLookupResult, now time.Time) entity.EntityStatus {
	category := lookup.RoleCategory
	if category == entity.RoleCategoryUnknown {
		category = lookup.RoleCode.Category()
	}

	direct := lookup.EntityStatus.Normalize()
	effective := direct
	if lookup.EffectiveStatus != "" {
		effective = entity.Worst(direct, lookup.EffectiveStatus)
	}
	if category.IsSystem() {
		effective = entity.StatusActive
	}

	canAccess := effective == entity.StatusActive
	restricted := slices.Clone(lookup.RestrictedFeatures)
	if !canAccess {
		restricted = entity.AllFeatures()
	}

	message := lookup.Message
	if message == "" {
		switch effective {
		case entity.StatusInactive:
			message = messageEntityInactive
		case entity.StatusTerminated:
			message = messageEntityTerminated
		}
	}

	return entity.EntityStatus{
		EntityType:         lookup.EntityType,
		EntityStatus:       direct,
		EffectiveStatus:    effective,
		EntityID:           lookup.EntityID,
		EntityName:         lookup.EntityName,
		RoleCategory:       category,
		RoleCode:           lookup.RoleCode,
		RestrictedFeatures: restricted,
		CanAccess:          canAccess,
		StatusMessage:      message,
		AdminContact:       lookup.AdminContact,
		LastStatusCheck:    now,
	}
}
