// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"log/slog"
	"slices"
	"sync"
	"sync/atomic"
	"time"

	"portal/config"
	deliverycontext "portal/internal/delivery/context"
	"portal/internal/domain/entity"
	"portal/internal/domain/repository"
	"portal/internal/domain/service"
	"portal/internal/usecase"

	"github.com/go-playground/validator/v10"
	"go.uber.org/fx"
	"golang.org/x/sync/singleflight"
	"golang.org/x/time/rate"
)

// singleflight keys of the shared in-flight operations.
const (
	flightInitialize = "initialize"
	flightRefresh    = "refresh"
	flightLogout     = "logout"
	flightStatus     = "entity-status"
	flightResend     = "resend-verification"
)

// sessionStore implements the SessionUsecase interface.
//
// All state lives in one entity.Session guarded by mu. Transitions replace the
// value under the lock and persist the durable subset afterwards; network calls
// never run while mu is held.
type sessionStore struct {
	gateway   service.AuthGateway
	lookup    service.StatusLookup
	repo      repository.SessionRepository
	publisher service.StatusEventPublisher
	inspector service.TokenInspector
	metrics   service.SessionMetrics
	validate  *validator.Validate
	logger    *slog.Logger
	now       func() time.Time

	initPolicy     string
	logoutTimeout  time.Duration
	resendCooldown time.Duration
	loginRoute     string

	mu         sync.RWMutex
	state      entity.Session
	seq        uint64
	rehydrated bool
	initDone   chan struct{}
	initClosed bool
	limiter    *rate.Limiter
	observers  map[int]func(entity.StatusChange)
	nextObsID  int

	// statusGen fences status lookups; only the newest one may write.
	statusGen atomic.Uint64
	// loginGen fences login and register responses the same way.
	loginGen atomic.Uint64

	saveMu   sync.Mutex
	savedSeq uint64

	flights singleflight.Group
}

// SessionStoreParams holds dependencies for the session store, injected by Fx.
type SessionStoreParams struct {
	fx.In

	Gateway   service.AuthGateway
	Lookup    service.StatusLookup
	Repo      repository.SessionRepository
	Publisher service.StatusEventPublisher
	Inspector service.TokenInspector
	Metrics   service.SessionMetrics `optional:"true"`
	Config    *config.Config
	Logger    *slog.Logger
}

// NewSessionStore is the constructor for sessionStore.
func NewSessionStore(params SessionStoreParams) usecase.SessionUsecase {
	return newSessionStore(params, time.Now)
}

func newSessionStore(params SessionStoreParams, now func() time.Time) *sessionStore {
	cfg := params.Config
	if cfg == nil {
		cfg = &config.Config{}
	}
	cfg.ApplyDefaults()

	metrics := params.Metrics
	if metrics == nil {
		metrics = nopMetrics{}
	}

	return &sessionStore{
		gateway:        params.Gateway,
		lookup:         params.Lookup,
		repo:           params.Repo,
		publisher:      params.Publisher,
		inspector:      params.Inspector,
		metrics:        metrics,
		validate:       validator.New(validator.WithRequiredStructEnabled()),
		logger:         params.Logger,
		now:            now,
		initPolicy:     cfg.Session.InitPolicy,
		logoutTimeout:  cfg.Session.LogoutTimeout,
		resendCooldown: cfg.Verification.ResendCooldown,
		loginRoute:     cfg.Guard.LoginRoute,
		initDone:       make(chan struct{}),
		limiter:        rate.NewLimiter(rate.Every(cfg.Verification.ResendCooldown), 1),
		observers:      make(map[int]func(entity.StatusChange)),
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the store's logger.
func (s *sessionStore) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, s.logger)
}

// transition replaces the state with fn(current) and persists the result.
func (s *sessionStore) transition(ctx context.Context, fn func(cur entity.Session) entity.Session) entity.Session {
	next, _ := s.transitionIf(ctx, func(cur entity.Session) (entity.Session, bool) {
		return fn(cur), true
	})

	return next
}

// transitionIf is transition with an abort: when fn returns false the state is left untouched.
func (s *sessionStore) transitionIf(ctx context.Context, fn func(cur entity.Session) (entity.Session, bool)) (entity.Session, bool) {
	s.mu.Lock()
	next, apply := fn(s.state.Clone())
	if !apply {
		current := s.state.Clone()
		s.mu.Unlock()

		return current, false
	}
	s.state = next
	s.seq++
	seq := s.seq
	snapshot := next.Persisted()
	result := next.Clone()
	s.mu.Unlock()

	s.persist(ctx, seq, &snapshot)

	return result, true
}

// persist writes snapshot unless a newer one has already been written.
func (s *sessionStore) persist(ctx context.Context, seq uint64, snapshot *entity.PersistedSession) {
	s.saveMu.Lock()
	defer s.saveMu.Unlock()

	if seq <= s.savedSeq {
		return
	}
	s.savedSeq = seq

	ctx = context.WithoutCancel(ctx)

	var err error
	if snapshot.User == nil && snapshot.AccessToken == "" && snapshot.RefreshToken == "" {
		err = s.repo.Clear(ctx)
	} else {
		err = s.repo.Save(ctx, snapshot)
	}
	if err != nil {
		s.log(ctx).Warn("Failed to persist session", slog.Uint64("seq", seq), slog.Any("error", err))
	}
}

func (s *sessionStore) read() entity.Session {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.state.Clone()
}

// Snapshot returns a deep copy of the current state.
func (s *sessionStore) Snapshot() entity.Session {
	return s.read()
}

// Subscribe registers fn for entity status changes.
func (s *sessionStore) Subscribe(fn func(entity.StatusChange)) func() {
	s.mu.Lock()
	id := s.nextObsID
	s.nextObsID++
	s.observers[id] = fn
	s.mu.Unlock()

	return func() {
		s.mu.Lock()
		delete(s.observers, id)
		s.mu.Unlock()
	}
}

// notify delivers change to observers and the external publisher, outside the lock.
func (s *sessionStore) notify(ctx context.Context, change entity.StatusChange) {
	s.fanOut(change)

	if s.publisher == nil {
		return
	}
	if err := s.publisher.PublishStatusChange(context.WithoutCancel(ctx), &change); err != nil {
		s.log(ctx).Warn("Failed to publish entity status change",
			slog.String("userID", change.UserID),
			slog.String("newStatus", string(change.NewStatus)),
			slog.Any("error", err))
	}
}

func (s *sessionStore) fanOut(change entity.StatusChange) {
	s.mu.RLock()
	observers := make([]func(entity.StatusChange), 0, len(s.observers))
	for _, fn := range s.observers {
		observers = append(observers, fn)
	}
	s.mu.RUnlock()

	for _, fn := range observers {
		fn(change)
	}
}

// HasRole reports whether the signed-in user holds code.
func (s *sessionStore) HasRole(code entity.RoleCode) bool {
	state := s.read()

	return state.IsAuthenticated && state.Roles().Contains(code)
}

// HasPermission reports whether the signed-in user holds permission.
// System administrators and holders of the wildcard hold every permission.
func (s *sessionStore) HasPermission(permission string) bool {
	state := s.read()
	if !state.IsAuthenticated {
		return false
	}
	if state.Roles().Contains(entity.RoleSystemAdmin) {
		return true
	}

	return slices.Contains(state.Permissions, entity.PermissionAll) || slices.Contains(state.Permissions, permission)
}

// GetDefaultDashboard returns the landing route for the most privileged role held.
func (s *sessionStore) GetDefaultDashboard() string {
	state := s.read()
	if !state.IsAuthenticated {
		return s.loginRoute
	}

	return state.Roles().PrimaryCategory().DefaultDashboard()
}

// IsEntityActive reports whether the entity status permits use of the application.
// An unresolved status counts as inactive except for system identities.
func (s *sessionStore) IsEntityActive() bool {
	state := s.read()
	if !state.IsAuthenticated {
		return false
	}
	if !state.EntityStatus.Checked() {
		return state.Roles().PrimaryCategory().IsSystem()
	}

	return state.EntityStatus.CanAccess && state.EntityStatus.IsActive()
}

// CanAccessFeature reports whether feature is usable under the current entity status.
func (s *sessionStore) CanAccessFeature(feature string) bool {
	state := s.read()
	if !state.IsAuthenticated {
		return false
	}

	return state.EntityStatus.CanAccessFeature(feature)
}

func permissionsOf(user *entity.User) []string {
	if user == nil {
		return nil
	}

	return slices.Clone(user.Permissions)
}

type nopMetrics struct{}

func (nopMetrics) ObserveLogin(string) {}
func (nopMetrics) ObserveRefresh(bool) {}
func (nopMetrics) ObserveStatusCheck(string) {}
func (nopMetrics) ObserveGuardDecision(string, string) {}
