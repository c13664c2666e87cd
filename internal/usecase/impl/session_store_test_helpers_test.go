package impl

import (
	"context"
	"io"
	"log/slog"
	"sync"
	"testing"
	"time"

	"portal/config"
	"portal/internal/domain/entity"
	"portal/internal/domain/repository"
	"portal/internal/domain/service"
	mockSvc "portal/internal/mocks/service"
)

var testNow = time.Date(2026, 3, 2, 9, 0, 0, 0, time.UTC)

// memoryRepo is an in-memory SessionRepository that records every write.
type memoryRepo struct {
	mu       sync.Mutex
	snapshot *entity.PersistedSession
	loadErr  error
	saves    int
	clears   int
}

func (r *memoryRepo) Load(_ context.Context) (*entity.PersistedSession, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.loadErr != nil {
		return nil, r.loadErr
	}
	if r.snapshot == nil {
		return nil, repository.ErrSessionNotFound
	}
	cloned := *r.snapshot

	return &cloned, nil
}

func (r *memoryRepo) Save(_ context.Context, snapshot *entity.PersistedSession) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	cloned := *snapshot
	r.snapshot = &cloned
	r.saves++

	return nil
}

func (r *memoryRepo) Clear(_ context.Context) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.snapshot = nil
	r.clears++

	return nil
}

func (r *memoryRepo) stored() *entity.PersistedSession {
	r.mu.Lock()
	defer r.mu.Unlock()

	return r.snapshot
}

// expiryInspector reports a fixed expiry for every token in its map.
type expiryInspector map[string]time.Time

func (i expiryInspector) ExpiresAt(token string) (time.Time, bool) {
	expiresAt, ok := i[token]

	return expiresAt, ok
}

// clock is a settable time source.
type clock struct {
	mu  sync.Mutex
	now time.Time
}

func (c *clock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.now
}

func (c *clock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.now = c.now.Add(d)
}

type storeFixture struct {
	store     *sessionStore
	gateway   *mockSvc.MockAuthGateway
	lookup    *mockSvc.MockStatusLookup
	publisher *mockSvc.MockStatusEventPublisher
	repo      *memoryRepo
	clock     *clock
	inspector expiryInspector
}

func newStoreFixture(t *testing.T, mutate ...func(cfg *config.Config)) *storeFixture {
	t.Helper()

	cfg := &config.Config{}
	cfg.ApplyDefaults()
	for _, fn := range mutate {
		fn(cfg)
	}

	f := &storeFixture{
		gateway:   mockSvc.NewMockAuthGateway(t),
		lookup:    mockSvc.NewMockStatusLookup(t),
		publisher: mockSvc.NewMockStatusEventPublisher(t),
		repo:      &memoryRepo{},
		clock:     &clock{now: testNow},
		inspector: expiryInspector{},
	}

	f.store = newSessionStore(SessionStoreParams{
		Gateway:   f.gateway,
		Lookup:    f.lookup,
		Repo:      f.repo,
		Publisher: f.publisher,
		Inspector: f.inspector,
		Config:    cfg,
		Logger:    slog.New(slog.NewTextHandler(io.Discard, nil)),
	}, f.clock.Now)

	return f
}

// seed installs state directly, as if it had been restored and initialized.
func (f *storeFixture) seed(state entity.Session) {
	f.store.mu.Lock()
	defer f.store.mu.Unlock()

	f.store.state = state
	f.store.rehydrated = true
	if state.IsInitialized && !f.store.initClosed {
		close(f.store.initDone)
		f.store.initClosed = true
	}
}

func companyAdmin() *entity.User {
	return &entity.User{
		ID:              "user-1",
		Name:            "Ana Company",
		Username:        "ana",
		Email:           "ana@acme.test",
		IsEmailVerified: true,
		Roles: entity.Roles{{
			Code:  entity.RoleCompanyAdmin,
			Name:  "Company administrator",
			Scope: entity.RoleScope{Type: entity.EntityTypeCompany, EntityID: "company-1"},
		}},
		Permissions: []string{"employees.read", "employees.write"},
	}
}

func systemAdmin() *entity.User {
	return &entity.User{
		ID:       "root-1",
		Name:     "Root",
		Username: "root",
		Email:    "root@portal.test",
		Roles:    entity.Roles{{Code: entity.RoleSystemAdmin, Scope: entity.RoleScope{Type: entity.EntityTypeSystem}}},
	}
}

func signedIn(user *entity.User) entity.Session {
	return entity.Session{
		User:            user,
		AccessToken:     "access-1",
		RefreshToken:    "refresh-1",
		IsAuthenticated: true,
		IsInitialized:   true,
		Permissions:     user.Permissions,
	}
}

func activeCompanyLookup() *service.StatusLookupResult {
	return &service.StatusLookupResult{
		EntityType:      entity.EntityTypeCompany,
		EntityID:        "company-1",
		EntityName:      "Acme",
		EntityStatus:    entity.StatusActive,
		EffectiveStatus: entity.StatusActive,
		RoleCategory:    entity.RoleCategoryCompany,
		RoleCode:        entity.RoleCompanyAdmin,
	}
}
