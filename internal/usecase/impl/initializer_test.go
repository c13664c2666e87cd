package impl

import (
	"context"
	"net/http"
	"sync"
	"testing"
	"time"

	"portal/config"
	"portal/internal/domain/entity"
	domainerrors "portal/internal/domain/errors"
	"portal/internal/domain/service"
	"portal/internal/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func persistedFor(user *entity.User) *entity.PersistedSession {
	state := signedIn(user)
	snapshot := state.Persisted()

	return &snapshot
}

func TestInitialize_NoCachedSession(t *testing.T) {
	f := newStoreFixture(t)

	authenticated := f.store.Initialize(context.Background())

	assert.False(t, authenticated)
	state := f.store.Snapshot()
	assert.True(t, state.IsInitialized)
	assert.False(t, state.IsAuthenticated)
	assert.Nil(t, state.User)
}

func TestInitialize_TrustsCachedSessionWhileOffline(t *testing.T) {
	f := newStoreFixture(t)
	f.repo.snapshot = persistedFor(companyAdmin())
	f.inspector["access-1"] = testNow.Add(10 * time.Minute)

	// No gateway expectation: any network call would fail the test.
	authenticated := f.store.Initialize(context.Background())

	assert.True(t, authenticated)
	state := f.store.Snapshot()
	assert.True(t, state.IsInitialized)
	assert.True(t, state.IsAuthenticated)
	assert.Equal(t, "user-1", state.User.ID)
}

func TestInitialize_ExpiredTokenIsVerified(t *testing.T) {
	f := newStoreFixture(t)
	f.repo.snapshot = persistedFor(companyAdmin())
	f.inspector["access-1"] = testNow.Add(-time.Minute)

	fresh := companyAdmin()
	fresh.Name = "Ana Renamed"
	f.gateway.EXPECT().Verify(mock.Anything, "access-1").Return(fresh, nil).Once()

	assert.True(t, f.store.Initialize(context.Background()))
	assert.Equal(t, "Ana Renamed", f.store.Snapshot().User.Name)
}

func TestInitialize_AlwaysVerifyPolicy(t *testing.T) {
	f := newStoreFixture(t, func(cfg *config.Config) {
		cfg.Session.InitPolicy = config.InitPolicyAlwaysVerify
	})
	f.repo.snapshot = persistedFor(companyAdmin())
	f.inspector["access-1"] = testNow.Add(time.Hour)

	f.gateway.EXPECT().Verify(mock.Anything, "access-1").Return(companyAdmin(), nil).Once()

	assert.True(t, f.store.Initialize(context.Background()))
}

func TestInitialize_RejectedTokenFallsBackToRefresh(t *testing.T) {
	f := newStoreFixture(t, func(cfg *config.Config) {
		cfg.Session.InitPolicy = config.InitPolicyAlwaysVerify
	})
	f.repo.snapshot = persistedFor(companyAdmin())

	f.gateway.EXPECT().Verify(mock.Anything, "access-1").
		Return(nil, &domainerrors.UpstreamError{Status: http.StatusUnauthorized, Code: domainerrors.CodeUnauthorized}).Once()
	f.gateway.EXPECT().Refresh(mock.Anything, "refresh-1").
		Return(&service.AuthPayload{AccessToken: "access-2", RefreshToken: "refresh-2"}, nil).Once()

	assert.True(t, f.store.Initialize(context.Background()))

	state := f.store.Snapshot()
	assert.Equal(t, "access-2", state.AccessToken)
	assert.Equal(t, "refresh-2", state.RefreshToken)
	assert.Equal(t, "access-2", f.repo.stored().AccessToken)
}

func TestInitialize_RefreshTokenOnly(t *testing.T) {
	f := newStoreFixture(t)
	f.repo.snapshot = &entity.PersistedSession{
		Version:      entity.PersistedSessionVersion,
		User:         companyAdmin(),
		RefreshToken: "refresh-1",
	}

	f.gateway.EXPECT().Refresh(mock.Anything, "refresh-1").
		Return(&service.AuthPayload{AccessToken: "access-2"}, nil).Once()

	assert.True(t, f.store.Initialize(context.Background()))
	assert.Equal(t, "refresh-1", f.store.Snapshot().RefreshToken)
}

func TestInitialize_NetworkFailureKeepsCachedSession(t *testing.T) {
	f := newStoreFixture(t, func(cfg *config.Config) {
		cfg.Session.InitPolicy = config.InitPolicyAlwaysVerify
	})
	f.repo.snapshot = persistedFor(companyAdmin())

	f.gateway.EXPECT().Verify(mock.Anything, "access-1").
		Return(nil, errors.Wrap(domainerrors.ErrNetworkFailure, "dial tcp: connection refused")).Once()

	assert.True(t, f.store.Initialize(context.Background()))
	assert.True(t, f.store.Snapshot().IsAuthenticated)
}

func TestInitialize_OtherFailureSignsOut(t *testing.T) {
	f := newStoreFixture(t, func(cfg *config.Config) {
		cfg.Session.InitPolicy = config.InitPolicyAlwaysVerify
	})
	f.repo.snapshot = persistedFor(companyAdmin())

	f.gateway.EXPECT().Verify(mock.Anything, "access-1").
		Return(nil, &domainerrors.UpstreamError{Status: http.StatusInternalServerError, Msg: "boom"}).Once()

	assert.False(t, f.store.Initialize(context.Background()))

	state := f.store.Snapshot()
	assert.True(t, state.IsInitialized)
	assert.Nil(t, state.User)
	assert.Empty(t, state.AccessToken)
	assert.Nil(t, f.repo.stored())
}

func TestInitialize_DiscardsSnapshotOfAnotherVersion(t *testing.T) {
	f := newStoreFixture(t)
	snapshot := persistedFor(companyAdmin())
	snapshot.Version = entity.PersistedSessionVersion + 1
	f.repo.snapshot = snapshot

	assert.False(t, f.store.Initialize(context.Background()))
}

func TestInitialize_RunsOnceForConcurrentCallers(t *testing.T) {
	f := newStoreFixture(t, func(cfg *config.Config) {
		cfg.Session.InitPolicy = config.InitPolicyAlwaysVerify
	})
	f.repo.snapshot = persistedFor(companyAdmin())

	release := make(chan struct{})
	f.gateway.EXPECT().Verify(mock.Anything, "access-1").
		RunAndReturn(func(context.Context, string) (*entity.User, error) {
			<-release

			return companyAdmin(), nil
		}).Once()

	var wg sync.WaitGroup
	results := make([]bool, 5)
	for i := range results {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			results[i] = f.store.Initialize(context.Background())
		}(i)
	}

	time.Sleep(50 * time.Millisecond)
	close(release)
	wg.Wait()

	for _, authenticated := range results {
		assert.True(t, authenticated)
	}

	// A completed run is never repeated.
	assert.True(t, f.store.Initialize(context.Background()))
}

func TestAwaitInitialized(t *testing.T) {
	f := newStoreFixture(t)

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()
	require.Error(t, f.store.AwaitInitialized(ctx))

	done := make(chan error, 1)
	go func() {
		done <- f.store.AwaitInitialized(context.Background())
	}()

	f.store.Initialize(context.Background())

	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(time.Second):
		t.Fatal("AwaitInitialized did not return after initialization")
	}
}

func TestForceReinitialize_VerifiesAgain(t *testing.T) {
	f := newStoreFixture(t, func(cfg *config.Config) {
		cfg.Session.InitPolicy = config.InitPolicyAlwaysVerify
	})
	f.seed(signedIn(companyAdmin()))

	f.gateway.EXPECT().Verify(mock.Anything, "access-1").Return(companyAdmin(), nil).Once()

	assert.True(t, f.store.ForceReinitialize(context.Background()))
	assert.True(t, f.store.Snapshot().IsInitialized)
	require.NoError(t, f.store.AwaitInitialized(context.Background()))
}
