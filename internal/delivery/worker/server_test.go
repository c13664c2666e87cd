package worker

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"portal/config"
	"portal/internal/delivery/worker/handler"
	"portal/internal/domain/entity"
	"portal/internal/infra/metrics"
	"portal/internal/infra/pubsub"
	mocks "portal/internal/mocks/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestWorker_ReceivesLocalPushes(t *testing.T) {
	cfg := &config.Config{}
	cfg.ApplyDefaults()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	recorder := metrics.NewRecorder()

	session := mocks.NewMockSessionUsecase(t)
	session.EXPECT().Snapshot().Return(entity.Session{
		IsInitialized:   true,
		IsAuthenticated: true,
		User:            &entity.User{ID: "user-1"},
		EntityStatus:    entity.EntityStatus{EntityType: entity.EntityTypeWorker, EntityID: "worker-7"},
	}).Once()
	session.EXPECT().CheckEntityStatus(mock.Anything, true).Return(entity.EntityStatus{}, nil).Once()

	e := NewEcho(ServerParams{
		Cfg:      cfg,
		Logger:   logger,
		Recorder: recorder,
		PushHandler: handler.NewPushHandler(handler.PushHandlerParams{
			Config:  cfg,
			Logger:  logger,
			Session: session,
		}),
	})
	srv := httptest.NewServer(e)
	defer srv.Close()

	publisher := pubsub.NewLocalHTTPPublisher(srv.URL+cfg.Worker.Path, logger)
	err := publisher.PublishStatusChange(context.Background(), &entity.StatusChange{
		ID:              "01JWORKER",
		EntityType:      entity.EntityTypeWorker,
		EntityID:        "worker-7",
		OldStatus:       entity.StatusActive,
		NewStatus:       entity.StatusInactive,
		EffectiveStatus: entity.StatusInactive,
		OccurredAt:      time.Now(),
	})

	require.NoError(t, err)
}

func TestWorker_Health(t *testing.T) {
	cfg := &config.Config{}
	cfg.ApplyDefaults()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	e := NewEcho(ServerParams{
		Cfg:         cfg,
		Logger:      logger,
		PushHandler: handler.NewPushHandler(handler.PushHandlerParams{Config: cfg, Logger: logger}),
	})

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestWorker_DisabledServeReturns(t *testing.T) {
	cfg := &config.Config{}
	cfg.ApplyDefaults()

	srv := &workerServer{cfg: cfg, logger: slog.New(slog.NewTextHandler(io.Discard, nil))}

	assert.NoError(t, srv.Serve(context.Background()))
}
