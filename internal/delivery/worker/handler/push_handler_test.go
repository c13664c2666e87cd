package handler

import (
	"encoding/base64"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"portal/config"
	"portal/internal/domain/entity"
	domainerrors "portal/internal/domain/errors"
	"portal/internal/errors"
	mocks "portal/internal/mocks/usecase"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var changedAt = time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)

func newTestHandler(t *testing.T) (*PushHandler, *mocks.MockSessionUsecase) {
	t.Helper()

	cfg := &config.Config{}
	cfg.ApplyDefaults()
	session := mocks.NewMockSessionUsecase(t)

	h := NewPushHandler(PushHandlerParams{
		Config:  cfg,
		Logger:  slog.New(slog.NewTextHandler(io.Discard, nil)),
		Session: session,
	})

	return h, session
}

func push(t *testing.T, h *PushHandler, body string) *httptest.ResponseRecorder {
	t.Helper()

	e := echo.New()
	e.POST("/push", h.HandlePush)

	req := httptest.NewRequest(http.MethodPost, "/push", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	return rec
}

func pushBody(t *testing.T, change entity.StatusChange) string {
	t.Helper()

	data, err := json.Marshal(change)
	require.NoError(t, err)

	var msg PubSubMessage
	msg.Message.Data = base64.StdEncoding.EncodeToString(data)
	msg.Message.MessageID = change.ID
	msg.Message.Attributes = map[string]string{"request_id": "req-42"}
	msg.Subscription = "projects/local/subscriptions/entity-status-sub"

	body, err := json.Marshal(msg)
	require.NoError(t, err)

	return string(body)
}

func companyTerminated() entity.StatusChange {
	return entity.StatusChange{
		ID:              "01JCHANGE",
		EntityType:      entity.EntityTypeCompany,
		EntityID:        "company-1",
		OldStatus:       entity.StatusActive,
		NewStatus:       entity.StatusTerminated,
		EffectiveStatus: entity.StatusTerminated,
		OccurredAt:      changedAt,
	}
}

func signedInCompanyAdmin() entity.Session {
	return entity.Session{
		IsInitialized:   true,
		IsAuthenticated: true,
		User:            &entity.User{ID: "user-1"},
		EntityStatus: entity.EntityStatus{
			EntityType:      entity.EntityTypeCompany,
			EntityID:        "company-1",
			EntityStatus:    entity.StatusActive,
			EffectiveStatus: entity.StatusActive,
			CanAccess:       true,
			LastStatusCheck: changedAt.Add(-time.Hour),
		},
	}
}

func TestHandlePush_RefreshesAffectedSession(t *testing.T) {
	h, session := newTestHandler(t)
	session.EXPECT().Snapshot().Return(signedInCompanyAdmin()).Once()
	session.EXPECT().CheckEntityStatus(mock.Anything, true).
		Return(entity.EntityStatus{EffectiveStatus: entity.StatusTerminated}, nil).Once()

	rec := push(t, h, pushBody(t, companyTerminated()))

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestHandlePush_MatchesByUser(t *testing.T) {
	h, session := newTestHandler(t)
	snapshot := signedInCompanyAdmin()
	snapshot.EntityStatus = entity.EntityStatus{}
	session.EXPECT().Snapshot().Return(snapshot).Once()
	session.EXPECT().CheckEntityStatus(mock.Anything, true).Return(entity.EntityStatus{}, nil).Once()

	change := companyTerminated()
	change.UserID = "user-1"
	change.EntityID = "company-other"

	assert.Equal(t, http.StatusOK, push(t, h, pushBody(t, change)).Code)
}

func TestHandlePush_IgnoredChanges(t *testing.T) {
	tests := []struct {
		name     string
		snapshot func() entity.Session
		change   func() entity.StatusChange
	}{
		{
			name:     "signed out",
			snapshot: func() entity.Session { return entity.Session{IsInitialized: true} },
			change:   companyTerminated,
		},
		{
			name:     "another entity",
			snapshot: signedInCompanyAdmin,
			change: func() entity.StatusChange {
				change := companyTerminated()
				change.EntityID = "company-2"

				return change
			},
		},
		{
			name: "already current",
			snapshot: func() entity.Session {
				snapshot := signedInCompanyAdmin()
				snapshot.EntityStatus.EffectiveStatus = entity.StatusTerminated
				snapshot.EntityStatus.LastStatusCheck = changedAt

				return snapshot
			},
			change: companyTerminated,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, session := newTestHandler(t)
			session.EXPECT().Snapshot().Return(tt.snapshot()).Once()

			rec := push(t, h, pushBody(t, tt.change()))

			assert.Equal(t, http.StatusOK, rec.Code)
			session.AssertNotCalled(t, "CheckEntityStatus", mock.Anything, mock.Anything)
		})
	}
}

func TestHandlePush_LookupFailureIsRetried(t *testing.T) {
	h, session := newTestHandler(t)
	session.EXPECT().Snapshot().Return(signedInCompanyAdmin()).Once()
	session.EXPECT().CheckEntityStatus(mock.Anything, true).
		Return(entity.EntityStatus{}, errors.Wrap(domainerrors.ErrEntityStatusUnavailable, "timeout")).Once()

	rec := push(t, h, pushBody(t, companyTerminated()))

	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
}

func TestHandlePush_MalformedMessages(t *testing.T) {
	for name, body := range map[string]string{
		"not json":       `{`,
		"bad base64":     `{"message":{"data":"***"}}`,
		"bad change doc": `{"message":{"data":"` + base64.StdEncoding.EncodeToString([]byte("nope")) + `"}}`,
	} {
		t.Run(name, func(t *testing.T) {
			h, _ := newTestHandler(t)

			assert.Equal(t, http.StatusBadRequest, push(t, h, body).Code)
		})
	}
}

func TestHandlePush_RejectsUnsignedPushes(t *testing.T) {
	h, _ := newTestHandler(t)
	h.verifyPushAuth = true
	h.verify = func(*http.Request) error { return errors.New("missing authorization header") }

	rec := push(t, h, pushBody(t, companyTerminated()))

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestNewPushHandler_VerifiesOnlyGooglePushesOutsideDevelop(t *testing.T) {
	cfg := &config.Config{}
	cfg.ApplyDefaults()
	cfg.PubSub.Provider = config.PubSubProviderGoogle
	cfg.Env.Env = "production"

	h := NewPushHandler(PushHandlerParams{Config: cfg, Logger: slog.Default()})
	assert.True(t, h.verifyPushAuth)

	cfg.Env.Env = config.EnvDevelop
	h = NewPushHandler(PushHandlerParams{Config: cfg, Logger: slog.Default()})
	assert.False(t, h.verifyPushAuth)
}

func TestVerifyPubSubToken_HeaderChecks(t *testing.T) {
	req := httptest.NewRequest(http.MethodPost, "/push", nil)
	require.ErrorContains(t, verifyPubSubToken(req), "missing authorization header")

	req.Header.Set("Authorization", "Basic abc")
	require.ErrorContains(t, verifyPubSubToken(req), "invalid authorization header format")
}
