package http

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"portal/config"
	httpmiddleware "portal/internal/delivery/http/middleware"
	"portal/internal/delivery/http/response"
	"portal/internal/delivery/http/router"
	"portal/internal/delivery/http/router/handler"
	"portal/internal/domain/entity"
	domainerrors "portal/internal/domain/errors"
	"portal/internal/domain/service"
	"portal/internal/infra/metrics"
	mocks "portal/internal/mocks/usecase"
	"portal/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type envelope struct {
	Data    json.RawMessage     `json:"data"`
	Message string              `json:"message"`
	Error   *response.ErrorInfo `json:"error"`
	Meta    *response.MetaInfo  `json:"meta"`
}

type testServer struct {
	echo    *echo.Echo
	session *mocks.MockSessionUsecase
	guard   *mocks.MockGuardUsecase
}

func newTestServer(t *testing.T) *testServer {
	t.Helper()

	cfg := &config.Config{}
	cfg.ApplyDefaults()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	recorder := metrics.NewRecorder()

	session := mocks.NewMockSessionUsecase(t)
	guard := mocks.NewMockGuardUsecase(t)

	e := NewEcho(ServerParams{
		Cfg:      cfg,
		Logger:   logger,
		Recorder: recorder,
		RouterParams: router.RouterParams{
			AuthHandler:     handler.NewAuthHandler(handler.AuthHandlerParams{Session: session, Logger: logger}),
			PageHandler:     handler.NewPageHandler(handler.PageHandlerParams{Session: session, Config: cfg}),
			GuardMiddleware: httpmiddleware.NewGuardMiddleware(guard),
			Recorder:        recorder,
			Config:          cfg,
		},
	})

	return &testServer{echo: e, session: session, guard: guard}
}

func (s *testServer) do(method, target, body string) *httptest.ResponseRecorder {
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, reader)
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	s.echo.ServeHTTP(rec, req)

	return rec
}

func decode(t *testing.T, rec *httptest.ResponseRecorder) envelope {
	t.Helper()

	var env envelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env), rec.Body.String())

	return env
}

func TestLogin(t *testing.T) {
	t.Run("success honours a safe next", func(t *testing.T) {
		s := newTestServer(t)
		s.session.EXPECT().Login(mock.Anything, entity.Credentials{EmailOrUsername: "ana@acme.test", Password: "secret"}).
			Return(&usecase.AuthResult{Success: true, Data: &entity.User{ID: "user-1"}}).Once()

		rec := s.do(http.MethodPost, "/auth/login?next=%2Fcompany%2Femployees", `{"emailOrUsername":"ana@acme.test","password":"secret"}`)

		require.Equal(t, http.StatusOK, rec.Code)
		env := decode(t, rec)
		var data handler.LoginResponse
		require.NoError(t, json.Unmarshal(env.Data, &data))
		assert.Equal(t, "/company/employees", data.RedirectTo)
		assert.Equal(t, "user-1", data.User.ID)
		assert.NotEmpty(t, rec.Header().Get("X-Request-Id"))
		assert.Equal(t, rec.Header().Get("X-Request-Id"), env.Meta.RequestID)
	})

	t.Run("unsafe next falls back to the dashboard", func(t *testing.T) {
		s := newTestServer(t)
		s.session.EXPECT().Login(mock.Anything, mock.Anything).Return(&usecase.AuthResult{Success: true}).Once()
		s.session.EXPECT().GetDefaultDashboard().Return("/company/dashboard").Once()

		rec := s.do(http.MethodPost, "/auth/login", `{"emailOrUsername":"ana","password":"secret","next":"//evil.test"}`)

		var data handler.LoginResponse
		require.NoError(t, json.Unmarshal(decode(t, rec).Data, &data))
		assert.Equal(t, "/company/dashboard", data.RedirectTo)
	})

	t.Run("email not verified opens the modal", func(t *testing.T) {
		s := newTestServer(t)
		modal := entity.EmailVerificationModal{IsOpen: true, UserID: "user-9", UserEmail: "new@acme.test", CanResendEmail: true}
		s.session.EXPECT().Login(mock.Anything, mock.Anything).Return(&usecase.AuthResult{
			Error: "Please verify your email",
			Code:  domainerrors.CodeEmailNotVerified,
			Data:  modal,
		}).Once()

		rec := s.do(http.MethodPost, "/auth/login", `{"emailOrUsername":"new","password":"secret"}`)

		require.Equal(t, http.StatusAccepted, rec.Code)
		env := decode(t, rec)
		var data handler.LoginResponse
		require.NoError(t, json.Unmarshal(env.Data, &data))
		assert.True(t, data.VerificationRequired)
		assert.Equal(t, &modal, data.VerificationModal)
		assert.Equal(t, "Please verify your email", env.Message)
	})

	t.Run("rejection", func(t *testing.T) {
		s := newTestServer(t)
		s.session.EXPECT().Login(mock.Anything, mock.Anything).Return(&usecase.AuthResult{
			Error: domainerrors.ErrInvalidCredentials.Message(),
			Code:  domainerrors.CodeInvalidCredentials,
		}).Once()

		rec := s.do(http.MethodPost, "/auth/login", `{"emailOrUsername":"ana","password":"wrong"}`)

		require.Equal(t, http.StatusUnauthorized, rec.Code)
		env := decode(t, rec)
		assert.Equal(t, domainerrors.CodeInvalidCredentials, env.Error.Code)
		assert.Equal(t, domainerrors.ErrInvalidCredentials.Message(), env.Error.Message)
	})

	t.Run("oversized input never reaches the store", func(t *testing.T) {
		s := newTestServer(t)

		rec := s.do(http.MethodPost, "/auth/login", `{"emailOrUsername":"`+strings.Repeat("a", 300)+`","password":"x"}`)

		require.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, domainerrors.CodeValidationFailed, decode(t, rec).Error.Code)
	})
}

func TestGuardedPages(t *testing.T) {
	t.Run("allowed", func(t *testing.T) {
		s := newTestServer(t)
		s.guard.EXPECT().Check(mock.Anything, usecase.RouteRequest{Path: "/company/employees", OriginalURL: "/company/employees?page=2"}).
			Return(usecase.Decision{Kind: usecase.DecisionAllow}).Once()
		s.session.EXPECT().Snapshot().Return(entity.Session{IsAuthenticated: true, User: &entity.User{ID: "user-1"}}).Once()
		s.session.EXPECT().CanAccessFeature(mock.Anything).Return(true)

		rec := s.do(http.MethodGet, "/company/employees?page=2", "")

		require.Equal(t, http.StatusOK, rec.Code)
		var page handler.ProtectedPage
		require.NoError(t, json.Unmarshal(decode(t, rec).Data, &page))
		assert.Equal(t, "/company/employees", page.Path)
		assert.True(t, page.Features[entity.FeaturePayroll])
	})

	t.Run("redirected", func(t *testing.T) {
		s := newTestServer(t)
		target := "/access-restricted?code=ACCESS_RESTRICTED&reason=Entity+is+inactive"
		decision := usecase.Decision{
			Kind:   usecase.DecisionRedirect,
			Intent: service.NavigationIntent{Target: target, Reason: usecase.ReasonEntityInactive, Code: domainerrors.CodeAccessRestricted},
		}
		s.guard.EXPECT().Check(mock.Anything, mock.Anything).Return(decision).Once()
		s.guard.EXPECT().Enforce(mock.Anything, decision, mock.Anything).
			RunAndReturn(func(ctx context.Context, d usecase.Decision, nav service.Navigator) error {
				require.NoError(t, nav.Navigate(ctx, d.Intent))
				assert.Equal(t, target, nav.CurrentLocation())

				return nil
			}).Once()

		rec := s.do(http.MethodGet, "/company/dashboard", "")

		require.Equal(t, http.StatusSeeOther, rec.Code)
		assert.Equal(t, target, rec.Header().Get(echo.HeaderLocation))
		env := decode(t, rec)
		assert.Equal(t, domainerrors.CodeAccessRestricted, env.Error.Code)
		assert.Equal(t, usecase.ReasonEntityInactive, env.Error.Message)
	})

	t.Run("loading", func(t *testing.T) {
		s := newTestServer(t)
		s.guard.EXPECT().Check(mock.Anything, mock.Anything).Return(usecase.Decision{Kind: usecase.DecisionLoading}).Once()

		rec := s.do(http.MethodGet, "/worker/profile", "")

		require.Equal(t, http.StatusServiceUnavailable, rec.Code)
		assert.Equal(t, "1", rec.Header().Get("Retry-After"))
		assert.Equal(t, httpmiddleware.CodeSessionInitializing, decode(t, rec).Error.Code)
	})

	t.Run("dashboard sends to the role landing page", func(t *testing.T) {
		s := newTestServer(t)
		s.guard.EXPECT().Check(mock.Anything, mock.Anything).Return(usecase.Decision{Kind: usecase.DecisionAllow}).Once()
		s.session.EXPECT().GetDefaultDashboard().Return("/company/dashboard").Once()

		rec := s.do(http.MethodGet, "/dashboard", "")

		require.Equal(t, http.StatusSeeOther, rec.Code)
		assert.Equal(t, "/company/dashboard", rec.Header().Get(echo.HeaderLocation))
	})
}

func TestAccessRestrictedPage(t *testing.T) {
	s := newTestServer(t)
	s.session.EXPECT().Snapshot().Return(entity.Session{
		IsAuthenticated: true,
		EntityStatus: entity.EntityStatus{
			EntityType:      entity.EntityTypeCompany,
			EntityName:      "Acme Ltd",
			EffectiveStatus: entity.StatusInactive,
			StatusMessage:   "Your company account is inactive",
			AdminContact:    "support@labor.test",
		},
	}).Once()

	rec := s.do(http.MethodGet, "/access-restricted?code=ACCESS_RESTRICTED&reason=Entity+is+inactive", "")

	require.Equal(t, http.StatusOK, rec.Code)
	var page handler.RestrictedPage
	require.NoError(t, json.Unmarshal(decode(t, rec).Data, &page))
	assert.Equal(t, "Entity is inactive", page.Reason)
	assert.Equal(t, "Acme Ltd", page.EntityName)
	assert.Equal(t, "support@labor.test", page.AdminContact)
	assert.Empty(t, page.SignInRoute)
}

func TestLoginPage_SignedInVisitorIsForwarded(t *testing.T) {
	s := newTestServer(t)
	s.session.EXPECT().Snapshot().Return(entity.Session{IsInitialized: true, IsAuthenticated: true}).Once()

	rec := s.do(http.MethodGet, "/login?next=%2Fcompany%2Fpayroll", "")

	require.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, "/company/payroll", rec.Header().Get(echo.HeaderLocation))
}

func TestResendVerification(t *testing.T) {
	t.Run("cooldown", func(t *testing.T) {
		s := newTestServer(t)
		s.session.EXPECT().ResendVerification(mock.Anything).Return(&usecase.ResendResult{
			Error:             domainerrors.ErrResendCooldown.Message(),
			Code:              domainerrors.CodeResendCooldown,
			CooldownRemaining: 39500 * time.Millisecond,
		}).Once()

		rec := s.do(http.MethodPost, "/auth/verification/resend", "")

		require.Equal(t, http.StatusTooManyRequests, rec.Code)
		assert.Equal(t, "40", rec.Header().Get("Retry-After"))
		env := decode(t, rec)
		assert.Equal(t, domainerrors.CodeResendCooldown, env.Error.Code)
		assert.Equal(t, map[string]any{"cooldownSeconds": float64(40)}, env.Error.Details)
	})

	t.Run("sent", func(t *testing.T) {
		s := newTestServer(t)
		s.session.EXPECT().ResendVerification(mock.Anything).Return(&usecase.ResendResult{
			Success:           true,
			Message:           "Verification email sent",
			CooldownRemaining: time.Minute,
		}).Once()

		rec := s.do(http.MethodPost, "/auth/verification/resend", "")

		require.Equal(t, http.StatusOK, rec.Code)
		env := decode(t, rec)
		assert.Equal(t, "Verification email sent", env.Message)
		assert.JSONEq(t, `{"cooldownSeconds":60}`, string(env.Data))
	})

	t.Run("close", func(t *testing.T) {
		s := newTestServer(t)
		s.session.EXPECT().CloseVerificationModal(mock.Anything).Return().Once()

		rec := s.do(http.MethodDelete, "/auth/verification", "")

		assert.Equal(t, http.StatusNoContent, rec.Code)
	})
}

func TestEntityStatus(t *testing.T) {
	s := newTestServer(t)
	s.session.EXPECT().Snapshot().Return(entity.Session{IsAuthenticated: true}).Once()
	s.session.EXPECT().CheckEntityStatus(mock.Anything, true).
		Return(entity.FailClosedStatus(entity.EntityStatus{}, time.Now(), "unavailable"), domainerrors.ErrEntityStatusUnavailable).Once()

	rec := s.do(http.MethodGet, "/auth/entity-status?refresh=true", "")

	require.Equal(t, http.StatusOK, rec.Code)
	var view handler.EntityStatusView
	require.NoError(t, json.Unmarshal(decode(t, rec).Data, &view))
	assert.False(t, view.CanAccess)
	assert.Equal(t, domainerrors.ErrEntityStatusUnavailable.Message(), view.Error)
}

func TestRefresh_FailureIsUnauthorized(t *testing.T) {
	s := newTestServer(t)
	s.session.EXPECT().RefreshAccessToken(mock.Anything).Return(false).Once()

	rec := s.do(http.MethodPost, "/auth/refresh", "")

	require.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, domainerrors.CodeSessionExpired, decode(t, rec).Error.Code)
}

func TestMetricsAndErrors(t *testing.T) {
	s := newTestServer(t)

	notFound := s.do(http.MethodGet, "/nope", "")
	require.Equal(t, http.StatusNotFound, notFound.Code)
	assert.Equal(t, "HTTP_ERROR", decode(t, notFound).Error.Code)

	rec := s.do(http.MethodGet, "/metrics", "")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `status="404"`)
}
