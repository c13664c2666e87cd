package api

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"portal/config"
	deliverycontext "portal/internal/delivery/context"
	"portal/internal/domain/entity"
	domainerrors "portal/internal/domain/errors"
	"portal/internal/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()

	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	cfg := &config.Config{API: &config.APIConfig{BaseURL: server.URL + "/api/", Timeout: 2 * time.Second}}
	client, err := NewClient(ClientParams{Config: cfg, Logger: slog.New(slog.NewTextHandler(io.Discard, nil))})
	require.NoError(t, err)

	return client
}

func writeJSON(t *testing.T, w http.ResponseWriter, status int, body any) {
	t.Helper()

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	require.NoError(t, json.NewEncoder(w).Encode(body))
}

func TestNewClient_RequiresBaseURL(t *testing.T) {
	_, err := NewClient(ClientParams{Config: &config.Config{API: &config.APIConfig{}}})

	require.Error(t, err)
}

func TestAuthGateway_Login(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/login", r.URL.Path)
		assert.Equal(t, "req-42", r.Header.Get("X-Request-Id"))

		var body map[string]any
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "ana@acme.test", body["emailOrUsername"])
		assert.Equal(t, "secret", body["password"])

		writeJSON(t, w, http.StatusOK, map[string]any{
			"user": map[string]any{
				"id":    "user-1",
				"email": "ana@acme.test",
				"roles": []map[string]any{{"code": "COMPANY_ADMIN", "scope": map[string]any{"type": "company", "entityId": "company-1"}}},
			},
			"accessToken":  "access-1",
			"refreshToken": "refresh-1",
		})
	})

	ctx := deliverycontext.WithRequestID(context.Background(), "req-42")
	payload, err := NewAuthGateway(client).Login(ctx, entity.Credentials{EmailOrUsername: "ana@acme.test", Password: "secret"})

	require.NoError(t, err)
	assert.Equal(t, "access-1", payload.AccessToken)
	assert.Equal(t, "refresh-1", payload.RefreshToken)
	require.NotNil(t, payload.User)
	assert.True(t, payload.User.Roles.Contains(entity.RoleCompanyAdmin))
}

func TestAuthGateway_LoginEmailNotVerified(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(t, w, http.StatusForbidden, map[string]any{
			"message": "Please verify your email address",
			"code":    "EMAIL_NOT_VERIFIED",
			"data":    map[string]any{"userId": "user-9", "email": "new@acme.test", "canResendEmail": true},
		})
	})

	_, err := NewAuthGateway(client).Login(context.Background(), entity.Credentials{EmailOrUsername: "new", Password: "x"})

	upstream, ok := errors.AsType[*domainerrors.UpstreamError](err)
	require.True(t, ok)
	assert.Equal(t, http.StatusForbidden, upstream.Status)
	assert.Equal(t, domainerrors.CodeEmailNotVerified, upstream.Code)
	assert.Equal(t, "Please verify your email address", upstream.Msg)
	assert.Equal(t, "user-9", upstream.Payload["userId"])
}

func TestAuthGateway_ErrorObjectEnvelope(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(t, w, http.StatusUnauthorized, map[string]any{
			"success": false,
			"error":   map[string]any{"code": "INVALID_CREDENTIALS", "details": "Invalid username or password"},
		})
	})

	_, err := NewAuthGateway(client).Login(context.Background(), entity.Credentials{EmailOrUsername: "ana", Password: "x"})

	upstream, ok := errors.AsType[*domainerrors.UpstreamError](err)
	require.True(t, ok)
	assert.Equal(t, "INVALID_CREDENTIALS", upstream.Code)
	assert.Equal(t, "Invalid username or password", upstream.Msg)
	assert.True(t, domainerrors.IsUnauthorized(err))
}

func TestAuthGateway_VerifyUnwrapsDataEnvelope(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/verify", r.URL.Path)
		assert.Equal(t, "Bearer access-1", r.Header.Get("Authorization"))

		writeJSON(t, w, http.StatusOK, map[string]any{
			"success": true,
			"data":    map[string]any{"user": map[string]any{"id": "user-1", "name": "Ana"}},
		})
	})

	user, err := NewAuthGateway(client).Verify(context.Background(), "access-1")

	require.NoError(t, err)
	assert.Equal(t, "Ana", user.Name)
}

func TestAuthGateway_RefreshAndLogout(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/api/refresh":
			var body map[string]string
			require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
			assert.Equal(t, "refresh-1", body["refreshToken"])
			writeJSON(t, w, http.StatusOK, map[string]any{"accessToken": "access-2"})
		case "/api/logout":
			assert.Equal(t, "Bearer access-2", r.Header.Get("Authorization"))
			w.WriteHeader(http.StatusNoContent)
		default:
			t.Errorf("unexpected path %s", r.URL.Path)
		}
	})
	gateway := NewAuthGateway(client)

	payload, err := gateway.Refresh(context.Background(), "refresh-1")
	require.NoError(t, err)
	assert.Equal(t, "access-2", payload.AccessToken)
	assert.Empty(t, payload.RefreshToken)

	require.NoError(t, gateway.Logout(context.Background(), "access-2"))
}

func TestAuthGateway_RegisterAndResend(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		var body map[string]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))

		switch r.URL.Path {
		case "/api/register":
			assert.Equal(t, "ben@acme.test", body["email"])
			writeJSON(t, w, http.StatusCreated, map[string]any{"message": "Check your inbox"})
		case "/api/resend-verification":
			assert.Equal(t, "user-9", body["userId"])
			writeJSON(t, w, http.StatusOK, map[string]any{"message": "Verification email sent"})
		}
	})
	gateway := NewAuthGateway(client)

	payload, err := gateway.Register(context.Background(), entity.Registration{
		Name: "Ben", Username: "ben", Email: "ben@acme.test", Password: "long-enough",
	})
	require.NoError(t, err)
	assert.Equal(t, "Check your inbox", payload.Message)
	assert.Nil(t, payload.User)

	message, err := gateway.ResendVerification(context.Background(), "user-9")
	require.NoError(t, err)
	assert.Equal(t, "Verification email sent", message)
}

func TestClient_TransportFailureIsNetworkError(t *testing.T) {
	server := httptest.NewServer(http.NotFoundHandler())
	baseURL := server.URL
	server.Close()

	client, err := NewClient(ClientParams{
		Config: &config.Config{API: &config.APIConfig{BaseURL: baseURL, Timeout: time.Second}},
		Logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	})
	require.NoError(t, err)

	_, err = NewAuthGateway(client).Verify(context.Background(), "access-1")

	require.Error(t, err)
	assert.True(t, domainerrors.IsNetwork(err))
	assert.False(t, domainerrors.IsUnauthorized(err))
}

func TestClient_PlainTextError(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, "bad gateway", http.StatusBadGateway)
	})

	err := NewAuthGateway(client).Logout(context.Background(), "access-1")

	upstream, ok := errors.AsType[*domainerrors.UpstreamError](err)
	require.True(t, ok)
	assert.Equal(t, http.StatusBadGateway, upstream.Status)
	assert.Equal(t, "bad gateway", upstream.Msg)
}

func TestStatusLookup_LookupStatus(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/entity-status/user-1", r.URL.Path)
		assert.Equal(t, "Bearer access-1", r.Header.Get("Authorization"))

		writeJSON(t, w, http.StatusOK, map[string]any{
			"entityType":         "company",
			"entityId":           "company-1",
			"entityName":         "Acme",
			"entityStatus":       "active",
			"effectiveStatus":    "inactive",
			"roleCategory":       "company",
			"roleCode":           "COMPANY_ADMIN",
			"restrictedFeatures": []string{"payroll"},
			"message":            "Labor office suspended",
			"adminContact":       "office@labor.test",
		})
	})

	result, err := NewStatusLookup(client).LookupStatus(context.Background(), "user-1", "access-1")

	require.NoError(t, err)
	assert.Equal(t, entity.EntityTypeCompany, result.EntityType)
	assert.Equal(t, entity.StatusActive, result.EntityStatus)
	assert.Equal(t, entity.StatusInactive, result.EffectiveStatus)
	assert.Equal(t, entity.RoleCompanyAdmin, result.RoleCode)
	assert.Equal(t, []string{"payroll"}, result.RestrictedFeatures)
	assert.Equal(t, "office@labor.test", result.AdminContact)
}
