package handler

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"strings"

	"portal/config"
	deliverycontext "portal/internal/delivery/context"
	"portal/internal/domain/entity"
	"portal/internal/errors"
	"portal/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
	"google.golang.org/api/idtoken"
)

// PubSubMessage represents the structure of a Pub/Sub push message
type PubSubMessage struct {
	Message struct {
		Data        string            `json:"data"`
		Attributes  map[string]string `json:"attributes,omitempty"`
		MessageID   string            `json:"messageId"`
		PublishTime string            `json:"publishTime"`
	} `json:"message"`
	Subscription string `json:"subscription"`
}

// retryableError wraps an error to indicate it should trigger a Pub/Sub retry
type retryableError struct {
	err error
}

func (e *retryableError) Error() string {
	return fmt.Sprintf("retryable: %v", e.err)
}

func (e *retryableError) Unwrap() error {
	return e.err
}

func newRetryableError(err error) error {
	return &retryableError{err: err}
}

func isRetryableError(err error) bool {
	_, ok := errors.AsType[*retryableError](err)

	return ok
}

// PushHandler applies status changes announced by other instances to the local session
type PushHandler struct {
	verifyPushAuth bool
	verify         func(req *http.Request) error
	logger         *slog.Logger
	session        usecase.SessionUsecase
}

// PushHandlerParams holds dependencies for the PushHandler
type PushHandlerParams struct {
	fx.In

	Config  *config.Config
	Logger  *slog.Logger
	Session usecase.SessionUsecase
}

// NewPushHandler creates a new Pub/Sub push handler
func NewPushHandler(params PushHandlerParams) *PushHandler {
	// Google signs push requests; local pushes carry no token.
	verifyPushAuth := params.Config.PubSub != nil &&
		params.Config.PubSub.Provider == config.PubSubProviderGoogle &&
		params.Config.Env.Env != config.EnvDevelop

	return &PushHandler{
		verifyPushAuth: verifyPushAuth,
		verify:         verifyPubSubToken,
		logger:         params.Logger,
		session:        params.Session,
	}
}

// HandlePush handles incoming Pub/Sub push messages
func (h *PushHandler) HandlePush(c echo.Context) error {
	ctx := c.Request().Context()

	if h.verifyPushAuth {
		if err := h.verify(c.Request()); err != nil {
			h.logger.Warn("[Worker] Invalid Pub/Sub token", slog.Any("error", err))

			return c.NoContent(http.StatusUnauthorized)
		}
	}

	var pushMsg PubSubMessage
	if err := c.Bind(&pushMsg); err != nil {
		h.logger.Error("[Worker] Failed to parse push message", slog.Any("error", err))

		return c.NoContent(http.StatusBadRequest)
	}

	data, err := base64.StdEncoding.DecodeString(pushMsg.Message.Data)
	if err != nil {
		h.logger.Error("[Worker] Failed to decode message data", slog.Any("error", err))

		return c.NoContent(http.StatusBadRequest)
	}

	var change entity.StatusChange
	if err := json.Unmarshal(data, &change); err != nil {
		h.logger.Error("[Worker] Failed to parse status change", slog.Any("error", err))

		return c.NoContent(http.StatusBadRequest)
	}

	requestID := h.extractRequestID(ctx, &pushMsg)
	reqLogger := h.logger.With(slog.String("request_id", requestID))
	ctx = deliverycontext.WithRequest(ctx, requestID, reqLogger)

	reqLogger.Info("[Worker] Processing status change",
		slog.String("change_id", change.ID),
		slog.String("entity_type", string(change.EntityType)),
		slog.String("entity_id", change.EntityID),
		slog.String("new_status", string(change.NewStatus)),
	)

	if err := h.applyChange(ctx, &change); err != nil {
		reqLogger.Error("[Worker] Failed to apply status change",
			slog.String("change_id", change.ID),
			slog.Any("error", err),
			slog.Bool("retryable", isRetryableError(err)),
		)
		// 503 asks Pub/Sub to redeliver; 200 drops the message.
		if isRetryableError(err) {
			return c.NoContent(http.StatusServiceUnavailable)
		}

		return c.NoContent(http.StatusOK)
	}

	return c.NoContent(http.StatusOK)
}

// extractRequestID prefers the message attribute, then the request header, then a fresh UUID
func (h *PushHandler) extractRequestID(ctx context.Context, pushMsg *PubSubMessage) string {
	if requestID, ok := pushMsg.Message.Attributes["request_id"]; ok && requestID != "" {
		return requestID
	}

	if requestID := deliverycontext.GetRequestIDFromContext(ctx); requestID != "" {
		return requestID
	}

	return uuid.New().String()
}

// applyChange re-resolves the entity status when the change concerns the signed-in identity
func (h *PushHandler) applyChange(ctx context.Context, change *entity.StatusChange) error {
	logger := deliverycontext.GetLoggerOrDefault(ctx, h.logger)
	snapshot := h.session.Snapshot()

	if !snapshot.IsAuthenticated || snapshot.User == nil {
		logger.Info("[Worker] No signed-in session, change ignored", slog.String("change_id", change.ID))

		return nil
	}

	if !concernsSession(snapshot, change) {
		logger.Debug("[Worker] Change concerns another identity", slog.String("change_id", change.ID))

		return nil
	}

	// Changes this process published arrive here too.
	current := snapshot.EntityStatus
	if current.Checked() && !current.LastStatusCheck.Before(change.OccurredAt) &&
		current.EffectiveStatus == change.EffectiveStatus {
		logger.Debug("[Worker] Entity status already current", slog.String("change_id", change.ID))

		return nil
	}

	status, err := h.session.CheckEntityStatus(ctx, true)
	if err != nil {
		return newRetryableError(errors.Wrap(err, "refresh entity status"))
	}

	logger.Info("[Worker] Entity status refreshed",
		slog.String("change_id", change.ID),
		slog.String("effective_status", string(status.EffectiveStatus)),
		slog.Bool("can_access", status.CanAccess),
	)

	return nil
}

func concernsSession(snapshot entity.Session, change *entity.StatusChange) bool {
	if change.UserID != "" && change.UserID == snapshot.User.ID {
		return true
	}

	current := snapshot.EntityStatus

	return change.EntityID != "" &&
		change.EntityID == current.EntityID &&
		change.EntityType == current.EntityType
}

// verifyPubSubToken verifies the JWT token from Google Pub/Sub push requests
// Reference: https://cloud.google.com/pubsub/docs/push#authenticating_standard_push_requests
func verifyPubSubToken(req *http.Request) error {
	authHeader := req.Header.Get("Authorization")
	if authHeader == "" {
		return errors.New("missing authorization header")
	}

	const bearerPrefix = "Bearer "
	if !strings.HasPrefix(authHeader, bearerPrefix) {
		return errors.New("invalid authorization header format")
	}
	token := strings.TrimPrefix(authHeader, bearerPrefix)

	// The audience is the push endpoint URL
	scheme := "https"
	if req.TLS == nil {
		scheme = "http"
	}
	audience := fmt.Sprintf("%s://%s%s", scheme, req.Host, req.URL.Path)

	payload, err := idtoken.Validate(req.Context(), token, audience)
	if err != nil {
		return errors.Wrap(err, "failed to validate token")
	}

	if payload.Issuer != "accounts.google.com" && payload.Issuer != "https://accounts.google.com" {
		return errors.Errorf("invalid issuer: %s", payload.Issuer)
	}

	if emailVerified, ok := payload.Claims["email_verified"].(bool); ok && !emailVerified {
		return errors.New("email not verified")
	}

	return nil
}
