package pubsub

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	deliverycontext "portal/internal/delivery/context"
	"portal/internal/domain/entity"
	"portal/internal/domain/service"
	"portal/internal/errors"
)

const statusChangeSubscription = "projects/local/subscriptions/entity-status-sub"

// localHTTPPublisher posts status changes to an endpoint in the shape
// Google Pub/Sub uses for push subscriptions
type localHTTPPublisher struct {
	endpoint   string
	httpClient *http.Client
	logger     *slog.Logger
	now        func() time.Time
}

// PushMessage is the body of a Pub/Sub push delivery
type PushMessage struct {
	Message struct {
		Data        string            `json:"data"`
		Attributes  map[string]string `json:"attributes,omitempty"`
		MessageID   string            `json:"messageId"`
		PublishTime string            `json:"publishTime"`
	} `json:"message"`
	Subscription string `json:"subscription"`
}

// NewLocalHTTPPublisher creates a push-style publisher for development
func NewLocalHTTPPublisher(endpoint string, logger *slog.Logger) service.StatusEventPublisher {
	return &localHTTPPublisher{
		endpoint:   endpoint,
		httpClient: &http.Client{Timeout: 10 * time.Second},
		logger:     logger,
		now:        time.Now,
	}
}

// PublishStatusChange posts one push message and expects a 2xx answer
func (p *localHTTPPublisher) PublishStatusChange(ctx context.Context, change *entity.StatusChange) error {
	data, err := json.Marshal(change)
	if err != nil {
		return errors.WithStack(err)
	}

	push := PushMessage{Subscription: statusChangeSubscription}
	push.Message.Data = base64.StdEncoding.EncodeToString(data)
	push.Message.MessageID = change.ID
	push.Message.PublishTime = p.now().UTC().Format(time.RFC3339)
	push.Message.Attributes = changeAttributes(ctx, change)

	body, err := json.Marshal(push)
	if err != nil {
		return errors.WithStack(err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, p.endpoint, bytes.NewReader(body))
	if err != nil {
		return errors.WithStack(err)
	}
	req.Header.Set("Content-Type", "application/json")
	if requestID := deliverycontext.GetRequestIDFromContext(ctx); requestID != "" {
		req.Header.Set(deliverycontext.HeaderXRequestID, requestID)
	}

	resp, err := p.httpClient.Do(req)
	if err != nil {
		return errors.WithStack(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return errors.Errorf("push endpoint returned non-success status: %d", resp.StatusCode)
	}

	p.logger.Debug("[LocalPubSub] Status change pushed",
		slog.String("endpoint", p.endpoint),
		slog.String("change_id", change.ID),
	)

	return nil
}

// Close is a no-op for the HTTP client
func (p *localHTTPPublisher) Close() error {
	return nil
}
