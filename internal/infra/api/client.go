// Package api is the HTTP client of the upstream HR / insurance backend.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"portal/config"
	deliverycontext "portal/internal/delivery/context"
	domainerrors "portal/internal/domain/errors"
	"portal/internal/errors"

	"go.uber.org/fx"
)

// maxBodyBytes caps how much of an upstream answer is read.
const maxBodyBytes = 1 << 20

// Client sends JSON requests to the upstream API.
type Client struct {
	baseURL    *url.URL
	httpClient *http.Client
	logger     *slog.Logger
}

// ClientParams holds dependencies for Client, injected by Fx
type ClientParams struct {
	fx.In

	Config *config.Config
	Logger *slog.Logger
}

// NewClient creates the upstream API client
func NewClient(params ClientParams) (*Client, error) {
	cfg := params.Config.API
	if cfg == nil || cfg.BaseURL == "" {
		return nil, errors.New("api.baseUrl is required")
	}

	baseURL, err := url.Parse(strings.TrimSuffix(cfg.BaseURL, "/"))
	if err != nil {
		return nil, errors.Wrapf(err, "invalid api.baseUrl %q", cfg.BaseURL)
	}

	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 15 * time.Second
	}

	return &Client{
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: timeout},
		logger:     params.Logger,
	}, nil
}

// errorBody is the error envelope of the upstream API.
type errorBody struct {
	Message string          `json:"message"`
	Error   json.RawMessage `json:"error"`
	Code    string          `json:"code"`
	Data    map[string]any  `json:"data"`
}

// errorDetail is the object form of the "error" field.
type errorDetail struct {
	Code    string `json:"code"`
	Details string `json:"details"`
}

// envelope unwraps answers of the form {"success": true, "data": {...}}.
type envelope struct {
	Data json.RawMessage `json:"data"`
}

// do sends body as JSON and decodes a 2xx answer into out.
// Non-2xx answers become *domainerrors.UpstreamError; transport failures wrap ErrNetworkFailure.
func (c *Client) do(ctx context.Context, method, path, bearer string, body, out any) error {
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return errors.WithStack(err)
		}
		reader = bytes.NewReader(payload)
	}

	endpoint := c.baseURL.JoinPath(path)
	req, err := http.NewRequestWithContext(ctx, method, endpoint.String(), reader)
	if err != nil {
		return errors.WithStack(err)
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if bearer != "" {
		req.Header.Set("Authorization", "Bearer "+bearer)
	}
	// Add X-Request-Id header for tracing
	if requestID := deliverycontext.GetRequestIDFromContext(ctx); requestID != "" {
		req.Header.Set(deliverycontext.HeaderXRequestID, requestID)
	}

	started := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return errors.Wrapf(domainerrors.ErrNetworkFailure, "%s %s: %v", method, path, err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		return errors.Wrapf(domainerrors.ErrNetworkFailure, "read %s %s: %v", method, path, err)
	}

	c.log(ctx).Debug("Upstream call",
		slog.String("method", method),
		slog.String("path", path),
		slog.Int("status", resp.StatusCode),
		slog.Duration("latency", time.Since(started)))

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return decodeUpstreamError(resp.StatusCode, raw)
	}

	if out == nil || len(bytes.TrimSpace(raw)) == 0 {
		return nil
	}

	var wrapped envelope
	if err := json.Unmarshal(raw, &wrapped); err == nil && len(wrapped.Data) > 0 && wrapped.Data[0] == '{' {
		raw = wrapped.Data
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return errors.Wrapf(err, "decode %s %s response", method, path)
	}

	return nil
}

func (c *Client) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, c.logger)
}

func decodeUpstreamError(status int, raw []byte) error {
	var body errorBody
	if err := json.Unmarshal(raw, &body); err != nil {
		body.Message = strings.TrimSpace(string(raw))
	}

	message, code := body.Message, body.Code
	if len(body.Error) > 0 {
		var text string
		var detail errorDetail
		switch {
		case json.Unmarshal(body.Error, &text) == nil:
			if message == "" {
				message = text
			}
		case json.Unmarshal(body.Error, &detail) == nil:
			if code == "" {
				code = detail.Code
			}
			if message == "" {
				message = detail.Details
			}
		}
	}
	if message == "" {
		message = http.StatusText(status)
	}

	return &domainerrors.UpstreamError{
		Status:  status,
		Code:    code,
		Msg:     message,
		Payload: body.Data,
	}
}
