package middleware

import (
	"log/slog"
	"time"

	"portal/config"
	deliverycontext "portal/internal/delivery/context"

	"github.com/labstack/echo/v4"
)

// RequestObserver receives one call per served request.
type RequestObserver interface {
	ObserveHTTP(method, path string, status int, elapsed time.Duration)
}

// LoggerMiddleware logs requests and feeds the request observer
type LoggerMiddleware struct {
	logger   *slog.Logger
	debug    bool
	observer RequestObserver
}

// NewLoggerMiddleware creates a new logger middleware. observer may be nil.
func NewLoggerMiddleware(logger *slog.Logger, config *config.Config, observer RequestObserver) *LoggerMiddleware {
	return &LoggerMiddleware{
		logger:   logger,
		debug:    config.Env.Debug,
		observer: observer,
	}
}

// Handle processes request logging
func (m *LoggerMiddleware) Handle(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		start := time.Now()

		err := next(c)
		if err != nil {
			// Resolve the final status before it is logged.
			c.Error(err)
		}

		elapsed := time.Since(start)
		status := c.Response().Status
		if m.observer != nil {
			m.observer.ObserveHTTP(c.Request().Method, c.Path(), status, elapsed)
		}
		if m.debug || status >= 500 {
			m.logRequest(c, status, elapsed, err)
		}

		return nil
	}
}

func (m *LoggerMiddleware) logRequest(c echo.Context, status int, latency time.Duration, err error) {
	req := c.Request()

	fields := []slog.Attr{
		slog.String("method", req.Method),
		slog.String("uri", req.URL.Path),
		slog.String("route", c.Path()),
		slog.Int("status", status),
		slog.Duration("latency", latency),
		slog.String("remote_ip", c.RealIP()),
		slog.String("user_agent", req.UserAgent()),
	}
	if req.URL.RawQuery != "" {
		fields = append(fields, slog.String("query", req.URL.RawQuery))
	}
	if location := c.Response().Header().Get(echo.HeaderLocation); location != "" {
		fields = append(fields, slog.String("location", location))
	}
	if err != nil {
		fields = append(fields, slog.Any("error", err))
	}

	logLevel := slog.LevelInfo
	if status >= 400 {
		logLevel = slog.LevelWarn
	}
	if status >= 500 {
		logLevel = slog.LevelError
	}

	deliverycontext.GetLoggerOrDefault(req.Context(), m.logger).LogAttrs(req.Context(), logLevel, "HTTP Request", fields...)
}
