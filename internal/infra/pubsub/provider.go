package pubsub

import (
	"context"
	"log/slog"

	"portal/config"
	deliverycontext "portal/internal/delivery/context"
	"portal/internal/domain/entity"
	"portal/internal/domain/service"
	"portal/internal/errors"

	"go.uber.org/fx"
)

// logPublisher records changes in the log only
type logPublisher struct {
	logger *slog.Logger
}

func (p *logPublisher) PublishStatusChange(ctx context.Context, change *entity.StatusChange) error {
	deliverycontext.GetLoggerOrDefault(ctx, p.logger).Info("Entity status changed",
		slog.String("change_id", change.ID),
		slog.String("entity_type", string(change.EntityType)),
		slog.String("entity_id", change.EntityID),
		slog.String("old_status", string(change.OldStatus)),
		slog.String("new_status", string(change.NewStatus)),
	)

	return nil
}

func (p *logPublisher) Close() error {
	return nil
}

func changeAttributes(ctx context.Context, change *entity.StatusChange) map[string]string {
	attributes := map[string]string{
		"change_id":   change.ID,
		"entity_type": string(change.EntityType),
		"entity_id":   change.EntityID,
		"new_status":  string(change.NewStatus),
	}
	if requestID := deliverycontext.GetRequestIDFromContext(ctx); requestID != "" {
		attributes["request_id"] = requestID
	}

	return attributes
}

// PublisherParams holds dependencies for StatusEventPublisher, injected by Fx
type PublisherParams struct {
	fx.In

	Lc     fx.Lifecycle
	Config *config.Config
	Logger *slog.Logger
}

// NewStatusEventPublisher creates a StatusEventPublisher based on configuration
func NewStatusEventPublisher(params PublisherParams) (service.StatusEventPublisher, error) {
	cfg := params.Config.PubSub
	logger := params.Logger

	var publisher service.StatusEventPublisher

	switch cfg.Provider {
	case config.PubSubProviderLocal:
		logger.Info("Status changes are logged only")

		return &logPublisher{logger: logger}, nil

	case config.PubSubProviderHTTP:
		if cfg.Endpoint == "" {
			return nil, errors.New("endpoint is required for http provider")
		}
		logger.Info("Using HTTP push publisher for status changes",
			slog.String("endpoint", cfg.Endpoint),
		)

		publisher = NewLocalHTTPPublisher(cfg.Endpoint, logger)

	case config.PubSubProviderGoogle:
		if cfg.ProjectID == "" {
			return nil, errors.New("project ID is required for google provider")
		}
		if cfg.TopicID == "" {
			return nil, errors.New("topic ID is required for google provider")
		}

		var err error
		publisher, err = NewGooglePubSubPublisher(context.Background(), cfg.ProjectID, cfg.TopicID, logger)
		if err != nil {
			return nil, err
		}

	default:
		return nil, errors.Errorf("unknown pubsub provider: %s", cfg.Provider)
	}

	params.Lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			logger.Info("Closing StatusEventPublisher")

			return publisher.Close()
		},
	})

	return publisher, nil
}

// Module provides the Pub/Sub FX module
//
//nolint:gochecknoglobals
var Module = fx.Options(
	fx.Provide(NewStatusEventPublisher),
)
