package service

import (
	"context"

	"portal/internal/domain/entity"
)

// StatusEventPublisher defines the interface for publishing entity status changes to a message queue
type StatusEventPublisher interface {
	// PublishStatusChange publishes one change event
	PublishStatusChange(ctx context.Context, change *entity.StatusChange) error

	// Close releases any resources held by the publisher
	Close() error
}
