package service

import (
	"context"

	"verdant/internal/domain/entity"
)

// EventPublisher defines the interface for publishing marketplace events to a
// message queue. The notifier worker consumes them and pushes to user devices.
type EventPublisher interface {
	// PublishMarketEvent publishes a marketplace event for async processing.
	PublishMarketEvent(ctx context.Context, event *entity.MarketEvent) error

	// Close releases any resources held by the publisher
	Close() error
}
