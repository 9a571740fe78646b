// Package usecase contains the application-specific business rules.
package usecase

import (
	"context"

	"verdant/internal/domain/entity"
)

// PushResult summarizes one fan-out of a market event to a user's devices.
type PushResult struct {
	SuccessCount int
	FailureCount int
}

// NotificationUsecase defines the worker-side processing of market events.
type NotificationUsecase interface {
	// ProcessMarketEvent resolves the recipient's active devices, pushes the
	// event to them via FCM, deactivates invalid tokens and records delivery
	// logs. A transient push failure is returned as a retryable error so the
	// queue redelivers.
	ProcessMarketEvent(ctx context.Context, event *entity.MarketEvent) (*PushResult, error)
}
