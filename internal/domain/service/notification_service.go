package service

import (
	"context"
)

// NotificationService abstracts the push provider used to reach user devices.
type NotificationService interface {
	// SendBatchNotification delivers one message to many device tokens and
	// reports success/failure counts plus the tokens the provider rejected
	// as invalid, so callers can deactivate them.
	SendBatchNotification(ctx context.Context, tokens []string, title, body string, data map[string]string) (successCount, failureCount int, invalidTokens []string, err error)

	// SendSingleNotification delivers one message to one device token.
	SendSingleNotification(ctx context.Context, token, title, body string, data map[string]string) error
}
