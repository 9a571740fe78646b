// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"

	"verdant/internal/domain/entity"

	"github.com/google/uuid"
)

// NotificationRepository defines the interface for notification log persistence.
type NotificationRepository interface {
	// CreateLogs persists delivery log entries for a fan-out batch.
	CreateLogs(ctx context.Context, logs []*entity.NotificationLog) error

	// FindLogsByUser retrieves a user's notification history, newest first.
	FindLogsByUser(ctx context.Context, userID uuid.UUID, limit int) ([]*entity.NotificationLog, error)
}
