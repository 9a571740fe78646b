// Package entity contains the core business objects of the project.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// MarketEvent is a marketplace occurrence published on the event bus and
// pushed to user devices. It replaces client-side polling for bid and payment
// updates.
type MarketEvent struct {
	ID          uuid.UUID `json:"id"`           // The Global Unique Identifier (GUID) for the event.
	Type        string    `json:"type"`         // Event type, e.g., "bid_placed" (see constants package).
	BidID       uuid.UUID `json:"bid_id"`       // The bid the event concerns.
	ProductID   uuid.UUID `json:"product_id"`   // The product the event concerns.
	ProductName string    `json:"product_name"` // Denormalized product name for notification bodies.
	ActorID     uuid.UUID `json:"actor_id"`     // The user whose action produced the event.
	RecipientID uuid.UUID `json:"recipient_id"` // The user whose devices should be notified.
	Amount      float64   `json:"amount"`       // The bid or payment amount involved.
	OccurredAt  time.Time `json:"occurred_at"`  // Timestamp of when the event happened.
}

// NotificationLog represents a log entry for a single notification sent to a user device.
type NotificationLog struct {
	ID           uuid.UUID `json:"id"`             // The Global Unique Identifier (GUID) for the log entry.
	EventID      uuid.UUID `json:"event_id"`       // The market event this log belongs to.
	UserID       uuid.UUID `json:"user_id"`        // The ID of the user who received the notification.
	DeviceID     uuid.UUID `json:"device_id"`      // The ID of the device that received the notification.
	Status       string    `json:"status"`         // The status of the notification (sent, failed).
	FCMMessageID string    `json:"fcm_message_id"` // The Firebase Cloud Messaging message ID.
	ErrorMessage string    `json:"error_message"`  // Error message if the notification failed.
	SentAt       time.Time `json:"sent_at"`        // Timestamp of when the notification was sent.
}
