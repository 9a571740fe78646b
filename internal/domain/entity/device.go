// Package entity contains the core business objects of the project.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// UserDevice is an FCM registration for one of a user's devices. Marketplace
// events fan out to every active device of the recipient.
type UserDevice struct {
	ID        uuid.UUID // The Global Unique Identifier (GUID) for the device record.
	UserID    uuid.UUID // The user this device belongs to.
	FCMToken  string    // The Firebase Cloud Messaging registration token.
	Platform  string    // "web", "android" or "ios".
	Active    bool      // Cleared when FCM reports the token as invalid.
	CreatedAt time.Time // Timestamp of when the device was registered.
	UpdatedAt time.Time // Timestamp of the last modification.
}
