// Package usecase contains the application-specific business rules.
package usecase

import (
	"context"

	"verdant/internal/domain/entity"

	"github.com/google/uuid"
)

// RegisterDeviceInput defines the data required to register a push device.
type RegisterDeviceInput struct {
	UserID   uuid.UUID
	FCMToken string
	Platform string
}

// DeviceUsecase defines the interface for device registration operations.
type DeviceUsecase interface {
	RegisterDevice(ctx context.Context, input *RegisterDeviceInput) (*entity.UserDevice, error)
	RemoveDevice(ctx context.Context, deviceID, userID uuid.UUID) error
}
