// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"log/slog"
	"strings"

	deliverycontext "verdant/internal/delivery/context"
	"verdant/internal/domain/entity"
	domainerrors "verdant/internal/domain/errors"
	"verdant/internal/domain/repository"
	"verdant/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// deviceService implements the DeviceUsecase interface.
type deviceService struct {
	deviceRepo repository.DeviceRepository
	logger     *slog.Logger
}

// DeviceServiceParams holds dependencies for DeviceService, injected by Fx.
type DeviceServiceParams struct {
	fx.In

	DeviceRepo repository.DeviceRepository
	Logger     *slog.Logger
}

// NewDeviceService is the constructor for deviceService.
func NewDeviceService(params DeviceServiceParams) usecase.DeviceUsecase {
	return &deviceService{
		deviceRepo: params.DeviceRepo,
		logger:     params.Logger,
	}
}

func (srv *deviceService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// RegisterDevice registers an FCM token for push delivery.
func (srv *deviceService) RegisterDevice(ctx context.Context, input *usecase.RegisterDeviceInput) (*entity.UserDevice, error) {
	if strings.TrimSpace(input.FCMToken) == "" {
		return nil, errors.Wrap(domainerrors.ErrValidationFailed, "FCM token is empty")
	}

	device := &entity.UserDevice{
		UserID:   input.UserID,
		FCMToken: input.FCMToken,
		Platform: input.Platform,
		Active:   true,
	}

	if err := srv.deviceRepo.CreateDevice(ctx, device); err != nil {
		srv.log(ctx).Error("Failed to register device", slog.Any("userID", input.UserID), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to register device")
	}

	srv.log(ctx).Info("Registered device", slog.Any("userID", input.UserID), slog.Any("deviceID", device.ID))

	return device, nil
}

// RemoveDevice deletes a device registration owned by the caller.
func (srv *deviceService) RemoveDevice(ctx context.Context, deviceID, userID uuid.UUID) error {
	device, err := srv.deviceRepo.FindDeviceByID(ctx, deviceID)
	if err != nil {
		if errors.Is(err, repository.ErrDeviceNotFound) {
			return errors.Wrap(domainerrors.ErrDeviceNotFound, "device lookup failed")
		}

		return errors.Wrap(err, "failed to find device by id")
	}

	if device.UserID != userID {
		return errors.Wrap(domainerrors.ErrForbidden, "device does not belong to caller")
	}

	if err := srv.deviceRepo.DeleteDevice(ctx, deviceID); err != nil {
		return errors.Wrap(err, "failed to delete device")
	}

	return nil
}
