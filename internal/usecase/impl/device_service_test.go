package impl

import (
	"context"
	"testing"

	"verdant/internal/domain/entity"
	domainerrors "verdant/internal/domain/errors"
	"verdant/internal/domain/repository"
	mockRepo "verdant/internal/mocks/repository"
	"verdant/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// deviceServiceFixtures holds all test dependencies for device service tests.
type deviceServiceFixtures struct {
	service    usecase.DeviceUsecase
	deviceRepo *mockRepo.MockDeviceRepository
}

func createTestDeviceService(t *testing.T) deviceServiceFixtures {
	deviceRepo := mockRepo.NewMockDeviceRepository(t)

	srv := NewDeviceService(DeviceServiceParams{
		DeviceRepo: deviceRepo,
		Logger:     newTestLogger(),
	})

	return deviceServiceFixtures{
		service:    srv,
		deviceRepo: deviceRepo,
	}
}

func TestDeviceService_RegisterDevice_Success(t *testing.T) {
	fx := createTestDeviceService(t)

	ctx := context.Background()
	userID := uuid.New()

	fx.deviceRepo.EXPECT().
		CreateDevice(ctx, mock.AnythingOfType("*entity.UserDevice")).
		Return(nil)

	device, err := fx.service.RegisterDevice(ctx, &usecase.RegisterDeviceInput{
		UserID:   userID,
		FCMToken: "fcm-token-123",
		Platform: "android",
	})
	require.NoError(t, err)
	assert.Equal(t, userID, device.UserID)
	assert.Equal(t, "fcm-token-123", device.FCMToken)
	assert.Equal(t, "android", device.Platform)
	assert.True(t, device.Active)
}

func TestDeviceService_RegisterDevice_EmptyToken(t *testing.T) {
	fx := createTestDeviceService(t)

	ctx := context.Background()

	device, err := fx.service.RegisterDevice(ctx, &usecase.RegisterDeviceInput{
		UserID:   uuid.New(),
		FCMToken: "   ",
		Platform: "web",
	})
	assert.Nil(t, device)
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}

func TestDeviceService_RemoveDevice_Success(t *testing.T) {
	fx := createTestDeviceService(t)

	ctx := context.Background()
	deviceID := uuid.New()
	userID := uuid.New()

	fx.deviceRepo.EXPECT().
		FindDeviceByID(ctx, deviceID).
		Return(&entity.UserDevice{ID: deviceID, UserID: userID}, nil)

	fx.deviceRepo.EXPECT().
		DeleteDevice(ctx, deviceID).
		Return(nil)

	err := fx.service.RemoveDevice(ctx, deviceID, userID)
	assert.NoError(t, err)
}

func TestDeviceService_RemoveDevice_NotOwner(t *testing.T) {
	fx := createTestDeviceService(t)

	ctx := context.Background()
	deviceID := uuid.New()

	fx.deviceRepo.EXPECT().
		FindDeviceByID(ctx, deviceID).
		Return(&entity.UserDevice{ID: deviceID, UserID: uuid.New()}, nil)

	err := fx.service.RemoveDevice(ctx, deviceID, uuid.New())
	assert.ErrorIs(t, err, domainerrors.ErrForbidden)
}

func TestDeviceService_RemoveDevice_NotFound(t *testing.T) {
	fx := createTestDeviceService(t)

	ctx := context.Background()
	deviceID := uuid.New()

	fx.deviceRepo.EXPECT().
		FindDeviceByID(ctx, deviceID).
		Return(nil, repository.ErrDeviceNotFound)

	err := fx.service.RemoveDevice(ctx, deviceID, uuid.New())
	assert.ErrorIs(t, err, domainerrors.ErrDeviceNotFound)
}
