package impl

import (
	"context"
	"testing"
	"time"

	"verdant/internal/domain/constants"
	"verdant/internal/domain/entity"
	mockRepo "verdant/internal/mocks/repository"
	mockSvc "verdant/internal/mocks/service"
	"verdant/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// pushServiceFixtures holds all test dependencies for push service tests.
type pushServiceFixtures struct {
	service          usecase.NotificationUsecase
	deviceRepo       *mockRepo.MockDeviceRepository
	notificationRepo *mockRepo.MockNotificationRepository
	notificationSvc  *mockSvc.MockNotificationService
}

func createTestPushService(t *testing.T) pushServiceFixtures {
	deviceRepo := mockRepo.NewMockDeviceRepository(t)
	notificationRepo := mockRepo.NewMockNotificationRepository(t)
	notificationSvc := mockSvc.NewMockNotificationService(t)

	srv := NewPushService(PushServiceParams{
		DeviceRepo:       deviceRepo,
		NotificationRepo: notificationRepo,
		NotificationSvc:  notificationSvc,
		Logger:           newTestLogger(),
	})

	return pushServiceFixtures{
		service:          srv,
		deviceRepo:       deviceRepo,
		notificationRepo: notificationRepo,
		notificationSvc:  notificationSvc,
	}
}

func bidPlacedEvent(recipientID uuid.UUID) *entity.MarketEvent {
	return &entity.MarketEvent{
		ID:          uuid.New(),
		Type:        constants.EventBidPlaced,
		BidID:       uuid.New(),
		ProductID:   uuid.New(),
		ProductName: "Monstera Deliciosa",
		ActorID:     uuid.New(),
		RecipientID: recipientID,
		Amount:      750,
		OccurredAt:  time.Now(),
	}
}

func TestPushService_ProcessMarketEvent_NoActiveDevices(t *testing.T) {
	fx := createTestPushService(t)

	ctx := context.Background()
	recipientID := uuid.New()

	fx.deviceRepo.EXPECT().
		FindActiveDevicesByUser(ctx, recipientID).
		Return([]*entity.UserDevice{}, nil)

	result, err := fx.service.ProcessMarketEvent(ctx, bidPlacedEvent(recipientID))
	require.NoError(t, err)
	assert.Equal(t, 0, result.SuccessCount)
	assert.Equal(t, 0, result.FailureCount)
}

func TestPushService_ProcessMarketEvent_Success(t *testing.T) {
	fx := createTestPushService(t)

	ctx := context.Background()
	recipientID := uuid.New()
	event := bidPlacedEvent(recipientID)

	devices := []*entity.UserDevice{
		{ID: uuid.New(), UserID: recipientID, FCMToken: "token-a", Platform: "android", Active: true},
		{ID: uuid.New(), UserID: recipientID, FCMToken: "token-b", Platform: "ios", Active: true},
	}

	fx.deviceRepo.EXPECT().
		FindActiveDevicesByUser(ctx, recipientID).
		Return(devices, nil)

	fx.notificationSvc.EXPECT().
		SendBatchNotification(ctx, []string{"token-a", "token-b"}, "New bid received", "₹750.00 offered for Monstera Deliciosa", map[string]string{
			"event_type": constants.EventBidPlaced,
			"bid_id":     event.BidID.String(),
			"product_id": event.ProductID.String(),
		}).
		Return(2, 0, nil, nil)

	fx.notificationRepo.EXPECT().
		CreateLogs(ctx, mock.MatchedBy(func(logs []*entity.NotificationLog) bool {
			if len(logs) != 2 {
				return false
			}
			for _, log := range logs {
				if log.EventID != event.ID || log.Status != "sent" {
					return false
				}
			}

			return true
		})).
		Return(nil)

	result, err := fx.service.ProcessMarketEvent(ctx, event)
	require.NoError(t, err)
	assert.Equal(t, 2, result.SuccessCount)
	assert.Equal(t, 0, result.FailureCount)
}

func TestPushService_ProcessMarketEvent_InvalidTokensDeactivated(t *testing.T) {
	fx := createTestPushService(t)

	ctx := context.Background()
	recipientID := uuid.New()
	event := bidPlacedEvent(recipientID)

	staleDevice := &entity.UserDevice{ID: uuid.New(), UserID: recipientID, FCMToken: "token-stale", Active: true}
	liveDevice := &entity.UserDevice{ID: uuid.New(), UserID: recipientID, FCMToken: "token-live", Active: true}

	fx.deviceRepo.EXPECT().
		FindActiveDevicesByUser(ctx, recipientID).
		Return([]*entity.UserDevice{staleDevice, liveDevice}, nil)

	fx.notificationSvc.EXPECT().
		SendBatchNotification(ctx, []string{"token-stale", "token-live"}, mock.Anything, mock.Anything, mock.Anything).
		Return(1, 1, []string{"token-stale"}, nil)

	fx.notificationRepo.EXPECT().
		CreateLogs(ctx, mock.MatchedBy(func(logs []*entity.NotificationLog) bool {
			if len(logs) != 2 {
				return false
			}
			for _, log := range logs {
				if log.DeviceID == staleDevice.ID {
					if log.Status != "failed" || log.ErrorMessage == "" {
						return false
					}
				} else if log.Status != "sent" {
					return false
				}
			}

			return true
		})).
		Return(nil)

	fx.deviceRepo.EXPECT().
		DeactivateDeviceByToken(ctx, "token-stale").
		Return(nil)

	result, err := fx.service.ProcessMarketEvent(ctx, event)
	require.NoError(t, err)
	assert.Equal(t, 1, result.SuccessCount)
	assert.Equal(t, 1, result.FailureCount)
}

func TestPushService_ProcessMarketEvent_TransportFailureIsRetryable(t *testing.T) {
	fx := createTestPushService(t)

	ctx := context.Background()
	recipientID := uuid.New()

	fx.deviceRepo.EXPECT().
		FindActiveDevicesByUser(ctx, recipientID).
		Return([]*entity.UserDevice{
			{ID: uuid.New(), UserID: recipientID, FCMToken: "token-a", Active: true},
		}, nil)

	fx.notificationSvc.EXPECT().
		SendBatchNotification(ctx, []string{"token-a"}, mock.Anything, mock.Anything, mock.Anything).
		Return(0, 0, nil, errors.New("fcm unreachable"))

	result, err := fx.service.ProcessMarketEvent(ctx, bidPlacedEvent(recipientID))
	assert.Nil(t, result)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to send notification batch")
}

func TestPushService_ProcessMarketEvent_LogFailureDoesNotFailDelivery(t *testing.T) {
	fx := createTestPushService(t)

	ctx := context.Background()
	recipientID := uuid.New()

	fx.deviceRepo.EXPECT().
		FindActiveDevicesByUser(ctx, recipientID).
		Return([]*entity.UserDevice{
			{ID: uuid.New(), UserID: recipientID, FCMToken: "token-a", Active: true},
		}, nil)

	fx.notificationSvc.EXPECT().
		SendBatchNotification(ctx, []string{"token-a"}, mock.Anything, mock.Anything, mock.Anything).
		Return(1, 0, nil, nil)

	fx.notificationRepo.EXPECT().
		CreateLogs(ctx, mock.Anything).
		Return(errors.New("insert failed"))

	result, err := fx.service.ProcessMarketEvent(ctx, bidPlacedEvent(recipientID))
	require.NoError(t, err)
	assert.Equal(t, 1, result.SuccessCount)
}

func TestPushService_NotificationContent_PerEventType(t *testing.T) {
	event := &entity.MarketEvent{
		Type:        constants.EventPaymentCompleted,
		ProductName: "Bonsai",
		Amount:      2500,
	}

	title, body := notificationContent(event)
	assert.Equal(t, "Payment received", title)
	assert.Equal(t, "₹2500.00 received for Bonsai. The sale is complete.", body)

	event.Type = constants.EventBidAccepted
	title, body = notificationContent(event)
	assert.Equal(t, "Settlement accepted", title)
	assert.Contains(t, body, "Bonsai")

	event.Type = "something_else"
	title, body = notificationContent(event)
	assert.Equal(t, "NurseryHub", title)
	assert.Equal(t, "Bonsai", body)
}
