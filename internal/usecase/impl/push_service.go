// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	deliverycontext "verdant/internal/delivery/context"
	"verdant/internal/domain/constants"
	"verdant/internal/domain/entity"
	"verdant/internal/domain/repository"
	"verdant/internal/domain/service"
	"verdant/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// Firebase multicast batch size limit.
const firebaseBatchSize = 500

// pushService implements the NotificationUsecase interface on the worker side.
type pushService struct {
	deviceRepo       repository.DeviceRepository
	notificationRepo repository.NotificationRepository
	notificationSvc  service.NotificationService
	logger           *slog.Logger
}

// PushServiceParams holds dependencies for PushService, injected by Fx.
type PushServiceParams struct {
	fx.In

	DeviceRepo       repository.DeviceRepository
	NotificationRepo repository.NotificationRepository
	NotificationSvc  service.NotificationService
	Logger           *slog.Logger
}

// NewPushService is the constructor for pushService.
func NewPushService(params PushServiceParams) usecase.NotificationUsecase {
	return &pushService{
		deviceRepo:       params.DeviceRepo,
		notificationRepo: params.NotificationRepo,
		notificationSvc:  params.NotificationSvc,
		logger:           params.Logger,
	}
}

func (srv *pushService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// ProcessMarketEvent fans a market event out to the recipient's active devices.
func (srv *pushService) ProcessMarketEvent(ctx context.Context, event *entity.MarketEvent) (*usecase.PushResult, error) {
	srv.log(ctx).Info("Processing market event", slog.String("type", event.Type), slog.Any("recipientID", event.RecipientID))

	devices, err := srv.deviceRepo.FindActiveDevicesByUser(ctx, event.RecipientID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load recipient devices")
	}

	if len(devices) == 0 {
		srv.log(ctx).Debug("Recipient has no active devices", slog.Any("recipientID", event.RecipientID))

		return &usecase.PushResult{}, nil
	}

	tokens := make([]string, 0, len(devices))
	deviceByToken := make(map[string]*entity.UserDevice, len(devices))
	for _, device := range devices {
		tokens = append(tokens, device.FCMToken)
		deviceByToken[device.FCMToken] = device
	}

	title, body := notificationContent(event)
	data := map[string]string{
		"event_type": event.Type,
		"bid_id":     event.BidID.String(),
		"product_id": event.ProductID.String(),
	}

	result := &usecase.PushResult{}
	var invalidTokens []string
	var logs []*entity.NotificationLog

	for i := 0; i < len(tokens); i += firebaseBatchSize {
		end := min(i+firebaseBatchSize, len(tokens))
		batch := tokens[i:end]

		successCount, failureCount, batchInvalid, err := srv.notificationSvc.SendBatchNotification(ctx, batch, title, body, data)
		if err != nil {
			// A transport-level failure is retryable by the queue.
			return nil, errors.Wrap(err, "failed to send notification batch")
		}

		result.SuccessCount += successCount
		result.FailureCount += failureCount
		invalidTokens = append(invalidTokens, batchInvalid...)

		logs = append(logs, buildDeliveryLogs(event, batch, batchInvalid, deviceByToken)...)
	}

	if len(logs) > 0 {
		if err := srv.notificationRepo.CreateLogs(ctx, logs); err != nil {
			// Delivery already happened; a missing log line is not worth a redelivery.
			srv.log(ctx).Warn("Failed to write notification logs", slog.Any("error", err))
		}
	}

	for _, token := range invalidTokens {
		if err := srv.deviceRepo.DeactivateDeviceByToken(ctx, token); err != nil {
			srv.log(ctx).Warn("Failed to deactivate invalid device token", slog.Any("error", err))
		}
	}

	srv.log(ctx).Info("Processed market event",
		slog.String("type", event.Type),
		slog.Int("sent", result.SuccessCount),
		slog.Int("failed", result.FailureCount))

	return result, nil
}

func notificationContent(event *entity.MarketEvent) (title, body string) {
	switch event.Type {
	case constants.EventBidPlaced:
		return "New bid received", fmt.Sprintf("₹%.2f offered for %s", event.Amount, event.ProductName)
	case constants.EventBidAccepted:
		return "Settlement accepted", fmt.Sprintf("The seller accepted your bid on %s. Complete the payment from your chat.", event.ProductName)
	case constants.EventPaymentCompleted:
		return "Payment received", fmt.Sprintf("₹%.2f received for %s. The sale is complete.", event.Amount, event.ProductName)
	default:
		return "NurseryHub", event.ProductName
	}
}

func buildDeliveryLogs(event *entity.MarketEvent, batch, invalid []string, deviceByToken map[string]*entity.UserDevice) []*entity.NotificationLog {
	invalidSet := make(map[string]struct{}, len(invalid))
	for _, token := range invalid {
		invalidSet[token] = struct{}{}
	}

	logs := make([]*entity.NotificationLog, 0, len(batch))
	for _, token := range batch {
		device, ok := deviceByToken[token]
		if !ok {
			continue
		}

		status := "sent"
		errorMsg := ""
		if _, bad := invalidSet[token]; bad {
			status = "failed"
			errorMsg = "invalid or unregistered token"
		}

		logs = append(logs, &entity.NotificationLog{
			ID:           uuid.New(),
			EventID:      event.ID,
			UserID:       device.UserID,
			DeviceID:     device.ID,
			Status:       status,
			ErrorMessage: errorMsg,
			SentAt:       time.Now(),
		})
	}

	return logs
}
