// Package notification sends push notifications through Firebase Cloud
// Messaging.
package notification

import (
	"context"

	"verdant/internal/domain/service"

	firebase "firebase.google.com/go/v4"
	"firebase.google.com/go/v4/messaging"
	"github.com/pkg/errors"
	"google.golang.org/api/option"
)

// FCM rejects multicast requests above this many tokens.
const multicastLimit = 500

type firebaseService struct {
	client *messaging.Client
}

// NewFirebaseService builds the FCM client from a service-account
// credentials file.
func NewFirebaseService(ctx context.Context, credentialsPath string) (service.NotificationService, error) {
	app, err := firebase.NewApp(ctx, nil, option.WithCredentialsFile(credentialsPath))
	if err != nil {
		return nil, errors.Wrap(err, "failed to initialize Firebase app")
	}

	client, err := app.Messaging(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to get messaging client")
	}

	return &firebaseService{
		client: client,
	}, nil
}

func buildNotification(title, body string) *messaging.Notification {
	return &messaging.Notification{
		Title: title,
		Body:  body,
	}
}

// SendSingleNotification delivers one push message to one device token.
func (s *firebaseService) SendSingleNotification(ctx context.Context, token, title, body string, data map[string]string) error {
	_, err := s.client.Send(ctx, &messaging.Message{
		Token:        token,
		Notification: buildNotification(title, body),
		Data:         data,
	})
	if err != nil {
		return errors.Wrap(err, "failed to send notification")
	}

	return nil
}

// SendBatchNotification delivers one push message to up to 500 device tokens
// and reports per-token outcomes. Tokens FCM rejects as invalid or
// unregistered are returned so the caller can deactivate them.
func (s *firebaseService) SendBatchNotification(ctx context.Context, tokens []string, title, body string, data map[string]string) (successCount, failureCount int, invalidTokens []string, err error) {
	if len(tokens) == 0 {
		return 0, 0, nil, nil
	}
	if len(tokens) > multicastLimit {
		return 0, 0, nil, errors.Errorf("token count exceeds limit: %d (max %d)", len(tokens), multicastLimit)
	}

	response, err := s.client.SendEachForMulticast(ctx, &messaging.MulticastMessage{
		Tokens:       tokens,
		Notification: buildNotification(title, body),
		Data:         data,
	})
	if err != nil {
		return 0, 0, nil, errors.Wrap(err, "failed to send multicast notification")
	}

	invalidTokens = make([]string, 0)
	for idx, sendResponse := range response.Responses {
		if sendResponse.Error == nil {
			continue
		}
		if messaging.IsInvalidArgument(sendResponse.Error) || messaging.IsUnregistered(sendResponse.Error) {
			invalidTokens = append(invalidTokens, tokens[idx])
		}
	}

	return response.SuccessCount, response.FailureCount, invalidTokens, nil
}
