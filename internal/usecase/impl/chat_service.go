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

// chatService implements the ChatUsecase interface.
type chatService struct {
	chatRepo repository.ChatRepository
	logger   *slog.Logger
}

// ChatServiceParams holds dependencies for ChatService, injected by Fx.
type ChatServiceParams struct {
	fx.In

	ChatRepo repository.ChatRepository
	Logger   *slog.Logger
}

// NewChatService is the constructor for chatService.
func NewChatService(params ChatServiceParams) usecase.ChatUsecase {
	return &chatService{
		chatRepo: params.ChatRepo,
		logger:   params.Logger,
	}
}

func (srv *chatService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// ListThreads returns every thread the user participates in.
func (srv *chatService) ListThreads(ctx context.Context, userID uuid.UUID) ([]*repository.ThreadPreview, error) {
	previews, err := srv.chatRepo.FindThreadsByUser(ctx, userID)
	if err != nil {
		srv.log(ctx).Error("Failed to list chat threads", slog.Any("userID", userID), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to list chat threads")
	}

	return previews, nil
}

// GetThread returns a thread and its messages for a participant.
func (srv *chatService) GetThread(ctx context.Context, threadID, userID uuid.UUID) (*usecase.ThreadDetail, error) {
	thread, err := srv.loadParticipantThread(ctx, threadID, userID)
	if err != nil {
		return nil, err
	}

	messages, err := srv.chatRepo.FindMessagesByThread(ctx, threadID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load thread messages")
	}

	return &usecase.ThreadDetail{
		Thread:   thread,
		Messages: messages,
	}, nil
}

// SendMessage appends a user message to a thread the sender participates in.
func (srv *chatService) SendMessage(ctx context.Context, input *usecase.SendMessageInput) (*entity.ChatMessage, error) {
	if strings.TrimSpace(input.Body) == "" {
		return nil, errors.Wrap(domainerrors.ErrValidationFailed, "message body is empty")
	}

	if _, err := srv.loadParticipantThread(ctx, input.ThreadID, input.SenderID); err != nil {
		return nil, err
	}

	message := &entity.ChatMessage{
		ThreadID: input.ThreadID,
		SenderID: input.SenderID,
		Kind:     entity.MessageKindUser,
		Body:     input.Body,
	}

	if err := srv.chatRepo.CreateMessage(ctx, message); err != nil {
		srv.log(ctx).Error("Failed to send chat message", slog.Any("threadID", input.ThreadID), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to send chat message")
	}

	return message, nil
}

// ClearMessages removes all messages from a thread for a participant.
func (srv *chatService) ClearMessages(ctx context.Context, threadID, userID uuid.UUID) error {
	if _, err := srv.loadParticipantThread(ctx, threadID, userID); err != nil {
		return err
	}

	if err := srv.chatRepo.DeleteMessagesByThread(ctx, threadID); err != nil {
		srv.log(ctx).Error("Failed to clear chat messages", slog.Any("threadID", threadID), slog.Any("error", err))

		return errors.Wrap(err, "failed to clear chat messages")
	}

	srv.log(ctx).Info("Cleared chat messages", slog.Any("threadID", threadID), slog.Any("userID", userID))

	return nil
}

func (srv *chatService) loadParticipantThread(ctx context.Context, threadID, userID uuid.UUID) (*entity.ChatThread, error) {
	thread, err := srv.chatRepo.FindThreadByID(ctx, threadID)
	if err != nil {
		if errors.Is(err, repository.ErrChatThreadNotFound) {
			return nil, errors.Wrap(domainerrors.ErrChatThreadNotFound, "thread lookup failed")
		}

		return nil, errors.Wrap(err, "failed to find chat thread by id")
	}

	if !thread.Participant(userID) {
		return nil, errors.Wrap(domainerrors.ErrChatAccessViolation, "caller is not a thread participant")
	}

	return thread, nil
}
