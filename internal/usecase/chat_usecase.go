// Package usecase contains the application-specific business rules.
package usecase

import (
	"context"

	"verdant/internal/domain/entity"
	"verdant/internal/domain/repository"

	"github.com/google/uuid"
)

// SendMessageInput defines the data required to send a chat message.
type SendMessageInput struct {
	ThreadID uuid.UUID
	SenderID uuid.UUID
	Body     string
}

// ThreadDetail is a thread together with its ordered messages.
type ThreadDetail struct {
	Thread   *entity.ChatThread
	Messages []*entity.ChatMessage
}

// ChatUsecase defines the interface for chat-related business operations.
type ChatUsecase interface {
	// ListThreads returns every thread the user participates in, most
	// recently active first, with last-message previews.
	ListThreads(ctx context.Context, userID uuid.UUID) ([]*repository.ThreadPreview, error)

	// GetThread returns a thread and its messages for a participant.
	GetThread(ctx context.Context, threadID, userID uuid.UUID) (*ThreadDetail, error)

	// SendMessage appends a user message to a thread the sender participates in.
	SendMessage(ctx context.Context, input *SendMessageInput) (*entity.ChatMessage, error)

	// ClearMessages removes all messages from a thread for a participant.
	ClearMessages(ctx context.Context, threadID, userID uuid.UUID) error
}
