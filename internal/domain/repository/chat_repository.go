// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"

	"verdant/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// ErrChatThreadNotFound is returned when a chat thread is not found.
var ErrChatThreadNotFound = errors.New("chat thread not found")

// ThreadPreview pairs a thread with its most recent message for list views.
type ThreadPreview struct {
	Thread      *entity.ChatThread
	LastMessage *entity.ChatMessage // nil for threads with no messages yet
}

// ChatRepository defines the interface for chat-related database operations.
type ChatRepository interface {
	// CreateThread persists a new chat thread.
	CreateThread(ctx context.Context, thread *entity.ChatThread) error

	// FindThreadByID retrieves a thread by its unique ID.
	FindThreadByID(ctx context.Context, id uuid.UUID) (*entity.ChatThread, error)

	// FindThreadByBid retrieves the thread opened for a bid, if any.
	FindThreadByBid(ctx context.Context, bidID uuid.UUID) (*entity.ChatThread, error)

	// FindThreadsByUser retrieves every thread the user participates in,
	// most recently active first, each with its last message.
	FindThreadsByUser(ctx context.Context, userID uuid.UUID) ([]*ThreadPreview, error)

	// CreateMessage appends a message to a thread and touches the thread's
	// activity timestamp.
	CreateMessage(ctx context.Context, message *entity.ChatMessage) error

	// FindMessagesByThread retrieves a thread's messages, oldest first.
	FindMessagesByThread(ctx context.Context, threadID uuid.UUID) ([]*entity.ChatMessage, error)

	// DeleteMessagesByThread removes every message in a thread.
	DeleteMessagesByThread(ctx context.Context, threadID uuid.UUID) error
}
