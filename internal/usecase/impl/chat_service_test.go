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

// chatServiceFixtures holds all test dependencies for chat service tests.
type chatServiceFixtures struct {
	service  usecase.ChatUsecase
	chatRepo *mockRepo.MockChatRepository
}

func createTestChatService(t *testing.T) chatServiceFixtures {
	chatRepo := mockRepo.NewMockChatRepository(t)

	srv := NewChatService(ChatServiceParams{
		ChatRepo: chatRepo,
		Logger:   newTestLogger(),
	})

	return chatServiceFixtures{
		service:  srv,
		chatRepo: chatRepo,
	}
}

func TestChatService_ListThreads_Success(t *testing.T) {
	fx := createTestChatService(t)

	ctx := context.Background()
	userID := uuid.New()

	previews := []*repository.ThreadPreview{
		{
			Thread:      &entity.ChatThread{ID: uuid.New(), BuyerID: userID},
			LastMessage: &entity.ChatMessage{Body: "Is this still available?"},
		},
		{
			// A freshly opened thread has no messages yet.
			Thread: &entity.ChatThread{ID: uuid.New(), SellerID: userID},
		},
	}

	fx.chatRepo.EXPECT().
		FindThreadsByUser(ctx, userID).
		Return(previews, nil)

	got, err := fx.service.ListThreads(ctx, userID)
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Nil(t, got[1].LastMessage)
}

func TestChatService_GetThread_Success(t *testing.T) {
	fx := createTestChatService(t)

	ctx := context.Background()
	threadID := uuid.New()
	buyerID := uuid.New()

	thread := &entity.ChatThread{
		ID:       threadID,
		BuyerID:  buyerID,
		SellerID: uuid.New(),
	}
	messages := []*entity.ChatMessage{
		{ThreadID: threadID, SenderID: buyerID, Kind: entity.MessageKindUser, Body: "Hello"},
		{ThreadID: threadID, Kind: entity.MessageKindAuto, Body: "Settlement accepted"},
	}

	fx.chatRepo.EXPECT().
		FindThreadByID(ctx, threadID).
		Return(thread, nil)

	fx.chatRepo.EXPECT().
		FindMessagesByThread(ctx, threadID).
		Return(messages, nil)

	detail, err := fx.service.GetThread(ctx, threadID, buyerID)
	require.NoError(t, err)
	assert.Equal(t, thread, detail.Thread)
	assert.Len(t, detail.Messages, 2)
}

func TestChatService_GetThread_NotParticipant(t *testing.T) {
	fx := createTestChatService(t)

	ctx := context.Background()
	threadID := uuid.New()

	fx.chatRepo.EXPECT().
		FindThreadByID(ctx, threadID).
		Return(&entity.ChatThread{ID: threadID, BuyerID: uuid.New(), SellerID: uuid.New()}, nil)

	detail, err := fx.service.GetThread(ctx, threadID, uuid.New())
	assert.Nil(t, detail)
	assert.ErrorIs(t, err, domainerrors.ErrChatAccessViolation)
}

func TestChatService_GetThread_NotFound(t *testing.T) {
	fx := createTestChatService(t)

	ctx := context.Background()
	threadID := uuid.New()

	fx.chatRepo.EXPECT().
		FindThreadByID(ctx, threadID).
		Return(nil, repository.ErrChatThreadNotFound)

	detail, err := fx.service.GetThread(ctx, threadID, uuid.New())
	assert.Nil(t, detail)
	assert.ErrorIs(t, err, domainerrors.ErrChatThreadNotFound)
}

func TestChatService_SendMessage_Success(t *testing.T) {
	fx := createTestChatService(t)

	ctx := context.Background()
	threadID := uuid.New()
	sellerID := uuid.New()

	fx.chatRepo.EXPECT().
		FindThreadByID(ctx, threadID).
		Return(&entity.ChatThread{ID: threadID, BuyerID: uuid.New(), SellerID: sellerID}, nil)

	fx.chatRepo.EXPECT().
		CreateMessage(ctx, mock.AnythingOfType("*entity.ChatMessage")).
		Return(nil)

	message, err := fx.service.SendMessage(ctx, &usecase.SendMessageInput{
		ThreadID: threadID,
		SenderID: sellerID,
		Body:     "I can ship on Friday.",
	})
	require.NoError(t, err)
	assert.Equal(t, threadID, message.ThreadID)
	assert.Equal(t, sellerID, message.SenderID)
	assert.Equal(t, entity.MessageKindUser, message.Kind)
	assert.Nil(t, message.Action)
}

func TestChatService_SendMessage_EmptyBody(t *testing.T) {
	fx := createTestChatService(t)

	ctx := context.Background()

	message, err := fx.service.SendMessage(ctx, &usecase.SendMessageInput{
		ThreadID: uuid.New(),
		SenderID: uuid.New(),
		Body:     "   ",
	})
	assert.Nil(t, message)
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}

func TestChatService_SendMessage_NotParticipant(t *testing.T) {
	fx := createTestChatService(t)

	ctx := context.Background()
	threadID := uuid.New()

	fx.chatRepo.EXPECT().
		FindThreadByID(ctx, threadID).
		Return(&entity.ChatThread{ID: threadID, BuyerID: uuid.New(), SellerID: uuid.New()}, nil)

	message, err := fx.service.SendMessage(ctx, &usecase.SendMessageInput{
		ThreadID: threadID,
		SenderID: uuid.New(),
		Body:     "Hello",
	})
	assert.Nil(t, message)
	assert.ErrorIs(t, err, domainerrors.ErrChatAccessViolation)
}

func TestChatService_ClearMessages_Success(t *testing.T) {
	fx := createTestChatService(t)

	ctx := context.Background()
	threadID := uuid.New()
	buyerID := uuid.New()

	fx.chatRepo.EXPECT().
		FindThreadByID(ctx, threadID).
		Return(&entity.ChatThread{ID: threadID, BuyerID: buyerID, SellerID: uuid.New()}, nil)

	fx.chatRepo.EXPECT().
		DeleteMessagesByThread(ctx, threadID).
		Return(nil)

	err := fx.service.ClearMessages(ctx, threadID, buyerID)
	assert.NoError(t, err)
}

func TestChatService_ClearMessages_NotParticipant(t *testing.T) {
	fx := createTestChatService(t)

	ctx := context.Background()
	threadID := uuid.New()

	fx.chatRepo.EXPECT().
		FindThreadByID(ctx, threadID).
		Return(&entity.ChatThread{ID: threadID, BuyerID: uuid.New(), SellerID: uuid.New()}, nil)

	err := fx.service.ClearMessages(ctx, threadID, uuid.New())
	assert.ErrorIs(t, err, domainerrors.ErrChatAccessViolation)
}
