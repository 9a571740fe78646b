// Package postgres contains the concrete implementation of the persistence layer using GORM and PostgreSQL.
package postgres

import (
	"context"
	"encoding/json"

	"verdant/internal/domain/entity"
	domainerrors "verdant/internal/domain/errors"
	"verdant/internal/domain/repository"
	"verdant/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// chatRepository implements the repository.ChatRepository interface.
type chatRepository struct {
	db *gorm.DB
}

// NewChatRepository is the constructor for chatRepository.
func NewChatRepository(db *gorm.DB) repository.ChatRepository {
	return &chatRepository{
		db: db,
	}
}

// CreateThread persists a new chat thread.
func (repo *chatRepository) CreateThread(ctx context.Context, thread *entity.ChatThread) error {
	threadM := fromThreadDomain(thread)

	if err := repo.db.WithContext(ctx).Create(threadM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return domainerrors.ErrConflict.WrapMessage("thread already exists for this bid")
		}
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrBidNotFound.WrapMessage("invalid bid reference")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create chat thread")
	}

	thread.ID = threadM.ID
	thread.CreatedAt = threadM.CreatedAt
	thread.UpdatedAt = threadM.UpdatedAt

	return nil
}

// FindThreadByID retrieves a thread by its unique ID.
func (repo *chatRepository) FindThreadByID(ctx context.Context, id uuid.UUID) (*entity.ChatThread, error) {
	var threadM model.ChatThreadModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&threadM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrChatThreadNotFound
		}

		return nil, errors.Wrap(err, "failed to find thread by id")
	}

	return toThreadDomain(&threadM), nil
}

// FindThreadByBid retrieves the thread opened for a bid, if any.
func (repo *chatRepository) FindThreadByBid(ctx context.Context, bidID uuid.UUID) (*entity.ChatThread, error) {
	var threadM model.ChatThreadModel

	if err := repo.db.WithContext(ctx).
		Where("bid_id = ?", bidID).
		First(&threadM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrChatThreadNotFound
		}

		return nil, errors.Wrap(err, "failed to find thread by bid")
	}

	return toThreadDomain(&threadM), nil
}

// FindThreadsByUser retrieves every thread the user participates in, most
// recently active first, each with its last message.
func (repo *chatRepository) FindThreadsByUser(ctx context.Context, userID uuid.UUID) ([]*repository.ThreadPreview, error) {
	var threadModels []*model.ChatThreadModel

	if err := repo.db.WithContext(ctx).
		Where("buyer_id = ? OR seller_id = ?", userID, userID).
		Order("updated_at DESC").
		Find(&threadModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find threads by user")
	}

	previews := make([]*repository.ThreadPreview, 0, len(threadModels))
	for _, threadM := range threadModels {
		var messageM model.ChatMessageModel

		err := repo.db.WithContext(ctx).
			Where("thread_id = ?", threadM.ID).
			Order("created_at DESC").
			First(&messageM).Error

		var lastMessage *entity.ChatMessage
		switch {
		case err == nil:
			lastMessage, err = toMessageDomain(&messageM)
			if err != nil {
				return nil, err
			}
		case errors.Is(err, gorm.ErrRecordNotFound):
			// Thread with no messages yet
		default:
			return nil, errors.Wrap(err, "failed to find last message")
		}

		previews = append(previews, &repository.ThreadPreview{
			Thread:      toThreadDomain(threadM),
			LastMessage: lastMessage,
		})
	}

	return previews, nil
}

// CreateMessage appends a message to a thread and touches the thread's
// activity timestamp.
func (repo *chatRepository) CreateMessage(ctx context.Context, message *entity.ChatMessage) error {
	messageM, err := fromMessageDomain(message)
	if err != nil {
		return err
	}

	if err := repo.db.WithContext(ctx).Create(messageM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrChatThreadNotFound.WrapMessage("invalid thread reference")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create chat message")
	}

	message.ID = messageM.ID
	message.CreatedAt = messageM.CreatedAt

	if err := repo.db.WithContext(ctx).
		Model(&model.ChatThreadModel{}).
		Where("id = ?", message.ThreadID).
		Update("updated_at", messageM.CreatedAt).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to touch thread activity")
	}

	return nil
}

// FindMessagesByThread retrieves a thread's messages, oldest first.
func (repo *chatRepository) FindMessagesByThread(ctx context.Context, threadID uuid.UUID) ([]*entity.ChatMessage, error) {
	var messageModels []*model.ChatMessageModel

	if err := repo.db.WithContext(ctx).
		Where("thread_id = ?", threadID).
		Order("created_at ASC").
		Find(&messageModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find messages by thread")
	}

	messages := make([]*entity.ChatMessage, 0, len(messageModels))
	for _, messageM := range messageModels {
		message, err := toMessageDomain(messageM)
		if err != nil {
			return nil, err
		}
		messages = append(messages, message)
	}

	return messages, nil
}

// DeleteMessagesByThread removes every message in a thread.
func (repo *chatRepository) DeleteMessagesByThread(ctx context.Context, threadID uuid.UUID) error {
	if err := repo.db.WithContext(ctx).
		Where("thread_id = ?", threadID).
		Delete(&model.ChatMessageModel{}).Error; err != nil {
		return errors.Wrap(err, "failed to delete messages by thread")
	}

	return nil
}

// --- Mapper Functions ---

// toThreadDomain converts a GORM ChatThreadModel to a domain ChatThread entity.
func toThreadDomain(data *model.ChatThreadModel) *entity.ChatThread {
	if data == nil {
		return nil
	}

	return &entity.ChatThread{
		ID:        data.ID,
		BidID:     data.BidID,
		ProductID: data.ProductID,
		BuyerID:   data.BuyerID,
		SellerID:  data.SellerID,
		CreatedAt: data.CreatedAt,
		UpdatedAt: data.UpdatedAt,
	}
}

// fromThreadDomain converts a domain ChatThread entity to a GORM ChatThreadModel.
func fromThreadDomain(data *entity.ChatThread) *model.ChatThreadModel {
	if data == nil {
		return nil
	}

	return &model.ChatThreadModel{
		ID:        data.ID,
		BidID:     data.BidID,
		ProductID: data.ProductID,
		BuyerID:   data.BuyerID,
		SellerID:  data.SellerID,
		CreatedAt: data.CreatedAt,
		UpdatedAt: data.UpdatedAt,
	}
}

// toMessageDomain converts a GORM ChatMessageModel to a domain ChatMessage entity.
func toMessageDomain(data *model.ChatMessageModel) (*entity.ChatMessage, error) {
	if data == nil {
		return nil, nil
	}

	var action *entity.MessageAction
	if len(data.Action) > 0 {
		action = &entity.MessageAction{}
		if err := json.Unmarshal(data.Action, action); err != nil {
			return nil, errors.Wrap(err, "failed to decode message action")
		}
	} else if entity.MessageKind(data.Kind) == entity.MessageKindAuto {
		// Rows written before the action column carry the payment link only in
		// the markdown body.
		if bidID, ok := entity.ParsePaymentLink(data.Body); ok {
			action = &entity.MessageAction{
				Type:  entity.ActionPaymentRequest,
				BidID: bidID,
			}
		}
	}

	return &entity.ChatMessage{
		ID:        data.ID,
		ThreadID:  data.ThreadID,
		SenderID:  data.SenderID,
		Kind:      entity.MessageKind(data.Kind),
		Body:      data.Body,
		Action:    action,
		CreatedAt: data.CreatedAt,
	}, nil
}

// fromMessageDomain converts a domain ChatMessage entity to a GORM ChatMessageModel.
func fromMessageDomain(data *entity.ChatMessage) (*model.ChatMessageModel, error) {
	if data == nil {
		return nil, nil
	}

	var action []byte
	if data.Action != nil {
		encoded, err := json.Marshal(data.Action)
		if err != nil {
			return nil, errors.Wrap(err, "failed to encode message action")
		}
		action = encoded
	}

	return &model.ChatMessageModel{
		ID:        data.ID,
		ThreadID:  data.ThreadID,
		SenderID:  data.SenderID,
		Kind:      string(data.Kind),
		Body:      data.Body,
		Action:    action,
		CreatedAt: data.CreatedAt,
	}, nil
}
