// Package postgres contains the concrete implementation of the persistence layer using GORM and PostgreSQL.
package postgres

import (
	"context"

	"verdant/internal/domain/entity"
	domainerrors "verdant/internal/domain/errors"
	"verdant/internal/domain/repository"
	"verdant/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// notificationRepository implements the repository.NotificationRepository interface.
type notificationRepository struct {
	db *gorm.DB
}

// NewNotificationRepository is the constructor for notificationRepository.
func NewNotificationRepository(db *gorm.DB) repository.NotificationRepository {
	return &notificationRepository{
		db: db,
	}
}

// CreateLogs persists delivery log entries for a fan-out batch.
func (repo *notificationRepository) CreateLogs(ctx context.Context, logs []*entity.NotificationLog) error {
	if len(logs) == 0 {
		return nil
	}

	logModels := make([]*model.NotificationLogModel, 0, len(logs))
	for _, log := range logs {
		logModels = append(logModels, fromNotificationLogDomain(log))
	}

	if err := repo.db.WithContext(ctx).Create(&logModels).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to create notification logs")
	}

	return nil
}

// FindLogsByUser retrieves a user's notification history, newest first.
func (repo *notificationRepository) FindLogsByUser(ctx context.Context, userID uuid.UUID, limit int) ([]*entity.NotificationLog, error) {
	query := repo.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("sent_at DESC")

	if limit > 0 {
		query = query.Limit(limit)
	}

	var logModels []*model.NotificationLogModel
	if err := query.Find(&logModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find notification logs by user")
	}

	logs := make([]*entity.NotificationLog, 0, len(logModels))
	for _, logM := range logModels {
		logs = append(logs, toNotificationLogDomain(logM))
	}

	return logs, nil
}

// --- Mapper Functions ---

// toNotificationLogDomain converts a GORM NotificationLogModel to a domain NotificationLog entity.
func toNotificationLogDomain(data *model.NotificationLogModel) *entity.NotificationLog {
	if data == nil {
		return nil
	}

	return &entity.NotificationLog{
		ID:           data.ID,
		EventID:      data.EventID,
		UserID:       data.UserID,
		DeviceID:     data.DeviceID,
		Status:       data.Status,
		FCMMessageID: data.FCMMessageID,
		ErrorMessage: data.ErrorMessage,
		SentAt:       data.SentAt,
	}
}

// fromNotificationLogDomain converts a domain NotificationLog entity to a GORM NotificationLogModel.
func fromNotificationLogDomain(data *entity.NotificationLog) *model.NotificationLogModel {
	if data == nil {
		return nil
	}

	return &model.NotificationLogModel{
		ID:           data.ID,
		EventID:      data.EventID,
		UserID:       data.UserID,
		DeviceID:     data.DeviceID,
		Status:       data.Status,
		FCMMessageID: data.FCMMessageID,
		ErrorMessage: data.ErrorMessage,
		SentAt:       data.SentAt,
	}
}
