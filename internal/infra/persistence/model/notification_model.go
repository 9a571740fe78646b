package model

import (
	"time"

	"github.com/google/uuid"
)

// NotificationLogModel mirrors the 'notification_logs' table.
type NotificationLogModel struct {
	ID           uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()"`
	EventID      uuid.UUID `gorm:"type:uuid;not null;index"`
	UserID       uuid.UUID `gorm:"type:uuid;not null;index"`
	DeviceID     uuid.UUID `gorm:"type:uuid;not null"`
	Status       string    `gorm:"type:varchar(20);not null"`
	FCMMessageID string    `gorm:"column:fcm_message_id;type:varchar(255)"`
	ErrorMessage string    `gorm:"type:text"`
	SentAt       time.Time
}

// TableName explicitly sets the table name for GORM.
func (NotificationLogModel) TableName() string {
	return "notification_logs"
}
