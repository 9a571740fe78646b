package model

import (
	"time"

	"github.com/google/uuid"
)

// ChatThreadModel mirrors the 'chat_threads' table. One thread exists per bid.
type ChatThreadModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	BidID     uuid.UUID `gorm:"type:uuid;unique;not null"`
	ProductID uuid.UUID `gorm:"type:uuid;not null"`
	BuyerID   uuid.UUID `gorm:"type:uuid;not null;index"`
	SellerID  uuid.UUID `gorm:"type:uuid;not null;index"`
	CreatedAt time.Time
	UpdatedAt time.Time

	Messages []ChatMessageModel `gorm:"foreignKey:ThreadID"`
}

// TableName explicitly sets the table name for GORM.
func (ChatThreadModel) TableName() string {
	return "chat_threads"
}

// ChatMessageModel mirrors the 'chat_messages' table. The structured action
// payload of auto messages is stored as JSONB; the repository layer handles
// the (de)serialization.
type ChatMessageModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	ThreadID  uuid.UUID `gorm:"type:uuid;not null;index"`
	SenderID  uuid.UUID `gorm:"type:uuid;not null"`
	Kind      string    `gorm:"type:varchar(10);not null"`
	Body      string    `gorm:"type:text;not null"`
	Action    []byte    `gorm:"type:jsonb"`
	CreatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (ChatMessageModel) TableName() string {
	return "chat_messages"
}
