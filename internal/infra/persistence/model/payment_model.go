package model

import (
	"time"

	"github.com/google/uuid"
)

// PaymentModel mirrors the 'payments' table. The unique bid_id column
// enforces exactly one payment per bid.
type PaymentModel struct {
	ID            uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	BidID         uuid.UUID `gorm:"type:uuid;unique;not null"`
	BuyerID       uuid.UUID `gorm:"type:uuid;not null;index"`
	SellerID      uuid.UUID `gorm:"type:uuid;not null;index"`
	Amount        float64   `gorm:"type:numeric(12,2);not null"`
	Method        string    `gorm:"type:varchar(10)"`
	Status        string    `gorm:"type:varchar(20);not null;index"`
	GatewayRef    string    `gorm:"type:varchar(100)"`
	FailureReason string    `gorm:"type:text"`
	CreatedAt     time.Time
	UpdatedAt     time.Time
	CompletedAt   *time.Time
}

// TableName explicitly sets the table name for GORM.
func (PaymentModel) TableName() string {
	return "payments"
}
