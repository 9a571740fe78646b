package model

import (
	"time"

	"github.com/google/uuid"
)

// BidModel mirrors the 'bids' table. Product and buyer fields are
// denormalized at bid time so listings render without joins.
type BidModel struct {
	ID            uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	ProductID     uuid.UUID `gorm:"type:uuid;not null;index"`
	ProductName   string    `gorm:"type:varchar(255);not null"`
	ProductImage  string    `gorm:"type:varchar(512)"`
	SellerID      uuid.UUID `gorm:"type:uuid;not null;index"`
	BuyerID       uuid.UUID `gorm:"type:uuid;not null;index"`
	BuyerName     string    `gorm:"type:varchar(100)"`
	BuyerMobile   string    `gorm:"type:varchar(20)"`
	Amount        float64   `gorm:"type:numeric(12,2);not null"`
	Message       string    `gorm:"type:text"`
	Status        string    `gorm:"type:varchar(20);not null;index"`
	PaymentMethod string    `gorm:"type:varchar(10)"`
	CreatedAt     time.Time
	UpdatedAt     time.Time
	SoldAt        *time.Time
}

// TableName explicitly sets the table name for GORM.
func (BidModel) TableName() string {
	return "bids"
}
