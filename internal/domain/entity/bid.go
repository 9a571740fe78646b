// Package entity contains the core business objects of the project.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// BidStatus represents where a bid sits in its lifecycle.
type BidStatus string

const (
	// BidStatusPending is the initial state after a buyer places a bid.
	BidStatusPending BidStatus = "pending"
	// BidStatusAccepted means the seller opened a chat on this bid.
	BidStatusAccepted BidStatus = "accepted"
	// BidStatusAwaitingPayment means the seller accepted settlement and a
	// payment record exists for the bid.
	BidStatusAwaitingPayment BidStatus = "awaiting_payment"
	// BidStatusSold is terminal: payment completed and the product is sold.
	BidStatusSold BidStatus = "sold"
	// BidStatusArchived is terminal: the buyer removed the bid from history.
	BidStatusArchived BidStatus = "archived"
)

// String returns the string representation of the BidStatus.
func (s BidStatus) String() string {
	return string(s)
}

// IsValid checks if the BidStatus is a valid value.
func (s BidStatus) IsValid() bool {
	switch s {
	case BidStatusPending, BidStatusAccepted, BidStatusAwaitingPayment, BidStatusSold, BidStatusArchived:
		return true
	default:
		return false
	}
}

// Terminal reports whether no further transitions are allowed from this status.
func (s BidStatus) Terminal() bool {
	return s == BidStatusSold || s == BidStatusArchived
}

// CanTransitionTo reports whether moving from s to next is a legal lifecycle
// step. Every status change in the system goes through this check.
func (s BidStatus) CanTransitionTo(next BidStatus) bool {
	switch s {
	case BidStatusPending:
		return next == BidStatusAccepted || next == BidStatusAwaitingPayment || next == BidStatusArchived
	case BidStatusAccepted:
		return next == BidStatusAwaitingPayment || next == BidStatusArchived
	case BidStatusAwaitingPayment:
		return next == BidStatusSold
	default:
		return false
	}
}

// Bid is a buyer's offer on a product. Product name/image and buyer
// name/mobile are denormalized onto the bid so listings render without joins
// and history survives product or profile edits.
type Bid struct {
	ID            uuid.UUID  // The Global Unique Identifier (GUID) for the bid.
	ProductID     uuid.UUID  // The product this bid targets.
	ProductName   string     // Denormalized product name at bid time.
	ProductImage  string     // Denormalized cover image URL at bid time.
	SellerID      uuid.UUID  // The seller who owns the product.
	BuyerID       uuid.UUID  // The buyer who placed the bid.
	BuyerName     string     // Denormalized buyer display name.
	BuyerMobile   string     // Denormalized buyer contact number, shown to the seller after accept.
	Amount        float64    // The offered amount; must be at least the product price.
	Message       string     // Optional note from the buyer to the seller.
	Status        BidStatus  // Current lifecycle status.
	PaymentMethod string     // Payment method chosen at completion, empty until then.
	CreatedAt     time.Time  // Timestamp of when the bid was placed.
	UpdatedAt     time.Time  // Timestamp of the last status change.
	SoldAt        *time.Time // Set when the bid reaches the sold status.
}

// MeetsPrice reports whether the bid amount satisfies the asking price.
// Equal amounts are accepted.
func (b *Bid) MeetsPrice(price float64) bool {
	return b.Amount >= price
}
