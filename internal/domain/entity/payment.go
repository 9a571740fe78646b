// Package entity contains the core business objects of the project.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// PaymentStatus represents where a payment sits in its state machine.
// Transitions never skip a state: pending -> processing -> completed|failed.
type PaymentStatus string

const (
	// PaymentStatusPending is the initial state, created at settlement accept.
	PaymentStatusPending PaymentStatus = "pending"
	// PaymentStatusProcessing means the gateway charge is in flight.
	PaymentStatusProcessing PaymentStatus = "processing"
	// PaymentStatusCompleted is terminal: the charge succeeded.
	PaymentStatusCompleted PaymentStatus = "completed"
	// PaymentStatusFailed means the charge failed; the payment may be retried
	// by moving back to processing.
	PaymentStatusFailed PaymentStatus = "failed"
)

// String returns the string representation of the PaymentStatus.
func (s PaymentStatus) String() string {
	return string(s)
}

// IsValid checks if the PaymentStatus is a valid value.
func (s PaymentStatus) IsValid() bool {
	switch s {
	case PaymentStatusPending, PaymentStatusProcessing, PaymentStatusCompleted, PaymentStatusFailed:
		return true
	default:
		return false
	}
}

// CanTransitionTo reports whether moving from s to next is a legal step.
func (s PaymentStatus) CanTransitionTo(next PaymentStatus) bool {
	switch s {
	case PaymentStatusPending:
		return next == PaymentStatusProcessing
	case PaymentStatusProcessing:
		return next == PaymentStatusCompleted || next == PaymentStatusFailed
	case PaymentStatusFailed:
		return next == PaymentStatusProcessing
	default:
		return false
	}
}

// PaymentMethod is how the buyer pays.
type PaymentMethod string

const (
	PaymentMethodUPI  PaymentMethod = "UPI"
	PaymentMethodCard PaymentMethod = "CARD"
	PaymentMethodCOD  PaymentMethod = "COD"
)

// IsValid checks if the PaymentMethod is a valid value.
func (m PaymentMethod) IsValid() bool {
	switch m {
	case PaymentMethodUPI, PaymentMethodCard, PaymentMethodCOD:
		return true
	default:
		return false
	}
}

// Payment records the money side of a settled bid. Exactly one payment exists
// per bid, created when the seller accepts settlement.
type Payment struct {
	ID            uuid.UUID     // The Global Unique Identifier (GUID) for the payment.
	BidID         uuid.UUID     // The bid being paid for; unique.
	BuyerID       uuid.UUID     // The paying buyer.
	SellerID      uuid.UUID     // The seller being paid.
	Amount        float64       // The accepted bid amount.
	Method        PaymentMethod // Chosen at completion time, empty until then.
	Status        PaymentStatus // Current state machine position.
	GatewayRef    string        // Reference returned by the gateway for a completed charge.
	FailureReason string        // Gateway failure detail for the failed state.
	CreatedAt     time.Time     // Timestamp of when the payment record was created.
	UpdatedAt     time.Time     // Timestamp of the last state change.
	CompletedAt   *time.Time    // Set when the payment reaches completed.
}
