// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"

	"verdant/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// Domain-specific errors for payment persistence.
var (
	// ErrPaymentNotFound is returned when a payment is not found.
	ErrPaymentNotFound = errors.New("payment not found")
	// ErrPaymentStateConflict is returned when a conditional state update
	// found the payment in a different state than expected.
	ErrPaymentStateConflict = errors.New("payment state conflict")
)

// PaymentRepository defines the interface for payment-related database operations.
type PaymentRepository interface {
	// CreatePayment persists a new payment record. Exactly one payment may
	// exist per bid; the unique constraint enforces it.
	CreatePayment(ctx context.Context, payment *entity.Payment) error

	// FindPaymentByBid retrieves the payment for a bid.
	FindPaymentByBid(ctx context.Context, bidID uuid.UUID) (*entity.Payment, error)

	// UpdatePaymentStatus moves a payment from an expected status to a new
	// one in a single conditional update. Returns ErrPaymentStateConflict
	// when the payment was not in the expected status.
	UpdatePaymentStatus(ctx context.Context, id uuid.UUID, from, to entity.PaymentStatus) error

	// UpdatePayment modifies an existing payment record.
	UpdatePayment(ctx context.Context, payment *entity.Payment) error
}
