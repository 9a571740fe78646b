// Package usecase contains the application-specific business rules.
package usecase

import (
	"context"

	"verdant/internal/domain/entity"

	"github.com/google/uuid"
)

// CompletePaymentInput defines the data required to complete a payment.
type CompletePaymentInput struct {
	BidID   uuid.UUID
	BuyerID uuid.UUID
	Method  entity.PaymentMethod
}

// PaymentSummary is the prefill data for the payment modal.
type PaymentSummary struct {
	Payment     *entity.Payment
	Bid         *entity.Bid
	ProductName string
}

// CompletePaymentOutput returns the completed payment, the sold bid and the
// receipt message posted into the chat.
type CompletePaymentOutput struct {
	Payment *entity.Payment
	Bid     *entity.Bid
	Receipt *entity.ChatMessage
}

// PaymentUsecase defines the interface for payment-related business operations.
type PaymentUsecase interface {
	// GetPaymentByBid returns the payment summary for a bid the caller is
	// party to.
	GetPaymentByBid(ctx context.Context, bidID, userID uuid.UUID) (*PaymentSummary, error)

	// GeneratePaymentQR renders the UPI QR code PNG for a pending payment.
	GeneratePaymentQR(ctx context.Context, bidID, userID uuid.UUID) ([]byte, error)

	// CompletePayment drives the payment state machine to completed: charges
	// the gateway, marks the bid and product sold, posts the receipt message
	// and publishes the payment_completed event. A failed charge leaves the
	// payment failed and retryable. Completing an already completed payment
	// is a conflict.
	CompletePayment(ctx context.Context, input *CompletePaymentInput) (*CompletePaymentOutput, error)
}
