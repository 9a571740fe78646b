package service

import (
	"context"

	"verdant/internal/domain/entity"
)

// ChargeRequest describes a single charge attempt handed to the gateway.
type ChargeRequest struct {
	PaymentID string               // Our payment record ID, echoed back by the gateway.
	Amount    float64              // Amount to charge.
	Method    entity.PaymentMethod // UPI, CARD or COD.
}

// ChargeResult is the gateway's answer to a charge attempt.
type ChargeResult struct {
	Reference string // Gateway-side reference for a successful charge.
}

// PaymentGateway defines the interface to the external payment processor.
// The production system would wire a real provider here; the simulated
// gateway reproduces the processor's delayed handshake for development.
type PaymentGateway interface {
	// Charge attempts to collect the given amount. A non-nil error means the
	// charge did not happen and may be retried.
	Charge(ctx context.Context, req ChargeRequest) (*ChargeResult, error)
}
