// Package payment provides the payment gateway implementation.
package payment

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"verdant/config"
	"verdant/internal/domain/entity"
	"verdant/internal/domain/service"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

const defaultProcessingDelay = 2 * time.Second

// simulatedGateway is a PaymentGateway that reproduces a real processor's
// delayed handshake without moving money. Every charge succeeds after the
// configured delay; COD settles immediately since no money moves up front.
type simulatedGateway struct {
	processingDelay time.Duration
	logger          *slog.Logger
}

// NewSimulatedGateway creates the development payment gateway.
func NewSimulatedGateway(cfg *config.Config, logger *slog.Logger) service.PaymentGateway {
	delay := defaultProcessingDelay
	if cfg != nil && cfg.Payment != nil && cfg.Payment.ProcessingDelay > 0 {
		delay = cfg.Payment.ProcessingDelay
	}

	return &simulatedGateway{
		processingDelay: delay,
		logger:          logger,
	}
}

// Charge waits out the simulated settlement delay and returns a reference.
// Cancelling the context aborts the charge.
func (g *simulatedGateway) Charge(ctx context.Context, req service.ChargeRequest) (*service.ChargeResult, error) {
	if req.Amount <= 0 {
		return nil, errors.New("charge amount must be positive")
	}

	delay := g.processingDelay
	if req.Method == entity.PaymentMethodCOD {
		delay = 0
	}

	g.logger.Debug("Simulated gateway charging",
		slog.String("paymentID", req.PaymentID),
		slog.String("method", string(req.Method)),
		slog.Float64("amount", req.Amount))

	if delay > 0 {
		select {
		case <-time.After(delay):
		case <-ctx.Done():
			return nil, errors.Wrap(ctx.Err(), "charge aborted")
		}
	}

	return &service.ChargeResult{
		Reference: fmt.Sprintf("SIM-%s", uuid.New()),
	}, nil
}
