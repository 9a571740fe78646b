package payment

import (
	"context"
	"io"
	"log/slog"
	"strings"
	"testing"
	"time"

	"verdant/config"
	"verdant/internal/domain/entity"
	"verdant/internal/domain/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestGateway(delay time.Duration) service.PaymentGateway {
	cfg := &config.Config{
		Payment: &config.PaymentConfig{ProcessingDelay: delay},
	}

	return NewSimulatedGateway(cfg, slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func TestSimulatedGateway_Charge_Success(t *testing.T) {
	gateway := newTestGateway(time.Millisecond)

	result, err := gateway.Charge(context.Background(), service.ChargeRequest{
		PaymentID: "payment-1",
		Amount:    2500,
		Method:    entity.PaymentMethodUPI,
	})
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(result.Reference, "SIM-"))
}

func TestSimulatedGateway_Charge_NonPositiveAmount(t *testing.T) {
	gateway := newTestGateway(time.Millisecond)

	result, err := gateway.Charge(context.Background(), service.ChargeRequest{
		PaymentID: "payment-1",
		Amount:    0,
		Method:    entity.PaymentMethodCard,
	})
	assert.Nil(t, result)
	assert.Error(t, err)
}

func TestSimulatedGateway_Charge_CODSettlesImmediately(t *testing.T) {
	gateway := newTestGateway(time.Minute)

	done := make(chan struct{})
	go func() {
		defer close(done)
		result, err := gateway.Charge(context.Background(), service.ChargeRequest{
			PaymentID: "payment-1",
			Amount:    500,
			Method:    entity.PaymentMethodCOD,
		})
		assert.NoError(t, err)
		assert.NotNil(t, result)
	}()

	select {
	case <-done:
	case <-time.After(5 * time.Second):
		t.Fatal("COD charge should not wait out the processing delay")
	}
}

func TestSimulatedGateway_Charge_ContextCancellation(t *testing.T) {
	gateway := newTestGateway(time.Minute)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	result, err := gateway.Charge(ctx, service.ChargeRequest{
		PaymentID: "payment-1",
		Amount:    2500,
		Method:    entity.PaymentMethodUPI,
	})
	assert.Nil(t, result)
	require.Error(t, err)
	assert.ErrorIs(t, err, context.Canceled)
}
