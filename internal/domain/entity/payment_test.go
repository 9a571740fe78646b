package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPaymentStatus_CanTransitionTo(t *testing.T) {
	tests := []struct {
		from    PaymentStatus
		to      PaymentStatus
		allowed bool
	}{
		{PaymentStatusPending, PaymentStatusProcessing, true},
		{PaymentStatusPending, PaymentStatusCompleted, false},
		{PaymentStatusPending, PaymentStatusFailed, false},
		{PaymentStatusProcessing, PaymentStatusCompleted, true},
		{PaymentStatusProcessing, PaymentStatusFailed, true},
		{PaymentStatusProcessing, PaymentStatusPending, false},
		{PaymentStatusFailed, PaymentStatusProcessing, true},
		{PaymentStatusFailed, PaymentStatusCompleted, false},
		{PaymentStatusCompleted, PaymentStatusProcessing, false},
		{PaymentStatusCompleted, PaymentStatusFailed, false},
	}

	for _, tt := range tests {
		t.Run(tt.from.String()+"_to_"+tt.to.String(), func(t *testing.T) {
			assert.Equal(t, tt.allowed, tt.from.CanTransitionTo(tt.to))
		})
	}
}

func TestPaymentStatus_IsValid(t *testing.T) {
	assert.True(t, PaymentStatusProcessing.IsValid())
	assert.False(t, PaymentStatus("refunded").IsValid())
}

func TestPaymentMethod_IsValid(t *testing.T) {
	assert.True(t, PaymentMethodUPI.IsValid())
	assert.True(t, PaymentMethodCard.IsValid())
	assert.True(t, PaymentMethodCOD.IsValid())
	assert.False(t, PaymentMethod("CHEQUE").IsValid())
	assert.False(t, PaymentMethod("upi").IsValid())
}
