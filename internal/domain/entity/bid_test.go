package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBidStatus_CanTransitionTo(t *testing.T) {
	tests := []struct {
		from    BidStatus
		to      BidStatus
		allowed bool
	}{
		{BidStatusPending, BidStatusAccepted, true},
		{BidStatusPending, BidStatusAwaitingPayment, true},
		{BidStatusPending, BidStatusArchived, true},
		{BidStatusPending, BidStatusSold, false},
		{BidStatusAccepted, BidStatusAwaitingPayment, true},
		{BidStatusAccepted, BidStatusArchived, true},
		{BidStatusAccepted, BidStatusPending, false},
		{BidStatusAccepted, BidStatusSold, false},
		{BidStatusAwaitingPayment, BidStatusSold, true},
		{BidStatusAwaitingPayment, BidStatusArchived, false},
		{BidStatusAwaitingPayment, BidStatusPending, false},
		{BidStatusSold, BidStatusArchived, false},
		{BidStatusArchived, BidStatusPending, false},
	}

	for _, tt := range tests {
		t.Run(tt.from.String()+"_to_"+tt.to.String(), func(t *testing.T) {
			assert.Equal(t, tt.allowed, tt.from.CanTransitionTo(tt.to))
		})
	}
}

func TestBidStatus_Terminal(t *testing.T) {
	assert.True(t, BidStatusSold.Terminal())
	assert.True(t, BidStatusArchived.Terminal())
	assert.False(t, BidStatusPending.Terminal())
	assert.False(t, BidStatusAccepted.Terminal())
	assert.False(t, BidStatusAwaitingPayment.Terminal())
}

func TestBidStatus_IsValid(t *testing.T) {
	assert.True(t, BidStatusPending.IsValid())
	assert.True(t, BidStatusAwaitingPayment.IsValid())
	assert.False(t, BidStatus("cancelled").IsValid())
}

func TestBid_MeetsPrice(t *testing.T) {
	bid := &Bid{Amount: 500}

	assert.True(t, bid.MeetsPrice(500))
	assert.True(t, bid.MeetsPrice(499.99))
	assert.False(t, bid.MeetsPrice(500.01))
}
