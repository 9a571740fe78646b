package entity

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestChatThread_Participant(t *testing.T) {
	buyerID := uuid.New()
	sellerID := uuid.New()
	thread := &ChatThread{BuyerID: buyerID, SellerID: sellerID}

	assert.True(t, thread.Participant(buyerID))
	assert.True(t, thread.Participant(sellerID))
	assert.False(t, thread.Participant(uuid.New()))
}

func TestParsePaymentLink(t *testing.T) {
	bidID := uuid.New()

	tests := []struct {
		name   string
		body   string
		wantID uuid.UUID
		wantOK bool
	}{
		{
			name:   "payment link",
			body:   "Settlement accepted. [Pay now](https://app.example.com/payments/" + bidID.String() + ")",
			wantID: bidID,
			wantOK: true,
		},
		{
			name:   "trailing slash",
			body:   "[Pay now](https://app.example.com/payments/" + bidID.String() + "/)",
			wantID: bidID,
			wantOK: true,
		},
		{
			name: "no link",
			body: "Just a plain message",
		},
		{
			name: "link without a bid id",
			body: "[docs](https://example.com/help)",
		},
		{
			name: "empty body",
			body: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			id, ok := ParsePaymentLink(tt.body)
			assert.Equal(t, tt.wantOK, ok)
			if tt.wantOK {
				assert.Equal(t, tt.wantID, id)
			} else {
				assert.Equal(t, uuid.Nil, id)
			}
		})
	}
}
