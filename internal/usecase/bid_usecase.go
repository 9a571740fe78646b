// Package usecase contains the application-specific business rules.
package usecase

import (
	"context"

	"verdant/internal/domain/entity"

	"github.com/google/uuid"
)

// PlaceBidInput defines the data required to place a bid on a product.
type PlaceBidInput struct {
	ProductID uuid.UUID
	BuyerID   uuid.UUID
	Amount    float64
	Message   string
}

// AcceptBidOutput returns the bid and the chat thread opened for it.
type AcceptBidOutput struct {
	Bid    *entity.Bid
	Thread *entity.ChatThread
}

// SettleBidOutput returns the settled bid, its payment record and the auto
// chat message carrying the payment request.
type SettleBidOutput struct {
	Bid     *entity.Bid
	Payment *entity.Payment
	Message *entity.ChatMessage
}

// BidUsecase defines the interface for bid-related business operations.
type BidUsecase interface {
	// PlaceBid creates a pending bid after checking price, product
	// availability and that the buyer is not the seller.
	PlaceBid(ctx context.Context, input *PlaceBidInput) (*entity.Bid, error)

	// ListProductBids returns all bids on a product for its seller.
	ListProductBids(ctx context.Context, productID, sellerID uuid.UUID) ([]*entity.Bid, error)

	// ListSellerBids returns a seller's actionable bids; sold and archived
	// bids are filtered out server-side.
	ListSellerBids(ctx context.Context, sellerID uuid.UUID) ([]*entity.Bid, error)

	// ListBuyerBids returns a buyer's bid history across all statuses except
	// archived.
	ListBuyerBids(ctx context.Context, buyerID uuid.UUID) ([]*entity.Bid, error)

	// AcceptBid marks a pending bid accepted and opens (or returns) the chat
	// thread for it. Calling it again on an accepted bid is idempotent.
	AcceptBid(ctx context.Context, bidID, sellerID uuid.UUID) (*AcceptBidOutput, error)

	// SettleBid moves a bid to awaiting_payment, creates its payment record
	// and posts the payment request into the chat, all in one transaction.
	SettleBid(ctx context.Context, bidID, sellerID uuid.UUID) (*SettleBidOutput, error)

	// ArchiveBid hides a bid from the buyer's history.
	ArchiveBid(ctx context.Context, bidID, buyerID uuid.UUID) error
}
