// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"

	"verdant/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// Domain-specific errors for bid persistence.
var (
	// ErrBidNotFound is returned when a bid is not found.
	ErrBidNotFound = errors.New("bid not found")
	// ErrBidStatusConflict is returned when a conditional status update found
	// the bid in a different state than expected.
	ErrBidStatusConflict = errors.New("bid status conflict")
)

// BidRepository defines the interface for bid-related database operations.
type BidRepository interface {
	// CreateBid persists a new bid.
	CreateBid(ctx context.Context, bid *entity.Bid) error

	// FindBidByID retrieves a bid by its unique ID.
	FindBidByID(ctx context.Context, id uuid.UUID) (*entity.Bid, error)

	// FindBidsByProduct retrieves all bids on a product, newest first.
	FindBidsByProduct(ctx context.Context, productID uuid.UUID) ([]*entity.Bid, error)

	// FindBidsBySeller retrieves bids across a seller's products, restricted
	// to the given statuses when any are supplied.
	FindBidsBySeller(ctx context.Context, sellerID uuid.UUID, statuses ...entity.BidStatus) ([]*entity.Bid, error)

	// FindBidsByBuyer retrieves a buyer's bids, restricted to the given
	// statuses when any are supplied.
	FindBidsByBuyer(ctx context.Context, buyerID uuid.UUID, statuses ...entity.BidStatus) ([]*entity.Bid, error)

	// CountOpenBidsByBuyerAndProduct counts the buyer's non-terminal bids on a product.
	CountOpenBidsByBuyerAndProduct(ctx context.Context, buyerID, productID uuid.UUID) (int, error)

	// UpdateBidStatus moves a bid from an expected status to a new one in a
	// single conditional update. Returns ErrBidStatusConflict when the bid
	// was not in the expected status.
	UpdateBidStatus(ctx context.Context, id uuid.UUID, from, to entity.BidStatus) error

	// UpdateBid modifies an existing bid record.
	UpdateBid(ctx context.Context, bid *entity.Bid) error
}
