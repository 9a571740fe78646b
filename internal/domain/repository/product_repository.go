// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"

	"verdant/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// Domain-specific errors for product persistence.
var (
	// ErrProductNotFound is returned when a product is not found.
	ErrProductNotFound = errors.New("product not found")
	// ErrProductAlreadySold is returned when a conditional sold update hits a
	// product whose sold flag is already set.
	ErrProductAlreadySold = errors.New("product already sold")
)

// ProductRepository defines the interface for product-related database operations.
type ProductRepository interface {
	// CreateProduct persists a new product listing.
	CreateProduct(ctx context.Context, product *entity.Product) error

	// FindProductByID retrieves a product by its unique ID.
	FindProductByID(ctx context.Context, id uuid.UUID) (*entity.Product, error)

	// FindProducts retrieves products matching the filter, with the total
	// count before pagination.
	FindProducts(ctx context.Context, filter entity.ProductFilter) ([]*entity.Product, int64, error)

	// FindProductsBySeller retrieves a seller's full portfolio, newest first.
	FindProductsBySeller(ctx context.Context, sellerID uuid.UUID) ([]*entity.Product, error)

	// UpdateProduct modifies an existing product listing.
	UpdateProduct(ctx context.Context, product *entity.Product) error

	// MarkProductSold flips the sold flag if and only if it is still unset.
	// Returns ErrProductAlreadySold when another settlement won the race.
	MarkProductSold(ctx context.Context, id uuid.UUID) error

	// DeleteProduct removes a product listing.
	DeleteProduct(ctx context.Context, id uuid.UUID) error
}
