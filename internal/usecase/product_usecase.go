// Package usecase contains the application-specific business rules.
package usecase

import (
	"context"
	"io"

	"verdant/internal/domain/entity"

	"github.com/google/uuid"
)

// CreateProductInput defines the data required to publish a listing.
type CreateProductInput struct {
	SellerID    uuid.UUID
	Name        string
	Description string
	Price       float64
	Category    string
	Subcategory string
	ImageURLs   []string
}

// UpdateProductInput defines the editable fields of a listing.
type UpdateProductInput struct {
	ProductID   uuid.UUID
	SellerID    uuid.UUID
	Name        string
	Description string
	Price       float64
	Category    string
	Subcategory string
	ImageURLs   []string
}

// UploadImageInput carries one image file for a listing.
type UploadImageInput struct {
	ProductID   uuid.UUID
	SellerID    uuid.UUID
	Filename    string
	ContentType string
	Body        io.Reader
}

// ProductPage is one page of filtered listings with the total match count.
type ProductPage struct {
	Products []*entity.Product
	Total    int64
	Page     int
	PageSize int
}

// ProductDetail is a listing together with its seller's public card.
// Seller is nil when the seller account no longer exists; clients render an
// orphan listing view in that case.
type ProductDetail struct {
	Product *entity.Product
	Seller  *entity.SellerCard
}

// ProductUsecase defines the interface for product-related business operations.
type ProductUsecase interface {
	CreateProduct(ctx context.Context, input *CreateProductInput) (*entity.Product, error)
	GetProduct(ctx context.Context, id uuid.UUID) (*ProductDetail, error)
	ListProducts(ctx context.Context, filter entity.ProductFilter) (*ProductPage, error)
	ListSellerProducts(ctx context.Context, sellerID uuid.UUID) ([]*entity.Product, error)
	UpdateProduct(ctx context.Context, input *UpdateProductInput) (*entity.Product, error)
	DeleteProduct(ctx context.Context, productID, sellerID uuid.UUID) error
	UploadImage(ctx context.Context, input *UploadImageInput) (string, error)
}
