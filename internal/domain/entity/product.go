// Package entity contains the core business objects of the project.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// Product is a plant listing published by a seller.
type Product struct {
	ID          uuid.UUID // The Global Unique Identifier (GUID) for the product.
	SellerID    uuid.UUID // The ID of the seller who owns this listing.
	Name        string    // The display name of the plant.
	Description string    // Free-form listing description.
	Price       float64   // The asking price; bids at or above this amount are accepted.
	Category    string    // Top-level category, e.g., "indoor", "outdoor".
	Subcategory string    // Finer classification, e.g., "succulent".
	ImageURLs   []string  // Ordered image URLs; the first one is the cover image.
	Sold        bool      // Flips to true exactly once, inside the settlement transaction.
	CreatedAt   time.Time // Timestamp of when this listing was created.
	UpdatedAt   time.Time // Timestamp of the last modification.
}

// Editable reports whether the listing may still be changed by its seller.
// Sold listings are frozen so buyer history stays truthful.
func (p *Product) Editable() bool {
	return !p.Sold
}

// OwnedBy reports whether the given seller owns this listing.
func (p *Product) OwnedBy(sellerID uuid.UUID) bool {
	return p.SellerID == sellerID
}

// ProductFilter narrows product listings. Zero values mean "no constraint".
type ProductFilter struct {
	Search      string     // Case-insensitive match against name and description.
	Category    string     // Exact category match.
	Subcategory string     // Exact subcategory match.
	SellerID    *uuid.UUID // Restrict to a single seller's portfolio.
	MinPrice    *float64   // Inclusive lower price bound.
	MaxPrice    *float64   // Inclusive upper price bound.
	UnsoldOnly  bool       // Exclude sold listings.
	SortBy      string     // One of "price_asc", "price_desc", "newest"; empty means newest.
	Page        int        // 1-based page number.
	PageSize    int        // Items per page, capped by config.
}
