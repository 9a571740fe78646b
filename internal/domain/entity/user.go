// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// User is the core entity in the system, representing a unique "person" or "account".
// It contains only the most fundamental identity information shared across all roles.
type User struct {
	ID            uuid.UUID      // The Global Unique Identifier (GUID) for the user.
	Email         string         // The user's primary contact email, used as the login identifier.
	Name          string         // The user's display name or real name.
	BuyerProfile  *BuyerProfile  // A pointer to the buyer-specific profile. Will be nil if this person does not hold the 'buyer' role.
	SellerProfile *SellerProfile // A pointer to the seller-specific profile. Will be nil if this person does not hold the 'seller' role.
	CreatedAt     time.Time      // Timestamp of when this user account was created.
	UpdatedAt     time.Time      // Timestamp of the last modification to this user's data.
}

// BuyerProfile holds data specific to the "buyer" role.
type BuyerProfile struct {
	UserID          uuid.UUID // Foreign Key that links this profile to a core User entity.
	ShippingAddress string    // The buyer's default shipping address for won bids.
	Mobile          string    // Contact number shown to the seller after a bid is accepted.
	UpdatedAt       time.Time // Timestamp of the last modification to this profile.
}

// SellerProfile holds data specific to the "seller" role.
type SellerProfile struct {
	UserID    uuid.UUID // Foreign Key that links this profile to a core User entity.
	StoreName string    // The seller's public store name shown on product pages.
	Bio       string    // A short description of the store and its plants.
	AvatarURL string    // URL of the seller's avatar image.
	UpdatedAt time.Time // Timestamp of the last modification to this profile.
}

// SellerCard is the public subset of a seller shown on product pages.
type SellerCard struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	StoreName string    `json:"store_name"`
	Bio       string    `json:"bio"`
	AvatarURL string    `json:"avatar_url"`
}

// Roles returns the roles this user currently holds, derived from the
// attached profiles.
func (u *User) Roles() Roles {
	var roles Roles
	if u.BuyerProfile != nil {
		roles = append(roles, RoleBuyer)
	}
	if u.SellerProfile != nil {
		roles = append(roles, RoleSeller)
	}

	return roles
}
