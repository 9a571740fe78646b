// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"
	"errors"

	"verdant/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrUserNotFound is a domain-specific error returned when a user is not found.
var ErrUserNotFound = errors.New("user not found")

// UserRepository defines the standard operations for user persistence.
// The application layer will depend on this interface, not the concrete implementation.
type UserRepository interface {
	// FindByID retrieves a single user by their unique ID, including any role profiles.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error)

	// FindByEmail retrieves a single user by their email address.
	FindByEmail(ctx context.Context, email string) (*entity.User, error)

	// Create persists a new user entity with whatever profiles are attached.
	Create(ctx context.Context, user *entity.User) error

	// Update modifies an existing user entity in the storage.
	Update(ctx context.Context, user *entity.User) error

	// AttachBuyerProfile adds a buyer profile to an existing user.
	AttachBuyerProfile(ctx context.Context, profile *entity.BuyerProfile) error

	// AttachSellerProfile adds a seller profile to an existing user.
	AttachSellerProfile(ctx context.Context, profile *entity.SellerProfile) error

	// Delete removes the user and all dependent rows.
	Delete(ctx context.Context, id uuid.UUID) error
}
