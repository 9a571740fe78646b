// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"
	"errors"

	"verdant/internal/domain/entity"

	"github.com/google/uuid"
)

// Domain-specific errors for authentication persistence.
// This allows the application layer to handle specific outcomes without depending on database-specific errors.
var (
	// ErrAuthNotFound is returned when an authentication method is not found.
	ErrAuthNotFound = errors.New("authentication method not found")
	// ErrResetTokenNotFound is returned when a password reset token is not found.
	ErrResetTokenNotFound = errors.New("password reset token not found")
)

// AuthRepository defines the standard operations for authentication-related persistence.
type AuthRepository interface {
	// CreateAuthentication persists a new authentication method.
	CreateAuthentication(ctx context.Context, auth *entity.Authentication) error

	// FindAuthenticationByUserID retrieves the email credential for a user.
	FindAuthenticationByUserID(ctx context.Context, userID uuid.UUID) (*entity.Authentication, error)

	// UpdatePasswordHash replaces the stored password hash for a user's email credential.
	UpdatePasswordHash(ctx context.Context, userID uuid.UUID, passwordHash string) error

	// CreateResetToken persists a new password reset token.
	CreateResetToken(ctx context.Context, token *entity.PasswordResetToken) error

	// FindResetTokenByHash retrieves a reset token record by its securely stored hash.
	FindResetTokenByHash(ctx context.Context, tokenHash string) (*entity.PasswordResetToken, error)

	// MarkResetTokenUsed stamps the token as consumed so it is never accepted again.
	MarkResetTokenUsed(ctx context.Context, id uuid.UUID) error

	// DeleteResetTokensByUserID removes all outstanding reset tokens for a user.
	DeleteResetTokensByUserID(ctx context.Context, userID uuid.UUID) error
}
