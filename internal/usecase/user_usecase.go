// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"

	"verdant/internal/domain/entity"

	"github.com/google/uuid"
)

// --- Input DTOs ---

// RegisterBuyerInput defines the data required to register a new buyer.
type RegisterBuyerInput struct {
	Name            string
	Email           string
	Password        string
	ShippingAddress string
	Mobile          string
}

// RegisterSellerInput defines the data required to register a new seller.
type RegisterSellerInput struct {
	Name      string
	Email     string
	Password  string
	StoreName string
	Bio       string
}

// LoginInput defines the data required for a user to log in.
type LoginInput struct {
	Email    string
	Password string
}

// RefreshTokenInput carries the refresh token presented by the client.
type RefreshTokenInput struct {
	RefreshToken string
}

// LogoutInput carries the refresh token of the session being ended.
type LogoutInput struct {
	RefreshToken string
}

// RecoverPasswordInput identifies the account to recover.
type RecoverPasswordInput struct {
	Email string
}

// ResetPasswordInput consumes a reset token and sets a new password.
type ResetPasswordInput struct {
	Token       string
	NewPassword string
}

// DeleteAccountInput removes an account after a password check.
type DeleteAccountInput struct {
	UserID   uuid.UUID
	Password string
}

// --- Output DTOs ---

// RegisterOutput returns the newly created user's basic information.
type RegisterOutput struct {
	User *entity.User
}

// LoginOutput returns the generated tokens after a successful login.
type LoginOutput struct {
	AccessToken  string
	RefreshToken string
	User         *entity.User
}

// RefreshTokenOutput returns the newly minted access token.
type RefreshTokenOutput struct {
	AccessToken string
}

// RecoverPasswordOutput returns the single-use reset token. The raw token is
// surfaced exactly once here; only its hash is stored.
type RecoverPasswordOutput struct {
	ResetToken string
}

// UserUsecase defines the interface for user-related business operations.
// This is the contract that the delivery layer (e.g., API handlers) will depend on.
type UserUsecase interface {
	RegisterBuyer(ctx context.Context, input *RegisterBuyerInput) (*RegisterOutput, error)
	RegisterSeller(ctx context.Context, input *RegisterSellerInput) (*RegisterOutput, error)
	Login(ctx context.Context, input *LoginInput) (*LoginOutput, error)
	RefreshToken(ctx context.Context, input *RefreshTokenInput) (*RefreshTokenOutput, error)
	Logout(ctx context.Context, input *LogoutInput) error
	RecoverPassword(ctx context.Context, input *RecoverPasswordInput) (*RecoverPasswordOutput, error)
	ResetPassword(ctx context.Context, input *ResetPasswordInput) error
	DeleteAccount(ctx context.Context, input *DeleteAccountInput) error
	GetProfile(ctx context.Context, userID uuid.UUID) (*entity.User, error)
}
