// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"log/slog"
	"time"

	"verdant/config"
	deliverycontext "verdant/internal/delivery/context"
	"verdant/internal/domain/entity"
	domainerrors "verdant/internal/domain/errors"
	"verdant/internal/domain/repository"
	"verdant/internal/domain/service"
	"verdant/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const defaultResetTokenTTL = 30 * time.Minute

// userService implements the UserUsecase interface.
type userService struct {
	txManager         repository.TransactionManager
	userRepo          repository.UserRepository
	authRepo          repository.AuthRepository
	refreshTokenRepo  repository.RefreshTokenRepository
	hasher            service.PasswordHasher
	tokenService      service.TokenService
	maxActiveSessions int
	resetTokenTTL     time.Duration
	logger            *slog.Logger
}

type registrationConfig struct {
	Name               string
	Email              string
	Password           string
	Role               entity.Role
	BuildNewUser       func() *entity.User
	AttachProfile      func(*entity.User)
	HasProfile         func(*entity.User) bool
	ProfileExistsError func() error
}

// UserServiceParams holds dependencies for UserService, injected by Fx.
type UserServiceParams struct {
	fx.In

	TxManager        repository.TransactionManager
	UserRepo         repository.UserRepository
	AuthRepo         repository.AuthRepository
	RefreshTokenRepo repository.RefreshTokenRepository
	Hasher           service.PasswordHasher
	TokenService     service.TokenService
	Config           *config.Config
	Logger           *slog.Logger
}

// NewUserService is the constructor for userService. It receives all dependencies as interfaces.
func NewUserService(params UserServiceParams) usecase.UserUsecase {
	maxActiveSessions := 0
	resetTokenTTL := defaultResetTokenTTL
	if params.Config != nil && params.Config.Auth != nil {
		maxActiveSessions = params.Config.Auth.MaxActiveSessions
		if params.Config.Auth.ResetTokenTTL > 0 {
			resetTokenTTL = params.Config.Auth.ResetTokenTTL
		}
	}

	return &userService{
		txManager:         params.TxManager,
		userRepo:          params.UserRepo,
		authRepo:          params.AuthRepo,
		refreshTokenRepo:  params.RefreshTokenRepo,
		hasher:            params.Hasher,
		tokenService:      params.TokenService,
		maxActiveSessions: maxActiveSessions,
		resetTokenTTL:     resetTokenTTL,
		logger:            params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *userService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// RegisterBuyer orchestrates the complete buyer registration process.
func (srv *userService) RegisterBuyer(ctx context.Context, input *usecase.RegisterBuyerInput) (*usecase.RegisterOutput, error) {
	config := &registrationConfig{
		Name:          input.Name,
		Email:         input.Email,
		Password:      input.Password,
		Role:          entity.RoleBuyer,
		BuildNewUser:  func() *entity.User { return buildNewBuyerEntity(input) },
		AttachProfile: attachBuyerProfile(input),
		HasProfile:    userHasBuyerProfile,
		ProfileExistsError: func() error {
			return domainerrors.ErrBuyerProfileExists.WrapMessage("buyer profile already registered for this account")
		},
	}

	return srv.executeRegistration(ctx, config)
}

// RegisterSeller orchestrates the complete seller registration process.
func (srv *userService) RegisterSeller(ctx context.Context, input *usecase.RegisterSellerInput) (*usecase.RegisterOutput, error) {
	config := &registrationConfig{
		Name:          input.Name,
		Email:         input.Email,
		Password:      input.Password,
		Role:          entity.RoleSeller,
		BuildNewUser:  func() *entity.User { return buildNewSellerEntity(input) },
		AttachProfile: attachSellerProfile(input),
		HasProfile:    userHasSellerProfile,
		ProfileExistsError: func() error {
			return domainerrors.ErrSellerProfileExists.WrapMessage("seller profile already registered for this account")
		},
	}

	return srv.executeRegistration(ctx, config)
}

func (srv *userService) executeRegistration(ctx context.Context, cfg *registrationConfig) (*usecase.RegisterOutput, error) {
	srv.log(ctx).Info("Starting registration", slog.Any("role", cfg.Role), slog.String("email", cfg.Email))

	var registeredUser *entity.User
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		userRepo := repoFactory.UserRepo()
		authRepo := repoFactory.AuthRepo()

		existingUser, err := userRepo.FindByEmail(ctx, cfg.Email)
		if errors.Is(err, repository.ErrUserNotFound) {
			return srv.handleNewRegistration(ctx, cfg, userRepo, authRepo, &registeredUser)
		}
		if err != nil {
			return errors.Wrap(err, "failed to find user by email")
		}

		return srv.handleExistingAccountRegistration(ctx, cfg, userRepo, authRepo, existingUser, &registeredUser)
	})

	if err != nil {
		srv.log(ctx).Error("Failed to execute registration transaction", slog.Any("role", cfg.Role), slog.String("email", cfg.Email), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to execute registration transaction")
	}

	srv.log(ctx).Debug("Registration completed", slog.Any("role", cfg.Role), slog.Any("userID", registeredUser.ID))

	return &usecase.RegisterOutput{User: registeredUser}, nil
}

func (srv *userService) handleNewRegistration(
	ctx context.Context,
	cfg *registrationConfig,
	userRepo repository.UserRepository,
	authRepo repository.AuthRepository,
	registeredUser **entity.User,
) error {
	if err := srv.hasher.ValidateStrength(cfg.Password); err != nil {
		srv.log(ctx).Warn("Password validation failed during registration", slog.Any("role", cfg.Role), slog.String("email", cfg.Email), slog.Any("error", err))

		return errors.Wrap(domainerrors.ErrPasswordStrength, "password does not meet security requirements")
	}

	hashedPassword, err := srv.hasher.Hash(cfg.Password)
	if err != nil {
		srv.log(ctx).Error("Failed to hash password during registration", slog.Any("role", cfg.Role), slog.Any("error", err))

		return errors.Wrap(err, "failed to hash password during registration")
	}

	newUser := cfg.BuildNewUser()
	if newUser.Name == "" {
		newUser.Name = cfg.Name
	}
	newUser.Email = cfg.Email

	if err := userRepo.Create(ctx, newUser); err != nil {
		return errors.Wrap(err, "failed to create user during registration")
	}

	newAuth := &entity.Authentication{
		UserID:       newUser.ID,
		Provider:     entity.ProviderTypeEmail,
		PasswordHash: hashedPassword,
	}

	if err := authRepo.CreateAuthentication(ctx, newAuth); err != nil {
		return errors.Wrap(err, "failed to create authentication during registration")
	}

	*registeredUser = newUser

	return nil
}

func (srv *userService) handleExistingAccountRegistration(
	ctx context.Context,
	cfg *registrationConfig,
	userRepo repository.UserRepository,
	authRepo repository.AuthRepository,
	existingUser *entity.User,
	registeredUser **entity.User,
) error {
	authRecord, err := authRepo.FindAuthenticationByUserID(ctx, existingUser.ID)
	if err != nil {
		return errors.Wrap(err, "failed to load credentials for existing account")
	}

	if !srv.hasher.Check(cfg.Password, authRecord.PasswordHash) {
		srv.log(ctx).Warn("Password mismatch when attaching profile", slog.Any("role", cfg.Role), slog.String("email", cfg.Email))

		return errors.Wrap(domainerrors.ErrInvalidCredentials, "password mismatch during registration")
	}

	if cfg.HasProfile(existingUser) {
		srv.log(ctx).Warn("Profile already exists for account", slog.Any("role", cfg.Role), slog.Any("userID", existingUser.ID))

		return cfg.ProfileExistsError()
	}

	if cfg.Name != "" {
		existingUser.Name = cfg.Name
	}

	cfg.AttachProfile(existingUser)

	if err := userRepo.Update(ctx, existingUser); err != nil {
		return errors.Wrap(err, "failed to update user profile during registration")
	}

	srv.log(ctx).Debug("Attached profile to existing account", slog.Any("role", cfg.Role), slog.Any("userID", existingUser.ID))
	*registeredUser = existingUser

	return nil
}

func buildNewBuyerEntity(input *usecase.RegisterBuyerInput) *entity.User {
	return &entity.User{
		Name:  input.Name,
		Email: input.Email,
		BuyerProfile: &entity.BuyerProfile{
			ShippingAddress: input.ShippingAddress,
			Mobile:          input.Mobile,
		},
	}
}

func buildNewSellerEntity(input *usecase.RegisterSellerInput) *entity.User {
	return &entity.User{
		Name:  input.Name,
		Email: input.Email,
		SellerProfile: &entity.SellerProfile{
			StoreName: input.StoreName,
			Bio:       input.Bio,
		},
	}
}

func attachBuyerProfile(input *usecase.RegisterBuyerInput) func(*entity.User) {
	return func(user *entity.User) {
		user.BuyerProfile = &entity.BuyerProfile{
			UserID:          user.ID,
			ShippingAddress: input.ShippingAddress,
			Mobile:          input.Mobile,
		}
	}
}

func attachSellerProfile(input *usecase.RegisterSellerInput) func(*entity.User) {
	return func(user *entity.User) {
		user.SellerProfile = &entity.SellerProfile{
			UserID:    user.ID,
			StoreName: input.StoreName,
			Bio:       input.Bio,
		}
	}
}

func userHasBuyerProfile(user *entity.User) bool {
	return user.BuyerProfile != nil
}

func userHasSellerProfile(user *entity.User) bool {
	return user.SellerProfile != nil
}

// Login orchestrates the user login process.
func (srv *userService) Login(ctx context.Context, input *usecase.LoginInput) (*usecase.LoginOutput, error) {
	srv.log(ctx).Debug("Starting user login", slog.String("email", input.Email))

	loggedInUser, authRecord, err := srv.loadLoginAccount(ctx, input.Email)
	if err != nil {
		srv.log(ctx).Warn("Login failed", slog.String("email", input.Email), slog.Any("error", err))

		return nil, errors.Wrap(err, "login failed")
	}

	// Check password outside transaction (bcrypt is CPU-bound).
	if !srv.hasher.Check(input.Password, authRecord.PasswordHash) {
		srv.log(ctx).Warn("Login failed", slog.String("email", input.Email), slog.Any("error", domainerrors.ErrInvalidCredentials))

		return nil, errors.Wrap(domainerrors.ErrInvalidCredentials, "login failed")
	}

	accessToken, refreshTokenString, err := srv.tokenService.GenerateTokens(loggedInUser.ID, loggedInUser.Roles().ToStrings())
	if err != nil {
		srv.log(ctx).Warn("Login failed", slog.String("email", input.Email), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to generate tokens")
	}

	if err := srv.persistLoginRefreshToken(ctx, loggedInUser.ID, refreshTokenString); err != nil {
		srv.log(ctx).Warn("Login failed", slog.String("email", input.Email), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to create refresh token during login")
	}
	srv.log(ctx).Debug("User logged in successfully", slog.Any("userID", loggedInUser.ID))

	return &usecase.LoginOutput{
		AccessToken:  accessToken,
		RefreshToken: refreshTokenString,
		User:         loggedInUser,
	}, nil
}

func (srv *userService) loadLoginAccount(ctx context.Context, email string) (*entity.User, *entity.Authentication, error) {
	var loggedInUser *entity.User
	var authRecord *entity.Authentication

	// Load from primary in a short transaction to avoid stale reads on replicas.
	if err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		userRepo := repoFactory.UserRepo()
		authRepo := repoFactory.AuthRepo()

		user, findErr := userRepo.FindByEmail(ctx, email)
		if findErr != nil {
			if errors.Is(findErr, repository.ErrUserNotFound) {
				return errors.Wrap(domainerrors.ErrInvalidCredentials, "login failed")
			}

			return errors.Wrap(findErr, "failed to find user by email")
		}

		auth, findAuthErr := authRepo.FindAuthenticationByUserID(ctx, user.ID)
		if findAuthErr != nil {
			if errors.Is(findAuthErr, repository.ErrAuthNotFound) {
				return errors.Wrap(domainerrors.ErrInvalidCredentials, "login failed")
			}

			return errors.Wrap(findAuthErr, "failed to find authentication")
		}

		loggedInUser = user
		authRecord = auth

		return nil
	}); err != nil {
		return nil, nil, errors.Wrap(err, "failed to execute login account transaction")
	}

	return loggedInUser, authRecord, nil
}

func (srv *userService) persistLoginRefreshToken(ctx context.Context, userID uuid.UUID, refreshTokenString string) error {
	if srv.maxActiveSessions > 0 {
		// When session limit is enabled, keep count/insert in one short transaction.
		if err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
			return srv.storeRefreshToken(ctx, repoFactory.RefreshTokenRepo(), userID, refreshTokenString, true)
		}); err != nil {
			return errors.Wrap(err, "failed to execute login session transaction")
		}

		return nil
	}

	// No session limit: direct insert avoids unnecessary transaction overhead.
	return srv.storeRefreshToken(ctx, srv.refreshTokenRepo, userID, refreshTokenString, false)
}

func (srv *userService) storeRefreshToken(ctx context.Context, refreshRepo repository.RefreshTokenRepository, userID uuid.UUID, refreshTokenString string, enforceLimit bool) error {
	if enforceLimit && srv.maxActiveSessions > 0 {
		activeSessions, err := refreshRepo.CountActiveSessionsByUserID(ctx, userID)
		if err != nil {
			return errors.Wrap(err, "failed to count active sessions")
		}
		if activeSessions >= srv.maxActiveSessions {
			return errors.Wrap(domainerrors.ErrSessionLimitExceeded, "active session limit exceeded")
		}
	}

	newRefreshToken := &entity.RefreshToken{
		UserID:    userID,
		TokenHash: srv.tokenService.HashToken(refreshTokenString),
		ExpiresAt: time.Now().Add(srv.tokenService.GetRefreshTokenDuration()),
	}

	if err := refreshRepo.CreateRefreshToken(ctx, newRefreshToken); err != nil {
		return errors.Wrap(err, "failed to store refresh token")
	}

	return nil
}

// RefreshToken handles the process of issuing a new access token using a refresh token.
// The refresh token remains unchanged for security reasons.
func (srv *userService) RefreshToken(ctx context.Context, input *usecase.RefreshTokenInput) (*usecase.RefreshTokenOutput, error) {
	srv.log(ctx).Info("Attempting to refresh access token")

	claims, err := srv.tokenService.ValidateToken(input.RefreshToken)
	if err != nil {
		return nil, errors.Wrap(domainerrors.ErrRefreshTokenInvalid, "invalid refresh token")
	}

	var newAccessToken string

	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		userRepo := repoFactory.UserRepo()
		refreshRepo := repoFactory.RefreshTokenRepo()

		tokenHash := srv.tokenService.HashToken(input.RefreshToken)

		if _, err := refreshRepo.FindRefreshTokenByHash(ctx, tokenHash); err != nil {
			return errors.Wrap(err, "refresh token not found or expired")
		}

		user, err := userRepo.FindByID(ctx, claims.UserID)
		if err != nil {
			return errors.Wrap(err, "failed to find user")
		}

		// Generate only a new access token; the refresh token remains
		// unchanged to avoid rotation races across devices.
		newAccessToken, _, err = srv.tokenService.GenerateTokens(user.ID, user.Roles().ToStrings())
		if err != nil {
			return errors.Wrap(err, "failed to generate new access token")
		}

		return nil
	})

	if err != nil {
		srv.log(ctx).Error("Failed to execute refresh token transaction", slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to execute refresh token transaction")
	}

	return &usecase.RefreshTokenOutput{
		AccessToken: newAccessToken,
	}, nil
}

// Logout handles the process of invalidating a user's session by deleting their refresh token.
func (srv *userService) Logout(ctx context.Context, input *usecase.LogoutInput) error {
	srv.log(ctx).Info("Attempting to log out")

	if _, err := srv.tokenService.ValidateToken(input.RefreshToken); err != nil {
		// Even if the token is invalid, we can proceed to delete it from the database.
		srv.log(ctx).Warn("Logout with invalid token", slog.Any("error", err))
	}

	tokenHash := srv.tokenService.HashToken(input.RefreshToken)

	if err := srv.refreshTokenRepo.DeleteRefreshTokenByHash(ctx, tokenHash); err != nil {
		srv.log(ctx).Error("Failed to delete refresh token", slog.Any("error", err))

		return errors.Wrap(err, "failed to delete refresh token")
	}
	srv.log(ctx).Info("Successfully logged out")

	return nil
}

// RecoverPassword issues a single-use reset token for the account. The raw
// token is returned to the caller exactly once; only its hash is stored.
func (srv *userService) RecoverPassword(ctx context.Context, input *usecase.RecoverPasswordInput) (*usecase.RecoverPasswordOutput, error) {
	srv.log(ctx).Info("Starting password recovery", slog.String("email", input.Email))

	user, err := srv.userRepo.FindByEmail(ctx, input.Email)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, errors.Wrap(domainerrors.ErrUserNotFound, "no account for this email")
		}

		return nil, errors.Wrap(err, "failed to find user by email")
	}

	rawToken, err := generateResetToken()
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate reset token")
	}

	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		authRepo := repoFactory.AuthRepo()

		// Outstanding tokens are superseded by the new one.
		if err := authRepo.DeleteResetTokensByUserID(ctx, user.ID); err != nil {
			return errors.Wrap(err, "failed to clear previous reset tokens")
		}

		resetToken := &entity.PasswordResetToken{
			UserID:    user.ID,
			TokenHash: srv.tokenService.HashToken(rawToken),
			ExpiresAt: time.Now().Add(srv.resetTokenTTL),
		}

		if err := authRepo.CreateResetToken(ctx, resetToken); err != nil {
			return errors.Wrap(err, "failed to store reset token")
		}

		return nil
	})

	if err != nil {
		srv.log(ctx).Error("Failed to execute password recovery transaction", slog.Any("userID", user.ID), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to execute password recovery transaction")
	}

	srv.log(ctx).Info("Issued password reset token", slog.Any("userID", user.ID))

	return &usecase.RecoverPasswordOutput{ResetToken: rawToken}, nil
}

// ResetPassword consumes a reset token and replaces the account password.
// All active sessions are revoked so a stolen session cannot outlive the reset.
func (srv *userService) ResetPassword(ctx context.Context, input *usecase.ResetPasswordInput) error {
	srv.log(ctx).Info("Attempting password reset")

	if err := srv.hasher.ValidateStrength(input.NewPassword); err != nil {
		return errors.Wrap(domainerrors.ErrPasswordStrength, "new password does not meet security requirements")
	}

	hashedPassword, err := srv.hasher.Hash(input.NewPassword)
	if err != nil {
		return errors.Wrap(err, "failed to hash new password")
	}

	tokenHash := srv.tokenService.HashToken(input.Token)

	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		authRepo := repoFactory.AuthRepo()
		refreshRepo := repoFactory.RefreshTokenRepo()

		resetToken, err := authRepo.FindResetTokenByHash(ctx, tokenHash)
		if err != nil {
			if errors.Is(err, repository.ErrResetTokenNotFound) {
				return errors.Wrap(domainerrors.ErrResetTokenInvalid, "reset token not found")
			}

			return errors.Wrap(err, "failed to find reset token")
		}

		if !resetToken.Consumable(time.Now()) {
			return errors.Wrap(domainerrors.ErrResetTokenInvalid, "reset token expired or already used")
		}

		if err := authRepo.MarkResetTokenUsed(ctx, resetToken.ID); err != nil {
			return errors.Wrap(err, "failed to consume reset token")
		}

		if err := authRepo.UpdatePasswordHash(ctx, resetToken.UserID, hashedPassword); err != nil {
			return errors.Wrap(err, "failed to update password hash")
		}

		if err := refreshRepo.DeleteRefreshTokensByUserID(ctx, resetToken.UserID); err != nil {
			return errors.Wrap(err, "failed to revoke active sessions")
		}

		return nil
	})

	if err != nil {
		srv.log(ctx).Error("Failed to execute password reset transaction", slog.Any("error", err))

		return errors.Wrap(err, "failed to execute password reset transaction")
	}

	srv.log(ctx).Info("Password reset completed")

	return nil
}

// DeleteAccount removes the account and its dependent rows after a password check.
func (srv *userService) DeleteAccount(ctx context.Context, input *usecase.DeleteAccountInput) error {
	srv.log(ctx).Info("Attempting account deletion", slog.Any("userID", input.UserID))

	authRecord, err := srv.authRepo.FindAuthenticationByUserID(ctx, input.UserID)
	if err != nil {
		if errors.Is(err, repository.ErrAuthNotFound) {
			return errors.Wrap(domainerrors.ErrAuthNotFound, "no credentials for this account")
		}

		return errors.Wrap(err, "failed to load credentials for account deletion")
	}

	if !srv.hasher.Check(input.Password, authRecord.PasswordHash) {
		srv.log(ctx).Warn("Password mismatch during account deletion", slog.Any("userID", input.UserID))

		return errors.Wrap(domainerrors.ErrInvalidCredentials, "password mismatch during account deletion")
	}

	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		userRepo := repoFactory.UserRepo()
		refreshRepo := repoFactory.RefreshTokenRepo()

		if err := refreshRepo.DeleteRefreshTokensByUserID(ctx, input.UserID); err != nil {
			return errors.Wrap(err, "failed to revoke sessions during account deletion")
		}

		if err := userRepo.Delete(ctx, input.UserID); err != nil {
			return errors.Wrap(err, "failed to delete user")
		}

		return nil
	})

	if err != nil {
		srv.log(ctx).Error("Failed to execute account deletion transaction", slog.Any("userID", input.UserID), slog.Any("error", err))

		return errors.Wrap(err, "failed to execute account deletion transaction")
	}

	srv.log(ctx).Info("Account deleted", slog.Any("userID", input.UserID))

	return nil
}

// GetProfile returns the user with any attached role profiles.
func (srv *userService) GetProfile(ctx context.Context, userID uuid.UUID) (*entity.User, error) {
	user, err := srv.userRepo.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, errors.Wrap(domainerrors.ErrUserNotFound, "profile lookup failed")
		}

		return nil, errors.Wrap(err, "failed to find user by id")
	}

	return user, nil
}

func generateResetToken() (string, error) {
	buf := make([]byte, 32)
	if _, err := rand.Read(buf); err != nil {
		return "", errors.Wrap(err, "failed to read random bytes")
	}

	return hex.EncodeToString(buf), nil
}
