package impl

import (
	"context"
	"testing"
	"time"

	"verdant/internal/domain/entity"
	domainerrors "verdant/internal/domain/errors"
	"verdant/internal/domain/repository"
	"verdant/internal/domain/service"
	mockRepo "verdant/internal/mocks/repository"
	mockSvc "verdant/internal/mocks/service"
	"verdant/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// userServiceFixtures holds all test dependencies for user service tests.
type userServiceFixtures struct {
	service          usecase.UserUsecase
	txManager        *mockRepo.MockTransactionManager
	userRepo         *mockRepo.MockUserRepository
	authRepo         *mockRepo.MockAuthRepository
	refreshTokenRepo *mockRepo.MockRefreshTokenRepository
	hasher           *mockSvc.MockPasswordHasher
	tokenService     *mockSvc.MockTokenService
	repoFactory      *mockRepo.MockRepositoryFactory
}

func createTestUserService(t *testing.T) userServiceFixtures {
	txManager := mockRepo.NewMockTransactionManager(t)
	userRepo := mockRepo.NewMockUserRepository(t)
	authRepo := mockRepo.NewMockAuthRepository(t)
	refreshTokenRepo := mockRepo.NewMockRefreshTokenRepository(t)
	hasher := mockSvc.NewMockPasswordHasher(t)
	tokenService := mockSvc.NewMockTokenService(t)
	repoFactory := mockRepo.NewMockRepositoryFactory(t)

	srv := NewUserService(UserServiceParams{
		TxManager:        txManager,
		UserRepo:         userRepo,
		AuthRepo:         authRepo,
		RefreshTokenRepo: refreshTokenRepo,
		Hasher:           hasher,
		TokenService:     tokenService,
		Config:           newTestConfig(),
		Logger:           newTestLogger(),
	})

	return userServiceFixtures{
		service:          srv,
		txManager:        txManager,
		userRepo:         userRepo,
		authRepo:         authRepo,
		refreshTokenRepo: refreshTokenRepo,
		hasher:           hasher,
		tokenService:     tokenService,
		repoFactory:      repoFactory,
	}
}

func (fx userServiceFixtures) expectTransaction(ctx context.Context) {
	fx.txManager.EXPECT().
		Execute(ctx, mock.Anything).
		RunAndReturn(func(_ context.Context, fn func(repository.RepositoryFactory) error) error {
			return fn(fx.repoFactory)
		})
}

func TestUserService_RegisterBuyer_NewAccount(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	input := &usecase.RegisterBuyerInput{
		Name:            "Asha",
		Email:           "asha@example.com",
		Password:        "Str0ng!Pass",
		ShippingAddress: "12 Garden Lane",
		Mobile:          "9876543210",
	}

	fx.expectTransaction(ctx)
	fx.repoFactory.EXPECT().UserRepo().Return(fx.userRepo)
	fx.repoFactory.EXPECT().AuthRepo().Return(fx.authRepo)

	fx.userRepo.EXPECT().
		FindByEmail(ctx, input.Email).
		Return(nil, repository.ErrUserNotFound)

	fx.hasher.EXPECT().
		ValidateStrength(input.Password).
		Return(nil)

	fx.hasher.EXPECT().
		Hash(input.Password).
		Return("hashed-password", nil)

	fx.userRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.User")).
		Run(func(_ context.Context, user *entity.User) {
			user.ID = uuid.New()
		}).
		Return(nil)

	fx.authRepo.EXPECT().
		CreateAuthentication(ctx, mock.AnythingOfType("*entity.Authentication")).
		Run(func(_ context.Context, auth *entity.Authentication) {
			assert.Equal(t, entity.ProviderTypeEmail, auth.Provider)
			assert.Equal(t, "hashed-password", auth.PasswordHash)
		}).
		Return(nil)

	output, err := fx.service.RegisterBuyer(ctx, input)
	require.NoError(t, err)
	require.NotNil(t, output)
	assert.Equal(t, "Asha", output.User.Name)
	assert.Equal(t, "asha@example.com", output.User.Email)
	require.NotNil(t, output.User.BuyerProfile)
	assert.Equal(t, "12 Garden Lane", output.User.BuyerProfile.ShippingAddress)
	assert.Equal(t, "9876543210", output.User.BuyerProfile.Mobile)
	assert.Nil(t, output.User.SellerProfile)
}

func TestUserService_RegisterBuyer_WeakPassword(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	input := &usecase.RegisterBuyerInput{
		Name:     "Asha",
		Email:    "asha@example.com",
		Password: "short",
	}

	fx.expectTransaction(ctx)
	fx.repoFactory.EXPECT().UserRepo().Return(fx.userRepo)
	fx.repoFactory.EXPECT().AuthRepo().Return(fx.authRepo)

	fx.userRepo.EXPECT().
		FindByEmail(ctx, input.Email).
		Return(nil, repository.ErrUserNotFound)

	fx.hasher.EXPECT().
		ValidateStrength(input.Password).
		Return(errors.New("password must be at least 8 characters"))

	output, err := fx.service.RegisterBuyer(ctx, input)
	assert.Nil(t, output)
	assert.ErrorIs(t, err, domainerrors.ErrPasswordStrength)
}

func TestUserService_RegisterSeller_AttachToExistingAccount(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	userID := uuid.New()
	input := &usecase.RegisterSellerInput{
		Name:      "Asha's Nursery",
		Email:     "asha@example.com",
		Password:  "Str0ng!Pass",
		StoreName: "Asha's Nursery",
		Bio:       "Rare aroids and succulents.",
	}

	existing := &entity.User{
		ID:    userID,
		Name:  "Asha",
		Email: input.Email,
		BuyerProfile: &entity.BuyerProfile{
			UserID: userID,
			Mobile: "9876543210",
		},
	}

	fx.expectTransaction(ctx)
	fx.repoFactory.EXPECT().UserRepo().Return(fx.userRepo)
	fx.repoFactory.EXPECT().AuthRepo().Return(fx.authRepo)

	fx.userRepo.EXPECT().
		FindByEmail(ctx, input.Email).
		Return(existing, nil)

	fx.authRepo.EXPECT().
		FindAuthenticationByUserID(ctx, userID).
		Return(&entity.Authentication{UserID: userID, PasswordHash: "hashed-password"}, nil)

	fx.hasher.EXPECT().
		Check(input.Password, "hashed-password").
		Return(true)

	fx.userRepo.EXPECT().
		Update(ctx, existing).
		Return(nil)

	output, err := fx.service.RegisterSeller(ctx, input)
	require.NoError(t, err)
	require.NotNil(t, output.User.SellerProfile)
	assert.Equal(t, userID, output.User.SellerProfile.UserID)
	assert.Equal(t, "Asha's Nursery", output.User.SellerProfile.StoreName)
	require.NotNil(t, output.User.BuyerProfile)
}

func TestUserService_RegisterSeller_WrongPasswordOnExistingAccount(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	userID := uuid.New()
	input := &usecase.RegisterSellerInput{
		Email:     "asha@example.com",
		Password:  "wrong-password",
		StoreName: "Asha's Nursery",
	}

	fx.expectTransaction(ctx)
	fx.repoFactory.EXPECT().UserRepo().Return(fx.userRepo)
	fx.repoFactory.EXPECT().AuthRepo().Return(fx.authRepo)

	fx.userRepo.EXPECT().
		FindByEmail(ctx, input.Email).
		Return(&entity.User{ID: userID, Email: input.Email}, nil)

	fx.authRepo.EXPECT().
		FindAuthenticationByUserID(ctx, userID).
		Return(&entity.Authentication{UserID: userID, PasswordHash: "hashed-password"}, nil)

	fx.hasher.EXPECT().
		Check(input.Password, "hashed-password").
		Return(false)

	output, err := fx.service.RegisterSeller(ctx, input)
	assert.Nil(t, output)
	assert.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)
}

func TestUserService_RegisterSeller_ProfileAlreadyExists(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	userID := uuid.New()
	input := &usecase.RegisterSellerInput{
		Email:     "asha@example.com",
		Password:  "Str0ng!Pass",
		StoreName: "Asha's Nursery",
	}

	existing := &entity.User{
		ID:    userID,
		Email: input.Email,
		SellerProfile: &entity.SellerProfile{
			UserID:    userID,
			StoreName: "Asha's Nursery",
		},
	}

	fx.expectTransaction(ctx)
	fx.repoFactory.EXPECT().UserRepo().Return(fx.userRepo)
	fx.repoFactory.EXPECT().AuthRepo().Return(fx.authRepo)

	fx.userRepo.EXPECT().
		FindByEmail(ctx, input.Email).
		Return(existing, nil)

	fx.authRepo.EXPECT().
		FindAuthenticationByUserID(ctx, userID).
		Return(&entity.Authentication{UserID: userID, PasswordHash: "hashed-password"}, nil)

	fx.hasher.EXPECT().
		Check(input.Password, "hashed-password").
		Return(true)

	output, err := fx.service.RegisterSeller(ctx, input)
	assert.Nil(t, output)
	assert.ErrorIs(t, err, domainerrors.ErrSellerProfileExists)
}

func TestUserService_Login_Success(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	userID := uuid.New()
	user := &entity.User{
		ID:    userID,
		Email: "asha@example.com",
		BuyerProfile: &entity.BuyerProfile{
			UserID: userID,
		},
	}

	fx.expectTransaction(ctx)
	fx.repoFactory.EXPECT().UserRepo().Return(fx.userRepo)
	fx.repoFactory.EXPECT().AuthRepo().Return(fx.authRepo)

	fx.userRepo.EXPECT().
		FindByEmail(ctx, user.Email).
		Return(user, nil)

	fx.authRepo.EXPECT().
		FindAuthenticationByUserID(ctx, userID).
		Return(&entity.Authentication{UserID: userID, PasswordHash: "hashed-password"}, nil)

	fx.hasher.EXPECT().
		Check("Str0ng!Pass", "hashed-password").
		Return(true)

	fx.tokenService.EXPECT().
		GenerateTokens(userID, []string{"buyer"}).
		Return("access-token", "refresh-token", nil)

	// The session limit is enabled, so the insert runs in a second
	// transaction with a count check; both route through the same factory.
	fx.repoFactory.EXPECT().RefreshTokenRepo().Return(fx.refreshTokenRepo)

	fx.refreshTokenRepo.EXPECT().
		CountActiveSessionsByUserID(ctx, userID).
		Return(1, nil)

	fx.tokenService.EXPECT().
		HashToken("refresh-token").
		Return("refresh-token-hash")

	fx.tokenService.EXPECT().
		GetRefreshTokenDuration().
		Return(24 * time.Hour)

	fx.refreshTokenRepo.EXPECT().
		CreateRefreshToken(ctx, mock.AnythingOfType("*entity.RefreshToken")).
		Run(func(_ context.Context, token *entity.RefreshToken) {
			assert.Equal(t, userID, token.UserID)
			assert.Equal(t, "refresh-token-hash", token.TokenHash)
		}).
		Return(nil)

	output, err := fx.service.Login(ctx, &usecase.LoginInput{
		Email:    user.Email,
		Password: "Str0ng!Pass",
	})
	require.NoError(t, err)
	assert.Equal(t, "access-token", output.AccessToken)
	assert.Equal(t, "refresh-token", output.RefreshToken)
	assert.Equal(t, user, output.User)
}

func TestUserService_Login_UnknownEmail(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()

	fx.expectTransaction(ctx)
	fx.repoFactory.EXPECT().UserRepo().Return(fx.userRepo)
	fx.repoFactory.EXPECT().AuthRepo().Return(fx.authRepo)

	fx.userRepo.EXPECT().
		FindByEmail(ctx, "nobody@example.com").
		Return(nil, repository.ErrUserNotFound)

	output, err := fx.service.Login(ctx, &usecase.LoginInput{
		Email:    "nobody@example.com",
		Password: "whatever",
	})
	assert.Nil(t, output)
	assert.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)
}

func TestUserService_Login_WrongPassword(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	userID := uuid.New()

	fx.expectTransaction(ctx)
	fx.repoFactory.EXPECT().UserRepo().Return(fx.userRepo)
	fx.repoFactory.EXPECT().AuthRepo().Return(fx.authRepo)

	fx.userRepo.EXPECT().
		FindByEmail(ctx, "asha@example.com").
		Return(&entity.User{ID: userID, Email: "asha@example.com"}, nil)

	fx.authRepo.EXPECT().
		FindAuthenticationByUserID(ctx, userID).
		Return(&entity.Authentication{UserID: userID, PasswordHash: "hashed-password"}, nil)

	fx.hasher.EXPECT().
		Check("wrong", "hashed-password").
		Return(false)

	output, err := fx.service.Login(ctx, &usecase.LoginInput{
		Email:    "asha@example.com",
		Password: "wrong",
	})
	assert.Nil(t, output)
	assert.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)
}

func TestUserService_Login_SessionLimitExceeded(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	userID := uuid.New()

	fx.expectTransaction(ctx)
	fx.repoFactory.EXPECT().UserRepo().Return(fx.userRepo)
	fx.repoFactory.EXPECT().AuthRepo().Return(fx.authRepo)

	fx.userRepo.EXPECT().
		FindByEmail(ctx, "asha@example.com").
		Return(&entity.User{ID: userID, Email: "asha@example.com"}, nil)

	fx.authRepo.EXPECT().
		FindAuthenticationByUserID(ctx, userID).
		Return(&entity.Authentication{UserID: userID, PasswordHash: "hashed-password"}, nil)

	fx.hasher.EXPECT().
		Check("Str0ng!Pass", "hashed-password").
		Return(true)

	fx.tokenService.EXPECT().
		GenerateTokens(userID, mock.AnythingOfType("[]string")).
		Return("access-token", "refresh-token", nil)

	fx.repoFactory.EXPECT().RefreshTokenRepo().Return(fx.refreshTokenRepo)

	// newTestConfig allows 5 active sessions.
	fx.refreshTokenRepo.EXPECT().
		CountActiveSessionsByUserID(ctx, userID).
		Return(5, nil)

	output, err := fx.service.Login(ctx, &usecase.LoginInput{
		Email:    "asha@example.com",
		Password: "Str0ng!Pass",
	})
	assert.Nil(t, output)
	assert.ErrorIs(t, err, domainerrors.ErrSessionLimitExceeded)
}

func TestUserService_RefreshToken_Success(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	userID := uuid.New()
	user := &entity.User{
		ID:           userID,
		BuyerProfile: &entity.BuyerProfile{UserID: userID},
	}

	fx.tokenService.EXPECT().
		ValidateToken("refresh-token").
		Return(&service.Claims{UserID: userID, Type: "refresh"}, nil)

	fx.expectTransaction(ctx)
	fx.repoFactory.EXPECT().UserRepo().Return(fx.userRepo)
	fx.repoFactory.EXPECT().RefreshTokenRepo().Return(fx.refreshTokenRepo)

	fx.tokenService.EXPECT().
		HashToken("refresh-token").
		Return("refresh-token-hash")

	fx.refreshTokenRepo.EXPECT().
		FindRefreshTokenByHash(ctx, "refresh-token-hash").
		Return(&entity.RefreshToken{UserID: userID, TokenHash: "refresh-token-hash"}, nil)

	fx.userRepo.EXPECT().
		FindByID(ctx, userID).
		Return(user, nil)

	fx.tokenService.EXPECT().
		GenerateTokens(userID, []string{"buyer"}).
		Return("new-access-token", "unused-refresh", nil)

	output, err := fx.service.RefreshToken(ctx, &usecase.RefreshTokenInput{RefreshToken: "refresh-token"})
	require.NoError(t, err)
	assert.Equal(t, "new-access-token", output.AccessToken)
}

func TestUserService_RefreshToken_InvalidToken(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()

	fx.tokenService.EXPECT().
		ValidateToken("garbage").
		Return(nil, errors.New("token is malformed"))

	output, err := fx.service.RefreshToken(ctx, &usecase.RefreshTokenInput{RefreshToken: "garbage"})
	assert.Nil(t, output)
	assert.ErrorIs(t, err, domainerrors.ErrRefreshTokenInvalid)
}

func TestUserService_RefreshToken_RevokedSession(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	userID := uuid.New()

	fx.tokenService.EXPECT().
		ValidateToken("refresh-token").
		Return(&service.Claims{UserID: userID, Type: "refresh"}, nil)

	fx.expectTransaction(ctx)
	fx.repoFactory.EXPECT().UserRepo().Return(fx.userRepo)
	fx.repoFactory.EXPECT().RefreshTokenRepo().Return(fx.refreshTokenRepo)

	fx.tokenService.EXPECT().
		HashToken("refresh-token").
		Return("refresh-token-hash")

	fx.refreshTokenRepo.EXPECT().
		FindRefreshTokenByHash(ctx, "refresh-token-hash").
		Return(nil, repository.ErrRefreshTokenNotFound)

	output, err := fx.service.RefreshToken(ctx, &usecase.RefreshTokenInput{RefreshToken: "refresh-token"})
	assert.Nil(t, output)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "refresh token not found or expired")
}

func TestUserService_Logout_DeletesToken(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()

	fx.tokenService.EXPECT().
		ValidateToken("refresh-token").
		Return(&service.Claims{UserID: uuid.New()}, nil)

	fx.tokenService.EXPECT().
		HashToken("refresh-token").
		Return("refresh-token-hash")

	fx.refreshTokenRepo.EXPECT().
		DeleteRefreshTokenByHash(ctx, "refresh-token-hash").
		Return(nil)

	err := fx.service.Logout(ctx, &usecase.LogoutInput{RefreshToken: "refresh-token"})
	assert.NoError(t, err)
}

func TestUserService_Logout_InvalidTokenStillDeleted(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()

	fx.tokenService.EXPECT().
		ValidateToken("expired-token").
		Return(nil, errors.New("token is expired"))

	fx.tokenService.EXPECT().
		HashToken("expired-token").
		Return("expired-token-hash")

	fx.refreshTokenRepo.EXPECT().
		DeleteRefreshTokenByHash(ctx, "expired-token-hash").
		Return(nil)

	err := fx.service.Logout(ctx, &usecase.LogoutInput{RefreshToken: "expired-token"})
	assert.NoError(t, err)
}

func TestUserService_RecoverPassword_IssuesToken(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	userID := uuid.New()

	fx.userRepo.EXPECT().
		FindByEmail(ctx, "asha@example.com").
		Return(&entity.User{ID: userID, Email: "asha@example.com"}, nil)

	fx.expectTransaction(ctx)
	fx.repoFactory.EXPECT().AuthRepo().Return(fx.authRepo)

	fx.authRepo.EXPECT().
		DeleteResetTokensByUserID(ctx, userID).
		Return(nil)

	fx.tokenService.EXPECT().
		HashToken(mock.AnythingOfType("string")).
		Return("reset-token-hash")

	fx.authRepo.EXPECT().
		CreateResetToken(ctx, mock.AnythingOfType("*entity.PasswordResetToken")).
		Run(func(_ context.Context, token *entity.PasswordResetToken) {
			assert.Equal(t, userID, token.UserID)
			assert.Equal(t, "reset-token-hash", token.TokenHash)
			assert.True(t, token.ExpiresAt.After(time.Now()))
		}).
		Return(nil)

	output, err := fx.service.RecoverPassword(ctx, &usecase.RecoverPasswordInput{Email: "asha@example.com"})
	require.NoError(t, err)
	// The raw token is a 32-byte hex string, surfaced exactly once.
	assert.Len(t, output.ResetToken, 64)
}

func TestUserService_RecoverPassword_UnknownEmail(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()

	fx.userRepo.EXPECT().
		FindByEmail(ctx, "nobody@example.com").
		Return(nil, repository.ErrUserNotFound)

	output, err := fx.service.RecoverPassword(ctx, &usecase.RecoverPasswordInput{Email: "nobody@example.com"})
	assert.Nil(t, output)
	assert.ErrorIs(t, err, domainerrors.ErrUserNotFound)
}

func TestUserService_ResetPassword_Success(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	userID := uuid.New()
	tokenID := uuid.New()

	fx.hasher.EXPECT().
		ValidateStrength("N3w!Password").
		Return(nil)

	fx.hasher.EXPECT().
		Hash("N3w!Password").
		Return("new-hash", nil)

	fx.tokenService.EXPECT().
		HashToken("raw-reset-token").
		Return("reset-token-hash")

	fx.expectTransaction(ctx)
	fx.repoFactory.EXPECT().AuthRepo().Return(fx.authRepo)
	fx.repoFactory.EXPECT().RefreshTokenRepo().Return(fx.refreshTokenRepo)

	fx.authRepo.EXPECT().
		FindResetTokenByHash(ctx, "reset-token-hash").
		Return(&entity.PasswordResetToken{
			ID:        tokenID,
			UserID:    userID,
			TokenHash: "reset-token-hash",
			ExpiresAt: time.Now().Add(10 * time.Minute),
		}, nil)

	fx.authRepo.EXPECT().
		MarkResetTokenUsed(ctx, tokenID).
		Return(nil)

	fx.authRepo.EXPECT().
		UpdatePasswordHash(ctx, userID, "new-hash").
		Return(nil)

	fx.refreshTokenRepo.EXPECT().
		DeleteRefreshTokensByUserID(ctx, userID).
		Return(nil)

	err := fx.service.ResetPassword(ctx, &usecase.ResetPasswordInput{
		Token:       "raw-reset-token",
		NewPassword: "N3w!Password",
	})
	assert.NoError(t, err)
}

func TestUserService_ResetPassword_ExpiredToken(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()

	fx.hasher.EXPECT().
		ValidateStrength("N3w!Password").
		Return(nil)

	fx.hasher.EXPECT().
		Hash("N3w!Password").
		Return("new-hash", nil)

	fx.tokenService.EXPECT().
		HashToken("raw-reset-token").
		Return("reset-token-hash")

	fx.expectTransaction(ctx)
	fx.repoFactory.EXPECT().AuthRepo().Return(fx.authRepo)
	fx.repoFactory.EXPECT().RefreshTokenRepo().Return(fx.refreshTokenRepo)

	fx.authRepo.EXPECT().
		FindResetTokenByHash(ctx, "reset-token-hash").
		Return(&entity.PasswordResetToken{
			ID:        uuid.New(),
			UserID:    uuid.New(),
			ExpiresAt: time.Now().Add(-time.Minute),
		}, nil)

	err := fx.service.ResetPassword(ctx, &usecase.ResetPasswordInput{
		Token:       "raw-reset-token",
		NewPassword: "N3w!Password",
	})
	assert.ErrorIs(t, err, domainerrors.ErrResetTokenInvalid)
}

func TestUserService_ResetPassword_UsedToken(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	usedAt := time.Now().Add(-time.Hour)

	fx.hasher.EXPECT().
		ValidateStrength("N3w!Password").
		Return(nil)

	fx.hasher.EXPECT().
		Hash("N3w!Password").
		Return("new-hash", nil)

	fx.tokenService.EXPECT().
		HashToken("raw-reset-token").
		Return("reset-token-hash")

	fx.expectTransaction(ctx)
	fx.repoFactory.EXPECT().AuthRepo().Return(fx.authRepo)
	fx.repoFactory.EXPECT().RefreshTokenRepo().Return(fx.refreshTokenRepo)

	fx.authRepo.EXPECT().
		FindResetTokenByHash(ctx, "reset-token-hash").
		Return(&entity.PasswordResetToken{
			ID:        uuid.New(),
			UserID:    uuid.New(),
			ExpiresAt: time.Now().Add(10 * time.Minute),
			UsedAt:    &usedAt,
		}, nil)

	err := fx.service.ResetPassword(ctx, &usecase.ResetPasswordInput{
		Token:       "raw-reset-token",
		NewPassword: "N3w!Password",
	})
	assert.ErrorIs(t, err, domainerrors.ErrResetTokenInvalid)
}

func TestUserService_DeleteAccount_Success(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	userID := uuid.New()

	fx.authRepo.EXPECT().
		FindAuthenticationByUserID(ctx, userID).
		Return(&entity.Authentication{UserID: userID, PasswordHash: "hashed-password"}, nil)

	fx.hasher.EXPECT().
		Check("Str0ng!Pass", "hashed-password").
		Return(true)

	fx.expectTransaction(ctx)
	fx.repoFactory.EXPECT().UserRepo().Return(fx.userRepo)
	fx.repoFactory.EXPECT().RefreshTokenRepo().Return(fx.refreshTokenRepo)

	fx.refreshTokenRepo.EXPECT().
		DeleteRefreshTokensByUserID(ctx, userID).
		Return(nil)

	fx.userRepo.EXPECT().
		Delete(ctx, userID).
		Return(nil)

	err := fx.service.DeleteAccount(ctx, &usecase.DeleteAccountInput{
		UserID:   userID,
		Password: "Str0ng!Pass",
	})
	assert.NoError(t, err)
}

func TestUserService_DeleteAccount_WrongPassword(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	userID := uuid.New()

	fx.authRepo.EXPECT().
		FindAuthenticationByUserID(ctx, userID).
		Return(&entity.Authentication{UserID: userID, PasswordHash: "hashed-password"}, nil)

	fx.hasher.EXPECT().
		Check("wrong", "hashed-password").
		Return(false)

	err := fx.service.DeleteAccount(ctx, &usecase.DeleteAccountInput{
		UserID:   userID,
		Password: "wrong",
	})
	assert.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)
}

func TestUserService_GetProfile_Success(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	userID := uuid.New()
	user := &entity.User{
		ID:           userID,
		Name:         "Asha",
		BuyerProfile: &entity.BuyerProfile{UserID: userID},
	}

	fx.userRepo.EXPECT().
		FindByID(ctx, userID).
		Return(user, nil)

	got, err := fx.service.GetProfile(ctx, userID)
	require.NoError(t, err)
	assert.Equal(t, user, got)
}

func TestUserService_GetProfile_NotFound(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	userID := uuid.New()

	fx.userRepo.EXPECT().
		FindByID(ctx, userID).
		Return(nil, repository.ErrUserNotFound)

	got, err := fx.service.GetProfile(ctx, userID)
	assert.Nil(t, got)
	assert.ErrorIs(t, err, domainerrors.ErrUserNotFound)
}
