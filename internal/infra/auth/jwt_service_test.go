package auth

import (
	"testing"

	"verdant/config"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestJWTService(t *testing.T) *jwtService {
	cfg := &config.Config{}
	cfg.SecretKey.Access = "test-access-secret"
	cfg.SecretKey.Refresh = "test-refresh-secret"

	svc, err := NewJWTService(cfg)
	require.NoError(t, err)

	return svc.(*jwtService)
}

func TestNewJWTService_RequiresSecrets(t *testing.T) {
	cfg := &config.Config{}
	cfg.SecretKey.Access = "only-access"

	svc, err := NewJWTService(cfg)
	assert.Nil(t, svc)
	assert.Error(t, err)
}

func TestJWTService_GenerateAndValidateAccessToken(t *testing.T) {
	svc := newTestJWTService(t)
	userID := uuid.New()

	accessToken, refreshToken, err := svc.GenerateTokens(userID, []string{"buyer", "seller"})
	require.NoError(t, err)
	require.NotEmpty(t, accessToken)
	require.NotEmpty(t, refreshToken)
	assert.NotEqual(t, accessToken, refreshToken)

	claims, err := svc.ValidateToken(accessToken)
	require.NoError(t, err)
	assert.Equal(t, userID, claims.UserID)
	assert.Equal(t, []string{"buyer", "seller"}, claims.Roles)
	assert.Equal(t, "access", claims.Type)
}

func TestJWTService_RefreshTokenCarriesNoRoles(t *testing.T) {
	svc := newTestJWTService(t)
	userID := uuid.New()

	_, refreshToken, err := svc.GenerateTokens(userID, []string{"buyer"})
	require.NoError(t, err)

	claims, err := svc.ValidateToken(refreshToken)
	require.NoError(t, err)
	assert.Equal(t, userID, claims.UserID)
	assert.Empty(t, claims.Roles)
	assert.Equal(t, "refresh", claims.Type)
}

func TestJWTService_ValidateToken_Garbage(t *testing.T) {
	svc := newTestJWTService(t)

	claims, err := svc.ValidateToken("not.a.token")
	assert.Nil(t, claims)
	assert.Error(t, err)
}

func TestJWTService_ValidateToken_WrongSecret(t *testing.T) {
	svc := newTestJWTService(t)

	other := &config.Config{}
	other.SecretKey.Access = "different-access-secret"
	other.SecretKey.Refresh = "different-refresh-secret"
	otherSvc, err := NewJWTService(other)
	require.NoError(t, err)

	accessToken, _, err := svc.GenerateTokens(uuid.New(), []string{"buyer"})
	require.NoError(t, err)

	claims, err := otherSvc.ValidateToken(accessToken)
	assert.Nil(t, claims)
	assert.Error(t, err)
}

func TestJWTService_HashToken_IsDeterministic(t *testing.T) {
	svc := newTestJWTService(t)

	first := svc.HashToken("some-refresh-token")
	second := svc.HashToken("some-refresh-token")
	other := svc.HashToken("another-token")

	assert.Equal(t, first, second)
	assert.NotEqual(t, first, other)
	assert.Len(t, first, 64)
}

func TestJWTService_GetRefreshTokenDuration(t *testing.T) {
	svc := newTestJWTService(t)

	assert.Equal(t, refreshTokenTTL, svc.GetRefreshTokenDuration())
}
