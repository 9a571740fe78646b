package auth

import (
	"strings"
	"testing"

	"verdant/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestHasherConfig() *config.Config {
	return &config.Config{
		Auth: &config.AuthConfig{BcryptCost: 4},
		PasswordStrength: &config.PasswordStrengthConfig{
			MinLength:        8,
			MaxLength:        72,
			RequireUppercase: true,
			RequireLowercase: true,
			RequireNumbers:   true,
			RequireSpecial:   true,
		},
	}
}

func TestBcryptHasher_HashAndCheck(t *testing.T) {
	hasher := NewBcryptHasher(newTestHasherConfig())

	hash, err := hasher.Hash("Str0ng!Pass")
	require.NoError(t, err)
	assert.NotEqual(t, "Str0ng!Pass", hash)

	assert.True(t, hasher.Check("Str0ng!Pass", hash))
	assert.False(t, hasher.Check("wrong-password", hash))
}

func TestBcryptHasher_HashesAreSalted(t *testing.T) {
	hasher := NewBcryptHasher(newTestHasherConfig())

	first, err := hasher.Hash("Str0ng!Pass")
	require.NoError(t, err)
	second, err := hasher.Hash("Str0ng!Pass")
	require.NoError(t, err)

	assert.NotEqual(t, first, second)
}

func TestBcryptHasher_ValidateStrength(t *testing.T) {
	hasher := NewBcryptHasher(newTestHasherConfig())

	tests := []struct {
		name     string
		password string
		wantErr  string
	}{
		{name: "valid", password: "Str0ng!Pass"},
		{name: "too short", password: "S0!a", wantErr: "at least 8"},
		{name: "too long", password: "Aa1!" + strings.Repeat("x", 80), wantErr: "at most 72"},
		{name: "missing uppercase", password: "weak!pass1", wantErr: "uppercase"},
		{name: "missing number", password: "Weak!password", wantErr: "number"},
		{name: "missing special", password: "Weakpassword1", wantErr: "special"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := hasher.ValidateStrength(tt.password)
			if tt.wantErr == "" {
				assert.NoError(t, err)
			} else {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr)
			}
		})
	}
}

func TestBcryptHasher_NilPolicySkipsValidation(t *testing.T) {
	hasher := NewBcryptHasher(&config.Config{})

	assert.NoError(t, hasher.ValidateStrength("x"))
}
