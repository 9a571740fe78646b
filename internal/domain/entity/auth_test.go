package entity

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestPasswordResetToken_Consumable(t *testing.T) {
	now := time.Now()
	used := now.Add(-time.Minute)

	tests := []struct {
		name  string
		token PasswordResetToken
		want  bool
	}{
		{
			name:  "fresh token",
			token: PasswordResetToken{ExpiresAt: now.Add(time.Hour)},
			want:  true,
		},
		{
			name:  "expired token",
			token: PasswordResetToken{ExpiresAt: now.Add(-time.Hour)},
			want:  false,
		},
		{
			name:  "used token",
			token: PasswordResetToken{ExpiresAt: now.Add(time.Hour), UsedAt: &used},
			want:  false,
		},
		{
			name:  "used and expired",
			token: PasswordResetToken{ExpiresAt: now.Add(-time.Hour), UsedAt: &used},
			want:  false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.token.Consumable(now))
		})
	}
}

func TestPasswordResetToken_Expired(t *testing.T) {
	now := time.Now()
	token := PasswordResetToken{ExpiresAt: now}

	assert.False(t, token.Expired(now))
	assert.True(t, token.Expired(now.Add(time.Second)))
}
