package impl

import (
	"io"
	"log/slog"
	"time"

	"verdant/config"
)

// newTestConfig returns the tunables the services read, mirroring the
// development defaults.
func newTestConfig() *config.Config {
	cfg := &config.Config{
		Auth: &config.AuthConfig{
			BcryptCost:        4,
			MaxActiveSessions: 5,
			ResetTokenTTL:     time.Hour,
		},
		PasswordStrength: &config.PasswordStrengthConfig{
			MinLength: 8,
			MaxLength: 72,
		},
		Market: &config.MarketConfig{
			MaxOpenBidsPerProduct: 3,
			DefaultPageSize:       20,
			MaxPageSize:           100,
		},
		Payment: &config.PaymentConfig{
			Provider:    "simulated",
			UPIAddress:  "verdant@upi",
			LinkBaseURL: "https://app.verdant.test",
		},
	}
	cfg.Env.ServiceName = "verdant"
	cfg.SecretKey.Access = "test-access-secret"
	cfg.SecretKey.Refresh = "test-refresh-secret"

	return cfg
}

func newTestLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}
