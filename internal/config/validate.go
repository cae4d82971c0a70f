package config

import (
	"fmt"
)

// Validate performs business-rule validation on the loaded configuration.
// It must be called after loading; Load calls it automatically.
func (c *Config) Validate() error {
	if len(c.Auth.JWTSecret) < 32 {
		return fmt.Errorf("auth.jwt_secret must be at least 32 characters (got %d)", len(c.Auth.JWTSecret))
	}

	// Stream credentials are a pair: key without secret (or vice versa)
	// means a half-configured chat bridge.
	if (c.Stream.APIKey == "") != (c.Stream.APISecret == "") {
		return fmt.Errorf("stream.api_key and stream.api_secret must both be set or both be empty")
	}

	if c.Recruitment.ReminderWindow <= 0 {
		return fmt.Errorf("recruitment.reminder_window must be positive (got %v)", c.Recruitment.ReminderWindow)
	}

	if c.Server.RateLimitPerMin <= 0 {
		return fmt.Errorf("server.rate_limit_per_min must be positive (got %d)", c.Server.RateLimitPerMin)
	}

	return nil
}
