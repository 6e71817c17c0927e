package config

import (
	"fmt"
	"time"
)

const minSessionSecretLength = 16

// SessionConfig holds the cookie session settings used to keep a DQ draft
// (selected stroke, toggled infractions, other text) between requests.
type SessionConfig struct {
	// Name is the cookie name.
	Name string
	// Secret signs the session cookie.
	Secret string
	// MaxAge is the cookie lifetime.
	MaxAge time.Duration
	// Secure marks the cookie HTTPS-only.
	Secure bool
}

// LoadSessionConfigFromEnv loads session configuration from environment variables.
func LoadSessionConfigFromEnv() SessionConfig {
	return SessionConfig{
		Name:   GetEnv("SESSION_NAME", "swimdq_session"),
		Secret: GetEnv("SESSION_SECRET", "change-me-in-production"),
		MaxAge: GetEnvDuration("SESSION_MAX_AGE", 12*time.Hour),
		Secure: GetEnvBool("SESSION_SECURE", false),
	}
}

// Validate validates session configuration.
func (c SessionConfig) Validate() error {
	if c.Name == "" {
		return fmt.Errorf("session name is required")
	}
	if len(c.Secret) < minSessionSecretLength {
		return fmt.Errorf("session secret must be at least %d characters", minSessionSecretLength)
	}
	if c.MaxAge <= 0 {
		return fmt.Errorf("session MaxAge must be greater than 0")
	}
	return nil
}
