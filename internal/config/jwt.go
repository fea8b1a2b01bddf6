package config

import "fmt"

// Session token defaults.
const (
	DefaultJWTIssuer          = "talentdesk"
	DefaultJWTExpirationHours = 24
)

// JWTConfig holds configuration for admin session tokens.
type JWTConfig struct {
	Secret          string
	Issuer          string
	ExpirationHours int
}

// NewJWTConfig reads JWT_SECRET (required), JWT_ISSUER and JWT_EXPIRATION_HOURS.
func NewJWTConfig() (*JWTConfig, error) {
	hours, err := getEnvInt("JWT_EXPIRATION_HOURS", DefaultJWTExpirationHours)
	if err != nil {
		return nil, err
	}

	c := &JWTConfig{
		Secret:          getEnv("JWT_SECRET", ""),
		Issuer:          getEnv("JWT_ISSUER", DefaultJWTIssuer),
		ExpirationHours: hours,
	}
	if err := c.normalize(); err != nil {
		return nil, err
	}
	return c, nil
}

func (c *JWTConfig) normalize() error {
	switch {
	case c.Secret == "":
		return fmt.Errorf("JWT_SECRET is required but not set")
	case c.ExpirationHours < 1:
		return fmt.Errorf("JWT_EXPIRATION_HOURS must be at least 1 hour, got: %d", c.ExpirationHours)
	}
	if c.Issuer == "" {
		c.Issuer = DefaultJWTIssuer
	}
	return nil
}
