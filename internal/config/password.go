package config

import (
	"crypto/subtle"
	"fmt"
	"os"

	"golang.org/x/crypto/bcrypt"
)

// PasswordConfig holds configuration for password hashing and verification.
type PasswordConfig struct {
	BcryptCost int
	Pepper     string // optional global secret appended before hashing
}

// DefaultBcryptCost is used when BCRYPT_COST is unset.
const DefaultBcryptCost = 12

// NewPasswordConfig reads BCRYPT_COST and the optional PASSWORD_PEPPER.
func NewPasswordConfig() (*PasswordConfig, error) {
	cost, err := getEnvInt("BCRYPT_COST", DefaultBcryptCost)
	if err != nil {
		return nil, err
	}

	c := &PasswordConfig{BcryptCost: cost, Pepper: getEnv("PASSWORD_PEPPER", "")}
	if err := c.normalize(); err != nil {
		return nil, err
	}
	return c, nil
}

func (c *PasswordConfig) normalize() error {
	if c.BcryptCost < bcrypt.MinCost || c.BcryptCost > 14 {
		return fmt.Errorf("bcrypt cost out of range: %d (must be %d-14)", c.BcryptCost, bcrypt.MinCost)
	}
	return nil
}

func (c *PasswordConfig) peppered(pw string) []byte {
	return []byte(pw + c.Pepper)
}

// HashPassword hashes a password using bcrypt (with optional pepper).
func (c *PasswordConfig) HashPassword(pw string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword(c.peppered(pw), c.BcryptCost)
	if err != nil {
		return "", fmt.Errorf("failed to hash password: %w", err)
	}
	return string(hash), nil
}

// VerifyPassword verifies a password against a stored hash (with optional pepper).
func (c *PasswordConfig) VerifyPassword(pw, storedHash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(storedHash), c.peppered(pw)) == nil
}

// AdminConfig is the single reviewer account allowed to change records.
type AdminConfig struct {
	Username     string
	PasswordHash string
	passwords    *PasswordConfig
}

// NewAdminConfig reads ADMIN_USERNAME (default "admin") and either
// ADMIN_PASSWORD_HASH or ADMIN_PASSWORD, hashing the latter on load.
func NewAdminConfig(passwords *PasswordConfig) (*AdminConfig, error) {
	if passwords == nil {
		return nil, fmt.Errorf("password config is required")
	}

	username := os.Getenv("ADMIN_USERNAME")
	if username == "" {
		username = "admin"
	}

	hash := os.Getenv("ADMIN_PASSWORD_HASH")
	if hash == "" {
		plain := os.Getenv("ADMIN_PASSWORD")
		if plain == "" {
			return nil, fmt.Errorf("ADMIN_PASSWORD_HASH or ADMIN_PASSWORD is required")
		}
		var err error
		if hash, err = passwords.HashPassword(plain); err != nil {
			return nil, err
		}
	}

	return &AdminConfig{Username: username, PasswordHash: hash, passwords: passwords}, nil
}

// Authenticate reports whether the credentials match the admin account.
func (a *AdminConfig) Authenticate(username, password string) bool {
	userOK := subtle.ConstantTimeCompare([]byte(username), []byte(a.Username)) == 1
	passOK := a.passwords.VerifyPassword(password, a.PasswordHash)
	return userOK && passOK
}
