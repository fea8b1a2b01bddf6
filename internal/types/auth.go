// Package types provides type definitions for the recruitment records handled by talentdesk.
package types

import (
	"time"

	"github.com/go-playground/validator/v10"
)

// RoleAdmin is the only role allowed to use the recruitment API.
const RoleAdmin = "admin"

// LoginRequest represents an admin login request.
type LoginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// LoginResponse carries the issued bearer token.
type LoginResponse struct {
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expires_at"`
	Username  string    `json:"username"`
	Role      string    `json:"role"`
}

// Validate validates the LoginRequest using the validator.
func (r *LoginRequest) Validate() error {
	validate := validator.New()
	return validate.Struct(r)
}
