// Package types provides type definitions for the structured data exchanged with the Jobly backend.
package types

import (
	"github.com/go-playground/validator/v10"
)

// LoginRequest represents the credentials posted to auth/token.
type LoginRequest struct {
	Username string `json:"username" validate:"required,min=1"`
	Password string `json:"password" validate:"required"`
}

// SignupRequest represents the registration posted to auth/register.
type SignupRequest struct {
	Username  string `json:"username" validate:"required,min=1"`
	Password  string `json:"password" validate:"required,min=5"`
	FirstName string `json:"firstName" validate:"required"`
	LastName  string `json:"lastName" validate:"required"`
	Email     string `json:"email" validate:"required,email"`
}

// ProfileUpdate represents a partial profile edit sent via PATCH users/{username}.
// The username travels in the URL path, never in the body.
type ProfileUpdate struct {
	FirstName string `json:"firstName" validate:"required"`
	LastName  string `json:"lastName" validate:"required"`
	Email     string `json:"email" validate:"required,email"`
	Password  string `json:"password,omitempty" validate:"omitempty,min=5"`
}

// TokenResponse represents the {token} envelope returned by the auth endpoints.
type TokenResponse struct {
	Token string `json:"token"`
}

// Validate validates the LoginRequest using the validator.
func (r *LoginRequest) Validate() error {
	validate := validator.New()
	return validate.Struct(r)
}

// Validate validates the SignupRequest using the validator.
func (r *SignupRequest) Validate() error {
	validate := validator.New()
	return validate.Struct(r)
}

// Validate validates the ProfileUpdate using the validator.
func (r *ProfileUpdate) Validate() error {
	validate := validator.New()
	return validate.Struct(r)
}
