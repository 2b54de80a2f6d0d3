// Package dto provides data transfer objects for authentication HTTP
// request and response handling.
package dto

import (
	validation "github.com/jellydator/validation"

	authDomain "github.com/cargoconnect/api/internal/auth/domain"
	customValidation "github.com/cargoconnect/api/internal/validation"
)

// LoginRequest contains the credentials for a login attempt.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Validate checks if the login request is valid.
func (r *LoginRequest) Validate() error {
	return validation.ValidateStruct(r,
		validation.Field(&r.Email,
			validation.Required,
			customValidation.Email,
		),
		validation.Field(&r.Password,
			validation.Required,
			customValidation.NotBlank,
		),
	)
}

// RegisterRequest contains the parameters for creating a new account.
// ClientID and DriverID are optional ownership links.
type RegisterRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Role     string `json:"role"`
	ClientID *int64 `json:"client_id"`
	DriverID *int64 `json:"driver_id"`
}

// Validate checks if the register request is valid.
func (r *RegisterRequest) Validate() error {
	return validation.ValidateStruct(r,
		validation.Field(&r.Email,
			validation.Required,
			customValidation.Email,
		),
		validation.Field(&r.Password,
			validation.Required,
			customValidation.PasswordStrength{
				MinLength:     8,
				RequireUpper:  true,
				RequireLower:  true,
				RequireNumber: true,
			},
		),
		validation.Field(&r.Role,
			validation.Required,
			validation.In(
				string(authDomain.RoleAdmin),
				string(authDomain.RoleModerator),
				string(authDomain.RoleUser),
				string(authDomain.RoleDriver),
			),
		),
		validation.Field(&r.ClientID,
			validation.Min(int64(1)),
		),
		validation.Field(&r.DriverID,
			validation.Min(int64(1)),
		),
	)
}

// RefreshRequest contains an expired access token and its refresh token.
type RefreshRequest struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
}

// Validate checks if the refresh request is valid.
func (r *RefreshRequest) Validate() error {
	return validation.ValidateStruct(r,
		validation.Field(&r.AccessToken,
			validation.Required,
			customValidation.NotBlank,
		),
		validation.Field(&r.RefreshToken,
			validation.Required,
			customValidation.NotBlank,
		),
	)
}
