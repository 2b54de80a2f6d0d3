package dto

import (
	"time"

	authDomain "github.com/cargoconnect/api/internal/auth/domain"
)

// TokenPairResponse contains the result of a login or refresh.
// SECURITY: The refresh token is only returned once and must be saved by
// the client; the server keeps nothing but its hash.
type TokenPairResponse struct {
	AccessToken  string    `json:"access_token"`
	RefreshToken string    `json:"refresh_token"`
	ExpiresAt    time.Time `json:"expires_at"`
	Role         string    `json:"role"`
	UserID       int64     `json:"user_id"`
	Name         string    `json:"name"`
}

// MapTokenPairToResponse converts a domain token pair to an API response.
func MapTokenPairToResponse(pair *authDomain.TokenPair) TokenPairResponse {
	return TokenPairResponse{
		AccessToken:  pair.AccessToken,
		RefreshToken: pair.RefreshToken,
		ExpiresAt:    pair.ExpiresAt,
		Role:         string(pair.Role),
		UserID:       pair.UserID,
		Name:         pair.Name,
	}
}

// UserResponse represents a created account in API responses. The password
// hash is never exposed.
type UserResponse struct {
	ID       int64  `json:"id"`
	Email    string `json:"email"`
	Role     string `json:"role"`
	ClientID *int64 `json:"client_id,omitempty"`
	DriverID *int64 `json:"driver_id,omitempty"`
}

// MapUserToResponse converts a domain user to an API response.
func MapUserToResponse(user *authDomain.User) UserResponse {
	return UserResponse{
		ID:       user.ID,
		Email:    user.Email,
		Role:     string(user.Role),
		ClientID: user.ClientID,
		DriverID: user.DriverID,
	}
}

// PrincipalResponse represents the authenticated identity in API responses.
type PrincipalResponse struct {
	UserID   int64  `json:"user_id"`
	Email    string `json:"email"`
	Name     string `json:"name"`
	Role     string `json:"role"`
	ClientID *int64 `json:"client_id,omitempty"`
	DriverID *int64 `json:"driver_id,omitempty"`
}

// MapPrincipalToResponse converts a domain principal to an API response.
func MapPrincipalToResponse(principal *authDomain.Principal) PrincipalResponse {
	return PrincipalResponse{
		UserID:   principal.UserID,
		Email:    principal.Email,
		Name:     principal.Name,
		Role:     string(principal.Role),
		ClientID: principal.ClientID,
		DriverID: principal.DriverID,
	}
}
