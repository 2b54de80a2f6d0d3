package domain

import "time"

// User is the credential record backing an account. At most one active
// refresh token exists per user: issuing a new one overwrites the stored
// hash, which immediately invalidates the previous token.
type User struct {
	ID           int64
	Email        string
	PasswordHash string
	Role         Role

	// Optional ownership links. A user account links to exactly one Client
	// or exactly one Driver; the link is the sole basis for row-level
	// scoping of the User and Driver roles.
	ClientID *int64
	DriverID *int64

	// Refresh token state. Only the SHA-256 hash of the opaque refresh
	// value is persisted; the plain value exists client-side only.
	RefreshTokenHash      *string
	RefreshTokenExpiresAt *time.Time

	IsDeleted bool
	DeletedAt *time.Time
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Principal is the authenticated identity reconstructed per request from a
// validated access token. It is never persisted.
type Principal struct {
	UserID   int64
	Email    string
	Name     string
	Role     Role
	ClientID *int64
	DriverID *int64
}

// LoginInput carries the credentials presented at login.
type LoginInput struct {
	Email    string
	Password string
}

// RegisterInput carries the data for creating a new account. ClientID and
// DriverID are optional ownership links; referenced records must exist.
type RegisterInput struct {
	Email    string
	Password string
	Role     Role
	ClientID *int64
	DriverID *int64
}

// TokenPair is the result of login or refresh: a signed access token, the
// plain refresh value handed to the client exactly once, and metadata the
// HTTP layer echoes back.
type TokenPair struct {
	AccessToken  string
	RefreshToken string
	ExpiresAt    time.Time
	Role         Role
	UserID       int64
	Name         string
}
