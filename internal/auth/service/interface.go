// Package service provides technical services for authentication operations:
// access-token signing and validation, refresh-token generation, and
// password hashing.
package service

import (
	"time"

	authDomain "github.com/cargoconnect/api/internal/auth/domain"
)

// TokenService defines operations for signed access tokens. Tokens are
// stateless: validity is solely a function of signature and expiry.
type TokenService interface {
	// IssueAccessToken signs a new access token for the principal. Every
	// issuance carries a unique token ID (jti). Returns the compact token
	// and its expiry time.
	IssueAccessToken(principal *authDomain.Principal) (token string, expiresAt time.Time, err error)

	// ValidateAccessToken verifies signature, signing algorithm, and
	// lifetime, and maps the claims back to a Principal.
	ValidateAccessToken(token string) (*authDomain.Principal, error)

	// ParseExpiredToken verifies signature and signing algorithm but not
	// lifetime, for the refresh flow where the access token is legitimately
	// expired. A token that is still valid fails with ErrTokenNotExpired.
	ParseExpiredToken(token string) (*authDomain.Principal, error)
}

// RefreshService defines operations for opaque refresh tokens.
// Implementations must use cryptographically secure random generation.
type RefreshService interface {
	// Generate creates a new 256-bit random refresh token. Returns the
	// plain value (handed to the client once) and its SHA-256 hash (the
	// only form ever persisted).
	Generate() (plainToken string, tokenHash string, err error)

	// Hash hashes a plain refresh token for comparison against the stored
	// value.
	Hash(plainToken string) string
}

// PasswordService defines operations for password hashing and verification.
// Implementations must use a slow adaptive hash (Argon2id, bcrypt-class),
// never a fast general-purpose hash.
type PasswordService interface {
	// HashPassword hashes a plain text password.
	HashPassword(plain string) (string, error)

	// ComparePassword performs a constant-time comparison between a plain
	// password and its hash.
	ComparePassword(plain string, hash string) bool
}
