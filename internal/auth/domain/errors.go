package domain

import (
	"github.com/cargoconnect/api/internal/errors"
)

// Authentication errors.
var (
	// ErrInvalidCredentials indicates an unknown email or wrong password.
	// Deliberately generic to prevent account enumeration.
	ErrInvalidCredentials = errors.Wrap(errors.ErrUnauthorized, "invalid email or password")

	// ErrUserNotFound indicates a user with the specified ID was not found.
	ErrUserNotFound = errors.Wrap(errors.ErrNotFound, "user not found")

	// ErrEmailTaken indicates an active account already uses the email.
	ErrEmailTaken = errors.Wrap(errors.ErrConflict, "email already registered")

	// ErrTokenInvalid indicates a malformed token, a bad signature, or an
	// unexpected signing algorithm. All parsing and cryptographic failures
	// normalize to this error; library errors never reach callers.
	ErrTokenInvalid = errors.Wrap(errors.ErrUnauthorized, "invalid access token")

	// ErrTokenExpired indicates a structurally valid access token past its
	// expiry time.
	ErrTokenExpired = errors.Wrap(errors.ErrUnauthorized, "access token expired")

	// ErrTokenNotExpired indicates a refresh attempt presented an access
	// token that is still valid. Refresh only accepts expired tokens.
	ErrTokenNotExpired = errors.Wrap(errors.ErrInvalidInput, "access token not yet expired")

	// ErrRefreshTokenMismatch indicates the presented refresh token does not
	// match the stored value (already rotated, revoked, or forged).
	ErrRefreshTokenMismatch = errors.Wrap(errors.ErrUnauthorized, "refresh token mismatch")

	// ErrRefreshTokenExpired indicates the stored refresh token is past its
	// expiry and a full login is required.
	ErrRefreshTokenExpired = errors.Wrap(errors.ErrUnauthorized, "refresh token expired")
)
