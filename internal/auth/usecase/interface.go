// Package usecase implements business logic orchestration for
// authentication operations: login, registration, refresh-token rotation,
// logout, and per-request principal reconstruction.
package usecase

import (
	"context"
	"time"

	authDomain "github.com/cargoconnect/api/internal/auth/domain"
)

// UserRepository defines the interface for user-account persistence.
type UserRepository interface {
	Create(ctx context.Context, user *authDomain.User) error
	GetByID(ctx context.Context, id int64) (*authDomain.User, error)
	GetByEmail(ctx context.Context, email string) (*authDomain.User, error)

	// SetRefreshToken unconditionally overwrites the stored refresh-token
	// hash and expiry (login path).
	SetRefreshToken(ctx context.Context, userID int64, tokenHash string, expiresAt time.Time) error

	// RotateRefreshToken replaces the stored hash only if it still equals
	// oldHash, as one atomic compare-and-swap. Fails with
	// ErrRefreshTokenMismatch when the stored value changed underneath.
	RotateRefreshToken(ctx context.Context, userID int64, oldHash, newHash string, expiresAt time.Time) error

	// ClearRefreshToken removes the stored refresh token. Idempotent.
	ClearRefreshToken(ctx context.Context, userID int64) error
}

// Directory resolves display attributes of linked client and driver
// records. Implemented by the logistics data-access layer.
type Directory interface {
	ClientName(ctx context.Context, clientID int64) (string, error)
	DriverLastName(ctx context.Context, driverID int64) (string, error)
}

// AuthUseCase defines the interface for authentication business logic.
type AuthUseCase interface {
	// Login verifies credentials and issues a fresh token pair. Unknown
	// email and wrong password both fail with ErrInvalidCredentials.
	Login(ctx context.Context, input *authDomain.LoginInput) (*authDomain.TokenPair, error)

	// Register creates a new account. Elevated roles require an elevated
	// actor; a nil actor is an anonymous self-registration.
	Register(ctx context.Context, actor *authDomain.Principal, input *authDomain.RegisterInput) (*authDomain.User, error)

	// Refresh rotates a token pair: the access token must be expired but
	// authentic, and the presented refresh token must match the stored
	// value and be unexpired. Each refresh token is consumable at most
	// once.
	Refresh(ctx context.Context, accessToken, refreshToken string) (*authDomain.TokenPair, error)

	// Logout clears the stored refresh token. Idempotent.
	Logout(ctx context.Context, userID int64) error

	// Me returns the principal rebuilt from the current account state.
	Me(ctx context.Context, userID int64) (*authDomain.Principal, error)

	// Authenticate validates a bearer access token and reconstructs the
	// principal with ownership links read fresh from the account record,
	// never from token claims.
	Authenticate(ctx context.Context, accessToken string) (*authDomain.Principal, error)
}
