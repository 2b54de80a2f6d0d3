package repository

import (
	"context"
	"database/sql"
	"time"

	authDomain "github.com/cargoconnect/api/internal/auth/domain"
	"github.com/cargoconnect/api/internal/database"
	apperrors "github.com/cargoconnect/api/internal/errors"
)

// MySQLUserRepository implements user persistence for MySQL databases.
type MySQLUserRepository struct {
	db *sql.DB
}

// Create inserts a new user and fills in the generated ID.
func (m *MySQLUserRepository) Create(ctx context.Context, user *authDomain.User) error {
	querier := database.GetTx(ctx, m.db)

	query := `INSERT INTO users (email, password_hash, role, client_id, driver_id, created_at, updated_at)
			  VALUES (?, ?, ?, ?, ?, ?, ?)`

	result, err := querier.ExecContext(
		ctx,
		query,
		user.Email,
		user.PasswordHash,
		string(user.Role),
		user.ClientID,
		user.DriverID,
		user.CreatedAt,
		user.UpdatedAt,
	)
	if err != nil {
		return apperrors.Wrap(err, "failed to create user")
	}

	id, err := result.LastInsertId()
	if err != nil {
		return apperrors.Wrap(err, "failed to read generated user id")
	}
	user.ID = id

	return nil
}

// GetByID retrieves a non-deleted user by ID.
func (m *MySQLUserRepository) GetByID(ctx context.Context, id int64) (*authDomain.User, error) {
	querier := database.GetTx(ctx, m.db)

	query := `SELECT ` + userColumns + `
			  FROM users
			  WHERE id = ? AND deleted_at IS NULL`

	return scanUser(querier.QueryRowContext(ctx, query, id))
}

// GetByEmail retrieves a non-deleted user by email.
func (m *MySQLUserRepository) GetByEmail(ctx context.Context, email string) (*authDomain.User, error) {
	querier := database.GetTx(ctx, m.db)

	query := `SELECT ` + userColumns + `
			  FROM users
			  WHERE email = ? AND deleted_at IS NULL`

	return scanUser(querier.QueryRowContext(ctx, query, email))
}

// SetRefreshToken unconditionally stores a new refresh-token hash and
// expiry, invalidating whatever token was stored before. Used at login.
func (m *MySQLUserRepository) SetRefreshToken(
	ctx context.Context,
	userID int64,
	tokenHash string,
	expiresAt time.Time,
) error {
	querier := database.GetTx(ctx, m.db)

	query := `UPDATE users
			  SET refresh_token_hash = ?, refresh_token_expires_at = ?, updated_at = ?
			  WHERE id = ? AND deleted_at IS NULL`

	result, err := querier.ExecContext(ctx, query, tokenHash, expiresAt, time.Now().UTC(), userID)
	if err != nil {
		return apperrors.Wrap(err, "failed to set refresh token")
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return apperrors.Wrap(err, "failed to read affected rows")
	}
	if rows == 0 {
		return authDomain.ErrUserNotFound
	}

	return nil
}

// RotateRefreshToken swaps the stored hash for a new one, but only if the
// stored value still equals oldHash. The WHERE clause is the serialization
// point: of two concurrent rotations presenting the same token, exactly one
// matches and the other sees zero rows.
func (m *MySQLUserRepository) RotateRefreshToken(
	ctx context.Context,
	userID int64,
	oldHash string,
	newHash string,
	expiresAt time.Time,
) error {
	querier := database.GetTx(ctx, m.db)

	query := `UPDATE users
			  SET refresh_token_hash = ?, refresh_token_expires_at = ?, updated_at = ?
			  WHERE id = ? AND refresh_token_hash = ? AND deleted_at IS NULL`

	result, err := querier.ExecContext(ctx, query, newHash, expiresAt, time.Now().UTC(), userID, oldHash)
	if err != nil {
		return apperrors.Wrap(err, "failed to rotate refresh token")
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return apperrors.Wrap(err, "failed to read affected rows")
	}
	if rows == 0 {
		return authDomain.ErrRefreshTokenMismatch
	}

	return nil
}

// ClearRefreshToken removes the stored refresh token. Idempotent: clearing
// an account that has no token is not an error.
func (m *MySQLUserRepository) ClearRefreshToken(ctx context.Context, userID int64) error {
	querier := database.GetTx(ctx, m.db)

	query := `UPDATE users
			  SET refresh_token_hash = NULL, refresh_token_expires_at = NULL, updated_at = ?
			  WHERE id = ?`

	_, err := querier.ExecContext(ctx, query, time.Now().UTC(), userID)
	if err != nil {
		return apperrors.Wrap(err, "failed to clear refresh token")
	}

	return nil
}

// NewMySQLUserRepository creates a new MySQL user repository instance.
func NewMySQLUserRepository(db *sql.DB) *MySQLUserRepository {
	return &MySQLUserRepository{db: db}
}
