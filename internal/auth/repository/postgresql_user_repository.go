// Package repository implements user-account persistence. Repositories
// support both PostgreSQL and MySQL with soft deletion; refresh-token
// rotation is a single compare-and-swap UPDATE so concurrent refresh
// requests can never both succeed.
package repository

import (
	"context"
	"database/sql"
	"time"

	authDomain "github.com/cargoconnect/api/internal/auth/domain"
	"github.com/cargoconnect/api/internal/database"
	apperrors "github.com/cargoconnect/api/internal/errors"
)

const userColumns = `id, email, password_hash, role, client_id, driver_id,
	refresh_token_hash, refresh_token_expires_at, created_at, updated_at, deleted_at`

// scanUser maps one row onto a User. IsDeleted is derived from the
// deleted_at column.
func scanUser(row *sql.Row) (*authDomain.User, error) {
	var user authDomain.User
	var role string

	err := row.Scan(
		&user.ID,
		&user.Email,
		&user.PasswordHash,
		&role,
		&user.ClientID,
		&user.DriverID,
		&user.RefreshTokenHash,
		&user.RefreshTokenExpiresAt,
		&user.CreatedAt,
		&user.UpdatedAt,
		&user.DeletedAt,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, authDomain.ErrUserNotFound
		}
		return nil, apperrors.Wrap(err, "failed to scan user")
	}

	user.Role = authDomain.ParseRole(role)
	user.IsDeleted = user.DeletedAt != nil
	return &user, nil
}

// PostgreSQLUserRepository implements user persistence for PostgreSQL databases.
type PostgreSQLUserRepository struct {
	db *sql.DB
}

// Create inserts a new user and fills in the generated ID.
func (p *PostgreSQLUserRepository) Create(ctx context.Context, user *authDomain.User) error {
	querier := database.GetTx(ctx, p.db)

	query := `INSERT INTO users (email, password_hash, role, client_id, driver_id, created_at, updated_at)
			  VALUES ($1, $2, $3, $4, $5, $6, $7)
			  RETURNING id`

	err := querier.QueryRowContext(
		ctx,
		query,
		user.Email,
		user.PasswordHash,
		string(user.Role),
		user.ClientID,
		user.DriverID,
		user.CreatedAt,
		user.UpdatedAt,
	).Scan(&user.ID)
	if err != nil {
		return apperrors.Wrap(err, "failed to create user")
	}

	return nil
}

// GetByID retrieves a non-deleted user by ID.
func (p *PostgreSQLUserRepository) GetByID(ctx context.Context, id int64) (*authDomain.User, error) {
	querier := database.GetTx(ctx, p.db)

	query := `SELECT ` + userColumns + `
			  FROM users
			  WHERE id = $1 AND deleted_at IS NULL`

	return scanUser(querier.QueryRowContext(ctx, query, id))
}

// GetByEmail retrieves a non-deleted user by email.
func (p *PostgreSQLUserRepository) GetByEmail(ctx context.Context, email string) (*authDomain.User, error) {
	querier := database.GetTx(ctx, p.db)

	query := `SELECT ` + userColumns + `
			  FROM users
			  WHERE email = $1 AND deleted_at IS NULL`

	return scanUser(querier.QueryRowContext(ctx, query, email))
}

// SetRefreshToken unconditionally stores a new refresh-token hash and
// expiry, invalidating whatever token was stored before. Used at login.
func (p *PostgreSQLUserRepository) SetRefreshToken(
	ctx context.Context,
	userID int64,
	tokenHash string,
	expiresAt time.Time,
) error {
	querier := database.GetTx(ctx, p.db)

	query := `UPDATE users
			  SET refresh_token_hash = $1, refresh_token_expires_at = $2, updated_at = $3
			  WHERE id = $4 AND deleted_at IS NULL`

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
func (p *PostgreSQLUserRepository) RotateRefreshToken(
	ctx context.Context,
	userID int64,
	oldHash string,
	newHash string,
	expiresAt time.Time,
) error {
	querier := database.GetTx(ctx, p.db)

	query := `UPDATE users
			  SET refresh_token_hash = $1, refresh_token_expires_at = $2, updated_at = $3
			  WHERE id = $4 AND refresh_token_hash = $5 AND deleted_at IS NULL`

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
func (p *PostgreSQLUserRepository) ClearRefreshToken(ctx context.Context, userID int64) error {
	querier := database.GetTx(ctx, p.db)

	query := `UPDATE users
			  SET refresh_token_hash = NULL, refresh_token_expires_at = NULL, updated_at = $1
			  WHERE id = $2`

	_, err := querier.ExecContext(ctx, query, time.Now().UTC(), userID)
	if err != nil {
		return apperrors.Wrap(err, "failed to clear refresh token")
	}

	return nil
}

// NewPostgreSQLUserRepository creates a new PostgreSQL user repository instance.
func NewPostgreSQLUserRepository(db *sql.DB) *PostgreSQLUserRepository {
	return &PostgreSQLUserRepository{db: db}
}
