package repository

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	authDomain "github.com/cargoconnect/api/internal/auth/domain"
)

func strPtr(s string) *string {
	return &s
}

func timePtr(t time.Time) *time.Time {
	return &t
}

func userRows(user *authDomain.User) *sqlmock.Rows {
	return sqlmock.NewRows([]string{
		"id", "email", "password_hash", "role", "client_id", "driver_id",
		"refresh_token_hash", "refresh_token_expires_at", "created_at", "updated_at", "deleted_at",
	}).AddRow(
		user.ID, user.Email, user.PasswordHash, string(user.Role), user.ClientID, user.DriverID,
		user.RefreshTokenHash, user.RefreshTokenExpiresAt, user.CreatedAt, user.UpdatedAt, user.DeletedAt,
	)
}

func TestNewPostgreSQLUserRepository(t *testing.T) {
	db, _, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewPostgreSQLUserRepository(db)
	assert.NotNil(t, repo)
	assert.IsType(t, &PostgreSQLUserRepository{}, repo)
}

func TestPostgreSQLUserRepository_Create(t *testing.T) {
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	require.NoError(t, err)
	defer db.Close()

	repo := NewPostgreSQLUserRepository(db)
	ctx := context.Background()

	now := time.Now().UTC()
	clientID := int64(42)
	user := &authDomain.User{
		Email:        "ivan@example.com",
		PasswordHash: "argon2id-hash",
		Role:         authDomain.RoleUser,
		ClientID:     &clientID,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	mock.ExpectQuery(`INSERT INTO users`).
		WithArgs(user.Email, user.PasswordHash, "User", &clientID, nil, now, now).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(int64(7)))

	err = repo.Create(ctx, user)
	require.NoError(t, err)
	assert.Equal(t, int64(7), user.ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgreSQLUserRepository_GetByEmail(t *testing.T) {
	t.Run("Success_GetByEmail", func(t *testing.T) {
		db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
		require.NoError(t, err)
		defer db.Close()

		repo := NewPostgreSQLUserRepository(db)
		now := time.Now().UTC()
		stored := &authDomain.User{
			ID:                    7,
			Email:                 "ivan@example.com",
			PasswordHash:          "argon2id-hash",
			Role:                  authDomain.RoleUser,
			RefreshTokenHash:      strPtr("stored-hash"),
			RefreshTokenExpiresAt: timePtr(now.Add(time.Hour)),
			CreatedAt:             now,
			UpdatedAt:             now,
		}

		mock.ExpectQuery(`SELECT (.+) FROM users`).
			WithArgs("ivan@example.com").
			WillReturnRows(userRows(stored))

		user, err := repo.GetByEmail(context.Background(), "ivan@example.com")
		require.NoError(t, err)
		assert.Equal(t, int64(7), user.ID)
		assert.Equal(t, authDomain.RoleUser, user.Role)
		assert.Equal(t, "stored-hash", *user.RefreshTokenHash)
		assert.False(t, user.IsDeleted)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Error_UserNotFound", func(t *testing.T) {
		db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
		require.NoError(t, err)
		defer db.Close()

		repo := NewPostgreSQLUserRepository(db)

		mock.ExpectQuery(`SELECT (.+) FROM users`).
			WithArgs("ghost@example.com").
			WillReturnRows(sqlmock.NewRows([]string{
				"id", "email", "password_hash", "role", "client_id", "driver_id",
				"refresh_token_hash", "refresh_token_expires_at", "created_at", "updated_at", "deleted_at",
			}))

		user, err := repo.GetByEmail(context.Background(), "ghost@example.com")
		assert.ErrorIs(t, err, authDomain.ErrUserNotFound)
		assert.Nil(t, user)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestPostgreSQLUserRepository_GetByID_NotFound(t *testing.T) {
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	require.NoError(t, err)
	defer db.Close()

	repo := NewPostgreSQLUserRepository(db)

	mock.ExpectQuery(`SELECT (.+) FROM users`).
		WithArgs(int64(404)).
		WillReturnRows(sqlmock.NewRows([]string{
			"id", "email", "password_hash", "role", "client_id", "driver_id",
			"refresh_token_hash", "refresh_token_expires_at", "created_at", "updated_at", "deleted_at",
		}))

	user, err := repo.GetByID(context.Background(), 404)
	assert.ErrorIs(t, err, authDomain.ErrUserNotFound)
	assert.Nil(t, user)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgreSQLUserRepository_RotateRefreshToken(t *testing.T) {
	t.Run("Success_StoredHashMatches", func(t *testing.T) {
		db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
		require.NoError(t, err)
		defer db.Close()

		repo := NewPostgreSQLUserRepository(db)

		mock.ExpectExec(`UPDATE users`).
			WithArgs("new-hash", sqlmock.AnyArg(), sqlmock.AnyArg(), int64(7), "old-hash").
			WillReturnResult(sqlmock.NewResult(0, 1))

		err = repo.RotateRefreshToken(
			context.Background(), 7, "old-hash", "new-hash", time.Now().UTC().Add(time.Hour),
		)
		assert.NoError(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Error_StoredHashAlreadyRotated", func(t *testing.T) {
		db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
		require.NoError(t, err)
		defer db.Close()

		repo := NewPostgreSQLUserRepository(db)

		// A concurrent rotation already swapped the stored hash, so the
		// compare-and-swap matches zero rows.
		mock.ExpectExec(`UPDATE users`).
			WithArgs("new-hash", sqlmock.AnyArg(), sqlmock.AnyArg(), int64(7), "stale-hash").
			WillReturnResult(sqlmock.NewResult(0, 0))

		err = repo.RotateRefreshToken(
			context.Background(), 7, "stale-hash", "new-hash", time.Now().UTC().Add(time.Hour),
		)
		assert.ErrorIs(t, err, authDomain.ErrRefreshTokenMismatch)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestPostgreSQLUserRepository_SetRefreshToken(t *testing.T) {
	t.Run("Success_SetRefreshToken", func(t *testing.T) {
		db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
		require.NoError(t, err)
		defer db.Close()

		repo := NewPostgreSQLUserRepository(db)

		mock.ExpectExec(`UPDATE users`).
			WithArgs("token-hash", sqlmock.AnyArg(), sqlmock.AnyArg(), int64(7)).
			WillReturnResult(sqlmock.NewResult(0, 1))

		err = repo.SetRefreshToken(context.Background(), 7, "token-hash", time.Now().UTC().Add(time.Hour))
		assert.NoError(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Error_UserNotFound", func(t *testing.T) {
		db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
		require.NoError(t, err)
		defer db.Close()

		repo := NewPostgreSQLUserRepository(db)

		mock.ExpectExec(`UPDATE users`).
			WithArgs("token-hash", sqlmock.AnyArg(), sqlmock.AnyArg(), int64(404)).
			WillReturnResult(sqlmock.NewResult(0, 0))

		err = repo.SetRefreshToken(context.Background(), 404, "token-hash", time.Now().UTC().Add(time.Hour))
		assert.ErrorIs(t, err, authDomain.ErrUserNotFound)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestPostgreSQLUserRepository_ClearRefreshToken(t *testing.T) {
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	require.NoError(t, err)
	defer db.Close()

	repo := NewPostgreSQLUserRepository(db)

	// Idempotent: zero affected rows is still success.
	mock.ExpectExec(`UPDATE users`).
		WithArgs(sqlmock.AnyArg(), int64(7)).
		WillReturnResult(sqlmock.NewResult(0, 0))

	err = repo.ClearRefreshToken(context.Background(), 7)
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}
