package repository

import (
	"context"
	"database/sql"
	"time"

	"github.com/cargoconnect/api/internal/database"
	apperrors "github.com/cargoconnect/api/internal/errors"
	logisticsDomain "github.com/cargoconnect/api/internal/logistics/domain"
)

// MySQLClientRepository implements client persistence for MySQL databases.
type MySQLClientRepository struct {
	db *sql.DB
}

// List retrieves all non-deleted clients.
func (m *MySQLClientRepository) List(ctx context.Context) ([]*logisticsDomain.Client, error) {
	querier := database.GetTx(ctx, m.db)

	query := `SELECT ` + clientColumns + ` FROM clients WHERE deleted_at IS NULL ORDER BY id`

	rows, err := querier.QueryContext(ctx, query)
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to list clients")
	}
	defer rows.Close()

	var clients []*logisticsDomain.Client
	for rows.Next() {
		client, err := scanClient(rows)
		if err != nil {
			return nil, err
		}
		clients = append(clients, client)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.Wrap(err, "failed to iterate clients")
	}

	return clients, nil
}

// ListDeleted retrieves all soft-deleted clients.
func (m *MySQLClientRepository) ListDeleted(ctx context.Context) ([]*logisticsDomain.Client, error) {
	querier := database.GetTx(ctx, m.db)

	query := `SELECT ` + clientColumns + ` FROM clients WHERE deleted_at IS NOT NULL ORDER BY id`

	rows, err := querier.QueryContext(ctx, query)
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to list deleted clients")
	}
	defer rows.Close()

	var clients []*logisticsDomain.Client
	for rows.Next() {
		client, err := scanClient(rows)
		if err != nil {
			return nil, err
		}
		clients = append(clients, client)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.Wrap(err, "failed to iterate deleted clients")
	}

	return clients, nil
}

// Get retrieves a non-deleted client by ID.
func (m *MySQLClientRepository) Get(ctx context.Context, id int64) (*logisticsDomain.Client, error) {
	querier := database.GetTx(ctx, m.db)

	query := `SELECT ` + clientColumns + ` FROM clients WHERE id = ? AND deleted_at IS NULL`

	return scanClient(querier.QueryRowContext(ctx, query, id))
}

// Create inserts a new client and fills in the generated ID.
func (m *MySQLClientRepository) Create(ctx context.Context, client *logisticsDomain.Client) error {
	querier := database.GetTx(ctx, m.db)

	query := `INSERT INTO clients (name, surname, phone, email, address, created_at, updated_at)
			  VALUES (?, ?, ?, ?, ?, ?, ?)`

	result, err := querier.ExecContext(
		ctx,
		query,
		client.Name,
		client.Surname,
		client.Phone,
		client.Email,
		client.Address,
		client.CreatedAt,
		client.UpdatedAt,
	)
	if err != nil {
		return apperrors.Wrap(err, "failed to create client")
	}

	id, err := result.LastInsertId()
	if err != nil {
		return apperrors.Wrap(err, "failed to get client ID")
	}
	client.ID = id

	return nil
}

// Update modifies a non-deleted client.
func (m *MySQLClientRepository) Update(ctx context.Context, client *logisticsDomain.Client) error {
	querier := database.GetTx(ctx, m.db)

	query := `UPDATE clients
			  SET name = ?, surname = ?, phone = ?, email = ?, address = ?, updated_at = ?
			  WHERE id = ? AND deleted_at IS NULL`

	result, err := querier.ExecContext(
		ctx,
		query,
		client.Name,
		client.Surname,
		client.Phone,
		client.Email,
		client.Address,
		time.Now().UTC(),
		client.ID,
	)
	if err != nil {
		return apperrors.Wrap(err, "failed to update client")
	}

	return requireRowAffected(result, logisticsDomain.ErrClientNotFound)
}

// SoftDelete flags a client as deleted.
func (m *MySQLClientRepository) SoftDelete(ctx context.Context, id int64) error {
	querier := database.GetTx(ctx, m.db)

	query := `UPDATE clients SET deleted_at = ?, updated_at = ? WHERE id = ? AND deleted_at IS NULL`

	now := time.Now().UTC()
	result, err := querier.ExecContext(ctx, query, now, now, id)
	if err != nil {
		return apperrors.Wrap(err, "failed to delete client")
	}

	return requireRowAffected(result, logisticsDomain.ErrClientNotFound)
}

// Restore clears the deletion flag of a soft-deleted client.
func (m *MySQLClientRepository) Restore(ctx context.Context, id int64) error {
	querier := database.GetTx(ctx, m.db)

	query := `UPDATE clients SET deleted_at = NULL, updated_at = ? WHERE id = ? AND deleted_at IS NOT NULL`

	result, err := querier.ExecContext(ctx, query, time.Now().UTC(), id)
	if err != nil {
		return apperrors.Wrap(err, "failed to restore client")
	}

	return requireRowAffected(result, logisticsDomain.ErrClientNotFound)
}

// NewMySQLClientRepository creates a new MySQL client repository instance.
func NewMySQLClientRepository(db *sql.DB) *MySQLClientRepository {
	return &MySQLClientRepository{db: db}
}
