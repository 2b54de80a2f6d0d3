// Package repository implements data persistence for the logistics
// entities. Repositories support both PostgreSQL and MySQL with soft
// deletion; list queries accept the ownership filter computed by the
// authorization engine.
package repository

import (
	"context"
	"database/sql"
	"time"

	"github.com/cargoconnect/api/internal/database"
	apperrors "github.com/cargoconnect/api/internal/errors"
	logisticsDomain "github.com/cargoconnect/api/internal/logistics/domain"
)

const clientColumns = `id, name, surname, phone, email, address, created_at, updated_at, deleted_at`

func scanClient(scanner interface{ Scan(...any) error }) (*logisticsDomain.Client, error) {
	var client logisticsDomain.Client
	err := scanner.Scan(
		&client.ID,
		&client.Name,
		&client.Surname,
		&client.Phone,
		&client.Email,
		&client.Address,
		&client.CreatedAt,
		&client.UpdatedAt,
		&client.DeletedAt,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, logisticsDomain.ErrClientNotFound
		}
		return nil, apperrors.Wrap(err, "failed to scan client")
	}
	client.IsDeleted = client.DeletedAt != nil
	return &client, nil
}

// PostgreSQLClientRepository implements client persistence for PostgreSQL databases.
type PostgreSQLClientRepository struct {
	db *sql.DB
}

// List retrieves all non-deleted clients.
func (p *PostgreSQLClientRepository) List(ctx context.Context) ([]*logisticsDomain.Client, error) {
	querier := database.GetTx(ctx, p.db)

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
func (p *PostgreSQLClientRepository) ListDeleted(ctx context.Context) ([]*logisticsDomain.Client, error) {
	querier := database.GetTx(ctx, p.db)

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
func (p *PostgreSQLClientRepository) Get(ctx context.Context, id int64) (*logisticsDomain.Client, error) {
	querier := database.GetTx(ctx, p.db)

	query := `SELECT ` + clientColumns + ` FROM clients WHERE id = $1 AND deleted_at IS NULL`

	return scanClient(querier.QueryRowContext(ctx, query, id))
}

// Create inserts a new client and fills in the generated ID.
func (p *PostgreSQLClientRepository) Create(ctx context.Context, client *logisticsDomain.Client) error {
	querier := database.GetTx(ctx, p.db)

	query := `INSERT INTO clients (name, surname, phone, email, address, created_at, updated_at)
			  VALUES ($1, $2, $3, $4, $5, $6, $7)
			  RETURNING id`

	err := querier.QueryRowContext(
		ctx,
		query,
		client.Name,
		client.Surname,
		client.Phone,
		client.Email,
		client.Address,
		client.CreatedAt,
		client.UpdatedAt,
	).Scan(&client.ID)
	if err != nil {
		return apperrors.Wrap(err, "failed to create client")
	}

	return nil
}

// Update modifies a non-deleted client.
func (p *PostgreSQLClientRepository) Update(ctx context.Context, client *logisticsDomain.Client) error {
	querier := database.GetTx(ctx, p.db)

	query := `UPDATE clients
			  SET name = $1, surname = $2, phone = $3, email = $4, address = $5, updated_at = $6
			  WHERE id = $7 AND deleted_at IS NULL`

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
func (p *PostgreSQLClientRepository) SoftDelete(ctx context.Context, id int64) error {
	querier := database.GetTx(ctx, p.db)

	query := `UPDATE clients SET deleted_at = $1, updated_at = $1 WHERE id = $2 AND deleted_at IS NULL`

	result, err := querier.ExecContext(ctx, query, time.Now().UTC(), id)
	if err != nil {
		return apperrors.Wrap(err, "failed to delete client")
	}

	return requireRowAffected(result, logisticsDomain.ErrClientNotFound)
}

// Restore clears the deletion flag of a soft-deleted client.
func (p *PostgreSQLClientRepository) Restore(ctx context.Context, id int64) error {
	querier := database.GetTx(ctx, p.db)

	query := `UPDATE clients SET deleted_at = NULL, updated_at = $1 WHERE id = $2 AND deleted_at IS NOT NULL`

	result, err := querier.ExecContext(ctx, query, time.Now().UTC(), id)
	if err != nil {
		return apperrors.Wrap(err, "failed to restore client")
	}

	return requireRowAffected(result, logisticsDomain.ErrClientNotFound)
}

// NewPostgreSQLClientRepository creates a new PostgreSQL client repository instance.
func NewPostgreSQLClientRepository(db *sql.DB) *PostgreSQLClientRepository {
	return &PostgreSQLClientRepository{db: db}
}
