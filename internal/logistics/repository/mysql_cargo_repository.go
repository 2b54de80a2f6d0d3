package repository

import (
	"context"
	"database/sql"
	"time"

	"github.com/cargoconnect/api/internal/authz"
	"github.com/cargoconnect/api/internal/database"
	apperrors "github.com/cargoconnect/api/internal/errors"
	logisticsDomain "github.com/cargoconnect/api/internal/logistics/domain"
)

// MySQLCargoRepository implements cargo persistence for MySQL databases.
type MySQLCargoRepository struct {
	db *sql.DB
}

// List retrieves non-deleted cargos. With a client ownership filter only
// cargos attached to one of that client's non-deleted orders are returned.
func (m *MySQLCargoRepository) List(ctx context.Context, filter *authz.OwnershipFilter) ([]*logisticsDomain.Cargo, error) {
	querier := database.GetTx(ctx, m.db)

	query := `SELECT ` + cargoColumns + ` FROM cargos WHERE deleted_at IS NULL`
	var args []any
	if filter != nil && filter.ClientID != nil {
		query = `SELECT DISTINCT c.id, c.weight, c.dimensions, c.description, c.created_at, c.updated_at, c.deleted_at
				 FROM cargos c
				 JOIN cargo_orders co ON co.cargo_id = c.id
				 JOIN orders o ON o.id = co.order_id
				 WHERE c.deleted_at IS NULL AND o.deleted_at IS NULL AND o.client_id = ?`
		args = append(args, *filter.ClientID)
	}
	query += ` ORDER BY id`

	rows, err := querier.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to list cargos")
	}
	defer rows.Close()

	var cargos []*logisticsDomain.Cargo
	for rows.Next() {
		cargo, err := scanCargo(rows)
		if err != nil {
			return nil, err
		}
		cargos = append(cargos, cargo)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.Wrap(err, "failed to iterate cargos")
	}

	return cargos, nil
}

// ListDeleted retrieves all soft-deleted cargos.
func (m *MySQLCargoRepository) ListDeleted(ctx context.Context) ([]*logisticsDomain.Cargo, error) {
	querier := database.GetTx(ctx, m.db)

	query := `SELECT ` + cargoColumns + ` FROM cargos WHERE deleted_at IS NOT NULL ORDER BY id`

	rows, err := querier.QueryContext(ctx, query)
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to list deleted cargos")
	}
	defer rows.Close()

	var cargos []*logisticsDomain.Cargo
	for rows.Next() {
		cargo, err := scanCargo(rows)
		if err != nil {
			return nil, err
		}
		cargos = append(cargos, cargo)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.Wrap(err, "failed to iterate deleted cargos")
	}

	return cargos, nil
}

// Get retrieves a non-deleted cargo by ID.
func (m *MySQLCargoRepository) Get(ctx context.Context, id int64) (*logisticsDomain.Cargo, error) {
	querier := database.GetTx(ctx, m.db)

	query := `SELECT ` + cargoColumns + ` FROM cargos WHERE id = ? AND deleted_at IS NULL`

	return scanCargo(querier.QueryRowContext(ctx, query, id))
}

// Create inserts a new cargo and fills in the generated ID.
func (m *MySQLCargoRepository) Create(ctx context.Context, cargo *logisticsDomain.Cargo) error {
	querier := database.GetTx(ctx, m.db)

	query := `INSERT INTO cargos (weight, dimensions, description, created_at, updated_at)
			  VALUES (?, ?, ?, ?, ?)`

	result, err := querier.ExecContext(
		ctx,
		query,
		cargo.Weight,
		cargo.Dimensions,
		cargo.Description,
		cargo.CreatedAt,
		cargo.UpdatedAt,
	)
	if err != nil {
		return apperrors.Wrap(err, "failed to create cargo")
	}

	id, err := result.LastInsertId()
	if err != nil {
		return apperrors.Wrap(err, "failed to get cargo ID")
	}
	cargo.ID = id

	return nil
}

// Update modifies a non-deleted cargo.
func (m *MySQLCargoRepository) Update(ctx context.Context, cargo *logisticsDomain.Cargo) error {
	querier := database.GetTx(ctx, m.db)

	query := `UPDATE cargos
			  SET weight = ?, dimensions = ?, description = ?, updated_at = ?
			  WHERE id = ? AND deleted_at IS NULL`

	result, err := querier.ExecContext(
		ctx,
		query,
		cargo.Weight,
		cargo.Dimensions,
		cargo.Description,
		time.Now().UTC(),
		cargo.ID,
	)
	if err != nil {
		return apperrors.Wrap(err, "failed to update cargo")
	}

	return requireRowAffected(result, logisticsDomain.ErrCargoNotFound)
}

// SoftDelete flags a cargo as deleted.
func (m *MySQLCargoRepository) SoftDelete(ctx context.Context, id int64) error {
	querier := database.GetTx(ctx, m.db)

	query := `UPDATE cargos SET deleted_at = ?, updated_at = ? WHERE id = ? AND deleted_at IS NULL`

	now := time.Now().UTC()
	result, err := querier.ExecContext(ctx, query, now, now, id)
	if err != nil {
		return apperrors.Wrap(err, "failed to delete cargo")
	}

	return requireRowAffected(result, logisticsDomain.ErrCargoNotFound)
}

// Restore clears the deletion flag of a soft-deleted cargo.
func (m *MySQLCargoRepository) Restore(ctx context.Context, id int64) error {
	querier := database.GetTx(ctx, m.db)

	query := `UPDATE cargos SET deleted_at = NULL, updated_at = ? WHERE id = ? AND deleted_at IS NOT NULL`

	result, err := querier.ExecContext(ctx, query, time.Now().UTC(), id)
	if err != nil {
		return apperrors.Wrap(err, "failed to restore cargo")
	}

	return requireRowAffected(result, logisticsDomain.ErrCargoNotFound)
}

// NewMySQLCargoRepository creates a new MySQL cargo repository instance.
func NewMySQLCargoRepository(db *sql.DB) *MySQLCargoRepository {
	return &MySQLCargoRepository{db: db}
}
