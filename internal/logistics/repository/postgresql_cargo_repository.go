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

const cargoColumns = `id, weight, dimensions, description, created_at, updated_at, deleted_at`

func scanCargo(scanner interface{ Scan(...any) error }) (*logisticsDomain.Cargo, error) {
	var cargo logisticsDomain.Cargo
	err := scanner.Scan(
		&cargo.ID,
		&cargo.Weight,
		&cargo.Dimensions,
		&cargo.Description,
		&cargo.CreatedAt,
		&cargo.UpdatedAt,
		&cargo.DeletedAt,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, logisticsDomain.ErrCargoNotFound
		}
		return nil, apperrors.Wrap(err, "failed to scan cargo")
	}
	cargo.IsDeleted = cargo.DeletedAt != nil
	return &cargo, nil
}

// PostgreSQLCargoRepository implements cargo persistence for PostgreSQL databases.
type PostgreSQLCargoRepository struct {
	db *sql.DB
}

// List retrieves non-deleted cargos. With a client ownership filter only
// cargos attached to one of that client's non-deleted orders are returned.
func (p *PostgreSQLCargoRepository) List(ctx context.Context, filter *authz.OwnershipFilter) ([]*logisticsDomain.Cargo, error) {
	querier := database.GetTx(ctx, p.db)

	query := `SELECT ` + cargoColumns + ` FROM cargos WHERE deleted_at IS NULL`
	var args []any
	if filter != nil && filter.ClientID != nil {
		query = `SELECT DISTINCT c.id, c.weight, c.dimensions, c.description, c.created_at, c.updated_at, c.deleted_at
				 FROM cargos c
				 JOIN cargo_orders co ON co.cargo_id = c.id
				 JOIN orders o ON o.id = co.order_id
				 WHERE c.deleted_at IS NULL AND o.deleted_at IS NULL AND o.client_id = $1`
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
func (p *PostgreSQLCargoRepository) ListDeleted(ctx context.Context) ([]*logisticsDomain.Cargo, error) {
	querier := database.GetTx(ctx, p.db)

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
func (p *PostgreSQLCargoRepository) Get(ctx context.Context, id int64) (*logisticsDomain.Cargo, error) {
	querier := database.GetTx(ctx, p.db)

	query := `SELECT ` + cargoColumns + ` FROM cargos WHERE id = $1 AND deleted_at IS NULL`

	return scanCargo(querier.QueryRowContext(ctx, query, id))
}

// Create inserts a new cargo and fills in the generated ID.
func (p *PostgreSQLCargoRepository) Create(ctx context.Context, cargo *logisticsDomain.Cargo) error {
	querier := database.GetTx(ctx, p.db)

	query := `INSERT INTO cargos (weight, dimensions, description, created_at, updated_at)
			  VALUES ($1, $2, $3, $4, $5)
			  RETURNING id`

	err := querier.QueryRowContext(
		ctx,
		query,
		cargo.Weight,
		cargo.Dimensions,
		cargo.Description,
		cargo.CreatedAt,
		cargo.UpdatedAt,
	).Scan(&cargo.ID)
	if err != nil {
		return apperrors.Wrap(err, "failed to create cargo")
	}

	return nil
}

// Update modifies a non-deleted cargo.
func (p *PostgreSQLCargoRepository) Update(ctx context.Context, cargo *logisticsDomain.Cargo) error {
	querier := database.GetTx(ctx, p.db)

	query := `UPDATE cargos
			  SET weight = $1, dimensions = $2, description = $3, updated_at = $4
			  WHERE id = $5 AND deleted_at IS NULL`

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
func (p *PostgreSQLCargoRepository) SoftDelete(ctx context.Context, id int64) error {
	querier := database.GetTx(ctx, p.db)

	query := `UPDATE cargos SET deleted_at = $1, updated_at = $1 WHERE id = $2 AND deleted_at IS NULL`

	result, err := querier.ExecContext(ctx, query, time.Now().UTC(), id)
	if err != nil {
		return apperrors.Wrap(err, "failed to delete cargo")
	}

	return requireRowAffected(result, logisticsDomain.ErrCargoNotFound)
}

// Restore clears the deletion flag of a soft-deleted cargo.
func (p *PostgreSQLCargoRepository) Restore(ctx context.Context, id int64) error {
	querier := database.GetTx(ctx, p.db)

	query := `UPDATE cargos SET deleted_at = NULL, updated_at = $1 WHERE id = $2 AND deleted_at IS NOT NULL`

	result, err := querier.ExecContext(ctx, query, time.Now().UTC(), id)
	if err != nil {
		return apperrors.Wrap(err, "failed to restore cargo")
	}

	return requireRowAffected(result, logisticsDomain.ErrCargoNotFound)
}

// NewPostgreSQLCargoRepository creates a new PostgreSQL cargo repository instance.
func NewPostgreSQLCargoRepository(db *sql.DB) *PostgreSQLCargoRepository {
	return &PostgreSQLCargoRepository{db: db}
}
