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

const transportationColumns = `id, cargo_id, vehicle_id, start_point, end_point, created_at, updated_at, deleted_at`

func scanTransportation(scanner interface{ Scan(...any) error }) (*logisticsDomain.Transportation, error) {
	var transportation logisticsDomain.Transportation
	err := scanner.Scan(
		&transportation.ID,
		&transportation.CargoID,
		&transportation.VehicleID,
		&transportation.StartPoint,
		&transportation.EndPoint,
		&transportation.CreatedAt,
		&transportation.UpdatedAt,
		&transportation.DeletedAt,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, logisticsDomain.ErrTransportationNotFound
		}
		return nil, apperrors.Wrap(err, "failed to scan transportation")
	}
	transportation.IsDeleted = transportation.DeletedAt != nil
	return &transportation, nil
}

// PostgreSQLTransportationRepository implements transportation persistence
// for PostgreSQL databases.
type PostgreSQLTransportationRepository struct {
	db *sql.DB
}

// List retrieves non-deleted transportations. With a driver ownership
// filter only hauls whose vehicle is assigned to that driver are returned.
func (p *PostgreSQLTransportationRepository) List(ctx context.Context, filter *authz.OwnershipFilter) ([]*logisticsDomain.Transportation, error) {
	querier := database.GetTx(ctx, p.db)

	query := `SELECT ` + transportationColumns + ` FROM transportations WHERE deleted_at IS NULL`
	var args []any
	if filter != nil && filter.DriverID != nil {
		query = `SELECT t.id, t.cargo_id, t.vehicle_id, t.start_point, t.end_point, t.created_at, t.updated_at, t.deleted_at
				 FROM transportations t
				 JOIN vehicles v ON v.id = t.vehicle_id
				 WHERE t.deleted_at IS NULL AND v.deleted_at IS NULL AND v.driver_id = $1`
		args = append(args, *filter.DriverID)
	}
	query += ` ORDER BY id`

	rows, err := querier.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to list transportations")
	}
	defer rows.Close()

	var transportations []*logisticsDomain.Transportation
	for rows.Next() {
		transportation, err := scanTransportation(rows)
		if err != nil {
			return nil, err
		}
		transportations = append(transportations, transportation)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.Wrap(err, "failed to iterate transportations")
	}

	return transportations, nil
}

// ListDeleted retrieves all soft-deleted transportations.
func (p *PostgreSQLTransportationRepository) ListDeleted(ctx context.Context) ([]*logisticsDomain.Transportation, error) {
	querier := database.GetTx(ctx, p.db)

	query := `SELECT ` + transportationColumns + ` FROM transportations WHERE deleted_at IS NOT NULL ORDER BY id`

	rows, err := querier.QueryContext(ctx, query)
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to list deleted transportations")
	}
	defer rows.Close()

	var transportations []*logisticsDomain.Transportation
	for rows.Next() {
		transportation, err := scanTransportation(rows)
		if err != nil {
			return nil, err
		}
		transportations = append(transportations, transportation)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.Wrap(err, "failed to iterate deleted transportations")
	}

	return transportations, nil
}

// Get retrieves a non-deleted transportation by ID.
func (p *PostgreSQLTransportationRepository) Get(ctx context.Context, id int64) (*logisticsDomain.Transportation, error) {
	querier := database.GetTx(ctx, p.db)

	query := `SELECT ` + transportationColumns + ` FROM transportations WHERE id = $1 AND deleted_at IS NULL`

	return scanTransportation(querier.QueryRowContext(ctx, query, id))
}

// Create inserts a new transportation and fills in the generated ID.
func (p *PostgreSQLTransportationRepository) Create(ctx context.Context, transportation *logisticsDomain.Transportation) error {
	querier := database.GetTx(ctx, p.db)

	query := `INSERT INTO transportations (cargo_id, vehicle_id, start_point, end_point, created_at, updated_at)
			  VALUES ($1, $2, $3, $4, $5, $6)
			  RETURNING id`

	err := querier.QueryRowContext(
		ctx,
		query,
		transportation.CargoID,
		transportation.VehicleID,
		transportation.StartPoint,
		transportation.EndPoint,
		transportation.CreatedAt,
		transportation.UpdatedAt,
	).Scan(&transportation.ID)
	if err != nil {
		return apperrors.Wrap(err, "failed to create transportation")
	}

	return nil
}

// Update modifies a non-deleted transportation.
func (p *PostgreSQLTransportationRepository) Update(ctx context.Context, transportation *logisticsDomain.Transportation) error {
	querier := database.GetTx(ctx, p.db)

	query := `UPDATE transportations
			  SET cargo_id = $1, vehicle_id = $2, start_point = $3, end_point = $4, updated_at = $5
			  WHERE id = $6 AND deleted_at IS NULL`

	result, err := querier.ExecContext(
		ctx,
		query,
		transportation.CargoID,
		transportation.VehicleID,
		transportation.StartPoint,
		transportation.EndPoint,
		time.Now().UTC(),
		transportation.ID,
	)
	if err != nil {
		return apperrors.Wrap(err, "failed to update transportation")
	}

	return requireRowAffected(result, logisticsDomain.ErrTransportationNotFound)
}

// SoftDelete flags a transportation as deleted.
func (p *PostgreSQLTransportationRepository) SoftDelete(ctx context.Context, id int64) error {
	querier := database.GetTx(ctx, p.db)

	query := `UPDATE transportations SET deleted_at = $1, updated_at = $1 WHERE id = $2 AND deleted_at IS NULL`

	result, err := querier.ExecContext(ctx, query, time.Now().UTC(), id)
	if err != nil {
		return apperrors.Wrap(err, "failed to delete transportation")
	}

	return requireRowAffected(result, logisticsDomain.ErrTransportationNotFound)
}

// Restore clears the deletion flag of a soft-deleted transportation.
func (p *PostgreSQLTransportationRepository) Restore(ctx context.Context, id int64) error {
	querier := database.GetTx(ctx, p.db)

	query := `UPDATE transportations SET deleted_at = NULL, updated_at = $1 WHERE id = $2 AND deleted_at IS NOT NULL`

	result, err := querier.ExecContext(ctx, query, time.Now().UTC(), id)
	if err != nil {
		return apperrors.Wrap(err, "failed to restore transportation")
	}

	return requireRowAffected(result, logisticsDomain.ErrTransportationNotFound)
}

// LinkCompany associates a participating company with a transportation.
// Linking an already associated company returns ErrLinkExists.
func (p *PostgreSQLTransportationRepository) LinkCompany(ctx context.Context, transportationID, companyID int64) error {
	querier := database.GetTx(ctx, p.db)

	query := `INSERT INTO transportation_company_links (transportation_id, company_id) VALUES ($1, $2) ON CONFLICT DO NOTHING`

	result, err := querier.ExecContext(ctx, query, transportationID, companyID)
	if err != nil {
		return apperrors.Wrap(err, "failed to link company to transportation")
	}

	return requireRowAffected(result, logisticsDomain.ErrLinkExists)
}

// UnlinkCompany removes a company association from a transportation.
func (p *PostgreSQLTransportationRepository) UnlinkCompany(ctx context.Context, transportationID, companyID int64) error {
	querier := database.GetTx(ctx, p.db)

	query := `DELETE FROM transportation_company_links WHERE transportation_id = $1 AND company_id = $2`

	result, err := querier.ExecContext(ctx, query, transportationID, companyID)
	if err != nil {
		return apperrors.Wrap(err, "failed to unlink company from transportation")
	}

	return requireRowAffected(result, logisticsDomain.ErrLinkNotFound)
}

// NewPostgreSQLTransportationRepository creates a new PostgreSQL
// transportation repository instance.
func NewPostgreSQLTransportationRepository(db *sql.DB) *PostgreSQLTransportationRepository {
	return &PostgreSQLTransportationRepository{db: db}
}
