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

const vehicleColumns = `id, company_id, driver_id, type, capacity, vehicle_number, created_at, updated_at, deleted_at`

func scanVehicle(scanner interface{ Scan(...any) error }) (*logisticsDomain.Vehicle, error) {
	var vehicle logisticsDomain.Vehicle
	err := scanner.Scan(
		&vehicle.ID,
		&vehicle.CompanyID,
		&vehicle.DriverID,
		&vehicle.Type,
		&vehicle.Capacity,
		&vehicle.VehicleNumber,
		&vehicle.CreatedAt,
		&vehicle.UpdatedAt,
		&vehicle.DeletedAt,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, logisticsDomain.ErrVehicleNotFound
		}
		return nil, apperrors.Wrap(err, "failed to scan vehicle")
	}
	vehicle.IsDeleted = vehicle.DeletedAt != nil
	return &vehicle, nil
}

// PostgreSQLVehicleRepository implements vehicle persistence for PostgreSQL databases.
type PostgreSQLVehicleRepository struct {
	db *sql.DB
}

// List retrieves non-deleted vehicles, narrowed to one driver's vehicles
// when the ownership filter carries a driver ID.
func (p *PostgreSQLVehicleRepository) List(ctx context.Context, filter *authz.OwnershipFilter) ([]*logisticsDomain.Vehicle, error) {
	querier := database.GetTx(ctx, p.db)

	query := `SELECT ` + vehicleColumns + ` FROM vehicles WHERE deleted_at IS NULL`
	var args []any
	if filter != nil && filter.DriverID != nil {
		query += ` AND driver_id = $1`
		args = append(args, *filter.DriverID)
	}
	query += ` ORDER BY id`

	rows, err := querier.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to list vehicles")
	}
	defer rows.Close()

	var vehicles []*logisticsDomain.Vehicle
	for rows.Next() {
		vehicle, err := scanVehicle(rows)
		if err != nil {
			return nil, err
		}
		vehicles = append(vehicles, vehicle)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.Wrap(err, "failed to iterate vehicles")
	}

	return vehicles, nil
}

// ListDeleted retrieves all soft-deleted vehicles.
func (p *PostgreSQLVehicleRepository) ListDeleted(ctx context.Context) ([]*logisticsDomain.Vehicle, error) {
	querier := database.GetTx(ctx, p.db)

	query := `SELECT ` + vehicleColumns + ` FROM vehicles WHERE deleted_at IS NOT NULL ORDER BY id`

	rows, err := querier.QueryContext(ctx, query)
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to list deleted vehicles")
	}
	defer rows.Close()

	var vehicles []*logisticsDomain.Vehicle
	for rows.Next() {
		vehicle, err := scanVehicle(rows)
		if err != nil {
			return nil, err
		}
		vehicles = append(vehicles, vehicle)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.Wrap(err, "failed to iterate deleted vehicles")
	}

	return vehicles, nil
}

// Get retrieves a non-deleted vehicle by ID.
func (p *PostgreSQLVehicleRepository) Get(ctx context.Context, id int64) (*logisticsDomain.Vehicle, error) {
	querier := database.GetTx(ctx, p.db)

	query := `SELECT ` + vehicleColumns + ` FROM vehicles WHERE id = $1 AND deleted_at IS NULL`

	return scanVehicle(querier.QueryRowContext(ctx, query, id))
}

// Create inserts a new vehicle and fills in the generated ID.
func (p *PostgreSQLVehicleRepository) Create(ctx context.Context, vehicle *logisticsDomain.Vehicle) error {
	querier := database.GetTx(ctx, p.db)

	query := `INSERT INTO vehicles (company_id, driver_id, type, capacity, vehicle_number, created_at, updated_at)
			  VALUES ($1, $2, $3, $4, $5, $6, $7)
			  RETURNING id`

	err := querier.QueryRowContext(
		ctx,
		query,
		vehicle.CompanyID,
		vehicle.DriverID,
		vehicle.Type,
		vehicle.Capacity,
		vehicle.VehicleNumber,
		vehicle.CreatedAt,
		vehicle.UpdatedAt,
	).Scan(&vehicle.ID)
	if err != nil {
		return apperrors.Wrap(err, "failed to create vehicle")
	}

	return nil
}

// Update modifies a non-deleted vehicle.
func (p *PostgreSQLVehicleRepository) Update(ctx context.Context, vehicle *logisticsDomain.Vehicle) error {
	querier := database.GetTx(ctx, p.db)

	query := `UPDATE vehicles
			  SET company_id = $1, driver_id = $2, type = $3, capacity = $4, vehicle_number = $5, updated_at = $6
			  WHERE id = $7 AND deleted_at IS NULL`

	result, err := querier.ExecContext(
		ctx,
		query,
		vehicle.CompanyID,
		vehicle.DriverID,
		vehicle.Type,
		vehicle.Capacity,
		vehicle.VehicleNumber,
		time.Now().UTC(),
		vehicle.ID,
	)
	if err != nil {
		return apperrors.Wrap(err, "failed to update vehicle")
	}

	return requireRowAffected(result, logisticsDomain.ErrVehicleNotFound)
}

// SoftDelete flags a vehicle as deleted.
func (p *PostgreSQLVehicleRepository) SoftDelete(ctx context.Context, id int64) error {
	querier := database.GetTx(ctx, p.db)

	query := `UPDATE vehicles SET deleted_at = $1, updated_at = $1 WHERE id = $2 AND deleted_at IS NULL`

	result, err := querier.ExecContext(ctx, query, time.Now().UTC(), id)
	if err != nil {
		return apperrors.Wrap(err, "failed to delete vehicle")
	}

	return requireRowAffected(result, logisticsDomain.ErrVehicleNotFound)
}

// Restore clears the deletion flag of a soft-deleted vehicle.
func (p *PostgreSQLVehicleRepository) Restore(ctx context.Context, id int64) error {
	querier := database.GetTx(ctx, p.db)

	query := `UPDATE vehicles SET deleted_at = NULL, updated_at = $1 WHERE id = $2 AND deleted_at IS NOT NULL`

	result, err := querier.ExecContext(ctx, query, time.Now().UTC(), id)
	if err != nil {
		return apperrors.Wrap(err, "failed to restore vehicle")
	}

	return requireRowAffected(result, logisticsDomain.ErrVehicleNotFound)
}

// NewPostgreSQLVehicleRepository creates a new PostgreSQL vehicle repository instance.
func NewPostgreSQLVehicleRepository(db *sql.DB) *PostgreSQLVehicleRepository {
	return &PostgreSQLVehicleRepository{db: db}
}
