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

// MySQLVehicleRepository implements vehicle persistence for MySQL databases.
type MySQLVehicleRepository struct {
	db *sql.DB
}

// List retrieves non-deleted vehicles, narrowed to one driver's vehicles
// when the ownership filter carries a driver ID.
func (m *MySQLVehicleRepository) List(ctx context.Context, filter *authz.OwnershipFilter) ([]*logisticsDomain.Vehicle, error) {
	querier := database.GetTx(ctx, m.db)

	query := `SELECT ` + vehicleColumns + ` FROM vehicles WHERE deleted_at IS NULL`
	var args []any
	if filter != nil && filter.DriverID != nil {
		query += ` AND driver_id = ?`
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
func (m *MySQLVehicleRepository) ListDeleted(ctx context.Context) ([]*logisticsDomain.Vehicle, error) {
	querier := database.GetTx(ctx, m.db)

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
func (m *MySQLVehicleRepository) Get(ctx context.Context, id int64) (*logisticsDomain.Vehicle, error) {
	querier := database.GetTx(ctx, m.db)

	query := `SELECT ` + vehicleColumns + ` FROM vehicles WHERE id = ? AND deleted_at IS NULL`

	return scanVehicle(querier.QueryRowContext(ctx, query, id))
}

// Create inserts a new vehicle and fills in the generated ID.
func (m *MySQLVehicleRepository) Create(ctx context.Context, vehicle *logisticsDomain.Vehicle) error {
	querier := database.GetTx(ctx, m.db)

	query := `INSERT INTO vehicles (company_id, driver_id, type, capacity, vehicle_number, created_at, updated_at)
			  VALUES (?, ?, ?, ?, ?, ?, ?)`

	result, err := querier.ExecContext(
		ctx,
		query,
		vehicle.CompanyID,
		vehicle.DriverID,
		vehicle.Type,
		vehicle.Capacity,
		vehicle.VehicleNumber,
		vehicle.CreatedAt,
		vehicle.UpdatedAt,
	)
	if err != nil {
		return apperrors.Wrap(err, "failed to create vehicle")
	}

	id, err := result.LastInsertId()
	if err != nil {
		return apperrors.Wrap(err, "failed to get vehicle ID")
	}
	vehicle.ID = id

	return nil
}

// Update modifies a non-deleted vehicle.
func (m *MySQLVehicleRepository) Update(ctx context.Context, vehicle *logisticsDomain.Vehicle) error {
	querier := database.GetTx(ctx, m.db)

	query := `UPDATE vehicles
			  SET company_id = ?, driver_id = ?, type = ?, capacity = ?, vehicle_number = ?, updated_at = ?
			  WHERE id = ? AND deleted_at IS NULL`

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
func (m *MySQLVehicleRepository) SoftDelete(ctx context.Context, id int64) error {
	querier := database.GetTx(ctx, m.db)

	query := `UPDATE vehicles SET deleted_at = ?, updated_at = ? WHERE id = ? AND deleted_at IS NULL`

	now := time.Now().UTC()
	result, err := querier.ExecContext(ctx, query, now, now, id)
	if err != nil {
		return apperrors.Wrap(err, "failed to delete vehicle")
	}

	return requireRowAffected(result, logisticsDomain.ErrVehicleNotFound)
}

// Restore clears the deletion flag of a soft-deleted vehicle.
func (m *MySQLVehicleRepository) Restore(ctx context.Context, id int64) error {
	querier := database.GetTx(ctx, m.db)

	query := `UPDATE vehicles SET deleted_at = NULL, updated_at = ? WHERE id = ? AND deleted_at IS NOT NULL`

	result, err := querier.ExecContext(ctx, query, time.Now().UTC(), id)
	if err != nil {
		return apperrors.Wrap(err, "failed to restore vehicle")
	}

	return requireRowAffected(result, logisticsDomain.ErrVehicleNotFound)
}

// NewMySQLVehicleRepository creates a new MySQL vehicle repository instance.
func NewMySQLVehicleRepository(db *sql.DB) *MySQLVehicleRepository {
	return &MySQLVehicleRepository{db: db}
}
