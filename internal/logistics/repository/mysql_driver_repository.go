package repository

import (
	"context"
	"database/sql"
	"time"

	"github.com/cargoconnect/api/internal/database"
	apperrors "github.com/cargoconnect/api/internal/errors"
	logisticsDomain "github.com/cargoconnect/api/internal/logistics/domain"
)

// MySQLDriverRepository implements driver persistence for MySQL databases.
type MySQLDriverRepository struct {
	db *sql.DB
}

// List retrieves all non-deleted drivers.
func (m *MySQLDriverRepository) List(ctx context.Context) ([]*logisticsDomain.Driver, error) {
	querier := database.GetTx(ctx, m.db)

	query := `SELECT ` + driverColumns + ` FROM drivers WHERE deleted_at IS NULL ORDER BY id`

	rows, err := querier.QueryContext(ctx, query)
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to list drivers")
	}
	defer rows.Close()

	var drivers []*logisticsDomain.Driver
	for rows.Next() {
		driver, err := scanDriver(rows)
		if err != nil {
			return nil, err
		}
		drivers = append(drivers, driver)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.Wrap(err, "failed to iterate drivers")
	}

	return drivers, nil
}

// ListDeleted retrieves all soft-deleted drivers.
func (m *MySQLDriverRepository) ListDeleted(ctx context.Context) ([]*logisticsDomain.Driver, error) {
	querier := database.GetTx(ctx, m.db)

	query := `SELECT ` + driverColumns + ` FROM drivers WHERE deleted_at IS NOT NULL ORDER BY id`

	rows, err := querier.QueryContext(ctx, query)
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to list deleted drivers")
	}
	defer rows.Close()

	var drivers []*logisticsDomain.Driver
	for rows.Next() {
		driver, err := scanDriver(rows)
		if err != nil {
			return nil, err
		}
		drivers = append(drivers, driver)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.Wrap(err, "failed to iterate deleted drivers")
	}

	return drivers, nil
}

// Get retrieves a non-deleted driver by ID.
func (m *MySQLDriverRepository) Get(ctx context.Context, id int64) (*logisticsDomain.Driver, error) {
	querier := database.GetTx(ctx, m.db)

	query := `SELECT ` + driverColumns + ` FROM drivers WHERE id = ? AND deleted_at IS NULL`

	return scanDriver(querier.QueryRowContext(ctx, query, id))
}

// Create inserts a new driver and fills in the generated ID.
func (m *MySQLDriverRepository) Create(ctx context.Context, driver *logisticsDomain.Driver) error {
	querier := database.GetTx(ctx, m.db)

	query := `INSERT INTO drivers (first_name, last_name, license_number, phone_number, created_at, updated_at)
			  VALUES (?, ?, ?, ?, ?, ?)`

	result, err := querier.ExecContext(
		ctx,
		query,
		driver.FirstName,
		driver.LastName,
		driver.LicenseNumber,
		driver.PhoneNumber,
		driver.CreatedAt,
		driver.UpdatedAt,
	)
	if err != nil {
		return apperrors.Wrap(err, "failed to create driver")
	}

	id, err := result.LastInsertId()
	if err != nil {
		return apperrors.Wrap(err, "failed to get driver ID")
	}
	driver.ID = id

	return nil
}

// Update modifies a non-deleted driver.
func (m *MySQLDriverRepository) Update(ctx context.Context, driver *logisticsDomain.Driver) error {
	querier := database.GetTx(ctx, m.db)

	query := `UPDATE drivers
			  SET first_name = ?, last_name = ?, license_number = ?, phone_number = ?, updated_at = ?
			  WHERE id = ? AND deleted_at IS NULL`

	result, err := querier.ExecContext(
		ctx,
		query,
		driver.FirstName,
		driver.LastName,
		driver.LicenseNumber,
		driver.PhoneNumber,
		time.Now().UTC(),
		driver.ID,
	)
	if err != nil {
		return apperrors.Wrap(err, "failed to update driver")
	}

	return requireRowAffected(result, logisticsDomain.ErrDriverNotFound)
}

// SoftDelete flags a driver as deleted.
func (m *MySQLDriverRepository) SoftDelete(ctx context.Context, id int64) error {
	querier := database.GetTx(ctx, m.db)

	query := `UPDATE drivers SET deleted_at = ?, updated_at = ? WHERE id = ? AND deleted_at IS NULL`

	now := time.Now().UTC()
	result, err := querier.ExecContext(ctx, query, now, now, id)
	if err != nil {
		return apperrors.Wrap(err, "failed to delete driver")
	}

	return requireRowAffected(result, logisticsDomain.ErrDriverNotFound)
}

// Restore clears the deletion flag of a soft-deleted driver.
func (m *MySQLDriverRepository) Restore(ctx context.Context, id int64) error {
	querier := database.GetTx(ctx, m.db)

	query := `UPDATE drivers SET deleted_at = NULL, updated_at = ? WHERE id = ? AND deleted_at IS NOT NULL`

	result, err := querier.ExecContext(ctx, query, time.Now().UTC(), id)
	if err != nil {
		return apperrors.Wrap(err, "failed to restore driver")
	}

	return requireRowAffected(result, logisticsDomain.ErrDriverNotFound)
}

// NewMySQLDriverRepository creates a new MySQL driver repository instance.
func NewMySQLDriverRepository(db *sql.DB) *MySQLDriverRepository {
	return &MySQLDriverRepository{db: db}
}
