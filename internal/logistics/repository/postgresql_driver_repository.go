package repository

import (
	"context"
	"database/sql"
	"time"

	"github.com/cargoconnect/api/internal/database"
	apperrors "github.com/cargoconnect/api/internal/errors"
	logisticsDomain "github.com/cargoconnect/api/internal/logistics/domain"
)

const driverColumns = `id, first_name, last_name, license_number, phone_number, created_at, updated_at, deleted_at`

func scanDriver(scanner interface{ Scan(...any) error }) (*logisticsDomain.Driver, error) {
	var driver logisticsDomain.Driver
	err := scanner.Scan(
		&driver.ID,
		&driver.FirstName,
		&driver.LastName,
		&driver.LicenseNumber,
		&driver.PhoneNumber,
		&driver.CreatedAt,
		&driver.UpdatedAt,
		&driver.DeletedAt,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, logisticsDomain.ErrDriverNotFound
		}
		return nil, apperrors.Wrap(err, "failed to scan driver")
	}
	driver.IsDeleted = driver.DeletedAt != nil
	return &driver, nil
}

// PostgreSQLDriverRepository implements driver persistence for PostgreSQL databases.
type PostgreSQLDriverRepository struct {
	db *sql.DB
}

// List retrieves all non-deleted drivers.
func (p *PostgreSQLDriverRepository) List(ctx context.Context) ([]*logisticsDomain.Driver, error) {
	querier := database.GetTx(ctx, p.db)

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
func (p *PostgreSQLDriverRepository) ListDeleted(ctx context.Context) ([]*logisticsDomain.Driver, error) {
	querier := database.GetTx(ctx, p.db)

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
func (p *PostgreSQLDriverRepository) Get(ctx context.Context, id int64) (*logisticsDomain.Driver, error) {
	querier := database.GetTx(ctx, p.db)

	query := `SELECT ` + driverColumns + ` FROM drivers WHERE id = $1 AND deleted_at IS NULL`

	return scanDriver(querier.QueryRowContext(ctx, query, id))
}

// Create inserts a new driver and fills in the generated ID.
func (p *PostgreSQLDriverRepository) Create(ctx context.Context, driver *logisticsDomain.Driver) error {
	querier := database.GetTx(ctx, p.db)

	query := `INSERT INTO drivers (first_name, last_name, license_number, phone_number, created_at, updated_at)
			  VALUES ($1, $2, $3, $4, $5, $6)
			  RETURNING id`

	err := querier.QueryRowContext(
		ctx,
		query,
		driver.FirstName,
		driver.LastName,
		driver.LicenseNumber,
		driver.PhoneNumber,
		driver.CreatedAt,
		driver.UpdatedAt,
	).Scan(&driver.ID)
	if err != nil {
		return apperrors.Wrap(err, "failed to create driver")
	}

	return nil
}

// Update modifies a non-deleted driver.
func (p *PostgreSQLDriverRepository) Update(ctx context.Context, driver *logisticsDomain.Driver) error {
	querier := database.GetTx(ctx, p.db)

	query := `UPDATE drivers
			  SET first_name = $1, last_name = $2, license_number = $3, phone_number = $4, updated_at = $5
			  WHERE id = $6 AND deleted_at IS NULL`

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
func (p *PostgreSQLDriverRepository) SoftDelete(ctx context.Context, id int64) error {
	querier := database.GetTx(ctx, p.db)

	query := `UPDATE drivers SET deleted_at = $1, updated_at = $1 WHERE id = $2 AND deleted_at IS NULL`

	result, err := querier.ExecContext(ctx, query, time.Now().UTC(), id)
	if err != nil {
		return apperrors.Wrap(err, "failed to delete driver")
	}

	return requireRowAffected(result, logisticsDomain.ErrDriverNotFound)
}

// Restore clears the deletion flag of a soft-deleted driver.
func (p *PostgreSQLDriverRepository) Restore(ctx context.Context, id int64) error {
	querier := database.GetTx(ctx, p.db)

	query := `UPDATE drivers SET deleted_at = NULL, updated_at = $1 WHERE id = $2 AND deleted_at IS NOT NULL`

	result, err := querier.ExecContext(ctx, query, time.Now().UTC(), id)
	if err != nil {
		return apperrors.Wrap(err, "failed to restore driver")
	}

	return requireRowAffected(result, logisticsDomain.ErrDriverNotFound)
}

// NewPostgreSQLDriverRepository creates a new PostgreSQL driver repository instance.
func NewPostgreSQLDriverRepository(db *sql.DB) *PostgreSQLDriverRepository {
	return &PostgreSQLDriverRepository{db: db}
}
