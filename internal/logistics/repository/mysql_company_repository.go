package repository

import (
	"context"
	"database/sql"
	"time"

	"github.com/cargoconnect/api/internal/database"
	apperrors "github.com/cargoconnect/api/internal/errors"
	logisticsDomain "github.com/cargoconnect/api/internal/logistics/domain"
)

// MySQLCompanyRepository implements transportation company persistence for
// MySQL databases.
type MySQLCompanyRepository struct {
	db *sql.DB
}

// List retrieves all non-deleted transportation companies.
func (m *MySQLCompanyRepository) List(ctx context.Context) ([]*logisticsDomain.TransportationCompany, error) {
	querier := database.GetTx(ctx, m.db)

	query := `SELECT ` + companyColumns + ` FROM transportation_companies WHERE deleted_at IS NULL ORDER BY id`

	rows, err := querier.QueryContext(ctx, query)
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to list transportation companies")
	}
	defer rows.Close()

	var companies []*logisticsDomain.TransportationCompany
	for rows.Next() {
		company, err := scanCompany(rows)
		if err != nil {
			return nil, err
		}
		companies = append(companies, company)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.Wrap(err, "failed to iterate transportation companies")
	}

	return companies, nil
}

// ListDeleted retrieves all soft-deleted transportation companies.
func (m *MySQLCompanyRepository) ListDeleted(ctx context.Context) ([]*logisticsDomain.TransportationCompany, error) {
	querier := database.GetTx(ctx, m.db)

	query := `SELECT ` + companyColumns + ` FROM transportation_companies WHERE deleted_at IS NOT NULL ORDER BY id`

	rows, err := querier.QueryContext(ctx, query)
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to list deleted transportation companies")
	}
	defer rows.Close()

	var companies []*logisticsDomain.TransportationCompany
	for rows.Next() {
		company, err := scanCompany(rows)
		if err != nil {
			return nil, err
		}
		companies = append(companies, company)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.Wrap(err, "failed to iterate deleted transportation companies")
	}

	return companies, nil
}

// Get retrieves a non-deleted transportation company by ID.
func (m *MySQLCompanyRepository) Get(ctx context.Context, id int64) (*logisticsDomain.TransportationCompany, error) {
	querier := database.GetTx(ctx, m.db)

	query := `SELECT ` + companyColumns + ` FROM transportation_companies WHERE id = ? AND deleted_at IS NULL`

	return scanCompany(querier.QueryRowContext(ctx, query, id))
}

// Create inserts a new transportation company and fills in the generated ID.
func (m *MySQLCompanyRepository) Create(ctx context.Context, company *logisticsDomain.TransportationCompany) error {
	querier := database.GetTx(ctx, m.db)

	query := `INSERT INTO transportation_companies (name, address, phone_number, created_at, updated_at)
			  VALUES (?, ?, ?, ?, ?)`

	result, err := querier.ExecContext(
		ctx,
		query,
		company.Name,
		company.Address,
		company.PhoneNumber,
		company.CreatedAt,
		company.UpdatedAt,
	)
	if err != nil {
		return apperrors.Wrap(err, "failed to create transportation company")
	}

	id, err := result.LastInsertId()
	if err != nil {
		return apperrors.Wrap(err, "failed to get transportation company ID")
	}
	company.ID = id

	return nil
}

// Update modifies a non-deleted transportation company.
func (m *MySQLCompanyRepository) Update(ctx context.Context, company *logisticsDomain.TransportationCompany) error {
	querier := database.GetTx(ctx, m.db)

	query := `UPDATE transportation_companies
			  SET name = ?, address = ?, phone_number = ?, updated_at = ?
			  WHERE id = ? AND deleted_at IS NULL`

	result, err := querier.ExecContext(
		ctx,
		query,
		company.Name,
		company.Address,
		company.PhoneNumber,
		time.Now().UTC(),
		company.ID,
	)
	if err != nil {
		return apperrors.Wrap(err, "failed to update transportation company")
	}

	return requireRowAffected(result, logisticsDomain.ErrCompanyNotFound)
}

// SoftDelete flags a transportation company as deleted.
func (m *MySQLCompanyRepository) SoftDelete(ctx context.Context, id int64) error {
	querier := database.GetTx(ctx, m.db)

	query := `UPDATE transportation_companies SET deleted_at = ?, updated_at = ? WHERE id = ? AND deleted_at IS NULL`

	now := time.Now().UTC()
	result, err := querier.ExecContext(ctx, query, now, now, id)
	if err != nil {
		return apperrors.Wrap(err, "failed to delete transportation company")
	}

	return requireRowAffected(result, logisticsDomain.ErrCompanyNotFound)
}

// Restore clears the deletion flag of a soft-deleted transportation company.
func (m *MySQLCompanyRepository) Restore(ctx context.Context, id int64) error {
	querier := database.GetTx(ctx, m.db)

	query := `UPDATE transportation_companies SET deleted_at = NULL, updated_at = ? WHERE id = ? AND deleted_at IS NOT NULL`

	result, err := querier.ExecContext(ctx, query, time.Now().UTC(), id)
	if err != nil {
		return apperrors.Wrap(err, "failed to restore transportation company")
	}

	return requireRowAffected(result, logisticsDomain.ErrCompanyNotFound)
}

// NewMySQLCompanyRepository creates a new MySQL transportation company
// repository instance.
func NewMySQLCompanyRepository(db *sql.DB) *MySQLCompanyRepository {
	return &MySQLCompanyRepository{db: db}
}
