package repository

import (
	"context"
	"database/sql"
	"time"

	"github.com/cargoconnect/api/internal/database"
	apperrors "github.com/cargoconnect/api/internal/errors"
	logisticsDomain "github.com/cargoconnect/api/internal/logistics/domain"
)

const companyColumns = `id, name, address, phone_number, created_at, updated_at, deleted_at`

func scanCompany(scanner interface{ Scan(...any) error }) (*logisticsDomain.TransportationCompany, error) {
	var company logisticsDomain.TransportationCompany
	err := scanner.Scan(
		&company.ID,
		&company.Name,
		&company.Address,
		&company.PhoneNumber,
		&company.CreatedAt,
		&company.UpdatedAt,
		&company.DeletedAt,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, logisticsDomain.ErrCompanyNotFound
		}
		return nil, apperrors.Wrap(err, "failed to scan transportation company")
	}
	company.IsDeleted = company.DeletedAt != nil
	return &company, nil
}

// PostgreSQLCompanyRepository implements transportation company persistence
// for PostgreSQL databases.
type PostgreSQLCompanyRepository struct {
	db *sql.DB
}

// List retrieves all non-deleted transportation companies.
func (p *PostgreSQLCompanyRepository) List(ctx context.Context) ([]*logisticsDomain.TransportationCompany, error) {
	querier := database.GetTx(ctx, p.db)

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
func (p *PostgreSQLCompanyRepository) ListDeleted(ctx context.Context) ([]*logisticsDomain.TransportationCompany, error) {
	querier := database.GetTx(ctx, p.db)

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
func (p *PostgreSQLCompanyRepository) Get(ctx context.Context, id int64) (*logisticsDomain.TransportationCompany, error) {
	querier := database.GetTx(ctx, p.db)

	query := `SELECT ` + companyColumns + ` FROM transportation_companies WHERE id = $1 AND deleted_at IS NULL`

	return scanCompany(querier.QueryRowContext(ctx, query, id))
}

// Create inserts a new transportation company and fills in the generated ID.
func (p *PostgreSQLCompanyRepository) Create(ctx context.Context, company *logisticsDomain.TransportationCompany) error {
	querier := database.GetTx(ctx, p.db)

	query := `INSERT INTO transportation_companies (name, address, phone_number, created_at, updated_at)
			  VALUES ($1, $2, $3, $4, $5)
			  RETURNING id`

	err := querier.QueryRowContext(
		ctx,
		query,
		company.Name,
		company.Address,
		company.PhoneNumber,
		company.CreatedAt,
		company.UpdatedAt,
	).Scan(&company.ID)
	if err != nil {
		return apperrors.Wrap(err, "failed to create transportation company")
	}

	return nil
}

// Update modifies a non-deleted transportation company.
func (p *PostgreSQLCompanyRepository) Update(ctx context.Context, company *logisticsDomain.TransportationCompany) error {
	querier := database.GetTx(ctx, p.db)

	query := `UPDATE transportation_companies
			  SET name = $1, address = $2, phone_number = $3, updated_at = $4
			  WHERE id = $5 AND deleted_at IS NULL`

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
func (p *PostgreSQLCompanyRepository) SoftDelete(ctx context.Context, id int64) error {
	querier := database.GetTx(ctx, p.db)

	query := `UPDATE transportation_companies SET deleted_at = $1, updated_at = $1 WHERE id = $2 AND deleted_at IS NULL`

	result, err := querier.ExecContext(ctx, query, time.Now().UTC(), id)
	if err != nil {
		return apperrors.Wrap(err, "failed to delete transportation company")
	}

	return requireRowAffected(result, logisticsDomain.ErrCompanyNotFound)
}

// Restore clears the deletion flag of a soft-deleted transportation company.
func (p *PostgreSQLCompanyRepository) Restore(ctx context.Context, id int64) error {
	querier := database.GetTx(ctx, p.db)

	query := `UPDATE transportation_companies SET deleted_at = NULL, updated_at = $1 WHERE id = $2 AND deleted_at IS NOT NULL`

	result, err := querier.ExecContext(ctx, query, time.Now().UTC(), id)
	if err != nil {
		return apperrors.Wrap(err, "failed to restore transportation company")
	}

	return requireRowAffected(result, logisticsDomain.ErrCompanyNotFound)
}

// NewPostgreSQLCompanyRepository creates a new PostgreSQL transportation
// company repository instance.
func NewPostgreSQLCompanyRepository(db *sql.DB) *PostgreSQLCompanyRepository {
	return &PostgreSQLCompanyRepository{db: db}
}
