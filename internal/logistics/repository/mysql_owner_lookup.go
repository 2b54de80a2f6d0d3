package repository

import (
	"context"
	"database/sql"

	"github.com/cargoconnect/api/internal/authz"
	"github.com/cargoconnect/api/internal/database"
	apperrors "github.com/cargoconnect/api/internal/errors"
	logisticsDomain "github.com/cargoconnect/api/internal/logistics/domain"
)

// MySQLOwnerLookup resolves the owning client and driver IDs of a resource
// for ownership-scoped authorization decisions. It also serves as the
// account directory used to validate client and driver links.
type MySQLOwnerLookup struct {
	db *sql.DB
}

// ResolveOwner returns the owner set of a non-deleted resource. A missing
// resource yields the matching not-found error; a resource that exists but
// has no reachable owner yields an empty owner set.
func (m *MySQLOwnerLookup) ResolveOwner(ctx context.Context, resource authz.Resource, id int64) (*authz.Owner, error) {
	querier := database.GetTx(ctx, m.db)

	switch resource {
	case authz.ResourceClients:
		var clientID int64
		err := querier.QueryRowContext(ctx, `SELECT id FROM clients WHERE id = ? AND deleted_at IS NULL`, id).Scan(&clientID)
		if err != nil {
			if err == sql.ErrNoRows {
				return nil, logisticsDomain.ErrClientNotFound
			}
			return nil, apperrors.Wrap(err, "failed to resolve client owner")
		}
		return &authz.Owner{ClientIDs: []int64{clientID}}, nil

	case authz.ResourceDrivers:
		var driverID int64
		err := querier.QueryRowContext(ctx, `SELECT id FROM drivers WHERE id = ? AND deleted_at IS NULL`, id).Scan(&driverID)
		if err != nil {
			if err == sql.ErrNoRows {
				return nil, logisticsDomain.ErrDriverNotFound
			}
			return nil, apperrors.Wrap(err, "failed to resolve driver owner")
		}
		return &authz.Owner{DriverIDs: []int64{driverID}}, nil

	case authz.ResourceVehicles:
		var driverID int64
		err := querier.QueryRowContext(ctx, `SELECT driver_id FROM vehicles WHERE id = ? AND deleted_at IS NULL`, id).Scan(&driverID)
		if err != nil {
			if err == sql.ErrNoRows {
				return nil, logisticsDomain.ErrVehicleNotFound
			}
			return nil, apperrors.Wrap(err, "failed to resolve vehicle owner")
		}
		return &authz.Owner{DriverIDs: []int64{driverID}}, nil

	case authz.ResourceOrders:
		var clientID *int64
		err := querier.QueryRowContext(ctx, `SELECT client_id FROM orders WHERE id = ? AND deleted_at IS NULL`, id).Scan(&clientID)
		if err != nil {
			if err == sql.ErrNoRows {
				return nil, logisticsDomain.ErrOrderNotFound
			}
			return nil, apperrors.Wrap(err, "failed to resolve order owner")
		}
		owner := &authz.Owner{}
		if clientID != nil {
			owner.ClientIDs = []int64{*clientID}
		}
		return owner, nil

	case authz.ResourceCargos:
		var cargoID int64
		err := querier.QueryRowContext(ctx, `SELECT id FROM cargos WHERE id = ? AND deleted_at IS NULL`, id).Scan(&cargoID)
		if err != nil {
			if err == sql.ErrNoRows {
				return nil, logisticsDomain.ErrCargoNotFound
			}
			return nil, apperrors.Wrap(err, "failed to resolve cargo owner")
		}

		query := `SELECT DISTINCT o.client_id
				  FROM cargo_orders co
				  JOIN orders o ON o.id = co.order_id
				  WHERE co.cargo_id = ? AND o.deleted_at IS NULL AND o.client_id IS NOT NULL`
		rows, err := querier.QueryContext(ctx, query, id)
		if err != nil {
			return nil, apperrors.Wrap(err, "failed to resolve cargo owner")
		}
		defer rows.Close()

		owner := &authz.Owner{}
		for rows.Next() {
			var ownerClientID int64
			if err := rows.Scan(&ownerClientID); err != nil {
				return nil, apperrors.Wrap(err, "failed to scan cargo owner")
			}
			owner.ClientIDs = append(owner.ClientIDs, ownerClientID)
		}
		if err := rows.Err(); err != nil {
			return nil, apperrors.Wrap(err, "failed to iterate cargo owners")
		}
		return owner, nil

	case authz.ResourceTransportations:
		var vehicleID int64
		err := querier.QueryRowContext(ctx, `SELECT vehicle_id FROM transportations WHERE id = ? AND deleted_at IS NULL`, id).Scan(&vehicleID)
		if err != nil {
			if err == sql.ErrNoRows {
				return nil, logisticsDomain.ErrTransportationNotFound
			}
			return nil, apperrors.Wrap(err, "failed to resolve transportation owner")
		}

		var driverID int64
		err = querier.QueryRowContext(ctx, `SELECT driver_id FROM vehicles WHERE id = ? AND deleted_at IS NULL`, vehicleID).Scan(&driverID)
		if err != nil {
			if err == sql.ErrNoRows {
				// Vehicle removed; the haul exists but nobody owns it.
				return &authz.Owner{}, nil
			}
			return nil, apperrors.Wrap(err, "failed to resolve transportation owner")
		}
		return &authz.Owner{DriverIDs: []int64{driverID}}, nil

	case authz.ResourceCompanies:
		var companyID int64
		err := querier.QueryRowContext(ctx, `SELECT id FROM transportation_companies WHERE id = ? AND deleted_at IS NULL`, id).Scan(&companyID)
		if err != nil {
			if err == sql.ErrNoRows {
				return nil, logisticsDomain.ErrCompanyNotFound
			}
			return nil, apperrors.Wrap(err, "failed to resolve transportation company owner")
		}
		return &authz.Owner{}, nil

	default:
		return nil, apperrors.Wrapf(apperrors.ErrInvalidInput, "unknown resource %q", resource)
	}
}

// ClientName returns the display name of a non-deleted client.
func (m *MySQLOwnerLookup) ClientName(ctx context.Context, clientID int64) (string, error) {
	querier := database.GetTx(ctx, m.db)

	var name string
	err := querier.QueryRowContext(ctx, `SELECT name FROM clients WHERE id = ? AND deleted_at IS NULL`, clientID).Scan(&name)
	if err != nil {
		if err == sql.ErrNoRows {
			return "", logisticsDomain.ErrClientNotFound
		}
		return "", apperrors.Wrap(err, "failed to get client name")
	}
	return name, nil
}

// DriverLastName returns the last name of a non-deleted driver.
func (m *MySQLOwnerLookup) DriverLastName(ctx context.Context, driverID int64) (string, error) {
	querier := database.GetTx(ctx, m.db)

	var lastName string
	err := querier.QueryRowContext(ctx, `SELECT last_name FROM drivers WHERE id = ? AND deleted_at IS NULL`, driverID).Scan(&lastName)
	if err != nil {
		if err == sql.ErrNoRows {
			return "", logisticsDomain.ErrDriverNotFound
		}
		return "", apperrors.Wrap(err, "failed to get driver last name")
	}
	return lastName, nil
}

// NewMySQLOwnerLookup creates a new MySQL owner lookup instance.
func NewMySQLOwnerLookup(db *sql.DB) *MySQLOwnerLookup {
	return &MySQLOwnerLookup{db: db}
}
