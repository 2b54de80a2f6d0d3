package domain

import (
	"github.com/cargoconnect/api/internal/errors"
)

// Logistics errors.
var (
	// ErrClientNotFound indicates the client does not exist or is deleted.
	ErrClientNotFound = errors.Wrap(errors.ErrNotFound, "client not found")

	// ErrDriverNotFound indicates the driver does not exist or is deleted.
	ErrDriverNotFound = errors.Wrap(errors.ErrNotFound, "driver not found")

	// ErrVehicleNotFound indicates the vehicle does not exist or is deleted.
	ErrVehicleNotFound = errors.Wrap(errors.ErrNotFound, "vehicle not found")

	// ErrCargoNotFound indicates the cargo does not exist or is deleted.
	ErrCargoNotFound = errors.Wrap(errors.ErrNotFound, "cargo not found")

	// ErrOrderNotFound indicates the order does not exist or is deleted.
	ErrOrderNotFound = errors.Wrap(errors.ErrNotFound, "order not found")

	// ErrTransportationNotFound indicates the transportation does not exist
	// or is deleted.
	ErrTransportationNotFound = errors.Wrap(errors.ErrNotFound, "transportation not found")

	// ErrCompanyNotFound indicates the company does not exist or is deleted.
	ErrCompanyNotFound = errors.Wrap(errors.ErrNotFound, "transportation company not found")

	// ErrLinkExists indicates the association already exists.
	ErrLinkExists = errors.Wrap(errors.ErrConflict, "association already exists")

	// ErrLinkNotFound indicates the association does not exist.
	ErrLinkNotFound = errors.Wrap(errors.ErrNotFound, "association not found")

	// ErrInvalidReference indicates a create or link operation referenced a
	// missing target.
	ErrInvalidReference = errors.Wrap(errors.ErrInvalidInput, "referenced resource does not exist")
)
