// Package usecase implements the logistics business logic. Every
// operation consults the authorization engine before touching a
// repository and applies the returned ownership filter.
package usecase

import (
	"context"

	authDomain "github.com/cargoconnect/api/internal/auth/domain"
	"github.com/cargoconnect/api/internal/authz"
	logisticsDomain "github.com/cargoconnect/api/internal/logistics/domain"
)

// Authorizer evaluates access decisions. Satisfied by *authz.Engine.
type Authorizer interface {
	Authorize(principal *authDomain.Principal, resource authz.Resource, op authz.Operation) (*authz.Decision, error)
	AuthorizeResource(ctx context.Context, principal *authDomain.Principal, resource authz.Resource, op authz.Operation, id int64, lookup authz.OwnerLookup) error
}

// ClientRepository defines the interface for client data access.
type ClientRepository interface {
	List(ctx context.Context) ([]*logisticsDomain.Client, error)
	ListDeleted(ctx context.Context) ([]*logisticsDomain.Client, error)
	Get(ctx context.Context, id int64) (*logisticsDomain.Client, error)
	Create(ctx context.Context, client *logisticsDomain.Client) error
	Update(ctx context.Context, client *logisticsDomain.Client) error
	SoftDelete(ctx context.Context, id int64) error
	Restore(ctx context.Context, id int64) error
}

// DriverRepository defines the interface for driver data access.
type DriverRepository interface {
	List(ctx context.Context) ([]*logisticsDomain.Driver, error)
	ListDeleted(ctx context.Context) ([]*logisticsDomain.Driver, error)
	Get(ctx context.Context, id int64) (*logisticsDomain.Driver, error)
	Create(ctx context.Context, driver *logisticsDomain.Driver) error
	Update(ctx context.Context, driver *logisticsDomain.Driver) error
	SoftDelete(ctx context.Context, id int64) error
	Restore(ctx context.Context, id int64) error
}

// VehicleRepository defines the interface for vehicle data access.
type VehicleRepository interface {
	List(ctx context.Context, filter *authz.OwnershipFilter) ([]*logisticsDomain.Vehicle, error)
	ListDeleted(ctx context.Context) ([]*logisticsDomain.Vehicle, error)
	Get(ctx context.Context, id int64) (*logisticsDomain.Vehicle, error)
	Create(ctx context.Context, vehicle *logisticsDomain.Vehicle) error
	Update(ctx context.Context, vehicle *logisticsDomain.Vehicle) error
	SoftDelete(ctx context.Context, id int64) error
	Restore(ctx context.Context, id int64) error
}

// CargoRepository defines the interface for cargo data access.
type CargoRepository interface {
	List(ctx context.Context, filter *authz.OwnershipFilter) ([]*logisticsDomain.Cargo, error)
	ListDeleted(ctx context.Context) ([]*logisticsDomain.Cargo, error)
	Get(ctx context.Context, id int64) (*logisticsDomain.Cargo, error)
	Create(ctx context.Context, cargo *logisticsDomain.Cargo) error
	Update(ctx context.Context, cargo *logisticsDomain.Cargo) error
	SoftDelete(ctx context.Context, id int64) error
	Restore(ctx context.Context, id int64) error
}

// OrderRepository defines the interface for order data access.
type OrderRepository interface {
	List(ctx context.Context, filter *authz.OwnershipFilter) ([]*logisticsDomain.Order, error)
	ListDeleted(ctx context.Context) ([]*logisticsDomain.Order, error)
	Get(ctx context.Context, id int64) (*logisticsDomain.Order, error)
	Create(ctx context.Context, order *logisticsDomain.Order) error
	Update(ctx context.Context, order *logisticsDomain.Order) error
	SoftDelete(ctx context.Context, id int64) error
	Restore(ctx context.Context, id int64) error
	AttachCargo(ctx context.Context, orderID, cargoID int64) error
	DetachCargo(ctx context.Context, orderID, cargoID int64) error
}

// TransportationRepository defines the interface for transportation data access.
type TransportationRepository interface {
	List(ctx context.Context, filter *authz.OwnershipFilter) ([]*logisticsDomain.Transportation, error)
	ListDeleted(ctx context.Context) ([]*logisticsDomain.Transportation, error)
	Get(ctx context.Context, id int64) (*logisticsDomain.Transportation, error)
	Create(ctx context.Context, transportation *logisticsDomain.Transportation) error
	Update(ctx context.Context, transportation *logisticsDomain.Transportation) error
	SoftDelete(ctx context.Context, id int64) error
	Restore(ctx context.Context, id int64) error
	LinkCompany(ctx context.Context, transportationID, companyID int64) error
	UnlinkCompany(ctx context.Context, transportationID, companyID int64) error
}

// CompanyRepository defines the interface for transportation company data access.
type CompanyRepository interface {
	List(ctx context.Context) ([]*logisticsDomain.TransportationCompany, error)
	ListDeleted(ctx context.Context) ([]*logisticsDomain.TransportationCompany, error)
	Get(ctx context.Context, id int64) (*logisticsDomain.TransportationCompany, error)
	Create(ctx context.Context, company *logisticsDomain.TransportationCompany) error
	Update(ctx context.Context, company *logisticsDomain.TransportationCompany) error
	SoftDelete(ctx context.Context, id int64) error
	Restore(ctx context.Context, id int64) error
}

// ClientUseCase defines the interface for client business logic.
type ClientUseCase interface {
	List(ctx context.Context, principal *authDomain.Principal) ([]*logisticsDomain.Client, error)
	ListDeleted(ctx context.Context, principal *authDomain.Principal) ([]*logisticsDomain.Client, error)
	Get(ctx context.Context, principal *authDomain.Principal, id int64) (*logisticsDomain.Client, error)
	Create(ctx context.Context, principal *authDomain.Principal, client *logisticsDomain.Client) error
	Update(ctx context.Context, principal *authDomain.Principal, client *logisticsDomain.Client) error
	Delete(ctx context.Context, principal *authDomain.Principal, id int64) error
	Restore(ctx context.Context, principal *authDomain.Principal, id int64) error
}

// DriverUseCase defines the interface for driver business logic.
type DriverUseCase interface {
	List(ctx context.Context, principal *authDomain.Principal) ([]*logisticsDomain.Driver, error)
	ListDeleted(ctx context.Context, principal *authDomain.Principal) ([]*logisticsDomain.Driver, error)
	Get(ctx context.Context, principal *authDomain.Principal, id int64) (*logisticsDomain.Driver, error)
	Create(ctx context.Context, principal *authDomain.Principal, driver *logisticsDomain.Driver) error
	Update(ctx context.Context, principal *authDomain.Principal, driver *logisticsDomain.Driver) error
	Delete(ctx context.Context, principal *authDomain.Principal, id int64) error
	Restore(ctx context.Context, principal *authDomain.Principal, id int64) error
}

// VehicleUseCase defines the interface for vehicle business logic.
type VehicleUseCase interface {
	List(ctx context.Context, principal *authDomain.Principal) ([]*logisticsDomain.Vehicle, error)
	ListDeleted(ctx context.Context, principal *authDomain.Principal) ([]*logisticsDomain.Vehicle, error)
	Get(ctx context.Context, principal *authDomain.Principal, id int64) (*logisticsDomain.Vehicle, error)
	Create(ctx context.Context, principal *authDomain.Principal, vehicle *logisticsDomain.Vehicle) error
	Update(ctx context.Context, principal *authDomain.Principal, vehicle *logisticsDomain.Vehicle) error
	Delete(ctx context.Context, principal *authDomain.Principal, id int64) error
	Restore(ctx context.Context, principal *authDomain.Principal, id int64) error
}

// CargoUseCase defines the interface for cargo business logic.
type CargoUseCase interface {
	List(ctx context.Context, principal *authDomain.Principal) ([]*logisticsDomain.Cargo, error)
	ListDeleted(ctx context.Context, principal *authDomain.Principal) ([]*logisticsDomain.Cargo, error)
	Get(ctx context.Context, principal *authDomain.Principal, id int64) (*logisticsDomain.Cargo, error)
	Create(ctx context.Context, principal *authDomain.Principal, cargo *logisticsDomain.Cargo) error
	Update(ctx context.Context, principal *authDomain.Principal, cargo *logisticsDomain.Cargo) error
	Delete(ctx context.Context, principal *authDomain.Principal, id int64) error
	Restore(ctx context.Context, principal *authDomain.Principal, id int64) error
}

// OrderUseCase defines the interface for order business logic.
type OrderUseCase interface {
	List(ctx context.Context, principal *authDomain.Principal) ([]*logisticsDomain.Order, error)
	ListDeleted(ctx context.Context, principal *authDomain.Principal) ([]*logisticsDomain.Order, error)
	Get(ctx context.Context, principal *authDomain.Principal, id int64) (*logisticsDomain.Order, error)
	Create(ctx context.Context, principal *authDomain.Principal, order *logisticsDomain.Order) error
	Update(ctx context.Context, principal *authDomain.Principal, order *logisticsDomain.Order) error
	Delete(ctx context.Context, principal *authDomain.Principal, id int64) error
	Restore(ctx context.Context, principal *authDomain.Principal, id int64) error
	AttachCargo(ctx context.Context, principal *authDomain.Principal, orderID, cargoID int64) error
	DetachCargo(ctx context.Context, principal *authDomain.Principal, orderID, cargoID int64) error
}

// TransportationUseCase defines the interface for transportation business logic.
type TransportationUseCase interface {
	List(ctx context.Context, principal *authDomain.Principal) ([]*logisticsDomain.Transportation, error)
	ListDeleted(ctx context.Context, principal *authDomain.Principal) ([]*logisticsDomain.Transportation, error)
	Get(ctx context.Context, principal *authDomain.Principal, id int64) (*logisticsDomain.Transportation, error)
	Create(ctx context.Context, principal *authDomain.Principal, transportation *logisticsDomain.Transportation) error
	Update(ctx context.Context, principal *authDomain.Principal, transportation *logisticsDomain.Transportation) error
	Delete(ctx context.Context, principal *authDomain.Principal, id int64) error
	Restore(ctx context.Context, principal *authDomain.Principal, id int64) error
	LinkCompany(ctx context.Context, principal *authDomain.Principal, transportationID, companyID int64) error
	UnlinkCompany(ctx context.Context, principal *authDomain.Principal, transportationID, companyID int64) error
}

// CompanyUseCase defines the interface for transportation company business logic.
type CompanyUseCase interface {
	List(ctx context.Context, principal *authDomain.Principal) ([]*logisticsDomain.TransportationCompany, error)
	ListDeleted(ctx context.Context, principal *authDomain.Principal) ([]*logisticsDomain.TransportationCompany, error)
	Get(ctx context.Context, principal *authDomain.Principal, id int64) (*logisticsDomain.TransportationCompany, error)
	Create(ctx context.Context, principal *authDomain.Principal, company *logisticsDomain.TransportationCompany) error
	Update(ctx context.Context, principal *authDomain.Principal, company *logisticsDomain.TransportationCompany) error
	Delete(ctx context.Context, principal *authDomain.Principal, id int64) error
	Restore(ctx context.Context, principal *authDomain.Principal, id int64) error
}
