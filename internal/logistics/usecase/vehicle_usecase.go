package usecase

import (
	"context"
	"time"

	authDomain "github.com/cargoconnect/api/internal/auth/domain"
	"github.com/cargoconnect/api/internal/authz"
	logisticsDomain "github.com/cargoconnect/api/internal/logistics/domain"
)

type vehicleUseCase struct {
	authorizer  Authorizer
	lookup      authz.OwnerLookup
	vehicleRepo VehicleRepository
	companyRepo CompanyRepository
	driverRepo  DriverRepository
}

func (v *vehicleUseCase) List(ctx context.Context, principal *authDomain.Principal) ([]*logisticsDomain.Vehicle, error) {
	decision, err := v.authorizer.Authorize(principal, authz.ResourceVehicles, authz.OpList)
	if err != nil {
		return nil, err
	}
	return v.vehicleRepo.List(ctx, decision.Filter)
}

func (v *vehicleUseCase) ListDeleted(ctx context.Context, principal *authDomain.Principal) ([]*logisticsDomain.Vehicle, error) {
	if _, err := v.authorizer.Authorize(principal, authz.ResourceVehicles, authz.OpListDeleted); err != nil {
		return nil, err
	}
	return v.vehicleRepo.ListDeleted(ctx)
}

func (v *vehicleUseCase) Get(ctx context.Context, principal *authDomain.Principal, id int64) (*logisticsDomain.Vehicle, error) {
	if err := v.authorizer.AuthorizeResource(ctx, principal, authz.ResourceVehicles, authz.OpRead, id, v.lookup); err != nil {
		return nil, err
	}
	return v.vehicleRepo.Get(ctx, id)
}

func (v *vehicleUseCase) Create(ctx context.Context, principal *authDomain.Principal, vehicle *logisticsDomain.Vehicle) error {
	if _, err := v.authorizer.Authorize(principal, authz.ResourceVehicles, authz.OpCreate); err != nil {
		return err
	}
	if err := v.checkReferences(ctx, vehicle); err != nil {
		return err
	}

	now := time.Now().UTC()
	vehicle.CreatedAt = now
	vehicle.UpdatedAt = now
	return v.vehicleRepo.Create(ctx, vehicle)
}

func (v *vehicleUseCase) Update(ctx context.Context, principal *authDomain.Principal, vehicle *logisticsDomain.Vehicle) error {
	if err := v.authorizer.AuthorizeResource(ctx, principal, authz.ResourceVehicles, authz.OpUpdate, vehicle.ID, v.lookup); err != nil {
		return err
	}
	if err := v.checkReferences(ctx, vehicle); err != nil {
		return err
	}
	return v.vehicleRepo.Update(ctx, vehicle)
}

func (v *vehicleUseCase) Delete(ctx context.Context, principal *authDomain.Principal, id int64) error {
	if err := v.authorizer.AuthorizeResource(ctx, principal, authz.ResourceVehicles, authz.OpDelete, id, v.lookup); err != nil {
		return err
	}
	return v.vehicleRepo.SoftDelete(ctx, id)
}

func (v *vehicleUseCase) Restore(ctx context.Context, principal *authDomain.Principal, id int64) error {
	if _, err := v.authorizer.Authorize(principal, authz.ResourceVehicles, authz.OpRestore); err != nil {
		return err
	}
	return v.vehicleRepo.Restore(ctx, id)
}

func (v *vehicleUseCase) checkReferences(ctx context.Context, vehicle *logisticsDomain.Vehicle) error {
	if _, err := v.companyRepo.Get(ctx, vehicle.CompanyID); err != nil {
		return invalidReference(err, "company does not exist")
	}
	if _, err := v.driverRepo.Get(ctx, vehicle.DriverID); err != nil {
		return invalidReference(err, "driver does not exist")
	}
	return nil
}

// NewVehicleUseCase creates a new vehicle use case instance.
func NewVehicleUseCase(
	authorizer Authorizer,
	lookup authz.OwnerLookup,
	vehicleRepo VehicleRepository,
	companyRepo CompanyRepository,
	driverRepo DriverRepository,
) VehicleUseCase {
	return &vehicleUseCase{
		authorizer:  authorizer,
		lookup:      lookup,
		vehicleRepo: vehicleRepo,
		companyRepo: companyRepo,
		driverRepo:  driverRepo,
	}
}
