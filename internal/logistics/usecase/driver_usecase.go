package usecase

import (
	"context"
	"time"

	authDomain "github.com/cargoconnect/api/internal/auth/domain"
	"github.com/cargoconnect/api/internal/authz"
	logisticsDomain "github.com/cargoconnect/api/internal/logistics/domain"
)

type driverUseCase struct {
	authorizer Authorizer
	lookup     authz.OwnerLookup
	driverRepo DriverRepository
}

func (d *driverUseCase) List(ctx context.Context, principal *authDomain.Principal) ([]*logisticsDomain.Driver, error) {
	if _, err := d.authorizer.Authorize(principal, authz.ResourceDrivers, authz.OpList); err != nil {
		return nil, err
	}
	return d.driverRepo.List(ctx)
}

func (d *driverUseCase) ListDeleted(ctx context.Context, principal *authDomain.Principal) ([]*logisticsDomain.Driver, error) {
	if _, err := d.authorizer.Authorize(principal, authz.ResourceDrivers, authz.OpListDeleted); err != nil {
		return nil, err
	}
	return d.driverRepo.ListDeleted(ctx)
}

func (d *driverUseCase) Get(ctx context.Context, principal *authDomain.Principal, id int64) (*logisticsDomain.Driver, error) {
	if err := d.authorizer.AuthorizeResource(ctx, principal, authz.ResourceDrivers, authz.OpRead, id, d.lookup); err != nil {
		return nil, err
	}
	return d.driverRepo.Get(ctx, id)
}

func (d *driverUseCase) Create(ctx context.Context, principal *authDomain.Principal, driver *logisticsDomain.Driver) error {
	if _, err := d.authorizer.Authorize(principal, authz.ResourceDrivers, authz.OpCreate); err != nil {
		return err
	}

	now := time.Now().UTC()
	driver.CreatedAt = now
	driver.UpdatedAt = now
	return d.driverRepo.Create(ctx, driver)
}

func (d *driverUseCase) Update(ctx context.Context, principal *authDomain.Principal, driver *logisticsDomain.Driver) error {
	if err := d.authorizer.AuthorizeResource(ctx, principal, authz.ResourceDrivers, authz.OpUpdate, driver.ID, d.lookup); err != nil {
		return err
	}
	return d.driverRepo.Update(ctx, driver)
}

func (d *driverUseCase) Delete(ctx context.Context, principal *authDomain.Principal, id int64) error {
	if err := d.authorizer.AuthorizeResource(ctx, principal, authz.ResourceDrivers, authz.OpDelete, id, d.lookup); err != nil {
		return err
	}
	return d.driverRepo.SoftDelete(ctx, id)
}

func (d *driverUseCase) Restore(ctx context.Context, principal *authDomain.Principal, id int64) error {
	if _, err := d.authorizer.Authorize(principal, authz.ResourceDrivers, authz.OpRestore); err != nil {
		return err
	}
	return d.driverRepo.Restore(ctx, id)
}

// NewDriverUseCase creates a new driver use case instance.
func NewDriverUseCase(authorizer Authorizer, lookup authz.OwnerLookup, driverRepo DriverRepository) DriverUseCase {
	return &driverUseCase{authorizer: authorizer, lookup: lookup, driverRepo: driverRepo}
}
