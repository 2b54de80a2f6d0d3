package usecase

import (
	"context"
	"time"

	authDomain "github.com/cargoconnect/api/internal/auth/domain"
	"github.com/cargoconnect/api/internal/authz"
	logisticsDomain "github.com/cargoconnect/api/internal/logistics/domain"
)

type transportationUseCase struct {
	authorizer         Authorizer
	lookup             authz.OwnerLookup
	transportationRepo TransportationRepository
	cargoRepo          CargoRepository
	vehicleRepo        VehicleRepository
	companyRepo        CompanyRepository
}

func (t *transportationUseCase) List(ctx context.Context, principal *authDomain.Principal) ([]*logisticsDomain.Transportation, error) {
	decision, err := t.authorizer.Authorize(principal, authz.ResourceTransportations, authz.OpList)
	if err != nil {
		return nil, err
	}
	return t.transportationRepo.List(ctx, decision.Filter)
}

func (t *transportationUseCase) ListDeleted(ctx context.Context, principal *authDomain.Principal) ([]*logisticsDomain.Transportation, error) {
	if _, err := t.authorizer.Authorize(principal, authz.ResourceTransportations, authz.OpListDeleted); err != nil {
		return nil, err
	}
	return t.transportationRepo.ListDeleted(ctx)
}

func (t *transportationUseCase) Get(ctx context.Context, principal *authDomain.Principal, id int64) (*logisticsDomain.Transportation, error) {
	if err := t.authorizer.AuthorizeResource(ctx, principal, authz.ResourceTransportations, authz.OpRead, id, t.lookup); err != nil {
		return nil, err
	}
	return t.transportationRepo.Get(ctx, id)
}

func (t *transportationUseCase) Create(ctx context.Context, principal *authDomain.Principal, transportation *logisticsDomain.Transportation) error {
	if _, err := t.authorizer.Authorize(principal, authz.ResourceTransportations, authz.OpCreate); err != nil {
		return err
	}
	if err := t.checkReferences(ctx, transportation); err != nil {
		return err
	}

	now := time.Now().UTC()
	transportation.CreatedAt = now
	transportation.UpdatedAt = now
	return t.transportationRepo.Create(ctx, transportation)
}

func (t *transportationUseCase) Update(ctx context.Context, principal *authDomain.Principal, transportation *logisticsDomain.Transportation) error {
	if err := t.authorizer.AuthorizeResource(ctx, principal, authz.ResourceTransportations, authz.OpUpdate, transportation.ID, t.lookup); err != nil {
		return err
	}
	if err := t.checkReferences(ctx, transportation); err != nil {
		return err
	}
	return t.transportationRepo.Update(ctx, transportation)
}

func (t *transportationUseCase) Delete(ctx context.Context, principal *authDomain.Principal, id int64) error {
	if err := t.authorizer.AuthorizeResource(ctx, principal, authz.ResourceTransportations, authz.OpDelete, id, t.lookup); err != nil {
		return err
	}
	return t.transportationRepo.SoftDelete(ctx, id)
}

func (t *transportationUseCase) Restore(ctx context.Context, principal *authDomain.Principal, id int64) error {
	if _, err := t.authorizer.Authorize(principal, authz.ResourceTransportations, authz.OpRestore); err != nil {
		return err
	}
	return t.transportationRepo.Restore(ctx, id)
}

// LinkCompany associates a company with a transportation under the
// transportation update grant.
func (t *transportationUseCase) LinkCompany(ctx context.Context, principal *authDomain.Principal, transportationID, companyID int64) error {
	if err := t.authorizer.AuthorizeResource(ctx, principal, authz.ResourceTransportations, authz.OpUpdate, transportationID, t.lookup); err != nil {
		return err
	}
	if _, err := t.transportationRepo.Get(ctx, transportationID); err != nil {
		return err
	}
	if _, err := t.companyRepo.Get(ctx, companyID); err != nil {
		return invalidReference(err, "company does not exist")
	}
	return t.transportationRepo.LinkCompany(ctx, transportationID, companyID)
}

// UnlinkCompany removes a company association under the same grant.
func (t *transportationUseCase) UnlinkCompany(ctx context.Context, principal *authDomain.Principal, transportationID, companyID int64) error {
	if err := t.authorizer.AuthorizeResource(ctx, principal, authz.ResourceTransportations, authz.OpUpdate, transportationID, t.lookup); err != nil {
		return err
	}
	if _, err := t.transportationRepo.Get(ctx, transportationID); err != nil {
		return err
	}
	return t.transportationRepo.UnlinkCompany(ctx, transportationID, companyID)
}

func (t *transportationUseCase) checkReferences(ctx context.Context, transportation *logisticsDomain.Transportation) error {
	if _, err := t.cargoRepo.Get(ctx, transportation.CargoID); err != nil {
		return invalidReference(err, "cargo does not exist")
	}
	if _, err := t.vehicleRepo.Get(ctx, transportation.VehicleID); err != nil {
		return invalidReference(err, "vehicle does not exist")
	}
	return nil
}

// NewTransportationUseCase creates a new transportation use case instance.
func NewTransportationUseCase(
	authorizer Authorizer,
	lookup authz.OwnerLookup,
	transportationRepo TransportationRepository,
	cargoRepo CargoRepository,
	vehicleRepo VehicleRepository,
	companyRepo CompanyRepository,
) TransportationUseCase {
	return &transportationUseCase{
		authorizer:         authorizer,
		lookup:             lookup,
		transportationRepo: transportationRepo,
		cargoRepo:          cargoRepo,
		vehicleRepo:        vehicleRepo,
		companyRepo:        companyRepo,
	}
}
