package usecase

import (
	"context"
	"time"

	authDomain "github.com/cargoconnect/api/internal/auth/domain"
	"github.com/cargoconnect/api/internal/authz"
	logisticsDomain "github.com/cargoconnect/api/internal/logistics/domain"
)

type companyUseCase struct {
	authorizer  Authorizer
	lookup      authz.OwnerLookup
	companyRepo CompanyRepository
}

func (c *companyUseCase) List(ctx context.Context, principal *authDomain.Principal) ([]*logisticsDomain.TransportationCompany, error) {
	if _, err := c.authorizer.Authorize(principal, authz.ResourceCompanies, authz.OpList); err != nil {
		return nil, err
	}
	return c.companyRepo.List(ctx)
}

func (c *companyUseCase) ListDeleted(ctx context.Context, principal *authDomain.Principal) ([]*logisticsDomain.TransportationCompany, error) {
	if _, err := c.authorizer.Authorize(principal, authz.ResourceCompanies, authz.OpListDeleted); err != nil {
		return nil, err
	}
	return c.companyRepo.ListDeleted(ctx)
}

func (c *companyUseCase) Get(ctx context.Context, principal *authDomain.Principal, id int64) (*logisticsDomain.TransportationCompany, error) {
	if err := c.authorizer.AuthorizeResource(ctx, principal, authz.ResourceCompanies, authz.OpRead, id, c.lookup); err != nil {
		return nil, err
	}
	return c.companyRepo.Get(ctx, id)
}

func (c *companyUseCase) Create(ctx context.Context, principal *authDomain.Principal, company *logisticsDomain.TransportationCompany) error {
	if _, err := c.authorizer.Authorize(principal, authz.ResourceCompanies, authz.OpCreate); err != nil {
		return err
	}

	now := time.Now().UTC()
	company.CreatedAt = now
	company.UpdatedAt = now
	return c.companyRepo.Create(ctx, company)
}

func (c *companyUseCase) Update(ctx context.Context, principal *authDomain.Principal, company *logisticsDomain.TransportationCompany) error {
	if err := c.authorizer.AuthorizeResource(ctx, principal, authz.ResourceCompanies, authz.OpUpdate, company.ID, c.lookup); err != nil {
		return err
	}
	return c.companyRepo.Update(ctx, company)
}

func (c *companyUseCase) Delete(ctx context.Context, principal *authDomain.Principal, id int64) error {
	if err := c.authorizer.AuthorizeResource(ctx, principal, authz.ResourceCompanies, authz.OpDelete, id, c.lookup); err != nil {
		return err
	}
	return c.companyRepo.SoftDelete(ctx, id)
}

func (c *companyUseCase) Restore(ctx context.Context, principal *authDomain.Principal, id int64) error {
	if _, err := c.authorizer.Authorize(principal, authz.ResourceCompanies, authz.OpRestore); err != nil {
		return err
	}
	return c.companyRepo.Restore(ctx, id)
}

// NewCompanyUseCase creates a new transportation company use case instance.
func NewCompanyUseCase(authorizer Authorizer, lookup authz.OwnerLookup, companyRepo CompanyRepository) CompanyUseCase {
	return &companyUseCase{authorizer: authorizer, lookup: lookup, companyRepo: companyRepo}
}
