package usecase

import (
	"context"
	"time"

	authDomain "github.com/cargoconnect/api/internal/auth/domain"
	"github.com/cargoconnect/api/internal/authz"
	logisticsDomain "github.com/cargoconnect/api/internal/logistics/domain"
)

type cargoUseCase struct {
	authorizer Authorizer
	lookup     authz.OwnerLookup
	cargoRepo  CargoRepository
}

func (c *cargoUseCase) List(ctx context.Context, principal *authDomain.Principal) ([]*logisticsDomain.Cargo, error) {
	decision, err := c.authorizer.Authorize(principal, authz.ResourceCargos, authz.OpList)
	if err != nil {
		return nil, err
	}
	return c.cargoRepo.List(ctx, decision.Filter)
}

func (c *cargoUseCase) ListDeleted(ctx context.Context, principal *authDomain.Principal) ([]*logisticsDomain.Cargo, error) {
	if _, err := c.authorizer.Authorize(principal, authz.ResourceCargos, authz.OpListDeleted); err != nil {
		return nil, err
	}
	return c.cargoRepo.ListDeleted(ctx)
}

func (c *cargoUseCase) Get(ctx context.Context, principal *authDomain.Principal, id int64) (*logisticsDomain.Cargo, error) {
	if err := c.authorizer.AuthorizeResource(ctx, principal, authz.ResourceCargos, authz.OpRead, id, c.lookup); err != nil {
		return nil, err
	}
	return c.cargoRepo.Get(ctx, id)
}

func (c *cargoUseCase) Create(ctx context.Context, principal *authDomain.Principal, cargo *logisticsDomain.Cargo) error {
	if _, err := c.authorizer.Authorize(principal, authz.ResourceCargos, authz.OpCreate); err != nil {
		return err
	}

	now := time.Now().UTC()
	cargo.CreatedAt = now
	cargo.UpdatedAt = now
	return c.cargoRepo.Create(ctx, cargo)
}

func (c *cargoUseCase) Update(ctx context.Context, principal *authDomain.Principal, cargo *logisticsDomain.Cargo) error {
	if err := c.authorizer.AuthorizeResource(ctx, principal, authz.ResourceCargos, authz.OpUpdate, cargo.ID, c.lookup); err != nil {
		return err
	}
	return c.cargoRepo.Update(ctx, cargo)
}

func (c *cargoUseCase) Delete(ctx context.Context, principal *authDomain.Principal, id int64) error {
	if err := c.authorizer.AuthorizeResource(ctx, principal, authz.ResourceCargos, authz.OpDelete, id, c.lookup); err != nil {
		return err
	}
	return c.cargoRepo.SoftDelete(ctx, id)
}

func (c *cargoUseCase) Restore(ctx context.Context, principal *authDomain.Principal, id int64) error {
	if _, err := c.authorizer.Authorize(principal, authz.ResourceCargos, authz.OpRestore); err != nil {
		return err
	}
	return c.cargoRepo.Restore(ctx, id)
}

// NewCargoUseCase creates a new cargo use case instance.
func NewCargoUseCase(authorizer Authorizer, lookup authz.OwnerLookup, cargoRepo CargoRepository) CargoUseCase {
	return &cargoUseCase{authorizer: authorizer, lookup: lookup, cargoRepo: cargoRepo}
}
