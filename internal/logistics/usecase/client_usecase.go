package usecase

import (
	"context"
	"time"

	authDomain "github.com/cargoconnect/api/internal/auth/domain"
	"github.com/cargoconnect/api/internal/authz"
	apperrors "github.com/cargoconnect/api/internal/errors"
	logisticsDomain "github.com/cargoconnect/api/internal/logistics/domain"
)

type clientUseCase struct {
	authorizer Authorizer
	lookup     authz.OwnerLookup
	clientRepo ClientRepository
}

func (c *clientUseCase) List(ctx context.Context, principal *authDomain.Principal) ([]*logisticsDomain.Client, error) {
	if _, err := c.authorizer.Authorize(principal, authz.ResourceClients, authz.OpList); err != nil {
		return nil, err
	}
	return c.clientRepo.List(ctx)
}

func (c *clientUseCase) ListDeleted(ctx context.Context, principal *authDomain.Principal) ([]*logisticsDomain.Client, error) {
	if _, err := c.authorizer.Authorize(principal, authz.ResourceClients, authz.OpListDeleted); err != nil {
		return nil, err
	}
	return c.clientRepo.ListDeleted(ctx)
}

func (c *clientUseCase) Get(ctx context.Context, principal *authDomain.Principal, id int64) (*logisticsDomain.Client, error) {
	if err := c.authorizer.AuthorizeResource(ctx, principal, authz.ResourceClients, authz.OpRead, id, c.lookup); err != nil {
		return nil, err
	}
	return c.clientRepo.Get(ctx, id)
}

func (c *clientUseCase) Create(ctx context.Context, principal *authDomain.Principal, client *logisticsDomain.Client) error {
	if _, err := c.authorizer.Authorize(principal, authz.ResourceClients, authz.OpCreate); err != nil {
		return err
	}

	now := time.Now().UTC()
	client.CreatedAt = now
	client.UpdatedAt = now
	return c.clientRepo.Create(ctx, client)
}

func (c *clientUseCase) Update(ctx context.Context, principal *authDomain.Principal, client *logisticsDomain.Client) error {
	if err := c.authorizer.AuthorizeResource(ctx, principal, authz.ResourceClients, authz.OpUpdate, client.ID, c.lookup); err != nil {
		return err
	}
	return c.clientRepo.Update(ctx, client)
}

func (c *clientUseCase) Delete(ctx context.Context, principal *authDomain.Principal, id int64) error {
	if err := c.authorizer.AuthorizeResource(ctx, principal, authz.ResourceClients, authz.OpDelete, id, c.lookup); err != nil {
		return err
	}
	return c.clientRepo.SoftDelete(ctx, id)
}

func (c *clientUseCase) Restore(ctx context.Context, principal *authDomain.Principal, id int64) error {
	// Restore works on rows hidden from the lookup, so the decision is
	// made on the type grant alone. The grant is never ownership scoped.
	if _, err := c.authorizer.Authorize(principal, authz.ResourceClients, authz.OpRestore); err != nil {
		return err
	}
	return c.clientRepo.Restore(ctx, id)
}

// NewClientUseCase creates a new client use case instance.
func NewClientUseCase(authorizer Authorizer, lookup authz.OwnerLookup, clientRepo ClientRepository) ClientUseCase {
	return &clientUseCase{authorizer: authorizer, lookup: lookup, clientRepo: clientRepo}
}

// invalidReference converts a not-found error from a reference check into
// an invalid-input error so a bad foreign key surfaces as 422, not 404.
func invalidReference(err error, what string) error {
	if apperrors.Is(err, apperrors.ErrNotFound) {
		return apperrors.Wrapf(logisticsDomain.ErrInvalidReference, "%s", what)
	}
	return err
}
