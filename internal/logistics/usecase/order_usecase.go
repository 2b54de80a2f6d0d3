package usecase

import (
	"context"
	"time"

	authDomain "github.com/cargoconnect/api/internal/auth/domain"
	"github.com/cargoconnect/api/internal/authz"
	logisticsDomain "github.com/cargoconnect/api/internal/logistics/domain"
)

type orderUseCase struct {
	authorizer         Authorizer
	lookup             authz.OwnerLookup
	orderRepo          OrderRepository
	cargoRepo          CargoRepository
	clientRepo         ClientRepository
	transportationRepo TransportationRepository
}

func (o *orderUseCase) List(ctx context.Context, principal *authDomain.Principal) ([]*logisticsDomain.Order, error) {
	decision, err := o.authorizer.Authorize(principal, authz.ResourceOrders, authz.OpList)
	if err != nil {
		return nil, err
	}
	return o.orderRepo.List(ctx, decision.Filter)
}

func (o *orderUseCase) ListDeleted(ctx context.Context, principal *authDomain.Principal) ([]*logisticsDomain.Order, error) {
	if _, err := o.authorizer.Authorize(principal, authz.ResourceOrders, authz.OpListDeleted); err != nil {
		return nil, err
	}
	return o.orderRepo.ListDeleted(ctx)
}

func (o *orderUseCase) Get(ctx context.Context, principal *authDomain.Principal, id int64) (*logisticsDomain.Order, error) {
	if err := o.authorizer.AuthorizeResource(ctx, principal, authz.ResourceOrders, authz.OpRead, id, o.lookup); err != nil {
		return nil, err
	}
	return o.orderRepo.Get(ctx, id)
}

// Create inserts a new order. A caller under an ownership filter always
// creates for their own client, whatever client the payload names.
func (o *orderUseCase) Create(ctx context.Context, principal *authDomain.Principal, order *logisticsDomain.Order) error {
	decision, err := o.authorizer.Authorize(principal, authz.ResourceOrders, authz.OpCreate)
	if err != nil {
		return err
	}
	if decision.Filter != nil {
		order.ClientID = decision.Filter.ClientID
	}
	if err := o.checkReferences(ctx, order); err != nil {
		return err
	}

	now := time.Now().UTC()
	order.CreatedAt = now
	order.UpdatedAt = now
	return o.orderRepo.Create(ctx, order)
}

func (o *orderUseCase) Update(ctx context.Context, principal *authDomain.Principal, order *logisticsDomain.Order) error {
	if err := o.authorizer.AuthorizeResource(ctx, principal, authz.ResourceOrders, authz.OpUpdate, order.ID, o.lookup); err != nil {
		return err
	}
	if err := o.checkReferences(ctx, order); err != nil {
		return err
	}
	return o.orderRepo.Update(ctx, order)
}

func (o *orderUseCase) Delete(ctx context.Context, principal *authDomain.Principal, id int64) error {
	if err := o.authorizer.AuthorizeResource(ctx, principal, authz.ResourceOrders, authz.OpDelete, id, o.lookup); err != nil {
		return err
	}
	return o.orderRepo.SoftDelete(ctx, id)
}

func (o *orderUseCase) Restore(ctx context.Context, principal *authDomain.Principal, id int64) error {
	if _, err := o.authorizer.Authorize(principal, authz.ResourceOrders, authz.OpRestore); err != nil {
		return err
	}
	return o.orderRepo.Restore(ctx, id)
}

// AttachCargo links a cargo to an order. Changing an order's cargo set is
// an update of the order, so the update grant applies.
func (o *orderUseCase) AttachCargo(ctx context.Context, principal *authDomain.Principal, orderID, cargoID int64) error {
	if err := o.authorizer.AuthorizeResource(ctx, principal, authz.ResourceOrders, authz.OpUpdate, orderID, o.lookup); err != nil {
		return err
	}
	if _, err := o.orderRepo.Get(ctx, orderID); err != nil {
		return err
	}
	if _, err := o.cargoRepo.Get(ctx, cargoID); err != nil {
		return invalidReference(err, "cargo does not exist")
	}
	return o.orderRepo.AttachCargo(ctx, orderID, cargoID)
}

// DetachCargo removes a cargo from an order under the same update grant.
func (o *orderUseCase) DetachCargo(ctx context.Context, principal *authDomain.Principal, orderID, cargoID int64) error {
	if err := o.authorizer.AuthorizeResource(ctx, principal, authz.ResourceOrders, authz.OpUpdate, orderID, o.lookup); err != nil {
		return err
	}
	if _, err := o.orderRepo.Get(ctx, orderID); err != nil {
		return err
	}
	return o.orderRepo.DetachCargo(ctx, orderID, cargoID)
}

func (o *orderUseCase) checkReferences(ctx context.Context, order *logisticsDomain.Order) error {
	if _, err := o.transportationRepo.Get(ctx, order.TransportationID); err != nil {
		return invalidReference(err, "transportation does not exist")
	}
	if order.ClientID != nil {
		if _, err := o.clientRepo.Get(ctx, *order.ClientID); err != nil {
			return invalidReference(err, "client does not exist")
		}
	}
	return nil
}

// NewOrderUseCase creates a new order use case instance.
func NewOrderUseCase(
	authorizer Authorizer,
	lookup authz.OwnerLookup,
	orderRepo OrderRepository,
	cargoRepo CargoRepository,
	clientRepo ClientRepository,
	transportationRepo TransportationRepository,
) OrderUseCase {
	return &orderUseCase{
		authorizer:         authorizer,
		lookup:             lookup,
		orderRepo:          orderRepo,
		cargoRepo:          cargoRepo,
		clientRepo:         clientRepo,
		transportationRepo: transportationRepo,
	}
}
