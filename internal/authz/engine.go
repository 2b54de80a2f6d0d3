package authz

import (
	"context"
	"slices"

	authDomain "github.com/cargoconnect/api/internal/auth/domain"
	apperrors "github.com/cargoconnect/api/internal/errors"
)

// OwnershipFilter restricts a query to rows reachable from one owner.
// Exactly one of the fields is set.
type OwnershipFilter struct {
	ClientID *int64
	DriverID *int64
}

// Decision is a positive authorization result. A nil Filter means
// unrestricted access; otherwise the data-access layer must apply the
// filter before returning rows.
type Decision struct {
	Filter *OwnershipFilter
}

// Owner holds the resolved owners of a single resource. Ownership is
// indirect for most resources (an order belongs to a client, a
// transportation belongs to a driver through its vehicle), and a cargo can
// belong to several clients through its orders, so both sides are slices.
type Owner struct {
	ClientIDs []int64
	DriverIDs []int64
}

// OwnerLookup resolves the owners of a resource at the data-access
// boundary. Implementations run the join queries (cargo through
// cargo_orders to orders, transportation through its vehicle to the
// driver). Returns ErrNotFound when the resource does not exist.
type OwnerLookup interface {
	ResolveOwner(ctx context.Context, resource Resource, id int64) (*Owner, error)
}

// Engine evaluates the policy table. It is stateless and safe for
// concurrent use; ownership links arrive on the principal, freshly loaded
// per request by the authentication middleware.
type Engine struct {
	rules map[ruleKey]Scope
}

// NewEngine creates an Engine with the default policy table.
func NewEngine() *Engine {
	return &Engine{rules: defaultRules()}
}

// Authorize decides whether the principal may perform the operation on the
// resource type. Returns a Decision whose Filter, when non-nil, must be
// applied to any list query. A nil principal is an anonymous caller and is
// always denied.
func (e *Engine) Authorize(
	principal *authDomain.Principal,
	resource Resource,
	op Operation,
) (*Decision, error) {
	if principal == nil {
		return nil, apperrors.Wrap(apperrors.ErrUnauthorized, "authentication required")
	}

	scope := e.rules[ruleKey{Role: principal.Role, Resource: resource, Operation: op}]
	switch scope {
	case ScopeAny:
		return &Decision{}, nil
	case ScopeOwned:
		filter, err := ownershipFilter(principal, resource)
		if err != nil {
			return nil, err
		}
		return &Decision{Filter: filter}, nil
	default:
		return nil, apperrors.Wrapf(
			apperrors.ErrForbidden,
			"role %s may not %s %s", principal.Role, op, resource,
		)
	}
}

// AuthorizeResource decides whether the principal may perform the operation
// on one specific resource. For scoped roles the owner is resolved through
// the lookup and compared against the principal's link. An existing but
// out-of-scope resource fails with ErrForbidden, never ErrNotFound, and a
// resource with no resolvable owner is denied rather than leaked.
func (e *Engine) AuthorizeResource(
	ctx context.Context,
	principal *authDomain.Principal,
	resource Resource,
	op Operation,
	id int64,
	lookup OwnerLookup,
) error {
	decision, err := e.Authorize(principal, resource, op)
	if err != nil {
		return err
	}
	if decision.Filter == nil {
		return nil
	}

	owner, err := lookup.ResolveOwner(ctx, resource, id)
	if err != nil {
		return err
	}

	if decision.Filter.ClientID != nil &&
		slices.Contains(owner.ClientIDs, *decision.Filter.ClientID) {
		return nil
	}
	if decision.Filter.DriverID != nil &&
		slices.Contains(owner.DriverIDs, *decision.Filter.DriverID) {
		return nil
	}

	return apperrors.Wrapf(
		apperrors.ErrForbidden,
		"%s %d is outside the caller's scope", resource, id,
	)
}

// ownershipFilter builds the filter for a scoped grant from the principal's
// link. A scoped role without the matching link has nothing it could own,
// so the operation is denied instead of returning an empty filter.
func ownershipFilter(
	principal *authDomain.Principal,
	resource Resource,
) (*OwnershipFilter, error) {
	if ownedThroughClient(resource) {
		if principal.ClientID == nil {
			return nil, apperrors.Wrap(
				apperrors.ErrForbidden,
				"account has no linked client",
			)
		}
		return &OwnershipFilter{ClientID: principal.ClientID}, nil
	}

	if principal.DriverID == nil {
		return nil, apperrors.Wrap(
			apperrors.ErrForbidden,
			"account has no linked driver",
		)
	}
	return &OwnershipFilter{DriverID: principal.DriverID}, nil
}
