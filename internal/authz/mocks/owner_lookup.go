// Package mocks provides mock implementations of authz collaborator
// interfaces for testing.
package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/cargoconnect/api/internal/authz"
)

// OwnerLookup is a mock implementation of authz.OwnerLookup.
type OwnerLookup struct {
	mock.Mock
}

func (m *OwnerLookup) ResolveOwner(
	ctx context.Context,
	resource authz.Resource,
	id int64,
) (*authz.Owner, error) {
	args := m.Called(ctx, resource, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*authz.Owner), args.Error(1)
}
