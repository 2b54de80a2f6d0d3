// Package mocks provides mock implementations of logistics use case
// interfaces for HTTP handler testing.
package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	authDomain "github.com/cargoconnect/api/internal/auth/domain"
	logisticsDomain "github.com/cargoconnect/api/internal/logistics/domain"
)

// MockOrderUseCase is a mock implementation of usecase.OrderUseCase.
type MockOrderUseCase struct {
	mock.Mock
}

func (m *MockOrderUseCase) List(ctx context.Context, principal *authDomain.Principal) ([]*logisticsDomain.Order, error) {
	args := m.Called(ctx, principal)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*logisticsDomain.Order), args.Error(1)
}

func (m *MockOrderUseCase) ListDeleted(ctx context.Context, principal *authDomain.Principal) ([]*logisticsDomain.Order, error) {
	args := m.Called(ctx, principal)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*logisticsDomain.Order), args.Error(1)
}

func (m *MockOrderUseCase) Get(ctx context.Context, principal *authDomain.Principal, id int64) (*logisticsDomain.Order, error) {
	args := m.Called(ctx, principal, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*logisticsDomain.Order), args.Error(1)
}

func (m *MockOrderUseCase) Create(ctx context.Context, principal *authDomain.Principal, order *logisticsDomain.Order) error {
	args := m.Called(ctx, principal, order)
	return args.Error(0)
}

func (m *MockOrderUseCase) Update(ctx context.Context, principal *authDomain.Principal, order *logisticsDomain.Order) error {
	args := m.Called(ctx, principal, order)
	return args.Error(0)
}

func (m *MockOrderUseCase) Delete(ctx context.Context, principal *authDomain.Principal, id int64) error {
	args := m.Called(ctx, principal, id)
	return args.Error(0)
}

func (m *MockOrderUseCase) Restore(ctx context.Context, principal *authDomain.Principal, id int64) error {
	args := m.Called(ctx, principal, id)
	return args.Error(0)
}

func (m *MockOrderUseCase) AttachCargo(ctx context.Context, principal *authDomain.Principal, orderID, cargoID int64) error {
	args := m.Called(ctx, principal, orderID, cargoID)
	return args.Error(0)
}

func (m *MockOrderUseCase) DetachCargo(ctx context.Context, principal *authDomain.Principal, orderID, cargoID int64) error {
	args := m.Called(ctx, principal, orderID, cargoID)
	return args.Error(0)
}
