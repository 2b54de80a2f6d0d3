package usecase

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	authDomain "github.com/cargoconnect/api/internal/auth/domain"
	"github.com/cargoconnect/api/internal/authz"
	authzmocks "github.com/cargoconnect/api/internal/authz/mocks"
	apperrors "github.com/cargoconnect/api/internal/errors"
	logisticsDomain "github.com/cargoconnect/api/internal/logistics/domain"
)

type clientTestEnv struct {
	clientRepo *mockClientRepository
	lookup     *authzmocks.OwnerLookup
	useCase    ClientUseCase
}

func newClientTestEnv() *clientTestEnv {
	env := &clientTestEnv{
		clientRepo: &mockClientRepository{},
		lookup:     &authzmocks.OwnerLookup{},
	}
	env.useCase = NewClientUseCase(authz.NewEngine(), env.lookup, env.clientRepo)
	return env
}

func TestClientUseCase_List(t *testing.T) {
	t.Run("Success_ModeratorLists", func(t *testing.T) {
		env := newClientTestEnv()
		ctx := context.Background()
		principal := &authDomain.Principal{UserID: 2, Role: authDomain.RoleModerator}

		env.clientRepo.On("List", ctx).Return([]*logisticsDomain.Client{{ID: 42}}, nil)

		clients, err := env.useCase.List(ctx, principal)
		require.NoError(t, err)
		assert.Len(t, clients, 1)
	})

	t.Run("Error_UserCannotListClients", func(t *testing.T) {
		env := newClientTestEnv()

		clients, err := env.useCase.List(context.Background(), clientPrincipal(42))
		assert.Nil(t, clients)
		assert.ErrorIs(t, err, apperrors.ErrForbidden)
		env.clientRepo.AssertNotCalled(t, "List", mock.Anything)
	})
}

func TestClientUseCase_Update(t *testing.T) {
	t.Run("Success_UserUpdatesOwnProfile", func(t *testing.T) {
		env := newClientTestEnv()
		ctx := context.Background()

		env.lookup.On("ResolveOwner", ctx, authz.ResourceClients, int64(42)).
			Return(&authz.Owner{ClientIDs: []int64{42}}, nil)
		env.clientRepo.On("Update", ctx, mock.Anything).Return(nil)

		err := env.useCase.Update(ctx, clientPrincipal(42), &logisticsDomain.Client{ID: 42, Name: "Ivan"})
		assert.NoError(t, err)
		env.clientRepo.AssertExpectations(t)
	})

	t.Run("Error_UserUpdatesForeignProfile", func(t *testing.T) {
		env := newClientTestEnv()
		ctx := context.Background()

		env.lookup.On("ResolveOwner", ctx, authz.ResourceClients, int64(99)).
			Return(&authz.Owner{ClientIDs: []int64{99}}, nil)

		err := env.useCase.Update(ctx, clientPrincipal(42), &logisticsDomain.Client{ID: 99})
		assert.ErrorIs(t, err, apperrors.ErrForbidden)
		env.clientRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
	})
}

func TestClientUseCase_Delete(t *testing.T) {
	t.Run("Error_ModeratorCannotDeleteMasterData", func(t *testing.T) {
		env := newClientTestEnv()
		principal := &authDomain.Principal{UserID: 2, Role: authDomain.RoleModerator}

		err := env.useCase.Delete(context.Background(), principal, 42)
		assert.ErrorIs(t, err, apperrors.ErrForbidden)
		env.clientRepo.AssertNotCalled(t, "SoftDelete", mock.Anything, mock.Anything)
	})

	t.Run("Success_AdminDeletesAndRestores", func(t *testing.T) {
		env := newClientTestEnv()
		ctx := context.Background()

		env.clientRepo.On("SoftDelete", ctx, int64(42)).Return(nil)
		env.clientRepo.On("Restore", ctx, int64(42)).Return(nil)

		require.NoError(t, env.useCase.Delete(ctx, adminPrincipal(), 42))
		require.NoError(t, env.useCase.Restore(ctx, adminPrincipal(), 42))
		env.clientRepo.AssertExpectations(t)
	})
}
