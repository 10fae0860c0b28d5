package service

import (
	"context"
	"errors"
	"testing"

	"mysession/domain"
	"mysession/interfaces/mock"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func partitionStore(users map[domain.Role]domain.User) *mock.UserStoreMock {
	return &mock.UserStoreMock{
		FindByIDFunc: func(ctx context.Context, role domain.Role, id int64) (domain.User, error) {
			if u, ok := users[role]; ok && u.ID == id {
				return u, nil
			}
			return domain.User{}, NewEntityNotFoundError("not found", nil)
		},
	}
}

func TestRoleLookup_Resolve(t *testing.T) {
	ctx := context.Background()

	t.Run("customer wins over driver with the same id", func(t *testing.T) {
		store := partitionStore(map[domain.Role]domain.User{
			domain.RoleCustomer: {ID: 7, Username: "cust"},
			domain.RoleDriver:   {ID: 7, Username: "drv"},
		})
		u, err := NewRoleLookup(store).Resolve(ctx, 7)
		require.NoError(t, err)
		assert.Equal(t, "cust", u.Username)
		assert.Equal(t, domain.RoleCustomer, u.Role)
		assert.Len(t, store.FindByIDCalls(), 1)
	})

	t.Run("falls through to admin", func(t *testing.T) {
		store := partitionStore(map[domain.Role]domain.User{
			domain.RoleAdmin: {ID: 9, Username: "root"},
		})
		u, err := NewRoleLookup(store).Resolve(ctx, 9)
		require.NoError(t, err)
		assert.Equal(t, domain.RoleAdmin, u.Role)

		calls := store.FindByIDCalls()
		require.Len(t, calls, 3)
		assert.Equal(t, domain.RoleCustomer, calls[0].Role)
		assert.Equal(t, domain.RoleDriver, calls[1].Role)
		assert.Equal(t, domain.RoleAdmin, calls[2].Role)
	})

	t.Run("missing everywhere", func(t *testing.T) {
		_, err := NewRoleLookup(partitionStore(nil)).Resolve(ctx, 404)
		require.Error(t, err)
		assert.True(t, IsUserNotFound(err))
	})

	t.Run("store failure stops the probe", func(t *testing.T) {
		store := &mock.UserStoreMock{
			FindByIDFunc: func(ctx context.Context, role domain.Role, id int64) (domain.User, error) {
				return domain.User{}, errors.New("connection refused")
			},
		}
		_, err := NewRoleLookup(store).Resolve(ctx, 1)
		require.Error(t, err)
		assert.True(t, IsInternalServerError(err))
		assert.Len(t, store.FindByIDCalls(), 1)
	})
}

func TestNewRoleLookup_Panics(t *testing.T) {
	assert.PanicsWithValue(t, "service.role_lookup.go: user store is required", func() {
		NewRoleLookup(nil)
	})
}
