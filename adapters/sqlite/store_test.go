package sqlite

import (
	"context"
	"path/filepath"
	"testing"

	"mysession/domain"
	"mysession/helpers"
	"mysession/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := Open(filepath.Join(t.TempDir(), "sessions.db"), false)
	require.NoError(t, err)
	t.Cleanup(func() { _ = Close(db) })
	return db
}

func TestUserStore(t *testing.T) {
	ctx := context.Background()
	store := NewUserStore(openTestDB(t))

	alice := domain.User{ID: 101, Username: "alice", Password: "secret123", Role: domain.RoleCustomer}
	bob := domain.User{ID: 101, Username: "bob", Password: "driverpw", Role: domain.RoleDriver}
	require.NoError(t, store.Save(ctx, alice))
	require.NoError(t, store.Save(ctx, bob))

	got, err := store.FindByID(ctx, domain.RoleCustomer, 101)
	require.NoError(t, err)
	assert.Equal(t, alice, got)

	got, err = store.FindByID(ctx, domain.RoleDriver, 101)
	require.NoError(t, err)
	assert.Equal(t, bob, got)

	_, err = store.FindByID(ctx, domain.RoleAdmin, 101)
	assert.True(t, service.IsEntityNotFound(err))

	alice.Password = "changed1"
	require.NoError(t, store.Save(ctx, alice))
	got, err = store.FindByID(ctx, domain.RoleCustomer, 101)
	require.NoError(t, err)
	assert.Equal(t, "changed1", got.Password)

	assert.True(t, service.IsBadParameter(store.Save(ctx, domain.User{ID: 1, Role: "guest"})))
}

func TestSessionStore(t *testing.T) {
	ctx := context.Background()
	store := NewSessionStore(openTestDB(t))

	session := domain.Session{UserID: 101, Key: "Ab3dE9", CreatedAt: helpers.TestNow()}
	require.NoError(t, store.Create(ctx, session))

	t.Run("find", func(t *testing.T) {
		got, err := store.FindByKey(ctx, "Ab3dE9")
		require.NoError(t, err)
		assert.Equal(t, int64(101), got.UserID)
		assert.True(t, helpers.TestNow().Equal(got.CreatedAt))

		got, err = store.FindByUserID(ctx, 101)
		require.NoError(t, err)
		assert.Equal(t, "Ab3dE9", got.Key)

		_, err = store.FindByKey(ctx, "ab3de9")
		assert.True(t, service.IsEntityNotFound(err), "keys are case sensitive")
	})

	t.Run("uniqueness", func(t *testing.T) {
		err := store.Create(ctx, domain.Session{UserID: 101, Key: "Other1", CreatedAt: helpers.TestNow()})
		assert.ErrorIs(t, err, service.ErrUserSessionExists)
		err = store.Create(ctx, domain.Session{UserID: 202, Key: "Ab3dE9", CreatedAt: helpers.TestNow()})
		assert.ErrorIs(t, err, service.ErrSessionKeyExists)
	})

	t.Run("delete", func(t *testing.T) {
		assert.True(t, service.IsEntityNotFound(store.Delete(ctx, domain.Session{UserID: 101, Key: "Stale1"})))
		require.NoError(t, store.Delete(ctx, session))
		_, err := store.FindByUserID(ctx, 101)
		assert.True(t, service.IsEntityNotFound(err))
		assert.True(t, service.IsEntityNotFound(store.Delete(ctx, session)))
	})
}
