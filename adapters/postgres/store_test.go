package postgres

import (
	"context"
	"os"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"mysession/domain"
	"mysession/helpers"
	"mysession/service"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openTestDB(t *testing.T) *pgxpool.Pool {
	t.Helper()
	url := os.Getenv("TEST_DATABASE_URL")
	if url == "" {
		t.Skip("TEST_DATABASE_URL not set")
	}
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	pool, err := NewPool(ctx, url, 4)
	if err != nil {
		t.Skipf("db unavailable: %v", err)
	}
	require.NoError(t, Migrate(ctx, pool))
	_, err = pool.Exec(ctx, `TRUNCATE sessions, customers, drivers, admins`)
	require.NoError(t, err)
	t.Cleanup(pool.Close)
	return pool
}

func TestNewPool_InvalidURL(t *testing.T) {
	_, err := NewPool(context.Background(), "://bad", 0)
	assert.Error(t, err)
}

func TestUserStore(t *testing.T) {
	ctx := context.Background()
	store := NewUserStore(openTestDB(t))

	alice := domain.User{ID: 101, Username: "alice", Password: "secret123", Role: domain.RoleCustomer}
	require.NoError(t, store.Save(ctx, alice))

	got, err := store.FindByID(ctx, domain.RoleCustomer, 101)
	require.NoError(t, err)
	assert.Equal(t, alice, got)

	_, err = store.FindByID(ctx, domain.RoleDriver, 101)
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

	got, err := store.FindByKey(ctx, "Ab3dE9")
	require.NoError(t, err)
	assert.Equal(t, session, got)

	err = store.Create(ctx, domain.Session{UserID: 101, Key: "Other1", CreatedAt: helpers.TestNow()})
	assert.ErrorIs(t, err, service.ErrUserSessionExists)
	err = store.Create(ctx, domain.Session{UserID: 202, Key: "Ab3dE9", CreatedAt: helpers.TestNow()})
	assert.ErrorIs(t, err, service.ErrSessionKeyExists)

	assert.True(t, service.IsEntityNotFound(store.Delete(ctx, domain.Session{UserID: 101, Key: "Stale1"})))
	require.NoError(t, store.Delete(ctx, session))
	_, err = store.FindByUserID(ctx, 101)
	assert.True(t, service.IsEntityNotFound(err))
}

func TestSessionStore_ConcurrentCreate(t *testing.T) {
	ctx := context.Background()
	store := NewSessionStore(openTestDB(t))

	var (
		wg      sync.WaitGroup
		created atomic.Int32
	)
	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			key := string(rune('A'+i)) + "key00"
			if err := store.Create(ctx, domain.Session{UserID: 7, Key: key, CreatedAt: helpers.TestNow()}); err == nil {
				created.Add(1)
			}
		}(i)
	}
	wg.Wait()
	assert.Equal(t, int32(1), created.Load())
}
