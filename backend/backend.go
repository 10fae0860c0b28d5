// Package backend builds the user and session stores selected by configuration.
package backend

import (
	"context"
	"fmt"
	"time"

	"mysession/adapters/memory"
	"mysession/adapters/myredis"
	"mysession/adapters/postgres"
	"mysession/adapters/sqlite"
	"mysession/interfaces"
	"mysession/service"

	"github.com/go-kit/log"
	"github.com/go-kit/log/level"
)

// Stores is an opened backend.
type Stores struct {
	Users    interfaces.UserStore
	Sessions interfaces.SessionStore
	Close    func() error
}

// Open connects to the configured backend and prepares its schema.
func Open(ctx context.Context, cfg *Config, logger log.Logger) (*Stores, error) {
	switch cfg.Store {
	case StoreMemory:
		return &Stores{
			Users:    memory.NewUserStore(),
			Sessions: memory.NewSessionStore(),
			Close:    func() error { return nil },
		}, nil

	case StoreRedis:
		client, err := myredis.NewRedisUniversalClient(cfg.RedisAddr)
		if err != nil {
			return nil, err
		}
		if err := client.Ping(ctx).Err(); err != nil {
			// Sessions are still served once Redis comes up.
			level.Warn(logger).Log("msg", "Redis is not reachable yet", "err", err)
		}
		return &Stores{
			Users:    myredis.NewUserStore(client),
			Sessions: myredis.NewSessionStore(client),
			Close:    client.Close,
		}, nil

	case StorePostgres:
		pool, err := postgres.NewPool(ctx, cfg.DatabaseURL, 0)
		if err != nil {
			return nil, err
		}
		if err := postgres.Migrate(ctx, pool); err != nil {
			pool.Close()
			return nil, err
		}
		return &Stores{
			Users:    postgres.NewUserStore(pool),
			Sessions: postgres.NewSessionStore(pool),
			Close: func() error {
				pool.Close()
				return nil
			},
		}, nil

	case StoreSQLite:
		db, err := sqlite.Open(cfg.SQLitePath, cfg.LogLevel == "debug")
		if err != nil {
			return nil, err
		}
		return &Stores{
			Users:    sqlite.NewUserStore(db),
			Sessions: sqlite.NewSessionStore(db),
			Close:    func() error { return sqlite.Close(db) },
		}, nil
	}
	return nil, fmt.Errorf("unknown store backend %q", cfg.Store)
}

// NewSessionManager wires a session manager over stores with the configured policy, key length and clock.
func NewSessionManager(stores *Stores, cfg *Config, metrics *service.Metrics, logger log.Logger) interfaces.SessionManager {
	return service.NewSessionManager(
		stores.Users,
		stores.Sessions,
		service.NewRandomKeyGenerator(cfg.KeyLength),
		service.NewTimeProvider(func() time.Time { return time.Now().UTC() }),
		cfg.ManagerConfig(),
		metrics,
		logger,
	)
}
