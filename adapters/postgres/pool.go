// Package postgres holds the PostgreSQL backed user and session stores.
package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
)

// NewPool parses url, opens a pgx pool and pings it.
func NewPool(ctx context.Context, url string, maxConns int32) (*pgxpool.Pool, error) {
	cfg, err := pgxpool.ParseConfig(url)
	if err != nil {
		return nil, fmt.Errorf("cant parse database url: %w", err)
	}
	if maxConns > 0 {
		cfg.MaxConns = maxConns
	}
	pool, err := pgxpool.NewWithConfig(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("cant open database pool: %w", err)
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("cant reach database: %w", err)
	}
	return pool, nil
}

const schema = `
CREATE TABLE IF NOT EXISTS customers (
	id       BIGINT PRIMARY KEY,
	username TEXT NOT NULL,
	password TEXT NOT NULL
);
CREATE TABLE IF NOT EXISTS drivers (
	id       BIGINT PRIMARY KEY,
	username TEXT NOT NULL,
	password TEXT NOT NULL
);
CREATE TABLE IF NOT EXISTS admins (
	id       BIGINT PRIMARY KEY,
	username TEXT NOT NULL,
	password TEXT NOT NULL
);
CREATE TABLE IF NOT EXISTS sessions (
	user_id     BIGINT NOT NULL,
	session_key TEXT NOT NULL,
	created_at  TIMESTAMPTZ NOT NULL,
	CONSTRAINT sessions_pkey PRIMARY KEY (user_id),
	CONSTRAINT sessions_session_key_key UNIQUE (session_key)
);
`

// Migrate creates the role tables and the sessions table when missing.
func Migrate(ctx context.Context, pool *pgxpool.Pool) error {
	if _, err := pool.Exec(ctx, schema); err != nil {
		return fmt.Errorf("cant migrate database: %w", err)
	}
	return nil
}
