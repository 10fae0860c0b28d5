package postgres

import (
	"context"
	"errors"
	"fmt"

	"mysession/domain"
	"mysession/helpers"
	"mysession/service"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

const uniqueViolation = "23505"

type sessionStore struct {
	pool *pgxpool.Pool
}

// NewSessionStore creates a SessionStore on the sessions table. Uniqueness per user and per
// key is enforced by the table constraints.
func NewSessionStore(pool *pgxpool.Pool) *sessionStore {
	return &sessionStore{pool: helpers.NilPanic(pool, "postgres.session_store.go: pool is required")}
}

func (s *sessionStore) FindByUserID(ctx context.Context, userID int64) (domain.Session, error) {
	return s.findOne(ctx, `SELECT user_id, session_key, created_at FROM sessions WHERE user_id = $1`, userID)
}

func (s *sessionStore) FindByKey(ctx context.Context, key string) (domain.Session, error) {
	return s.findOne(ctx, `SELECT user_id, session_key, created_at FROM sessions WHERE session_key = $1`, key)
}

func (s *sessionStore) findOne(ctx context.Context, query string, arg any) (domain.Session, error) {
	var session domain.Session
	err := s.pool.QueryRow(ctx, query, arg).Scan(&session.UserID, &session.Key, &session.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.Session{}, service.NewEntityNotFoundError("session not found", err)
		}
		return domain.Session{}, service.NewInternalServerError("Postgres read session error", err)
	}
	session.CreatedAt = session.CreatedAt.UTC()
	return session, nil
}

func (s *sessionStore) Create(ctx context.Context, session domain.Session) error {
	_, err := s.pool.Exec(ctx,
		`INSERT INTO sessions (user_id, session_key, created_at) VALUES ($1, $2, $3)`,
		session.UserID, session.Key, session.CreatedAt,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
			switch pgErr.ConstraintName {
			case "sessions_pkey":
				return service.ErrUserSessionExists
			case "sessions_session_key_key":
				return service.ErrSessionKeyExists
			}
		}
		return service.NewInternalServerError("Postgres create session error", err)
	}
	return nil
}

func (s *sessionStore) Delete(ctx context.Context, session domain.Session) error {
	tag, err := s.pool.Exec(ctx,
		`DELETE FROM sessions WHERE user_id = $1 AND session_key = $2`,
		session.UserID, session.Key,
	)
	if err != nil {
		return service.NewInternalServerError("Postgres delete session error", err)
	}
	if tag.RowsAffected() == 0 {
		return service.NewEntityNotFoundError(fmt.Sprintf("session of user %d already removed", session.UserID), nil)
	}
	return nil
}
