package myredis

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"mysession/domain"
	"mysession/helpers"
	"mysession/service"

	"github.com/go-redis/redis/v8"
)

const (
	sessionUserPrefix = "session:user"
	sessionKeyPrefix  = "session:key"
)

// KEYS[1] session:user:{id}, KEYS[2] session:key:{key}; ARGV user id, key, created_at.
// Returns 1 when the user has a session, 2 when the key is taken, 0 on insert.
var createScript = redis.NewScript(`
if redis.call("EXISTS", KEYS[1]) == 1 then
	return 1
end
if redis.call("EXISTS", KEYS[2]) == 1 then
	return 2
end
redis.call("HSET", KEYS[1], "key", ARGV[2], "created_at", ARGV[3])
redis.call("SET", KEYS[2], ARGV[1])
return 0
`)

// KEYS[1] session:user:{id}, KEYS[2] session:key:{key}; ARGV key.
// Deletes both entries only when the stored key still matches. Returns 1 when removed.
var deleteScript = redis.NewScript(`
if redis.call("HGET", KEYS[1], "key") ~= ARGV[1] then
	return 0
end
redis.call("DEL", KEYS[1], KEYS[2])
return 1
`)

type sessionStore struct {
	client redis.UniversalClient
}

// NewSessionStore creates a SessionStore on Redis. A session is a hash at session:user:{id}
// plus a key index at session:key:{key}; both are written and removed by Lua scripts so the
// pair stays consistent across instances.
func NewSessionStore(client redis.UniversalClient) *sessionStore {
	return &sessionStore{client: helpers.NilPanic(client, "myredis.session_store.go: client is required")}
}

func (s *sessionStore) FindByUserID(ctx context.Context, userID int64) (domain.Session, error) {
	fields, err := s.client.HGetAll(ctx, userSessionKey(userID)).Result()
	if err != nil {
		return domain.Session{}, service.NewInternalServerError("Redis read session error", err)
	}
	if len(fields) == 0 {
		return domain.Session{}, service.NewEntityNotFoundError(fmt.Sprintf("no session for user %d", userID), nil)
	}
	return decodeSession(userID, fields)
}

func (s *sessionStore) FindByKey(ctx context.Context, key string) (domain.Session, error) {
	userID, err := s.client.Get(ctx, keySessionKey(key)).Int64()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return domain.Session{}, service.NewEntityNotFoundError("no session for key", err)
		}
		return domain.Session{}, service.NewInternalServerError("Redis read session key error", err)
	}
	session, err := s.FindByUserID(ctx, userID)
	if err != nil {
		return domain.Session{}, err
	}
	// The index outlived a replaced session.
	if session.Key != key {
		return domain.Session{}, service.NewEntityNotFoundError("no session for key", nil)
	}
	return session, nil
}

func (s *sessionStore) Create(ctx context.Context, session domain.Session) error {
	res, err := createScript.Run(ctx, s.client,
		[]string{userSessionKey(session.UserID), keySessionKey(session.Key)},
		session.UserID, session.Key, session.CreatedAt.UTC().Format(time.RFC3339Nano),
	).Int()
	if err != nil {
		return service.NewInternalServerError("Redis create session error", err)
	}
	switch res {
	case 1:
		return service.ErrUserSessionExists
	case 2:
		return service.ErrSessionKeyExists
	}
	return nil
}

func (s *sessionStore) Delete(ctx context.Context, session domain.Session) error {
	res, err := deleteScript.Run(ctx, s.client,
		[]string{userSessionKey(session.UserID), keySessionKey(session.Key)},
		session.Key,
	).Int()
	if err != nil {
		return service.NewInternalServerError("Redis delete session error", err)
	}
	if res == 0 {
		return service.NewEntityNotFoundError("session already removed", nil)
	}
	return nil
}

func decodeSession(userID int64, fields map[string]string) (domain.Session, error) {
	createdAt, err := time.Parse(time.RFC3339Nano, fields["created_at"])
	if err != nil {
		return domain.Session{}, service.NewInternalServerError("Redis session has invalid created_at", err)
	}
	return domain.Session{UserID: userID, Key: fields["key"], CreatedAt: createdAt}, nil
}

func userSessionKey(userID int64) string {
	return sessionUserPrefix + ":" + strconv.FormatInt(userID, 10)
}

func keySessionKey(key string) string {
	return sessionKeyPrefix + ":" + key
}
