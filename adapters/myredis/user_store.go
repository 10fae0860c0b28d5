package myredis

import (
	"context"
	"encoding/json"
	"fmt"

	"mysession/domain"
	"mysession/service"

	"github.com/go-redis/redis/v8"
)

const userKeyPrefix = "user"

type userStore struct {
	cache *redisCache[domain.User]
}

// NewUserStore creates a UserStore that reads from Redis (key: user:{role}:{id}, value: JSON user).
func NewUserStore(client redis.UniversalClient) *userStore {
	return &userStore{
		cache: newCache(client, userKeyPrefix,
			func(u domain.User) ([]byte, error) { return json.Marshal(u) },
			func(b []byte) (domain.User, error) {
				var u domain.User
				err := json.Unmarshal(b, &u)
				return u, err
			},
		),
	}
}

func (s *userStore) FindByID(ctx context.Context, role domain.Role, id int64) (domain.User, error) {
	user, err := s.cache.ReadValue(ctx, userKey(role, id))
	if err != nil {
		return domain.User{}, err
	}
	user.ID = id
	user.Role = role
	return user, nil
}

func (s *userStore) Save(ctx context.Context, user domain.User) error {
	if _, err := domain.ParseRole(string(user.Role)); err != nil {
		return service.NewBadParameterError("invalid user role", err)
	}
	return s.cache.WriteValue(ctx, userKey(user.Role, user.ID), user)
}

func userKey(role domain.Role, id int64) string {
	return fmt.Sprintf("%s:%d", role, id)
}
