package memory

import (
	"context"
	"fmt"
	"sync"

	"mysession/domain"
	"mysession/service"
)

type userKey struct {
	role domain.Role
	id   int64
}

type userStore struct {
	mu    sync.RWMutex
	users map[userKey]domain.User
}

// NewUserStore creates an in-memory UserStore seeded with users.
func NewUserStore(users ...domain.User) *userStore {
	s := &userStore{users: make(map[userKey]domain.User, len(users))}
	for _, u := range users {
		s.users[userKey{role: u.Role, id: u.ID}] = u
	}
	return s
}

func (s *userStore) FindByID(_ context.Context, role domain.Role, id int64) (domain.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	u, ok := s.users[userKey{role: role, id: id}]
	if !ok {
		return domain.User{}, service.NewEntityNotFoundError(fmt.Sprintf("%s %d not found", role, id), nil)
	}
	return u, nil
}

func (s *userStore) Save(_ context.Context, user domain.User) error {
	if _, err := domain.ParseRole(string(user.Role)); err != nil {
		return service.NewBadParameterError("invalid user role", err)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.users[userKey{role: user.Role, id: user.ID}] = user
	return nil
}
