// Package memory holds in-process stores. They honour the same uniqueness contract as the
// Redis and SQL backends and are used for single-instance deployments and tests.
package memory

import (
	"context"
	"fmt"
	"sync"

	"mysession/domain"
	"mysession/service"
)

type sessionStore struct {
	mu     sync.RWMutex
	byUser map[int64]domain.Session
	byKey  map[string]int64
}

// NewSessionStore creates an empty in-memory SessionStore.
func NewSessionStore() *sessionStore {
	return &sessionStore{
		byUser: make(map[int64]domain.Session),
		byKey:  make(map[string]int64),
	}
}

func (s *sessionStore) FindByUserID(_ context.Context, userID int64) (domain.Session, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	session, ok := s.byUser[userID]
	if !ok {
		return domain.Session{}, service.NewEntityNotFoundError(fmt.Sprintf("no session for user %d", userID), nil)
	}
	return session, nil
}

func (s *sessionStore) FindByKey(_ context.Context, key string) (domain.Session, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	userID, ok := s.byKey[key]
	if !ok {
		return domain.Session{}, service.NewEntityNotFoundError("no session for key", nil)
	}
	return s.byUser[userID], nil
}

func (s *sessionStore) Create(_ context.Context, session domain.Session) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.byUser[session.UserID]; ok {
		return service.ErrUserSessionExists
	}
	if _, ok := s.byKey[session.Key]; ok {
		return service.ErrSessionKeyExists
	}
	s.byUser[session.UserID] = session
	s.byKey[session.Key] = session.UserID
	return nil
}

func (s *sessionStore) Delete(_ context.Context, session domain.Session) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	stored, ok := s.byUser[session.UserID]
	if !ok || stored.Key != session.Key {
		return service.NewEntityNotFoundError("session already removed", nil)
	}
	delete(s.byUser, session.UserID)
	delete(s.byKey, session.Key)
	return nil
}

// Len returns the number of live sessions.
func (s *sessionStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.byUser)
}
