package interfaces

import (
	"context"

	"mysession/domain"
)

// SessionStore persists live sessions and owns their uniqueness.
//
// Create must be atomic with respect to both indexes: when two callers race to
// create a session for the same user (or with the same key), exactly one wins
// and the other gets service.ErrUserSessionExists (or service.ErrSessionKeyExists).
//
//go:generate moq -stub -out mock/session_store.go -pkg mock . SessionStore
type SessionStore interface {
	// FindByUserID returns the live session of the user or entity_not_found.
	FindByUserID(ctx context.Context, userID int64) (domain.Session, error)

	// FindByKey returns the live session with the key or entity_not_found.
	FindByKey(ctx context.Context, key string) (domain.Session, error)

	// Create inserts the session.
	// Returns:
	// 1) nil on success;
	// 2) service.ErrUserSessionExists when the user already has a live session;
	// 3) service.ErrSessionKeyExists when the key is taken by another session;
	// 4) any other error when the storage write fails.
	Create(ctx context.Context, session domain.Session) error

	// Delete removes the session if it is still the one stored for its user and key.
	// Returns entity_not_found when nothing was removed.
	Delete(ctx context.Context, session domain.Session) error
}
