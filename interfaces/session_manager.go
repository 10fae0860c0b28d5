package interfaces

import (
	"context"

	"mysession/domain"
)

// SessionManager is the login/logout core consumed by the HTTP and gRPC handlers.
// All failures are service.SessionError values with distinct codes.
//
//go:generate moq -stub -out mock/session_manager.go -pkg mock . SessionManager
type SessionManager interface {
	// Login resolves the user across role partitions, checks the password and
	// opens a new session according to the configured conflict policy.
	Login(ctx context.Context, userID int64, password string) (domain.LoginResult, error)

	// Logout removes the session with the given key. A second call with the same key fails with session_not_found.
	Logout(ctx context.Context, key string) (domain.Confirmation, error)

	// ForceLogout removes the session of the user if there is one. Succeeds when there is none.
	ForceLogout(ctx context.Context, userID int64) (domain.Confirmation, error)
}
