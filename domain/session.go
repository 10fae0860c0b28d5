package domain

import (
	"fmt"
	"time"
)

// Session is a live login of one user. At most one exists per UserID and per Key.
type Session struct {
	UserID    int64     `json:"user_id"`
	Key       string    `json:"key"`
	CreatedAt time.Time `json:"created_at"`
}

// ConflictPolicy decides what Login does when the user already has a live session.
type ConflictPolicy string

const (
	// PolicyEvict deletes the existing session and logs the user in again.
	PolicyEvict ConflictPolicy = "evict"
	// PolicyReject refuses the second login with session_already_active.
	PolicyReject ConflictPolicy = "reject"
)

// ParseConflictPolicy converts a config value into a ConflictPolicy.
func ParseConflictPolicy(s string) (ConflictPolicy, error) {
	switch p := ConflictPolicy(s); p {
	case PolicyEvict, PolicyReject:
		return p, nil
	default:
		return "", fmt.Errorf("unknown conflict policy %q (want %q or %q)", s, PolicyEvict, PolicyReject)
	}
}

// LoginResult is returned by a successful login.
type LoginResult struct {
	UserID    int64
	Username  string
	Role      Role
	Key       string
	CreatedAt time.Time
}

func (r LoginResult) String() string {
	return fmt.Sprintf("Login successful. UserId: %d, Username: %s, SessionKey: %s", r.UserID, r.Username, r.Key)
}

// Confirmation is returned by Logout and ForceLogout.
// Removed is false only for a ForceLogout that found nothing to remove.
type Confirmation struct {
	UserID  int64
	Removed bool
	Message string
}
