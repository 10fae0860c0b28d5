package interfaces

import (
	"context"

	"mysession/domain"
)

// UserStore provides user lookup inside one role partition. Implementation can be memory, Redis, Postgres or SQLite.
//
//go:generate moq -stub -out mock/user_store.go -pkg mock . UserStore
type UserStore interface {
	// FindByID returns the user with the given id in the given role partition.
	// Returns:
	// 1) (user, nil) when found;
	// 2) entity_not_found when the partition has no such id;
	// 3) any other error when the storage read fails.
	FindByID(ctx context.Context, role domain.Role, id int64) (domain.User, error)

	// Save creates or replaces the user record in its role partition. Used for seeding only.
	Save(ctx context.Context, user domain.User) error
}
