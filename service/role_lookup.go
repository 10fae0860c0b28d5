package service

import (
	"context"
	"fmt"

	"mysession/domain"
	"mysession/helpers"
	"mysession/interfaces"
)

// RoleLookup resolves a user id across the role partitions in domain.RolePriority order.
type RoleLookup struct {
	store interfaces.UserStore
	order []domain.Role
}

// NewRoleLookup creates a RoleLookup over store. Panics on nil store.
func NewRoleLookup(store interfaces.UserStore) *RoleLookup {
	return &RoleLookup{
		store: helpers.NilPanic(store, "service.role_lookup.go: user store is required"),
		order: domain.RolePriority,
	}
}

// Resolve returns the first user with id, probing customer, driver then admin.
// Returns:
// 1) (user, nil) with user.Role set to the partition it was found in;
// 2) user_not_found when no partition has the id;
// 3) internal_server_error when a partition lookup fails for another reason. Later partitions are not probed.
func (l *RoleLookup) Resolve(ctx context.Context, id int64) (domain.User, error) {
	for _, role := range l.order {
		user, err := l.store.FindByID(ctx, role, id)
		if err == nil {
			user.Role = role
			return user, nil
		}
		if IsEntityNotFound(err) {
			continue
		}
		return domain.User{}, NewInternalServerError(fmt.Sprintf("failed to look up %s %d", role, id), err)
	}
	return domain.User{}, NewUserNotFoundError(fmt.Sprintf("no user with id %d", id), nil)
}
