package postgres

import (
	"context"
	"errors"
	"fmt"

	"mysession/domain"
	"mysession/helpers"
	"mysession/service"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

var roleTables = map[domain.Role]string{
	domain.RoleCustomer: "customers",
	domain.RoleDriver:   "drivers",
	domain.RoleAdmin:    "admins",
}

type userStore struct {
	pool *pgxpool.Pool
}

// NewUserStore creates a UserStore reading the customers, drivers and admins tables.
func NewUserStore(pool *pgxpool.Pool) *userStore {
	return &userStore{pool: helpers.NilPanic(pool, "postgres.user_store.go: pool is required")}
}

func (s *userStore) FindByID(ctx context.Context, role domain.Role, id int64) (domain.User, error) {
	table, ok := roleTables[role]
	if !ok {
		return domain.User{}, service.NewBadParameterError(fmt.Sprintf("unknown role %q", role), nil)
	}

	user := domain.User{ID: id, Role: role}
	row := s.pool.QueryRow(ctx, `SELECT username, password FROM `+table+` WHERE id = $1`, id)
	if err := row.Scan(&user.Username, &user.Password); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.User{}, service.NewEntityNotFoundError(fmt.Sprintf("%s %d not found", role, id), err)
		}
		return domain.User{}, service.NewInternalServerError("Postgres read user error", err)
	}
	return user, nil
}

func (s *userStore) Save(ctx context.Context, user domain.User) error {
	table, ok := roleTables[user.Role]
	if !ok {
		return service.NewBadParameterError("invalid user role", fmt.Errorf("unknown role %q", user.Role))
	}
	_, err := s.pool.Exec(ctx, `
		INSERT INTO `+table+` (id, username, password) VALUES ($1, $2, $3)
		ON CONFLICT (id) DO UPDATE SET username = EXCLUDED.username, password = EXCLUDED.password
	`, user.ID, user.Username, user.Password)
	if err != nil {
		return service.NewInternalServerError("Postgres write user error", err)
	}
	return nil
}
