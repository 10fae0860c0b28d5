package sqlite

import (
	"context"
	"errors"
	"fmt"

	"mysession/domain"
	"mysession/helpers"
	"mysession/service"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type userStore struct {
	db *gorm.DB
}

// NewUserStore creates a UserStore on the users table, keyed by (role, id).
func NewUserStore(db *gorm.DB) *userStore {
	return &userStore{db: helpers.NilPanic(db, "sqlite.user_store.go: db is required")}
}

func (s *userStore) FindByID(ctx context.Context, role domain.Role, id int64) (domain.User, error) {
	var m userModel
	err := s.db.WithContext(ctx).Where("role = ? AND id = ?", string(role), id).First(&m).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.User{}, service.NewEntityNotFoundError(fmt.Sprintf("%s %d not found", role, id), err)
		}
		return domain.User{}, service.NewInternalServerError("SQLite read user error", err)
	}
	return domain.User{ID: m.ID, Username: m.Username, Password: m.Password, Role: domain.Role(m.Role)}, nil
}

func (s *userStore) Save(ctx context.Context, user domain.User) error {
	if _, err := domain.ParseRole(string(user.Role)); err != nil {
		return service.NewBadParameterError("invalid user role", err)
	}
	m := userModel{Role: string(user.Role), ID: user.ID, Username: user.Username, Password: user.Password}
	if err := s.db.WithContext(ctx).Clauses(clause.OnConflict{UpdateAll: true}).Create(&m).Error; err != nil {
		return service.NewInternalServerError("SQLite write user error", err)
	}
	return nil
}
