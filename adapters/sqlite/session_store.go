package sqlite

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"mysession/domain"
	"mysession/helpers"
	"mysession/service"

	"gorm.io/gorm"
)

type sessionStore struct {
	db *gorm.DB
}

// NewSessionStore creates a SessionStore on the sessions table. The primary key on user_id
// and the unique index on session_key enforce one session per user and per key.
func NewSessionStore(db *gorm.DB) *sessionStore {
	return &sessionStore{db: helpers.NilPanic(db, "sqlite.session_store.go: db is required")}
}

func (s *sessionStore) FindByUserID(ctx context.Context, userID int64) (domain.Session, error) {
	return s.findOne(ctx, "user_id = ?", userID)
}

func (s *sessionStore) FindByKey(ctx context.Context, key string) (domain.Session, error) {
	return s.findOne(ctx, "session_key = ?", key)
}

func (s *sessionStore) findOne(ctx context.Context, cond string, arg any) (domain.Session, error) {
	var m sessionModel
	err := s.db.WithContext(ctx).Where(cond, arg).First(&m).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.Session{}, service.NewEntityNotFoundError("session not found", err)
		}
		return domain.Session{}, service.NewInternalServerError("SQLite read session error", err)
	}
	return domain.Session{UserID: m.UserID, Key: m.Key, CreatedAt: m.CreatedAt.UTC()}, nil
}

func (s *sessionStore) Create(ctx context.Context, session domain.Session) error {
	m := sessionModel{UserID: session.UserID, Key: session.Key, CreatedAt: session.CreatedAt}
	err := s.db.WithContext(ctx).Create(&m).Error
	if err != nil {
		// mattn/go-sqlite3 reports both PRIMARY KEY and UNIQUE violations as
		// "UNIQUE constraint failed: <table>.<column>".
		msg := err.Error()
		switch {
		case strings.Contains(msg, "UNIQUE constraint failed: sessions.user_id"):
			return service.ErrUserSessionExists
		case strings.Contains(msg, "UNIQUE constraint failed: sessions.session_key"):
			return service.ErrSessionKeyExists
		}
		return service.NewInternalServerError("SQLite create session error", err)
	}
	return nil
}

func (s *sessionStore) Delete(ctx context.Context, session domain.Session) error {
	res := s.db.WithContext(ctx).
		Where("user_id = ? AND session_key = ?", session.UserID, session.Key).
		Delete(&sessionModel{})
	if res.Error != nil {
		return service.NewInternalServerError("SQLite delete session error", res.Error)
	}
	if res.RowsAffected == 0 {
		return service.NewEntityNotFoundError(fmt.Sprintf("session of user %d already removed", session.UserID), nil)
	}
	return nil
}
