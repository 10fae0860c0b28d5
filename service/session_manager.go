package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"mysession/domain"
	"mysession/helpers"
	"mysession/interfaces"

	"github.com/go-kit/log"
	"github.com/go-kit/log/level"
)

// SessionManagerConfig tunes the session manager.
type SessionManagerConfig struct {
	// Policy applied when the user already has a live session.
	Policy domain.ConflictPolicy
	// CreateAttempts bounds how many inserts Login tries when the store reports a key or user collision.
	CreateAttempts int
	// StoreTimeout bounds each store call. Zero leaves only the caller's deadline.
	StoreTimeout time.Duration
}

// sessionManager implements interfaces.SessionManager on top of a RoleLookup and a SessionStore.
// It holds no session state of its own; one-session-per-user is enforced by the store's
// uniqueness constraints and translated here according to the conflict policy.
type sessionManager struct {
	users    *RoleLookup
	sessions interfaces.SessionStore
	keys     interfaces.KeyGenerator
	clock    interfaces.TimeProvider
	cfg      SessionManagerConfig
	metrics  *Metrics
	logger   log.Logger
}

// NewSessionManager creates the session manager. Panics on nil dependencies or an unknown policy.
func NewSessionManager(
	users interfaces.UserStore,
	sessions interfaces.SessionStore,
	keys interfaces.KeyGenerator,
	clock interfaces.TimeProvider,
	cfg SessionManagerConfig,
	metrics *Metrics,
	logger log.Logger,
) interfaces.SessionManager {
	if _, err := domain.ParseConflictPolicy(string(cfg.Policy)); err != nil {
		panic("service.session_manager.go: " + err.Error())
	}
	if cfg.CreateAttempts <= 0 {
		cfg.CreateAttempts = 1
	}
	return &sessionManager{
		users:    NewRoleLookup(users),
		sessions: helpers.NilPanic(sessions, "service.session_manager.go: session store is required"),
		keys:     helpers.NilPanic(keys, "service.session_manager.go: key generator is required"),
		clock:    helpers.NilPanic(clock, "service.session_manager.go: time provider is required"),
		cfg:      cfg,
		metrics:  helpers.NilPanic(metrics, "service.session_manager.go: metrics are required"),
		logger:   log.With(helpers.NilPanic(logger, "service.session_manager.go: logger is required"), "component", "session_manager"),
	}
}

func (m *sessionManager) Login(ctx context.Context, userID int64, password string) (result domain.LoginResult, err error) {
	start := time.Now()
	defer func() {
		m.metrics.LoginDuration.Observe(time.Since(start).Seconds())
		m.metrics.Logins.WithLabelValues(outcome(err)).Inc()
	}()

	user, err := m.users.Resolve(ctx, userID)
	if err != nil {
		return domain.LoginResult{}, err
	}

	if user.Password != password {
		return domain.LoginResult{}, NewInvalidCredentialsError(fmt.Sprintf("invalid password for user id %d", userID), nil)
	}

	existing, err := m.findByUserID(ctx, userID)
	switch {
	case err == nil:
		if m.cfg.Policy == domain.PolicyReject {
			level.Info(m.logger).Log("msg", "login rejected, session already active", "user_id", userID)
			return domain.LoginResult{}, NewSessionAlreadyActiveError(fmt.Sprintf("user %d is already logged in", userID), nil)
		}
		m.evict(ctx, existing)
	case IsEntityNotFound(err):
	default:
		if m.cfg.Policy == domain.PolicyReject {
			return domain.LoginResult{}, NewInternalServerError("failed to check existing session", err)
		}
		// The insert below still refuses a second session for the user.
		level.Warn(m.logger).Log("msg", "existing session lookup failed, continuing login", "user_id", userID, "err", err)
	}

	session, err := m.create(ctx, userID)
	if err != nil {
		return domain.LoginResult{}, err
	}

	level.Info(m.logger).Log(
		"msg", "login successful",
		"user_id", userID,
		"role", user.Role,
		"key", helpers.MaskKey(session.Key),
		"policy", m.cfg.Policy,
	)

	return domain.LoginResult{
		UserID:    user.ID,
		Username:  user.Username,
		Role:      user.Role,
		Key:       session.Key,
		CreatedAt: session.CreatedAt,
	}, nil
}

// create mints a key and inserts the session, regenerating the key on key collisions and
// handling user collisions (a concurrent login for the same user) according to the policy.
func (m *sessionManager) create(ctx context.Context, userID int64) (domain.Session, error) {
	var lastErr error
	for attempt := 1; attempt <= m.cfg.CreateAttempts; attempt++ {
		key, err := m.keys.Generate()
		if err != nil {
			return domain.Session{}, NewSessionCreationFailedError("unable to generate session key", err)
		}

		session := domain.Session{UserID: userID, Key: key, CreatedAt: m.clock.Now()}
		err = m.withTimeout(ctx, func(ctx context.Context) error {
			return m.sessions.Create(ctx, session)
		})
		switch {
		case err == nil:
			return session, nil
		case errors.Is(err, ErrSessionKeyExists):
			m.metrics.StoreConflicts.WithLabelValues("key").Inc()
			level.Debug(m.logger).Log("msg", "session key collision, regenerating", "user_id", userID, "attempt", attempt)
		case errors.Is(err, ErrUserSessionExists):
			m.metrics.StoreConflicts.WithLabelValues("user").Inc()
			if m.cfg.Policy == domain.PolicyReject {
				return domain.Session{}, NewSessionAlreadyActiveError(fmt.Sprintf("user %d is already logged in", userID), err)
			}
			if attempt == m.cfg.CreateAttempts {
				// A failing login must not leave the user without the winner's session.
				break
			}
			level.Info(m.logger).Log("msg", "concurrent login won the race, replacing its session", "user_id", userID, "attempt", attempt)
			if existing, findErr := m.findByUserID(ctx, userID); findErr == nil {
				m.evict(ctx, existing)
			}
		default:
			return domain.Session{}, NewSessionCreationFailedError("unable to create session", err)
		}
		lastErr = err
	}
	return domain.Session{}, NewSessionCreationFailedError(
		fmt.Sprintf("unable to create session after %d attempts", m.cfg.CreateAttempts), lastErr)
}

// evict removes a stale session before re-login. Failures are logged and never fail the login.
func (m *sessionManager) evict(ctx context.Context, session domain.Session) {
	err := m.withTimeout(ctx, func(ctx context.Context) error {
		return m.sessions.Delete(ctx, session)
	})
	if err != nil && !IsEntityNotFound(err) {
		level.Warn(m.logger).Log("msg", "failed to delete existing session", "user_id", session.UserID, "err", err)
		return
	}
	if err == nil {
		m.metrics.Evictions.Inc()
		level.Info(m.logger).Log("msg", "existing session evicted", "user_id", session.UserID, "key", helpers.MaskKey(session.Key))
	}
}

func (m *sessionManager) Logout(ctx context.Context, key string) (confirmation domain.Confirmation, err error) {
	defer func() {
		m.metrics.Logouts.WithLabelValues("key", outcome(err)).Inc()
	}()

	if key == "" {
		return domain.Confirmation{}, NewSessionNotFoundError("no active session found with an empty key", nil)
	}

	var session domain.Session
	err = m.withTimeout(ctx, func(ctx context.Context) error {
		var findErr error
		session, findErr = m.sessions.FindByKey(ctx, key)
		return findErr
	})
	if err != nil {
		if IsEntityNotFound(err) {
			return domain.Confirmation{}, NewSessionNotFoundError(fmt.Sprintf("no active session found with key %s", helpers.MaskKey(key)), err)
		}
		return domain.Confirmation{}, NewInternalServerError("failed to look up session", err)
	}

	err = m.withTimeout(ctx, func(ctx context.Context) error {
		return m.sessions.Delete(ctx, session)
	})
	if err != nil {
		// Another logout removed it between lookup and delete.
		if IsEntityNotFound(err) {
			return domain.Confirmation{}, NewSessionNotFoundError(fmt.Sprintf("no active session found with key %s", helpers.MaskKey(key)), err)
		}
		return domain.Confirmation{}, NewInternalServerError("failed to delete session", err)
	}

	level.Info(m.logger).Log("msg", "logout", "user_id", session.UserID, "key", helpers.MaskKey(key))
	return domain.Confirmation{
		UserID:  session.UserID,
		Removed: true,
		Message: fmt.Sprintf("User %d logged out successfully.", session.UserID),
	}, nil
}

func (m *sessionManager) ForceLogout(ctx context.Context, userID int64) (confirmation domain.Confirmation, err error) {
	defer func() {
		m.metrics.Logouts.WithLabelValues("force", outcome(err)).Inc()
	}()

	nothingToDo := domain.Confirmation{
		UserID:  userID,
		Removed: false,
		Message: fmt.Sprintf("No active session for user %d.", userID),
	}

	session, err := m.findByUserID(ctx, userID)
	if err != nil {
		if IsEntityNotFound(err) {
			return nothingToDo, nil
		}
		return domain.Confirmation{}, NewInternalServerError("failed to look up session", err)
	}

	err = m.withTimeout(ctx, func(ctx context.Context) error {
		return m.sessions.Delete(ctx, session)
	})
	if err != nil {
		if IsEntityNotFound(err) {
			return nothingToDo, nil
		}
		return domain.Confirmation{}, NewInternalServerError("failed to delete session", err)
	}

	level.Info(m.logger).Log("msg", "forced logout", "user_id", userID, "key", helpers.MaskKey(session.Key))
	return domain.Confirmation{
		UserID:  userID,
		Removed: true,
		Message: fmt.Sprintf("User %d forcefully logged out.", userID),
	}, nil
}

func (m *sessionManager) findByUserID(ctx context.Context, userID int64) (domain.Session, error) {
	var session domain.Session
	err := m.withTimeout(ctx, func(ctx context.Context) error {
		var findErr error
		session, findErr = m.sessions.FindByUserID(ctx, userID)
		return findErr
	})
	return session, err
}

func (m *sessionManager) withTimeout(ctx context.Context, fn func(ctx context.Context) error) error {
	if m.cfg.StoreTimeout <= 0 {
		return fn(ctx)
	}
	ctx, cancel := context.WithTimeout(ctx, m.cfg.StoreTimeout)
	defer cancel()
	return fn(ctx)
}
