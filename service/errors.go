package service

import (
	"errors"
	"fmt"
)

const (
	ErrInternalServerError = "internal_server_error"
	ErrBadParameter        = "bad_parameter"
	ErrEntityNotFound      = "entity_not_found"

	ErrUserNotFound          = "user_not_found"
	ErrInvalidCredentials    = "invalid_credentials"
	ErrSessionAlreadyActive  = "session_already_active"
	ErrSessionCreationFailed = "session_creation_failed"
	ErrSessionNotFound       = "session_not_found"
)

// ErrUserSessionExists is returned by SessionStore.Create when the user already has a live session.
var ErrUserSessionExists = errors.New("user already has a live session")

// ErrSessionKeyExists is returned by SessionStore.Create when the key is held by another live session.
var ErrSessionKeyExists = errors.New("session key already in use")

// SessionError is the error returned by the session manager and the store adapters.
// Code is machine-readable and mapped to HTTP and gRPC status codes; Inner is never shown to API consumers.
type SessionError struct {
	Code    string `json:"code,omitempty"`
	Message string `json:"message"`
	Inner   error  `json:"-"`
}

func (e SessionError) Error() string {
	if e.Inner != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Inner)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e SessionError) Unwrap() error { return e.Inner }

// ToSessionError returns the SessionError in err's chain, or false.
func ToSessionError(err error) (SessionError, bool) {
	var e SessionError
	if errors.As(err, &e) {
		return e, true
	}
	return SessionError{}, false
}

// ErrorCode returns the code of the SessionError in err's chain, or "".
func ErrorCode(err error) string {
	e, ok := ToSessionError(err)
	if !ok {
		return ""
	}
	return e.Code
}

func isCode(err error, code string) bool {
	e, ok := ToSessionError(err)
	return ok && e.Code == code
}

func NewEntityNotFoundError(message string, inner error) SessionError {
	return SessionError{Code: ErrEntityNotFound, Message: message, Inner: inner}
}

func IsEntityNotFound(err error) bool { return isCode(err, ErrEntityNotFound) }

func NewInternalServerError(message string, inner error) SessionError {
	return SessionError{Code: ErrInternalServerError, Message: message, Inner: inner}
}

func IsInternalServerError(err error) bool { return isCode(err, ErrInternalServerError) }

func NewBadParameterError(message string, inner error) SessionError {
	return SessionError{Code: ErrBadParameter, Message: message, Inner: inner}
}

func IsBadParameter(err error) bool { return isCode(err, ErrBadParameter) }

func NewUserNotFoundError(message string, inner error) SessionError {
	return SessionError{Code: ErrUserNotFound, Message: message, Inner: inner}
}

func IsUserNotFound(err error) bool { return isCode(err, ErrUserNotFound) }

func NewInvalidCredentialsError(message string, inner error) SessionError {
	return SessionError{Code: ErrInvalidCredentials, Message: message, Inner: inner}
}

func IsInvalidCredentials(err error) bool { return isCode(err, ErrInvalidCredentials) }

func NewSessionAlreadyActiveError(message string, inner error) SessionError {
	return SessionError{Code: ErrSessionAlreadyActive, Message: message, Inner: inner}
}

func IsSessionAlreadyActive(err error) bool { return isCode(err, ErrSessionAlreadyActive) }

func NewSessionCreationFailedError(message string, inner error) SessionError {
	return SessionError{Code: ErrSessionCreationFailed, Message: message, Inner: inner}
}

func IsSessionCreationFailed(err error) bool { return isCode(err, ErrSessionCreationFailed) }

func NewSessionNotFoundError(message string, inner error) SessionError {
	return SessionError{Code: ErrSessionNotFound, Message: message, Inner: inner}
}

func IsSessionNotFound(err error) bool { return isCode(err, ErrSessionNotFound) }
