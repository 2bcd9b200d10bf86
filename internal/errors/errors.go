package errors

import (
	"errors"
)

var (
	ErrInvalidCredentials      = errors.New("invalid email or password")
	ErrUserNotFound            = errors.New("user not found")
	ErrPinMismatch             = errors.New("incorrect PIN")
	ErrSessionExpired          = errors.New("session expired or credentials changed")
	ErrEmailAlreadyInUse       = errors.New("email already registered")
	ErrDuplicateScriptURL      = errors.New("script URL already in use")
	ErrDatabaseLimitReached    = errors.New("database limit reached")
	ErrEditLimitReached        = errors.New("script URL edit limit reached")
	ErrTokenNotFound           = errors.New("database not found or invalid token")
	ErrMissingScriptURL        = errors.New("server configuration error")
	ErrInvalidUpstream         = errors.New("invalid response from upstream script")
	ErrStoreBusy               = errors.New("server busy, please try again")
	ErrInvalidAdminCredentials = errors.New("invalid admin credentials")
	ErrAdminNotConfigured      = errors.New("admin access is not configured")
)

// Remote carries a failure message reported by one of the remote scripts.
// These surface to the caller verbatim.
type Remote struct {
	Message string
}

func (e *Remote) Error() string {
	return e.Message
}
