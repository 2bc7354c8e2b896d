package error

import "errors"

// ErrInvalidMonth is returned when a month string is not in YYYY-MM form.
var ErrInvalidMonth = errors.New("invalid month")

// SessionErrorCode defines error codes for session errors.
type SessionErrorCode string

const (
	ErrCodeInvalidSessionMonth SessionErrorCode = "SES-010001"
	ErrCodeSessionStore        SessionErrorCode = "SES-040001"
)

// SessionError represents a session error with code and message.
type SessionError struct {
	Code    SessionErrorCode
	Message string
	Err     error
}

func (e *SessionError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

func (e *SessionError) Unwrap() error { return e.Err }

func (e *SessionError) ErrorCode() string { return string(e.Code) }

// ErrorMessage returns the client-facing message without the wrapped cause.
func (e *SessionError) ErrorMessage() string { return e.Message }

// NewSessionError creates a new SessionError.
func NewSessionError(code SessionErrorCode, message string, err error) *SessionError {
	return &SessionError{Code: code, Message: message, Err: err}
}
