package error

import "errors"

// ErrPersistence is wrapped by every PersistenceError.
var ErrPersistence = errors.New("persistence failure")

// PersistenceErrorCode defines error codes for storage failures.
type PersistenceErrorCode string

const (
	ErrCodePersistenceFailure PersistenceErrorCode = "PER-040001"
	ErrCodeCacheFailure       PersistenceErrorCode = "PER-040002"
)

// PersistenceError reports that a storage collaborator failed during Op.
type PersistenceError struct {
	Code PersistenceErrorCode
	Op   string
	Err  error
}

// Error implements the error interface.
func (e *PersistenceError) Error() string {
	if e.Err != nil {
		return "failed to " + e.Op + ": " + e.Err.Error()
	}
	return "failed to " + e.Op
}

// Unwrap returns the underlying errors, including the ErrPersistence sentinel.
func (e *PersistenceError) Unwrap() []error {
	if e.Err == nil {
		return []error{ErrPersistence}
	}
	return []error{ErrPersistence, e.Err}
}

// ErrorCode returns the error code.
func (e *PersistenceError) ErrorCode() string { return string(e.Code) }

// ErrorMessage returns the client-facing message without the wrapped cause.
func (e *PersistenceError) ErrorMessage() string { return "failed to " + e.Op }

// NewPersistenceError wraps a storage failure.
func NewPersistenceError(op string, err error) *PersistenceError {
	return &PersistenceError{
		Code: ErrCodePersistenceFailure,
		Op:   op,
		Err:  err,
	}
}

// NewCacheError wraps a session cache failure.
func NewCacheError(op string, err error) *PersistenceError {
	return &PersistenceError{
		Code: ErrCodeCacheFailure,
		Op:   op,
		Err:  err,
	}
}
