package error

import "errors"

// Dashboard domain errors.
var (
	// ErrInvalidMonthRange is returned when a month range is empty, reversed or malformed.
	ErrInvalidMonthRange = errors.New("invalid month range")

	// ErrMonthRangeTooLong is returned when a month range exceeds the allowed span.
	ErrMonthRangeTooLong = errors.New("month range too long")
)

// DashboardErrorCode defines error codes for dashboard errors.
// Format: DSH-XXYYYY where XX is the error kind and YYYY is specific error.
type DashboardErrorCode string

const (
	// Validation errors (01XXXX)
	ErrCodeInvalidMonthRange DashboardErrorCode = "DSH-010001"
	ErrCodeMonthRangeTooLong DashboardErrorCode = "DSH-010002"
)

// DashboardError represents a dashboard error with code and message.
type DashboardError struct {
	Code    DashboardErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *DashboardError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *DashboardError) Unwrap() error {
	return e.Err
}

// ErrorCode returns the error code.
func (e *DashboardError) ErrorCode() string { return string(e.Code) }

// ErrorMessage returns the client-facing message without the wrapped cause.
func (e *DashboardError) ErrorMessage() string { return e.Message }

// NewDashboardError creates a new DashboardError with the given code and message.
func NewDashboardError(code DashboardErrorCode, message string, err error) *DashboardError {
	return &DashboardError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
