package error

import "errors"

// Goal domain errors.
var (
	// ErrGoalNotFound is returned when a goal is not found in the system.
	ErrGoalNotFound = errors.New("goal not found")

	// ErrInvalidTargetValue is returned when the target value is zero or negative.
	ErrInvalidTargetValue = errors.New("invalid target value")

	// ErrInvalidCurrentValue is returned when the accumulated value is negative.
	ErrInvalidCurrentValue = errors.New("current value cannot be negative")

	// ErrInvalidContribution is returned when a contribution is zero or would overdraw the goal.
	ErrInvalidContribution = errors.New("invalid contribution amount")

	// ErrMissingGoalName is returned when the goal name is empty.
	ErrMissingGoalName = errors.New("goal name is required")

	// ErrUnauthorizedGoalAccess is returned when user is not authorized to access a goal.
	ErrUnauthorizedGoalAccess = errors.New("unauthorized access to goal")
)

// GoalErrorCode defines error codes for goal errors.
// Format: GOL-XXYYYY where XX is the error kind and YYYY is specific error.
type GoalErrorCode string

const (
	// Validation errors (01XXXX)
	ErrCodeInvalidTargetValue  GoalErrorCode = "GOL-010001"
	ErrCodeInvalidCurrentValue GoalErrorCode = "GOL-010002"
	ErrCodeInvalidContribution GoalErrorCode = "GOL-010003"
	ErrCodeMissingGoalFields   GoalErrorCode = "GOL-010004"

	// Not found errors (02XXXX)
	ErrCodeGoalNotFound GoalErrorCode = "GOL-020001"

	// Invalid operations (03XXXX)
	ErrCodeUnauthorizedGoalAccess GoalErrorCode = "GOL-030001"
)

// GoalError represents a goal error with code and message.
type GoalError struct {
	Code    GoalErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *GoalError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *GoalError) Unwrap() error {
	return e.Err
}

// ErrorCode returns the error code.
func (e *GoalError) ErrorCode() string { return string(e.Code) }

// ErrorMessage returns the client-facing message without the wrapped cause.
func (e *GoalError) ErrorMessage() string { return e.Message }

// NewGoalError creates a new GoalError with the given code and message.
func NewGoalError(code GoalErrorCode, message string, err error) *GoalError {
	return &GoalError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
