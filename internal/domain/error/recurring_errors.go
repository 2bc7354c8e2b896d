package error

import "errors"

// Recurrence rule domain errors.
var (
	// ErrRecurringRuleNotFound is returned when a recurrence rule does not exist.
	ErrRecurringRuleNotFound = errors.New("recurring rule not found")

	// ErrInvalidRecurrenceKind is returned for an unknown recurrence kind.
	ErrInvalidRecurrenceKind = errors.New("invalid recurrence kind")

	// ErrInvalidRuleValue is returned when the rule magnitude is zero or negative.
	ErrInvalidRuleValue = errors.New("rule value must be positive")

	// ErrInvalidDayOfMonth is returned when the day anchor is outside [1, 31].
	ErrInvalidDayOfMonth = errors.New("day of month must be between 1 and 31")

	// ErrMissingInstallments is returned when an installment rule has no positive installment count.
	ErrMissingInstallments = errors.New("installment rules require total installments greater than zero")

	// ErrEndBeforeStart is returned when the end date precedes the start date.
	ErrEndBeforeStart = errors.New("end date must not be before start date")

	// ErrMissingIncomeReference is returned when a variable_by_income rule names no income.
	ErrMissingIncomeReference = errors.New("variable_by_income rules require a selected income")

	// ErrMissingStartDate is returned when the rule has no start date.
	ErrMissingStartDate = errors.New("start date is required")

	// ErrNotAuthorizedToModifyRule is returned when the rule belongs to another owner.
	ErrNotAuthorizedToModifyRule = errors.New("not authorized to modify recurring rule")
)

// RecurringErrorCode defines error codes for recurrence rule errors.
// Format: RUL-XXYYYY where XX is the error kind and YYYY is specific error.
type RecurringErrorCode string

const (
	// Validation errors (01XXXX)
	ErrCodeInvalidRecurrenceKind RecurringErrorCode = "RUL-010001"
	ErrCodeInvalidRuleValue      RecurringErrorCode = "RUL-010002"
	ErrCodeInvalidDayOfMonth     RecurringErrorCode = "RUL-010003"
	ErrCodeMissingInstallments   RecurringErrorCode = "RUL-010004"
	ErrCodeEndBeforeStart        RecurringErrorCode = "RUL-010005"
	ErrCodeMissingIncomeRef      RecurringErrorCode = "RUL-010006"
	ErrCodeInvalidRuleType       RecurringErrorCode = "RUL-010007"
	ErrCodeMissingRuleFields     RecurringErrorCode = "RUL-010008"

	// Not found errors (02XXXX)
	ErrCodeRecurringRuleNotFound RecurringErrorCode = "RUL-020001"

	// Invalid operations (03XXXX)
	ErrCodeNotAuthorizedRule RecurringErrorCode = "RUL-030001"
)

// RecurringError represents a recurrence rule error with code and message.
type RecurringError struct {
	Code    RecurringErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *RecurringError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *RecurringError) Unwrap() error {
	return e.Err
}

// ErrorCode returns the error code.
func (e *RecurringError) ErrorCode() string { return string(e.Code) }

// ErrorMessage returns the client-facing message without the wrapped cause.
func (e *RecurringError) ErrorMessage() string { return e.Message }

// NewRecurringError creates a new RecurringError with the given code and message.
func NewRecurringError(code RecurringErrorCode, message string, err error) *RecurringError {
	return &RecurringError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
