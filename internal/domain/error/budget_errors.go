package error

import "errors"

// Budget domain errors.
var (
	// ErrBudgetNotFound is returned when a category budget does not exist.
	ErrBudgetNotFound = errors.New("budget not found")

	// ErrInvalidBudgetValue is returned when the ceiling is zero or negative.
	ErrInvalidBudgetValue = errors.New("budget value must be positive")

	// ErrInvalidAlertThreshold is returned when the threshold is outside (0, 100].
	ErrInvalidAlertThreshold = errors.New("alert threshold must be between 1 and 100")

	// ErrNotAuthorizedToModifyBudget is returned when the budget belongs to another owner.
	ErrNotAuthorizedToModifyBudget = errors.New("not authorized to modify budget")
)

// BudgetErrorCode defines error codes for budget errors.
// Format: BGT-XXYYYY where XX is the error kind and YYYY is specific error.
type BudgetErrorCode string

const (
	// Validation errors (01XXXX)
	ErrCodeInvalidBudgetValue    BudgetErrorCode = "BGT-010001"
	ErrCodeInvalidAlertThreshold BudgetErrorCode = "BGT-010002"
	ErrCodeInvalidBudgetMonth    BudgetErrorCode = "BGT-010003"
	ErrCodeMissingBudgetFields   BudgetErrorCode = "BGT-010004"

	// Not found errors (02XXXX)
	ErrCodeBudgetNotFound BudgetErrorCode = "BGT-020001"

	// Invalid operations (03XXXX)
	ErrCodeNotAuthorizedBudget BudgetErrorCode = "BGT-030001"
)

// BudgetError represents a budget error with code and message.
type BudgetError struct {
	Code    BudgetErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *BudgetError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *BudgetError) Unwrap() error {
	return e.Err
}

// ErrorCode returns the error code.
func (e *BudgetError) ErrorCode() string { return string(e.Code) }

// ErrorMessage returns the client-facing message without the wrapped cause.
func (e *BudgetError) ErrorMessage() string { return e.Message }

// NewBudgetError creates a new BudgetError with the given code and message.
func NewBudgetError(code BudgetErrorCode, message string, err error) *BudgetError {
	return &BudgetError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
