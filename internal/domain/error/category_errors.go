package error

import "errors"

// Category domain errors.
var (
	// ErrCategoryNotFound is returned when a category is not found in the system.
	ErrCategoryNotFound = errors.New("category not found")

	// ErrCategoryNameExists is returned when attempting to create a category with an existing name.
	ErrCategoryNameExists = errors.New("category name already exists")

	// ErrCategoryNameTooLong is returned when the category name exceeds the maximum length.
	ErrCategoryNameTooLong = errors.New("category name too long")

	// ErrInvalidCategoryLimit is returned when a limit is negative or a percentage exceeds 100.
	ErrInvalidCategoryLimit = errors.New("invalid category limit")

	// ErrCategoryNotHidden is returned when showing a default category that is visible.
	ErrCategoryNotHidden = errors.New("category is not hidden")
)

// CategoryErrorCode defines error codes for category errors.
// Format: CAT-XXYYYY where XX is the error kind and YYYY is specific error.
type CategoryErrorCode string

const (
	// Validation errors (01XXXX)
	ErrCodeCategoryNameTooLong   CategoryErrorCode = "CAT-010001"
	ErrCodeInvalidCategoryLimit  CategoryErrorCode = "CAT-010002"
	ErrCodeMissingCategoryFields CategoryErrorCode = "CAT-010003"

	// Not found errors (02XXXX)
	ErrCodeCategoryNotFound  CategoryErrorCode = "CAT-020001"
	ErrCodeCategoryNotHidden CategoryErrorCode = "CAT-020002"

	// Invalid operations (03XXXX)
	ErrCodeCategoryNameExists CategoryErrorCode = "CAT-030001"
)

// CategoryError represents a category error with code and message.
type CategoryError struct {
	Code    CategoryErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *CategoryError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *CategoryError) Unwrap() error {
	return e.Err
}

// ErrorCode returns the error code.
func (e *CategoryError) ErrorCode() string { return string(e.Code) }

// ErrorMessage returns the client-facing message without the wrapped cause.
func (e *CategoryError) ErrorMessage() string { return e.Message }

// NewCategoryError creates a new CategoryError with the given code and message.
func NewCategoryError(code CategoryErrorCode, message string, err error) *CategoryError {
	return &CategoryError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
