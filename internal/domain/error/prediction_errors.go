package error

import "errors"

// Prediction domain errors.
var (
	// ErrPredictionNotFound is returned when no live prediction matches a key.
	ErrPredictionNotFound = errors.New("prediction not found")

	// ErrInvalidPredictionKey is returned when a key cannot be parsed.
	ErrInvalidPredictionKey = errors.New("invalid prediction key")

	// ErrPredictionNotExcluded is returned when restoring a key that was never dismissed.
	ErrPredictionNotExcluded = errors.New("prediction is not excluded")

	// ErrInvalidHorizon is returned when the requested horizon is out of range.
	ErrInvalidHorizon = errors.New("invalid projection horizon")

	// ErrDateOutsidePredictionMonth is returned when a conversion would move
	// the instance out of the prediction's month.
	ErrDateOutsidePredictionMonth = errors.New("date is outside the prediction month")
)

// PredictionErrorCode defines error codes for prediction errors.
// Format: PRD-XXYYYY where XX is the error kind and YYYY is specific error.
type PredictionErrorCode string

const (
	// Validation errors (01XXXX)
	ErrCodeInvalidPredictionKey PredictionErrorCode = "PRD-010001"
	ErrCodeInvalidHorizon       PredictionErrorCode = "PRD-010002"
	ErrCodeInvalidOverrides     PredictionErrorCode = "PRD-010003"
	ErrCodeDateOutsideMonth     PredictionErrorCode = "PRD-010004"

	// Not found errors (02XXXX)
	ErrCodePredictionNotFound    PredictionErrorCode = "PRD-020001"
	ErrCodePredictionNotExcluded PredictionErrorCode = "PRD-020002"
)

// PredictionError represents a prediction error with code and message.
type PredictionError struct {
	Code    PredictionErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *PredictionError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *PredictionError) Unwrap() error {
	return e.Err
}

// ErrorCode returns the error code.
func (e *PredictionError) ErrorCode() string { return string(e.Code) }

// ErrorMessage returns the client-facing message without the wrapped cause.
func (e *PredictionError) ErrorMessage() string { return e.Message }

// NewPredictionError creates a new PredictionError with the given code and message.
func NewPredictionError(code PredictionErrorCode, message string, err error) *PredictionError {
	return &PredictionError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
