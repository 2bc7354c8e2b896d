package error

import "errors"

// Email domain errors.
var (
	// ErrEmailQueueFailed is returned when an email fails to be queued.
	ErrEmailQueueFailed = errors.New("failed to queue email")

	// ErrEmailSendFailed is returned when an email fails to be sent.
	ErrEmailSendFailed = errors.New("failed to send email")

	// ErrInvalidTemplate is returned when an invalid email template is specified.
	ErrInvalidTemplate = errors.New("invalid email template")

	// ErrEmailJobNotFound is returned when an email job is not found.
	ErrEmailJobNotFound = errors.New("email job not found")
)

// EmailErrorCode defines error codes for email errors.
// Format: EML-XXYYYY where XX is the error kind and YYYY is specific error.
type EmailErrorCode string

const (
	ErrCodeInvalidTemplate      EmailErrorCode = "EML-010001"
	ErrCodeTemplateRenderFailed EmailErrorCode = "EML-010002"
	ErrCodeEmailJobNotFound     EmailErrorCode = "EML-020001"
	ErrCodeEmailRejected        EmailErrorCode = "EML-030001"
	ErrCodeEmailQueueFailed     EmailErrorCode = "EML-040001"
	ErrCodeEmailSendFailed      EmailErrorCode = "EML-040002"
)

// EmailError represents an email error with code and message.
type EmailError struct {
	Code    EmailErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *EmailError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *EmailError) Unwrap() error {
	return e.Err
}

// ErrorCode returns the error code.
func (e *EmailError) ErrorCode() string { return string(e.Code) }

// ErrorMessage returns the client-facing message without the wrapped cause.
func (e *EmailError) ErrorMessage() string { return e.Message }

// NewEmailError creates a new EmailError with the given code and message.
func NewEmailError(code EmailErrorCode, message string, err error) *EmailError {
	return &EmailError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
