package error

import "errors"

// Transaction domain errors.
var (
	// ErrTransactionNotFound is returned when a transaction is not found in the system.
	ErrTransactionNotFound = errors.New("transaction not found")

	// ErrNotAuthorizedToModifyTransaction is returned when the transaction belongs to another owner.
	ErrNotAuthorizedToModifyTransaction = errors.New("not authorized to modify transaction")

	// ErrInvalidTransactionType is returned when the direction is neither income nor expense.
	ErrInvalidTransactionType = errors.New("invalid transaction type")

	// ErrInvalidTransactionDate is returned when the transaction date is missing or invalid.
	ErrInvalidTransactionDate = errors.New("invalid transaction date")

	// ErrInvalidTransactionValue is returned when the value is zero or negative.
	ErrInvalidTransactionValue = errors.New("invalid transaction value")

	// ErrMissingTransactionCategory is returned when no category is given.
	ErrMissingTransactionCategory = errors.New("category is required")

	// ErrDescriptionTooLong is returned when the description exceeds the maximum length.
	ErrDescriptionTooLong = errors.New("description too long")

	// ErrPredictionNotMutable is returned when a mutation targets a predicted transaction.
	ErrPredictionNotMutable = errors.New("predicted transactions cannot be modified")

	// ErrInvalidImportFile is returned when an uploaded CSV cannot be parsed.
	ErrInvalidImportFile = errors.New("invalid import file")

	// ErrRecurringInstanceMoved is returned when a rule's real instance is
	// moved to another month.
	ErrRecurringInstanceMoved = errors.New("recurring instances cannot change month")
)

// TransactionErrorCode defines error codes for transaction errors.
// Format: TXN-XXYYYY where XX is the error kind and YYYY is specific error.
type TransactionErrorCode string

const (
	// Validation errors (01XXXX)
	ErrCodeInvalidTransactionType   TransactionErrorCode = "TXN-010001"
	ErrCodeInvalidTransactionDate   TransactionErrorCode = "TXN-010002"
	ErrCodeInvalidTransactionValue  TransactionErrorCode = "TXN-010003"
	ErrCodeMissingTransactionFields TransactionErrorCode = "TXN-010004"
	ErrCodeDescriptionTooLong       TransactionErrorCode = "TXN-010005"
	ErrCodeInvalidMonth             TransactionErrorCode = "TXN-010006"
	ErrCodeInvalidImportFile        TransactionErrorCode = "TXN-010007"

	// Not found errors (02XXXX)
	ErrCodeTransactionNotFound TransactionErrorCode = "TXN-020001"

	// Invalid operations (03XXXX)
	ErrCodeNotAuthorizedTransaction TransactionErrorCode = "TXN-030001"
	ErrCodePredictionNotMutable     TransactionErrorCode = "TXN-030002"
	ErrCodeRecurringInstanceMoved   TransactionErrorCode = "TXN-030003"
)

// TransactionError represents a transaction error with code and message.
type TransactionError struct {
	Code    TransactionErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *TransactionError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *TransactionError) Unwrap() error {
	return e.Err
}

// ErrorCode returns the error code.
func (e *TransactionError) ErrorCode() string { return string(e.Code) }

// ErrorMessage returns the client-facing message without the wrapped cause.
func (e *TransactionError) ErrorMessage() string { return e.Message }

// NewTransactionError creates a new TransactionError with the given code and message.
func NewTransactionError(code TransactionErrorCode, message string, err error) *TransactionError {
	return &TransactionError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
