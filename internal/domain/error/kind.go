// Package error defines domain-specific errors for the planilha-financeira application.
package error

import (
	"errors"
	"strings"
)

// Kind classifies a domain error into the failure taxonomy shared by every
// aggregate. Error codes follow the format PREFIX-KKYYYY where KK selects
// the kind:
//
//	01 validation, 02 not found, 03 invalid operation, 04 persistence
type Kind int

const (
	KindUnknown Kind = iota
	KindValidation
	KindNotFound
	KindInvalidOperation
	KindPersistence
)

// String returns the kind name.
func (k Kind) String() string {
	switch k {
	case KindValidation:
		return "validation"
	case KindNotFound:
		return "not_found"
	case KindInvalidOperation:
		return "invalid_operation"
	case KindPersistence:
		return "persistence"
	default:
		return "unknown"
	}
}

// codedError is implemented by every XxxError type in this package.
type codedError interface {
	error
	ErrorCode() string
	ErrorMessage() string
}

// KindOf returns the taxonomy kind of err, or KindUnknown for foreign errors.
func KindOf(err error) Kind {
	var coded codedError
	if !errors.As(err, &coded) {
		return KindUnknown
	}
	return kindFromCode(coded.ErrorCode())
}

// CodeOf returns the error code carried by err, if any.
func CodeOf(err error) (string, bool) {
	var coded codedError
	if !errors.As(err, &coded) {
		return "", false
	}
	return coded.ErrorCode(), true
}

// MessageOf returns the message of the outermost domain error in err's chain,
// without the wrapped cause. Foreign errors yield their Error() text.
func MessageOf(err error) string {
	var coded codedError
	if !errors.As(err, &coded) {
		return err.Error()
	}
	return coded.ErrorMessage()
}

func kindFromCode(code string) Kind {
	idx := strings.IndexByte(code, '-')
	if idx < 0 || len(code) < idx+3 {
		return KindUnknown
	}
	switch code[idx+1 : idx+3] {
	case "01":
		return KindValidation
	case "02":
		return KindNotFound
	case "03":
		return KindInvalidOperation
	case "04":
		return KindPersistence
	default:
		return KindUnknown
	}
}
