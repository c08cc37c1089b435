// Package apierror holds the failure outcomes of a tool call. Each error
// carries a Kind so callers can branch on it; Error renders the message
// callers of the tool see.
package apierror

import (
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"
)

type Kind int

const (
	KindValidation Kind = iota + 1
	KindStorage
	KindUnexpected
)

func (k Kind) String() string {
	switch k {
	case KindValidation:
		return "validation"
	case KindStorage:
		return "storage"
	case KindUnexpected:
		return "unexpected"
	default:
		return "unknown"
	}
}

type ErrorResponse interface {
	error
	Kind() Kind
	Message() string
}

type simpleError struct {
	kind    Kind
	message string
}

func (e *simpleError) Kind() Kind      { return e.kind }
func (e *simpleError) Message() string { return e.message }

func (e *simpleError) Error() string {
	if e.kind == KindStorage {
		return "Database error: " + e.message
	}
	return "Error: " + e.message
}

var (
	MissingFieldsError = NewValidation("All fields (name, identification_number, phone, date) are required.")
	InvalidDateError   = NewValidation("Invalid date format. Please use ISO format (YYYY-MM-DDTHH:MM:SS).")
)

func NewValidation(message string) ErrorResponse {
	return &simpleError{kind: KindValidation, message: message}
}

func NewFieldTooLongError(field, limit string) ErrorResponse {
	return NewValidation(fmt.Sprintf("Field '%s' must be at most %s characters.", field, limit))
}

func NewNotAStringError(field string) ErrorResponse {
	return NewValidation(fmt.Sprintf("Field '%s' must be a string.", field))
}

func NewStorageError(err error) ErrorResponse {
	return &simpleError{kind: KindStorage, message: err.Error()}
}

func NewUnexpectedError(err error) ErrorResponse {
	return &simpleError{kind: KindUnexpected, message: err.Error()}
}

// FromValidationError maps validator failures to a single outcome. A missing
// field wins over a bad date, which wins over an over-long field, no matter
// which field failed first.
func FromValidationError(err error) ErrorResponse {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return NewUnexpectedError(err)
	}

	var dateErr, lengthErr ErrorResponse
	for _, fe := range verrs {
		switch fe.Tag() {
		case "required":
			return MissingFieldsError
		case "iso8601":
			dateErr = InvalidDateError
		case "max":
			if lengthErr == nil {
				lengthErr = NewFieldTooLongError(fe.Field(), fe.Param())
			}
		default:
			if lengthErr == nil {
				lengthErr = NewValidation(fmt.Sprintf("Field '%s' is invalid.", fe.Field()))
			}
		}
	}
	if dateErr != nil {
		return dateErr
	}
	return lengthErr
}
