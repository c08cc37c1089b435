package apierror

import (
	"errors"
	"testing"

	"github.com/go-playground/validator/v10"
)

type request struct {
	Name string `validate:"required,max=3"`
	Date string `validate:"required,datetime=2006-01-02"`
}

func TestErrorPrefixes(t *testing.T) {
	if got := MissingFieldsError.Error(); got != "Error: All fields (name, identification_number, phone, date) are required." {
		t.Errorf("unexpected missing fields message %q", got)
	}
	if got := InvalidDateError.Error(); got != "Error: Invalid date format. Please use ISO format (YYYY-MM-DDTHH:MM:SS)." {
		t.Errorf("unexpected invalid date message %q", got)
	}
	if got := NewStorageError(errors.New("disk I/O error")).Error(); got != "Database error: disk I/O error" {
		t.Errorf("unexpected storage message %q", got)
	}
	if got := NewNotAStringError("phone").Error(); got != "Error: Field 'phone' must be a string." {
		t.Errorf("unexpected not-a-string message %q", got)
	}
	if got := NewUnexpectedError(errors.New("boom")).Error(); got != "Error: boom" {
		t.Errorf("unexpected unexpected-error message %q", got)
	}
}

func TestFromValidationErrorPrefersRequired(t *testing.T) {
	err := validator.New().Struct(&request{Name: "toolong"})
	got := FromValidationError(err)
	if got != MissingFieldsError {
		t.Fatalf("expected missing fields error, got %v", got)
	}
	if got.Kind() != KindValidation {
		t.Fatalf("expected validation kind, got %s", got.Kind())
	}
}

func TestFromValidationErrorMaxLength(t *testing.T) {
	err := validator.New().Struct(&request{Name: "toolong", Date: "2024-01-01"})
	got := FromValidationError(err)
	if got.Error() != "Error: Field 'Name' must be at most 3 characters." {
		t.Fatalf("unexpected message %q", got.Error())
	}
}

func TestFromValidationErrorNonValidatorError(t *testing.T) {
	got := FromValidationError(errors.New("weird"))
	if got.Kind() != KindUnexpected {
		t.Fatalf("expected unexpected kind, got %s", got.Kind())
	}
}
