package validator

import (
	"errors"
	"fmt"
)

// Reason says why a field failed validation.
type Reason string

const (
	ReasonRequired Reason = "required"
	ReasonEmpty    Reason = "empty"
	ReasonType     Reason = "type"
)

// FieldError reports a single invalid input field.
type FieldError struct {
	Field  string
	Reason Reason
}

func (e *FieldError) Error() string {
	switch e.Reason {
	case ReasonEmpty:
		return fmt.Sprintf("Field '%s' must not be empty", e.Field)
	case ReasonType:
		return fmt.Sprintf("Field '%s' must be a string", e.Field)
	default:
		return fmt.Sprintf("Field '%s' is required", e.Field)
	}
}

// Required fails when value is absent or empty.
func Required(field string, value *string) error {
	if value == nil || *value == "" {
		return &FieldError{Field: field, Reason: ReasonRequired}
	}
	return nil
}

// NotEmpty fails only when value is present and empty; an absent value passes.
func NotEmpty(field string, value *string) error {
	if value != nil && *value == "" {
		return &FieldError{Field: field, Reason: ReasonEmpty}
	}
	return nil
}

// WrongType reports a field that holds a value of the wrong JSON type.
func WrongType(field string) *FieldError {
	return &FieldError{Field: field, Reason: ReasonType}
}

// AsFieldError extracts a FieldError from err's chain.
func AsFieldError(err error) (*FieldError, bool) {
	var fe *FieldError
	if errors.As(err, &fe) {
		return fe, true
	}
	return nil, false
}
