package models

import "fmt"

// FieldFormatError reports a field value that failed validation.
type FieldFormatError struct {
	Field      string
	Value      string
	Constraint string
}

func (e *FieldFormatError) Error() string {
	return fmt.Sprintf("invalid %s %q: %s", e.Field, e.Value, e.Constraint)
}

func fieldError(field, value, constraint string) *FieldFormatError {
	return &FieldFormatError{Field: field, Value: value, Constraint: constraint}
}
