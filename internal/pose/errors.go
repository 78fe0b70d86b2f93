// Package pose selects the preferred pose candidate and renders it as plain text.
package pose

import (
	"errors"
	"fmt"
)

// ErrEmptyInput is returned when there are no candidates to choose from.
var ErrEmptyInput = errors.New("pose suggestion list is empty")

// ErrMissingField matches any MissingFieldError via errors.Is.
var ErrMissingField = errors.New("pose candidate is missing a required field")

// MissingFieldError reports the first candidate lacking a required field.
type MissingFieldError struct {
	Index int
	Field string
}

func (e *MissingFieldError) Error() string {
	return fmt.Sprintf("pose candidate %d is missing field %q", e.Index, e.Field)
}

// Is reports whether target is ErrMissingField.
func (e *MissingFieldError) Is(target error) bool {
	return target == ErrMissingField
}
