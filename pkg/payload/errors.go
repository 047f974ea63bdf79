package payload

import (
	"errors"
	"fmt"
)

var ErrBind = errors.New("payload: failed to bind form data")

// FieldError reports a value that could not be converted into its target field.
type FieldError struct {
	Field string
	Err   error
}

func (e *FieldError) Error() string {
	return fmt.Sprintf("%s: field %s: %v", ErrBind, e.Field, e.Err)
}

func (e *FieldError) Unwrap() []error {
	return []error{ErrBind, e.Err}
}
