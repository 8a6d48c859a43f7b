package entity

import (
	"errors"
	"fmt"
)

var (
	ErrMemoNotFound = errors.New("memo not found")
	ErrForbidden    = errors.New("memo belongs to another user")
)

// ValidationError reports missing or malformed input.
type ValidationError struct {
	Field  string
	Reason string
}

func NewValidationError(field, reason string) error {
	return &ValidationError{Field: field, Reason: reason}
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s %s", e.Field, e.Reason)
}

// StoreError is any failure reported by the data store. Its message is the
// store's own message.
type StoreError struct {
	Op  string
	Err error
}

func NewStoreError(op string, err error) error {
	return &StoreError{Op: op, Err: err}
}

func (e *StoreError) Error() string {
	return e.Err.Error()
}

func (e *StoreError) Unwrap() error {
	return e.Err
}

func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}

func IsStore(err error) bool {
	var se *StoreError
	return errors.As(err, &se)
}
