package core

import (
	"strings"

	"github.com/pkg/errors"
)

// FieldError is used to indicate an error with a specific record field.
type FieldError struct {
	Field string
	Error string
}

// ValidationError carries the full list of reasons a candidate record was
// rejected. It is expected and non-fatal: the backing store is left unchanged
// and the messages are meant to be displayed verbatim.
type ValidationError struct {
	Err      error
	Fields   []FieldError
	Messages []string
}

func NewValidationError(err error, flds ...FieldError) error {
	return &ValidationError{Err: err, Fields: flds}
}

// NewValidationErrors wraps a non-empty list of violation messages.
func NewValidationErrors(msgs ...string) error {
	return &ValidationError{Err: errors.New(strings.Join(msgs, "; ")), Messages: msgs}
}

func (err ValidationError) Error() string {
	if err.Err == nil {
		return ""
	}
	return err.Err.Error()
}

// StoreError marks a backing-store failure (connectivity, permission, quota).
// It is fatal for the current operation; no retry is attempted here.
type StoreError struct {
	Err error
}

func NewStoreError(err error, msg string) error {
	return &StoreError{Err: errors.Wrap(err, msg)}
}

func (err StoreError) Error() string {
	return err.Err.Error()
}

func IsStoreError(err error) bool {
	_, ok := errors.Cause(err).(*StoreError)
	return ok
}

type shutdown struct {
	message string
}

func NewShutdownError(msg string) error {
	return &shutdown{message: msg}
}

func (s shutdown) Error() string {
	return s.message
}

func IsShutdown(err error) bool {
	_, ok := errors.Cause(err).(*shutdown)
	return ok
}
