// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"errors"
	"fmt"
)

// FieldError is the outcome of a failed validation rule. It is a normal
// classification result, not a server fault.
type FieldError struct {
	// Field is the candidate field the rule inspected (one of the Field* constants).
	Field string

	// Code is a short machine-friendly reason, used as a metric label.
	Code string

	// Message is the exact client-facing diagnostic.
	Message string

	// Err is the sentinel (or *cedula.Reason) describing the failure.
	Err error
}

func newFieldError(field, code, message string, err error) *FieldError {
	return &FieldError{Field: field, Code: code, Message: message, Err: err}
}

// Error returns the client-facing message.
func (e *FieldError) Error() string {
	return e.Message
}

// Unwrap exposes the underlying sentinel to errors.Is and errors.As.
func (e *FieldError) Unwrap() error {
	return e.Err
}

// String renders the error with its field for logs.
func (e *FieldError) String() string {
	return fmt.Sprintf("%s[%s]: %s", e.Field, e.Code, e.Message)
}

// Message returns the client diagnostic carried by err.
// It reports false when err is nil or is not a [*FieldError].
func Message(err error) (string, bool) {
	var fieldErr *FieldError
	if errors.As(err, &fieldErr) {
		return fieldErr.Message, true
	}
	return "", false
}
