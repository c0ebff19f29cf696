package adapter

import (
	"errors"
	"strings"
)

var (
	ErrBadRequest          = errors.New("bad request")
	ErrUnauthorized        = errors.New("client unauthorized")
	ErrForbidden           = errors.New("forbidden")
	ErrNotFound            = errors.New("not found")
	ErrConflict            = errors.New("conflict")
	ErrTooManyRequests     = errors.New("too many requests")
	ErrBadGateway          = errors.New("bad gateway")
	ErrInternalServerError = errors.New("internal server error")
	ErrUnexpectedStatus    = errors.New("unexpected status")
)

// ServerError is a non-2xx answer from the registry. Kind is one of the
// sentinel errors above.
type ServerError struct {
	Kind       error
	StatusCode int
	Message    string
}

func (e *ServerError) Error() string {
	if e.Message == "" {
		return e.Kind.Error()
	}
	return e.Kind.Error() + ": " + e.Message
}

func (e *ServerError) Unwrap() error {
	return e.Kind
}

// Message returns the server-provided message carried by err, or err's own
// text when it did not come from the server.
func Message(err error) string {
	if err == nil {
		return ""
	}

	var serverErr *ServerError
	if errors.As(err, &serverErr) && strings.TrimSpace(serverErr.Message) != "" {
		return serverErr.Message
	}
	return err.Error()
}
