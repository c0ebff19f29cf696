// Package utils provides general-purpose helper utilities
// used across different parts of the registry.
// Includes tools for working with context, type-safe keys, cédula
// fingerprints, HTTP response writing, HTTP client initialization, JWT
// token generation and validation.
package utils

import (
	"context"

	"github.com/google/uuid"
)

// contextKey is a private type for context keys.
// Using a dedicated type instead of a plain string prevents key collisions
// with other packages that may use string-based keys in the context.
type contextKey string

// String returns the string representation of the context key.
// Implements the fmt.Stringer interface.
func (c contextKey) String() string {
	return string(c)
}

// OperatorCtxKey is the key under which the auth middleware stores the
// subject of a verified bearer token.
var OperatorCtxKey = contextKey("operator")

// TraceIDCtxKey is the key under which the trace middleware stores the
// request trace ID.
var TraceIDCtxKey = contextKey("traceID")

// GetOperatorFromContext retrieves the authenticated operator name.
// ok is false when the request was not authenticated.
func GetOperatorFromContext(ctx context.Context) (string, bool) {
	operator, ok := ctx.Value(OperatorCtxKey).(string)
	return operator, ok && operator != ""
}

// GetTraceIDFromContext retrieves the request trace ID.
func GetTraceIDFromContext(ctx context.Context) (string, bool) {
	traceID, ok := ctx.Value(TraceIDCtxKey).(string)
	return traceID, ok && traceID != ""
}

// NewTraceID returns a time-ordered UUIDv7, or a random UUIDv4 if the clock
// source fails.
func NewTraceID() string {
	v7, err := uuid.NewV7()
	if err != nil {
		return uuid.NewString()
	}

	return v7.String()
}
