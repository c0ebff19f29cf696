// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import "errors"

// Sentinel errors raised by the transport layer itself. Callers can match
// against them with [errors.Is].
var (
	// ErrEmptyAuthorizationHeader is returned by the auth middleware when the
	// incoming request does not include an "Authorization" header at all.
	ErrEmptyAuthorizationHeader = errors.New("empty `Authorization` header")

	// ErrInvalidPatientID is returned when the {id} path segment is not a
	// positive integer.
	ErrInvalidPatientID = errors.New("invalid patient id")

	// ErrInvalidJSON is returned when a request body cannot be decoded.
	ErrInvalidJSON = errors.New("invalid JSON body")

	// ErrInvalidFilter is returned when a listing query parameter is malformed.
	ErrInvalidFilter = errors.New("invalid listing filter")

	// ErrTooManyRequests is returned by the write limiter.
	ErrTooManyRequests = errors.New("too many requests")
)
