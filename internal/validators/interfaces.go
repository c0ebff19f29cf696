// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package validators provides abstractions for input validation and
// enforcement of business rules across the application.
//
// Core concepts:
//   - Validator: generic interface to validate arbitrary values or structures.
//     Supports optional field-level scoping for targeted validation.
//   - CandidateValidator: the patient field validation pipeline, an ordered
//     list of rules where the first failing rule wins.
//   - CedulaChecker: the storage collaborator asked whether a cédula is
//     already registered.
//
// A rule failure is reported as a [*FieldError] carrying the single
// client-facing message. Any other error is a server-side failure.
package validators

import (
	"context"

	"github.com/MKhiriev/go-patient-registry/models"
)

// Validator defines a generic validation interface for arbitrary input values.
// Implementations may perform structural validation, semantic checks,
// cross-field rules.
type Validator interface {

	// Validate validates the provided input and optionally
	// restricts validation to specific named fields.
	Validate(context.Context, any, ...string) error
}

// CandidateValidator runs the patient field validation pipeline.
//
//go:generate mockgen -source=interfaces.go -destination=../mock/validators_mock.go -package=mock
type CandidateValidator interface {
	Validator

	// ValidateCandidate returns nil when the candidate may be persisted,
	// a [*FieldError] for the first failing rule, or an error wrapping
	// [ErrUniquenessCheckFailed] when the existence probe fails.
	ValidateCandidate(ctx context.Context, candidate models.PatientCandidate, mode Mode) error
}

// CedulaChecker is a read-only existence probe over persisted patients.
// A storage failure must be returned as an error, never as false.
type CedulaChecker interface {
	CedulaExists(ctx context.Context, cedula string) (bool, error)
}
