// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides transport-layer abstractions for communicating with
// the patient registry server.
//
// The primary abstraction is [ServerAdapter], which decouples the terminal
// client from the underlying protocol. The package ships an HTTP/REST
// implementation ([NewHTTPServerAdapter]).
//
// Error values defined in errors.go are mapped from HTTP status codes by
// mapHTTPError so that callers can use [errors.Is] for transport-agnostic error
// handling (e.g. [ErrConflict] for 409, [ErrUnauthorized] for 401). The
// server's own message is kept and can be extracted with [Message].
package adapter

import (
	"context"

	"github.com/MKhiriev/go-patient-registry/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/server_adapter_mock.go -package=mock

// ServerAdapter defines transport-agnostic communication with the registry
// server. Implementations are responsible for serialisation, authentication
// header management, and mapping transport-level errors to the sentinel values
// defined in this package.
type ServerAdapter interface {
	// ListPatients returns the patients matching filter, ordered by ID.
	ListPatients(ctx context.Context, filter models.PatientFilter) ([]models.Patient, error)

	// GetPatient fetches a single patient. Returns [ErrNotFound] (wrapped)
	// when no patient has that ID.
	GetPatient(ctx context.Context, id int64) (models.Patient, error)

	// CreatePatient submits a new patient. Validation failures come back as
	// [ErrBadRequest] and duplicate cédulas as [ErrConflict], both carrying
	// the server message.
	CreatePatient(ctx context.Context, candidate models.PatientCandidate) (models.Patient, error)

	// UpdatePatient replaces the editable fields of patient id.
	UpdatePatient(ctx context.Context, id int64, candidate models.PatientCandidate) (models.Patient, error)

	// TogglePatientActive flips the active flag and returns the new state.
	TogglePatientActive(ctx context.Context, id int64) (models.Patient, error)

	// DeletePatient removes patient id.
	DeletePatient(ctx context.Context, id int64) error

	// CheckCedula asks the server to validate a cédula without storing it.
	CheckCedula(ctx context.Context, cedula string) (models.CedulaCheckResponse, error)

	// GetServerBuildInfo fetches the server's build metadata.
	GetServerBuildInfo(ctx context.Context) (models.AppBuildInfo, error)
}
