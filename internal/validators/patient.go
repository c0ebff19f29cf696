// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"
	"fmt"
	"strings"

	"github.com/MKhiriev/go-patient-registry/internal/cedula"
	"github.com/MKhiriev/go-patient-registry/models"
)

// Field name constants used to specify which fields should be validated.
// The order of a field list is the order the rules run in.
const (
	// FieldName targets the patient's full name.
	FieldName = "nombre"

	// FieldCedula targets presence and structure of the cédula.
	FieldCedula = "cedula"

	// FieldCedulaUnique asks the [CedulaChecker] whether the cédula is taken.
	FieldCedulaUnique = "cedula_unique"

	// FieldEmail targets the contact email.
	FieldEmail = "correo"

	// FieldAge targets the age in years.
	FieldAge = "edad"

	// FieldAddress targets the postal address.
	FieldAddress = "direccion"
)

// Mode selects which rules of the pipeline apply.
type Mode int

const (
	// ModeCreate runs every rule including the uniqueness probe.
	ModeCreate Mode = iota + 1
	// ModeUpdate runs every rule except the uniqueness probe.
	ModeUpdate
)

func (m Mode) String() string {
	switch m {
	case ModeCreate:
		return "create"
	case ModeUpdate:
		return "update"
	default:
		return "unknown"
	}
}

var (
	createFields = []string{FieldName, FieldCedula, FieldCedulaUnique, FieldEmail, FieldAge, FieldAddress}
	updateFields = []string{FieldName, FieldCedula, FieldEmail, FieldAge, FieldAddress}
)

// Fields returns the ordered rule list of mode.
func (m Mode) Fields() ([]string, error) {
	switch m {
	case ModeCreate:
		return createFields, nil
	case ModeUpdate:
		return updateFields, nil
	default:
		return nil, ErrUnknownMode
	}
}

// Client-facing messages of the non-cédula rules.
const (
	msgNameRequired    = "El nombre es requerido"
	msgDuplicateCedula = "Ya existe un paciente con esa cédula"
	msgEmailRequired   = "El correo es requerido"
	msgInvalidAge      = "La edad debe ser mayor a 0"
	msgAddressRequired = "La dirección es requerida"
)

// PatientValidator implements [CandidateValidator].
//
// It holds no mutable state; a single instance may be shared by any number
// of goroutines.
type PatientValidator struct {
	checker CedulaChecker
}

// NewPatientValidator constructs a PatientValidator. checker may be nil when
// the caller never validates [FieldCedulaUnique] (e.g. local form checks on
// the client); [ModeCreate] then fails with [ErrNoCedulaChecker].
func NewPatientValidator(checker CedulaChecker) *PatientValidator {
	return &PatientValidator{checker: checker}
}

// Validate dispatches on the dynamic type of obj. Accepted types are
// models.PatientCandidate and models.Patient, as values or pointers.
// When fields is empty the [ModeCreate] rule list is used.
func (v *PatientValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.PatientCandidate:
		return v.validateCandidate(ctx, value, fields...)
	case *models.PatientCandidate:
		if value == nil {
			return ErrNilCandidate
		}
		return v.validateCandidate(ctx, *value, fields...)

	case models.Patient:
		return v.validateCandidate(ctx, value.Candidate(), fields...)
	case *models.Patient:
		if value == nil {
			return ErrNilCandidate
		}
		return v.validateCandidate(ctx, value.Candidate(), fields...)

	default:
		return ErrUnsupportedType
	}
}

// ValidateCandidate runs the pipeline for mode. The first failing rule
// wins and later rules, including the uniqueness probe, are not evaluated.
func (v *PatientValidator) ValidateCandidate(ctx context.Context, candidate models.PatientCandidate, mode Mode) error {
	fields, err := mode.Fields()
	if err != nil {
		return err
	}

	return v.validateCandidate(ctx, candidate, fields...)
}

func (v *PatientValidator) validateCandidate(ctx context.Context, candidate models.PatientCandidate, fields ...string) error {
	if len(fields) == 0 {
		fields = createFields
	}

	for _, f := range fields {
		var err error

		switch f {
		case FieldName:
			err = requireText(candidate.Name, FieldName, msgNameRequired, ErrNameRequired)
		case FieldCedula:
			err = validateCedula(candidate.Cedula)
		case FieldCedulaUnique:
			err = v.validateCedulaUnique(ctx, candidate.Cedula)
		case FieldEmail:
			err = requireText(candidate.Email, FieldEmail, msgEmailRequired, ErrEmailRequired)
		case FieldAge:
			if candidate.Age <= 0 {
				err = newFieldError(FieldAge, "not_positive", msgInvalidAge, ErrInvalidAge)
			}
		case FieldAddress:
			err = requireText(candidate.Address, FieldAddress, msgAddressRequired, ErrAddressRequired)
		default:
			return ErrUnknownField
		}

		if err != nil {
			return err
		}
	}

	return nil
}

// validateCedula covers presence and structure. A blank value is rejected
// here before the structural checks run.
func validateCedula(value string) error {
	if strings.TrimSpace(value) == "" {
		reason := &cedula.Reason{Code: cedula.CodeRequired}
		return newFieldError(FieldCedula, reason.Code.String(), reason.Message(), reason)
	}

	if reason := cedula.Explain(value); reason != nil {
		return newFieldError(FieldCedula, reason.Code.String(), reason.Message(), reason)
	}

	return nil
}

func (v *PatientValidator) validateCedulaUnique(ctx context.Context, value string) error {
	if v.checker == nil {
		return ErrNoCedulaChecker
	}

	exists, err := v.checker.CedulaExists(ctx, value)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrUniquenessCheckFailed, err)
	}
	if exists {
		return newFieldError(FieldCedula, "duplicate", msgDuplicateCedula, ErrDuplicateCedula)
	}

	return nil
}

func requireText(value, field, message string, sentinel error) error {
	if strings.TrimSpace(value) == "" {
		return newFieldError(field, "required", message, sentinel)
	}
	return nil
}
