// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package cedula

import (
	"errors"
	"fmt"
)

// Code identifies which check rejected a cédula.
type Code int

const (
	// CodeRequired means the candidate is empty or whitespace only.
	CodeRequired Code = iota + 1
	// CodeWrongLength means the candidate is not exactly 10 characters long.
	CodeWrongLength
	// CodeNonNumeric means the candidate contains a character other than 0-9.
	CodeNonNumeric
	// CodeInvalidRegion means the first two digits are not a province code.
	CodeInvalidRegion
	// CodeInvalidThirdDigit means the third digit is 6 or greater.
	CodeInvalidThirdDigit
	// CodeChecksumMismatch means the last digit does not match the computed one.
	CodeChecksumMismatch
)

// Sentinel errors, one per [Code]. A [*Reason] matches the sentinel of its
// code through [errors.Is], so callers that only need the category do not
// have to type-assert.
var (
	ErrRequired          = errors.New("cedula is required")
	ErrWrongLength       = errors.New("cedula has wrong length")
	ErrNonNumeric        = errors.New("cedula is not numeric")
	ErrInvalidRegion     = errors.New("cedula has invalid region code")
	ErrInvalidThirdDigit = errors.New("cedula has invalid third digit")
	ErrChecksumMismatch  = errors.New("cedula checksum mismatch")
	ErrInvalidPayload    = errors.New("check digit payload must be 9 digits")
	errUnknownReasonCode = errors.New("unknown cedula reason code")
)

var codeSentinels = map[Code]error{
	CodeRequired:          ErrRequired,
	CodeWrongLength:       ErrWrongLength,
	CodeNonNumeric:        ErrNonNumeric,
	CodeInvalidRegion:     ErrInvalidRegion,
	CodeInvalidThirdDigit: ErrInvalidThirdDigit,
	CodeChecksumMismatch:  ErrChecksumMismatch,
}

// Reason describes why a cédula was rejected.
// Region is set only for [CodeInvalidRegion], ThirdDigit only for
// [CodeInvalidThirdDigit].
type Reason struct {
	Code       Code
	Region     int
	ThirdDigit int
}

// Message renders the client-facing diagnostic. The wording is part of the
// public API and must not change.
func (r *Reason) Message() string {
	switch r.Code {
	case CodeRequired:
		return "La cédula es requerida"
	case CodeWrongLength:
		return "La cédula debe tener exactamente 10 dígitos"
	case CodeNonNumeric:
		return "La cédula solo debe contener números"
	case CodeInvalidRegion:
		return fmt.Sprintf("El código de provincia (%02d) no es válido. Debe estar entre 01-24 o ser 30", r.Region)
	case CodeInvalidThirdDigit:
		return fmt.Sprintf("El tercer dígito (%d) debe ser menor a 6", r.ThirdDigit)
	case CodeChecksumMismatch:
		return "El dígito verificador es incorrecto. La cédula no es válida"
	default:
		return errUnknownReasonCode.Error()
	}
}

// Error implements error and returns [Reason.Message].
func (r *Reason) Error() string {
	return r.Message()
}

// Is reports whether target is the sentinel error of r's code.
func (r *Reason) Is(target error) bool {
	sentinel, ok := codeSentinels[r.Code]
	return ok && sentinel == target
}

// String returns a short machine-friendly name of the code, used as a metric
// label and in logs.
func (c Code) String() string {
	switch c {
	case CodeRequired:
		return "required"
	case CodeWrongLength:
		return "wrong_length"
	case CodeNonNumeric:
		return "non_numeric"
	case CodeInvalidRegion:
		return "invalid_region"
	case CodeInvalidThirdDigit:
		return "invalid_third_digit"
	case CodeChecksumMismatch:
		return "checksum_mismatch"
	default:
		return "unknown"
	}
}
