// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// Patient is a registered patient as stored in the registry.
type Patient struct {
	// ID is the database-assigned identifier. Zero for records not yet persisted.
	ID int64 `json:"id"`

	// Name is the patient's full name.
	Name string `json:"nombre"`

	// Cedula is the 10-digit Ecuadorian national identity number.
	// It is unique across the registry.
	Cedula string `json:"cedula"`

	// Email is the contact address of the patient.
	Email string `json:"correo"`

	// Age is the patient's age in years.
	Age int `json:"edad"`

	// Address is the postal address of the patient.
	Address string `json:"direccion"`

	// Active marks a patient as enabled. New patients are active.
	Active bool `json:"activo"`

	// RegisteredAt is set by the store on insert and never changes afterwards.
	RegisteredAt time.Time `json:"fechaRegistro"`
}

// Candidate returns the subset of fields that is subject to validation.
func (p Patient) Candidate() PatientCandidate {
	return PatientCandidate{
		Name:    p.Name,
		Cedula:  p.Cedula,
		Email:   p.Email,
		Age:     p.Age,
		Address: p.Address,
	}
}

// PatientCandidate is the input of the patient validation pipeline.
// String fields may be empty or whitespace only; Age may be any integer.
type PatientCandidate struct {
	Name    string
	Cedula  string
	Email   string
	Age     int
	Address string
}

// PatientFilter narrows a patient listing. Zero values mean "no restriction".
type PatientFilter struct {
	// Active restricts the result to active (true) or inactive (false) patients.
	Active *bool

	// Query matches a case-insensitive substring of the name or a cédula prefix.
	Query string

	// Limit caps the number of returned rows. Zero means the store default.
	Limit uint64

	// Offset skips the first rows of the ordered result.
	Offset uint64
}
