package store

import (
	"context"

	"github.com/MKhiriev/go-patient-registry/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// PatientRepository persists patients in the pacientes table.
type PatientRepository interface {
	// Create inserts p and returns it with id, activo and fechaRegistro as
	// stored. A unique violation on cedula yields ErrCedulaAlreadyExists.
	Create(ctx context.Context, p models.Patient) (models.Patient, error)
	// GetByID returns ErrPatientNotFound when no row has the id.
	GetByID(ctx context.Context, id int64) (models.Patient, error)
	// List returns patients matching filter ordered by id.
	List(ctx context.Context, filter models.PatientFilter) ([]models.Patient, error)
	// Update overwrites the editable fields of the patient with p.ID.
	Update(ctx context.Context, p models.Patient) (models.Patient, error)
	// ToggleActive flips activo and returns the new value.
	ToggleActive(ctx context.Context, id int64) (bool, error)
	Delete(ctx context.Context, id int64) error
	// CedulaExists reports whether any stored patient has the cédula.
	CedulaExists(ctx context.Context, cedula string) (bool, error)
	// Ping checks the underlying connection.
	Ping(ctx context.Context) error
}

// ErrorClassificator decides whether a driver error is worth retrying.
type ErrorClassificator interface {
	Classify(err error) ErrorClassification
	// IsUniqueViolation reports whether err is a unique constraint failure.
	IsUniqueViolation(err error) bool
}
