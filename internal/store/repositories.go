package store

import "github.com/MKhiriev/go-patient-registry/internal/logger"

// Repositories groups every repository the service layer depends on.
type Repositories struct {
	PatientRepository PatientRepository
}

func NewRepositories(db *DB, log *logger.Logger) *Repositories {
	return &Repositories{
		PatientRepository: NewPatientRepository(db, log),
	}
}
