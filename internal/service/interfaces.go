package service

import (
	"context"

	"github.com/MKhiriev/go-patient-registry/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock

// PatientService is the registry's use-case layer over patients.
// Create and Update accept a candidate that has not been validated yet;
// the validation wrapper rejects it before it reaches storage.
type PatientService interface {
	Create(ctx context.Context, candidate models.PatientCandidate) (models.Patient, error)
	Get(ctx context.Context, id int64) (models.Patient, error)
	List(ctx context.Context, filter models.PatientFilter) ([]models.Patient, error)
	Update(ctx context.Context, id int64, candidate models.PatientCandidate) (models.Patient, error)
	// ToggleActive flips the active flag and returns the updated patient.
	ToggleActive(ctx context.Context, id int64) (models.Patient, error)
	Delete(ctx context.Context, id int64) error
}

// CedulaService checks a single cédula without touching storage.
type CedulaService interface {
	Check(ctx context.Context, cedula string) models.CedulaCheckResponse
}

type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
	GetBuildInfo(ctx context.Context) models.AppBuildInfo
}

// AuthService issues and verifies operator tokens for mutating routes.
type AuthService interface {
	// Enabled reports whether a token sign key is configured.
	Enabled() bool
	CreateToken(ctx context.Context, operator string) (models.Token, error)
	ParseToken(ctx context.Context, tokenString string) (models.Token, error)
}
