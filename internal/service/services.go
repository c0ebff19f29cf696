package service

import (
	"fmt"

	"github.com/MKhiriev/go-patient-registry/internal/config"
	"github.com/MKhiriev/go-patient-registry/internal/logger"
	"github.com/MKhiriev/go-patient-registry/internal/metrics"
	"github.com/MKhiriev/go-patient-registry/internal/store"
	"github.com/MKhiriev/go-patient-registry/internal/utils"
	"github.com/MKhiriev/go-patient-registry/internal/validators"
	"github.com/MKhiriev/go-patient-registry/models"
)

type Services struct {
	PatientService PatientService
	CedulaService  CedulaService
	AppInfoService AppInfoService
	AuthService    AuthService
}

// NewServices wires the server-side services. The patient service is
// wrapped by the validation pipeline whose uniqueness probe is the
// patient repository itself.
func NewServices(repositories *store.Repositories, cfg *config.StructuredConfig, build models.AppBuildInfo, m *metrics.Metrics, logger *logger.Logger) (*Services, error) {
	appInfoService, err := NewAppInfoService(cfg.App, build, logger)
	if err != nil {
		return nil, fmt.Errorf("error creating app info service: %w", err)
	}

	fingerprinter := utils.NewFingerprinter(cfg.App.FingerprintKey)
	if cfg.App.FingerprintKey == "" {
		logger.Warn().Msg("no fingerprint key configured; cedula fingerprints in logs are unkeyed")
	}

	patientService := NewPatientValidationService(
		validators.NewPatientValidator(repositories.PatientRepository),
		fingerprinter,
		m,
	).Wrap(NewPatientService(repositories.PatientRepository, fingerprinter, m, logger))

	return &Services{
		PatientService: patientService,
		CedulaService:  NewCedulaService(m),
		AppInfoService: appInfoService,
		AuthService:    NewAuthService(cfg.App, logger),
	}, nil
}
