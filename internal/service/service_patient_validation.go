package service

import (
	"context"
	"errors"

	"github.com/MKhiriev/go-patient-registry/internal/logger"
	"github.com/MKhiriev/go-patient-registry/internal/metrics"
	"github.com/MKhiriev/go-patient-registry/internal/utils"
	"github.com/MKhiriev/go-patient-registry/internal/validators"
	"github.com/MKhiriev/go-patient-registry/models"
)

// PatientValidationService runs the field validation pipeline in front of
// the wrapped PatientService. Reads and deletes pass through unchanged.
type PatientValidationService struct {
	inner         PatientService
	validator     validators.CandidateValidator
	fingerprinter *utils.Fingerprinter
	metrics       *metrics.Metrics
}

func NewPatientValidationService(validator validators.CandidateValidator, fingerprinter *utils.Fingerprinter, m *metrics.Metrics) PatientServiceWrapper {
	return &PatientValidationService{
		validator:     validator,
		fingerprinter: fingerprinter,
		metrics:       m,
	}
}

// Create validates candidate in create mode, which includes the uniqueness
// probe, and forwards it only when every rule passes.
func (v *PatientValidationService) Create(ctx context.Context, candidate models.PatientCandidate) (models.Patient, error) {
	if err := v.validate(ctx, candidate, validators.ModeCreate); err != nil {
		return models.Patient{}, err
	}

	return v.inner.Create(ctx, candidate)
}

func (v *PatientValidationService) Get(ctx context.Context, id int64) (models.Patient, error) {
	return v.inner.Get(ctx, id)
}

func (v *PatientValidationService) List(ctx context.Context, filter models.PatientFilter) ([]models.Patient, error) {
	return v.inner.List(ctx, filter)
}

// Update reports a missing patient before any rule runs, then validates
// candidate in update mode, which skips the uniqueness probe.
func (v *PatientValidationService) Update(ctx context.Context, id int64, candidate models.PatientCandidate) (models.Patient, error) {
	if _, err := v.inner.Get(ctx, id); err != nil {
		return models.Patient{}, err
	}

	if err := v.validate(ctx, candidate, validators.ModeUpdate); err != nil {
		return models.Patient{}, err
	}

	return v.inner.Update(ctx, id, candidate)
}

func (v *PatientValidationService) ToggleActive(ctx context.Context, id int64) (models.Patient, error) {
	return v.inner.ToggleActive(ctx, id)
}

func (v *PatientValidationService) Delete(ctx context.Context, id int64) error {
	return v.inner.Delete(ctx, id)
}

func (v *PatientValidationService) Wrap(wrapper PatientService) PatientService {
	v.inner = wrapper
	return v
}

func (v *PatientValidationService) validate(ctx context.Context, candidate models.PatientCandidate, mode validators.Mode) error {
	err := v.validator.ValidateCandidate(ctx, candidate, mode)

	log := logger.FromContext(ctx)
	var fieldErr *validators.FieldError

	switch {
	case err == nil:
		v.metrics.ObserveValidation(mode.String(), "", "")
	case errors.As(err, &fieldErr):
		v.metrics.ObserveValidation(mode.String(), fieldErr.Field, fieldErr.Code)
		log.WithCedula(v.fingerprinter.Fingerprint(candidate.Cedula)).Info().
			Str("mode", mode.String()).
			Str("field", fieldErr.Field).
			Str("code", fieldErr.Code).
			Msg("patient candidate rejected")
	case errors.Is(err, validators.ErrUniquenessCheckFailed):
		v.metrics.IncrementProbeFailure()
		log.WithCedula(v.fingerprinter.Fingerprint(candidate.Cedula)).Err(err).
			Str("mode", mode.String()).
			Msg("cedula uniqueness probe failed")
	default:
		log.Err(err).Str("mode", mode.String()).Msg("patient validation failed")
	}

	return err
}
