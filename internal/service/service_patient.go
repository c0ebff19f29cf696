package service

import (
	"context"
	"strings"
	"time"

	"github.com/MKhiriev/go-patient-registry/internal/logger"
	"github.com/MKhiriev/go-patient-registry/internal/metrics"
	"github.com/MKhiriev/go-patient-registry/internal/store"
	"github.com/MKhiriev/go-patient-registry/internal/utils"
	"github.com/MKhiriev/go-patient-registry/models"
)

type patientService struct {
	patientRepository store.PatientRepository
	fingerprinter     *utils.Fingerprinter
	metrics           *metrics.Metrics

	logger *logger.Logger
}

// NewPatientService returns the storage-facing PatientService. It performs
// no validation; wrap it with NewPatientValidationService.
func NewPatientService(patientRepository store.PatientRepository, fingerprinter *utils.Fingerprinter, m *metrics.Metrics, logger *logger.Logger) PatientService {
	return &patientService{
		patientRepository: patientRepository,
		fingerprinter:     fingerprinter,
		metrics:           m,
		logger:            logger,
	}
}

// Create stores a new, active patient. Text fields are trimmed.
func (p *patientService) Create(ctx context.Context, candidate models.PatientCandidate) (created models.Patient, err error) {
	defer p.observe("create", time.Now(), &err)

	created, err = p.patientRepository.Create(ctx, patientFromCandidate(candidate, 0, true))
	if err != nil {
		return models.Patient{}, err
	}

	logger.FromContext(ctx).
		WithCedula(p.fingerprinter.Fingerprint(created.Cedula)).
		Info().
		Int64("id", created.ID).
		Msg("patient registered")

	return created, nil
}

func (p *patientService) Get(ctx context.Context, id int64) (found models.Patient, err error) {
	defer p.observe("get", time.Now(), &err)

	return p.patientRepository.GetByID(ctx, id)
}

func (p *patientService) List(ctx context.Context, filter models.PatientFilter) (patients []models.Patient, err error) {
	defer p.observe("list", time.Now(), &err)

	return p.patientRepository.List(ctx, filter)
}

// Update overwrites the editable fields of patient id. The active flag and
// registration date are kept.
func (p *patientService) Update(ctx context.Context, id int64, candidate models.PatientCandidate) (updated models.Patient, err error) {
	defer p.observe("update", time.Now(), &err)

	updated, err = p.patientRepository.Update(ctx, patientFromCandidate(candidate, id, false))
	if err != nil {
		return models.Patient{}, err
	}

	logger.FromContext(ctx).
		WithCedula(p.fingerprinter.Fingerprint(updated.Cedula)).
		Info().
		Int64("id", updated.ID).
		Msg("patient updated")

	return updated, nil
}

func (p *patientService) ToggleActive(ctx context.Context, id int64) (toggled models.Patient, err error) {
	defer p.observe("toggle", time.Now(), &err)

	active, err := p.patientRepository.ToggleActive(ctx, id)
	if err != nil {
		return models.Patient{}, err
	}

	logger.FromContext(ctx).Info().Int64("id", id).Bool("activo", active).Msg("patient state changed")

	return p.patientRepository.GetByID(ctx, id)
}

func (p *patientService) Delete(ctx context.Context, id int64) (err error) {
	defer p.observe("delete", time.Now(), &err)

	if err = p.patientRepository.Delete(ctx, id); err != nil {
		return err
	}

	logger.FromContext(ctx).Info().Int64("id", id).Msg("patient deleted")
	return nil
}

// observe is deferred with a pointer to the named error result.
func (p *patientService) observe(operation string, start time.Time, err *error) {
	p.metrics.ObserveOperation(operation, start, *err)
}

func patientFromCandidate(c models.PatientCandidate, id int64, active bool) models.Patient {
	return models.Patient{
		ID:      id,
		Name:    strings.TrimSpace(c.Name),
		Cedula:  strings.TrimSpace(c.Cedula),
		Email:   strings.TrimSpace(c.Email),
		Age:     c.Age,
		Address: strings.TrimSpace(c.Address),
		Active:  active,
	}
}
