package service

import (
	"bytes"
	"context"
	"errors"
	"testing"
	"time"

	"github.com/MKhiriev/go-patient-registry/internal/logger"
	"github.com/MKhiriev/go-patient-registry/internal/metrics"
	"github.com/MKhiriev/go-patient-registry/internal/mock"
	"github.com/MKhiriev/go-patient-registry/internal/store"
	"github.com/MKhiriev/go-patient-registry/internal/utils"
	"github.com/MKhiriev/go-patient-registry/models"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

const validCedula = "1710034065"

func newTestPatientSvc(t *testing.T, ctrl *gomock.Controller) (PatientService, *mock.MockPatientRepository, *metrics.Metrics) {
	t.Helper()

	repo := mock.NewMockPatientRepository(ctrl)
	m := metrics.New(prometheus.NewRegistry())

	return NewPatientService(repo, utils.NewFingerprinter("test-key"), m, logger.Nop()), repo, m
}

func sampleCandidate() models.PatientCandidate {
	return models.PatientCandidate{
		Name:    "María Pérez",
		Cedula:  validCedula,
		Email:   "maria@example.com",
		Age:     34,
		Address: "Av. Amazonas N34-12, Quito",
	}
}

func samplePatient(id int64) models.Patient {
	c := sampleCandidate()
	return models.Patient{
		ID:           id,
		Name:         c.Name,
		Cedula:       c.Cedula,
		Email:        c.Email,
		Age:          c.Age,
		Address:      c.Address,
		Active:       true,
		RegisteredAt: time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC),
	}
}

// loggedContext attaches a JSON logger writing into the returned buffer.
func loggedContext() (context.Context, *bytes.Buffer) {
	buf := &bytes.Buffer{}
	l := zerolog.New(buf)
	return l.WithContext(context.Background()), buf
}

// ─── Create ──────────────────────────────────────────────────────────────────

func TestPatientService_Create_TrimsAndActivates(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, repo, m := newTestPatientSvc(t, ctrl)
	ctx := context.Background()

	candidate := sampleCandidate()
	candidate.Name = "  María Pérez "
	candidate.Email = " maria@example.com\t"

	repo.EXPECT().Create(ctx, gomock.Any()).DoAndReturn(
		func(_ context.Context, p models.Patient) (models.Patient, error) {
			assert.Zero(t, p.ID)
			assert.Equal(t, "María Pérez", p.Name)
			assert.Equal(t, "maria@example.com", p.Email)
			assert.True(t, p.Active, "new patients must be active")
			p.ID = 7
			return p, nil
		},
	)

	created, err := svc.Create(ctx, candidate)

	require.NoError(t, err)
	assert.Equal(t, int64(7), created.ID)
	assert.Equal(t, 1.0, testutil.ToFloat64(m.PatientOperations.WithLabelValues("create", "ok")))
}

func TestPatientService_Create_LogsFingerprintOnly(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, repo, _ := newTestPatientSvc(t, ctrl)
	ctx, buf := loggedContext()

	repo.EXPECT().Create(ctx, gomock.Any()).Return(samplePatient(7), nil)

	_, err := svc.Create(ctx, sampleCandidate())
	require.NoError(t, err)

	fp := utils.NewFingerprinter("test-key").Fingerprint(validCedula)
	assert.Contains(t, buf.String(), `"cedula_fp":"`+fp+`"`)
	assert.Contains(t, buf.String(), "patient registered")
	assert.NotContains(t, buf.String(), validCedula)
}

func TestPatientService_Create_RepositoryError(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, repo, m := newTestPatientSvc(t, ctrl)
	ctx := context.Background()

	repo.EXPECT().Create(ctx, gomock.Any()).Return(models.Patient{}, store.ErrCedulaAlreadyExists)

	created, err := svc.Create(ctx, sampleCandidate())

	assert.ErrorIs(t, err, store.ErrCedulaAlreadyExists)
	assert.Equal(t, models.Patient{}, created)
	assert.Equal(t, 1.0, testutil.ToFloat64(m.PatientOperations.WithLabelValues("create", "error")))
}

// ─── Get / List ──────────────────────────────────────────────────────────────

func TestPatientService_Get(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, repo, _ := newTestPatientSvc(t, ctrl)
	ctx := context.Background()

	repo.EXPECT().GetByID(ctx, int64(3)).Return(samplePatient(3), nil)

	found, err := svc.Get(ctx, 3)

	require.NoError(t, err)
	assert.Equal(t, samplePatient(3), found)
}

func TestPatientService_Get_NotFound(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, repo, m := newTestPatientSvc(t, ctrl)
	ctx := context.Background()

	repo.EXPECT().GetByID(ctx, int64(404)).Return(models.Patient{}, store.ErrPatientNotFound)

	_, err := svc.Get(ctx, 404)

	assert.ErrorIs(t, err, store.ErrPatientNotFound)
	assert.Equal(t, 1.0, testutil.ToFloat64(m.PatientOperations.WithLabelValues("get", "error")))
}

func TestPatientService_List_PassesFilter(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, repo, _ := newTestPatientSvc(t, ctrl)
	ctx := context.Background()

	active := true
	filter := models.PatientFilter{Active: &active, Query: "mar", Limit: 10}

	repo.EXPECT().List(ctx, filter).Return([]models.Patient{samplePatient(1), samplePatient(2)}, nil)

	patients, err := svc.List(ctx, filter)

	require.NoError(t, err)
	assert.Len(t, patients, 2)
}

// ─── Update ──────────────────────────────────────────────────────────────────

func TestPatientService_Update_KeepsID(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, repo, _ := newTestPatientSvc(t, ctrl)
	ctx := context.Background()

	candidate := sampleCandidate()
	candidate.Age = 35

	repo.EXPECT().Update(ctx, gomock.Any()).DoAndReturn(
		func(_ context.Context, p models.Patient) (models.Patient, error) {
			assert.Equal(t, int64(5), p.ID)
			assert.Equal(t, 35, p.Age)
			updated := samplePatient(5)
			updated.Age = p.Age
			return updated, nil
		},
	)

	updated, err := svc.Update(ctx, 5, candidate)

	require.NoError(t, err)
	assert.Equal(t, 35, updated.Age)
	assert.True(t, updated.Active)
}

func TestPatientService_Update_Error(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, repo, _ := newTestPatientSvc(t, ctrl)
	ctx := context.Background()

	repo.EXPECT().Update(ctx, gomock.Any()).Return(models.Patient{}, store.ErrPatientNotFound)

	_, err := svc.Update(ctx, 5, sampleCandidate())

	assert.ErrorIs(t, err, store.ErrPatientNotFound)
}

// ─── ToggleActive ────────────────────────────────────────────────────────────

func TestPatientService_ToggleActive_RefetchesPatient(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, repo, _ := newTestPatientSvc(t, ctrl)
	ctx := context.Background()

	inactive := samplePatient(9)
	inactive.Active = false

	gomock.InOrder(
		repo.EXPECT().ToggleActive(ctx, int64(9)).Return(false, nil),
		repo.EXPECT().GetByID(ctx, int64(9)).Return(inactive, nil),
	)

	toggled, err := svc.ToggleActive(ctx, 9)

	require.NoError(t, err)
	assert.False(t, toggled.Active)
}

func TestPatientService_ToggleActive_NotFound(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, repo, m := newTestPatientSvc(t, ctrl)
	ctx := context.Background()

	repo.EXPECT().ToggleActive(ctx, int64(9)).Return(false, store.ErrPatientNotFound)

	_, err := svc.ToggleActive(ctx, 9)

	assert.ErrorIs(t, err, store.ErrPatientNotFound)
	assert.Equal(t, 1.0, testutil.ToFloat64(m.PatientOperations.WithLabelValues("toggle", "error")))
}

// ─── Delete ──────────────────────────────────────────────────────────────────

func TestPatientService_Delete(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, repo, m := newTestPatientSvc(t, ctrl)
	ctx := context.Background()

	repo.EXPECT().Delete(ctx, int64(2)).Return(nil)

	require.NoError(t, svc.Delete(ctx, 2))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.PatientOperations.WithLabelValues("delete", "ok")))
}

func TestPatientService_Delete_Error(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, repo, _ := newTestPatientSvc(t, ctrl)
	ctx := context.Background()

	dbErr := errors.New("connection reset")
	repo.EXPECT().Delete(ctx, int64(2)).Return(dbErr)

	assert.ErrorIs(t, svc.Delete(ctx, 2), dbErr)
}
