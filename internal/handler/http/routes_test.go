package http

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/MKhiriev/go-patient-registry/internal/store"
	"github.com/MKhiriev/go-patient-registry/internal/validators"
	"github.com/MKhiriev/go-patient-registry/models"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

const patientJSON = `{"nombre":"María Pérez","cedula":"1710034065","correo":"maria@example.com","edad":34,"direccion":"Av. Amazonas N34-12"}`

func samplePatient(id int64) models.Patient {
	return models.Patient{
		ID:           id,
		Name:         "María Pérez",
		Cedula:       "1710034065",
		Email:        "maria@example.com",
		Age:          34,
		Address:      "Av. Amazonas N34-12",
		Active:       true,
		RegisteredAt: time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC),
	}
}

func sampleCandidate() models.PatientCandidate {
	return samplePatient(0).Candidate()
}

// fieldError builds the error the validation pipeline returns for a failed rule.
func fieldError(field, message string, sentinel error) error {
	return &validators.FieldError{Field: field, Code: "test", Message: message, Err: sentinel}
}

func assertErrorBody(t *testing.T, rr *httptest.ResponseRecorder, status int, message string) {
	t.Helper()
	assert.Equal(t, status, rr.Code)
	assert.Equal(t, "application/json", rr.Header().Get("Content-Type"))

	var body models.ErrorResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &body))
	assert.Equal(t, message, body.Message)
}

// ─── GET /api/pacientes ──────────────────────────────────────────────────────

func TestRoutes_ListPatients(t *testing.T) {
	f := newRouterFixture(t, testServerConfig(), false)

	f.patients.EXPECT().List(gomock.Any(), models.PatientFilter{}).
		Return([]models.Patient{samplePatient(1), samplePatient(2)}, nil)

	rr := f.do(httptest.NewRequest(http.MethodGet, "/api/pacientes", nil))

	require.Equal(t, http.StatusOK, rr.Code)
	var body models.PatientListResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &body))
	assert.Equal(t, 2, body.Length)
	assert.Equal(t, int64(2), body.Patients[1].ID)
}

func TestRoutes_ListPatients_Filter(t *testing.T) {
	f := newRouterFixture(t, testServerConfig(), false)

	f.patients.EXPECT().List(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, filter models.PatientFilter) ([]models.Patient, error) {
			require.NotNil(t, filter.Active)
			assert.False(t, *filter.Active)
			assert.Equal(t, "pér", filter.Query)
			assert.Equal(t, uint64(20), filter.Limit)
			assert.Equal(t, uint64(40), filter.Offset)
			return nil, nil
		},
	)

	rr := f.do(httptest.NewRequest(http.MethodGet, "/api/pacientes/?activo=false&q=p%C3%A9r&limit=20&offset=40", nil))

	require.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, `{"pacientes":[],"length":0}`, rr.Body.String())
}

func TestRoutes_ListPatients_BadFilter(t *testing.T) {
	for _, query := range []string{"activo=quizas", "limit=-1", "offset=diez"} {
		t.Run(query, func(t *testing.T) {
			f := newRouterFixture(t, testServerConfig(), false)

			rr := f.do(httptest.NewRequest(http.MethodGet, "/api/pacientes?"+query, nil))

			assertErrorBody(t, rr, http.StatusBadRequest, "Los parámetros de búsqueda no son válidos")
		})
	}
}

func TestRoutes_ListPatients_StoreFailure(t *testing.T) {
	f := newRouterFixture(t, testServerConfig(), false)

	f.patients.EXPECT().List(gomock.Any(), gomock.Any()).Return(nil, fmt.Errorf("%w: timeout", store.ErrExecutingQuery))

	rr := f.do(httptest.NewRequest(http.MethodGet, "/api/pacientes", nil))

	assertErrorBody(t, rr, http.StatusInternalServerError, "Error al obtener pacientes")
}

// ─── GET /api/pacientes/{id} ─────────────────────────────────────────────────

func TestRoutes_GetPatient(t *testing.T) {
	f := newRouterFixture(t, testServerConfig(), false)

	f.patients.EXPECT().Get(gomock.Any(), int64(5)).Return(samplePatient(5), nil)

	rr := f.do(httptest.NewRequest(http.MethodGet, "/api/pacientes/5", nil))

	require.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Body.String(), `"fechaRegistro":"2026-03-01T10:00:00Z"`)
	assert.Contains(t, rr.Body.String(), `"activo":true`)
}

func TestRoutes_GetPatient_NotFound(t *testing.T) {
	f := newRouterFixture(t, testServerConfig(), false)

	f.patients.EXPECT().Get(gomock.Any(), int64(99)).Return(models.Patient{}, store.ErrPatientNotFound)

	rr := f.do(httptest.NewRequest(http.MethodGet, "/api/pacientes/99", nil))

	assertErrorBody(t, rr, http.StatusNotFound, "Paciente no encontrado con ID: 99")
}

func TestRoutes_GetPatient_InvalidID(t *testing.T) {
	for _, id := range []string{"abc", "0", "-3"} {
		t.Run(id, func(t *testing.T) {
			f := newRouterFixture(t, testServerConfig(), false)

			rr := f.do(httptest.NewRequest(http.MethodGet, "/api/pacientes/"+id, nil))

			assertErrorBody(t, rr, http.StatusBadRequest, "El ID del paciente no es válido")
		})
	}
}

// ─── POST /api/pacientes ─────────────────────────────────────────────────────

func TestRoutes_CreatePatient(t *testing.T) {
	f := newRouterFixture(t, testServerConfig(), false)

	f.patients.EXPECT().Create(gomock.Any(), sampleCandidate()).Return(samplePatient(12), nil)

	rr := f.do(httptest.NewRequest(http.MethodPost, "/api/pacientes", strings.NewReader(patientJSON)))

	require.Equal(t, http.StatusCreated, rr.Code)
	assert.Equal(t, "/api/pacientes/12", rr.Header().Get("Location"))

	var created models.Patient
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &created))
	assert.Equal(t, int64(12), created.ID)
	assert.True(t, created.Active)
}

func TestRoutes_CreatePatient_Errors(t *testing.T) {
	tests := []struct {
		name        string
		err         error
		wantStatus  int
		wantMessage string
	}{
		{
			name:        "rule failure",
			err:         fieldError(validators.FieldAge, "La edad debe ser mayor a 0", validators.ErrInvalidAge),
			wantStatus:  http.StatusBadRequest,
			wantMessage: "La edad debe ser mayor a 0",
		},
		{
			name:        "cedula diagnostic",
			err:         fieldError(validators.FieldCedula, "El tercer dígito (7) debe ser menor a 6", errors.New("third digit")),
			wantStatus:  http.StatusBadRequest,
			wantMessage: "El tercer dígito (7) debe ser menor a 6",
		},
		{
			name:        "duplicate from pipeline",
			err:         fieldError(validators.FieldCedula, "Ya existe un paciente con esa cédula", validators.ErrDuplicateCedula),
			wantStatus:  http.StatusConflict,
			wantMessage: "Ya existe un paciente con esa cédula",
		},
		{
			name:        "duplicate from insert race",
			err:         store.ErrCedulaAlreadyExists,
			wantStatus:  http.StatusConflict,
			wantMessage: "Ya existe un paciente con esa cédula",
		},
		{
			name:        "probe failure",
			err:         fmt.Errorf("%w: %w", validators.ErrUniquenessCheckFailed, errors.New("connection refused")),
			wantStatus:  http.StatusInternalServerError,
			wantMessage: "Error al crear paciente",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newRouterFixture(t, testServerConfig(), false)

			f.patients.EXPECT().Create(gomock.Any(), gomock.Any()).Return(models.Patient{}, tt.err)

			rr := f.do(httptest.NewRequest(http.MethodPost, "/api/pacientes", strings.NewReader(patientJSON)))

			assertErrorBody(t, rr, tt.wantStatus, tt.wantMessage)
		})
	}
}

func TestRoutes_CreatePatient_InvalidJSON(t *testing.T) {
	f := newRouterFixture(t, testServerConfig(), false)

	rr := f.do(httptest.NewRequest(http.MethodPost, "/api/pacientes", strings.NewReader(`{"nombre":`)))

	assertErrorBody(t, rr, http.StatusBadRequest, "El cuerpo de la solicitud no es un JSON válido")
}

// ─── PUT /api/pacientes/{id} ─────────────────────────────────────────────────

func TestRoutes_UpdatePatient(t *testing.T) {
	f := newRouterFixture(t, testServerConfig(), false)

	updated := samplePatient(3)
	updated.Address = "Calle Larga 7-45, Cuenca"

	f.patients.EXPECT().Update(gomock.Any(), int64(3), gomock.Any()).DoAndReturn(
		func(_ context.Context, _ int64, c models.PatientCandidate) (models.Patient, error) {
			assert.Equal(t, "Calle Larga 7-45, Cuenca", c.Address)
			return updated, nil
		},
	)

	body := strings.Replace(patientJSON, "Av. Amazonas N34-12", "Calle Larga 7-45, Cuenca", 1)
	rr := f.do(httptest.NewRequest(http.MethodPut, "/api/pacientes/3", strings.NewReader(body)))

	require.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Body.String(), "Cuenca")
}

func TestRoutes_UpdatePatient_NotFound(t *testing.T) {
	f := newRouterFixture(t, testServerConfig(), false)

	f.patients.EXPECT().Update(gomock.Any(), int64(8), gomock.Any()).Return(models.Patient{}, store.ErrPatientNotFound)

	rr := f.do(httptest.NewRequest(http.MethodPut, "/api/pacientes/8", strings.NewReader(patientJSON)))

	assertErrorBody(t, rr, http.StatusNotFound, "Paciente no encontrado con ID: 8")
}

// ─── PUT /api/pacientes/{id}/estado ──────────────────────────────────────────

func TestRoutes_TogglePatient(t *testing.T) {
	f := newRouterFixture(t, testServerConfig(), false)

	inactive := samplePatient(4)
	inactive.Active = false
	f.patients.EXPECT().ToggleActive(gomock.Any(), int64(4)).Return(inactive, nil)

	rr := f.do(httptest.NewRequest(http.MethodPut, "/api/pacientes/4/estado", nil))

	require.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Body.String(), `"activo":false`)
}

func TestRoutes_TogglePatient_Failure(t *testing.T) {
	f := newRouterFixture(t, testServerConfig(), false)

	f.patients.EXPECT().ToggleActive(gomock.Any(), int64(4)).Return(models.Patient{}, store.ErrExecutingStatement)

	rr := f.do(httptest.NewRequest(http.MethodPut, "/api/pacientes/4/estado", nil))

	assertErrorBody(t, rr, http.StatusInternalServerError, "Error al cambiar estado del paciente")
}

// ─── DELETE /api/pacientes/{id} ──────────────────────────────────────────────

func TestRoutes_DeletePatient(t *testing.T) {
	f := newRouterFixture(t, testServerConfig(), false)

	f.patients.EXPECT().Delete(gomock.Any(), int64(6)).Return(nil)

	rr := f.do(httptest.NewRequest(http.MethodDelete, "/api/pacientes/6", nil))

	assert.Equal(t, http.StatusNoContent, rr.Code)
	assert.Empty(t, rr.Body.String())
}

func TestRoutes_DeletePatient_NotFound(t *testing.T) {
	f := newRouterFixture(t, testServerConfig(), false)

	f.patients.EXPECT().Delete(gomock.Any(), int64(6)).Return(store.ErrPatientNotFound)

	rr := f.do(httptest.NewRequest(http.MethodDelete, "/api/pacientes/6", nil))

	assertErrorBody(t, rr, http.StatusNotFound, "Paciente no encontrado con ID: 6")
}

// ─── GET /api/cedulas/{cedula} ───────────────────────────────────────────────

func TestRoutes_CheckCedula(t *testing.T) {
	f := newRouterFixture(t, testServerConfig(), false)

	f.cedulas.EXPECT().Check(gomock.Any(), "1710034066").Return(models.CedulaCheckResponse{
		Cedula:  "1710034066",
		Message: "El dígito verificador es incorrecto. La cédula no es válida",
	})

	rr := f.do(httptest.NewRequest(http.MethodGet, "/api/cedulas/1710034066", nil))

	require.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, `{"cedula":"1710034066","valid":false,"message":"El dígito verificador es incorrecto. La cédula no es válida"}`, rr.Body.String())
}

// ─── GET /api/version/ ───────────────────────────────────────────────────────

func TestRoutes_Version(t *testing.T) {
	f := newRouterFixture(t, testServerConfig(), false)

	f.appInfo.EXPECT().GetBuildInfo(gomock.Any()).Return(models.NewAppBuildInfo("1.2.0", "2026-10-01", "abc123"))

	rr := f.do(httptest.NewRequest(http.MethodGet, "/api/version/", nil))

	require.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, `{"version":"1.2.0","date":"2026-10-01","commit":"abc123"}`, rr.Body.String())
}

func TestRoutes_Version_PlainText(t *testing.T) {
	f := newRouterFixture(t, testServerConfig(), false)

	f.appInfo.EXPECT().GetAppVersion(gomock.Any()).Return("1.2.0")

	req := httptest.NewRequest(http.MethodGet, "/api/version/", nil)
	req.Header.Set("Accept", "text/plain")
	rr := f.do(req)

	require.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "text/plain", rr.Header().Get("Content-Type"))
	assert.Equal(t, "1.2.0", rr.Body.String())
}

// ─── Auth, limits and cross-cutting behaviour ────────────────────────────────

func TestRoutes_MutatingRoutesRequireAuth(t *testing.T) {
	requests := []*http.Request{
		httptest.NewRequest(http.MethodPost, "/api/pacientes", strings.NewReader(patientJSON)),
		httptest.NewRequest(http.MethodPut, "/api/pacientes/1", strings.NewReader(patientJSON)),
		httptest.NewRequest(http.MethodPut, "/api/pacientes/1/estado", nil),
		httptest.NewRequest(http.MethodDelete, "/api/pacientes/1", nil),
	}

	for _, req := range requests {
		t.Run(req.Method+" "+req.URL.Path, func(t *testing.T) {
			f := newRouterFixture(t, testServerConfig(), true)

			rr := f.do(req)

			assertErrorBody(t, rr, http.StatusUnauthorized, "Se requiere autorización")
		})
	}
}

func TestRoutes_ReadRoutesArePublic(t *testing.T) {
	f := newRouterFixture(t, testServerConfig(), true)

	f.patients.EXPECT().Get(gomock.Any(), int64(1)).Return(samplePatient(1), nil)

	rr := f.do(httptest.NewRequest(http.MethodGet, "/api/pacientes/1", nil))

	assert.Equal(t, http.StatusOK, rr.Code)
}

func TestRoutes_WriteRateLimit(t *testing.T) {
	cfg := testServerConfig()
	cfg.RateLimit = 0.001
	cfg.RateBurst = 1
	f := newRouterFixture(t, cfg, false)

	f.patients.EXPECT().Delete(gomock.Any(), int64(1)).Return(nil)

	first := f.do(httptest.NewRequest(http.MethodDelete, "/api/pacientes/1", nil))
	second := f.do(httptest.NewRequest(http.MethodDelete, "/api/pacientes/1", nil))

	assert.Equal(t, http.StatusNoContent, first.Code)
	assertErrorBody(t, second, http.StatusTooManyRequests, "Demasiadas solicitudes, intente más tarde")
	assert.Equal(t, "1", second.Header().Get("Retry-After"))
	assert.Equal(t, 1.0, testutil.ToFloat64(f.metrics.RateLimited))
}

func TestRoutes_UnknownRouteReturnsJSON404(t *testing.T) {
	f := newRouterFixture(t, testServerConfig(), false)

	rr := f.do(httptest.NewRequest(http.MethodGet, "/api/medicos", nil))

	assertErrorBody(t, rr, http.StatusNotFound, "Recurso no encontrado")
}

func TestRoutes_WrongMethodReturnsJSON405(t *testing.T) {
	f := newRouterFixture(t, testServerConfig(), false)

	rr := f.do(httptest.NewRequest(http.MethodPatch, "/api/pacientes/1", nil))

	assertErrorBody(t, rr, http.StatusMethodNotAllowed, "Método no permitido")
}

func TestRoutes_TraceIDHeader(t *testing.T) {
	f := newRouterFixture(t, testServerConfig(), false)
	f.appInfo.EXPECT().GetBuildInfo(gomock.Any()).Return(models.AppBuildInfo{}).Times(2)

	rr := f.do(httptest.NewRequest(http.MethodGet, "/api/version/", nil))
	assert.NotEmpty(t, rr.Header().Get(traceIDHeader))

	req := httptest.NewRequest(http.MethodGet, "/api/version/", nil)
	req.Header.Set(traceIDHeader, "trace-123")
	rr = f.do(req)
	assert.Equal(t, "trace-123", rr.Header().Get(traceIDHeader))
}

func TestRoutes_CORSPreflight(t *testing.T) {
	f := newRouterFixture(t, testServerConfig(), false)

	req := httptest.NewRequest(http.MethodOptions, "/api/pacientes", nil)
	req.Header.Set("Origin", "http://localhost:3000")
	req.Header.Set("Access-Control-Request-Method", http.MethodPost)
	rr := f.do(req)

	assert.Equal(t, "*", rr.Header().Get("Access-Control-Allow-Origin"))
	assert.Contains(t, rr.Header().Get("Access-Control-Allow-Methods"), http.MethodPost)
}

func TestRoutes_MetricsEndpoint(t *testing.T) {
	f := newRouterFixture(t, testServerConfig(), false)
	f.appInfo.EXPECT().GetBuildInfo(gomock.Any()).Return(models.AppBuildInfo{})

	f.do(httptest.NewRequest(http.MethodGet, "/api/version/", nil))
	rr := f.do(httptest.NewRequest(http.MethodGet, "/metrics", nil))

	require.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Body.String(), `registry_http_requests_total{method="GET",route="/api/version/",status="200"} 1`)
}
