package adapter

import (
	"context"
	"fmt"
	"strconv"
	"sync"
	"time"

	"github.com/MKhiriev/go-patient-registry/internal/auth"
	"github.com/MKhiriev/go-patient-registry/internal/config"
	"github.com/MKhiriev/go-patient-registry/internal/logger"
	"github.com/MKhiriev/go-patient-registry/internal/utils"
	"github.com/MKhiriev/go-patient-registry/models"
	"github.com/go-resty/resty/v2"
)

// tokenRefreshMargin is how long before expiry a minted token is replaced.
const tokenRefreshMargin = 30 * time.Second

// patientPayload is the request body of create and update calls.
type patientPayload struct {
	Name    string `json:"nombre"`
	Cedula  string `json:"cedula"`
	Email   string `json:"correo"`
	Age     int    `json:"edad"`
	Address string `json:"direccion"`
}

func newPatientPayload(c models.PatientCandidate) patientPayload {
	return patientPayload{
		Name:    c.Name,
		Cedula:  c.Cedula,
		Email:   c.Email,
		Age:     c.Age,
		Address: c.Address,
	}
}

type httpServerAdapter struct {
	client *utils.HTTPClient

	appCfg config.ClientApp
	auth   *auth.Service

	mu    sync.Mutex
	token models.Token

	logger *logger.Logger
}

// NewHTTPServerAdapter constructs an HTTP/REST implementation of [ServerAdapter].
//
// When appCfg.TokenSignKey is set the adapter mints HS256 bearer tokens for
// appCfg.Operator and attaches them to mutating requests. Returns an error if
// adapterCfg.HTTPAddress is empty.
func NewHTTPServerAdapter(adapterCfg config.ClientAdapter, appCfg config.ClientApp, logger *logger.Logger) (ServerAdapter, error) {
	if adapterCfg.HTTPAddress == "" {
		return nil, fmt.Errorf("invalid adapter http address: empty address")
	}

	client := utils.NewHTTPClient(adapterCfg.HTTPAddress, adapterCfg.RequestTimeout)

	tokens := auth.New(config.App{
		TokenSignKey:  appCfg.TokenSignKey,
		TokenIssuer:   appCfg.TokenIssuer,
		TokenDuration: appCfg.TokenDuration,
	}, logger)

	return &httpServerAdapter{client: client, appCfg: appCfg, auth: tokens, logger: logger}, nil
}

// ListPatients implements [ServerAdapter] via GET /api/pacientes.
func (h *httpServerAdapter) ListPatients(ctx context.Context, filter models.PatientFilter) ([]models.Patient, error) {
	var list models.PatientListResponse

	req := h.client.R().
		SetContext(ctx).
		SetResult(&list)

	if filter.Active != nil {
		req.SetQueryParam("activo", strconv.FormatBool(*filter.Active))
	}
	if filter.Query != "" {
		req.SetQueryParam("q", filter.Query)
	}
	if filter.Limit > 0 {
		req.SetQueryParam("limit", strconv.FormatUint(filter.Limit, 10))
	}
	if filter.Offset > 0 {
		req.SetQueryParam("offset", strconv.FormatUint(filter.Offset, 10))
	}

	resp, err := req.Get("/api/pacientes")
	if err != nil {
		return nil, fmt.Errorf("list patients request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	return list.Patients, nil
}

// GetPatient implements [ServerAdapter] via GET /api/pacientes/{id}.
func (h *httpServerAdapter) GetPatient(ctx context.Context, id int64) (models.Patient, error) {
	var patient models.Patient

	resp, err := h.client.R().
		SetContext(ctx).
		SetResult(&patient).
		Get(patientPath(id))
	if err != nil {
		return models.Patient{}, fmt.Errorf("get patient request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Patient{}, err
	}

	return patient, nil
}

// CreatePatient implements [ServerAdapter] via POST /api/pacientes.
func (h *httpServerAdapter) CreatePatient(ctx context.Context, candidate models.PatientCandidate) (models.Patient, error) {
	var created models.Patient

	req, err := h.authorized(ctx)
	if err != nil {
		return models.Patient{}, err
	}

	resp, err := req.
		SetHeader("Content-Type", "application/json").
		SetBody(newPatientPayload(candidate)).
		SetResult(&created).
		Post("/api/pacientes")
	if err != nil {
		return models.Patient{}, fmt.Errorf("create patient request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Patient{}, err
	}

	return created, nil
}

// UpdatePatient implements [ServerAdapter] via PUT /api/pacientes/{id}.
func (h *httpServerAdapter) UpdatePatient(ctx context.Context, id int64, candidate models.PatientCandidate) (models.Patient, error) {
	var updated models.Patient

	req, err := h.authorized(ctx)
	if err != nil {
		return models.Patient{}, err
	}

	resp, err := req.
		SetHeader("Content-Type", "application/json").
		SetBody(newPatientPayload(candidate)).
		SetResult(&updated).
		Put(patientPath(id))
	if err != nil {
		return models.Patient{}, fmt.Errorf("update patient request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Patient{}, err
	}

	return updated, nil
}

// TogglePatientActive implements [ServerAdapter] via PUT /api/pacientes/{id}/estado.
func (h *httpServerAdapter) TogglePatientActive(ctx context.Context, id int64) (models.Patient, error) {
	var toggled models.Patient

	req, err := h.authorized(ctx)
	if err != nil {
		return models.Patient{}, err
	}

	resp, err := req.
		SetResult(&toggled).
		Put(patientPath(id) + "/estado")
	if err != nil {
		return models.Patient{}, fmt.Errorf("toggle patient request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Patient{}, err
	}

	return toggled, nil
}

// DeletePatient implements [ServerAdapter] via DELETE /api/pacientes/{id}.
func (h *httpServerAdapter) DeletePatient(ctx context.Context, id int64) error {
	req, err := h.authorized(ctx)
	if err != nil {
		return err
	}

	resp, err := req.Delete(patientPath(id))
	if err != nil {
		return fmt.Errorf("delete patient request: %w", err)
	}

	return mapHTTPError(resp)
}

// CheckCedula implements [ServerAdapter] via GET /api/cedulas/{cedula}.
func (h *httpServerAdapter) CheckCedula(ctx context.Context, cedula string) (models.CedulaCheckResponse, error) {
	var result models.CedulaCheckResponse

	resp, err := h.client.R().
		SetContext(ctx).
		SetPathParam("cedula", cedula).
		SetResult(&result).
		Get("/api/cedulas/{cedula}")
	if err != nil {
		return models.CedulaCheckResponse{}, fmt.Errorf("check cedula request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.CedulaCheckResponse{}, err
	}

	return result, nil
}

// GetServerBuildInfo implements [ServerAdapter] via GET /api/version/.
func (h *httpServerAdapter) GetServerBuildInfo(ctx context.Context) (models.AppBuildInfo, error) {
	var info models.AppBuildInfo

	resp, err := h.client.R().
		SetContext(ctx).
		SetResult(&info).
		Get("/api/version/")
	if err != nil {
		return models.AppBuildInfo{}, fmt.Errorf("version request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.AppBuildInfo{}, err
	}

	return info, nil
}

// authorized returns a request carrying a bearer token, or a plain request
// when no sign key is configured.
func (h *httpServerAdapter) authorized(ctx context.Context) (*resty.Request, error) {
	req := h.client.R().SetContext(ctx)

	if !h.auth.Enabled() {
		return req, nil
	}

	token, err := h.currentToken(ctx)
	if err != nil {
		h.logger.Err(err).Str("func", "*httpServerAdapter.authorized").Msg("cannot mint token")
		return nil, fmt.Errorf("mint token: %w", err)
	}

	return req.SetAuthToken(token), nil
}

// currentToken reuses the cached token until it is about to expire.
func (h *httpServerAdapter) currentToken(ctx context.Context) (string, error) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.token.SignedString != "" && h.token.ExpiresAt != nil &&
		time.Until(h.token.ExpiresAt.Time) > tokenRefreshMargin {
		return h.token.SignedString, nil
	}

	token, err := h.auth.CreateToken(ctx, h.appCfg.Operator)
	if err != nil {
		return "", err
	}
	h.token = token

	return token.SignedString, nil
}

func patientPath(id int64) string {
	return "/api/pacientes/" + strconv.FormatInt(id, 10)
}
