package adapter

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/MKhiriev/go-patient-registry/models"
	"github.com/go-resty/resty/v2"
)

var statusErrors = map[int]error{
	http.StatusBadRequest:          ErrBadRequest,
	http.StatusUnauthorized:        ErrUnauthorized,
	http.StatusForbidden:           ErrForbidden,
	http.StatusNotFound:            ErrNotFound,
	http.StatusConflict:            ErrConflict,
	http.StatusTooManyRequests:     ErrTooManyRequests,
	http.StatusBadGateway:          ErrBadGateway,
	http.StatusInternalServerError: ErrInternalServerError,
}

func mapHTTPError(resp *resty.Response) error {
	if resp.StatusCode() >= http.StatusOK && resp.StatusCode() < http.StatusMultipleChoices {
		return nil
	}

	kind, ok := statusErrors[resp.StatusCode()]
	if !ok {
		kind = ErrUnexpectedStatus
	}

	return &ServerError{
		Kind:       kind,
		StatusCode: resp.StatusCode(),
		Message:    errorMessage(resp),
	}
}

// errorMessage reads the "error" field of a JSON error body and falls back
// to the raw body, then to the status text.
func errorMessage(resp *resty.Response) string {
	body := resp.Body()

	var payload models.ErrorResponse
	if err := json.Unmarshal(body, &payload); err == nil && payload.Message != "" {
		return payload.Message
	}

	if raw := strings.TrimSpace(string(body)); raw != "" {
		return raw
	}
	return http.StatusText(resp.StatusCode())
}
