package service

import (
	"context"

	"github.com/MKhiriev/go-patient-registry/internal/cedula"
	"github.com/MKhiriev/go-patient-registry/internal/metrics"
	"github.com/MKhiriev/go-patient-registry/models"
)

type cedulaService struct {
	metrics *metrics.Metrics
}

func NewCedulaService(m *metrics.Metrics) CedulaService {
	return &cedulaService{metrics: m}
}

// Check explains cedula and, when it is valid, names its province. The
// number is echoed back exactly as given.
func (c *cedulaService) Check(ctx context.Context, number string) models.CedulaCheckResponse {
	resp := models.CedulaCheckResponse{Cedula: number}

	if reason := cedula.Explain(number); reason != nil {
		c.metrics.ObserveCedulaCheck(reason.Code.String())
		resp.Message = reason.Message()
		return resp
	}

	c.metrics.ObserveCedulaCheck("")
	resp.Valid = true
	resp.Province, _ = cedula.ProvinceOf(number)

	return resp
}
