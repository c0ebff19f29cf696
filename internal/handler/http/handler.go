package http

import (
	"net/http"

	"github.com/MKhiriev/go-patient-registry/internal/config"
	"github.com/MKhiriev/go-patient-registry/internal/logger"
	"github.com/MKhiriev/go-patient-registry/internal/metrics"
	"github.com/MKhiriev/go-patient-registry/internal/service"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"golang.org/x/time/rate"
)

type Handler struct {
	services *service.Services
	metrics  *metrics.Metrics

	// metricsHandler serves the registry the collectors were registered with.
	metricsHandler http.Handler

	// writeLimiter throttles mutating routes. Nil disables limiting.
	writeLimiter *rate.Limiter

	corsOrigins []string

	logger *logger.Logger
}

// NewHandler builds the HTTP handler. gatherer is exposed on /metrics; nil
// falls back to the default Prometheus gatherer.
func NewHandler(services *service.Services, cfg config.Server, m *metrics.Metrics, gatherer prometheus.Gatherer, logger *logger.Logger) *Handler {
	if gatherer == nil {
		gatherer = prometheus.DefaultGatherer
	}

	var limiter *rate.Limiter
	if cfg.RateLimit > 0 {
		limiter = rate.NewLimiter(rate.Limit(cfg.RateLimit), cfg.RateBurst)
	}

	logger.Info().Msg("http handler created")
	return &Handler{
		services:       services,
		metrics:        m,
		metricsHandler: promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{}),
		writeLimiter:   limiter,
		corsOrigins:    cfg.CORSAllowedOrigins,
		logger:         logger,
	}
}
