package http

import (
	"net/http"
	"time"

	"github.com/MKhiriev/go-patient-registry/internal/logger"
	"github.com/go-chi/chi/v5"
)

// withLogging writes one access log entry per request and counts it by
// route pattern.
func (h *Handler) withLogging(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()

		uri := r.RequestURI
		method := r.Method

		lw := &responseWriter{
			ResponseWriter: w,
		}

		next.ServeHTTP(lw, r)

		duration := time.Since(start)

		var route string
		if rctx := chi.RouteContext(r.Context()); rctx != nil {
			route = rctx.RoutePattern()
		}
		h.metrics.ObserveHTTPRequest(method, route, lw.Status())

		logger.FromRequest(r).Info().
			Str("uri", uri).
			Str("method", method).
			Str("route", route).
			Int("status", lw.Status()).
			Dur("duration", duration).
			Int("size", lw.size).
			Send()
	})
}
