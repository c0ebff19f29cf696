package http

import (
	"net/http"

	"github.com/MKhiriev/go-patient-registry/internal/logger"
)

// withWriteLimit rejects mutating requests above the configured rate with
// 429. The bucket is shared by all callers.
func (h *Handler) withWriteLimit(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if h.writeLimiter != nil && !h.writeLimiter.Allow() {
			logger.FromRequest(r).Warn().Str("func", "*Handler.withWriteLimit").Msg("write rate limit exceeded")
			h.metrics.IncrementRateLimited()
			w.Header().Set("Retry-After", "1")
			h.writeError(w, ErrTooManyRequests, 0, "")
			return
		}

		next.ServeHTTP(w, r)
	})
}
