package workers

import (
	"context"
	"time"

	"github.com/MKhiriev/go-patient-registry/internal/logger"
	"github.com/MKhiriev/go-patient-registry/internal/metrics"
)

// HealthWorker pings the database every interval and reports the outcome.
// Status changes are logged once, not on every tick.
type HealthWorker struct {
	pinger    Pinger
	reporters []HealthReporter
	metrics   *metrics.Metrics
	interval  time.Duration
	timeout   time.Duration

	logger *logger.Logger
}

// NewHealthWorker builds a probe that runs every interval. Each ping is
// bounded by timeout; zero means interval.
func NewHealthWorker(pinger Pinger, interval, timeout time.Duration, m *metrics.Metrics, logger *logger.Logger, reporters ...HealthReporter) *HealthWorker {
	if timeout <= 0 || timeout > interval {
		timeout = interval
	}
	return &HealthWorker{
		pinger:    pinger,
		reporters: reporters,
		metrics:   m,
		interval:  interval,
		timeout:   timeout,
		logger:    logger,
	}
}

// Run probes once immediately and then on every tick until ctx is done.
func (h *HealthWorker) Run(ctx context.Context) error {
	ticker := time.NewTicker(h.interval)
	defer ticker.Stop()

	last := h.probe(ctx, nil)
	for {
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
			last = h.probe(ctx, &last)
		}
	}
}

// probe pings once and publishes the result. previous is nil on the first call.
func (h *HealthWorker) probe(ctx context.Context, previous *bool) bool {
	pingCtx, cancel := context.WithTimeout(ctx, h.timeout)
	err := h.pinger.Ping(pingCtx)
	cancel()

	up := err == nil
	for _, r := range h.reporters {
		r.SetServing(up)
	}
	h.metrics.SetDatabaseUp(up)

	if previous != nil && *previous == up {
		return up
	}
	if up {
		h.logger.Info().Str("func", "*HealthWorker.probe").Msg("database reachable")
	} else {
		h.logger.Err(err).Str("func", "*HealthWorker.probe").Msg("database unreachable")
	}

	return up
}
