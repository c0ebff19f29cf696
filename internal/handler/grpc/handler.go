// Package grpc exposes the registry over gRPC. The registry serves the
// standard grpc.health.v1 protocol and server reflection; patient
// operations are HTTP only.
package grpc

import (
	"github.com/MKhiriev/go-patient-registry/internal/logger"
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/reflection"
)

// RegistryServiceName is the health-checked service name. The empty name
// reports overall server health and tracks the same status.
const RegistryServiceName = "registry.PatientRegistry"

// Handler is the root gRPC transport handler.
//
// It owns the health server whose status the database health worker
// updates. A handler instance is created once at startup and shared by the
// gRPC server.
type Handler struct {
	health *health.Server

	// logger is used for diagnostic log output.
	logger *logger.Logger
}

// NewHandler constructs a [Handler]. The registry starts as NOT_SERVING
// until the first successful database probe.
func NewHandler(logger *logger.Logger) *Handler {
	h := &Handler{
		health: health.NewServer(),
		logger: logger,
	}
	h.SetServing(false)

	logger.Debug().Msg("gRPC handler created")
	return h
}

// Register attaches the health and reflection services to server.
func (h *Handler) Register(server *grpc.Server) {
	healthpb.RegisterHealthServer(server, h.health)
	reflection.Register(server)
}

// SetServing flips the health status of the registry and of the server.
func (h *Handler) SetServing(serving bool) {
	status := healthpb.HealthCheckResponse_NOT_SERVING
	if serving {
		status = healthpb.HealthCheckResponse_SERVING
	}

	h.health.SetServingStatus("", status)
	h.health.SetServingStatus(RegistryServiceName, status)
}

// Shutdown marks every service NOT_SERVING so that watchers see the
// server going away before the listener closes.
func (h *Handler) Shutdown() {
	h.health.Shutdown()
}
