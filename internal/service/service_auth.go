package service

import (
	"github.com/MKhiriev/go-patient-registry/internal/auth"
	"github.com/MKhiriev/go-patient-registry/internal/config"
	"github.com/MKhiriev/go-patient-registry/internal/logger"
)

// NewAuthService returns the token service used by the auth middleware.
// Authentication is disabled when cfg.TokenSignKey is empty.
func NewAuthService(cfg config.App, logger *logger.Logger) AuthService {
	return auth.New(cfg, logger)
}
