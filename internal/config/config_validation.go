// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"net/url"
	"strings"
)

// validate checks that the merged [StructuredConfig] can start the server.
func (cfg *StructuredConfig) validate() error {
	if strings.TrimSpace(cfg.Storage.DB.DSN) == "" {
		return ErrInvalidStorageConfigs
	}

	if cfg.Storage.DB.MaxOpenConns < 1 || cfg.Storage.DB.QueryTimeout <= 0 {
		return ErrInvalidStorageConfigs
	}

	if cfg.Server.HTTPAddress == "" || cfg.Server.RequestTimeout <= 0 {
		return ErrInvalidServerConfigs
	}

	if cfg.Server.RateLimit > 0 && cfg.Server.RateBurst < 1 {
		return ErrInvalidServerConfigs
	}

	if cfg.App.TokenSignKey != "" && cfg.App.TokenIssuer == "" {
		return ErrInvalidAppConfigs
	}

	if cfg.Workers.HealthCheckInterval <= 0 {
		return ErrInvalidWorkerConfigs
	}

	return nil
}

func (cfg *ClientConfig) validate() error {
	if cfg.Adapter.HTTPAddress == "" || cfg.Adapter.RequestTimeout <= 0 {
		return ErrInvalidAdapterConfigs
	}

	if _, err := url.Parse(cfg.Adapter.HTTPAddress); err != nil {
		return ErrInvalidAdapterConfigs
	}

	if cfg.App.TokenSignKey != "" && cfg.App.Operator == "" {
		return ErrInvalidAppConfigs
	}

	return nil
}
