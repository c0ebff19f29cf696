package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func validServerConfig() *StructuredConfig {
	cfg := defaults()
	cfg.Storage.DB.DSN = "postgres://registry@localhost/registry"
	return cfg
}

func TestStructuredConfig_Validate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(cfg *StructuredConfig)
		want   error
	}{
		{
			name:   "valid",
			mutate: func(cfg *StructuredConfig) {},
		},
		{
			name:   "auth enabled",
			mutate: func(cfg *StructuredConfig) { cfg.App.TokenSignKey = "secret" },
		},
		{
			name:   "limiter disabled",
			mutate: func(cfg *StructuredConfig) { cfg.Server.RateLimit = -1; cfg.Server.RateBurst = 0 },
		},
		{
			name:   "blank dsn",
			mutate: func(cfg *StructuredConfig) { cfg.Storage.DB.DSN = "  " },
			want:   ErrInvalidStorageConfigs,
		},
		{
			name:   "zero pool",
			mutate: func(cfg *StructuredConfig) { cfg.Storage.DB.MaxOpenConns = 0 },
			want:   ErrInvalidStorageConfigs,
		},
		{
			name:   "zero query timeout",
			mutate: func(cfg *StructuredConfig) { cfg.Storage.DB.QueryTimeout = 0 },
			want:   ErrInvalidStorageConfigs,
		},
		{
			name:   "no http address",
			mutate: func(cfg *StructuredConfig) { cfg.Server.HTTPAddress = "" },
			want:   ErrInvalidServerConfigs,
		},
		{
			name:   "limiter without burst",
			mutate: func(cfg *StructuredConfig) { cfg.Server.RateBurst = 0 },
			want:   ErrInvalidServerConfigs,
		},
		{
			name: "sign key without issuer",
			mutate: func(cfg *StructuredConfig) {
				cfg.App.TokenSignKey = "secret"
				cfg.App.TokenIssuer = ""
			},
			want: ErrInvalidAppConfigs,
		},
		{
			name:   "no health interval",
			mutate: func(cfg *StructuredConfig) { cfg.Workers.HealthCheckInterval = 0 },
			want:   ErrInvalidWorkerConfigs,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validServerConfig()
			tt.mutate(cfg)

			err := cfg.validate()
			if tt.want == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

func TestClientConfig_Validate(t *testing.T) {
	t.Run("defaults are enough", func(t *testing.T) {
		assert.NoError(t, newClientConfig(defaults()).validate())
	})

	t.Run("no address", func(t *testing.T) {
		cfg := newClientConfig(defaults())
		cfg.Adapter.HTTPAddress = ""
		assert.ErrorIs(t, cfg.validate(), ErrInvalidAdapterConfigs)
	})

	t.Run("no timeout", func(t *testing.T) {
		cfg := newClientConfig(defaults())
		cfg.Adapter.RequestTimeout = 0
		assert.ErrorIs(t, cfg.validate(), ErrInvalidAdapterConfigs)
	})

	t.Run("sign key without operator", func(t *testing.T) {
		cfg := newClientConfig(defaults())
		cfg.App.TokenSignKey = "secret"
		cfg.App.Operator = ""
		assert.ErrorIs(t, cfg.validate(), ErrInvalidAppConfigs)
	})
}

func TestNewClientConfig_MapsFields(t *testing.T) {
	cfg := defaults()
	cfg.App.TokenSignKey = "secret"
	cfg.Adapter.HTTPAddress = "http://registry:9000"
	cfg.Adapter.RequestTimeout = 7 * time.Second

	clientCfg := newClientConfig(cfg)

	assert.Equal(t, "secret", clientCfg.App.TokenSignKey)
	assert.Equal(t, "go-patient-registry", clientCfg.App.TokenIssuer)
	assert.Equal(t, "registry-client", clientCfg.App.Operator)
	assert.Equal(t, time.Hour, clientCfg.App.TokenDuration)
	assert.Equal(t, "http://registry:9000", clientCfg.Adapter.HTTPAddress)
	assert.Equal(t, 7*time.Second, clientCfg.Adapter.RequestTimeout)
}
