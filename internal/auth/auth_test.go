package auth

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-patient-registry/internal/config"
	"github.com/MKhiriev/go-patient-registry/internal/logger"
	"github.com/MKhiriev/go-patient-registry/internal/utils"
)

func newTestAuthService(key string) *Service {
	return New(config.App{
		TokenSignKey:  key,
		TokenIssuer:   "go-patient-registry",
		TokenDuration: time.Hour,
	}, logger.Nop())
}

func TestService_RoundTrip(t *testing.T) {
	svc := newTestAuthService("secret")
	ctx := context.Background()

	require.True(t, svc.Enabled())

	token, err := svc.CreateToken(ctx, "  recepcion ")
	require.NoError(t, err)
	assert.NotEmpty(t, token.SignedString)

	parsed, err := svc.ParseToken(ctx, token.SignedString)
	require.NoError(t, err)
	assert.Equal(t, "recepcion", parsed.Operator())
}

func TestService_Disabled(t *testing.T) {
	svc := newTestAuthService("")
	ctx := context.Background()

	assert.False(t, svc.Enabled())

	_, err := svc.CreateToken(ctx, "recepcion")
	assert.ErrorIs(t, err, ErrAuthDisabled)

	_, err = svc.ParseToken(ctx, "anything")
	assert.ErrorIs(t, err, ErrAuthDisabled)
}

func TestService_CreateToken_NoOperator(t *testing.T) {
	_, err := newTestAuthService("secret").CreateToken(context.Background(), "   ")
	assert.ErrorIs(t, err, ErrNoOperator)
}

func TestService_ParseToken_Rejections(t *testing.T) {
	svc := newTestAuthService("secret")

	foreign, err := utils.GenerateJWTToken("go-patient-registry", "recepcion", time.Hour, "other-secret")
	require.NoError(t, err)

	otherIssuer, err := utils.GenerateJWTToken("someone-else", "recepcion", time.Hour, "secret")
	require.NoError(t, err)

	for name, raw := range map[string]string{
		"garbage":      "not-a-token",
		"foreign key":  foreign.SignedString,
		"other issuer": otherIssuer.SignedString,
	} {
		t.Run(name, func(t *testing.T) {
			_, err := svc.ParseToken(context.Background(), raw)
			assert.ErrorIs(t, err, ErrTokenIsExpiredOrInvalid)
		})
	}
}
