// Package auth issues and verifies the operator tokens that guard mutating
// registry routes. The server verifies them in its auth middleware; the
// terminal client mints them with the same shared key.
package auth

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/MKhiriev/go-patient-registry/internal/config"
	"github.com/MKhiriev/go-patient-registry/internal/logger"
	"github.com/MKhiriev/go-patient-registry/internal/utils"
	"github.com/MKhiriev/go-patient-registry/models"
)

var (
	ErrTokenCreationFailed     = errors.New("token creation failed")
	ErrTokenIsExpiredOrInvalid = errors.New("token is expired or invalid")
	ErrAuthDisabled            = errors.New("token authentication is disabled")
	ErrNoOperator              = errors.New("no operator given for token")
)

// Service signs and parses HS256 operator tokens.
// The registry has no user accounts: a token only names the operator (a
// front desk, an integration) that performs mutating calls.
type Service struct {
	// tokenSignKey is the HMAC secret used to sign and verify JWT tokens.
	// Authentication is disabled when it is empty.
	tokenSignKey string

	// tokenIssuer is the "iss" claim embedded in every issued JWT.
	// Tokens whose issuer does not match this value are rejected during parsing.
	tokenIssuer string

	// tokenDuration controls how long a newly issued JWT remains valid.
	tokenDuration time.Duration

	logger *logger.Logger
}

// New constructs a Service from the token settings in cfg.
//
// The returned service is safe for concurrent use; all state is read-only after
// construction.
func New(cfg config.App, logger *logger.Logger) *Service {
	return &Service{
		tokenSignKey:  cfg.TokenSignKey,
		tokenIssuer:   cfg.TokenIssuer,
		tokenDuration: cfg.TokenDuration,
		logger:        logger,
	}
}

// Enabled reports whether a token sign key is configured.
func (s *Service) Enabled() bool {
	return s.tokenSignKey != ""
}

// CreateToken issues a signed JWT whose subject is operator.
func (s *Service) CreateToken(ctx context.Context, operator string) (models.Token, error) {
	if !s.Enabled() {
		return models.Token{}, ErrAuthDisabled
	}

	operator = strings.TrimSpace(operator)
	if operator == "" {
		return models.Token{}, ErrNoOperator
	}

	token, err := utils.GenerateJWTToken(s.tokenIssuer, operator, s.tokenDuration, s.tokenSignKey)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "auth.Service.CreateToken").Msg("cannot sign token")
		return models.Token{}, fmt.Errorf("%w: %w", ErrTokenCreationFailed, err)
	}

	return token, nil
}

// ParseToken validates and parses a raw JWT string.
//
// Any validation failure (expired, wrong issuer, malformed) is normalised to
// ErrTokenIsExpiredOrInvalid so that callers do not need to inspect
// low-level JWT errors.
func (s *Service) ParseToken(ctx context.Context, tokenString string) (models.Token, error) {
	if !s.Enabled() {
		return models.Token{}, ErrAuthDisabled
	}

	token, err := utils.ValidateAndParseJWTToken(tokenString, s.tokenSignKey, s.tokenIssuer)
	if err != nil {
		logger.FromContext(ctx).Debug().Err(err).Str("func", "auth.Service.ParseToken").Msg("token rejected")
		return models.Token{}, ErrTokenIsExpiredOrInvalid
	}

	return token, nil
}
