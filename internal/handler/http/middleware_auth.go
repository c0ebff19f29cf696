package http

import (
	"context"
	"net/http"

	"github.com/MKhiriev/go-patient-registry/internal/logger"
	"github.com/MKhiriev/go-patient-registry/internal/utils"
)

// auth is an HTTP middleware that enforces JWT-based authentication on
// mutating routes.
//
// When the AuthService is disabled (no sign key configured) requests pass
// through untouched. Otherwise the bearer token is extracted from the
// "Authorization" header and validated via [service.AuthService.ParseToken];
// on success the token subject is stored under [utils.OperatorCtxKey].
//
// The middleware rejects requests with HTTP 401 Unauthorized when:
//   - the "Authorization" header is absent ([ErrEmptyAuthorizationHeader]);
//   - the header is not "Bearer <token>" ([utils.ErrInvalidAuthorizationHeader]);
//   - the token is expired, signed with another key or issued by someone else.
func (h *Handler) auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !h.services.AuthService.Enabled() {
			next.ServeHTTP(w, r)
			return
		}

		log := logger.FromRequest(r)

		authHeader := r.Header.Get("Authorization")
		if authHeader == "" {
			log.Err(ErrEmptyAuthorizationHeader).Str("func", "*Handler.auth").Send()
			h.writeError(w, ErrEmptyAuthorizationHeader, 0, "")
			return
		}

		tokenString, err := utils.ParseBearerToken(authHeader)
		if err != nil {
			log.Err(err).Str("func", "*Handler.auth").Send()
			h.writeError(w, err, 0, "")
			return
		}

		ctx := r.Context()
		token, err := h.services.AuthService.ParseToken(ctx, tokenString)
		if err != nil {
			log.Err(err).Str("func", "*Handler.auth").Msg("error occurred during parsing token")
			h.writeError(w, err, 0, "")
			return
		}

		operator := token.Operator()
		ctx = context.WithValue(ctx, utils.OperatorCtxKey, operator)
		ctx = log.With().Str("operator", operator).Logger().WithContext(ctx)

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
