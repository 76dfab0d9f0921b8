package http

import (
	"net/http"

	"github.com/homestays/reservations-api/internal/logger"
	"github.com/homestays/reservations-api/internal/utils"
	"github.com/homestays/reservations-api/models"
)

// auth is an HTTP middleware that enforces JWT-based authentication.
//
// It inspects the incoming "Authorization" header, extracts the bearer token,
// validates it via [utils.ParseCallerToken], and — on success — stores the
// authenticated caller (id, role, raw token) in the request context via
// [utils.WithCaller] before delegating to the next handler. The raw token is
// kept so that outbound upstream calls can forward the caller's credentials.
//
// The middleware rejects requests with HTTP 401 Unauthorized in the following cases:
//   - The "Authorization" header is absent ([ErrEmptyAuthorizationHeader]).
//   - The header value cannot be parsed as a bearer token
//     ([utils.ParseBearerToken]).
//   - The token signature, issuer, or expiry check fails.
//   - The role claim is missing or outside the known role set.
//
// All rejection events are logged using the context-scoped logger obtained
// via [logger.FromRequest].
func (h *Handler) auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromRequest(r)

		authHeader := r.Header.Get("Authorization")
		if authHeader == "" {
			log.Err(ErrEmptyAuthorizationHeader).Send()
			writeUnauthorized(w, ErrEmptyAuthorizationHeader.Error())
			return
		}

		tokenString, err := utils.ParseBearerToken(authHeader)
		if err != nil {
			log.Err(err).Send()
			writeUnauthorized(w, err.Error())
			return
		}

		caller, err := utils.ParseCallerToken(tokenString, h.tokenSignKey, h.tokenIssuer)
		if err != nil {
			log.Err(err).Msg("error occurred during parsing token")
			writeUnauthorized(w, http.StatusText(http.StatusUnauthorized))
			return
		}

		// Store the authenticated caller in the context so that downstream
		// handlers can retrieve it without re-parsing the token.
		ctx := utils.WithCaller(r.Context(), caller)

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func writeUnauthorized(w http.ResponseWriter, message string) {
	utils.WriteJSON(w, models.ErrorResponse(message, http.StatusUnauthorized), http.StatusUnauthorized) //nolint:errcheck
}
