package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/go-event-planner/internal/logger"
	"github.com/MKhiriev/go-event-planner/internal/service"
	"github.com/MKhiriev/go-event-planner/internal/utils"
)

// auth is an HTTP middleware that enforces JWT-based authentication.
//
// It inspects the incoming "Authorization" header, extracts the bearer token,
// validates it via [service.AuthService.ParseToken] and loads the token's
// owner. On success the user id and the user record (without credentials)
// are stored in the request context via [utils.WithUser].
//
// The middleware rejects requests with HTTP 401 Unauthorized when:
//   - the "Authorization" header is absent ([ErrMissingToken]);
//   - the header is not of the form "Bearer <token>" ([service.ErrInvalidToken]);
//   - the token is expired ([service.ErrExpiredToken]) or otherwise invalid;
//   - the token's user no longer exists ([service.ErrInvalidToken]).
func (h *Handler) auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromRequest(r)

		authHeader := r.Header.Get("Authorization")
		if authHeader == "" {
			writeError(w, r, ErrMissingToken)
			return
		}

		tokenString, err := utils.ParseBearerToken(authHeader)
		if err != nil {
			log.Debug().Err(err).Msg("malformed Authorization header")
			writeError(w, r, service.ErrInvalidToken)
			return
		}

		ctx := r.Context()
		token, err := h.services.AuthService.ParseToken(ctx, tokenString)
		if err != nil {
			writeError(w, r, err)
			return
		}

		user, err := h.services.AuthService.GetUser(ctx, token.UserID)
		if errors.Is(err, service.ErrUserNotFound) {
			log.Warn().Int64("user_id", token.UserID).Msg("token of a deleted user")
			writeError(w, r, service.ErrInvalidToken)
			return
		}
		if err != nil {
			writeError(w, r, err)
			return
		}

		next.ServeHTTP(w, r.WithContext(utils.WithUser(ctx, user)))
	})
}
