package middleware

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"clinic-booking-api/internal/auth"
	"clinic-booking-api/internal/logging"
	"clinic-booking-api/internal/render"
)

type ctxKey string

const ClaimsKey ctxKey = "claims"

// TokenChecker is satisfied by *auth.Gate.
type TokenChecker interface {
	Check(raw string) (*auth.Claims, error)
}

// Claims returns what Admin attached to the request context.
func Claims(ctx context.Context) (*auth.Claims, bool) {
	c, ok := ctx.Value(ClaimsKey).(*auth.Claims)
	return c, ok
}

// bearer pulls the token out of "Authorization: Bearer <jwt>".
func bearer(r *http.Request) string {
	h := r.Header.Get("Authorization")
	parts := strings.SplitN(h, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
		return ""
	}
	return strings.TrimSpace(parts[1])
}

// Admin rejects requests without a valid admin token: 401 when the
// token is missing or bad, 403 when expired or not admin.
func Admin(gate TokenChecker, log logging.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			claims, err := gate.Check(bearer(r))
			switch {
			case errors.Is(err, auth.ErrForbidden):
				log.Warn(r.Context(), "admin access forbidden", "path", r.URL.Path)
				render.Error(w, http.StatusForbidden, "Forbidden")
				return
			case err != nil:
				log.Warn(r.Context(), "admin access unauthorized", "path", r.URL.Path)
				render.Error(w, http.StatusUnauthorized, "Unauthorized")
				return
			}

			ctx := context.WithValue(r.Context(), ClaimsKey, claims)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
