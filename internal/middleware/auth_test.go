package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"clinic-booking-api/internal/auth"
	"clinic-booking-api/internal/logging"
	"clinic-booking-api/internal/middleware"
)

const secret = "mw-secret"

func protected(t *testing.T) (http.Handler, *bool) {
	t.Helper()
	gate, err := auth.NewGate("admin123", secret, time.Hour)
	require.NoError(t, err)

	called := false
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
		c, ok := middleware.Claims(r.Context())
		if !ok || c.Role != auth.RoleAdmin {
			t.Error("claims missing from context")
		}
		w.WriteHeader(http.StatusNoContent)
	})
	return middleware.Admin(gate, logging.Nop{})(next), &called
}

func TestAdminMiddleware(t *testing.T) {
	good, _ := auth.MakeToken(auth.RoleAdmin, secret, time.Hour)
	expired, _ := auth.MakeToken(auth.RoleAdmin, secret, -time.Hour)
	user, _ := auth.MakeToken("user", secret, time.Hour)
	forged, _ := auth.MakeToken(auth.RoleAdmin, "nope", time.Hour)

	tests := []struct {
		name   string
		header string
		want   int
	}{
		{"no header", "", http.StatusUnauthorized},
		{"not bearer", "Basic abc", http.StatusUnauthorized},
		{"bearer only", "Bearer", http.StatusUnauthorized},
		{"garbage", "Bearer xyz", http.StatusUnauthorized},
		{"forged", "Bearer " + forged, http.StatusUnauthorized},
		{"expired", "Bearer " + expired, http.StatusForbidden},
		{"wrong role", "Bearer " + user, http.StatusForbidden},
		{"ok", "Bearer " + good, http.StatusNoContent},
		{"ok lowercase scheme", "bearer " + good, http.StatusNoContent},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, called := protected(t)
			req := httptest.NewRequest(http.MethodGet, "/api/admin/appointments", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			rec := httptest.NewRecorder()
			h.ServeHTTP(rec, req)

			assert.Equal(t, tt.want, rec.Code)
			assert.Equal(t, tt.want == http.StatusNoContent, *called)
			if tt.want != http.StatusNoContent {
				assert.Contains(t, rec.Body.String(), `"error"`)
			}
		})
	}
}

func TestRequestLogSetsID(t *testing.T) {
	h := middleware.RequestLog(logging.Nop{})(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	}))

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
	assert.Equal(t, http.StatusTeapot, rec.Code)
	assert.NotEmpty(t, rec.Header().Get(middleware.RequestIDHeader))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(middleware.RequestIDHeader, "abc")
	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	assert.Equal(t, "abc", rec.Header().Get(middleware.RequestIDHeader))
}
