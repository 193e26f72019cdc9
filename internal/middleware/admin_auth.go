package middleware

import (
	"log/slog"
	"net/http"

	"github.com/devfolio/devfolio/internal/auth"
	"github.com/devfolio/devfolio/internal/metrics"
)

// AdminKeyHeader carries the shared admin secret.
const AdminKeyHeader = "X-API-Key"

// AdminAuthConfig holds configuration for the admin auth middleware.
type AdminAuthConfig struct {
	Logger   *slog.Logger
	Verifier auth.Verifier
	Metrics  metrics.Recorder
}

// AdminAuth returns a middleware that gates admin routes behind the
// X-API-Key header. On mismatch the request is rejected with 401 before
// any handler or storage access runs.
func AdminAuth(cfg AdminAuthConfig) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			key := r.Header.Get(AdminKeyHeader)

			if !cfg.Verifier.Verify(key) {
				reason := "invalid_key"
				if key == "" {
					reason = "missing_key"
				}
				cfg.Logger.Warn("admin auth failed",
					slog.String("reason", reason),
					slog.String("ip", r.RemoteAddr),
					slog.String("endpoint", r.Method+" "+r.URL.Path),
					slog.String("request_id", GetRequestID(r.Context())),
				)
				if cfg.Metrics != nil {
					cfg.Metrics.IncAuthFailure()
				}
				writeAuthError(w)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

// writeAuthError writes a 401 Unauthorized response.
// Uses the same message for all auth failures to prevent enumeration.
func writeAuthError(w http.ResponseWriter) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusUnauthorized)
	_, _ = w.Write([]byte(`{"message":"Unauthorized"}`))
}
