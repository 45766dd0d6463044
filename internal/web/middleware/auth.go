// Package middleware holds HTTP middleware shared by the web server.
package middleware

import (
	"crypto/subtle"
	"log/slog"
	"net/http"

	"github.com/RamezHany/test-form-1-lod-logo-main/internal/config"
)

// IsAdmin reports whether the request carries the static admin credential
// pair via HTTP Basic auth. Both fields are compared in constant time and
// both comparisons always run, so timing reveals nothing about which field
// mismatched. Credentials are never logged.
func IsAdmin(r *http.Request, cfg *config.AdminConfig) bool {
	username, password, ok := r.BasicAuth()
	if !ok {
		return false
	}
	userOK := subtle.ConstantTimeCompare([]byte(username), []byte(cfg.Username))
	passOK := subtle.ConstantTimeCompare([]byte(password), []byte(cfg.Password))
	return userOK&passOK == 1
}

// AdminOnly rejects requests that do not authenticate as the admin.
func AdminOnly(cfg *config.AdminConfig) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !IsAdmin(r, cfg) {
				slog.Warn("auth: admin credentials rejected",
					"path", r.URL.Path,
					"method", r.Method,
					"remote_addr", r.RemoteAddr,
				)
				w.Header().Set("WWW-Authenticate", `Basic realm="admin"`)
				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(http.StatusUnauthorized)
				w.Write([]byte(`{"error":"unauthorized","code":"AUTH_REQUIRED"}`))
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
