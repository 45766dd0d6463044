package web

// errors.go maps core error sentinels onto HTTP responses. Every handler
// funnels failures through respondError so the technical error is logged
// with the request id while the client sees a stable {error, code} shape.

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/RamezHany/test-form-1-lod-logo-main/internal/core"
	"github.com/go-chi/chi/v5/middleware"
)

// errUnauthorized marks requests without acceptable credentials.
var errUnauthorized = errors.New("unauthorized")

// ErrorResponse is the JSON body returned for failed requests.
type ErrorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code"`
}

// classify maps an error chain to HTTP status and machine-readable code.
func classify(err error) (int, string) {
	switch {
	case errors.Is(err, core.ErrInvalidArgument):
		return http.StatusBadRequest, "INVALID_ARGUMENT"
	case errors.Is(err, core.ErrNotFound):
		return http.StatusNotFound, "NOT_FOUND"
	case errors.Is(err, core.ErrConflict):
		return http.StatusConflict, "CONFLICT"
	case errors.Is(err, core.ErrForbidden):
		return http.StatusForbidden, "FORBIDDEN"
	case errors.Is(err, errUnauthorized):
		return http.StatusUnauthorized, "AUTH_REQUIRED"
	case errors.Is(err, core.ErrStoreUnavailable):
		return http.StatusBadGateway, "STORE_UNAVAILABLE"
	default:
		return http.StatusInternalServerError, "INTERNAL"
	}
}

// respondError logs the technical error and writes the JSON error response.
func respondError(w http.ResponseWriter, r *http.Request, err error) {
	status, code := classify(err)

	slog.Error("request error",
		"path", r.URL.Path,
		"method", r.Method,
		"status", status,
		"code", code,
		"error", err.Error(),
		"request_id", middleware.GetReqID(r.Context()),
	)

	if status == http.StatusUnauthorized {
		w.Header().Set("WWW-Authenticate", `Basic realm="events"`)
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(ErrorResponse{Error: err.Error(), Code: code})
}

// respondJSON encodes v with the given status.
func respondJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Error("json encode error", "error", err)
	}
}
