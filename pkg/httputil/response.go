package httputil

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/palmnatthakarn/Admin-Dashboard/pkg/apperrors"
	"github.com/palmnatthakarn/Admin-Dashboard/pkg/logger"
)

// StatusResponse is the `{success, message}` envelope used for mutation
// results and every error response.
type StatusResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// WriteJSON writes a JSON response with the given status code.
func WriteJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	// Headers are already sent; nothing meaningful can be done if encoding fails.
	_ = json.NewEncoder(w).Encode(v)
}

// WriteError writes a `{success:false, message}` response for the given
// error. APIErrors carry their own status and client-facing message; anything
// else is treated as an internal error and logged. It prefers the
// request-scoped logger from context over the fallback logger.
func WriteError(w http.ResponseWriter, r *http.Request, err error, fallback *slog.Logger) {
	var apiErr *apperrors.APIError
	if errors.As(err, &apiErr) {
		WriteJSON(w, apiErr.Status, StatusResponse{Success: false, Message: apiErr.Message})
		return
	}

	l := logger.FromContext(r.Context())
	if l == slog.Default() {
		l = fallback
	}
	l.ErrorContext(r.Context(), "internal error",
		slog.String("error", err.Error()),
		slog.String("method", r.Method),
		slog.String("path", r.URL.Path),
	)

	WriteJSON(w, http.StatusInternalServerError, StatusResponse{
		Success: false,
		Message: "an internal error occurred",
	})
}
