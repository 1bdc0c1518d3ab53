package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"photo-hunt-backend/internal/services"
)

// exposeErrors controls whether error envelopes carry the underlying
// error detail. Enabled outside production only.
var exposeErrors bool

// ExposeErrorDetails toggles error detail in response envelopes.
func ExposeErrorDetails(on bool) {
	exposeErrors = on
}

// ErrorResponse is the generic error envelope. Error carries detail
// only in non-production contexts.
type ErrorResponse struct {
	Status  int    `json:"status"`
	Message string `json:"message"`
	Error   string `json:"error,omitempty"`
}

// respondJSON writes a JSON response body
func respondJSON(w http.ResponseWriter, statusCode int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	json.NewEncoder(w).Encode(v)
}

// respondError sends an error envelope
func respondError(w http.ResponseWriter, statusCode int, message string, err error) {
	envelope := ErrorResponse{
		Status:  statusCode,
		Message: message,
	}
	if exposeErrors && err != nil {
		envelope.Error = err.Error()
	}
	respondJSON(w, statusCode, envelope)
}

// respondServiceError maps service-boundary errors to status codes.
// Validation failures respond with the bare field-error array so the
// client can render per-field messages.
func respondServiceError(w http.ResponseWriter, err error) {
	var verrs services.ValidationErrors
	switch {
	case errors.As(err, &verrs):
		respondJSON(w, http.StatusBadRequest, verrs)
	case errors.Is(err, services.ErrPhotoNotFound),
		errors.Is(err, services.ErrSessionNotFound),
		errors.Is(err, services.ErrTargetNotFound):
		respondError(w, http.StatusNotFound, err.Error(), nil)
	case errors.Is(err, services.ErrAlreadyRegistered):
		respondError(w, http.StatusBadRequest, "This user is already registered to the leaderboard!", nil)
	default:
		respondError(w, http.StatusInternalServerError, "Internal server error", err)
	}
}

// NotFound is the fallback handler for unmatched routes.
func NotFound(w http.ResponseWriter, r *http.Request) {
	respondError(w, http.StatusNotFound, "Not Found", nil)
}
