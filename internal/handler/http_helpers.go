package handler

import (
	"encoding/json"
	"net/http"

	"book-club-server/internal/domain"
	apperrors "book-club-server/pkg/errors"
)

type contextKey string

const identityContextKey contextKey = "identity"

// GetIdentityFromContext extracts the authenticated identity from
// request context.
func GetIdentityFromContext(r *http.Request) (*domain.Identity, bool) {
	identity, ok := r.Context().Value(identityContextKey).(*domain.Identity)
	return identity, ok
}

// writeJSON writes a JSON response
func writeJSON(w http.ResponseWriter, statusCode int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	_ = json.NewEncoder(w).Encode(data)
}

// writeAppError writes a structured error response with its mapped
// HTTP status.
func writeAppError(w http.ResponseWriter, appErr *apperrors.AppError) {
	writeJSON(w, appErr.StatusCode, appErr)
}

// writeError writes a plain error response
func writeError(w http.ResponseWriter, statusCode int, message string) {
	writeJSON(w, statusCode, map[string]string{"error": message})
}

// writeFieldErrors writes a validation response with one message per
// invalid field, so the form can surface all of them at once.
func writeFieldErrors(w http.ResponseWriter, errs domain.ValidationErrors) {
	writeAppError(w, apperrors.NewValidationError("Verifique os campos destacados", errs))
}
