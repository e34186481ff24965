package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"book-club-server/internal/domain"
	apperrors "book-club-server/pkg/errors"
)

// PreferenceHandler handles preference-related HTTP requests
type PreferenceHandler struct {
	preferences domain.PreferenceService
	logger      domain.Logger
}

// NewPreferenceHandler creates a new preference handler
func NewPreferenceHandler(preferences domain.PreferenceService, logger domain.Logger) *PreferenceHandler {
	return &PreferenceHandler{
		preferences: preferences,
		logger:      logger,
	}
}

// GetPreferences returns the full preference set.
func (h *PreferenceHandler) GetPreferences(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.preferences.Get())
}

// UpdatePreference replaces exactly one field.
func (h *PreferenceHandler) UpdatePreference(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Key   string          `json:"key"`
		Value json.RawMessage `json:"value"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil || body.Key == "" {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	var value any
	if err := json.Unmarshal(body.Value, &value); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid preference value")
		return
	}

	prefs, err := h.preferences.Update(body.Key, value)
	if err != nil {
		var fieldErrs domain.ValidationErrors
		if errors.As(err, &fieldErrs) {
			writeFieldErrors(w, fieldErrs)
			return
		}
		h.logger.Error("Failed to update preference", err, "key", body.Key)
		writeAppError(w, apperrors.NewInternalError("Falha ao atualizar preferências", err))
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"preferences": prefs,
		"display":     h.preferences.DisplayState(),
	})
}

// ToggleTheme flips between light and dark.
func (h *PreferenceHandler) ToggleTheme(w http.ResponseWriter, r *http.Request) {
	prefs := h.preferences.ToggleTheme()
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"preferences": prefs,
		"display":     h.preferences.DisplayState(),
	})
}

// GetDisplay returns the derived display state for the rendering
// environment: resolved theme, contrast flag, font tag.
func (h *PreferenceHandler) GetDisplay(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.preferences.DisplayState())
}
