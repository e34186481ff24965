package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"book-club-server/internal/domain"
	apperrors "book-club-server/pkg/errors"
)

// AuthHandler handles authentication-related requests
type AuthHandler struct {
	sessions domain.SessionService
	logger   domain.Logger
}

// NewAuthHandler creates a new authentication handler
func NewAuthHandler(sessions domain.SessionService, logger domain.Logger) *AuthHandler {
	return &AuthHandler{
		sessions: sessions,
		logger:   logger,
	}
}

// Login checks the submitted credentials against the roster. Failures
// are surfaced verbatim as user-facing messages, never retried.
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var creds struct {
		Username string `json:"username"`
		Password string `json:"password"`
	}
	if err := json.NewDecoder(r.Body).Decode(&creds); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	identity, err := h.sessions.Login(creds.Username, creds.Password)
	switch {
	case errors.Is(err, domain.ErrUserNotFound):
		writeAppError(w, apperrors.NewNotFoundError("Usuário não encontrado."))
		return
	case errors.Is(err, domain.ErrInvalidCredential):
		writeAppError(w, apperrors.NewUnauthorizedError("Senha incorreta."))
		return
	case err != nil:
		h.logger.Error("Login failed", err, "username", creds.Username)
		writeAppError(w, apperrors.NewInternalError("Falha no login", err))
		return
	}

	writeJSON(w, http.StatusOK, identity)
}

// Logout clears the session. Always succeeds.
func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	h.sessions.Logout()
	writeJSON(w, http.StatusOK, map[string]string{"message": "Sessão encerrada"})
}

// GetSession returns the current identity, if any.
func (h *AuthHandler) GetSession(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"user":            h.sessions.Current(),
		"isAuthenticated": h.sessions.IsAuthenticated(),
	})
}
