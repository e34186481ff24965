package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"book-club-server/internal/domain"
	apperrors "book-club-server/pkg/errors"
)

// ReviewHandler handles review-related HTTP requests
type ReviewHandler struct {
	reviews domain.ReviewService
	logger  domain.Logger
}

// NewReviewHandler creates a new review handler
func NewReviewHandler(reviews domain.ReviewService, logger domain.Logger) *ReviewHandler {
	return &ReviewHandler{
		reviews: reviews,
		logger:  logger,
	}
}

// ListByMonth returns the month's reviews, newest first.
func (h *ReviewHandler) ListByMonth(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	monthKey := vars["monthKey"]
	if monthKey == "" {
		writeError(w, http.StatusBadRequest, "Month key is required")
		return
	}

	writeJSON(w, http.StatusOK, h.reviews.ListByMonth(monthKey))
}

// Create submits a new review for the authenticated member. Field
// errors are returned all at once; the client keeps the form state.
func (h *ReviewHandler) Create(w http.ResponseWriter, r *http.Request) {
	identity, ok := GetIdentityFromContext(r)
	if !ok {
		writeAppError(w, apperrors.NewUnauthorizedError("Faça login para continuar"))
		return
	}

	var input domain.ReviewInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	review, err := h.reviews.Create(input, identity)
	if err != nil {
		var fieldErrs domain.ValidationErrors
		if errors.As(err, &fieldErrs) {
			writeFieldErrors(w, fieldErrs)
			return
		}
		h.logger.Error("Failed to create review", err, "month", input.MonthKey)
		writeAppError(w, apperrors.NewInternalError("Falha ao salvar resenha", err))
		return
	}

	writeJSON(w, http.StatusCreated, review)
}

// Delete removes a review. The confirmation dialog is the client's
// gate; removal here is unconditional, and an unknown id is a no-op.
func (h *ReviewHandler) Delete(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	reviewID := vars["id"]
	if reviewID == "" {
		writeError(w, http.StatusBadRequest, "Review ID is required")
		return
	}

	h.reviews.Delete(reviewID)
	w.WriteHeader(http.StatusNoContent)
}
