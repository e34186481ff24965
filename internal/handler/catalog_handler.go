package handler

import (
	"net/http"

	"book-club-server/internal/domain"
)

// CatalogHandler serves the read-only book-of-the-month table.
type CatalogHandler struct {
	catalog domain.Catalog
}

// NewCatalogHandler creates a new catalog handler
func NewCatalogHandler(catalog domain.Catalog) *CatalogHandler {
	return &CatalogHandler{catalog: catalog}
}

type monthEntry struct {
	MonthKey string        `json:"monthKey"`
	Name     string        `json:"name"`
	Books    []domain.Book `json:"books"`
}

// GetMonths returns every known month with its pt-BR name and books.
func (h *CatalogHandler) GetMonths(w http.ResponseWriter, r *http.Request) {
	months := h.catalog.Months()
	out := make([]monthEntry, 0, len(months))
	for _, key := range months {
		out = append(out, monthEntry{
			MonthKey: key,
			Name:     h.catalog.MonthName(key),
			Books:    h.catalog.BooksFor(key),
		})
	}
	writeJSON(w, http.StatusOK, out)
}
