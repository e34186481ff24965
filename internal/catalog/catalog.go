// Package catalog holds the club's fixed book-of-the-month table. It is
// read-only: the state core never mutates it.
package catalog

import (
	"sort"
	"strconv"
	"strings"

	"book-club-server/internal/domain"
)

// monthNames are pt-BR month names, indexed by month number - 1. The
// club's UI is Brazilian Portuguese throughout.
var monthNames = [12]string{
	"janeiro", "fevereiro", "março", "abril", "maio", "junho",
	"julho", "agosto", "setembro", "outubro", "novembro", "dezembro",
}

type staticCatalog struct {
	booksByMonth map[string][]domain.Book
}

// New creates the catalog with the club's current picks.
func New() domain.Catalog {
	return &staticCatalog{
		booksByMonth: map[string][]domain.Book{
			"2026-01": {
				{ID: 1, Title: "Elite de Prata", Author: "Dani Francis", CoverURL: "https://m.media-amazon.com/images/I/81tycP3bo7L._SY466_.jpg"},
			},
			"2026-02": {
				{ID: 101, Title: "Anjos e Demônios", Author: "Dan Brown", CoverURL: "https://m.media-amazon.com/images/I/51MWbI+i+XL._SY425_.jpg"},
			},
			"2026-03": {}, // Placeholder, pick not announced yet
		},
	}
}

// BooksFor returns the ordered book list for a month, or nil when the
// month is unknown. The returned slice is a copy.
func (c *staticCatalog) BooksFor(monthKey string) []domain.Book {
	books, ok := c.booksByMonth[monthKey]
	if !ok {
		return nil
	}
	out := make([]domain.Book, len(books))
	copy(out, books)
	return out
}

// Months returns the known month keys in ascending order.
func (c *staticCatalog) Months() []string {
	months := make([]string, 0, len(c.booksByMonth))
	for key := range c.booksByMonth {
		months = append(months, key)
	}
	sort.Strings(months)
	return months
}

// MonthName returns the pt-BR month name for a "YYYY-MM" key, or ""
// when the key is malformed.
func (c *staticCatalog) MonthName(monthKey string) string {
	parts := strings.SplitN(monthKey, "-", 2)
	if len(parts) != 2 {
		return ""
	}
	month, err := strconv.Atoi(parts[1])
	if err != nil || month < 1 || month > 12 {
		return ""
	}
	return monthNames[month-1]
}
