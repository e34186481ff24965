package domain

// Book is one catalog entry for a book-of-the-month cycle.
type Book struct {
	ID       int    `json:"id"`
	Title    string `json:"title"`
	Author   string `json:"author"`
	CoverURL string `json:"cover"`
}

// Catalog is the read-only mapping from month key ("YYYY-MM") to that
// month's ordered book list. Fixed at process start, never mutated.
type Catalog interface {
	BooksFor(monthKey string) []Book
	Months() []string
	MonthName(monthKey string) string
}
