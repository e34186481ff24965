package domain

import "time"

// ReviewAuthor is the snapshot of the authoring identity embedded in a
// review at creation time. Later profile changes do not rewrite it.
type ReviewAuthor struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Username  string `json:"username"`
	AvatarURL string `json:"avatarUrl"`
}

// Review is one authored opinion of one book. The book fields are a
// snapshot of the catalog at authoring time, not a live reference.
// Reviews are immutable once created; the only transition is deletion.
type Review struct {
	ID         string       `json:"id"`
	MonthKey   string       `json:"monthKey"`
	BookID     int          `json:"bookId"`
	BookTitle  string       `json:"bookTitle"`
	BookAuthor string       `json:"bookAuthor"`
	Rating     int          `json:"rating"`
	Text       string       `json:"text"`
	Date       time.Time    `json:"date"`
	Spoiler    bool         `json:"spoiler"`
	User       ReviewAuthor `json:"user"`
}

// ReviewInput is the submitted review form.
type ReviewInput struct {
	MonthKey string `json:"monthKey"`
	BookID   int    `json:"bookId" validate:"required"`
	Rating   int    `json:"rating" validate:"min=1,max=5"`
	Text     string `json:"text" validate:"required,min=15,max=2000"`
	Spoiler  bool   `json:"spoiler"`
}

// ReviewService manages the review collection, newest first.
type ReviewService interface {
	Restore()
	ListByMonth(monthKey string) []Review
	Create(input ReviewInput, author *Identity) (*Review, error)
	Delete(id string)
}

// ReviewRepository persists the full ordered review collection.
type ReviewRepository interface {
	Load() ([]Review, error)
	Save(reviews []Review) error
}
