package service

import (
	"sync"
	"time"

	"book-club-server/internal/domain"
	"book-club-server/internal/id"
	"book-club-server/internal/validation"
)

type reviewService struct {
	repo      domain.ReviewRepository
	catalog   domain.Catalog
	validator *validation.Validator
	logger    domain.Logger

	mu      sync.RWMutex
	reviews []domain.Review
}

// NewReviewService creates the review store.
func NewReviewService(repo domain.ReviewRepository, catalog domain.Catalog, logger domain.Logger) domain.ReviewService {
	return &reviewService{
		repo:      repo,
		catalog:   catalog,
		validator: validation.New(),
		logger:    logger,
		reviews:   []domain.Review{},
	}
}

// Restore loads the persisted collection. Malformed data yields an
// empty collection; the repository already absorbed the failure.
func (s *reviewService) Restore() {
	reviews, err := s.repo.Load()
	if err != nil {
		s.logger.Warn("Failed to restore reviews, starting empty", "error", err)
		reviews = []domain.Review{}
	}

	s.mu.Lock()
	s.reviews = reviews
	s.mu.Unlock()
	s.logger.Info("Reviews restored", "count", len(reviews))
}

// ListByMonth returns the reviews for a month in store order (newest
// first). Unknown months yield an empty slice, never an error.
func (s *reviewService) ListByMonth(monthKey string) []domain.Review {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := []domain.Review{}
	for _, review := range s.reviews {
		if review.MonthKey == monthKey {
			out = append(out, review)
		}
	}
	return out
}

// Create validates the form, collecting every invalid field, then
// synthesizes the review with denormalized book and author snapshots,
// prepends it, and persists the collection. A nil author is a
// precondition violation: the handler gates on authentication.
func (s *reviewService) Create(input domain.ReviewInput, author *domain.Identity) (*domain.Review, error) {
	if author == nil {
		return nil, domain.ErrNotAuthenticated
	}

	errs := s.validator.Validate(input)
	if errs == nil {
		errs = domain.ValidationErrors{}
	}

	var book *domain.Book
	if _, has := errs["bookId"]; !has {
		for _, b := range s.catalog.BooksFor(input.MonthKey) {
			if b.ID == input.BookID {
				book = &b
				break
			}
		}
		if book == nil {
			errs["bookId"] = "Livro não encontrado para este mês"
		}
	}

	if len(errs) > 0 {
		return nil, errs
	}

	reviewID, err := id.Generate("rev")
	if err != nil {
		return nil, err
	}

	review := domain.Review{
		ID:         reviewID,
		MonthKey:   input.MonthKey,
		BookID:     book.ID,
		BookTitle:  book.Title,
		BookAuthor: book.Author,
		Rating:     input.Rating,
		Text:       input.Text,
		Date:       time.Now().UTC(),
		Spoiler:    input.Spoiler,
		User: domain.ReviewAuthor{
			ID:        author.ID,
			Name:      author.Name,
			Username:  author.Username,
			AvatarURL: author.AvatarURL,
		},
	}

	s.mu.Lock()
	s.reviews = append([]domain.Review{review}, s.reviews...)
	snapshot := s.reviews
	s.mu.Unlock()

	if err := s.repo.Save(snapshot); err != nil {
		s.logger.Warn("Failed to persist reviews", "error", err)
	}
	s.logger.Info("Review created", "id", review.ID, "month", review.MonthKey, "by", author.Username)
	return &review, nil
}

// Delete removes the matching review if present and persists the
// result. Deleting an unknown id is a no-op, not an error. The
// interactive confirmation is the caller's gate, not ours.
func (s *reviewService) Delete(reviewID string) {
	s.mu.Lock()
	kept := make([]domain.Review, 0, len(s.reviews))
	removed := false
	for _, review := range s.reviews {
		if review.ID == reviewID {
			removed = true
			continue
		}
		kept = append(kept, review)
	}
	if removed {
		s.reviews = kept
	}
	snapshot := s.reviews
	s.mu.Unlock()

	if !removed {
		return
	}
	if err := s.repo.Save(snapshot); err != nil {
		s.logger.Warn("Failed to persist reviews", "error", err)
	}
	s.logger.Info("Review deleted", "id", reviewID)
}
