package repository

import (
	"book-club-server/internal/domain"
	"book-club-server/internal/localstore"
)

// reviewRecordKey is the fixed, versioned record name of the ordered
// review collection.
const reviewRecordKey = "clube_abissos_reviews_v1"

// ReviewRepository implements the domain.ReviewRepository interface
type ReviewRepository struct {
	store  *localstore.Store
	logger domain.Logger
}

// NewReviewRepository creates a new review repository
func NewReviewRepository(store *localstore.Store, logger domain.Logger) domain.ReviewRepository {
	return &ReviewRepository{
		store:  store,
		logger: logger,
	}
}

// Load returns the persisted review collection. Malformed data yields
// an empty collection; partially corrupt state is never retained.
func (r *ReviewRepository) Load() ([]domain.Review, error) {
	var reviews []domain.Review
	found, err := r.store.Get(reviewRecordKey, &reviews)
	if err != nil {
		r.logger.Warn("Ignoring malformed reviews record", "error", err)
		return []domain.Review{}, nil
	}
	if !found {
		return []domain.Review{}, nil
	}
	return reviews, nil
}

// Save persists the full ordered collection.
func (r *ReviewRepository) Save(reviews []domain.Review) error {
	return r.store.Put(reviewRecordKey, reviews)
}
