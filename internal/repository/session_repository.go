package repository

import (
	"book-club-server/internal/domain"
	"book-club-server/internal/localstore"
)

// sessionRecordKey is the fixed, versioned record name of the current
// identity snapshot. The secret is never part of the snapshot.
const sessionRecordKey = "club_auth_session_v1"

// SessionRepository implements the domain.SessionRepository interface
type SessionRepository struct {
	store  *localstore.Store
	logger domain.Logger
}

// NewSessionRepository creates a new session repository
func NewSessionRepository(store *localstore.Store, logger domain.Logger) domain.SessionRepository {
	return &SessionRepository{
		store:  store,
		logger: logger,
	}
}

// Load returns the persisted identity snapshot, or nil when none is
// stored. A malformed record is discarded and cleared, never fatal.
func (r *SessionRepository) Load() (*domain.Identity, error) {
	var identity domain.Identity
	found, err := r.store.Get(sessionRecordKey, &identity)
	if err != nil {
		r.logger.Warn("Discarding malformed session record", "error", err)
		if clearErr := r.store.Delete(sessionRecordKey); clearErr != nil {
			r.logger.Warn("Failed to clear malformed session record", "error", clearErr)
		}
		return nil, nil
	}
	if !found {
		return nil, nil
	}
	return &identity, nil
}

// Save persists the identity snapshot.
func (r *SessionRepository) Save(identity *domain.Identity) error {
	return r.store.Put(sessionRecordKey, identity)
}

// Clear removes the persisted snapshot.
func (r *SessionRepository) Clear() error {
	return r.store.Delete(sessionRecordKey)
}
