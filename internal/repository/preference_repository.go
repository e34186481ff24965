package repository

import (
	"book-club-server/internal/domain"
	"book-club-server/internal/localstore"
)

// preferenceRecordKey is the fixed, versioned record name of the full
// preference set.
const preferenceRecordKey = "club_abissos_preferences_v1"

// PreferenceRepository implements the domain.PreferenceRepository interface
type PreferenceRepository struct {
	store  *localstore.Store
	logger domain.Logger
}

// NewPreferenceRepository creates a new preference repository
func NewPreferenceRepository(store *localstore.Store, logger domain.Logger) domain.PreferenceRepository {
	return &PreferenceRepository{
		store:  store,
		logger: logger,
	}
}

// Load returns the persisted preference fields, or nil when nothing is
// stored. Malformed data is ignored; the caller falls back to defaults
// and the next save overwrites the bad record.
func (r *PreferenceRepository) Load() (*domain.StoredPreferences, error) {
	var stored domain.StoredPreferences
	found, err := r.store.Get(preferenceRecordKey, &stored)
	if err != nil {
		r.logger.Warn("Ignoring malformed preferences record", "error", err)
		return nil, nil
	}
	if !found {
		return nil, nil
	}
	return &stored, nil
}

// Save persists the full preference set.
func (r *PreferenceRepository) Save(prefs domain.Preferences) error {
	return r.store.Put(preferenceRecordKey, prefs)
}
