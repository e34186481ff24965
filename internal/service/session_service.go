package service

import (
	"strings"
	"sync"

	"book-club-server/internal/domain"
)

type sessionService struct {
	repo   domain.SessionRepository
	roster map[string]domain.RosterEntry
	logger domain.Logger

	mu      sync.RWMutex
	current *domain.Identity
}

// NewSessionService creates the session store over the fixed roster.
func NewSessionService(repo domain.SessionRepository, logger domain.Logger) domain.SessionService {
	return &sessionService{
		repo:   repo,
		roster: defaultRoster(),
		logger: logger,
	}
}

// Restore loads the persisted identity snapshot, if any. The snapshot
// is trusted as-is except that its username must still exist in the
// roster; a stale snapshot is discarded and its record cleared.
func (s *sessionService) Restore() {
	identity, err := s.repo.Load()
	if err != nil {
		s.logger.Warn("Failed to restore session", "error", err)
		return
	}
	if identity == nil {
		return
	}
	if _, ok := s.roster[strings.ToLower(identity.Username)]; !ok {
		s.logger.Warn("Persisted session references unknown user, clearing", "username", identity.Username)
		if err := s.repo.Clear(); err != nil {
			s.logger.Warn("Failed to clear stale session record", "error", err)
		}
		return
	}

	s.mu.Lock()
	s.current = identity
	s.mu.Unlock()
	s.logger.Info("Session restored", "username", identity.Username)
}

// Login checks the credentials against the roster: username matched
// case-insensitively, secret compared verbatim. On success the identity
// (without the secret) becomes current and is persisted.
func (s *sessionService) Login(username, password string) (*domain.Identity, error) {
	entry, ok := s.roster[strings.ToLower(username)]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	if entry.Secret != password {
		return nil, domain.ErrInvalidCredential
	}

	identity := entry.Identity

	s.mu.Lock()
	s.current = &identity
	s.mu.Unlock()

	if err := s.repo.Save(&identity); err != nil {
		// Persistence failure never blocks a login; the session just
		// won't survive a restart.
		s.logger.Warn("Failed to persist session", "error", err, "username", identity.Username)
	}
	s.logger.Info("Login", "username", identity.Username)
	return &identity, nil
}

// Logout clears the current identity and its persisted record. It
// always succeeds.
func (s *sessionService) Logout() {
	s.mu.Lock()
	s.current = nil
	s.mu.Unlock()

	if err := s.repo.Clear(); err != nil {
		s.logger.Warn("Failed to clear session record", "error", err)
	}
	s.logger.Info("Logout")
}

// Current returns a copy of the current identity, or nil.
func (s *sessionService) Current() *domain.Identity {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.current == nil {
		return nil
	}
	identity := *s.current
	return &identity
}

// IsAuthenticated reports whether a current identity exists.
func (s *sessionService) IsAuthenticated() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.current != nil
}
