package service

import (
	"sync"

	"book-club-server/internal/domain"
)

type preferenceService struct {
	repo    domain.PreferenceRepository
	ambient domain.AmbientThemeSource
	logger  domain.Logger

	mu      sync.RWMutex
	prefs   domain.Preferences
	display domain.DisplayState
}

// NewPreferenceService creates the preference store, initialized to the
// fixed defaults until Restore overlays persisted values.
func NewPreferenceService(repo domain.PreferenceRepository, ambient domain.AmbientThemeSource, logger domain.Logger) domain.PreferenceService {
	s := &preferenceService{
		repo:    repo,
		ambient: ambient,
		logger:  logger,
		prefs:   domain.DefaultPreferences(),
	}
	s.display = s.derive(s.prefs)
	return s
}

// Restore overlays persisted values on the defaults field-by-field,
// then persists the merged result immediately so a first-run default
// set becomes durable.
func (s *preferenceService) Restore() {
	stored, err := s.repo.Load()
	if err != nil {
		s.logger.Warn("Failed to restore preferences, using defaults", "error", err)
		stored = nil
	}
	merged := domain.DefaultPreferences().Overlay(stored)

	s.mu.Lock()
	s.prefs = merged
	s.mu.Unlock()

	s.persistAndApply(merged)
}

// Get returns the current preference set.
func (s *preferenceService) Get() domain.Preferences {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.prefs
}

// Update replaces exactly one field, leaving all others untouched, then
// persists and reapplies the display derivation as one unit.
func (s *preferenceService) Update(key string, value any) (domain.Preferences, error) {
	s.mu.Lock()
	prefs := s.prefs

	switch key {
	case "theme":
		theme, ok := themeValue(value)
		if !ok {
			s.mu.Unlock()
			return prefs, domain.ValidationErrors{"theme": "Tema inválido"}
		}
		prefs.Theme = theme
	case "fontSize":
		size, ok := fontSizeValue(value)
		if !ok {
			s.mu.Unlock()
			return prefs, domain.ValidationErrors{"fontSize": "Tamanho de fonte inválido"}
		}
		prefs.FontSize = size
	case "highContrast", "hideSpoilers", "showCurrentMonthOnly", "largeCovers", "notifications", "newReviewAlert":
		b, ok := value.(bool)
		if !ok {
			s.mu.Unlock()
			return prefs, domain.ValidationErrors{key: "Valor inválido"}
		}
		switch key {
		case "highContrast":
			prefs.HighContrast = b
		case "hideSpoilers":
			prefs.HideSpoilers = b
		case "showCurrentMonthOnly":
			prefs.ShowCurrentMonthOnly = b
		case "largeCovers":
			prefs.LargeCovers = b
		case "notifications":
			prefs.Notifications = b
		case "newReviewAlert":
			prefs.NewReviewAlert = b
		}
	default:
		s.mu.Unlock()
		return prefs, domain.ValidationErrors{key: "Preferência desconhecida"}
	}

	s.prefs = prefs
	s.mu.Unlock()

	s.persistAndApply(prefs)
	return prefs, nil
}

// ToggleTheme flips light and dark. From "system" it lands on light,
// matching the flip semantics: the result is always a determinate
// value, never back to "system".
func (s *preferenceService) ToggleTheme() domain.Preferences {
	s.mu.Lock()
	prefs := s.prefs
	if prefs.Theme == domain.ThemeLight {
		prefs.Theme = domain.ThemeDark
	} else {
		prefs.Theme = domain.ThemeLight
	}
	s.prefs = prefs
	s.mu.Unlock()

	s.persistAndApply(prefs)
	return prefs
}

// DisplayState returns the derived presentation hooks.
func (s *preferenceService) DisplayState() domain.DisplayState {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.display
}

// persistAndApply is the inseparable tail of every mutation: persist
// the full set, then reapply the derived display state.
func (s *preferenceService) persistAndApply(prefs domain.Preferences) {
	if err := s.repo.Save(prefs); err != nil {
		s.logger.Warn("Failed to persist preferences", "error", err)
	}

	display := s.derive(prefs)
	s.mu.Lock()
	s.display = display
	s.mu.Unlock()
}

// derive resolves the display state. The "system" selection resolves
// through the ambient source at the moment of application; only the
// literal selection is ever persisted.
func (s *preferenceService) derive(prefs domain.Preferences) domain.DisplayState {
	resolved := prefs.Theme
	if resolved == domain.ThemeSystem {
		resolved = s.ambient.AmbientTheme()
	}
	return domain.DisplayState{
		ResolvedTheme: resolved,
		HighContrast:  prefs.HighContrast,
		FontTag:       prefs.FontSize,
	}
}

func themeValue(value any) (domain.Theme, bool) {
	str, ok := value.(string)
	if !ok {
		return "", false
	}
	theme := domain.Theme(str)
	switch theme {
	case domain.ThemeLight, domain.ThemeDark, domain.ThemeSystem:
		return theme, true
	}
	return "", false
}

func fontSizeValue(value any) (domain.FontSize, bool) {
	str, ok := value.(string)
	if !ok {
		return "", false
	}
	size := domain.FontSize(str)
	switch size {
	case domain.FontSmall, domain.FontMedium, domain.FontLarge:
		return size, true
	}
	return "", false
}
