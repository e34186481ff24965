package service

import (
	"testing"

	"book-club-server/internal/domain"
)

type mockPreferenceRepo struct {
	stored    *domain.StoredPreferences
	saved     []domain.Preferences
	saveCalls int
}

func (m *mockPreferenceRepo) Load() (*domain.StoredPreferences, error) {
	return m.stored, nil
}

func (m *mockPreferenceRepo) Save(prefs domain.Preferences) error {
	m.saveCalls++
	m.saved = append(m.saved, prefs)
	return nil
}

type fixedAmbient struct {
	theme domain.Theme
}

func (f fixedAmbient) AmbientTheme() domain.Theme { return f.theme }

func themePtr(t domain.Theme) *domain.Theme      { return &t }
func fontPtr(f domain.FontSize) *domain.FontSize { return &f }
func boolPtr(b bool) *bool                       { return &b }

func newPreferenceServiceForTest(repo domain.PreferenceRepository, ambient domain.AmbientThemeSource) domain.PreferenceService {
	return NewPreferenceService(repo, ambient, NewMockLogger())
}

func TestPreferenceService_Restore_MergesOverDefaults(t *testing.T) {
	repo := &mockPreferenceRepo{stored: &domain.StoredPreferences{
		Theme:        themePtr(domain.ThemeDark),
		HideSpoilers: boolPtr(true),
		// Legacy blob: every other field missing.
	}}
	svc := newPreferenceServiceForTest(repo, fixedAmbient{domain.ThemeLight})

	svc.Restore()
	prefs := svc.Get()
	if prefs.Theme != domain.ThemeDark {
		t.Fatalf("expected persisted theme dark, got %s", prefs.Theme)
	}
	if !prefs.HideSpoilers {
		t.Fatalf("expected persisted hideSpoilers true")
	}
	if prefs.FontSize != domain.FontMedium {
		t.Fatalf("expected default fontSize medium, got %s", prefs.FontSize)
	}
	if !prefs.ShowCurrentMonthOnly || !prefs.Notifications || !prefs.NewReviewAlert {
		t.Fatalf("expected remaining fields to keep defaults, got %+v", prefs)
	}
	if repo.saveCalls != 1 {
		t.Fatalf("expected merged result to be persisted immediately, got %d saves", repo.saveCalls)
	}
}

func TestPreferenceService_Restore_NothingStoredPersistsDefaults(t *testing.T) {
	repo := &mockPreferenceRepo{}
	svc := newPreferenceServiceForTest(repo, fixedAmbient{domain.ThemeLight})

	svc.Restore()
	if svc.Get() != domain.DefaultPreferences() {
		t.Fatalf("expected defaults, got %+v", svc.Get())
	}
	if repo.saveCalls != 1 {
		t.Fatalf("expected first-run defaults to become durable, got %d saves", repo.saveCalls)
	}
}

func TestPreferenceService_Update_ChangesExactlyOneField(t *testing.T) {
	repo := &mockPreferenceRepo{}
	svc := newPreferenceServiceForTest(repo, fixedAmbient{domain.ThemeLight})

	before := svc.Get()
	after, err := svc.Update("largeCovers", true)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if !after.LargeCovers {
		t.Fatalf("expected largeCovers to change")
	}
	after.LargeCovers = before.LargeCovers
	if after != before {
		t.Fatalf("expected all other fields untouched: before %+v after %+v", before, after)
	}
	if repo.saveCalls != 1 {
		t.Fatalf("expected mutation to persist, got %d saves", repo.saveCalls)
	}
}

func TestPreferenceService_Update_RejectsUnknownKeyAndBadValues(t *testing.T) {
	svc := newPreferenceServiceForTest(&mockPreferenceRepo{}, fixedAmbient{domain.ThemeLight})

	cases := []struct {
		key   string
		value any
	}{
		{"bogus", true},
		{"theme", "purple"},
		{"theme", 3},
		{"fontSize", "huge"},
		{"hideSpoilers", "yes"},
	}
	for _, tc := range cases {
		if _, err := svc.Update(tc.key, tc.value); err == nil {
			t.Fatalf("expected validation error for %s=%v", tc.key, tc.value)
		}
	}
	if svc.Get() != domain.DefaultPreferences() {
		t.Fatalf("expected rejected updates to leave preferences untouched")
	}
}

func TestPreferenceService_ToggleTheme_IsItsOwnInverse(t *testing.T) {
	svc := newPreferenceServiceForTest(&mockPreferenceRepo{}, fixedAmbient{domain.ThemeLight})

	if svc.ToggleTheme().Theme != domain.ThemeDark {
		t.Fatalf("expected light to toggle to dark")
	}
	if svc.ToggleTheme().Theme != domain.ThemeLight {
		t.Fatalf("expected toggling twice to return to light")
	}
}

func TestPreferenceService_ToggleTheme_FromSystemIsDeterminate(t *testing.T) {
	svc := newPreferenceServiceForTest(&mockPreferenceRepo{}, fixedAmbient{domain.ThemeDark})

	if _, err := svc.Update("theme", "system"); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	got := svc.ToggleTheme().Theme
	if got != domain.ThemeLight && got != domain.ThemeDark {
		t.Fatalf("expected a determinate theme after toggling from system, got %s", got)
	}
	if got == domain.ThemeSystem {
		t.Fatalf("toggle must never land back on system")
	}
}

func TestPreferenceService_DisplayState_ResolvesSystemTheme(t *testing.T) {
	repo := &mockPreferenceRepo{}
	svc := newPreferenceServiceForTest(repo, fixedAmbient{domain.ThemeDark})

	if _, err := svc.Update("theme", "system"); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	display := svc.DisplayState()
	if display.ResolvedTheme != domain.ThemeDark {
		t.Fatalf("expected system to resolve to dark, got %s", display.ResolvedTheme)
	}
	// Only the literal selection is persisted, never the resolution.
	last := repo.saved[len(repo.saved)-1]
	if last.Theme != domain.ThemeSystem {
		t.Fatalf("expected persisted theme to stay system, got %s", last.Theme)
	}
}

func TestPreferenceService_DisplayState_TracksContrastAndFont(t *testing.T) {
	svc := newPreferenceServiceForTest(&mockPreferenceRepo{}, fixedAmbient{domain.ThemeLight})

	if _, err := svc.Update("highContrast", true); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if _, err := svc.Update("fontSize", "large"); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	display := svc.DisplayState()
	if !display.HighContrast {
		t.Fatalf("expected contrast flag on")
	}
	if display.FontTag != domain.FontLarge {
		t.Fatalf("expected font tag large, got %s", display.FontTag)
	}
}

func TestPreferenceService_RoundTrip(t *testing.T) {
	repo := &mockPreferenceRepo{}
	svc := newPreferenceServiceForTest(repo, fixedAmbient{domain.ThemeLight})
	svc.Restore()

	if _, err := svc.Update("fontSize", "small"); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	want := svc.Get()

	// Reload from what was persisted, as if the process restarted.
	last := repo.saved[len(repo.saved)-1]
	repo.stored = &domain.StoredPreferences{
		Theme:                themePtr(last.Theme),
		HighContrast:         boolPtr(last.HighContrast),
		FontSize:             fontPtr(last.FontSize),
		HideSpoilers:         boolPtr(last.HideSpoilers),
		ShowCurrentMonthOnly: boolPtr(last.ShowCurrentMonthOnly),
		LargeCovers:          boolPtr(last.LargeCovers),
		Notifications:        boolPtr(last.Notifications),
		NewReviewAlert:       boolPtr(last.NewReviewAlert),
	}
	fresh := newPreferenceServiceForTest(repo, fixedAmbient{domain.ThemeLight})
	fresh.Restore()
	if fresh.Get() != want {
		t.Fatalf("expected round-tripped preferences %+v, got %+v", want, fresh.Get())
	}
}
