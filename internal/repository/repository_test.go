package repository

import (
	"testing"

	"book-club-server/internal/domain"
	"book-club-server/internal/localstore"
)

// Mock logger used by repository package tests.
type mockLogger struct{}

func (l *mockLogger) Info(msg string, fields ...interface{})             {}
func (l *mockLogger) Error(msg string, err error, fields ...interface{}) {}
func (l *mockLogger) Debug(msg string, fields ...interface{})            {}
func (l *mockLogger) Warn(msg string, fields ...interface{})             {}

func openTestStore(t *testing.T) *localstore.Store {
	t.Helper()
	store, err := localstore.Open(t.TempDir(), &mockLogger{})
	if err != nil {
		t.Fatalf("failed to open store: %v", err)
	}
	t.Cleanup(func() { _ = store.Close() })
	return store
}

func TestSessionRepository_RoundTrip(t *testing.T) {
	store := openTestStore(t)
	repo := NewSessionRepository(store, &mockLogger{})

	identity := &domain.Identity{
		ID: "user_let", Username: "leticia", Name: "Letícia",
		AvatarURL: "/icon-let.jpeg", Role: domain.RoleMember,
	}
	if err := repo.Save(identity); err != nil {
		t.Fatalf("save failed: %v", err)
	}

	got, err := repo.Load()
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if got == nil || *got != *identity {
		t.Fatalf("expected %+v, got %+v", identity, got)
	}
}

func TestSessionRepository_LoadEmpty(t *testing.T) {
	repo := NewSessionRepository(openTestStore(t), &mockLogger{})

	got, err := repo.Load()
	if err != nil || got != nil {
		t.Fatalf("expected nil identity without error, got %+v err=%v", got, err)
	}
}

func TestSessionRepository_ClearRemovesRecord(t *testing.T) {
	repo := NewSessionRepository(openTestStore(t), &mockLogger{})

	if err := repo.Save(&domain.Identity{ID: "user_liv", Username: "livia"}); err != nil {
		t.Fatalf("save failed: %v", err)
	}
	if err := repo.Clear(); err != nil {
		t.Fatalf("clear failed: %v", err)
	}
	got, err := repo.Load()
	if err != nil || got != nil {
		t.Fatalf("expected cleared session, got %+v err=%v", got, err)
	}
}

func TestSessionRepository_MalformedRecordIsDiscardedAndCleared(t *testing.T) {
	store := openTestStore(t)
	// Wrong shape under the session key: a bare number.
	if err := store.Put("club_auth_session_v1", 42); err != nil {
		t.Fatalf("put failed: %v", err)
	}
	repo := NewSessionRepository(store, &mockLogger{})

	got, err := repo.Load()
	if err != nil || got != nil {
		t.Fatalf("expected malformed record discarded, got %+v err=%v", got, err)
	}

	// The record itself must be gone too.
	var raw any
	found, err := store.Get("club_auth_session_v1", &raw)
	if err != nil || found {
		t.Fatalf("expected malformed record cleared, found=%v err=%v", found, err)
	}
}

func TestPreferenceRepository_RoundTrip(t *testing.T) {
	repo := NewPreferenceRepository(openTestStore(t), &mockLogger{})

	prefs := domain.DefaultPreferences()
	prefs.Theme = domain.ThemeDark
	prefs.FontSize = domain.FontLarge
	if err := repo.Save(prefs); err != nil {
		t.Fatalf("save failed: %v", err)
	}

	stored, err := repo.Load()
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if stored == nil || stored.Theme == nil || *stored.Theme != domain.ThemeDark {
		t.Fatalf("expected stored theme dark, got %+v", stored)
	}
	if stored.FontSize == nil || *stored.FontSize != domain.FontLarge {
		t.Fatalf("expected stored fontSize large, got %+v", stored)
	}
}

func TestPreferenceRepository_MalformedFallsBackToNil(t *testing.T) {
	store := openTestStore(t)
	if err := store.Put("club_abissos_preferences_v1", "garbage"); err != nil {
		t.Fatalf("put failed: %v", err)
	}
	repo := NewPreferenceRepository(store, &mockLogger{})

	stored, err := repo.Load()
	if err != nil || stored != nil {
		t.Fatalf("expected malformed preferences ignored, got %+v err=%v", stored, err)
	}
}

func TestReviewRepository_RoundTripPreservesOrder(t *testing.T) {
	repo := NewReviewRepository(openTestStore(t), &mockLogger{})

	reviews := []domain.Review{
		{ID: "rev-2", MonthKey: "2026-01", Rating: 4},
		{ID: "rev-1", MonthKey: "2026-01", Rating: 5},
	}
	if err := repo.Save(reviews); err != nil {
		t.Fatalf("save failed: %v", err)
	}

	got, err := repo.Load()
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if len(got) != 2 || got[0].ID != "rev-2" || got[1].ID != "rev-1" {
		t.Fatalf("expected order preserved, got %v", got)
	}
}

func TestReviewRepository_EmptyAndMalformed(t *testing.T) {
	store := openTestStore(t)
	repo := NewReviewRepository(store, &mockLogger{})

	got, err := repo.Load()
	if err != nil || len(got) != 0 {
		t.Fatalf("expected empty collection, got %v err=%v", got, err)
	}

	if err := store.Put("clube_abissos_reviews_v1", "garbage"); err != nil {
		t.Fatalf("put failed: %v", err)
	}
	got, err = repo.Load()
	if err != nil || len(got) != 0 {
		t.Fatalf("expected malformed collection to yield empty, got %v err=%v", got, err)
	}
}
