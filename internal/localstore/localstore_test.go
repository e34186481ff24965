package localstore

import (
	"testing"

	"github.com/dgraph-io/badger/v4"
)

type record struct {
	Name  string `json:"name"`
	Count int    `json:"count"`
}

func openTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := Open(t.TempDir(), nil)
	if err != nil {
		t.Fatalf("failed to open store: %v", err)
	}
	t.Cleanup(func() {
		if err := store.Close(); err != nil {
			t.Errorf("failed to close store: %v", err)
		}
	})
	return store
}

func TestStore_PutGetRoundTrip(t *testing.T) {
	store := openTestStore(t)

	want := record{Name: "abissos", Count: 3}
	if err := store.Put("test_record_v1", want); err != nil {
		t.Fatalf("put failed: %v", err)
	}

	var got record
	found, err := store.Get("test_record_v1", &got)
	if err != nil {
		t.Fatalf("get failed: %v", err)
	}
	if !found {
		t.Fatalf("expected record to be found")
	}
	if got != want {
		t.Fatalf("expected %+v, got %+v", want, got)
	}
}

func TestStore_GetAbsent(t *testing.T) {
	store := openTestStore(t)

	var got record
	found, err := store.Get("missing", &got)
	if err != nil {
		t.Fatalf("expected no error for absent record, got %v", err)
	}
	if found {
		t.Fatalf("expected record to be absent")
	}
}

func TestStore_PutReplaces(t *testing.T) {
	store := openTestStore(t)

	if err := store.Put("k", record{Name: "first"}); err != nil {
		t.Fatalf("put failed: %v", err)
	}
	if err := store.Put("k", record{Name: "second"}); err != nil {
		t.Fatalf("put failed: %v", err)
	}

	var got record
	if _, err := store.Get("k", &got); err != nil {
		t.Fatalf("get failed: %v", err)
	}
	if got.Name != "second" {
		t.Fatalf("expected last write to win, got %q", got.Name)
	}
}

func TestStore_DeleteIsIdempotent(t *testing.T) {
	store := openTestStore(t)

	if err := store.Put("k", record{Name: "x"}); err != nil {
		t.Fatalf("put failed: %v", err)
	}
	if err := store.Delete("k"); err != nil {
		t.Fatalf("delete failed: %v", err)
	}
	if err := store.Delete("k"); err != nil {
		t.Fatalf("expected deleting an absent record to succeed, got %v", err)
	}

	var got record
	found, err := store.Get("k", &got)
	if err != nil || found {
		t.Fatalf("expected record gone, found=%v err=%v", found, err)
	}
}

func TestStore_GetCorruptRecord(t *testing.T) {
	store := openTestStore(t)

	err := store.db.Update(func(txn *badger.Txn) error {
		return txn.Set([]byte("k"), []byte("{not json"))
	})
	if err != nil {
		t.Fatalf("failed to write raw bytes: %v", err)
	}

	var got record
	if _, err := store.Get("k", &got); err == nil {
		t.Fatalf("expected decode error for corrupt record")
	}
}
