package session

import (
	"errors"
	"path/filepath"
	"testing"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := Open(filepath.Join(t.TempDir(), "session.db"))
	if err != nil {
		t.Fatalf("Open() error: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func TestStore_TokenLifecycle(t *testing.T) {
	store := openTestStore(t)

	if _, err := store.Token(); !errors.Is(err, ErrNoToken) {
		t.Fatalf("Token() on empty store = %v, want ErrNoToken", err)
	}

	if err := store.SetToken("first-token"); err != nil {
		t.Fatalf("SetToken() error: %v", err)
	}
	got, err := store.Token()
	if err != nil {
		t.Fatalf("Token() error: %v", err)
	}
	if got != "first-token" {
		t.Errorf("Token() = %q, want %q", got, "first-token")
	}

	// Rotation replaces the stored value
	if err := store.SetToken("second-token"); err != nil {
		t.Fatalf("SetToken() rotation error: %v", err)
	}
	got, err = store.Token()
	if err != nil {
		t.Fatalf("Token() after rotation error: %v", err)
	}
	if got != "second-token" {
		t.Errorf("Token() after rotation = %q, want %q", got, "second-token")
	}

	if err := store.ClearToken(); err != nil {
		t.Fatalf("ClearToken() error: %v", err)
	}
	if _, err := store.Token(); !errors.Is(err, ErrNoToken) {
		t.Fatalf("Token() after clear = %v, want ErrNoToken", err)
	}

	// Clearing twice is not an error
	if err := store.ClearToken(); err != nil {
		t.Fatalf("ClearToken() second call error: %v", err)
	}
}

func TestStore_UserID(t *testing.T) {
	store := openTestStore(t)

	if _, ok := store.UserID(); ok {
		t.Fatal("UserID() with no token should report false")
	}

	if err := store.SetToken(makeToken(`{"user_id":99}`)); err != nil {
		t.Fatalf("SetToken() error: %v", err)
	}
	id, ok := store.UserID()
	if !ok || id != 99 {
		t.Errorf("UserID() = (%d, %v), want (99, true)", id, ok)
	}

	// A malformed token is swallowed, never an error
	if err := store.SetToken("garbage"); err != nil {
		t.Fatalf("SetToken() error: %v", err)
	}
	if _, ok := store.UserID(); ok {
		t.Error("UserID() with malformed token should report false")
	}
}

func TestOpen_PersistsAcrossReopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "session.db")

	store, err := Open(path)
	if err != nil {
		t.Fatalf("Open() error: %v", err)
	}
	if err := store.SetToken("durable"); err != nil {
		t.Fatalf("SetToken() error: %v", err)
	}
	if err := store.Close(); err != nil {
		t.Fatalf("Close() error: %v", err)
	}

	reopened, err := Open(path)
	if err != nil {
		t.Fatalf("Open() reopen error: %v", err)
	}
	defer reopened.Close()

	got, err := reopened.Token()
	if err != nil {
		t.Fatalf("Token() after reopen error: %v", err)
	}
	if got != "durable" {
		t.Errorf("Token() after reopen = %q, want %q", got, "durable")
	}
}
