package session

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/nutriplan/nutriplan-client/internal/types"
)

func sampleSession() types.Session {
	return types.Session{
		Token: "abc123",
		User: &types.UserProfile{
			ID:                "u1",
			Email:             "a@b.com",
			Role:              types.RoleUser,
			Name:              "Alex",
			Age:               30,
			Height:            180,
			Weight:            75.5,
			ActivityLevel:     "moderate",
			DietaryPreference: "vegetarian",
			HealthGoal:        "maintain",
		},
	}
}

func TestFileStore_RoundTrip(t *testing.T) {
	t.Parallel()
	fs := NewFileStore(filepath.Join(t.TempDir(), "nested", "session.json"))
	want := sampleSession()
	if err := fs.Save(want); err != nil {
		t.Fatalf("Save: %v", err)
	}
	got, err := fs.Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if got.Token != want.Token {
		t.Fatalf("token mismatch: %q", got.Token)
	}
	if got.User == nil || *got.User != *want.User {
		t.Fatalf("user round trip lossy: %+v", got.User)
	}
}

func TestFileStore_LoadMissingIsEmpty(t *testing.T) {
	t.Parallel()
	fs := NewFileStore(filepath.Join(t.TempDir(), "absent.json"))
	got, err := fs.Load()
	if err != nil {
		t.Fatalf("missing file must not error: %v", err)
	}
	if got.Valid() || got.User != nil {
		t.Fatalf("want zero session, got %+v", got)
	}
}

func TestFileStore_ClearRemovesBoth(t *testing.T) {
	t.Parallel()
	fs := NewFileStore(filepath.Join(t.TempDir(), "session.json"))
	if err := fs.Save(sampleSession()); err != nil {
		t.Fatalf("Save: %v", err)
	}
	if err := fs.Clear(); err != nil {
		t.Fatalf("Clear: %v", err)
	}
	got, err := fs.Load()
	if err != nil || got.Valid() || got.User != nil {
		t.Fatalf("clear must leave nothing behind: %+v err=%v", got, err)
	}
	// Clearing twice is fine.
	if err := fs.Clear(); err != nil {
		t.Fatalf("second Clear: %v", err)
	}
}

func TestFileStore_Permissions(t *testing.T) {
	t.Parallel()
	if runtime.GOOS == "windows" {
		t.Skip("permission bits not meaningful on windows")
	}
	path := filepath.Join(t.TempDir(), "session.json")
	fs := NewFileStore(path)
	if err := fs.Save(sampleSession()); err != nil {
		t.Fatalf("Save: %v", err)
	}
	info, err := os.Stat(path)
	if err != nil {
		t.Fatalf("stat: %v", err)
	}
	if perm := info.Mode().Perm(); perm != 0o600 {
		t.Fatalf("session file must be 0600, got %v", perm)
	}
}

func TestMemStore_RoundTripAndClear(t *testing.T) {
	t.Parallel()
	ms := NewMemStore()
	want := sampleSession()
	if err := ms.Save(want); err != nil {
		t.Fatalf("Save: %v", err)
	}
	got, _ := ms.Load()
	if got.Token != want.Token || got.User == nil || got.User.ID != "u1" {
		t.Fatalf("round trip mismatch: %+v", got)
	}
	_ = ms.Clear()
	got, _ = ms.Load()
	if got.Valid() || got.User != nil {
		t.Fatalf("clear must empty store: %+v", got)
	}
}
