package internal

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/openretail/backoffice/testutil"
)

func TestFileTokenStore_RoundTrip(t *testing.T) {
	dir := testutil.CreateTempDir(t)
	store := NewFileTokenStore(dir)

	if got := store.Get(); got != "" {
		t.Errorf("Get() on empty store = %q, want empty", got)
	}

	if err := store.Set("tok-123"); err != nil {
		t.Fatalf("Set() error = %v", err)
	}
	if got := store.Get(); got != "tok-123" {
		t.Errorf("Get() = %q, want %q", got, "tok-123")
	}

	// Overwrite replaces the prior value
	if err := store.Set("tok-456"); err != nil {
		t.Fatalf("Set() error = %v", err)
	}
	if got := store.Get(); got != "tok-456" {
		t.Errorf("Get() after overwrite = %q, want %q", got, "tok-456")
	}

	if err := store.Clear(); err != nil {
		t.Fatalf("Clear() error = %v", err)
	}
	if got := store.Get(); got != "" {
		t.Errorf("Get() after Clear() = %q, want empty", got)
	}
}

func TestFileTokenStore_ClearIsIdempotent(t *testing.T) {
	dir := testutil.CreateTempDir(t)
	store := NewFileTokenStore(dir)

	if err := store.Clear(); err != nil {
		t.Errorf("Clear() on empty store error = %v", err)
	}
	if err := store.Clear(); err != nil {
		t.Errorf("Clear() twice error = %v", err)
	}
}

func TestFileTokenStore_MissingDirectory(t *testing.T) {
	dir := filepath.Join(testutil.CreateTempDir(t), "does", "not", "exist")
	store := NewFileTokenStore(dir)

	// Get must not fail when nothing was ever stored
	if got := store.Get(); got != "" {
		t.Errorf("Get() = %q, want empty", got)
	}

	// Set creates the directory
	if err := store.Set("tok"); err != nil {
		t.Fatalf("Set() error = %v", err)
	}
	if got := store.Get(); got != "tok" {
		t.Errorf("Get() = %q, want %q", got, "tok")
	}
}

func TestFileTokenStore_FilePermissions(t *testing.T) {
	dir := testutil.CreateTempDir(t)
	store := NewFileTokenStore(dir)
	if err := store.Set("secret"); err != nil {
		t.Fatalf("Set() error = %v", err)
	}

	info, err := os.Stat(filepath.Join(dir, TokenFileName))
	if err != nil {
		t.Fatalf("Stat() error = %v", err)
	}
	if perm := info.Mode().Perm(); perm != 0600 {
		t.Errorf("token file permissions = %o, want 600", perm)
	}
}

func TestMemoryTokenStore(t *testing.T) {
	store := &MemoryTokenStore{}

	if got := store.Get(); got != "" {
		t.Errorf("Get() on empty store = %q, want empty", got)
	}
	if err := store.Set("tok"); err != nil {
		t.Fatalf("Set() error = %v", err)
	}
	if got := store.Get(); got != "tok" {
		t.Errorf("Get() = %q, want %q", got, "tok")
	}
	if err := store.Clear(); err != nil {
		t.Fatalf("Clear() error = %v", err)
	}
	if got := store.Get(); got != "" {
		t.Errorf("Get() after Clear() = %q, want empty", got)
	}
}
