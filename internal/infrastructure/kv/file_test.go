package kv

import (
	"context"
	"os"
	"path/filepath"
	"testing"
)

func TestFileStore_SetGetDelete(t *testing.T) {
	store := NewFileStore(filepath.Join(t.TempDir(), "auth.json"))
	ctx := context.Background()

	if _, ok, err := store.Get(ctx, "missing"); err != nil || ok {
		t.Fatalf("expected absent key, got ok=%v err=%v", ok, err)
	}

	if err := store.Set(ctx, "k", "v"); err != nil {
		t.Fatalf("set failed: %v", err)
	}
	v, ok, err := store.Get(ctx, "k")
	if err != nil || !ok || v != "v" {
		t.Fatalf("get returned (%q, %v, %v)", v, ok, err)
	}

	if err := store.Delete(ctx, "k"); err != nil {
		t.Fatalf("delete failed: %v", err)
	}
	if _, ok, _ := store.Get(ctx, "k"); ok {
		t.Fatalf("key survived delete")
	}
	// Deleting an absent key is not an error.
	if err := store.Delete(ctx, "k"); err != nil {
		t.Fatalf("second delete failed: %v", err)
	}
}

func TestFileStore_PersistsAcrossReopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "auth.json")
	ctx := context.Background()

	first := NewFileStore(path)
	if err := first.Set(ctx, "allUsers", `[{"username":"alice"}]`); err != nil {
		t.Fatalf("set failed: %v", err)
	}

	reopened := NewFileStore(path)
	v, ok, err := reopened.Get(ctx, "allUsers")
	if err != nil || !ok {
		t.Fatalf("reopen lost the key: ok=%v err=%v", ok, err)
	}
	if v != `[{"username":"alice"}]` {
		t.Fatalf("reopen corrupted value: %q", v)
	}
}

func TestFileStore_MissingFileReadsEmpty(t *testing.T) {
	store := NewFileStore(filepath.Join(t.TempDir(), "never-written.json"))

	if _, ok, err := store.Get(context.Background(), "k"); err != nil || ok {
		t.Fatalf("expected clean empty store, got ok=%v err=%v", ok, err)
	}
}

func TestFileStore_CorruptFileSurfacesError(t *testing.T) {
	path := filepath.Join(t.TempDir(), "auth.json")
	if err := os.WriteFile(path, []byte("{broken"), 0o600); err != nil {
		t.Fatalf("seed failed: %v", err)
	}

	store := NewFileStore(path)
	if _, _, err := store.Get(context.Background(), "k"); err == nil {
		t.Fatalf("expected decode error for corrupt file")
	}
}
