package storage

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestDiskStorageSaveAndDelete(t *testing.T) {
	ctx := context.Background()
	root := t.TempDir()
	s := NewDiskStorage(root, "http://localhost:4000/static")

	ref, err := s.Save(ctx, "movies", []byte("poster-bytes"), ".jpg")
	if err != nil {
		t.Fatalf("Save() error = %v", err)
	}

	if !strings.HasPrefix(ref, "http://localhost:4000/static/movies/") {
		t.Errorf("Save() ref = %q, want static movies prefix", ref)
	}
	if !strings.HasSuffix(ref, ".jpg") {
		t.Errorf("Save() ref = %q, want .jpg suffix", ref)
	}

	path := filepath.Join(root, "movies", filepath.Base(ref))
	content, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("stored file unreadable: %v", err)
	}
	if string(content) != "poster-bytes" {
		t.Errorf("stored content = %q, want %q", content, "poster-bytes")
	}

	if err := s.Delete(ctx, ref, "movies"); err != nil {
		t.Fatalf("Delete() error = %v", err)
	}
	if _, err := os.Stat(path); !os.IsNotExist(err) {
		t.Errorf("file still exists after Delete()")
	}

	// deleting an already-missing reference is not an error
	if err := s.Delete(ctx, ref, "movies"); err != nil {
		t.Errorf("Delete() of missing file error = %v", err)
	}
}

func TestDiskStorageReplace(t *testing.T) {
	ctx := context.Background()
	root := t.TempDir()
	s := NewDiskStorage(root, "http://localhost:4000/static")

	oldRef, err := s.Save(ctx, "actors", []byte("old"), ".png")
	if err != nil {
		t.Fatalf("Save() error = %v", err)
	}

	newRef, err := s.Replace(ctx, "actors", []byte("new"), ".png", oldRef)
	if err != nil {
		t.Fatalf("Replace() error = %v", err)
	}

	if newRef == oldRef {
		t.Errorf("Replace() returned the old reference")
	}

	oldPath := filepath.Join(root, "actors", filepath.Base(oldRef))
	if _, err := os.Stat(oldPath); !os.IsNotExist(err) {
		t.Errorf("old file still exists after Replace()")
	}

	content, err := os.ReadFile(filepath.Join(root, "actors", filepath.Base(newRef)))
	if err != nil {
		t.Fatalf("new file unreadable: %v", err)
	}
	if string(content) != "new" {
		t.Errorf("new content = %q, want %q", content, "new")
	}
}

func TestDiskStorageReplaceWithoutOldRef(t *testing.T) {
	s := NewDiskStorage(t.TempDir(), "http://localhost:4000/static")

	ref, err := s.Replace(context.Background(), "movies", []byte("p"), ".jpg", "")
	if err != nil {
		t.Fatalf("Replace() error = %v", err)
	}
	if ref == "" {
		t.Errorf("Replace() returned empty reference")
	}
}
