package storage

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/google/uuid"
)

// DiskStorage stores blobs under root/<container>/<uuid><ext> and hands out
// references of the form <baseURL>/<container>/<name>.
type DiskStorage struct {
	root    string
	baseURL string
}

func NewDiskStorage(root, baseURL string) *DiskStorage {
	return &DiskStorage{
		root:    root,
		baseURL: baseURL,
	}
}

func (s *DiskStorage) Save(ctx context.Context, container string, content []byte, ext string) (string, error) {
	dir := filepath.Join(s.root, container)

	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("creating container dir: %w", err)
	}

	name := uuid.NewString() + ext

	if err := os.WriteFile(filepath.Join(dir, name), content, 0o644); err != nil {
		return "", fmt.Errorf("writing file: %w", err)
	}

	return fmt.Sprintf("%s/%s/%s", s.baseURL, container, name), nil
}

func (s *DiskStorage) Replace(ctx context.Context, container string, content []byte, ext string, oldRef string) (string, error) {
	if oldRef != "" {
		if err := s.Delete(ctx, oldRef, container); err != nil {
			return "", err
		}
	}

	return s.Save(ctx, container, content, ext)
}

func (s *DiskStorage) Delete(ctx context.Context, ref, container string) error {
	if ref == "" {
		return nil
	}

	path := filepath.Join(s.root, container, filepath.Base(ref))

	err := os.Remove(path)
	if err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("removing file: %w", err)
	}

	return nil
}
