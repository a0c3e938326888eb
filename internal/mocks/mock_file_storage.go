package mocks

import (
	"context"

	"github.com/metinatakli/movie-catalog-system/internal/storage"
)

type MockFileStorage struct {
	storage.FileStorage
	SaveFunc    func(ctx context.Context, container string, content []byte, ext string) (string, error)
	ReplaceFunc func(ctx context.Context, container string, content []byte, ext string, oldRef string) (string, error)
	DeleteFunc  func(ctx context.Context, ref, container string) error
}

func (m *MockFileStorage) Save(ctx context.Context, container string, content []byte, ext string) (string, error) {
	return m.SaveFunc(ctx, container, content, ext)
}

func (m *MockFileStorage) Replace(ctx context.Context, container string, content []byte, ext string, oldRef string) (string, error) {
	return m.ReplaceFunc(ctx, container, content, ext, oldRef)
}

func (m *MockFileStorage) Delete(ctx context.Context, ref, container string) error {
	return m.DeleteFunc(ctx, ref, container)
}
