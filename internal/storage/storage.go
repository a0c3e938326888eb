// Package storage persists the binary blobs (posters, actor pictures) that
// catalog rows reference by an opaque string.
package storage

import "context"

// FileStorage is the collaborator that owns poster/picture content. Save and
// Replace run before the owning row is persisted, so the returned reference
// can be substituted into the aggregate; Delete runs only after a row
// deletion has committed.
type FileStorage interface {
	Save(ctx context.Context, container string, content []byte, ext string) (string, error)
	Replace(ctx context.Context, container string, content []byte, ext string, oldRef string) (string, error)
	Delete(ctx context.Context, ref, container string) error
}
