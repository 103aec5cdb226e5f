package store

import (
	"context"
	"fmt"
)

// DefaultBlobNamespace is the cache namespace used for thumbnails.
const DefaultBlobNamespace = "thumbs"

// BlobCache is a namespaced binary cache keyed by file identity. Writes are
// idempotent overwrites, safe to race per key. The cache itself never
// swallows errors; best-effort semantics are the caller's decision.
type BlobCache struct {
	kv        KVStore
	namespace string
}

// NewBlobCache wraps kv as a binary cache under the given namespace.
// An empty namespace falls back to [DefaultBlobNamespace].
func NewBlobCache(kv KVStore, namespace string) *BlobCache {
	if namespace == "" {
		namespace = DefaultBlobNamespace
	}
	return &BlobCache{kv: kv, namespace: namespace}
}

func (b *BlobCache) key(fileID int64) string {
	return fmt.Sprintf("%s/%d", b.namespace, fileID)
}

// Get returns the cached bytes for fileID, reporting absence via ok.
func (b *BlobCache) Get(ctx context.Context, fileID int64) ([]byte, bool, error) {
	data, ok, err := b.kv.Get(ctx, b.key(fileID))
	if err != nil {
		return nil, false, fmt.Errorf("blob cache get %d: %w", fileID, err)
	}
	return data, ok, nil
}

// Put stores data under fileID, overwriting any previous entry.
func (b *BlobCache) Put(ctx context.Context, fileID int64, data []byte) error {
	if err := b.kv.Set(ctx, b.key(fileID), data); err != nil {
		return fmt.Errorf("blob cache put %d: %w", fileID, err)
	}
	return nil
}

// Evict removes the entry for fileID, if present.
func (b *BlobCache) Evict(ctx context.Context, fileID int64) error {
	if err := b.kv.Delete(ctx, b.key(fileID)); err != nil {
		return fmt.Errorf("blob cache evict %d: %w", fileID, err)
	}
	return nil
}
