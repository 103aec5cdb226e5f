package service

import (
	"github.com/lizuju/photosafe/internal/adapter"
	"github.com/lizuju/photosafe/internal/crypto"
	"github.com/lizuju/photosafe/internal/logger"
	"github.com/lizuju/photosafe/internal/store"
)

// ClientServices bundles the sync and content services built over one
// local store and one remote adapter.
type ClientServices struct {
	Sync    SyncService
	Content ContentService
}

// NewClientServices constructs the service bundle. kv is the single local
// store backing the snapshot, the cursors, and the preview cache; distinct
// store instances yield fully independent sync sessions. An empty
// cacheNamespace selects [store.DefaultBlobNamespace].
func NewClientServices(
	remote adapter.RemoteAdapter,
	provider crypto.Provider,
	kv store.KVStore,
	pageSize int,
	cacheNamespace string,
	log *logger.Logger,
) *ClientServices {
	if cacheNamespace == "" {
		cacheNamespace = store.DefaultBlobNamespace
	}

	snapshots := store.NewSnapshotStore(kv)
	cursors := store.NewCursorStore(kv)
	cache := store.NewBlobCache(kv, cacheNamespace)

	return &ClientServices{
		Sync:    NewSyncService(remote, provider, snapshots, cursors, pageSize, log),
		Content: NewContentService(remote, provider, cache, log),
	}
}
