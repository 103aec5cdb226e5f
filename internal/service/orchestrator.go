// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Li Zuju

package service

import (
	"context"
	"fmt"

	"github.com/lizuju/photosafe/internal/adapter"
	"github.com/lizuju/photosafe/internal/crypto"
	"github.com/lizuju/photosafe/internal/logger"
	"github.com/lizuju/photosafe/internal/store"
	"github.com/lizuju/photosafe/models"
)

// syncService is the default [SyncService] implementation. One instance
// assumes single-writer access to its stores per pass; hosts serialize
// passes.
type syncService struct {
	adapter    adapter.RemoteAdapter
	fetcher    *diffFetcher
	pipeline   *decryptPipeline
	reconciler *reconciler
	snapshots  *store.SnapshotStore
	cursors    *store.CursorStore
	logger     *logger.Logger
}

// NewSyncService wires the diff fetcher, decryption pipeline, and
// reconciler over the given collaborators. pageSize <= 0 selects
// [DefaultPageSize].
func NewSyncService(
	remote adapter.RemoteAdapter,
	provider crypto.Provider,
	snapshots *store.SnapshotStore,
	cursors *store.CursorStore,
	pageSize int,
	log *logger.Logger,
) SyncService {
	return &syncService{
		adapter:    remote,
		fetcher:    newDiffFetcher(remote, cursors, pageSize, log),
		pipeline:   newDecryptPipeline(provider, log),
		reconciler: newReconciler(snapshots, cursors, log),
		snapshots:  snapshots,
		cursors:    cursors,
		logger:     log,
	}
}

// Sync implements [SyncService].
func (s *syncService) Sync(ctx context.Context, token string, collections []models.Collection, thumb models.Dimensions) (models.SyncResult, error) {
	s.adapter.SetToken(token)

	snapshot, err := s.snapshots.Load(ctx)
	if err != nil {
		return models.SyncResult{}, fmt.Errorf("%w: %w", ErrPersistFailed, err)
	}

	snapshot, purged, err := s.purgeStale(ctx, snapshot, collections)
	if err != nil {
		return models.SyncResult{}, err
	}

	outcomes := make(map[int64]models.CollectionOutcome, len(collections))
	wasUpdated := purged

	for _, c := range collections {
		cursor, err := s.cursors.Get(ctx, c.ID)
		if err != nil {
			outcomes[c.ID] = models.CollectionOutcome{
				Status: models.StatusFailed,
				Err:    fmt.Errorf("collection %d cursor: %w: %w", c.ID, ErrPersistFailed, err),
			}
			continue
		}

		if c.UpdationTime <= cursor {
			outcomes[c.ID] = models.CollectionOutcome{Status: models.StatusSkipped}
			s.logger.Debug().Int64("collection_id", c.ID).Msg("collection up to date, skipping")
			continue
		}

		// The collection leaves Skipped here. Even a pass that later
		// fails may have merged pages durably, so the flag flips on
		// entering Fetching, not on reaching Done.
		wasUpdated = true

		merged, err := s.syncCollection(ctx, c, snapshot)
		if err != nil {
			// A failed collection keeps whatever pages it managed to
			// merge durably; later collections still get the latest
			// snapshot.
			snapshot = merged
			outcomes[c.ID] = models.CollectionOutcome{Status: models.StatusFailed, Err: err}
			s.logger.Error().Err(err).Int64("collection_id", c.ID).Msg("collection sync failed")
			continue
		}

		snapshot = merged
		outcomes[c.ID] = models.CollectionOutcome{Status: models.StatusDone}
	}

	return models.SyncResult{
		Files:       snapshot,
		WasUpdated:  wasUpdated,
		Collections: outcomes,
		Thumbnail:   thumb,
	}, nil
}

// syncCollection runs Fetching -> Decrypting -> Merging for one collection
// and returns the latest durably merged snapshot, valid even on error.
func (s *syncService) syncCollection(ctx context.Context, c models.Collection, snapshot []models.File) ([]models.File, error) {
	current := snapshot

	s.logger.Debug().
		Int64("collection_id", c.ID).
		Str("status", string(models.StatusFetching)).
		Msg("collection sync started")

	finalCursor, err := s.fetcher.Fetch(ctx, c, -1, func(ctx context.Context, page []models.File, watermark int64) error {
		s.logger.Debug().Int64("collection_id", c.ID).Str("status", string(models.StatusDecrypting)).Msg("decrypting page")
		decorated, err := s.pipeline.Decorate(ctx, page, c.Key)
		if err != nil {
			return fmt.Errorf("collection %d: %w", c.ID, err)
		}

		s.logger.Debug().Int64("collection_id", c.ID).Str("status", string(models.StatusMerging)).Msg("merging page")
		merged, err := s.reconciler.Apply(ctx, current, decorated, c.ID, watermark)
		if err != nil {
			return err
		}

		current = merged
		return nil
	})
	if err != nil {
		return current, err
	}

	// The collection version can move without new file records (e.g. a
	// rename). Advance the cursor to the declared version so the next pass
	// skips the collection.
	if finalCursor < c.UpdationTime {
		if err := s.cursors.Set(ctx, c.ID, c.UpdationTime); err != nil {
			return current, fmt.Errorf("collection %d cursor: %w: %w", c.ID, ErrPersistFailed, err)
		}
	}

	s.logger.Info().
		Int64("collection_id", c.ID).
		Str("status", string(models.StatusDone)).
		Int("snapshot", len(current)).
		Msg("collection sync finished")

	return current, nil
}

// purgeStale removes records whose collection is no longer among the
// supplied set, persisting the shrunken snapshot before any collection is
// processed. Reports whether anything was removed.
func (s *syncService) purgeStale(ctx context.Context, snapshot []models.File, collections []models.Collection) ([]models.File, bool, error) {
	known := make(map[int64]struct{}, len(collections))
	for _, c := range collections {
		known[c.ID] = struct{}{}
	}

	kept := make([]models.File, 0, len(snapshot))
	for _, f := range snapshot {
		if _, ok := known[f.CollectionID]; ok {
			kept = append(kept, f)
		}
	}

	if len(kept) == len(snapshot) {
		return snapshot, false, nil
	}

	if err := s.snapshots.Save(ctx, kept); err != nil {
		return nil, false, fmt.Errorf("purge stale collections: %w: %w", ErrPersistFailed, err)
	}

	s.logger.Info().Int("purged", len(snapshot)-len(kept)).Msg("purged records of removed collections")
	return kept, true, nil
}
