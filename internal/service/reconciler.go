// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Li Zuju

package service

import (
	"context"
	"fmt"
	"sort"

	"github.com/lizuju/photosafe/internal/logger"
	"github.com/lizuju/photosafe/internal/store"
	"github.com/lizuju/photosafe/models"
)

// reconciler merges decorated diff pages into the persisted snapshot and
// advances the collection cursor, in that order. The merge is idempotent:
// deduplication keys on identity plus version, so re-applying a page after
// a retried fetch yields an identical snapshot.
type reconciler struct {
	snapshots *store.SnapshotStore
	cursors   *store.CursorStore
	logger    *logger.Logger
}

func newReconciler(snapshots *store.SnapshotStore, cursors *store.CursorStore, log *logger.Logger) *reconciler {
	return &reconciler{snapshots: snapshots, cursors: cursors, logger: log}
}

// Apply merges incoming into existing, persists the result, and then
// advances the watermark of collectionID. A persistence failure at either
// step leaves the watermark untouched (merge-then-advance, never the
// reverse). Returns the merged snapshot.
func (r *reconciler) Apply(ctx context.Context, existing, incoming []models.File, collectionID, watermark int64) ([]models.File, error) {
	merged := mergeFiles(existing, incoming)

	if err := r.snapshots.Save(ctx, merged); err != nil {
		return nil, fmt.Errorf("collection %d: %w: %w", collectionID, ErrPersistFailed, err)
	}
	if err := r.cursors.Set(ctx, collectionID, watermark); err != nil {
		return nil, fmt.Errorf("collection %d cursor: %w: %w", collectionID, ErrPersistFailed, err)
	}

	r.logger.Debug().
		Int64("collection_id", collectionID).
		Int("incoming", len(incoming)).
		Int("snapshot", len(merged)).
		Int64("watermark", watermark).
		Msg("merged diff page")

	return merged, nil
}

// mergeFiles combines existing and incoming into a new deduplicated,
// tombstone-free snapshot sorted by descending creation time.
//
// Dedup keeps, per identity, the record with the strictly greatest
// UpdationTime; on a tie the later-encountered copy (i.e. the incoming
// one) wins. Versions strictly increase per update, so ties only occur
// when the same page is re-applied, in which case either copy is
// identical.
func mergeFiles(existing, incoming []models.File) []models.File {
	byID := make(map[int64]models.File, len(existing)+len(incoming))
	for _, f := range existing {
		byID[f.ID] = f
	}
	for _, f := range incoming {
		if cur, ok := byID[f.ID]; !ok || f.UpdationTime >= cur.UpdationTime {
			byID[f.ID] = f
		}
	}

	out := make([]models.File, 0, len(byID))
	for _, f := range byID {
		if f.IsDeleted {
			continue
		}
		out = append(out, f)
	}

	// Deterministic order keeps the merge idempotent: creation time
	// descending, file ID as tiebreak.
	sort.Slice(out, func(i, j int) bool {
		if out[i].Meta.CreationTime != out[j].Meta.CreationTime {
			return out[i].Meta.CreationTime > out[j].Meta.CreationTime
		}
		return out[i].ID < out[j].ID
	})

	return out
}
