// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Li Zuju

package store

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/lizuju/photosafe/models"
)

// snapshotKey is the fixed key the whole snapshot lives under.
const snapshotKey = "files/snapshot"

// SnapshotStore persists the single deduplicated, tombstone-free, sorted
// view of all files across all known collections.
type SnapshotStore struct {
	kv KVStore
}

// NewSnapshotStore wraps kv as the snapshot backend.
func NewSnapshotStore(kv KVStore) *SnapshotStore {
	return &SnapshotStore{kv: kv}
}

// Load returns the persisted snapshot, or an empty slice if none has been
// saved yet.
func (s *SnapshotStore) Load(ctx context.Context) ([]models.File, error) {
	raw, ok, err := s.kv.Get(ctx, snapshotKey)
	if err != nil {
		return nil, fmt.Errorf("load snapshot: %w", err)
	}
	if !ok {
		return []models.File{}, nil
	}

	var files []models.File
	if err = json.Unmarshal(raw, &files); err != nil {
		return nil, fmt.Errorf("decode snapshot: %w", err)
	}
	return files, nil
}

// Save overwrites the persisted snapshot with files.
func (s *SnapshotStore) Save(ctx context.Context, files []models.File) error {
	if files == nil {
		files = []models.File{}
	}

	raw, err := json.Marshal(files)
	if err != nil {
		return fmt.Errorf("encode snapshot: %w", err)
	}

	if err = s.kv.Set(ctx, snapshotKey, raw); err != nil {
		return fmt.Errorf("save snapshot: %w", err)
	}
	return nil
}
