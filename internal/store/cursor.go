// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Li Zuju

package store

import (
	"context"
	"fmt"
	"strconv"
)

// CursorStore persists one version watermark per collection: the highest
// file version known to have been durably merged for that collection.
// A cursor is only written after the corresponding merge has been
// persisted (merge-then-advance).
type CursorStore struct {
	kv KVStore
}

// NewCursorStore wraps kv as the cursor backend.
func NewCursorStore(kv KVStore) *CursorStore {
	return &CursorStore{kv: kv}
}

func cursorKey(collectionID int64) string {
	return fmt.Sprintf("collections/%d/cursor", collectionID)
}

// Get returns the stored watermark for collectionID, or zero if the
// collection has never been merged.
func (c *CursorStore) Get(ctx context.Context, collectionID int64) (int64, error) {
	raw, ok, err := c.kv.Get(ctx, cursorKey(collectionID))
	if err != nil {
		return 0, fmt.Errorf("load cursor for collection %d: %w", collectionID, err)
	}
	if !ok {
		return 0, nil
	}

	version, err := strconv.ParseInt(string(raw), 10, 64)
	if err != nil {
		return 0, fmt.Errorf("decode cursor for collection %d: %w", collectionID, err)
	}
	return version, nil
}

// Set overwrites the watermark for collectionID.
func (c *CursorStore) Set(ctx context.Context, collectionID, version int64) error {
	raw := []byte(strconv.FormatInt(version, 10))
	if err := c.kv.Set(ctx, cursorKey(collectionID), raw); err != nil {
		return fmt.Errorf("save cursor for collection %d: %w", collectionID, err)
	}
	return nil
}
