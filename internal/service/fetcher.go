// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Li Zuju

package service

import (
	"context"
	"fmt"

	"github.com/lizuju/photosafe/internal/adapter"
	"github.com/lizuju/photosafe/internal/logger"
	"github.com/lizuju/photosafe/internal/store"
	"github.com/lizuju/photosafe/models"
)

// DefaultPageSize bounds one diff page when the host does not configure it.
const DefaultPageSize = 500

// pageFunc consumes one fetched diff page. watermark is the UpdationTime
// of the last record in the page. Returning an error aborts the fetch.
type pageFunc func(ctx context.Context, page []models.File, watermark int64) error

// diffFetcher retrieves the changed-or-deleted backlog of one collection,
// page by page, in strictly increasing version order.
type diffFetcher struct {
	adapter  adapter.RemoteAdapter
	cursors  *store.CursorStore
	pageSize int
	logger   *logger.Logger
}

func newDiffFetcher(remote adapter.RemoteAdapter, cursors *store.CursorStore, pageSize int, log *logger.Logger) *diffFetcher {
	if pageSize <= 0 {
		pageSize = DefaultPageSize
	}
	return &diffFetcher{adapter: remote, cursors: cursors, pageSize: pageSize, logger: log}
}

// Fetch pulls pages of collection's diff since sinceTime and hands each to
// fn. A negative sinceTime falls back to the persisted cursor (zero when
// the collection has never been merged). Pagination stops at the first
// short or empty page. Returns the last watermark observed, which equals
// the starting cursor when the backlog was empty.
func (f *diffFetcher) Fetch(ctx context.Context, collection models.Collection, sinceTime int64, fn pageFunc) (int64, error) {
	cursor := sinceTime
	if cursor < 0 {
		var err error
		cursor, err = f.cursors.Get(ctx, collection.ID)
		if err != nil {
			return 0, fmt.Errorf("collection %d: %w: %w", collection.ID, ErrPersistFailed, err)
		}
	}

	for {
		page, err := f.adapter.GetCollectionDiff(ctx, collection.ID, cursor, f.pageSize)
		if err != nil {
			return cursor, fmt.Errorf("collection %d since %d: %w: %w", collection.ID, cursor, ErrFetchFailed, err)
		}
		if len(page) == 0 {
			return cursor, nil
		}

		watermark := page[len(page)-1].UpdationTime
		f.logger.Debug().
			Int64("collection_id", collection.ID).
			Int("page_len", len(page)).
			Int64("watermark", watermark).
			Msg("fetched diff page")

		if err = fn(ctx, page, watermark); err != nil {
			return cursor, err
		}
		cursor = watermark

		if len(page) < f.pageSize {
			return cursor, nil
		}
	}
}
