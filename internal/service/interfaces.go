// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Li Zuju

// Package service implements the sync core of photosafe: the incremental
// diff fetcher, the page decryption pipeline, the snapshot reconciler, the
// per-pass sync orchestrator, and the on-demand content retrieval pipeline.
//
// The package owns no I/O of its own; it composes the transport adapter,
// the decrypt capability, and the local stores injected at construction
// time. All failures wrap the sentinels in errors.go.
package service

import (
	"context"
	"time"

	"github.com/lizuju/photosafe/models"
)

// SyncService drives one full reconciliation pass over a set of
// collections. Concurrent passes against the same local store are not
// supported; callers must serialize invocations.
type SyncService interface {
	// Sync purges records of collections no longer supplied, then fetches,
	// decrypts, and merges the backlog of every out-of-date collection.
	// Per-collection failures are reported in the result, not returned;
	// the returned error is reserved for pass-wide storage failures.
	Sync(ctx context.Context, token string, collections []models.Collection, thumb models.Dimensions) (models.SyncResult, error)
}

// ContentKind selects which content stream of a file to resolve.
type ContentKind string

const (
	// KindPreview resolves the thumbnail stream through the binary cache.
	KindPreview ContentKind = "preview"

	// KindFull resolves the full-content stream, always remotely.
	KindFull ContentKind = "full"
)

// ContentService resolves encrypted file content into transient decrypted
// references, independent of the sync loop.
type ContentService interface {
	// Resolve returns a revocable reference to the decrypted bytes of the
	// requested stream. The caller owns the reference and must revoke it
	// when done. The file must already carry its decrypted Key.
	Resolve(ctx context.Context, token string, file models.File, kind ContentKind) (*BlobRef, error)
}

// SyncJob periodically re-runs a sync pass in the background.
type SyncJob interface {
	// Start launches the background loop with the given interval. A
	// previously running loop is stopped first. The loop exits when ctx is
	// cancelled or Stop is called.
	Start(ctx context.Context, interval time.Duration)

	// Stop cancels the background loop and blocks until it has exited.
	// Safe to call when the job is not running.
	Stop()
}
