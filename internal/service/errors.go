package service

import "errors"

// Failure taxonomy of the sync core. Every error leaving this package wraps
// exactly one of these sentinels, so hosts can classify failures with
// [errors.Is] without depending on transport or storage details.
var (
	// ErrFetchFailed is a transport-level failure while pulling a diff
	// page. Scoped to one collection's sync attempt; safe to retry by
	// re-invoking the sync pass.
	ErrFetchFailed = errors.New("diff fetch failed")

	// ErrDecryptFailed is a data- or capability-level failure while
	// decorating a page. The entire page is discarded; nothing from it is
	// merged.
	ErrDecryptFailed = errors.New("page decrypt failed")

	// ErrPersistFailed is a storage-level failure while saving the
	// snapshot or a cursor. The collection's watermark is not advanced.
	ErrPersistFailed = errors.New("snapshot persist failed")

	// ErrRetrievalFailed is a record-scoped failure in the content
	// retrieval pipeline. Not retried internally.
	ErrRetrievalFailed = errors.New("content retrieval failed")
)
