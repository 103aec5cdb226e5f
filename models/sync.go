package models

// CollectionStatus tracks the per-collection state machine during one sync
// pass: Pending -> Skipped, or Pending -> Fetching -> Decrypting -> Merging
// -> Done; any failure moves the collection to Failed without affecting the
// other collections of the pass.
type CollectionStatus string

const (
	StatusPending    CollectionStatus = "pending"
	StatusSkipped    CollectionStatus = "skipped"
	StatusFetching   CollectionStatus = "fetching"
	StatusDecrypting CollectionStatus = "decrypting"
	StatusMerging    CollectionStatus = "merging"
	StatusDone       CollectionStatus = "done"
	StatusFailed     CollectionStatus = "failed"
)

// CollectionOutcome is the terminal state of one collection after a pass.
// Err is non-nil only when Status is StatusFailed.
type CollectionOutcome struct {
	Status CollectionStatus
	Err    error
}

// Dimensions is a display-only presentation annotation supplied by the
// caller and copied verbatim onto the sync result. It carries no
// reconciliation semantics.
type Dimensions struct {
	Width  int `json:"width"`
	Height int `json:"height"`
}

// SyncResult is the terminal output of one sync pass: the fully reconciled
// snapshot, per-collection outcomes, and whether anything changed.
type SyncResult struct {
	// Files is the persisted snapshot as of the end of the pass:
	// deduplicated, tombstone-free, sorted by descending creation time.
	Files []File

	// WasUpdated is true when at least one collection left Skipped (its
	// backlog was processed, even if the pass later failed after merging
	// pages durably) or stale collections were purged.
	WasUpdated bool

	// Collections maps collection ID to its terminal outcome.
	Collections map[int64]CollectionOutcome

	// Thumbnail is the caller-supplied presentation dimension pair.
	Thumbnail Dimensions
}

// DiffResponse is the wire shape of one page returned by the collection
// diff endpoint.
type DiffResponse struct {
	Diff []File `json:"diff"`
}
