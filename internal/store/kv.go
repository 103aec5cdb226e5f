// Package store provides the local persistence layer: a small key-value
// primitive plus the typed stores built on top of it — the file snapshot,
// the per-collection version cursors, and the binary content cache.
//
// The KVStore interface is the only persistence primitive the sync core
// depends on. Two implementations ship with the package: a durable SQLite
// store and an in-memory store for tests and ephemeral sessions. Hosts may
// inject their own.
package store

import (
	"context"
	"errors"
)

//go:generate mockgen -source=kv.go -destination=../mock/kv_store_mock.go -package=mock

// ErrStoreClosed is returned by operations on a closed store.
var ErrStoreClosed = errors.New("store is closed")

// KVStore is an async-capable local key-value store. Get reports absence
// via its second return value rather than an error.
type KVStore interface {
	Get(ctx context.Context, key string) ([]byte, bool, error)
	Set(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
}
