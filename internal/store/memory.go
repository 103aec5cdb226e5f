package store

import (
	"context"
	"sync"
)

// MemKV is an in-memory [KVStore] for tests and ephemeral sessions. Safe
// for concurrent use. Values are copied on the way in and out so callers
// cannot alias the stored bytes.
type MemKV struct {
	mu    sync.RWMutex
	items map[string][]byte
}

// NewMemKV constructs an empty in-memory store.
func NewMemKV() *MemKV {
	return &MemKV{items: make(map[string][]byte)}
}

// Get implements [KVStore].
func (m *MemKV) Get(_ context.Context, key string) ([]byte, bool, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	value, ok := m.items[key]
	if !ok {
		return nil, false, nil
	}
	out := make([]byte, len(value))
	copy(out, value)
	return out, true, nil
}

// Set implements [KVStore].
func (m *MemKV) Set(_ context.Context, key string, value []byte) error {
	stored := make([]byte, len(value))
	copy(stored, value)

	m.mu.Lock()
	defer m.mu.Unlock()
	m.items[key] = stored
	return nil
}

// Delete implements [KVStore].
func (m *MemKV) Delete(_ context.Context, key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.items, key)
	return nil
}

// Len reports the number of stored keys.
func (m *MemKV) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.items)
}
