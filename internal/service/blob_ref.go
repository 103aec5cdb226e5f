package service

import (
	"errors"
	"sync"

	"github.com/google/uuid"
)

// ErrRefRevoked is returned by [BlobRef.Bytes] after the reference has
// been revoked.
var ErrRefRevoked = errors.New("blob reference revoked")

// BlobRef is a transient, revocable local reference to decrypted bytes.
// It holds the underlying memory until the caller revokes it; hosts must
// call Revoke when the content is no longer displayed.
type BlobRef struct {
	id uuid.UUID

	mu      sync.RWMutex
	data    []byte
	revoked bool
}

func newBlobRef(data []byte) *BlobRef {
	return &BlobRef{id: uuid.New(), data: data}
}

// ID returns the unique handle of this reference.
func (r *BlobRef) ID() uuid.UUID {
	return r.id
}

// Bytes returns the decrypted content, or [ErrRefRevoked] once the
// reference has been revoked.
func (r *BlobRef) Bytes() ([]byte, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if r.revoked {
		return nil, ErrRefRevoked
	}
	return r.data, nil
}

// Revoke releases the underlying bytes. Key material and content are
// zeroed before the buffer is dropped. Idempotent.
func (r *BlobRef) Revoke() {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.revoked {
		return
	}
	for i := range r.data {
		r.data[i] = 0
	}
	r.data = nil
	r.revoked = true
}

// Revoked reports whether the reference has been revoked.
func (r *BlobRef) Revoked() bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.revoked
}
