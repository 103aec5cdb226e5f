// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Li Zuju

package models

// Collection is a keyed, independently versioned group of files shared with
// the account. Collections are supplied by the caller and treated as
// immutable inputs to one sync pass; the Key is already decrypted by the
// host (key exchange is outside this library).
type Collection struct {
	ID   int64  `json:"id"`
	Name string `json:"name,omitempty"`

	// UpdationTime is the server-visible version watermark of the
	// collection. When it equals the locally stored cursor the collection
	// is skipped entirely.
	UpdationTime int64 `json:"updationTime"`

	// Key decrypts the per-file keys of every file in this collection.
	Key []byte `json:"-"`
}
