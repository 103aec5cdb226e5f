// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Li Zuju

package models

// File is a single encrypted record in the remote library.
//
// On the wire every secret field arrives encrypted: the per-file key is
// wrapped with the owning collection's key, and Metadata is an encrypted
// blob. Key and Meta are populated by the decryption pipeline after a diff
// page has been fetched; before that they are zero values.
type File struct {
	// ID is unique across the whole local snapshot, not per collection.
	ID           int64 `json:"id"`
	CollectionID int64 `json:"collectionID"`

	// EncryptedKey is the per-file key wrapped with the collection key,
	// base64-encoded. KeyDecryptionNonce is the nonce used for the wrap.
	EncryptedKey       string `json:"encryptedKey"`
	KeyDecryptionNonce string `json:"keyDecryptionNonce"`

	// File and Thumbnail describe where the encrypted payload bytes live
	// and how to decrypt them.
	File      FileAttributes `json:"file"`
	Thumbnail FileAttributes `json:"thumbnail"`

	// Metadata is the encrypted metadata blob as received from the server.
	Metadata EncryptedBlob `json:"metadata"`

	// IsDeleted marks a tombstone. Tombstones carry no decryptable payload;
	// identity plus this flag is all the merge needs.
	IsDeleted bool `json:"isDeleted"`

	// UpdationTime is assigned monotonically by the server and acts as the
	// per-file version during merge resolution.
	UpdationTime int64 `json:"updationTime"`

	// Key is the unwrapped per-file key. Populated by the decryption
	// pipeline; persisted only in the local trusted snapshot.
	Key []byte `json:"key,omitempty"`

	// Meta is the decrypted metadata. Populated by the decryption pipeline.
	Meta Metadata `json:"meta,omitempty"`
}

// FileAttributes holds one content stream of a file: a reference to the
// encrypted bytes and the header needed to decrypt them.
type FileAttributes struct {
	ObjectKey        string `json:"objectKey,omitempty"`
	DecryptionHeader string `json:"decryptionHeader"`
	Size             int64  `json:"size,omitempty"`
}

// EncryptedBlob is a generic encrypted payload: base64 ciphertext plus the
// base64 decryption header that accompanies it.
type EncryptedBlob struct {
	EncryptedData    string `json:"encryptedData"`
	DecryptionHeader string `json:"decryptionHeader"`
}

// Metadata is the decrypted, application-defined metadata of a file.
// CreationTime drives the presentation order of the snapshot.
type Metadata struct {
	Title            string `json:"title"`
	CreationTime     int64  `json:"creationTime"`
	ModificationTime int64  `json:"modificationTime"`
	FileType         int    `json:"fileType"`
	Hash             string `json:"hash,omitempty"`
}
