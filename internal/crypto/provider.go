// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Li Zuju

package crypto

import (
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"

	"golang.org/x/crypto/chacha20poly1305"
	"golang.org/x/crypto/nacl/secretbox"

	"github.com/lizuju/photosafe/models"
)

const (
	// KeySize is the length of collection keys and per-file keys.
	KeySize = 32

	// boxNonceSize is the secretbox nonce length used for key wrapping.
	boxNonceSize = 24
)

var (
	ErrInvalidKeySize   = errors.New("invalid key size")
	ErrInvalidNonceSize = errors.New("invalid nonce size")
	ErrOpenFailed       = errors.New("ciphertext open failed")
)

// localProvider is the in-process implementation of [Provider]. Per-file
// keys are wrapped with NaCl secretbox (XSalsa20-Poly1305); metadata and
// content payloads use XChaCha20-Poly1305 with the record's decryption
// header as nonce.
type localProvider struct{}

// NewProvider constructs the in-process [Provider].
func NewProvider() Provider {
	return &localProvider{}
}

// DecryptKey implements [Provider]. It base64-decodes both inputs, checks
// the nonce and collection key sizes, and opens the secretbox. An open
// failure almost always means the wrong collection key was supplied.
func (p *localProvider) DecryptKey(encryptedKey, nonce string, collectionKey []byte) ([]byte, error) {
	if len(collectionKey) != KeySize {
		return nil, fmt.Errorf("collection key: %w", ErrInvalidKeySize)
	}

	ct, err := base64.StdEncoding.DecodeString(encryptedKey)
	if err != nil {
		return nil, fmt.Errorf("decode encrypted key: %w", err)
	}
	rawNonce, err := base64.StdEncoding.DecodeString(nonce)
	if err != nil {
		return nil, fmt.Errorf("decode key nonce: %w", err)
	}
	if len(rawNonce) != boxNonceSize {
		return nil, fmt.Errorf("key nonce: %w", ErrInvalidNonceSize)
	}

	var boxNonce [boxNonceSize]byte
	var boxKey [KeySize]byte
	copy(boxNonce[:], rawNonce)
	copy(boxKey[:], collectionKey)

	key, ok := secretbox.Open(nil, ct, &boxNonce, &boxKey)
	if !ok {
		return nil, fmt.Errorf("unwrap file key: %w", ErrOpenFailed)
	}
	return key, nil
}

// DecryptMetadata implements [Provider]. It decrypts blob.EncryptedData
// with the per-file key and blob.DecryptionHeader, then unmarshals the
// plaintext JSON into target (same contract as [encoding/json.Unmarshal]).
func (p *localProvider) DecryptMetadata(blob models.EncryptedBlob, key []byte, target any) error {
	ct, err := base64.StdEncoding.DecodeString(blob.EncryptedData)
	if err != nil {
		return fmt.Errorf("decode metadata: %w", err)
	}

	header, err := p.DecodeHeader(blob.DecryptionHeader)
	if err != nil {
		return fmt.Errorf("metadata header: %w", err)
	}

	plaintext, err := p.DecryptContent(ct, header, key)
	if err != nil {
		return fmt.Errorf("decrypt metadata: %w", err)
	}

	if err := json.Unmarshal(plaintext, target); err != nil {
		return fmt.Errorf("unmarshal metadata: %w", err)
	}
	return nil
}

// DecryptContent implements [Provider]. header is the XChaCha20-Poly1305
// nonce recorded next to the payload at encryption time.
func (p *localProvider) DecryptContent(data, header, key []byte) ([]byte, error) {
	if len(key) != KeySize {
		return nil, fmt.Errorf("file key: %w", ErrInvalidKeySize)
	}
	if len(header) != chacha20poly1305.NonceSizeX {
		return nil, fmt.Errorf("decryption header: %w", ErrInvalidNonceSize)
	}

	aead, err := chacha20poly1305.NewX(key)
	if err != nil {
		return nil, fmt.Errorf("create aead: %w", err)
	}

	plaintext, err := aead.Open(nil, header, data, nil)
	if err != nil {
		// Auth-tag mismatch: corrupted payload or wrong per-file key.
		return nil, fmt.Errorf("open content: %w", ErrOpenFailed)
	}
	return plaintext, nil
}

// DecodeHeader implements [Provider].
func (p *localProvider) DecodeHeader(header string) ([]byte, error) {
	raw, err := base64.StdEncoding.DecodeString(header)
	if err != nil {
		return nil, fmt.Errorf("decode header: %w", err)
	}
	if len(raw) != chacha20poly1305.NonceSizeX {
		return nil, fmt.Errorf("header: %w", ErrInvalidNonceSize)
	}
	return raw, nil
}
