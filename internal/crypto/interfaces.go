// Package crypto defines the decrypt capability used by the sync and
// content pipelines, together with a local in-process implementation.
//
// The capability is deliberately modeled as an interface: production hosts
// may bind it to a sandboxed worker process, while tests bind it to a
// deterministic stub or mock. Latency and failure are the only observable
// contract; callers never see key material handling internals.
package crypto

import "github.com/lizuju/photosafe/models"

//go:generate mockgen -source=interfaces.go -destination=../mock/crypto_provider_mock.go -package=mock

// Provider is the opaque decrypt capability consumed by the decryption and
// content retrieval pipelines.
type Provider interface {
	// DecryptKey unwraps a base64-encoded per-file key that was sealed
	// with collectionKey, using the base64-encoded nonce stored alongside
	// the record. Returns the plaintext key bytes.
	DecryptKey(encryptedKey, nonce string, collectionKey []byte) ([]byte, error)

	// DecryptMetadata decrypts blob with the per-file key and unmarshals
	// the plaintext JSON into target, which must be a non-nil pointer.
	DecryptMetadata(blob models.EncryptedBlob, key []byte, target any) error

	// DecryptContent decrypts raw payload bytes using the given decryption
	// header and per-file key.
	DecryptContent(data, header, key []byte) ([]byte, error)

	// DecodeHeader decodes a base64-encoded decryption header into its
	// raw byte form, validating its length.
	DecodeHeader(header string) ([]byte, error)
}
