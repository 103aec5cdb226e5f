package service

import (
	"encoding/json"
	"fmt"
	"sync/atomic"

	"github.com/lizuju/photosafe/models"
)

// stubProvider is a deterministic decrypt capability for tests: metadata
// fixtures carry their plaintext JSON directly in EncryptedData, and
// content "decryption" strips a fixed prefix. It avoids mockgen for the
// hot paths where expectations would only restate the fixtures.
type stubProvider struct {
	failKeyFor   string // EncryptedKey value whose unwrap should fail
	keyCalls     atomic.Int64
	contentCalls atomic.Int64
}

func (s *stubProvider) DecryptKey(encryptedKey, _ string, _ []byte) ([]byte, error) {
	s.keyCalls.Add(1)
	if s.failKeyFor != "" && encryptedKey == s.failKeyFor {
		return nil, fmt.Errorf("unwrap %s: bad key", encryptedKey)
	}
	return []byte("file-key-" + encryptedKey), nil
}

func (s *stubProvider) DecryptMetadata(blob models.EncryptedBlob, _ []byte, target any) error {
	return json.Unmarshal([]byte(blob.EncryptedData), target)
}

func (s *stubProvider) DecryptContent(data, _, _ []byte) ([]byte, error) {
	s.contentCalls.Add(1)
	return append([]byte("plain:"), data...), nil
}

func (s *stubProvider) DecodeHeader(header string) ([]byte, error) {
	return []byte(header), nil
}

// wireFile builds a record as it arrives on the wire, before decoration.
// The metadata fixture is plaintext JSON understood by stubProvider.
func wireFile(id, collectionID, version, creationTime int64, deleted bool) models.File {
	f := models.File{
		ID:           id,
		CollectionID: collectionID,
		UpdationTime: version,
		IsDeleted:    deleted,
	}
	if !deleted {
		f.EncryptedKey = fmt.Sprintf("enc-%d", id)
		f.KeyDecryptionNonce = "nonce"
		f.Metadata = models.EncryptedBlob{
			EncryptedData: fmt.Sprintf(`{"title":"file-%d","creationTime":%d}`, id, creationTime),
		}
	}
	return f
}
