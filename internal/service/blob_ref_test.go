package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBlobRef_BytesThenRevoke(t *testing.T) {
	ref := newBlobRef([]byte("secret"))
	assert.NotEqual(t, ref.ID().String(), newBlobRef(nil).ID().String())

	got, err := ref.Bytes()
	require.NoError(t, err)
	assert.Equal(t, []byte("secret"), got)
	assert.False(t, ref.Revoked())

	ref.Revoke()
	assert.True(t, ref.Revoked())

	_, err = ref.Bytes()
	assert.ErrorIs(t, err, ErrRefRevoked)
}

func TestBlobRef_RevokeZeroesBacking(t *testing.T) {
	backing := []byte("sensitive-bytes")
	ref := newBlobRef(backing)

	ref.Revoke()

	for i, b := range backing {
		assert.Zerof(t, b, "byte %d not wiped", i)
	}
}

func TestBlobRef_RevokeIsIdempotent(t *testing.T) {
	ref := newBlobRef([]byte("x"))
	ref.Revoke()
	ref.Revoke()
	assert.True(t, ref.Revoked())
}
