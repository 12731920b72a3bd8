package lbry

import (
	"bytes"
	"encoding/hex"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGeneratePrivateKeyShape(t *testing.T) {
	for i := 0; i < 100; i++ {
		privateKey, err := GeneratePrivateKey()
		require.NoError(t, err)

		assert.Len(t, privateKey, PrivateKeyLength)
		assert.True(t, isValidScalar(privateKey))
	}
}

func TestDerivePublicKeyShape(t *testing.T) {
	privateKey, err := GeneratePrivateKey()
	require.NoError(t, err)

	publicKey, err := DerivePublicKey(privateKey)
	require.NoError(t, err)

	assert.Len(t, publicKey, PublicKeyLength)
	// Compressed point encoding carries the y parity in the first byte
	assert.Contains(t, []byte{0x02, 0x03}, publicKey[0])
}

func TestDerivePublicKeyIsDeterministic(t *testing.T) {
	privateKey, err := GeneratePrivateKey()
	require.NoError(t, err)

	first, err := DerivePublicKey(privateKey)
	require.NoError(t, err)
	second, err := DerivePublicKey(privateKey)
	require.NoError(t, err)

	assert.True(t, bytes.Equal(first, second))
}

func TestDerivePublicKeyRejectsZeroScalar(t *testing.T) {
	_, err := DerivePublicKey(make([]byte, PrivateKeyLength))

	require.Error(t, err)
	assert.True(t, IsInvalidPrivateKeyError(err))
}

func TestDerivePublicKeyRejectsScalarAboveOrder(t *testing.T) {
	// 2^256 - 1 is far above the secp256k1 group order
	overflow := bytes.Repeat([]byte{0xff}, PrivateKeyLength)

	_, err := DerivePublicKey(overflow)

	require.Error(t, err)
	assert.True(t, IsInvalidPrivateKeyError(err))
}

func TestParsePrivateKey(t *testing.T) {
	input := "1234567890abcdef1234567890abcdef1234567890abcdef1234567890abcdef"

	privateKey, err := ParsePrivateKey(input)
	require.NoError(t, err)

	assert.Len(t, privateKey, PrivateKeyLength)
	assert.Equal(t, input, hex.EncodeToString(privateKey))
}

func TestParsePrivateKeyMalformedHex(t *testing.T) {
	_, err := ParsePrivateKey("invalid_hex")

	require.Error(t, err)
	assert.True(t, IsMalformedInputError(err))
	assert.False(t, IsWrongLengthError(err))
}

func TestParsePrivateKeyWrongLength(t *testing.T) {
	_, err := ParsePrivateKey("1234")

	require.Error(t, err)
	assert.True(t, IsWrongLengthError(err))
	assert.False(t, IsMalformedInputError(err))
}

func TestPrivateKeyFromBytes(t *testing.T) {
	raw := bytes.Repeat([]byte{0x42}, PrivateKeyLength)

	privateKey, err := PrivateKeyFromBytes(raw)
	require.NoError(t, err)
	assert.Equal(t, raw, privateKey)

	// The returned key is a copy, not an alias of the caller's buffer
	raw[0] = 0x00
	assert.Equal(t, byte(0x42), privateKey[0])
}

func TestPrivateKeyFromBytesWrongLength(t *testing.T) {
	for _, size := range []int{0, 16, 31, 33, 64} {
		_, err := PrivateKeyFromBytes(make([]byte, size))

		require.Error(t, err, "size %d", size)
		assert.True(t, IsWrongLengthError(err), "size %d", size)
	}
}
