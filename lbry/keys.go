package lbry

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"math/big"

	"github.com/btcsuite/btcd/btcec/v2"
)

const (
	// PrivateKeyLength is the byte length of a secp256k1 private key scalar
	PrivateKeyLength = 32

	// PublicKeyLength is the byte length of a compressed secp256k1 point
	PublicKeyLength = 33
)

// curveOrder is the secp256k1 group order n
var curveOrder = btcec.S256().N

// GeneratePrivateKey draws a 32-byte scalar from crypto/rand. Draws that
// fall outside the valid scalar range [1, n) are discarded and redrawn;
// the probability of even one redraw is negligible.
func GeneratePrivateKey() ([]byte, error) {
	privateKey := make([]byte, PrivateKeyLength)
	for {
		if _, err := rand.Read(privateKey); err != nil {
			return nil, fmt.Errorf("failed to read secure random bytes: %w", err)
		}
		if isValidScalar(privateKey) {
			return privateKey, nil
		}
	}
}

// DerivePublicKey multiplies the curve generator by the private key scalar
// and returns the 33-byte compressed point encoding. Returns
// InvalidPrivateKeyError if the scalar is zero or not below the group order.
func DerivePublicKey(privateKey []byte) ([]byte, error) {
	if !isValidScalar(privateKey) {
		return nil, &InvalidPrivateKeyError{Message: "private key is not a valid secp256k1 scalar"}
	}

	_, publicKey := btcec.PrivKeyFromBytes(privateKey)
	return publicKey.SerializeCompressed(), nil
}

// ParsePrivateKey decodes a 64-character hex private key. Returns
// MalformedInputError if the input is not valid hex and WrongLengthError if
// the decoded length is not 32 bytes. Curve-order validity is not checked
// here; it surfaces from DerivePublicKey.
func ParsePrivateKey(input string) ([]byte, error) {
	decoded, err := hex.DecodeString(input)
	if err != nil {
		return nil, &MalformedInputError{Message: fmt.Sprintf("private key is not valid hex: %v", err)}
	}
	return PrivateKeyFromBytes(decoded)
}

// PrivateKeyFromBytes accepts raw private key bytes. Returns
// WrongLengthError if the length is not exactly 32 bytes.
func PrivateKeyFromBytes(b []byte) ([]byte, error) {
	if len(b) != PrivateKeyLength {
		return nil, &WrongLengthError{
			Message: fmt.Sprintf("private key must be %d bytes, got %d", PrivateKeyLength, len(b)),
		}
	}

	privateKey := make([]byte, PrivateKeyLength)
	copy(privateKey, b)
	return privateKey, nil
}

// isValidScalar reports whether sk is 32 bytes encoding a scalar in [1, n)
func isValidScalar(sk []byte) bool {
	if len(sk) != PrivateKeyLength {
		return false
	}
	k := new(big.Int).SetBytes(sk)
	return k.Sign() != 0 && k.Cmp(curveOrder) < 0
}
