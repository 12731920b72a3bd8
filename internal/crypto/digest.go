// Package crypto provides the two derived hash functions of the LBRY
// address scheme.
package crypto

import (
	"crypto/sha256"

	"golang.org/x/crypto/ripemd160"
)

// ChecksumLength is the number of DoubleSHA256 bytes appended to a
// versioned payload before base-58 encoding.
const ChecksumLength = 4

// Hash160 computes RIPEMD-160(SHA-256(data)), the 20-byte fingerprint
// used for public key hashing.
func Hash160(data []byte) []byte {
	sha := sha256.Sum256(data)

	ripe := ripemd160.New()
	ripe.Write(sha[:])
	return ripe.Sum(nil)
}

// DoubleSHA256 computes SHA-256(SHA-256(data)).
func DoubleSHA256(data []byte) []byte {
	first := sha256.Sum256(data)
	second := sha256.Sum256(first[:])
	return second[:]
}

// Checksum returns the first ChecksumLength bytes of DoubleSHA256(data).
func Checksum(data []byte) []byte {
	return DoubleSHA256(data)[:ChecksumLength]
}
