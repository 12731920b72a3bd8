package lbry

import (
	"encoding/hex"
	"fmt"

	"github.com/bitcoinbrisbane/LBRYAddress/internal/base58"
	"github.com/bitcoinbrisbane/LBRYAddress/internal/crypto"
)

// CreateAddress derives the base-58 address for a compressed public key on
// the given network:
//
//	version byte || hash160(publicKey) || first 4 bytes of double SHA-256
//
// The result is a deterministic function of (publicKey, network).
func CreateAddress(publicKey []byte, network Network) string {
	hash := crypto.Hash160(publicKey)

	versioned := make([]byte, 0, 1+len(hash)+crypto.ChecksumLength)
	versioned = append(versioned, network.VersionByte())
	versioned = append(versioned, hash...)

	payload := append(versioned, crypto.Checksum(versioned)...)
	return base58.Encode(payload)
}

// Wallet is the derived key/address record returned to callers. It is
// built fresh per call and never persisted.
type Wallet struct {
	PrivateKey string `json:"privateKey"`
	PublicKey  string `json:"publicKey"`
	Address    string `json:"address"`
	Network    string `json:"network"`
}

// GenerateWallet generates a fresh random private key and derives its
// public key and address on the given network.
func GenerateWallet(network Network) (*Wallet, error) {
	privateKey, err := GeneratePrivateKey()
	if err != nil {
		return nil, fmt.Errorf("failed to generate private key: %w", err)
	}
	return walletFromKey(privateKey, network)
}

// WalletFromPrivateKey rebuilds the wallet record for a supplied hex
// private key. MalformedInputError and WrongLengthError surface from
// parsing, InvalidPrivateKeyError from derivation.
func WalletFromPrivateKey(input string, network Network) (*Wallet, error) {
	privateKey, err := ParsePrivateKey(input)
	if err != nil {
		return nil, err
	}
	return walletFromKey(privateKey, network)
}

func walletFromKey(privateKey []byte, network Network) (*Wallet, error) {
	publicKey, err := DerivePublicKey(privateKey)
	if err != nil {
		return nil, err
	}

	return &Wallet{
		PrivateKey: hex.EncodeToString(privateKey),
		PublicKey:  hex.EncodeToString(publicKey),
		Address:    CreateAddress(publicKey, network),
		Network:    string(network),
	}, nil
}
