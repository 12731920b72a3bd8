package lbry

import "fmt"

// Network selects the address version prefix.
type Network string

const (
	Mainnet Network = "mainnet"
	Testnet Network = "testnet"
)

// Version prefixes are fixed protocol parameters. Mainnet addresses encode
// to strings starting with 'b', testnet to 'm' or 'n'.
const (
	mainnetPrefix byte = 0x55
	testnetPrefix byte = 0x6f
)

// ParseNetwork parses a network tag ("mainnet" or "testnet").
func ParseNetwork(s string) (Network, error) {
	switch Network(s) {
	case Mainnet:
		return Mainnet, nil
	case Testnet:
		return Testnet, nil
	}
	return "", fmt.Errorf("unknown network %q: must be mainnet or testnet", s)
}

// VersionByte returns the single-byte version prefix for the network.
// Unrecognized values fall back to the mainnet prefix.
func (n Network) VersionByte() byte {
	if n == Testnet {
		return testnetPrefix
	}
	return mainnetPrefix
}
