package lbry

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIsStructurallyValidLengthBounds(t *testing.T) {
	assert.False(t, IsStructurallyValid(""))
	assert.False(t, IsStructurallyValid("b"+strings.Repeat("1", 24))) // 25 chars
	assert.True(t, IsStructurallyValid("b"+strings.Repeat("1", 25)))  // 26 chars
	assert.True(t, IsStructurallyValid("b"+strings.Repeat("1", 34)))  // 35 chars
	assert.False(t, IsStructurallyValid("b"+strings.Repeat("1", 35))) // 36 chars
}

func TestIsStructurallyValidFirstCharacter(t *testing.T) {
	suffix := strings.Repeat("x", 29) // total length 30

	assert.True(t, IsStructurallyValid("b"+suffix))
	assert.True(t, IsStructurallyValid("m"+suffix))
	assert.True(t, IsStructurallyValid("1"+suffix))

	// 'n' testnet addresses fail the shipped allow-list
	assert.False(t, IsStructurallyValid("n"+suffix))
	assert.False(t, IsStructurallyValid("B"+suffix))
	assert.False(t, IsStructurallyValid("x"+suffix))
}

func TestIsStructurallyValidIsNotChecksumVerification(t *testing.T) {
	// Format-only: a garbage body with an allowed prefix and length passes
	assert.True(t, IsStructurallyValid("b00000000000000000000000000000"))
}

func TestIsStructurallyValidAcceptsGeneratedMainnet(t *testing.T) {
	wallet, err := GenerateWallet(Mainnet)
	require.NoError(t, err)

	assert.True(t, IsStructurallyValid(wallet.Address))
}
