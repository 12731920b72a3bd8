// Package base58 implements the encode direction of the base-58 text
// encoding used by LBRY addresses (same alphabet as Bitcoin).
package base58

import "math/big"

// alphabet excludes 0, O, I and l to avoid visually ambiguous characters
const alphabet = "123456789ABCDEFGHJKLMNPQRSTUVWXYZabcdefghijkmnopqrstuvwxyz"

var radix = big.NewInt(58)

// Encode interprets data as a big-endian unsigned integer and returns its
// base-58 representation. Each leading zero byte of the input becomes a
// leading '1' in the output, so the byte length survives the encoding.
// Empty input produces an empty string.
func Encode(data []byte) string {
	if len(data) == 0 {
		return ""
	}

	// Base-58 grows the input by ~137%, round up to 138%
	ri := len(data) * 138 / 100
	out := make([]byte, ri+1)

	x := new(big.Int).SetBytes(data)
	m := new(big.Int)

	for x.Sign() > 0 {
		x.DivMod(x, radix, m)
		out[ri] = alphabet[m.Int64()]
		ri--
	}

	// One '1' per leading zero byte
	for _, b := range data {
		if b != 0 {
			break
		}
		out[ri] = alphabet[0]
		ri--
	}

	return string(out[ri+1:])
}
