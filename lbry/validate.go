package lbry

const (
	minAddressLength = 26
	maxAddressLength = 35
)

// IsStructurallyValid is a format heuristic only: it checks that the
// address length is within [26, 35] and that the first character is one of
// 'b', 'm' or '1'. It does not decode base-58 or verify the embedded
// checksum, so a true result is not cryptographic proof of a well-formed
// address.
//
// The first-character allow-list is kept exactly as shipped: 'n'-prefixed
// testnet addresses are rejected, and '1' is accepted even though neither
// version prefix produces it at normal address lengths.
func IsStructurallyValid(address string) bool {
	if len(address) < minAddressLength || len(address) > maxAddressLength {
		return false
	}

	switch address[0] {
	case 'b', 'm', '1':
		return true
	}
	return false
}
