package nat

import (
	"fmt"
	"math/big"
)

// ToBytes encodes n as a fixed-width big-endian byte slice.
// Errors when n is negative or does not fit in width bytes.
func ToBytes(n *big.Int, width int) ([]byte, error) {
	if n.Sign() < 0 {
		return nil, fmt.Errorf("nat: cannot encode negative value %s", n)
	}
	if (n.BitLen()+7)/8 > width {
		return nil, fmt.Errorf("nat: %s does not fit in %d bytes", n, width)
	}
	return n.FillBytes(make([]byte, width)), nil
}

// FromBytes decodes a big-endian byte slice into a non-negative integer.
// The inverse of ToBytes up to leading zero padding.
func FromBytes(data []byte) *big.Int {
	return new(big.Int).SetBytes(data)
}
