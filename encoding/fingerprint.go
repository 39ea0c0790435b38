package encoding

import (
	"golang.org/x/crypto/sha3"

	"github.com/consensys/mlpoly"
	"github.com/consensys/mlpoly/ring"
)

// RingCodec bundles the arithmetic and byte-encoding capabilities needed
// to fingerprint a polynomial; the concrete engines in package ring
// satisfy both.
type RingCodec[E any] interface {
	ring.Ring[E]
	ring.ByteCodec[E]
}

// Fingerprint returns the SHA3-256 digest of the canonical encoding of p:
// the polynomial is pruned first, so two polynomials that are Equal have
// the same fingerprint regardless of stored zero terms.
func Fingerprint[E any](rc RingCodec[E], p mlpoly.Polynomial[E]) ([32]byte, error) {
	data, err := Marshal(mlpoly.Prune[E](rc, p), rc)
	if err != nil {
		return [32]byte{}, err
	}
	return sha3.Sum256(data), nil
}
