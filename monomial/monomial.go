// Package monomial implements the bit encoding of multilinear monomials.
//
// A monomial over variables x_0, x_1, ... is identified by the set of
// variable indices it contains; the set is packed into a single
// arbitrary-precision unsigned integer, the Key, whose bit i is set iff
// x_i appears. The zero Key is the constant monomial (empty index set).
// This encoding is a bijection between finite sets of non-negative
// integers and non-negative integers.
package monomial

import (
	"math/big"
	"math/bits"
	"strconv"
	"strings"

	"github.com/bits-and-blooms/bitset"
)

// Key is a bit-encoded monomial index set. The zero value is the constant
// monomial. Keys are immutable; all methods return fresh values.
type Key struct {
	n big.Int
}

// FromIndices encodes a set of variable indices into a Key.
// Duplicate indices are allowed and have no effect.
func FromIndices(indices ...uint) Key {
	var k Key
	for _, i := range indices {
		k.n.SetBit(&k.n, int(i), 1)
	}
	return k
}

// FromBig builds a Key from a raw non-negative integer encoding.
// It copies n. Panics if n is negative.
func FromBig(n *big.Int) Key {
	if n.Sign() < 0 {
		panic("monomial: negative key")
	}
	var k Key
	k.n.Set(n)
	return k
}

// FromBytes rebuilds a Key from its big-endian byte encoding, as produced
// by Bytes.
func FromBytes(data []byte) Key {
	var k Key
	k.n.SetBytes(data)
	return k
}

// FromBitSet builds a Key from a bit set of variable indices.
func FromBitSet(b *bitset.BitSet) Key {
	var k Key
	for i, ok := b.NextSet(0); ok; i, ok = b.NextSet(i + 1) {
		k.n.SetBit(&k.n, int(i), 1)
	}
	return k
}

// Indices decodes the Key back into its variable indices, in ascending
// order. The constant Key decodes to an empty (nil) set.
func (k Key) Indices() []uint {
	if k.n.Sign() == 0 {
		return nil
	}
	indices := make([]uint, 0, k.Degree())
	for i := 0; i < k.n.BitLen(); i++ {
		if k.n.Bit(i) == 1 {
			indices = append(indices, uint(i))
		}
	}
	return indices
}

// BitSet returns the Key's index set as a bit set.
func (k Key) BitSet() *bitset.BitSet {
	b := bitset.New(uint(k.n.BitLen()))
	for i := 0; i < k.n.BitLen(); i++ {
		if k.n.Bit(i) == 1 {
			b.Set(uint(i))
		}
	}
	return b
}

// Union returns the Key whose index set is the union of k's and o's.
// For keys with disjoint supports this is the product monomial.
func (k Key) Union(o Key) Key {
	var r Key
	r.n.Or(&k.n, &o.n)
	return r
}

// Overlaps reports whether k and o share at least one variable.
func (k Key) Overlaps(o Key) bool {
	var t big.Int
	return t.And(&k.n, &o.n).Sign() != 0
}

// Has reports whether variable x_i appears in the monomial.
func (k Key) Has(i uint) bool {
	return k.n.Bit(int(i)) == 1
}

// IsConstant reports whether the Key is the constant monomial.
func (k Key) IsConstant() bool {
	return k.n.Sign() == 0
}

// Degree returns the number of variables in the monomial.
func (k Key) Degree() int {
	d := 0
	for _, w := range k.n.Bits() {
		d += bits.OnesCount(uint(w))
	}
	return d
}

// Cmp compares the numeric values of two Keys.
func (k Key) Cmp(o Key) int {
	return k.n.Cmp(&o.n)
}

// Equal reports whether two Keys encode the same index set.
func (k Key) Equal(o Key) bool {
	return k.n.Cmp(&o.n) == 0
}

// Big returns a copy of the Key's integer encoding.
func (k Key) Big() *big.Int {
	return new(big.Int).Set(&k.n)
}

// Bytes returns the big-endian byte encoding of the Key. The constant Key
// encodes to an empty slice.
func (k Key) Bytes() []byte {
	return k.n.Bytes()
}

// String renders the monomial's variables in ascending index order, e.g.
// "x0x4". The constant Key renders to the empty string.
func (k Key) String() string {
	var sb strings.Builder
	for _, i := range k.Indices() {
		sb.WriteByte('x')
		sb.WriteString(strconv.FormatUint(uint64(i), 10))
	}
	return sb.String()
}
