package ring

import (
	"fmt"

	"github.com/consensys/gnark-crypto/ecc/bn254/fr"
)

// Bn254 is the scalar field of the BN254 curve, backed by gnark-crypto's
// fr.Element. Elements are passed by value; fr arithmetic works on
// pointers internally but never aliases its inputs here.
type Bn254 struct{}

func (Bn254) Zero() fr.Element {
	var z fr.Element
	return z
}

func (Bn254) One() fr.Element {
	var o fr.Element
	o.SetOne()
	return o
}

func (Bn254) Add(a, b fr.Element) fr.Element {
	var r fr.Element
	r.Add(&a, &b)
	return r
}

func (Bn254) Mul(a, b fr.Element) fr.Element {
	var r fr.Element
	r.Mul(&a, &b)
	return r
}

func (Bn254) IsZero(a fr.Element) bool   { return a.IsZero() }
func (Bn254) Equal(a, b fr.Element) bool { return a.Equal(&b) }

// E coerces v into a field element via fr.Element.SetInterface; panics on
// unsupported inputs.
func (Bn254) E(v interface{}) fr.Element {
	var r fr.Element
	if _, err := r.SetInterface(v); err != nil {
		panic(err)
	}
	return r
}

// Bytes returns the canonical (regular form) big-endian encoding.
func (Bn254) Bytes(a fr.Element) []byte {
	b := a.Bytes()
	return b[:]
}

func (Bn254) FromBytes(data []byte) (fr.Element, error) {
	var r fr.Element
	if len(data) != fr.Bytes {
		return r, fmt.Errorf("ring: expected %d bytes, got %d", fr.Bytes, len(data))
	}
	r.SetBytes(data)
	return r, nil
}
