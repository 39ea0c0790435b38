package ring

import (
	"fmt"
	"math/big"

	"github.com/consensys/mlpoly/internal/utils"
	"github.com/consensys/mlpoly/nat"
)

// Integers is the ring of arbitrary-precision integers.
type Integers struct{}

func (Integers) Zero() *big.Int { return new(big.Int) }
func (Integers) One() *big.Int  { return big.NewInt(1) }

func (Integers) Add(a, b *big.Int) *big.Int { return new(big.Int).Add(a, b) }
func (Integers) Mul(a, b *big.Int) *big.Int { return new(big.Int).Mul(a, b) }

func (Integers) IsZero(a *big.Int) bool   { return a.Sign() == 0 }
func (Integers) Equal(a, b *big.Int) bool { return a.Cmp(b) == 0 }

// E coerces v into a ring element. v must be a primitive integer type,
// big.Int, *big.Int, a decimal/0x/0b string, []byte or a gnark-crypto
// field element; panics otherwise.
func (Integers) E(v interface{}) *big.Int {
	r := utils.FromInterface(v)
	return &r
}

// Bytes encodes a (possibly negative) integer; inverse of FromBytes.
func (Integers) Bytes(a *big.Int) []byte {
	b, _ := a.GobEncode() // cannot fail on a non-nil big.Int
	return b
}

func (Integers) FromBytes(data []byte) (*big.Int, error) {
	r := new(big.Int)
	if err := r.GobDecode(data); err != nil {
		return nil, fmt.Errorf("ring: decoding integer: %w", err)
	}
	return r, nil
}

// Modular is the ring of integers modulo a fixed modulus. All returned
// elements are reduced to [0, mod).
type Modular struct {
	mod   *big.Int
	width int
}

// NewModular builds the ring Z/modZ. Panics if mod < 2.
func NewModular(mod *big.Int) Modular {
	if mod.Cmp(big.NewInt(2)) < 0 {
		panic("ring: modulus must be >= 2")
	}
	m := new(big.Int).Set(mod)
	return Modular{mod: m, width: (m.BitLen() + 7) / 8}
}

// Modulus returns a copy of the ring modulus.
func (m Modular) Modulus() *big.Int { return new(big.Int).Set(m.mod) }

func (m Modular) Zero() *big.Int { return new(big.Int) }
func (m Modular) One() *big.Int  { return big.NewInt(1) }

func (m Modular) Add(a, b *big.Int) *big.Int {
	r := new(big.Int).Add(a, b)
	return r.Mod(r, m.mod)
}

func (m Modular) Mul(a, b *big.Int) *big.Int {
	r := new(big.Int).Mul(a, b)
	return r.Mod(r, m.mod)
}

func (m Modular) IsZero(a *big.Int) bool   { return a.Sign() == 0 }
func (m Modular) Equal(a, b *big.Int) bool { return a.Cmp(b) == 0 }

// E coerces v into a reduced ring element; accepts the same inputs as
// Integers.E.
func (m Modular) E(v interface{}) *big.Int {
	r := utils.FromInterface(v)
	return r.Mod(&r, m.mod)
}

// Bytes encodes a reduced element as fixed-width big-endian bytes, the
// width being that of the modulus.
func (m Modular) Bytes(a *big.Int) []byte {
	b, err := nat.ToBytes(new(big.Int).Mod(a, m.mod), m.width)
	if err != nil {
		// unreachable: the reduced value always fits
		panic(err)
	}
	return b
}

func (m Modular) FromBytes(data []byte) (*big.Int, error) {
	if len(data) != m.width {
		return nil, fmt.Errorf("ring: expected %d bytes, got %d", m.width, len(data))
	}
	r := nat.FromBytes(data)
	if r.Cmp(m.mod) >= 0 {
		return nil, fmt.Errorf("ring: value %s out of range for modulus %s", r, m.mod)
	}
	return r, nil
}
