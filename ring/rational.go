package ring

import (
	"fmt"
	"math/big"
)

// Rationals is the field of arbitrary-precision rationals.
type Rationals struct{}

func (Rationals) Zero() *big.Rat { return new(big.Rat) }
func (Rationals) One() *big.Rat  { return big.NewRat(1, 1) }

func (Rationals) Add(a, b *big.Rat) *big.Rat { return new(big.Rat).Add(a, b) }
func (Rationals) Mul(a, b *big.Rat) *big.Rat { return new(big.Rat).Mul(a, b) }

func (Rationals) IsZero(a *big.Rat) bool   { return a.Sign() == 0 }
func (Rationals) Equal(a, b *big.Rat) bool { return a.Cmp(b) == 0 }

func (Rationals) Bytes(a *big.Rat) []byte {
	b, _ := a.GobEncode() // cannot fail on a non-nil big.Rat
	return b
}

func (Rationals) FromBytes(data []byte) (*big.Rat, error) {
	r := new(big.Rat)
	if err := r.GobDecode(data); err != nil {
		return nil, fmt.Errorf("ring: decoding rational: %w", err)
	}
	return r, nil
}

// RatPow raises x to an integer power. Negative exponents invert x;
// panics when x is zero and n is negative.
func RatPow(x *big.Rat, n int64) *big.Rat {
	if n < 0 {
		if x.Sign() == 0 {
			panic("ring: zero to a negative power")
		}
		return RatPow(new(big.Rat).Inv(x), -n)
	}
	res := big.NewRat(1, 1)
	base := new(big.Rat).Set(x)
	for ; n > 0; n >>= 1 {
		if n&1 == 1 {
			res.Mul(res, base)
		}
		base.Mul(base, base)
	}
	return res
}

// RatFloor returns the greatest integer <= x.
func RatFloor(x *big.Rat) *big.Int {
	r := new(big.Int)
	var m big.Int
	r.DivMod(x.Num(), x.Denom(), &m)
	return r
}

// RatCeil returns the smallest integer >= x.
func RatCeil(x *big.Rat) *big.Int {
	r := RatFloor(x)
	if !x.IsInt() {
		r.Add(r, big.NewInt(1))
	}
	return r
}

// RatRound rounds x to the nearest integer, halves away from zero.
func RatRound(x *big.Rat) *big.Int {
	var half = big.NewRat(1, 2)
	if x.Sign() >= 0 {
		return RatFloor(new(big.Rat).Add(x, half))
	}
	return RatCeil(new(big.Rat).Sub(x, half))
}
