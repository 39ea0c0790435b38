// Package nat provides number-theoretic utilities over arbitrary-precision
// integers: modular exponentiation, extended GCD, Legendre symbol,
// Tonelli-Shanks modular square roots and fixed-width byte encoding.
package nat

import (
	"errors"
	"fmt"
	"math/big"
)

var (
	// ErrNonResidue is returned by SqrtModPrime when the input is a
	// quadratic non-residue modulo p.
	ErrNonResidue = errors.New("nat: quadratic non-residue")

	// ErrInvalidModulus is returned when a modulus does not satisfy the
	// preconditions of the callee.
	ErrInvalidModulus = errors.New("nat: invalid modulus")
)

// ModExp computes base^exponent mod modulus by square-and-multiply.
// exponent must be non-negative and modulus positive; panics otherwise.
func ModExp(base, exponent, modulus *big.Int) *big.Int {
	if exponent.Sign() < 0 {
		panic("nat: negative exponent")
	}
	if modulus.Sign() <= 0 {
		panic("nat: non-positive modulus")
	}
	res := big.NewInt(1)
	res.Mod(res, modulus) // modulus 1
	b := new(big.Int).Mod(base, modulus)
	for i := exponent.BitLen() - 1; i >= 0; i-- {
		res.Mul(res, res)
		res.Mod(res, modulus)
		if exponent.Bit(i) == 1 {
			res.Mul(res, b)
			res.Mod(res, modulus)
		}
	}
	return res
}

// ExtGCD returns g = gcd(a, b) together with Bézout coefficients x, y such
// that a*x + b*y = g. g is non-negative.
func ExtGCD(a, b *big.Int) (g, x, y *big.Int) {
	var (
		r0, r1 = new(big.Int).Set(a), new(big.Int).Set(b)
		x0, x1 = big.NewInt(1), big.NewInt(0)
		y0, y1 = big.NewInt(0), big.NewInt(1)
		q, t   big.Int
	)
	for r1.Sign() != 0 {
		q.Quo(r0, r1)
		t.Mul(&q, r1)
		r0.Sub(r0, &t)
		r0, r1 = r1, r0
		t.Mul(&q, x1)
		x0.Sub(x0, &t)
		x0, x1 = x1, x0
		t.Mul(&q, y1)
		y0.Sub(y0, &t)
		y0, y1 = y1, y0
	}
	if r0.Sign() < 0 {
		r0.Neg(r0)
		x0.Neg(x0)
		y0.Neg(y0)
	}
	return r0, x0, y0
}

// Legendre computes the Legendre symbol (a/p) for an odd prime p:
// 1 if a is a non-zero quadratic residue, -1 if it is a non-residue,
// 0 if a ≡ 0 (mod p).
func Legendre(a, p *big.Int) int {
	e := new(big.Int).Rsh(new(big.Int).Sub(p, big.NewInt(1)), 1)
	s := ModExp(a, e, p)
	switch {
	case s.Sign() == 0:
		return 0
	case s.Cmp(big.NewInt(1)) == 0:
		return 1
	default:
		return -1
	}
}

// SqrtModPrime computes a square root of a modulo the odd prime p using
// Tonelli-Shanks. For p ≡ 3 (mod 4) the direct exponentiation shortcut is
// used. Returns ErrNonResidue when a has no square root mod p and
// ErrInvalidModulus when p is even or < 3. The returned root r satisfies
// r*r ≡ a (mod p); the other root is p-r.
func SqrtModPrime(a, p *big.Int) (*big.Int, error) {
	if p.Bit(0) == 0 || p.Cmp(big.NewInt(3)) < 0 {
		return nil, fmt.Errorf("%w: p must be an odd prime >= 3", ErrInvalidModulus)
	}
	aa := new(big.Int).Mod(a, p)
	if aa.Sign() == 0 {
		return new(big.Int), nil
	}
	switch Legendre(aa, p) {
	case -1:
		return nil, fmt.Errorf("%w: %s mod %s", ErrNonResidue, aa, p)
	}

	one := big.NewInt(1)

	// p = 3 mod 4: r = a^((p+1)/4)
	if p.Bit(1) == 1 {
		e := new(big.Int).Add(p, one)
		e.Rsh(e, 2)
		return ModExp(aa, e, p), nil
	}

	// write p-1 = q * 2^s with q odd
	q := new(big.Int).Sub(p, one)
	s := 0
	for q.Bit(0) == 0 {
		q.Rsh(q, 1)
		s++
	}

	// find a non-residue z
	z := big.NewInt(2)
	for Legendre(z, p) != -1 {
		z.Add(z, one)
	}

	m := s
	c := ModExp(z, q, p)
	t := ModExp(aa, q, p)
	r := ModExp(aa, new(big.Int).Rsh(new(big.Int).Add(q, one), 1), p)

	for t.Cmp(one) != 0 {
		// least i, 0 < i < m, with t^(2^i) = 1
		i := 0
		t2i := new(big.Int).Set(t)
		for t2i.Cmp(one) != 0 {
			t2i.Mul(t2i, t2i)
			t2i.Mod(t2i, p)
			i++
		}

		b := new(big.Int).Set(c)
		for j := 0; j < m-i-1; j++ {
			b.Mul(b, b)
			b.Mod(b, p)
		}
		m = i
		c.Mul(b, b)
		c.Mod(c, p)
		t.Mul(t, c)
		t.Mod(t, p)
		r.Mul(r, b)
		r.Mod(r, p)
	}
	return r, nil
}
