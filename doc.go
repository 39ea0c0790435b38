// Package mlpoly implements sparse multilinear polynomials over a generic
// coefficient ring.
//
// A multilinear polynomial is one where every variable appears with
// exponent at most 1 in every term. Terms are keyed by a bit-encoded
// monomial (see package monomial): bit i of the key is set iff variable
// x_i appears in the term. Polynomials are value types; every operation
// returns a fresh polynomial and never mutates its inputs, so values may
// be shared freely across goroutines.
//
// Coefficient arithmetic is delegated to a ring.Ring[E] engine passed
// explicitly to each operation; see package ring for engines over big.Int,
// rationals, machine words and the BN254 scalar field.
package mlpoly

import (
	"github.com/blang/semver/v4"
)

// Version of the library
var Version = semver.MustParse("0.1.0")
