package ring

import (
	"golang.org/x/exp/constraints"
)

// Words is the ring of machine words modulo 2^k for any unsigned integer
// type. Cheap, fixed-width coefficients for callers that do not need
// arbitrary precision.
type Words[T constraints.Unsigned] struct{}

func (Words[T]) Zero() T { var z T; return z }
func (Words[T]) One() T  { return 1 }

func (Words[T]) Add(a, b T) T { return a + b }
func (Words[T]) Mul(a, b T) T { return a * b }

func (Words[T]) IsZero(a T) bool   { return a == 0 }
func (Words[T]) Equal(a, b T) bool { return a == b }
