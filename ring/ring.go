// Package ring defines the coefficient capability set required by the
// sparse multilinear polynomial engine, along with engines for common
// concrete coefficient types.
//
// The polynomial engine is generic over the element type E and performs no
// ring-specific logic itself; operations are routed through a Ring[E]
// passed explicitly to each function. Engines must be safe for concurrent
// use and must never mutate their operands.
package ring

// Element is the type parameter constraint for ring elements.
type Element interface{}

// Ring is the minimal capability set a coefficient type must support:
// additive and multiplicative identities, addition, multiplication and
// equality. IsZero is the zero-equality test used for pruning.
type Ring[E Element] interface {
	Zero() E
	One() E
	Add(a, b E) E
	Mul(a, b E) E
	IsZero(a E) bool
	Equal(a, b E) bool
}

// ByteCodec converts ring elements to and from a byte encoding, for
// serialization. Bytes must be deterministic: equal elements yield equal
// encodings.
type ByteCodec[E Element] interface {
	Bytes(a E) []byte
	FromBytes(data []byte) (E, error)
}
