// Package encoding offers deterministic (de)serialization for sparse
// multilinear polynomials. It uses CBOR; the byte encoding of coefficients
// is delegated to the ring's ByteCodec.
package encoding

import (
	"errors"
	"fmt"
	"io"
	"runtime"

	"github.com/fxamacker/cbor/v2"
	"golang.org/x/sync/errgroup"

	"github.com/consensys/mlpoly"
	"github.com/consensys/mlpoly/internal/utils"
	"github.com/consensys/mlpoly/monomial"
	"github.com/consensys/mlpoly/ring"
)

const formatVersion = 1

// ErrVersionMismatch is returned when deserializing data written with an
// unsupported format version.
var ErrVersionMismatch = errors.New("encoding: unsupported format version")

type termBlob struct {
	K []byte `cbor:"1,keyasint"`
	C []byte `cbor:"2,keyasint"`
}

type envelope struct {
	Version uint       `cbor:"1,keyasint"`
	Terms   []termBlob `cbor:"2,keyasint"`
}

var encMode cbor.EncMode

func init() {
	var err error
	encMode, err = cbor.CoreDetEncOptions().EncMode()
	if err != nil {
		panic(err)
	}
}

// Marshal serializes p to deterministic bytes: terms appear in ascending
// key order, keys and coefficients as byte strings. Term encoding is
// spread over the available cores.
func Marshal[E any](p mlpoly.Polynomial[E], bc ring.ByteCodec[E]) ([]byte, error) {
	terms := p.Terms()
	blobs := make([]termBlob, len(terms))

	var g errgroup.Group
	for _, chunk := range utils.IntoChunkRanges(runtime.NumCPU(), len(terms)) {
		g.Go(func() error {
			for i := chunk.Begin; i < chunk.End; i++ {
				blobs[i] = termBlob{K: terms[i].Key.Bytes(), C: bc.Bytes(terms[i].Coeff)}
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return encMode.Marshal(envelope{Version: formatVersion, Terms: blobs})
}

// Unmarshal rebuilds a polynomial from bytes produced by Marshal.
func Unmarshal[E any](data []byte, bc ring.ByteCodec[E]) (mlpoly.Polynomial[E], error) {
	var env envelope
	if err := cbor.Unmarshal(data, &env); err != nil {
		return mlpoly.Polynomial[E]{}, fmt.Errorf("encoding: %w", err)
	}
	if env.Version != formatVersion {
		return mlpoly.Polynomial[E]{}, fmt.Errorf("%w: %d", ErrVersionMismatch, env.Version)
	}

	terms := make([]mlpoly.Term[E], len(env.Terms))
	for i, b := range env.Terms {
		coeff, err := bc.FromBytes(b.C)
		if err != nil {
			return mlpoly.Polynomial[E]{}, fmt.Errorf("encoding: term %d: %w", i, err)
		}
		terms[i] = mlpoly.Term[E]{Key: monomial.FromBytes(b.K), Coeff: coeff}
	}
	return mlpoly.FromTerms(terms), nil
}

// Write serializes p into w.
func Write[E any](w io.Writer, p mlpoly.Polynomial[E], bc ring.ByteCodec[E]) error {
	data, err := Marshal(p, bc)
	if err != nil {
		return err
	}
	_, err = w.Write(data)
	return err
}

// Read deserializes a polynomial from r.
func Read[E any](r io.Reader, bc ring.ByteCodec[E]) (mlpoly.Polynomial[E], error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return mlpoly.Polynomial[E]{}, err
	}
	return Unmarshal(data, bc)
}
