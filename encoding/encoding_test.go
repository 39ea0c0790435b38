package encoding

import (
	"bytes"
	"math/big"
	"testing"

	"github.com/consensys/gnark-crypto/ecc/bn254/fr"
	"github.com/fxamacker/cbor/v2"
	"github.com/google/go-cmp/cmp"
	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
	"github.com/stretchr/testify/require"

	"github.com/consensys/mlpoly"
	"github.com/consensys/mlpoly/monomial"
	"github.com/consensys/mlpoly/ring"
)

var zz ring.Integers

func intPoly(keys []uint64) mlpoly.Polynomial[*big.Int] {
	terms := make([]mlpoly.Term[*big.Int], len(keys))
	for i, k := range keys {
		terms[i] = mlpoly.Term[*big.Int]{
			Key:   monomial.FromBig(new(big.Int).SetUint64(k)),
			Coeff: big.NewInt(int64(k%2048) - 1024), // negative coefficients too
		}
	}
	return mlpoly.FromTerms(terms)
}

func TestRoundTrip(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 200

	properties := gopter.NewProperties(parameters)

	properties.Property("deserialization(serialization(p)) == p", prop.ForAll(
		func(keys []uint64) bool {
			p := intPoly(keys)
			data, err := Marshal(p, zz)
			if err != nil {
				return false
			}
			q, err := Unmarshal(data, zz)
			if err != nil {
				return false
			}
			return mlpoly.Equal[*big.Int](zz, p, q)
		},
		gen.SliceOf(gen.UInt64()),
	))

	properties.TestingRun(t, gopter.ConsoleReporter(false))
}

func TestDeterministicBytes(t *testing.T) {
	// same polynomial built in two insertion orders encodes identically
	p := mlpoly.FromSummands([]mlpoly.Summand[*big.Int]{
		{Coeff: big.NewInt(2), Indices: []uint{1}},
		{Coeff: big.NewInt(3), Indices: []uint{0, 4}},
		{Coeff: big.NewInt(4)},
	})
	q := mlpoly.FromSummands([]mlpoly.Summand[*big.Int]{
		{Coeff: big.NewInt(4)},
		{Coeff: big.NewInt(3), Indices: []uint{4, 0}},
		{Coeff: big.NewInt(2), Indices: []uint{1}},
	})

	pb, err := Marshal(p, zz)
	require.NoError(t, err)
	qb, err := Marshal(q, zz)
	require.NoError(t, err)
	require.Equal(t, pb, qb)
}

func TestWriteRead(t *testing.T) {
	var f ring.Bn254
	terms := make([]mlpoly.Term[fr.Element], 32)
	for i := range terms {
		var c fr.Element
		_, err := c.SetRandom()
		require.NoError(t, err)
		terms[i] = mlpoly.Term[fr.Element]{Key: monomial.FromIndices(uint(i), uint(i + 40)), Coeff: c}
	}
	p := mlpoly.FromTerms(terms)

	var buf bytes.Buffer
	require.NoError(t, Write(&buf, p, f))

	q, err := Read(&buf, f)
	require.NoError(t, err)
	require.True(t, mlpoly.Equal[fr.Element](f, p, q))

	if diff := cmp.Diff(p.String(), q.String()); diff != "" {
		t.Errorf("rendering mismatch (-want +got):\n%s", diff)
	}
}

func TestVersionMismatch(t *testing.T) {
	data, err := cbor.Marshal(envelope{Version: 99})
	require.NoError(t, err)
	_, err = Unmarshal[*big.Int](data, zz)
	require.ErrorIs(t, err, ErrVersionMismatch)
}

func TestUnmarshalGarbage(t *testing.T) {
	_, err := Unmarshal[*big.Int]([]byte("not cbor at all"), zz)
	require.Error(t, err)
}

func TestFingerprint(t *testing.T) {
	p := intPoly([]uint64{1, 2, 17, 300})

	// an explicit zero term must not change the fingerprint
	withZero := mlpoly.FromTerms(append(p.Terms(), mlpoly.Term[*big.Int]{
		Key:   monomial.FromIndices(9),
		Coeff: new(big.Int),
	}))

	fp1, err := Fingerprint[*big.Int](zz, p)
	require.NoError(t, err)
	fp2, err := Fingerprint[*big.Int](zz, withZero)
	require.NoError(t, err)
	require.Equal(t, fp1, fp2)

	other, err := Fingerprint[*big.Int](zz, intPoly([]uint64{1, 2, 17, 301}))
	require.NoError(t, err)
	require.NotEqual(t, fp1, other)
}
