package mlpoly

import (
	"math/big"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"

	"github.com/consensys/mlpoly/monomial"
)

var bigIntCmp = cmp.Comparer(func(a, b *big.Int) bool { return a.Cmp(b) == 0 })

func summand(c int64, indices ...uint) Summand[*big.Int] {
	return Summand[*big.Int]{Coeff: big.NewInt(c), Indices: indices}
}

func TestFromSummandsOrdering(t *testing.T) {
	// insertion order is irrelevant; Summands comes back in ascending key order
	p := FromSummands([]Summand[*big.Int]{
		summand(3, 4, 0), // key 17
		summand(4),       // key 0
		summand(2, 1),    // key 2
	})
	require.Equal(t, 3, p.Len())

	want := []Summand[*big.Int]{
		{Coeff: big.NewInt(4), Indices: nil},
		{Coeff: big.NewInt(2), Indices: []uint{1}},
		{Coeff: big.NewInt(3), Indices: []uint{0, 4}},
	}
	if diff := cmp.Diff(want, p.Summands(), bigIntCmp); diff != "" {
		t.Errorf("summands mismatch (-want +got):\n%s", diff)
	}
}

func TestFromTermsLastWriteWins(t *testing.T) {
	k := monomial.FromIndices(1, 2)
	p := FromTerms([]Term[*big.Int]{
		{Key: k, Coeff: big.NewInt(5)},
		{Key: monomial.FromIndices(0), Coeff: big.NewInt(1)},
		{Key: k, Coeff: big.NewInt(9)},
	})
	require.Equal(t, 2, p.Len())
	c, ok := p.Coeff(k)
	require.True(t, ok)
	require.Equal(t, int64(9), c.Int64())
}

func TestCoeffLookup(t *testing.T) {
	p := FromSummands([]Summand[*big.Int]{summand(2, 1), summand(4)})
	c, ok := p.Coeff(monomial.FromIndices(1))
	require.True(t, ok)
	require.Equal(t, int64(2), c.Int64())
	_, ok = p.Coeff(monomial.FromIndices(3))
	require.False(t, ok)
}

func TestSupport(t *testing.T) {
	p := FromSummands([]Summand[*big.Int]{summand(2, 1), summand(3, 4, 0), summand(4)})
	require.Equal(t, []uint{0, 1, 4}, p.Support().Indices())
	require.True(t, Zero[*big.Int]().Support().IsConstant())
}

func TestString(t *testing.T) {
	p := FromSummands([]Summand[*big.Int]{summand(2, 1), summand(3, 4, 0), summand(4)})
	require.Equal(t, "4 + 2x1 + 3x0x4", p.String())
	require.Equal(t, "0", Zero[*big.Int]().String())
}
