package monomial

import (
	"math/big"
	"slices"
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
	"github.com/stretchr/testify/require"
)

func TestKeyRoundTrip(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 1000

	properties := gopter.NewProperties(parameters)

	properties.Property("encode(decode(k)) == k", prop.ForAll(
		func(k uint64) bool {
			key := FromBig(new(big.Int).SetUint64(k))
			return FromIndices(key.Indices()...).Equal(key)
		},
		gen.UInt64(),
	))

	properties.Property("decode(encode(S)) == S", prop.ForAll(
		func(indices []uint) bool {
			want := slices.Clone(indices)
			slices.Sort(want)
			want = slices.Compact(want)
			got := FromIndices(indices...).Indices()
			return len(got) == len(want) && slices.Equal(got, want)
		},
		gen.SliceOf(gen.UIntRange(0, 300)),
	))

	properties.Property("bitset bridge round-trips", prop.ForAll(
		func(indices []uint) bool {
			key := FromIndices(indices...)
			return FromBitSet(key.BitSet()).Equal(key)
		},
		gen.SliceOf(gen.UIntRange(0, 300)),
	))

	properties.Property("bytes round-trip", prop.ForAll(
		func(k uint64) bool {
			key := FromBig(new(big.Int).SetUint64(k))
			return FromBytes(key.Bytes()).Equal(key)
		},
		gen.UInt64(),
	))

	properties.TestingRun(t, gopter.ConsoleReporter(false))
}

func TestConstantKey(t *testing.T) {
	var k Key
	require.True(t, k.IsConstant())
	require.Nil(t, k.Indices())
	require.Equal(t, 0, k.Degree())
	require.Equal(t, "", k.String())
	require.Empty(t, k.Bytes())
	require.True(t, FromIndices().Equal(k))
}

func TestKeyOps(t *testing.T) {
	k := FromIndices(0, 4)
	require.Equal(t, []uint{0, 4}, k.Indices())
	require.Equal(t, 2, k.Degree())
	require.Equal(t, "x0x4", k.String())
	require.Equal(t, int64(17), k.Big().Int64())
	require.True(t, k.Has(0))
	require.True(t, k.Has(4))
	require.False(t, k.Has(1))

	// duplicates have no effect
	require.True(t, FromIndices(4, 0, 4, 0).Equal(k))

	o := FromIndices(2, 3)
	require.False(t, k.Overlaps(o))
	require.True(t, k.Overlaps(FromIndices(4)))
	require.Equal(t, "x0x2x3x4", k.Union(o).String())

	require.Equal(t, -1, FromIndices(1).Cmp(k))
	require.Equal(t, 0, k.Cmp(FromIndices(0, 4)))
	require.Equal(t, 1, FromIndices(5).Cmp(k))
}

func TestFromBigNegativePanics(t *testing.T) {
	require.Panics(t, func() {
		FromBig(big.NewInt(-1))
	})
}

func TestLargeIndexNoTruncation(t *testing.T) {
	// indices far beyond any machine word width
	k := FromIndices(0, 1000)
	require.Equal(t, []uint{0, 1000}, k.Indices())
	require.Equal(t, 1001, k.Big().BitLen())
	require.True(t, FromBytes(k.Bytes()).Equal(k))
}
