package utils

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestIntoChunkRanges(t *testing.T) {
	// small inputs end up in a single chunk
	chunks := IntoChunkRanges(8, 100)
	require.Len(t, chunks, 1)
	require.Equal(t, ChunkRange{Begin: 0, End: 100}, chunks[0])

	// chunks cover [0, n) without gaps or overlaps
	for _, n := range []int{0, 1, MinChunkSize, MinChunkSize + 1, 4000, 1 << 16} {
		for _, nbTasks := range []int{1, 2, 7, 64} {
			chunks := IntoChunkRanges(nbTasks, n)
			covered := 0
			for i, c := range chunks {
				if i > 0 {
					require.Equal(t, chunks[i-1].End, c.Begin)
				}
				require.Less(t, c.Begin, c.End)
				covered += c.End - c.Begin
			}
			require.Equal(t, n, covered, "n=%d nbTasks=%d", n, nbTasks)
		}
	}
}
