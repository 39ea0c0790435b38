package utils

// MinChunkSize is the smallest number of terms worth handing to a worker.
const MinChunkSize int = 512

// ChunkRange is a container for the beginning and the end of a chunk
type ChunkRange struct {
	Begin, End int
}

// IntoChunkRanges returns a list of ranges of chunks computed for n entries.
// Chunks are as big as possible with MinChunkSize as a minimum.
func IntoChunkRanges(nbTasks, n int) []ChunkRange {
	chunkSize := max(MinChunkSize, n/nbTasks)
	nbChunks := n / chunkSize
	if nbChunks*chunkSize < n {
		// handle the case where n is not divisible by chunkSize
		nbChunks++
	}

	chunkRanges := make([]ChunkRange, nbChunks)
	begin := 0
	for i := 0; i < nbChunks; i++ {
		chunkRanges[i] = ChunkRange{Begin: begin, End: min(n, begin+chunkSize)}
		begin += chunkSize
	}

	return chunkRanges
}
