package shuffled

// maxShuffleDepth bounds the explicit recursion stack used by Shuffle and
// Unshuffle. Each frame deferred halves the remaining segment, so 64 frames
// covers any count representable in an int, on any architecture.
const maxShuffleDepth = 64

// segment identifies a contiguous sub-range of the array still awaiting its
// shuffle (or unshuffle) pass.
type segment struct {
	first int
	count int
}
