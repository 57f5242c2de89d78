package shuffled

// Remove deletes value from a shuffled array and returns the shrunk slice,
// still in shuffled form. Removing a value that is not present is a no-op
// that returns the slice unchanged; compare lengths to detect it.
//
// Like Insert, the strategy is unshuffle, splice, reshuffle: the shuffled hit
// index from Search is converted to its linear position with DeshuffleIndex
// once the array is back in sorted order, the tail is shifted down over it,
// and the shortened array is shuffled again.
func Remove(value int64, values []int64) []int64 {
	index := Search(value, values)
	if index == NotFound {
		return values
	}

	count := len(values)
	Unshuffle(values)

	linear := DeshuffleIndex(index, count)
	copy(values[linear:], values[linear+1:])
	values = values[:count-1]

	Shuffle(values)
	return values
}
