package shuffled

// SortedBinarySearch is the classic midpoint-jumping binary search over a
// plain ascending sorted array, returning the linear index of value or
// NotFound. It is not part of the shuffled layout; it exists as the
// comparison baseline for the forward-only Search and for callers that want
// to check results against untransformed data.
func SortedBinarySearch(value int64, sorted []int64) int {
	first := 0
	end := len(sorted)
	for end != first {
		index := (first + end) / 2
		read := sorted[index]
		switch {
		case value == read:
			return index
		case value > read:
			first = index + 1
		default:
			end = index
		}
	}
	return NotFound
}
