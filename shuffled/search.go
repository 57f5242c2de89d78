package shuffled

// NotFound is returned by the search and index mapping functions when the
// requested value or index has no corresponding position.
const NotFound = -1

// Search finds value in a shuffled array and returns its index in the
// *shuffled* layout, or NotFound. Use DeshuffleIndex to recover the position
// the value would hold in sorted order.
//
// The probe sequence only ever moves forward through memory. A miss on the
// low side advances a single element; a miss on the high side advances to the
// current midpoint plus one. The remaining segment size at every step is
// determined purely by the count, so the loop carries no bounds beyond
// (index, count).
//
// Read-only, O(log n), no allocation. Concurrent Searches against an
// unmutated array are safe.
func Search(value int64, values []int64) int {
	index := 0
	count := len(values)
	for count > 0 {
		read := values[index]
		switch {
		case value == read:
			return index
		case value > read:
			index += count/2 + 1
			count = (count - 1) / 2
		default:
			index++
			count /= 2
		}
	}
	return NotFound
}
