package shuffled

// DeshuffleIndex converts an index in the shuffled layout into the equivalent
// linear index - the position the value holds in ascending sorted order. It
// is pure index arithmetic: no array access, O(log n).
//
// An index outside [0, count) yields NotFound, so a Search miss can be passed
// straight through without checking.
//
// The walk mirrors Search. At each level the shuffled segment's first element
// is the segment's median, so the accumulated linear index starts at the
// midpoint of the whole array and is adjusted as the walk descends into the
// lower or upper sub-segment.
func DeshuffleIndex(index, count int) int {
	if index < 0 || index >= count {
		return NotFound
	}

	m := count / 2 // midpoint of the current segment
	d := m         // accumulated linear index
	for index != 0 {
		if index > m {
			// descending into the upper half
			index -= m + 1
			count = (count - 1) / 2
			d++
		} else {
			// descending into the lower half
			index--
			count = m
			d -= m
		}
		m = count / 2
		d += m // linear index of the sub-segment's median
	}
	return d
}

// ShuffleIndex is the inverse of DeshuffleIndex: it converts a linear
// (sorted-order) index into the position the value occupies in the shuffled
// layout. Like DeshuffleIndex it is pure arithmetic, O(log n), and yields
// NotFound for an index outside [0, count).
func ShuffleIndex(index, count int) int {
	if index < 0 || index >= count {
		return NotFound
	}

	s := 0
	for {
		m := count / 2
		if index == m {
			return s
		}
		if index < m {
			// the lower half starts one past the segment's median; linear
			// indices within it are unchanged
			s++
			count = m
		} else {
			s += m + 1
			index -= m + 1
			count = (count - 1) / 2
		}
	}
}
