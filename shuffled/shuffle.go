package shuffled

// Shuffle rearranges a sorted array of unique values, in place, into the
// forward-only binary search layout described in doc.go. The values must be in
// ascending order with no duplicates on entry; nothing is allocated and the
// backing array is left holding the same multiset of values permuted per the
// layout.
//
// The transform is iterative. Each pass over a segment moves the midpoint
// value to the front by rotating the lower half one slot right, then descends
// into the relocated lower half immediately, deferring the upper half on an
// explicit stack. Only the upper halves ever go on the stack, so its depth is
// bounded by log2 of the count.
//
// Segments of 8 or fewer elements are resolved with closed-form swap
// sequences. These are the same permutations the general rule produces, just
// collapsed to their net element moves:
//
//	2,3 => swap(first, first+1)
//	4   => swap(first, first+2)
//	5   => swap(first, first+2) swap(first+3, first+4)
//	6,7 => rotate(first, first+3, first+2) swap(first+4, first+5)
//	8   => rotate(first, first+4, first+3) swap(first+1, first+2) swap(first+5, first+6)
//
// Counts of 9 and above all route through the general rule; no further
// special cases are needed.
func Shuffle(values []int64) {
	// Each halving splits the segment in two, but only the upper half needs
	// to go on the stack. The lower half is the next step of the iteration.
	var stack [maxShuffleDepth]segment
	stk := 0

	first := 0
	count := len(values)

	for count > 1 || stk > 0 {
		if count <= 1 {
			// count 1 does not need to be shuffled
			stk--
			first = stack[stk].first
			count = stack[stk].count
		}

		switch count {
		case 2, 3:
			values[first], values[first+1] = values[first+1], values[first]
			count = 0
		case 4:
			values[first], values[first+2] = values[first+2], values[first]
			count = 0
		case 5:
			values[first], values[first+2] = values[first+2], values[first]
			values[first+3], values[first+4] = values[first+4], values[first+3]
			count = 0
		case 6, 7:
			tmp := values[first]
			values[first] = values[first+3]
			values[first+3] = values[first+2]
			values[first+2] = tmp
			values[first+4], values[first+5] = values[first+5], values[first+4]
			count = 0
		case 8:
			tmp := values[first]
			values[first] = values[first+4]
			values[first+4] = values[first+3]
			values[first+3] = tmp
			values[first+1], values[first+2] = values[first+2], values[first+1]
			values[first+5], values[first+6] = values[first+6], values[first+5]
			count = 0
		default:
			// count > 8: rotate the lower half one slot right so the midpoint
			// value lands first, push the upper half, iterate into the lower.
			// The builtin copy has memmove semantics, so the overlapping
			// right-shift is safe.
			mid := count / 2
			tmp := values[first+mid]
			copy(values[first+1:first+1+mid], values[first:first+mid])
			values[first] = tmp
			first++
			// count > 8 => (count-1)/2 >= 4, so deferred frames never carry a
			// degenerate segment.
			stack[stk] = segment{first: first + mid, count: (count - 1) / 2}
			stk++
			count = mid
		}
	}
}
