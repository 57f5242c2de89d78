package shuffled

// Unshuffle is the exact inverse of Shuffle: given an array in the shuffled
// layout it restores ascending sorted order, in place, with no allocation.
//
// It walks the same iterative frame-stack skeleton as Shuffle. The base cases
// for segments of 2..5 elements are their own inverses and are shared
// verbatim; 6 and 7 rotate in the opposite direction; everything from 8 up
// routes through the general rule, which undoes the midpoint-first rotation
// by shifting the lower half one slot left and dropping the saved front value
// back into the middle. The deferred upper-half frame starts one position
// later than Shuffle's, past the restored midpoint.
func Unshuffle(values []int64) {
	var stack [maxShuffleDepth]segment
	stk := 0

	first := 0
	count := len(values)

	for count > 1 || stk > 0 {
		if count <= 1 {
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
			values[first] = values[first+2]
			values[first+2] = values[first+3]
			values[first+3] = tmp
			values[first+4], values[first+5] = values[first+5], values[first+4]
			count = 0
		default:
			// count >= 8: rotate the lower half one slot left, returning the
			// front value to the sorted midpoint. The overlapping left-shift
			// relies on copy's memmove semantics.
			mid := count / 2
			tmp := values[first]
			copy(values[first:first+mid], values[first+1:first+1+mid])
			values[first+mid] = tmp
			stack[stk] = segment{first: first + 1 + mid, count: (count - 1) / 2}
			stk++
			count = mid
		}
	}
}
