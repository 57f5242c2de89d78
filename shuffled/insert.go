package shuffled

// Insert adds value to a shuffled array and returns the grown slice, still in
// shuffled form. Inserting a value already present is a no-op that returns
// the slice unchanged; compare lengths to detect it.
//
// The caller must have reserved spare capacity: cap(values) > len(values).
// Violating that is a caller bug and panics rather than allocating, since the
// backing array is caller-owned.
//
// The maintenance strategy is unshuffle, splice, reshuffle. The insertion
// slot is found with a plain ascending binary search over the restored sorted
// order, accepting a slot only when the probed element is greater than value
// and the predecessor (if any) is less, so the splice lands exactly between
// neighbors.
func Insert(value int64, values []int64) []int64 {
	if Search(value, values) != NotFound {
		return values
	}

	count := len(values)
	if cap(values) <= count {
		panic("shuffled: Insert requires spare capacity reserved by the caller")
	}

	Unshuffle(values)

	first := 0
	end := count
	index := 0
	for end != first {
		index = (first + end) / 2
		read := values[index]
		if read > value && (index == 0 || values[index-1] < value) {
			break // found the insertion slot
		} else if value > read {
			first = index + 1
		} else {
			end = index
		}
	}

	values = values[:count+1]
	if end == first {
		// no slot found below the end: value is the new greatest
		index = count
	} else {
		copy(values[index+1:], values[index:count])
	}
	values[index] = value

	Shuffle(values)
	return values
}
