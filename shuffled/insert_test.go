package shuffled

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// withSpare returns a shuffled array of the even values 0,2,..2(n-1) with
// room to grow by one.
func withSpare(n int) []int64 {
	values := make([]int64, n, n+1)
	for i := range values {
		values[i] = int64(2 * i)
	}
	Shuffle(values)
	return values
}

func TestInsert(t *testing.T) {
	for n := 0; n <= 65; n++ {
		for gap := 0; gap <= n; gap++ {
			values := withSpare(n)
			v := int64(2*gap - 1) // odd, so always absent; -1 covers the front

			values = Insert(v, values)
			require.Len(t, values, n+1, "n %d gap %d", n, gap)

			index := Search(v, values)
			require.NotEqual(t, NotFound, index)
			require.Equal(t, gap, DeshuffleIndex(index, len(values)),
				"inserted value must land at linear index %d", gap)

			// still a valid layout: every original value remains findable
			for i := 0; i < n; i++ {
				require.NotEqual(t, NotFound, Search(int64(2*i), values))
			}
		}
	}
}

func TestInsertDuplicateIsNoOp(t *testing.T) {
	values := withSpare(20)
	before := append([]int64(nil), values...)

	values = Insert(18, values) // already present
	assert.Len(t, values, 20, "length unchanged signals duplicate")
	assert.Equal(t, before, values, "array untouched on duplicate")
}

func TestInsertWithoutCapacityPanics(t *testing.T) {
	values := iotaValues(8) // cap == len
	Shuffle(values)
	assert.Panics(t, func() { Insert(100, values) })
}

func TestInsertIntoEmpty(t *testing.T) {
	values := make([]int64, 0, 1)
	values = Insert(42, values)
	require.Equal(t, []int64{42}, values)
}
