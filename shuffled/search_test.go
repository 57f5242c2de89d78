package shuffled

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSearchFindsEveryValue(t *testing.T) {
	for _, count := range []int{0, 1, 2, 3, 7, 8, 9, 100, 1024} {
		values := iotaValues(count)
		Shuffle(values)

		for want := 0; want < count; want++ {
			index := Search(int64(want), values)
			require.NotEqual(t, NotFound, index, "count %d value %d", count, want)
			require.Equal(t, int64(want), values[index])
		}
	}
}

func TestSearchAbsentValues(t *testing.T) {
	// even values only, so every odd value and both extremes are absent
	values := make([]int64, 100)
	for i := range values {
		values[i] = int64(2 * i)
	}
	Shuffle(values)

	for i := 0; i < 100; i++ {
		assert.Equal(t, NotFound, Search(int64(2*i+1), values))
	}
	assert.Equal(t, NotFound, Search(-1, values))
	assert.Equal(t, NotFound, Search(200, values))
}

func TestSearchEmpty(t *testing.T) {
	assert.Equal(t, NotFound, Search(0, nil))
	assert.Equal(t, NotFound, Search(0, []int64{}))
}

func TestSortedBinarySearch(t *testing.T) {
	type args struct {
		value  int64
		sorted []int64
	}
	tests := []struct {
		name string
		args args
		want int
	}{
		{"empty", args{5, nil}, NotFound},
		{"single hit", args{5, []int64{5}}, 0},
		{"single miss", args{4, []int64{5}}, NotFound},
		{"first", args{1, []int64{1, 3, 5, 7}}, 0},
		{"last", args{7, []int64{1, 3, 5, 7}}, 3},
		{"interior", args{5, []int64{1, 3, 5, 7}}, 2},
		{"between", args{4, []int64{1, 3, 5, 7}}, NotFound},
		{"below range", args{0, []int64{1, 3, 5, 7}}, NotFound},
		{"above range", args{9, []int64{1, 3, 5, 7}}, NotFound},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := SortedBinarySearch(tt.args.value, tt.args.sorted); got != tt.want {
				t.Errorf("SortedBinarySearch() = %v, want %v", got, tt.want)
			}
		})
	}
}

// The two searches must agree on every value: the shuffled hit index,
// deshuffled, is the linear index the baseline reports.
func TestSearchAgreesWithBaseline(t *testing.T) {
	count := 777
	sorted := make([]int64, count)
	for i := range sorted {
		sorted[i] = int64(3 * i) // gaps, so misses get exercised too
	}
	values := append([]int64(nil), sorted...)
	Shuffle(values)

	for v := int64(-1); v < int64(3*count+1); v++ {
		want := SortedBinarySearch(v, sorted)
		got := DeshuffleIndex(Search(v, values), count)
		require.Equal(t, want, got, "value %d", v)
	}
}
