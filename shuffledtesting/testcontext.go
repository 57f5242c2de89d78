// Package shuffledtesting provides the randomized test support shared by the
// shuffled package's tests and the shuffledverify driver: seeded generation
// of sorted unique arrays and property checks for the shuffle layout.
package shuffledtesting

import (
	"math/rand"
	"sort"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/Sakrac/Shuffled-Binary-Search/shuffled"
)

type TestConfig struct {
	// Seed seeds the RNG. It is normal to force it to some fixed value so
	// that the generated data is the same from run to run. Zero seeds from
	// the wall clock.
	Seed            int64
	TestLabelPrefix string
}

type TestContext struct {
	T        *testing.T
	Log      *zap.SugaredLogger
	Rand     *rand.Rand
	RunLabel string
}

func NewTestContext(t *testing.T, cfg TestConfig) TestContext {
	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	log, err := zap.NewDevelopment()
	if err != nil {
		t.Fatalf("failed to create logger: %v", err)
	}

	c := TestContext{
		T:        t,
		Rand:     rand.New(rand.NewSource(seed)), // nolint gosec
		RunLabel: cfg.TestLabelPrefix + "-" + uuid.NewString(),
	}
	c.Log = log.Sugar().With("run", c.RunLabel, "seed", seed)
	return c
}

// SortedUnique returns n random values, ascending, with no duplicates.
func (c *TestContext) SortedUnique(n int) []int64 {
	return SortedUnique(c.Rand, n)
}

// ShuffledCopy returns a shuffled copy of sorted, leaving sorted untouched.
// The copy has one slot of spare capacity so it can be handed to Insert.
func (c *TestContext) ShuffledCopy(sorted []int64) []int64 {
	values := make([]int64, len(sorted), len(sorted)+1)
	copy(values, sorted)
	shuffled.Shuffle(values)
	return values
}

// RequireRoundTrip asserts that shuffling then unshuffling a copy of sorted
// is the identity.
func (c *TestContext) RequireRoundTrip(sorted []int64) {
	c.T.Helper()
	values := c.ShuffledCopy(sorted)
	shuffled.Unshuffle(values)
	require.Equal(c.T, sorted, values)
}

// RequireSearchCorrespondence asserts that for every value in sorted, the
// shuffled search hit deshuffles back to the value's sorted position.
func (c *TestContext) RequireSearchCorrespondence(sorted []int64) {
	c.T.Helper()
	values := c.ShuffledCopy(sorted)
	for want, v := range sorted {
		index := shuffled.Search(v, values)
		require.NotEqual(c.T, shuffled.NotFound, index, "value %d absent from shuffled array", v)
		require.Equal(c.T, want, shuffled.DeshuffleIndex(index, len(values)),
			"value %d deshuffled to the wrong linear index", v)
	}
}

// SortedUnique generates n random values, sorts them, and bumps duplicate
// runs apart so the result is strictly ascending. Drawing from a deliberately
// narrow range forces the dedup path to be exercised. Duplicates would make
// the search correspondence checks ambiguous, never wrong: a duplicated value
// can be found at either of its positions.
func SortedUnique(r *rand.Rand, n int) []int64 {
	if n == 0 {
		return []int64{}
	}
	values := make([]int64, n)
	for i := range values {
		values[i] = r.Int63n(int64(4*n + 1))
	}
	sort.Slice(values, func(i, j int) bool { return values[i] < values[j] })

	for i := 1; i < n; i++ {
		if values[i] <= values[i-1] {
			values[i] = values[i-1] + 1
		}
	}
	return values
}
