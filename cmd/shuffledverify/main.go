// shuffledverify exercises the shuffled binary search layout against
// randomized arrays: every value in every generated array must be found by
// the forward-only search, deshuffle to the position the classic binary
// search reports, survive an unshuffle back to sorted order, and round trip
// through an insert and remove. Exits non zero on the first batch with any
// mismatch.
package main

import (
	"flag"
	"fmt"
	"math/rand"
	"os"
	"slices"
	"time"

	"go.uber.org/zap"

	"github.com/Sakrac/Shuffled-Binary-Search/shuffled"
	"github.com/Sakrac/Shuffled-Binary-Search/shuffledtesting"
)

func main() {
	minCount := flag.Int("min", 2, "smallest array count to verify")
	maxCount := flag.Int("max", 1024, "largest array count to verify")
	rounds := flag.Int("rounds", 1, "passes over the full count range")
	seed := flag.Int64("seed", 0, "rng seed, 0 seeds from the wall clock")
	debug := flag.Bool("debug", false, "enable debug logging")
	flag.Parse()

	logger, err := zap.NewDevelopment()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to create logger: %v\n", err)
		os.Exit(1)
	}
	defer func() { _ = logger.Sync() }()
	log := logger.Sugar()
	if !*debug {
		log = logger.WithOptions(zap.IncreaseLevel(zap.InfoLevel)).Sugar()
	}

	if *minCount < 0 || *maxCount < *minCount {
		log.Fatalw("invalid count range", "min", *minCount, "max", *maxCount)
	}

	s := *seed
	if s == 0 {
		s = time.Now().UnixNano()
	}
	r := rand.New(rand.NewSource(s)) // nolint gosec
	log.Infow("verifying", "min", *minCount, "max", *maxCount, "rounds", *rounds, "seed", s)

	failures := 0
	for round := 0; round < *rounds; round++ {
		for count := *minCount; count <= *maxCount; count++ {
			if !verify(log, r, count) {
				failures++
			}
		}
	}

	if failures > 0 {
		log.Fatalw("verification failed", "failed_batches", failures)
	}
	log.Infow("ok", "arrays", (*maxCount-*minCount+1)*(*rounds))
}

// verify generates one sorted unique array of the given count and checks
// every property the layout promises. Returns false if anything mismatched.
func verify(log *zap.SugaredLogger, r *rand.Rand, count int) bool {
	sorted := shuffledtesting.SortedUnique(r, count)

	values := make([]int64, count, count+1)
	copy(values, sorted)
	shuffled.Shuffle(values)

	ok := true
	for want, v := range sorted {
		index := shuffled.Search(v, values)
		linear := shuffled.DeshuffleIndex(index, count)
		if linear != want {
			log.Errorw("search mismatch",
				"count", count, "value", v,
				"linear", want, "shuffled_index", index, "deshuffled", linear)
			ok = false
		}
		if ref := shuffled.SortedBinarySearch(v, sorted); ref != want {
			log.Errorw("baseline mismatch", "count", count, "value", v, "got", ref, "want", want)
			ok = false
		}
	}

	// insert/remove of an absent value must restore the exact layout
	if count > 0 {
		probe := sorted[0] - 1
		before := append([]int64(nil), values...)
		values = shuffled.Remove(probe, shuffled.Insert(probe, values))
		if !slices.Equal(before, values) {
			log.Errorw("insert/remove did not restore the layout", "count", count, "value", probe)
			ok = false
		}
	}

	// and the full unshuffle must restore sorted order
	shuffled.Unshuffle(values)
	if !slices.Equal(sorted, values) {
		log.Errorw("unshuffle did not restore sorted order", "count", count)
		ok = false
	}

	log.Debugw("verified", "count", count)
	return ok
}

