package sudoku

import (
	"fmt"
	"math/rand/v2"
	"time"
)

const (
	lasVegasSeeds       = 11
	lasVegasMaxAttempts = 100
)

// newRand builds the engine's random source from a seed. Same seed, same
// sequence: every downstream choice (candidate order, dig order, symmetry
// transforms) flows from here, which is what makes generation reproducible.
func newRand(seed int64) *rand.Rand {
	return rand.New(rand.NewPCG(uint64(seed), uint64(seed)^0x9e3779b97f4a7c15))
}

// deriveSeed mixes the base seed with an attempt index so retries are
// deterministic yet distinct.
func deriveSeed(base int64, attempt int) int64 {
	return base*6364136223846793005 + int64(attempt)*1442695040888963407 + 1
}

// GenerateComplete produces one full valid grid by running the solver over
// an empty board with a shuffled candidate order at every cell. An empty
// grid is always completable, so this cannot fail.
func GenerateComplete(rnd *rand.Rand) Grid {
	var g Grid
	s := newSearch(&g, rnd, time.Time{})
	if !s.fill() {
		// unreachable: an empty board always has a completion
		panic("sudoku: shuffle-fill failed on an empty grid")
	}
	return g
}

// GenerateCompleteLasVegas seeds a handful of random consistent placements
// and tries to solve the rest within a short per-attempt deadline. A slow
// attempt is discarded and retried with fresh placements. The failure path
// is close to unreachable in practice but is still reported, not assumed
// away.
func GenerateCompleteLasVegas(rnd *rand.Rand, attemptTimeout time.Duration) (*Grid, error) {
	for attempt := range lasVegasMaxAttempts {
		var g Grid
		t := newTracker(&g)
		placed := 0
		for placed < lasVegasSeeds {
			r, c := rnd.IntN(Size), rnd.IntN(Size)
			if g[r][c] != 0 {
				continue
			}
			d := uint8(rnd.IntN(Size) + 1)
			if !t.canPlace(r, c, d) {
				continue
			}
			g[r][c] = d
			t.place(r, c, d)
			placed++
		}

		deadline := time.Now().Add(attemptTimeout)
		if full := SolveOne(&g, nil, deadline); full != nil {
			return full, nil
		}
		Log.Debug("las vegas attempt failed", "attempt", attempt+1)
	}
	return nil, fmt.Errorf("no solvable placement found in %d attempts", lasVegasMaxAttempts)
}
