package sudoku

import (
	"context"
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seedPtr(s int64) *int64 { return &s }

func TestGenerateRejectsInvalidDifficulty(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		difficulty float64
	}{
		{"negative", -1},
		{"above range", 101},
		{"fractional", 50.5},
		{"nan", math.NaN()},
		{"positive inf", math.Inf(1)},
		{"negative inf", math.Inf(-1)},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			_, err := Generate(context.Background(), Params{Difficulty: test.difficulty})
			var invalid InvalidDifficultyError
			require.ErrorAs(t, err, &invalid)
			assert.NotEmpty(t, invalid.Reason)
		})
	}
}

// requirePuzzleInvariants checks every property a returned puzzle must
// hold: valid solution, clue/solution consistency, mask bookkeeping and a
// unique completion.
func requirePuzzleInvariants(t *testing.T, p *Puzzle) {
	t.Helper()

	require.NotNil(t, p)
	require.True(t, p.Solution.Complete(), "solution is not a valid complete grid")
	assert.Equal(t, p.Grid.Givens(), p.GivenCount)
	assert.GreaterOrEqual(t, p.GivenCount, MinGivens)
	assert.NotEmpty(t, p.ID)
	assert.False(t, p.CreatedAt.IsZero())

	for r := range Size {
		for c := range Size {
			assert.Equal(t, p.Grid[r][c] != 0, p.ClueMask[r][c])
			if p.Grid[r][c] != 0 {
				assert.Equal(t, p.Solution[r][c], p.Grid[r][c])
			}
		}
	}

	assert.Equal(t, 1, CountSolutions(&p.Grid, 2, time.Time{}))
}

func TestGenerateEasiest(t *testing.T) {
	if testing.Short() {
		t.Skip()
	}
	t.Parallel()

	p, err := Generate(context.Background(), Params{Difficulty: 0, Seed: seedPtr(42)})
	require.NoError(t, err)
	requirePuzzleInvariants(t, p)
	assert.GreaterOrEqual(t, p.GivenCount, 50)
	assert.LessOrEqual(t, p.GivenCount, 60)

	// the easiest tier must fall to pure deduction
	_, solved := SolveLogically(&p.Grid)
	assert.True(t, solved)
}

func TestGenerateHardest(t *testing.T) {
	if testing.Short() {
		t.Skip()
	}
	t.Parallel()

	p, err := Generate(context.Background(), Params{Difficulty: 100, Seed: seedPtr(7)})
	require.NoError(t, err)
	requirePuzzleInvariants(t, p)
	assert.GreaterOrEqual(t, p.GivenCount, 17)
	assert.LessOrEqual(t, p.GivenCount, 30)
}

func TestGenerateDeterministic(t *testing.T) {
	if testing.Short() {
		t.Skip()
	}
	t.Parallel()

	a, err := Generate(context.Background(), Params{Difficulty: 30, Seed: seedPtr(1234)})
	require.NoError(t, err)
	b, err := Generate(context.Background(), Params{Difficulty: 30, Seed: seedPtr(1234)})
	require.NoError(t, err)

	assert.Equal(t, a.Grid, b.Grid)
	assert.Equal(t, a.Solution, b.Solution)
	assert.Equal(t, a.ID, b.ID)
}

func TestGenerateWithoutSeed(t *testing.T) {
	if testing.Short() {
		t.Skip()
	}
	t.Parallel()

	p, err := Generate(context.Background(), Params{Difficulty: 10})
	require.NoError(t, err)
	requirePuzzleInvariants(t, p)
}

func TestGenerateGivensSoftMonotonicity(t *testing.T) {
	if testing.Short() {
		t.Skip()
	}
	t.Parallel()

	easy, err := Generate(context.Background(), Params{Difficulty: 0, Seed: seedPtr(5)})
	require.NoError(t, err)
	mid, err := Generate(context.Background(), Params{Difficulty: 50, Seed: seedPtr(5)})
	require.NoError(t, err)
	hard, err := Generate(context.Background(), Params{Difficulty: 95, Seed: seedPtr(5)})
	require.NoError(t, err)

	assert.Greater(t, easy.GivenCount, mid.GivenCount)
	assert.Greater(t, mid.GivenCount, hard.GivenCount)
}

func TestGenerateCanceledContext(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := Generate(ctx, Params{Difficulty: 50, Seed: seedPtr(9)})
	assert.Error(t, err)
}

func TestPuzzleGobRoundTrip(t *testing.T) {
	if testing.Short() {
		t.Skip()
	}
	t.Parallel()

	p, err := Generate(context.Background(), Params{Difficulty: 25, Seed: seedPtr(77)})
	require.NoError(t, err)

	b, err := p.Bytes()
	require.NoError(t, err)
	got, err := DecodePuzzle(b)
	require.NoError(t, err)
	assert.Equal(t, *p, *got)
}

func TestGenerateStepsDownThenFails(t *testing.T) {
	t.Parallel()

	var levels []int
	failing := func(level int, prof profile, seed int64, deadline time.Time) (*Puzzle, bool) {
		levels = append(levels, level)
		return nil, false
	}

	_, err := generate(context.Background(), Params{Difficulty: 60, Seed: seedPtr(1)}, failing)

	var failed GenerationFailedError
	require.ErrorAs(t, err, &failed)
	assert.Equal(t, []int{60, 55, 50}, failed.Difficulties)
	assert.Len(t, levels, 3*maxAttemptsPerLevel)
	assert.Positive(t, failed.Elapsed)
	assert.Contains(t, failed.Error(), "difficulties tried")
}

func TestGenerateNoStepDownBelowMin(t *testing.T) {
	t.Parallel()

	failing := func(level int, prof profile, seed int64, deadline time.Time) (*Puzzle, bool) {
		return nil, false
	}

	_, err := generate(context.Background(), Params{Difficulty: 0, Seed: seedPtr(1)}, failing)

	var failed GenerationFailedError
	require.ErrorAs(t, err, &failed)
	assert.Equal(t, []int{0}, failed.Difficulties)
}

func TestGenerateBestEffortFallback(t *testing.T) {
	t.Parallel()

	// Every attempt yields a unique puzzle that misses the quality gate;
	// the one with the fewest givens must come back without an error.
	givens := 40
	unaccepted := func(level int, prof profile, seed int64, deadline time.Time) (*Puzzle, bool) {
		givens--
		return &Puzzle{ID: "best-effort", GivenCount: givens}, false
	}

	p, err := generate(context.Background(), Params{Difficulty: 80, Seed: seedPtr(1)}, unaccepted)
	require.NoError(t, err)
	require.NotNil(t, p)
	assert.Equal(t, givens, p.GivenCount)
}

func TestGenerateAcceptedWinsImmediately(t *testing.T) {
	t.Parallel()

	calls := 0
	accepting := func(level int, prof profile, seed int64, deadline time.Time) (*Puzzle, bool) {
		calls++
		return &Puzzle{GivenCount: 30}, true
	}

	p, err := generate(context.Background(), Params{Difficulty: 40, Seed: seedPtr(1)}, accepting)
	require.NoError(t, err)
	require.NotNil(t, p)
	assert.Equal(t, 1, calls)
}

func TestGenerateOnceExpiredDeadline(t *testing.T) {
	t.Parallel()

	expired := time.Now().Add(-time.Second)
	p, accepted := generateOnce(50, profileFor(50), 12345, expired)
	assert.Nil(t, p)
	assert.False(t, accepted)
}
