package sudoku

import (
	"context"
	"math"
	"time"
)

const (
	// DifficultyMin and DifficultyMax bound the request scale: 0 is the
	// most-clues end, 100 the fewest.
	DifficultyMin = 0
	DifficultyMax = 100

	maxAttemptsPerLevel = 10
	fallbackStep        = 5
	fallbackLevels      = 2
)

// Params describes one generation request. Difficulty is accepted as a
// float so boundary garbage (NaN, fractions) can be rejected with a
// descriptive error instead of silently truncated. Seed is a
// reproducibility aid, not a correctness input: when absent the engine
// falls back to a timestamp-derived seed rather than failing the request.
type Params struct {
	Difficulty float64 `json:"difficulty" schema:"difficulty,required"`
	Seed       *int64  `json:"seed,omitempty" schema:"seed"`
}

func (p Params) difficulty() (int, error) {
	d := p.Difficulty
	if math.IsNaN(d) || math.IsInf(d, 0) {
		return 0, InvalidDifficultyError{Reason: "must be a finite number"}
	}
	if d != math.Trunc(d) {
		return 0, InvalidDifficultyError{Reason: "must be an integer"}
	}
	if d < DifficultyMin || d > DifficultyMax {
		return 0, InvalidDifficultyError{Reason: "must be between 0 and 100"}
	}
	return int(d), nil
}

func (p Params) baseSeed() int64 {
	if p.Seed != nil {
		return *p.Seed
	}
	return time.Now().UnixNano()
}

// Generate is the engine's sole entry point. It validates the request,
// then drives repeated generate-dig-verify attempts under a wall-clock
// budget that scales with difficulty, stepping the difficulty down by
// fallbackStep on sustained failure before giving up.
//
// Availability over strict quality, by policy: if some attempt produced a
// unique, well-formed puzzle that merely failed the stricter tier gate, the
// best such puzzle is returned instead of an error once the structured
// attempts are exhausted.
//
// For a fixed (difficulty, seed) pair the returned grid and solution are
// identical across runs as long as attempts complete within budget; every
// random choice flows from the per-attempt derived seed.
func Generate(ctx context.Context, params Params) (*Puzzle, error) {
	return generate(ctx, params, generateOnce)
}

// attemptFunc runs one generation attempt, reporting the dug puzzle (nil
// when none came out unique) and whether it cleared the quality gate.
type attemptFunc func(difficulty int, prof profile, seed int64, deadline time.Time) (*Puzzle, bool)

func generate(ctx context.Context, params Params, attempt attemptFunc) (*Puzzle, error) {
	difficulty, err := params.difficulty()
	if err != nil {
		return nil, err
	}
	baseSeed := params.baseSeed()

	start := time.Now()
	tried := make([]int, 0, 1+fallbackLevels)
	var bestEffort *Puzzle

	level := difficulty
	for step := 0; step <= fallbackLevels; step++ {
		tried = append(tried, level)
		prof := profileFor(level)

		deadline := time.Now().Add(prof.budget())
		if d, ok := ctx.Deadline(); ok && d.Before(deadline) {
			deadline = d
		}

		for i := range maxAttemptsPerLevel {
			if ctx.Err() != nil || pastDeadline(deadline) {
				break
			}
			seed := deriveSeed(baseSeed, step*maxAttemptsPerLevel+i)
			puzzle, accepted := attempt(level, prof, seed, deadline)
			if puzzle == nil {
				continue
			}
			if accepted {
				return puzzle, nil
			}
			if bestEffort == nil || puzzle.GivenCount < bestEffort.GivenCount {
				bestEffort = puzzle
			}
		}

		if level == DifficultyMin {
			break
		}
		level = max(level-fallbackStep, DifficultyMin)
	}

	if bestEffort != nil {
		Log.Warn("quality gate never satisfied, returning best effort",
			"difficulties", tried, "givens", bestEffort.GivenCount)
		return bestEffort, nil
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return nil, GenerationFailedError{
		Difficulties: tried,
		Elapsed:      time.Since(start),
	}
}

// generateOnce runs a single terminal-pattern + hole-digging attempt. It
// returns a puzzle whenever the dug grid is provably unique, plus whether
// that puzzle also cleared the tier's quality gate.
func generateOnce(difficulty int, prof profile, seed int64, deadline time.Time) (*Puzzle, bool) {
	rnd := newRand(seed)

	solution := GenerateComplete(rnd)
	grid := digHoles(&solution, prof, rnd, deadline)

	if grid.Givens() < MinGivens {
		return nil, false
	}
	if CountSolutions(&grid, 2, deadline) != 1 {
		return nil, false
	}

	accepted := meetsQuality(&grid, prof)
	applyEquivalent(rnd, &grid, &solution)
	return newPuzzle(difficulty, seed, grid, solution), accepted
}
