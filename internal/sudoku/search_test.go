package sudoku

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSolveOneFindsKnownSolution(t *testing.T) {
	g, err := ParseGrid(easyPuzzleLine)
	require.NoError(t, err)
	want, err := ParseGrid(easySolutionLine)
	require.NoError(t, err)

	got := SolveOne(g, nil, time.Time{})
	require.NotNil(t, got)
	assert.Equal(t, *want, *got)

	// the input grid is untouched
	assert.Equal(t, 30, g.Givens())
}

func TestSolveOneInconsistentGrid(t *testing.T) {
	g, err := ParseGrid(easyPuzzleLine)
	require.NoError(t, err)
	g[0][1] = 5
	assert.Nil(t, SolveOne(g, nil, time.Time{}))
}

func TestSolveOneUnsatisfiableGrid(t *testing.T) {
	// locally consistent, yet cell (0,0) has no candidate at all: 1-4 sit
	// in its row, 5-8 in its column, 9 in its box
	var g Grid
	g[0][2], g[0][3], g[0][4], g[0][5] = 1, 2, 3, 4
	g[3][0], g[4][0], g[5][0], g[6][0] = 5, 6, 7, 8
	g[1][1] = 9
	require.True(t, g.Consistent())
	assert.Nil(t, SolveOne(&g, nil, time.Time{}))
}

func TestCountSolutionsSolvedGrid(t *testing.T) {
	solved, err := ParseGrid(easySolutionLine)
	require.NoError(t, err)
	assert.Equal(t, 1, CountSolutions(solved, 2, time.Time{}))
}

func TestCountSolutionsEmptyGrid(t *testing.T) {
	var g Grid
	// aborts as soon as the second completion is found
	assert.Equal(t, 2, CountSolutions(&g, 2, time.Time{}))
}

func TestCountSolutionsUniquePuzzle(t *testing.T) {
	g, err := ParseGrid(easyPuzzleLine)
	require.NoError(t, err)
	assert.Equal(t, 1, CountSolutions(g, 2, time.Time{}))
}

func TestCountSolutionsAmbiguousPuzzle(t *testing.T) {
	g, err := ParseGrid(easyPuzzleLine)
	require.NoError(t, err)
	// drop enough clues that a second completion must exist
	for c := range Size {
		g[0][c] = 0
		g[1][c] = 0
		g[2][c] = 0
	}
	assert.Equal(t, 2, CountSolutions(g, 2, time.Time{}))
}

func TestCountSolutionsDegenerateArgs(t *testing.T) {
	var g Grid
	assert.Equal(t, 0, CountSolutions(&g, 0, time.Time{}))

	bad, err := ParseGrid(easyPuzzleLine)
	require.NoError(t, err)
	bad[0][1] = 5
	assert.Equal(t, 0, CountSolutions(bad, 2, time.Time{}))
}

func TestSearchDeadlineAborts(t *testing.T) {
	var g Grid
	expired := time.Now().Add(-time.Second)
	assert.Nil(t, SolveOne(&g, nil, expired))
	assert.Equal(t, 0, CountSolutions(&g, 2, expired))
}

func TestSolveOneRandomizedOrderStillValid(t *testing.T) {
	g, err := ParseGrid(easyPuzzleLine)
	require.NoError(t, err)
	got := SolveOne(g, newRand(99), time.Time{})
	require.NotNil(t, got)
	// a unique puzzle solves to the same grid no matter the digit order
	want, _ := ParseGrid(easySolutionLine)
	assert.Equal(t, *want, *got)
}
