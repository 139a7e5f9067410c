package sudoku

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFirstSingleOnEasyPuzzle(t *testing.T) {
	g, err := ParseGrid(easyPuzzleLine)
	require.NoError(t, err)
	sol, err := ParseGrid(easySolutionLine)
	require.NoError(t, err)

	// following hints one at a time must walk all the way to the solution
	for g.Givens() < CellCount {
		hint, ok := FirstSingle(g)
		require.True(t, ok, "hint chain broke at %d givens", g.Givens())
		assert.Zero(t, g[hint.Row][hint.Col])
		assert.Equal(t, sol[hint.Row][hint.Col], hint.Digit)
		g[hint.Row][hint.Col] = hint.Digit
	}
	assert.Equal(t, *sol, *g)
}

func TestFirstSingleStallsOnHardPuzzle(t *testing.T) {
	g, err := ParseGrid(hardPuzzleLine)
	require.NoError(t, err)
	reduced, solved := SolveLogically(g)
	require.False(t, solved)

	_, ok := FirstSingle(reduced)
	assert.False(t, ok, "reducer fixpoint should offer no further single")
}

func TestFirstSingleSolvedGrid(t *testing.T) {
	g, err := ParseGrid(easySolutionLine)
	require.NoError(t, err)
	_, ok := FirstSingle(g)
	assert.False(t, ok)
}
