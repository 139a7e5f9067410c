package sudoku

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	easyPuzzleLine   = "53..7....6..195....98....6.8...6...34..8.3..17...2...6.6....28....419..5....8..79"
	easySolutionLine = "534678912672195348198342567859761423426853791713924856961537284287419635345286179"
)

func TestParseGridRoundTrip(t *testing.T) {
	g, err := ParseGrid(easyPuzzleLine)
	require.NoError(t, err)
	assert.Equal(t, 30, g.Givens())

	line := g.Line()
	g2, err := ParseGrid(line)
	require.NoError(t, err)
	assert.Equal(t, *g, *g2)
}

func TestParseGridRejectsGarbage(t *testing.T) {
	_, err := ParseGrid("123")
	assert.Error(t, err)

	bad := easyPuzzleLine[:80] + "x"
	_, err = ParseGrid(bad)
	assert.Error(t, err)
}

func TestConsistent(t *testing.T) {
	g, err := ParseGrid(easyPuzzleLine)
	require.NoError(t, err)
	assert.True(t, g.Consistent())

	g[0][1] = 5 // duplicates the 5 already in row 0
	assert.False(t, g.Consistent())
}

func TestComplete(t *testing.T) {
	solved, err := ParseGrid(easySolutionLine)
	require.NoError(t, err)
	assert.True(t, solved.Complete())

	partial, err := ParseGrid(easyPuzzleLine)
	require.NoError(t, err)
	assert.False(t, partial.Complete())
}

func TestRowColGivens(t *testing.T) {
	var g Grid
	g[3][0] = 1
	g[3][4] = 2
	g[6][4] = 3
	assert.Equal(t, 2, g.RowGivens(3))
	assert.Equal(t, 0, g.RowGivens(0))
	assert.Equal(t, 2, g.ColGivens(4))
	assert.Equal(t, 1, g.ColGivens(0))
}

func TestBoxOf(t *testing.T) {
	assert.Equal(t, 0, boxOf(0, 0))
	assert.Equal(t, 1, boxOf(2, 5))
	assert.Equal(t, 4, boxOf(4, 4))
	assert.Equal(t, 8, boxOf(8, 8))
	assert.Equal(t, 6, boxOf(8, 0))
}
