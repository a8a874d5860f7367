package xcover

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var classicGivens9 = []byte{
	5, 3, 0, 0, 7, 0, 0, 0, 0,
	6, 0, 0, 1, 9, 5, 0, 0, 0,
	0, 9, 8, 0, 0, 0, 0, 6, 0,
	8, 0, 0, 0, 6, 0, 0, 0, 3,
	4, 0, 0, 8, 0, 3, 0, 0, 1,
	7, 0, 0, 0, 2, 0, 0, 0, 6,
	0, 6, 0, 0, 0, 0, 2, 8, 0,
	0, 0, 0, 4, 1, 9, 0, 0, 5,
	0, 0, 0, 0, 8, 0, 0, 7, 9,
}

func TestNewBoardSize(t *testing.T) {
	b := NewBoard(3)
	assert.Len(t, b, 9*9)
	assert.Equal(t, 3, b.BoxSize())
}

func TestBoardBoxSizeRejectsNonFourthPower(t *testing.T) {
	b := Board(make([]byte, 10))
	assert.Equal(t, 0, b.BoxSize())
}

func TestHintCount(t *testing.T) {
	b := Board(append([]byte(nil), classicGivens9...))
	count := 0
	for _, v := range classicGivens9 {
		if v != 0 {
			count++
		}
	}
	assert.Equal(t, count, b.HintCount())
}

func TestSolveClassicPuzzle(t *testing.T) {
	b := Board(append([]byte(nil), classicGivens9...))
	status := Solve(b, 3)

	require.Equal(t, Complete, status)
	assert.Equal(t, "COMPLETE", status.String())
	assert.Equal(t, 81, b.HintCount())
}

func TestSolveEmptyBoardIsMultiple(t *testing.T) {
	b := NewBoard(3)
	status := Solve(b, 3)
	assert.Equal(t, Multiple, status)
}

func TestSolveContradictionIsInvalid(t *testing.T) {
	b := NewBoard(3)
	b[0] = 5
	b[1] = 5

	status := Solve(b, 3)
	assert.Equal(t, Invalid, status)
}

func TestGenerateThenSolveRoundTrips(t *testing.T) {
	board, hints := Generate(3, 11, 0.5, 0)
	require.Greater(t, hints, 0)
	require.Equal(t, hints, board.HintCount())

	status := Solve(board, 3)
	assert.Equal(t, Complete, status)
}

func TestEstimateDifficultyOnGeneratedPuzzle(t *testing.T) {
	board, _ := Generate(3, 22, 0.6, 0)

	stats, ok := EstimateDifficulty(board, 3, 4, 1)
	require.True(t, ok)
	assert.Equal(t, 4, stats.Samples)
}

func TestEstimateDifficultyRejectsNonUniqueBoard(t *testing.T) {
	board := NewBoard(3)
	_, ok := EstimateDifficulty(board, 3, 3, 1)
	assert.False(t, ok)
}
