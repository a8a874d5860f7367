package isomorph

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/latinforge/xcover/internal/cover"
	"github.com/latinforge/xcover/internal/rng"
	"github.com/latinforge/xcover/internal/solver"
)

var solved9 = []byte{
	5, 3, 4, 6, 7, 8, 9, 1, 2,
	6, 7, 2, 1, 9, 5, 3, 4, 8,
	1, 9, 8, 3, 4, 2, 5, 6, 7,
	8, 5, 9, 7, 6, 1, 4, 2, 3,
	4, 2, 6, 8, 5, 3, 7, 9, 1,
	7, 1, 3, 9, 2, 4, 8, 5, 6,
	9, 6, 1, 5, 3, 7, 2, 8, 4,
	2, 8, 7, 4, 1, 9, 6, 3, 5,
	3, 4, 5, 2, 8, 6, 1, 7, 9,
}

func TestApplyPreservesHintCount(t *testing.T) {
	board := append([]byte(nil), solved9...)
	board[0] = 0
	board[5] = 0

	out := Apply(board, 3, rng.New(1))

	wantHints := 0
	for _, v := range board {
		if v != 0 {
			wantHints++
		}
	}
	gotHints := 0
	for _, v := range out {
		if v != 0 {
			gotHints++
		}
	}
	assert.Equal(t, wantHints, gotHints)
}

func TestApplyIsStillSolvable(t *testing.T) {
	g := cover.Build(3)
	board := append([]byte(nil), solved9...)

	out := Apply(board, 3, rng.New(99))
	require.Len(t, out, len(board))

	res := solver.Solve(g, out)
	assert.Equal(t, solver.Complete, res.Status)
}

func TestApplyProducesAValidPermutationOfSymbols(t *testing.T) {
	board := append([]byte(nil), solved9...)
	out := Apply(board, 3, rng.New(5))

	seen := map[byte]bool{}
	for _, v := range out {
		require.GreaterOrEqual(t, int(v), 0)
		require.LessOrEqual(t, int(v), 9)
		seen[v] = true
	}
	// a fully filled 9x9 Latin square uses every symbol 1..9 somewhere.
	for v := byte(1); v <= 9; v++ {
		assert.True(t, seen[v], "symbol %d missing after isomorphism", v)
	}
}

func TestApplyIsDeterministicForAFixedSeed(t *testing.T) {
	board := append([]byte(nil), solved9...)

	a := Apply(board, 3, rng.New(42))
	b := Apply(board, 3, rng.New(42))

	assert.Equal(t, a, b)
}
