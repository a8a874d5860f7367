// Package xcover is the public API of the exact-cover Latin-square/Sudoku
// engine: solve a partially filled board, generate a new one at a target
// difficulty, and estimate how hard an existing puzzle is. It is the Go
// equivalent of the native library's FFI exports
// (sd_solve/sd_generate/sd_difficulty in original_source), built instead as
// a plain importable package with no cgo boundary.
//
// Every exported function owns its cover graph, cover state, and solution
// stack for the duration of the call; nothing is shared across calls except
// the caller-supplied PRNG seed (section 5 of spec.md).
package xcover

import (
	"time"

	"github.com/latinforge/xcover/internal/cover"
	"github.com/latinforge/xcover/internal/difficulty"
	"github.com/latinforge/xcover/internal/generator"
	"github.com/latinforge/xcover/internal/solver"
)

// Status mirrors the three solve outcomes from spec.md section 6.
type Status int

const (
	Invalid  Status = Status(solver.Invalid)
	Complete Status = Status(solver.Complete)
	Multiple Status = Status(solver.Multiple)
)

func (s Status) String() string {
	return solver.Status(s).String()
}

// Board is a row-major, one-byte-per-cell Latin-square/Sudoku grid: 0 means
// empty, and a nonzero cell holds a value in [1, N] where N = n*n.
type Board []byte

// NewBoard allocates an empty board for box size n.
func NewBoard(n int) Board {
	return make(Board, n*n*n*n)
}

// BoxSize returns n, the board's box size, given its length is n^4. It
// returns 0 if the board's length is not a fourth power.
func (b Board) BoxSize() int {
	for n := 1; ; n++ {
		m := n * n * n * n
		if m == len(b) {
			return n
		}
		if m > len(b) {
			return 0
		}
	}
}

// HintCount returns the number of nonzero cells.
func (b Board) HintCount() int {
	count := 0
	for _, v := range b {
		if v != 0 {
			count++
		}
	}
	return count
}

// Solve attempts to solve board in place for box size n, returning whether
// it is INVALID (malformed or unsatisfiable givens), COMPLETE (a unique
// solution, written into board), or MULTIPLE (more than one solution; board
// holds a first, non-canonical one).
func Solve(board Board, n int) Status {
	g := cover.Build(n)
	res := solver.Solve(g, board)
	return Status(res.Status)
}

// Generate produces a new board for box size n. seed of 0 uses the wall
// clock. difficulty is clamped to [0,1], where 1 aims for the fewest hints
// the removal loop can reach and 0 keeps a fully filled board. timeoutMs of
// 0 disables the removal-loop cutoff; a nonzero value may cause Generate to
// return early with a partially reduced, still-unique board. The returned
// int is the number of hints (filled cells) in the generated board.
func Generate(n int, seed uint32, difficulty float64, timeoutMs int) (Board, int) {
	g := cover.Build(n)
	timeout := time.Duration(timeoutMs) * time.Millisecond
	table, hints := generator.Generate(g, seed, difficulty, timeout)
	return Board(table), hints
}

// DifficultyStats reports aggregate search-effort counters across several
// isomorphic shuffles of the same puzzle, the difficulty sampler's signal
// for how hard a puzzle is.
type DifficultyStats struct {
	MinForward, MaxForward, AvgForward       int
	MinBacktrack, MaxBacktrack, AvgBacktrack int
	Samples                                  int
}

// EstimateDifficulty solves samples isomorphic shuffles of board (box size
// n, seeded from baseSeed) and aggregates forward/backtrack counts. It
// returns ok=false if any sample turns out INVALID or MULTIPLE, meaning the
// puzzle itself is ill-formed rather than merely hard.
func EstimateDifficulty(board Board, n int, samples int, baseSeed uint32) (DifficultyStats, bool) {
	g := cover.Build(n)
	stats, ok := difficulty.Estimate(g, board, samples, baseSeed)
	if !ok {
		return DifficultyStats{}, false
	}
	return DifficultyStats(stats), true
}
