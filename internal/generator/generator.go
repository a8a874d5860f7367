// Package generator builds a new puzzle for a given box size and difficulty:
// seed a full solution via diagonal-box fill, greedily remove cells while
// the solver confirms the remaining board is still uniquely solvable, then
// relabel the symbols.
//
// Grounded on original_source/native/sudoku_native.c's
// sd_init_diagonal_boxes/generate_puzzle: the retry loop on a pathological
// diagonal fill, the log-interpolated hint-count
// target, and the shuffle-then-walk removal loop are all taken from there.
package generator

import (
	"math"
	"time"

	"github.com/latinforge/xcover/internal/cover"
	"github.com/latinforge/xcover/internal/rng"
	"github.com/latinforge/xcover/internal/solver"
)

const maxSeedRetries = 100

// Generate produces a new board for box size n, returning the board and the
// number of hints (filled cells) it ended up with.
//
// seed of 0 uses the wall clock. difficulty is clamped to [0,1]; 1 aims for
// the fewest hints the removal loop can reach, 0 keeps the full solution. A
// timeout of 0 disables the elapsed-time cutoff; otherwise the removal loop
// stops early and returns whatever partial reduction it has made so far.
func Generate(g *cover.Graph, seed uint32, difficulty float64, timeout time.Duration) ([]byte, int) {
	if seed == 0 {
		seed = uint32(time.Now().UnixNano())
	}
	r := rng.New(seed)

	table := seedSolution(g, r)

	target := hintTarget(g.M, difficulty)

	deadline := time.Time{}
	if timeout > 0 {
		deadline = time.Now().Add(timeout)
	}

	removeHints(g, table, target, r, deadline)

	relabel(table, g.N, r)

	count := 0
	for _, v := range table {
		if v != 0 {
			count++
		}
	}
	return table, count
}

// seedSolution fills n boxes, one in each band and each stack (the diagonal
// boxes with their band order shuffled), with independent random
// permutations of 1..N (they share no row/column/box constraints with each
// other) and solves the rest. If that particular fill happens to be
// unsolvable (only an issue for pathologically small n) it retries, up to
// maxSeedRetries times, with the next fill drawn from the same generator r;
// the seed is not changed between retries.
func seedSolution(g *cover.Graph, r *rng.Source) []byte {
	n := g.Box
	bigN := g.N
	table := make([]byte, g.M)

	for retry := 0; retry < maxSeedRetries; retry++ {
		for i := range table {
			table[i] = 0
		}

		// A permutation of band indices paired with column index i picks n
		// boxes that share no row, column, or box constraints with each
		// other, so they can be filled independently.
		bandOfStack := make([]int, n)
		for i := range bandOfStack {
			bandOfStack[i] = i
		}
		rng.Shuffle(r, bandOfStack)

		for i := 0; i < n; i++ {
			fillBox(table, bigN, n, bandOfStack[i]*n+i, r)
		}

		res := solver.Solve(g, table)
		if res.Status != solver.Invalid {
			return table
		}
	}

	// Exhausted retries: return the last box fill as it is, unsolved (Solve
	// leaves an invalid board unchanged).
	return table
}

func fillBox(table []byte, bigN, n, boxIdx int, r *rng.Source) {
	vals := make([]int, bigN)
	for i := range vals {
		vals[i] = i + 1
	}
	rng.Shuffle(r, vals)

	for j := 0; j < bigN; j++ {
		row := n*(boxIdx/n) + j/n
		col := n*(boxIdx%n) + j%n
		table[row*bigN+col] = byte(vals[j])
	}
}

// hintTarget log-interpolates between the minimum and maximum hint counts
// for the given difficulty in [0,1]; 0.01 or below short-circuits to "keep
// everything".
func hintTarget(m int, difficulty float64) int {
	if difficulty < 0 {
		difficulty = 0
	}
	if difficulty > 1 {
		difficulty = 1
	}
	if difficulty <= 0.01 {
		return m
	}

	minHints := int(0.2 * float64(m))
	if minHints < 1 {
		minHints = 1
	}
	maxHints := m
	ratio := float64(maxHints) / float64(minHints)
	return int(float64(minHints) * math.Pow(ratio, 1-difficulty))
}

// removeHints walks a shuffled list of cell indices, clearing each cell
// whose removal still leaves the board uniquely solvable, until the target
// hint count is reached, a full pass clears nothing, or the deadline (if
// any) elapses.
func removeHints(g *cover.Graph, table []byte, target int, r *rng.Source, deadline time.Time) {
	arr := make([]int, g.M)
	for i := range arr {
		arr[i] = i
	}

	filled := 0
	for _, v := range table {
		if v != 0 {
			filled++
		}
	}

	trial := make([]byte, len(table))

	for filled > target {
		rng.Shuffle(r, arr)
		cleared := false

		for i := 0; i < len(arr); i++ {
			if filled <= target {
				break
			}
			if !deadline.IsZero() && time.Now().After(deadline) {
				return
			}

			idx := arr[i]
			if table[idx] == 0 {
				continue
			}
			saved := table[idx]
			table[idx] = 0

			copy(trial, table)
			res := solver.Solve(g, trial)
			if res.Status == solver.Complete {
				cleared = true
				filled--
				arr = append(arr[:i], arr[i+1:]...)
				i--
			} else {
				table[idx] = saved
			}
		}

		if !cleared {
			return
		}
	}
}

func relabel(table []byte, bigN int, r *rng.Source) {
	perm := make([]int, bigN)
	for i := range perm {
		perm[i] = i + 1
	}
	rng.Shuffle(r, perm)

	for i, v := range table {
		if v != 0 {
			table[i] = byte(perm[v-1])
		}
	}
}
