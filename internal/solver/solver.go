// Package solver implements the exact-cover depth-first search at the heart
// of the engine: a counter-based Algorithm-X variant with dynamic min-column
// selection and adaptive colFail/colChoice tie-break weights that learn from
// dead ends within a single solve.
//
// This is a direct structural port of the reference solver
// (original_source/native/sudoku_native.c, function solve_sd and friends),
// reworked from C's manual memory layout into Go slices, and cleaned up per
// spec.md section 4.2's pseudocode where the reference C contains dead
// branches (the MINUNDEF/sentinel column-selection case is unreachable for
// any n >= 1, since a full column rescan always finds a real column whose
// count is below the sentinel; it is therefore handled implicitly by the
// outer depth loop exiting at i == V instead of as a separate branch).
package solver

import "github.com/latinforge/xcover/internal/cover"

// Status is the outcome of a solve.
type Status int

const (
	Invalid Status = iota
	Complete
	Multiple
)

func (s Status) String() string {
	switch s {
	case Invalid:
		return "INVALID"
	case Complete:
		return "COMPLETE"
	case Multiple:
		return "MULTIPLE"
	default:
		return "UNKNOWN"
	}
}

const undef = -1

// ownedTag is added to the colCount of each column owned by a committed
// choice, lifting it above every live column's count so that column
// selection never branches on a column that is already covered.
const ownedTag = 1 << 30

// Result carries the solver's outcome and the difficulty counters spec.md
// section 4.2 calls "the sole difficulty signal exported by the solver".
type Result struct {
	Status         Status
	ForwardCount   int
	BacktrackCount int
}

// state holds all per-solve scratch memory: cover counters, adaptive
// weights, and the solution stack. It is allocated fresh for every Solve
// call and never shared across calls, per spec.md section 5.
type state struct {
	g *cover.Graph

	rowCount  []int // len H; 0 means the choice is live
	colCount  []int // len W; live-choice count remaining in the column
	colFail   []int // len W; adaptive failure weight
	colChoice []int // len W; adaptive forward-progress weight

	solCol []int // len V; column branched on at depth i
	solRow []int // len V; index within that column's choice list

	forwardCount   int
	backtrackCount int
}

func newState(g *cover.Graph, v int) *state {
	st := &state{
		g:         g,
		rowCount:  make([]int, g.H),
		colCount:  make([]int, g.W),
		colFail:   make([]int, g.W),
		colChoice: make([]int, g.W),
		solCol:    make([]int, v),
		solRow:    make([]int, v),
	}
	for i := range st.colCount {
		st.colCount[i] = g.N
	}
	for i := range st.solRow {
		st.solRow[i] = undef
	}
	return st
}

// runningMin tracks the column with the smallest colCount seen so far while
// a commit is in progress, breaking ties toward the larger colFail. The min
// sentinel is N+1, one more than any live column's count, so the first live
// column considered always replaces it.
type runningMin struct {
	min, minCol, failRate, choiceRate int
}

func (st *state) freshMin() runningMin {
	return runningMin{min: st.g.N + 1}
}

func (m *runningMin) consider(st *state, col int) {
	cnt := st.colCount[col]
	if cnt < m.min || (cnt == m.min && st.colFail[col] > m.failRate) {
		m.min = cnt
		m.minCol = col
		m.failRate = st.colFail[col]
		m.choiceRate = st.colChoice[col]
	}
}

// scan performs a full pass over every column, used when the incrementally
// tracked min from the last commit isn't known to be optimal (min > 1).
func (st *state) scan() runningMin {
	m := st.freshMin()
	for c := 0; c < st.g.W; c++ {
		m.consider(st, c)
		if m.min < 2 {
			break
		}
	}
	return m
}

// commit applies choice, covering its four columns. If m is non-nil, every
// column whose count decreases as a side effect is fed to m.consider so the
// caller gets a running minimum without a second pass over the matrix.
func (st *state) commit(choice int, m *runningMin) {
	st.forwardCount++
	for _, c := range st.g.ColOfChoice[choice] {
		st.colCount[c] += ownedTag
	}
	for _, c := range st.g.ColOfChoice[choice] {
		for _, ch2 := range st.g.ChoicesOfColumn[c] {
			st.rowCount[ch2]++
			if st.rowCount[ch2] == 1 {
				for _, cc := range st.g.ColOfChoice[ch2] {
					st.colCount[cc]--
					if m != nil {
						m.consider(st, cc)
					}
				}
			}
		}
	}
}

// uncommit is the exact inverse of commit.
func (st *state) uncommit(choice int) {
	st.backtrackCount++
	for _, c := range st.g.ColOfChoice[choice] {
		for _, ch2 := range st.g.ChoicesOfColumn[c] {
			st.rowCount[ch2]--
			if st.rowCount[ch2] == 0 {
				for _, cc := range st.g.ColOfChoice[ch2] {
					st.colCount[cc]++
				}
			}
		}
	}
	for _, c := range st.g.ColOfChoice[choice] {
		st.colCount[c] -= ownedTag
	}
}

// valid reports whether board has no duplicate nonzero symbol in any row,
// column, or box of an n-box grid.
func valid(board []byte, n int) bool {
	bigN := n * n
	seenRow := make([][]bool, bigN)
	seenCol := make([][]bool, bigN)
	seenBox := make([][]bool, bigN)
	for i := 0; i < bigN; i++ {
		seenRow[i] = make([]bool, bigN+1)
		seenCol[i] = make([]bool, bigN+1)
		seenBox[i] = make([]bool, bigN+1)
	}
	for r := 0; r < bigN; r++ {
		for c := 0; c < bigN; c++ {
			v := int(board[r*bigN+c])
			if v == 0 {
				continue
			}
			if v < 0 || v > bigN {
				return false
			}
			box := (r/n)*n + c/n
			if seenRow[r][v] || seenCol[c][v] || seenBox[box][v] {
				return false
			}
			seenRow[r][v], seenCol[c][v], seenBox[box][v] = true, true, true
		}
	}
	return true
}

// Solve runs the exact-cover search for box size n over board (length
// n^4, row-major, one byte per cell, 0 = empty, values in [1, n^2]).
//
// On Complete, board is rewritten in place with the unique solution. On
// Multiple, board holds the first solution found but is not canonical. On
// Invalid, board is left unchanged.
func Solve(g *cover.Graph, board []byte) Result {
	n := g.N
	m := g.M

	if len(board) != m {
		panic("solver: board length does not match graph")
	}
	if !valid(board, g.Box) {
		return Result{Status: Invalid}
	}

	var h0 int
	work := make([]byte, m)
	copy(work, board)

	// Count givens first so we can size the solution stack to V = M - H0.
	for _, val := range board {
		if val != 0 {
			h0++
		}
	}
	v := m - h0
	st := newState(g, v)

	for r := 0; r < n; r++ {
		for c := 0; c < n; c++ {
			val := board[r*n+c]
			if val == 0 {
				continue
			}
			choice := cover.Choice(n, r, c, int(val)-1)
			st.commit(choice, nil)
		}
	}

	status := Invalid
	i := 0
	forward := true
	mrun := st.freshMin()

	for {
		for i >= 0 && i < v {
			if forward {
				if mrun.min > 1 {
					mrun = st.scan()
				}
				st.solCol[i] = mrun.minCol
			}

			c := st.solCol[i]
			k := st.solRow[i]

			if !forward && k != undef {
				st.uncommit(st.g.ChoicesOfColumn[c][k])
				st.colFail[c] = st.colChoice[c] + i
			}

			start := 0
			if k != undef {
				start = k + 1
			}
			for k = start; k < n; k++ {
				if st.rowCount[st.g.ChoicesOfColumn[c][k]] == 0 {
					break
				}
			}

			if k < n {
				forward = true
				narrowness := n / st.colCount[c]
				diff := narrowness*narrowness*(v-i)/st.g.W + 1
				st.colChoice[c] += diff
				mrun = st.freshMin()
				st.commit(st.g.ChoicesOfColumn[c][k], &mrun)
				st.solRow[i] = k
				i++
			} else {
				forward = false
				st.colFail[c] = st.colChoice[c] + i
				st.solRow[i] = undef
				i--
			}
		}
		if i < 0 {
			break
		}

		switch status {
		case Invalid:
			status = Complete
			decode(st, g, work, i)
		case Complete:
			status = Multiple
			copy(board, work)
			return Result{Status: Multiple, ForwardCount: st.forwardCount, BacktrackCount: st.backtrackCount}
		}
		i--
		forward = false
	}

	if status == Complete {
		copy(board, work)
	}
	return Result{Status: status, ForwardCount: st.forwardCount, BacktrackCount: st.backtrackCount}
}

// decode writes the choice selected at each of the first depth search
// levels into out, leaving the pre-existing givens untouched.
func decode(st *state, g *cover.Graph, out []byte, depth int) {
	for j := 0; j < depth; j++ {
		choice := g.ChoicesOfColumn[st.solCol[j]][st.solRow[j]]
		r, c, val := cover.CellOfChoice(g.N, choice)
		out[r*g.N+c] = byte(val + 1)
	}
}
