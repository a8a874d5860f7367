package solver

import (
	"testing"

	"github.com/latinforge/xcover/internal/cover"
)

// classic 9x9 with a unique solution.
var classicGivens = [][]int{
	{5, 3, 0, 0, 7, 0, 0, 0, 0},
	{6, 0, 0, 1, 9, 5, 0, 0, 0},
	{0, 9, 8, 0, 0, 0, 0, 6, 0},
	{8, 0, 0, 0, 6, 0, 0, 0, 3},
	{4, 0, 0, 8, 0, 3, 0, 0, 1},
	{7, 0, 0, 0, 2, 0, 0, 0, 6},
	{0, 6, 0, 0, 0, 0, 2, 8, 0},
	{0, 0, 0, 4, 1, 9, 0, 0, 5},
	{0, 0, 0, 0, 8, 0, 0, 7, 9},
}

func boardFromRows(rows [][]int) []byte {
	n := len(rows)
	board := make([]byte, n*n)
	for r := 0; r < n; r++ {
		for c := 0; c < n; c++ {
			board[r*n+c] = byte(rows[r][c])
		}
	}
	return board
}

func TestSolveUnique(t *testing.T) {
	g := cover.Build(3)
	board := boardFromRows(classicGivens)

	res := Solve(g, board)
	if res.Status != Complete {
		t.Fatalf("expected COMPLETE, got %s", res.Status)
	}
	for i, v := range board {
		if v == 0 {
			t.Fatalf("cell %d left empty after COMPLETE solve", i)
		}
	}
	if !valid(board, 3) {
		t.Fatal("solved board violates row/col/box constraints")
	}
}

func TestSolveEmptyBoardIsMultiple(t *testing.T) {
	g := cover.Build(3)
	board := make([]byte, g.M)

	res := Solve(g, board)
	if res.Status != Multiple {
		t.Fatalf("expected MULTIPLE for an empty 9x9 board, got %s", res.Status)
	}
}

func TestSolveContradictionIsInvalid(t *testing.T) {
	g := cover.Build(3)
	rows := make([][]int, 9)
	for i := range rows {
		rows[i] = make([]int, 9)
	}
	rows[0][0] = 5
	rows[0][1] = 5 // duplicate in row 0

	board := boardFromRows(rows)
	res := Solve(g, board)
	if res.Status != Invalid {
		t.Fatalf("expected INVALID for a duplicate-in-row board, got %s", res.Status)
	}
}

func TestSolveAlreadyCompleteIsIdempotent(t *testing.T) {
	g := cover.Build(2)
	solved := []byte{
		1, 2, 3, 4,
		3, 4, 1, 2,
		2, 1, 4, 3,
		4, 3, 2, 1,
	}
	board := append([]byte(nil), solved...)

	res := Solve(g, board)
	if res.Status != Complete {
		t.Fatalf("expected COMPLETE on an already-filled board, got %s", res.Status)
	}
	for i := range board {
		if board[i] != solved[i] {
			t.Fatalf("cell %d changed from %d to %d on a full board solve", i, solved[i], board[i])
		}
	}
	if res.BacktrackCount != 0 {
		t.Fatalf("expected zero backtracks solving an already-complete board, got %d", res.BacktrackCount)
	}
}

func TestSolveForwardCountIsAtLeastRemainingCells(t *testing.T) {
	g := cover.Build(3)
	board := boardFromRows(classicGivens)

	h0 := 0
	for _, v := range board {
		if v != 0 {
			h0++
		}
	}
	v := g.M - h0

	res := Solve(g, board)
	if res.Status != Complete {
		t.Fatalf("expected COMPLETE, got %s", res.Status)
	}
	if res.ForwardCount < v {
		t.Fatalf("forward count %d is less than the %d empty cells that must be filled", res.ForwardCount, v)
	}
}

func TestSolveLeavesInvalidBoardUnchanged(t *testing.T) {
	g := cover.Build(3)
	rows := make([][]int, 9)
	for i := range rows {
		rows[i] = make([]int, 9)
	}
	rows[0][0] = 5
	rows[0][1] = 5

	board := boardFromRows(rows)
	before := append([]byte(nil), board...)

	res := Solve(g, board)
	if res.Status != Invalid {
		t.Fatalf("expected INVALID, got %s", res.Status)
	}
	for i := range board {
		if board[i] != before[i] {
			t.Fatalf("cell %d changed on an INVALID solve", i)
		}
	}
}

func TestCellOfChoiceRoundTrip(t *testing.T) {
	n := 9
	for r := 0; r < n; r++ {
		for c := 0; c < n; c++ {
			for v := 0; v < n; v++ {
				ch := cover.Choice(n, r, c, v)
				gr, gc, gv := cover.CellOfChoice(n, ch)
				if gr != r || gc != c || gv != v {
					t.Fatalf("Choice/CellOfChoice round trip failed for (%d,%d,%d): got (%d,%d,%d)", r, c, v, gr, gc, gv)
				}
			}
		}
	}
}

func BenchmarkSolveClassic(b *testing.B) {
	g := cover.Build(3)
	for b.Loop() {
		board := boardFromRows(classicGivens)
		Solve(g, board)
	}
}
