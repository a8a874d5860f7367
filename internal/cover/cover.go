// Package cover builds the static exact-cover constraint graph for an n-ary
// Latin-square / Sudoku board: the four constraint families (ROWCOL, BOXNUM,
// ROWNUM, COLNUM) and the choice-to-column incidence arrays that the solver
// searches over. The graph depends only on the box size n and is built once
// per n, then shared read-only across every solve.
package cover

// Constraint family identifiers, matching the column-id layout in spec.md
// section 4.1: each family owns a contiguous block of M columns.
const (
	RowCol = iota
	BoxNum
	RowNum
	ColNum
	numFamilies
)

// Graph is the static exact-cover matrix for a given box size Box (where
// N = Box*Box is the board side and M = N*N is the cell count).
type Graph struct {
	Box int // box size (n in spec.md)
	N   int // board side, Box*Box (symbols per row)
	M   int // cell count, N*N
	W   int // constraint column count, 4*M
	H   int // choice count, N*M

	// ColOfChoice[choice] holds the four column ids that choice covers, one
	// per constraint family (indexed by RowCol/BoxNum/RowNum/ColNum).
	ColOfChoice [][numFamilies]int

	// ChoicesOfColumn[column] lists the N choices that cover that column.
	ChoicesOfColumn [][]int
}

// Choice returns the choice id for placing value v (0-indexed, [0,N)) in
// cell (r,c).
func Choice(n, r, c, v int) int {
	return n * (n*r + c) + v
}

// CellOfChoice decodes a choice id back into its (row, col, value) triple.
func CellOfChoice(n, choice int) (r, c, v int) {
	v = choice % n
	rc := choice / n
	c = rc % n
	r = rc / n
	return r, c, v
}

// Build constructs the exact-cover graph for box size n (n >= 1).
func Build(n int) *Graph {
	bigN := n * n
	m := bigN * bigN
	g := &Graph{
		Box: n,
		N:   bigN,
		M:   m,
		W:   numFamilies * m,
		H:   bigN * m,
	}

	g.ColOfChoice = make([][numFamilies]int, g.H)
	for r := 0; r < bigN; r++ {
		for c := 0; c < bigN; c++ {
			box := (r/n)*n + c/n
			for v := 0; v < bigN; v++ {
				ch := Choice(bigN, r, c, v)
				g.ColOfChoice[ch] = [numFamilies]int{
					RowCol: 0*m + bigN*r + c,
					BoxNum: 1*m + box*bigN + v,
					RowNum: 2*m + bigN*r + v,
					ColNum: 3*m + bigN*c + v,
				}
			}
		}
	}

	g.ChoicesOfColumn = make([][]int, g.W)
	for col := range g.ChoicesOfColumn {
		g.ChoicesOfColumn[col] = make([]int, 0, bigN)
	}
	for ch := 0; ch < g.H; ch++ {
		for _, col := range g.ColOfChoice[ch] {
			g.ChoicesOfColumn[col] = append(g.ChoicesOfColumn[col], ch)
		}
	}

	return g
}
