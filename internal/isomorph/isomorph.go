// Package isomorph applies board-preserving transformations to a Sudoku
// board: permuting bands, stacks, the rows within each band, the columns
// within each stack, and the nonzero symbol labels. The composition is
// bijective over valid boards and preserves both solution count and hint
// count, which is what lets the difficulty sampler treat several isomorphs
// of the same puzzle as equivalent search problems.
//
// Grounded on original_source/native/sudoku_native.c's apply_isomorphism:
// the same five-permutation composition order is used here.
package isomorph

import "github.com/latinforge/xcover/internal/rng"

// Apply returns a new board of the same length as src, obtained by a
// uniformly sampled composition of band/stack/row/column/symbol
// permutations, using r as the sole source of randomness.
func Apply(src []byte, n int, r *rng.Source) []byte {
	bigN := n * n
	dst := make([]byte, len(src))

	bandPerm := identity(n)
	stackPerm := identity(n)
	rng.Shuffle(r, bandPerm)
	rng.Shuffle(r, stackPerm)

	rowInBand := make([][]int, n)
	colInStack := make([][]int, n)
	for b := 0; b < n; b++ {
		rowInBand[b] = identity(n)
		colInStack[b] = identity(n)
		rng.Shuffle(r, rowInBand[b])
		rng.Shuffle(r, colInStack[b])
	}

	valuePerm := make([]int, bigN+1)
	for i := 1; i <= bigN; i++ {
		valuePerm[i] = i
	}
	tail := valuePerm[1:]
	rng.Shuffle(r, tail)

	for row := 0; row < bigN; row++ {
		srcBand, srcRowInBand := row/n, row%n
		dstBand := bandPerm[srcBand]
		dstRowInBand := rowInBand[dstBand][srcRowInBand]
		dstRow := dstBand*n + dstRowInBand

		for col := 0; col < bigN; col++ {
			srcStack, srcColInStack := col/n, col%n
			dstStack := stackPerm[srcStack]
			dstColInStack := colInStack[dstStack][srcColInStack]
			dstCol := dstStack*n + dstColInStack

			val := src[row*bigN+col]
			dst[dstRow*bigN+dstCol] = byte(valuePerm[val])
		}
	}

	return dst
}

func identity(n int) []int {
	arr := make([]int, n)
	for i := range arr {
		arr[i] = i
	}
	return arr
}
