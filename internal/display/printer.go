// Package display renders a board and difficulty stats to a terminal,
// following the teacher's bordered-grid-with-color approach
// (internal/puzzle/printer.go in kpitt-sudoku) generalized from a fixed 9x9
// table to an arbitrary box size n, and wired through go-colorable so the
// colored output survives non-ANSI Windows consoles the way the teacher's
// indirect dependency on it implies but never exercises directly.
package display

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/fatih/color"
	"github.com/mattn/go-colorable"
)

var (
	givenColor  = color.New(color.Bold, color.FgHiYellow, color.BgHiBlack)
	solvedColor = color.New(color.Bold, color.FgHiWhite)
	emptyColor  = color.New(color.FgHiBlack)
)

// Out returns a colorable stdout writer, matching the teacher's use of
// go-colorable behind fatih/color on Windows terminals.
func Out() io.Writer {
	return colorable.NewColorableStdout()
}

// PrintBoard writes a bordered n^2 x n^2 grid to w, given the original
// board (to tell given cells from solved ones) and the board to render.
func PrintBoard(w io.Writer, original, board []byte, n int) {
	bigN := n * n
	cellWidth := len(strconv.Itoa(bigN)) + 2

	top, mid, bot := borders(n, bigN, cellWidth)
	fmt.Fprintln(w, top)
	for r := 0; r < bigN; r++ {
		if r != 0 {
			if r%n == 0 {
				fmt.Fprintln(w, mid)
			}
		}
		printRow(w, original[r*bigN:(r+1)*bigN], board[r*bigN:(r+1)*bigN], n, cellWidth)
	}
	fmt.Fprintln(w, bot)
}

func printRow(w io.Writer, originalRow, boardRow []byte, n, cellWidth int) {
	fmt.Fprint(w, "│")
	for c, v := range boardRow {
		if c != 0 && c%n == 0 {
			fmt.Fprint(w, "│")
		}
		text := fmt.Sprintf("%*s", cellWidth, cellText(v))
		switch {
		case v == 0:
			emptyColor.Fprint(w, text)
		case originalRow[c] != 0:
			givenColor.Fprint(w, text)
		default:
			solvedColor.Fprint(w, text)
		}
	}
	fmt.Fprintln(w, "│")
}

func cellText(v byte) string {
	if v == 0 {
		return "."
	}
	return strconv.Itoa(int(v))
}

func borders(n, bigN, cellWidth int) (top, mid, bot string) {
	seg := strings.Repeat("─", cellWidth)
	block := strings.Repeat(seg, n)
	var parts []string
	for i := 0; i < n; i++ {
		parts = append(parts, block)
	}
	top = "┌" + strings.Join(parts, "┬") + "┐"
	mid = "├" + strings.Join(parts, "┼") + "┤"
	bot = "└" + strings.Join(parts, "┴") + "┘"
	return top, mid, bot
}

// PrintDifficulty writes the difficulty sampler's aggregate stats.
func PrintDifficulty(w io.Writer, samples, minFwd, maxFwd, avgFwd, minBt, maxBt, avgBt int) {
	color.New(color.Bold, color.FgHiWhite).Fprintln(w, "Difficulty estimate:")
	fmt.Fprintf(w, "  samples:   %d\n", samples)
	fmt.Fprintf(w, "  forward:   min=%d max=%d avg=%d\n", minFwd, maxFwd, avgFwd)
	fmt.Fprintf(w, "  backtrack: min=%d max=%d avg=%d\n", minBt, maxBt, avgBt)
}
