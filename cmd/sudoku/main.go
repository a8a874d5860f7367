// Command sudoku is a CLI front end over the xcover engine: solve a board
// read from stdin, generate a new puzzle, or rate an existing one's
// difficulty. The overall shape (TTY-gated input prompt, colored banners,
// fatal-on-malformed-input) follows the teacher's cmd/sudoku/main.go.
package main

import (
	"bufio"
	"flag"
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"

	"github.com/latinforge/xcover"
	"github.com/latinforge/xcover/internal/display"
)

func main() {
	if len(os.Args) < 2 {
		usage()
		os.Exit(2)
	}

	switch os.Args[1] {
	case "solve":
		runSolve(os.Args[2:])
	case "generate":
		runGenerate(os.Args[2:])
	case "rate":
		runRate(os.Args[2:])
	default:
		usage()
		os.Exit(2)
	}
}

func usage() {
	fmt.Fprintln(os.Stderr, "usage: sudoku <solve|generate|rate> [flags]")
}

func runSolve(args []string) {
	fs := flag.NewFlagSet("solve", flag.ExitOnError)
	n := fs.Int("n", 3, "box size (board side is n*n)")
	fs.Parse(args)

	if isStdinTTY() {
		fmt.Println("Enter the board as n^2 lines of n^2 characters (0 or . for empty cells).")
		fmt.Println("(Ctrl+D to finish on Unix/Linux, Ctrl+Z then Enter on Windows):")
	}

	board := readBoard(os.Stdin, *n)
	original := append(xcover.Board(nil), board...)

	status := xcover.Solve(board, *n)

	out := display.Out()
	switch status {
	case xcover.Complete:
		color.New(color.Bold, color.FgHiWhite).Fprintln(out, "Solution:")
	case xcover.Multiple:
		color.New(color.Bold, color.FgHiYellow).Fprintln(out, "Multiple solutions (first shown):")
	case xcover.Invalid:
		fatalError("board has no valid completion (duplicate or contradictory givens)")
	}
	display.PrintBoard(out, original, board, *n)
}

func runGenerate(args []string) {
	fs := flag.NewFlagSet("generate", flag.ExitOnError)
	n := fs.Int("n", 3, "box size (board side is n*n)")
	seed := fs.Uint("seed", 0, "PRNG seed (0 = use the clock)")
	difficulty := fs.Float64("difficulty", 0.5, "difficulty in [0,1], 1 = fewest hints")
	timeoutMs := fs.Int("timeout", 0, "hint-removal timeout in milliseconds (0 = no timeout)")
	fs.Parse(args)

	board, hints := xcover.Generate(*n, uint32(*seed), *difficulty, *timeoutMs)

	out := display.Out()
	color.New(color.Bold, color.FgHiWhite).Fprintf(out, "Generated puzzle (%d hints):\n", hints)
	display.PrintBoard(out, board, board, *n)
}

func runRate(args []string) {
	fs := flag.NewFlagSet("rate", flag.ExitOnError)
	n := fs.Int("n", 3, "box size (board side is n*n)")
	samples := fs.Int("samples", 10, "number of isomorphic samples to solve")
	seed := fs.Uint("seed", 1, "base PRNG seed for isomorph sampling")
	fs.Parse(args)

	if isStdinTTY() {
		fmt.Println("Enter the board as n^2 lines of n^2 characters (0 or . for empty cells).")
		fmt.Println("(Ctrl+D to finish on Unix/Linux, Ctrl+Z then Enter on Windows):")
	}

	board := readBoard(os.Stdin, *n)

	stats, ok := xcover.EstimateDifficulty(board, *n, *samples, uint32(*seed))
	if !ok {
		fatalError("board is not uniquely solvable; cannot rate difficulty")
	}

	display.PrintDifficulty(display.Out(), stats.Samples,
		stats.MinForward, stats.MaxForward, stats.AvgForward,
		stats.MinBacktrack, stats.MaxBacktrack, stats.AvgBacktrack)
}

// readBoard reads n^2 lines of n^2 characters from r, treating the digits
// 1..n^2 as givens and anything else as an empty cell.
func readBoard(r *os.File, n int) xcover.Board {
	bigN := n * n
	board := xcover.NewBoard(n)
	scanner := bufio.NewScanner(r)

	row := 0
	for scanner.Scan() {
		if row >= bigN {
			fatalError("too many input lines")
		}
		line := scanner.Text()
		if len(line) < bigN {
			fatalError("input line too short")
		}
		for col := 0; col < bigN; col++ {
			ch := line[col]
			if ch < '0' || ch > '9' {
				continue
			}
			val := int(ch - '0')
			// Multi-digit symbols (n >= 4, boards with more than 9
			// symbols) aren't representable in this plain-text reader;
			// single digits cover n in {2,3} which is the common case.
			if val >= 1 && val <= bigN {
				board[row*bigN+col] = byte(val)
			}
		}
		row++
	}
	if row < bigN {
		fatalError("not enough input lines")
	}
	if err := scanner.Err(); err != nil {
		fatalError("error reading standard input: " + err.Error())
	}

	return board
}

func fatalError(msg string) {
	fmt.Fprintf(os.Stderr, "error: %s\n", msg)
	os.Exit(1)
}

func isStdinTTY() bool {
	return isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd())
}
