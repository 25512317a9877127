// Command sudoku solves a Sudoku puzzle given as a single command-line
// argument: a row-major digit string where 0 marks an empty cell.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"

	"github.com/halfvector/dlx"
	"github.com/halfvector/dlx/sudoku"
)

func main() {
	boxSideLength := flag.Int("box", 3, "box side length (3 for a standard 9x9 puzzle)")
	flag.Usage = printUsage
	flag.Parse()

	color.NoColor = !isTerminal(os.Stdout)

	if flag.NArg() != 1 {
		printUsage()
		os.Exit(1)
	}

	given, err := sudoku.ParseBoard(flag.Arg(0), *boxSideLength)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %s\n", err)
		os.Exit(1)
	}

	solver := dlx.New[sudoku.Possibility, sudoku.Constraint](given.Problem())

	found := false
	for solution := range solver.Solutions() {
		if found {
			fmt.Println()
		}
		found = true

		solved := given.Fill(solution)
		color.HiWhite("Solution:")
		solved.Print(given)
	}

	if !found {
		color.HiWhite("No solution found.")
		given.PrintCandidates()
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Fprintln(os.Stderr, "Usage: sudoku [-box N] PUZZLE")
	fmt.Fprintln(os.Stderr, "  PUZZLE is a row-major digit string, side*side characters long,")
	fmt.Fprintln(os.Stderr, "  with 0 marking an empty cell.")
	flag.PrintDefaults()
}

func isTerminal(f *os.File) bool {
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
