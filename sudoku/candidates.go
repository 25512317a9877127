package sudoku

import (
	"fmt"

	"github.com/fatih/color"

	"github.com/halfvector/dlx/sudoku/internal/candidateset"
)

// Candidates returns, for every cell on the board, the set of values that
// could still legally go there given the values already placed elsewhere
// in the same row, column, and box. It is a display aid for the case where
// the solver finds no solution and the CLI falls back to showing how far
// constraint propagation alone gets — it plays no part in solving, which is
// done entirely by the exact-cover search.
func (b *Board) Candidates() [][]*candidateset.Set[int] {
	rows := make([][]*candidateset.Set[int], b.SideLength)
	for r := range rows {
		rows[r] = make([]*candidateset.Set[int], b.SideLength)
		for c := range rows[r] {
			all := make([]int, b.SideLength)
			for v := range all {
				all[v] = v + 1
			}
			rows[r][c] = candidateset.New(all...)
		}
	}

	for r := 0; r < b.SideLength; r++ {
		for c := 0; c < b.SideLength; c++ {
			v := b.Values[r][c]
			if v == 0 {
				continue
			}
			rows[r][c] = candidateset.New(v)
			b.eliminate(rows, r, c, v)
		}
	}
	return rows
}

func (b *Board) eliminate(rows [][]*candidateset.Set[int], row, col, value int) {
	for c := 0; c < b.SideLength; c++ {
		if c != col {
			rows[row][c].Remove(value)
		}
	}
	for r := 0; r < b.SideLength; r++ {
		if r != row {
			rows[r][col].Remove(value)
		}
	}
	box := boxOf(row, col, b.BoxSideLength)
	for r := 0; r < b.SideLength; r++ {
		for c := 0; c < b.SideLength; c++ {
			if r == row && c == col {
				continue
			}
			if boxOf(r, c, b.BoxSideLength) == box {
				rows[r][c].Remove(value)
			}
		}
	}
}

// PrintCandidates prints, for every unsolved cell, the candidate values
// that remain, in no particular order.
func (b *Board) PrintCandidates() {
	color.HiWhite("Remaining candidates:")
	candidates := b.Candidates()
	for r := 0; r < b.SideLength; r++ {
		for c := 0; c < b.SideLength; c++ {
			if b.Values[r][c] != 0 {
				continue
			}
			fmt.Printf("(%d,%d): %v\n", r, c, candidates[r][c].Values())
		}
	}
}
