package sudoku

import (
	"fmt"
	"strings"

	"github.com/halfvector/dlx/latinsquare"
)

// Board is a row-major grid of given/solved values, 0 meaning empty. It is
// the CLI-facing convenience wrapper around the Sudoku exact-cover
// encoding: parse a puzzle string into a Board, hand its Filled values to
// New, then render a solution back onto a Board with Fill.
type Board struct {
	BoxSideLength int
	SideLength    int
	Values        [][]int
}

// NewBoard returns an empty board for the given box side length.
func NewBoard(boxSideLength int) *Board {
	sideLength := boxSideLength * boxSideLength
	values := make([][]int, sideLength)
	for r := range values {
		values[r] = make([]int, sideLength)
	}
	return &Board{BoxSideLength: boxSideLength, SideLength: sideLength, Values: values}
}

// ParseBoard reads a row-major digit string — sideLength*sideLength
// characters, each '0'..'9' with '0' meaning an empty cell — into a Board.
// Any other character, or a digit above the side length, is an error.
//
// ParseBoard returns an error rather than panicking: malformed puzzle input
// is user input, not a programmer error, and the CLI needs to report it on
// stderr and exit non-zero rather than crash.
func ParseBoard(s string, boxSideLength int) (*Board, error) {
	b := NewBoard(boxSideLength)
	want := b.SideLength * b.SideLength
	if len(s) != want {
		return nil, fmt.Errorf("sudoku: expected %d characters, got %d", want, len(s))
	}

	for i, ch := range []byte(s) {
		row, col := i/b.SideLength, i%b.SideLength
		if ch == '0' {
			continue
		}
		if ch < '1' || ch > '9' {
			return nil, fmt.Errorf("sudoku: invalid character %q at position %d", ch, i)
		}
		val := int(ch - '0')
		if val > b.SideLength {
			return nil, fmt.Errorf("sudoku: digit %d at position %d exceeds side length %d", val, i, b.SideLength)
		}
		b.Values[row][col] = val
	}
	return b, nil
}

// Filled returns every non-zero cell as a latinsquare.Possibility, in
// row-major order, suitable for passing to New.
func (b *Board) Filled() []latinsquare.Possibility {
	var filled []latinsquare.Possibility
	for r, row := range b.Values {
		for c, v := range row {
			if v != 0 {
				filled = append(filled, latinsquare.Possibility{Row: r, Column: c, Value: v})
			}
		}
	}
	return filled
}

// Problem builds the Sudoku exact-cover problem for this board's filled
// values.
func (b *Board) Problem() *Sudoku {
	return New(b.BoxSideLength, b.Filled()...)
}

// Fill returns a copy of the board with every possibility in solution
// applied on top of its existing values.
func (b *Board) Fill(solution []Possibility) *Board {
	out := NewBoard(b.BoxSideLength)
	for r, row := range b.Values {
		copy(out.Values[r], row)
	}
	for _, p := range solution {
		out.Values[p.Latin.Row][p.Latin.Column] = p.Latin.Value
	}
	return out
}

// String renders the board as the same row-major digit string ParseBoard
// accepts, with 0 for empty cells.
func (b *Board) String() string {
	var sb strings.Builder
	sb.Grow(b.SideLength * b.SideLength)
	for _, row := range b.Values {
		for _, v := range row {
			fmt.Fprintf(&sb, "%d", v)
		}
	}
	return sb.String()
}
