package sudoku

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
)

var (
	solvedValueColor = color.New(color.Bold, color.FgHiWhite)
	givenValueColor  = color.New(color.Bold, color.FgHiYellow, color.BgHiBlack)
)

// Print renders the board as a boxed grid, coloring cells that were given
// (present in the original puzzle) differently from cells the solver
// filled in. given may be nil, in which case every cell prints as solved.
func (b *Board) Print(given *Board) {
	color.HiWhite(b.ruledLine("┌", "┬", "╥", "┐", "─"))
	for r := 0; r < b.SideLength; r++ {
		if r != 0 {
			if r%b.BoxSideLength == 0 {
				color.HiWhite(b.ruledLine("╞", "╪", "╬", "╡", "═"))
			} else {
				color.HiWhite(b.ruledLine("├", "┼", "╫", "┤", "─"))
			}
		}
		b.printRow(r, given)
	}
	color.HiWhite(b.ruledLine("└", "┴", "╨", "┘", "─"))
}

// ruledLine draws one horizontal rule, using majorJoint at box boundaries
// and minorJoint everywhere else between cells.
func (b *Board) ruledLine(left, minorJoint, majorJoint, right, fill string) string {
	cell := strings.Repeat(fill, 3)
	var sb strings.Builder
	sb.WriteString(left)
	for c := 0; c < b.SideLength; c++ {
		sb.WriteString(cell)
		switch {
		case c == b.SideLength-1:
			sb.WriteString(right)
		case (c+1)%b.BoxSideLength == 0:
			sb.WriteString(majorJoint)
		default:
			sb.WriteString(minorJoint)
		}
	}
	return sb.String()
}

func (b *Board) printRow(row int, given *Board) {
	for c := 0; c < b.SideLength; c++ {
		if c != 0 && c%b.BoxSideLength == 0 {
			fmt.Print(color.HiWhiteString("║"))
		} else {
			fmt.Print(color.HiWhiteString("│"))
		}
		v := b.Values[row][c]
		cellColor := solvedValueColor
		if given != nil && given.Values[row][c] != 0 {
			cellColor = givenValueColor
		}
		if v == 0 {
			fmt.Print("   ")
		} else {
			cellColor.Printf(" %d ", v)
		}
	}
	color.HiWhite("│")
}
