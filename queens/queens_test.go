package queens

import (
	"sort"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/halfvector/dlx"
)

func p(row, col int) Possibility { return Possibility{Row: row, Column: col} }

func sortPossibilities(ps []Possibility) []Possibility {
	out := append([]Possibility(nil), ps...)
	sort.Slice(out, func(i, j int) bool {
		if out[i].Row != out[j].Row {
			return out[i].Row < out[j].Row
		}
		return out[i].Column < out[j].Column
	})
	return out
}

func TestSizeOneBoardHasOneSolution(t *testing.T) {
	solver := dlx.New[Possibility, Constraint](New(1))
	solutions := solver.AllSolutions()
	require.Len(t, solutions, 1)
	require.Equal(t, []Possibility{p(0, 0)}, solutions[0])
}

func TestSizeTwoAndThreeBoardsHaveNoSolutions(t *testing.T) {
	require.Empty(t, dlx.New[Possibility, Constraint](New(2)).AllSolutions())
	require.Empty(t, dlx.New[Possibility, Constraint](New(3)).AllSolutions())
}

func TestFourQueensHasTwoSolutions(t *testing.T) {
	solver := dlx.New[Possibility, Constraint](New(4))
	solutions := solver.AllSolutions()
	require.Len(t, solutions, 2)

	require.Equal(t, []Possibility{p(0, 1), p(1, 3), p(2, 0), p(3, 2)}, sortPossibilities(solutions[0]))
	require.Equal(t, []Possibility{p(0, 2), p(1, 0), p(2, 3), p(3, 1)}, sortPossibilities(solutions[1]))
}

func TestEightQueensHas92Solutions(t *testing.T) {
	solver := dlx.New[Possibility, Constraint](New(8))
	require.Len(t, solver.AllSolutions(), 92)
}

func TestDiagonalConstraintsAreOptional(t *testing.T) {
	q := New(4)
	for _, c := range q.Constraints() {
		if c.Kind == LeadingDiagonal || c.Kind == TrailingDiagonal {
			require.True(t, q.IsOptional(c))
		} else {
			require.False(t, q.IsOptional(c))
		}
	}
}

func TestDiagonalIndices(t *testing.T) {
	sideLength := 8

	var leading []int
	for row := sideLength - 1; row >= 0; row-- {
		leading = append(leading, p(row, 0).leadingDiagonal(sideLength))
	}
	for col := 1; col < sideLength; col++ {
		leading = append(leading, p(0, col).leadingDiagonal(sideLength))
	}
	want := make([]int, 2*sideLength-1)
	for i := range want {
		want[i] = i
	}
	require.Equal(t, want, leading)

	var trailing []int
	for col := 0; col < sideLength; col++ {
		trailing = append(trailing, p(0, col).trailingDiagonal())
	}
	for row := 1; row < sideLength; row++ {
		trailing = append(trailing, p(row, sideLength-1).trailingDiagonal())
	}
	require.Equal(t, want, trailing)
}
