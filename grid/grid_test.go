package grid

import (
	"slices"
	"testing"

	"github.com/stretchr/testify/require"
)

// coordsFromRows turns a 1-indexed (row, col) pair list into the iter.Seq2
// New expects.
func coordsFromRows(pairs [][2]int) func(yield func(int, int) bool) {
	return func(yield func(int, int) bool) {
		for _, p := range pairs {
			if !yield(p[0], p[1]) {
				return
			}
		}
	}
}

func newTestGrid() *Grid {
	// 4 columns, 3 rows:
	//   row 1: cols 1,2
	//   row 2: cols 2,3
	//   row 3: cols 1,3,4
	return New(4, coordsFromRows([][2]int{
		{1, 1}, {1, 2},
		{2, 2}, {2, 3},
		{3, 1}, {3, 3}, {3, 4},
	}))
}

func collectColumns(g *Grid) []int {
	var got []int
	for c := range g.UncoveredColumns() {
		got = append(got, g.ColumnID(c))
	}
	return got
}

func TestNewLinksAllColumns(t *testing.T) {
	g := newTestGrid()
	require.Equal(t, []int{0, 1, 2, 3}, collectColumns(g))
	require.Equal(t, 2, g.ColumnSize(1))
	require.Equal(t, 2, g.ColumnSize(2))
	require.Equal(t, 2, g.ColumnSize(3))
	require.Equal(t, 1, g.ColumnSize(4))
}

func TestCoverRemovesColumnAndIntersectingRows(t *testing.T) {
	g := newTestGrid()
	g.Cover(1) // removes row 1 (cols 1,2) and row 3 (cols 1,3,4)

	require.Equal(t, []int{1, 2, 3}, collectColumns(g))
	require.Equal(t, 1, g.ColumnSize(2)) // only row 2 remains
	require.Equal(t, 1, g.ColumnSize(3)) // only row 2 remains
	require.Equal(t, 0, g.ColumnSize(4)) // row 3 removed, column empty
}

func TestUncoverRestoresExactTopology(t *testing.T) {
	g := newTestGrid()

	beforeLeft := slices.Clone(g.left)
	beforeRight := slices.Clone(g.right)
	beforeUp := slices.Clone(g.up)
	beforeDown := slices.Clone(g.down)
	beforeSize := slices.Clone(g.size)

	g.Cover(2)
	g.Cover(4)
	g.Uncover(4)
	g.Uncover(2)

	require.Equal(t, beforeLeft, g.left)
	require.Equal(t, beforeRight, g.right)
	require.Equal(t, beforeUp, g.up)
	require.Equal(t, beforeDown, g.down)
	require.Equal(t, beforeSize, g.size)
	require.Equal(t, []int{0, 1, 2, 3}, collectColumns(g))
}

func TestCoverPanicsOnDoubleCover(t *testing.T) {
	g := newTestGrid()
	g.Cover(1)
	require.Panics(t, func() { g.Cover(1) })
}

func TestUncoverPanicsWithoutCover(t *testing.T) {
	g := newTestGrid()
	require.Panics(t, func() { g.Uncover(1) })
}

func TestUncoveredRowsInColumnWalksTopToBottom(t *testing.T) {
	g := newTestGrid()
	var rowIDs []int
	for r := range g.UncoveredRowsInColumn(1) {
		rowIDs = append(rowIDs, g.RowID(r))
	}
	require.Equal(t, []int{0, 2}, rowIDs)
}

func TestUncoveredColumnsInRowIncludesStartingColumn(t *testing.T) {
	g := newTestGrid()
	var row Row
	for r := range g.UncoveredRowsInColumn(4) {
		row = r
	}
	var cols []int
	for c := range g.UncoveredColumnsInRow(row) {
		cols = append(cols, g.ColumnID(c))
	}
	require.ElementsMatch(t, []int{0, 2, 3}, cols)
}

func TestIsEmpty(t *testing.T) {
	g := New(1, coordsFromRows([][2]int{{1, 1}}))
	require.False(t, g.IsEmpty())
	g.Cover(1)
	require.True(t, g.IsEmpty())
	g.Uncover(1)
	require.False(t, g.IsEmpty())
}

// Invariant 3 of the universal testable properties: every live node's
// four links round-trip back to itself.
func TestLiveNodeLinksRoundTrip(t *testing.T) {
	g := newTestGrid()
	g.Cover(1)

	for c := range g.UncoveredColumns() {
		n := int32(c)
		require.Equal(t, n, g.left[g.right[n]])
		require.Equal(t, n, g.right[g.left[n]])
		require.Equal(t, n, g.up[g.down[n]])
		require.Equal(t, n, g.down[g.up[n]])

		for r := range g.UncoveredRowsInColumn(c) {
			m := int32(r)
			require.Equal(t, m, g.up[g.down[m]])
			require.Equal(t, m, g.down[g.up[m]])
			require.Equal(t, m, g.left[g.right[m]])
			require.Equal(t, m, g.right[g.left[m]])
		}
	}
}
