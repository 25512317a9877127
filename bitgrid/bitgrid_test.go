package bitgrid

import (
	"testing"

	"github.com/stretchr/testify/require"
)

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

func TestNewCountsColumnSizes(t *testing.T) {
	g := newTestGrid()
	require.Equal(t, []int{0, 1, 2, 3}, collectColumns(g))
	require.Equal(t, 2, g.ColumnSize(0))
	require.Equal(t, 2, g.ColumnSize(1))
	require.Equal(t, 2, g.ColumnSize(2))
	require.Equal(t, 1, g.ColumnSize(3))
}

func TestCoverRemovesIntersectingRows(t *testing.T) {
	g := newTestGrid()
	g.Cover(0) // removes row 0 (cols 0,1) and row 2 (cols 0,2,3)

	require.Equal(t, []int{1, 2, 3}, collectColumns(g))
	require.Equal(t, 1, g.ColumnSize(1))
	require.Equal(t, 1, g.ColumnSize(2))
	require.Equal(t, 0, g.ColumnSize(3))
}

func TestUncoverRestoresState(t *testing.T) {
	g := newTestGrid()
	g.Cover(1)
	g.Cover(3)
	g.Uncover(3)
	g.Uncover(1)

	require.Equal(t, []int{0, 1, 2, 3}, collectColumns(g))
	require.Equal(t, 2, g.ColumnSize(0))
	require.Equal(t, 2, g.ColumnSize(1))
	require.Equal(t, 2, g.ColumnSize(2))
	require.Equal(t, 1, g.ColumnSize(3))
}

func TestCoverPanicsOnDoubleCover(t *testing.T) {
	g := newTestGrid()
	g.Cover(0)
	require.Panics(t, func() { g.Cover(0) })
}

func TestUncoverPanicsOnMismatch(t *testing.T) {
	g := newTestGrid()
	g.Cover(0)
	require.Panics(t, func() { g.Uncover(1) })
}

func TestIsEmpty(t *testing.T) {
	g := New(1, coordsFromRows([][2]int{{1, 1}}))
	require.False(t, g.IsEmpty())
	g.Cover(0)
	require.True(t, g.IsEmpty())
	g.Uncover(0)
	require.False(t, g.IsEmpty())
}
