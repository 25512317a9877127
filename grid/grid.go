package grid

import (
	"fmt"
	"iter"
	"log/slog"
	"sort"
)

// Column identifies a column header: a constraint that must (mandatory) or
// may (optional) be covered by the search. The zero value is never a valid
// column handle.
type Column = int

// Row identifies one live node of a row. Any node in the row will do; the
// handle is only ever used to walk that node's horizontal neighbors.
type Row = int

// Grid is the sparse toroidal matrix backing the dancing-links search. The
// zero value is not usable; construct one with New.
type Grid struct {
	left, right, up, down []int32

	size    []int32 // len numColumns+1; size[0] unused
	covered []bool  // len numColumns+1; covered[0] unused

	rowID []int32 // len(nodes); -1 for root and headers
	colOf []int32 // len(nodes); -1 for root and headers, else owning header index

	numColumns int
}

// New builds a grid with the given number of columns and the coordinates of
// every "1" entry. Coordinates are 1-indexed, (row, column) pairs, matching
// conventional matrix notation; 0 is reserved for the root sentinel.
//
// New panics if any coordinate names a column outside [1, numColumns].
func New(numColumns int, coords iter.Seq2[int, int]) *Grid {
	var entries []gridEntry
	for row, col := range coords {
		if col < 1 || col > numColumns {
			panic(fmt.Sprintf("grid: coordinate (%d,%d) has column outside [1,%d]", row, col, numColumns))
		}
		entries = append(entries, gridEntry{row: int32(row), col: int32(col)})
	}

	// Bucket by column, sorting each bucket by row, and assign node indices
	// in that order: 1..numColumns are already reserved for headers, so data
	// nodes start at numColumns+1.
	sort.SliceStable(entries, func(i, j int) bool {
		if entries[i].col != entries[j].col {
			return entries[i].col < entries[j].col
		}
		return entries[i].row < entries[j].row
	})
	for i := range entries {
		entries[i].idx = int32(numColumns + 1 + i)
	}

	n := numColumns + len(entries)
	g := &Grid{
		left:       make([]int32, n+1),
		right:      make([]int32, n+1),
		up:         make([]int32, n+1),
		down:       make([]int32, n+1),
		size:       make([]int32, numColumns+1),
		covered:    make([]bool, numColumns+1),
		rowID:      make([]int32, n+1),
		colOf:      make([]int32, n+1),
		numColumns: numColumns,
	}
	for i := range g.rowID {
		g.rowID[i] = -1
		g.colOf[i] = -1
	}

	// Link the root and column headers into a single horizontal circle, in
	// index order.
	for c := 0; c <= numColumns; c++ {
		g.left[c] = int32((c - 1 + numColumns + 1) % (numColumns + 1))
		g.right[c] = int32((c + 1) % (numColumns + 1))
	}

	// Link each column's nodes top-to-bottom, circular through the header.
	col := int32(0)
	var colStart int
	for i := 0; i <= len(entries); i++ {
		if i == len(entries) || entries[i].col != col {
			if col != 0 {
				linkColumn(g, col, entries[colStart:i])
			}
			if i == len(entries) {
				break
			}
			col = entries[i].col
			colStart = i
		}
	}

	// Link nodes horizontally by row, in ascending column order within a row.
	byRow := append([]gridEntry(nil), entries...)
	sort.SliceStable(byRow, func(i, j int) bool {
		if byRow[i].row != byRow[j].row {
			return byRow[i].row < byRow[j].row
		}
		return byRow[i].col < byRow[j].col
	})
	start := 0
	for i := 0; i <= len(byRow); i++ {
		if i == len(byRow) || byRow[i].row != byRow[start].row {
			linkRow(g, byRow[start:i])
			start = i
		}
	}

	for _, e := range entries {
		g.rowID[e.idx] = e.row - 1
		g.colOf[e.idx] = e.col
	}

	return g
}

type gridEntry = struct {
	row, col int32
	idx      int32
}

func linkColumn(g *Grid, col int32, nodes []gridEntry) {
	g.size[col] = int32(len(nodes))
	prev := col
	for _, e := range nodes {
		g.up[e.idx] = prev
		g.down[prev] = e.idx
		prev = e.idx
	}
	g.down[prev] = col
	g.up[col] = prev
}

func linkRow(g *Grid, nodes []gridEntry) {
	if len(nodes) == 0 {
		return
	}
	for i, e := range nodes {
		next := nodes[(i+1)%len(nodes)]
		g.right[e.idx] = next.idx
		g.left[next.idx] = e.idx
	}
}

// Cover removes col from the header list, together with every row that
// intersects it, leaving enough information behind to restore the exact
// pre-cover topology with a matching call to Uncover.
//
// Cover panics if col is already covered.
func (g *Grid) Cover(col Column) {
	c := int32(col)
	if g.covered[col] {
		panic(fmt.Sprintf("grid: cover of already-covered column %d", col-1))
	}
	slog.Debug("grid: cover", "column", col-1)

	l, r := g.left[c], g.right[c]
	g.right[l] = r
	g.left[r] = l

	for i := g.down[c]; i != c; i = g.down[i] {
		for j := g.right[i]; j != i; j = g.right[j] {
			u, d := g.up[j], g.down[j]
			g.down[u] = d
			g.up[d] = u
			g.size[g.colOf[j]]--
		}
	}

	g.covered[col] = true
}

// Uncover restores col and every row that intersects it, exactly undoing the
// most recent matching Cover.
//
// Uncover panics if col is not currently covered.
func (g *Grid) Uncover(col Column) {
	c := int32(col)
	if !g.covered[col] {
		panic(fmt.Sprintf("grid: uncover of column %d that was not covered", col-1))
	}
	slog.Debug("grid: uncover", "column", col-1)

	for i := g.up[c]; i != c; i = g.up[i] {
		for j := g.left[i]; j != i; j = g.left[j] {
			g.size[g.colOf[j]]++
			u, d := g.up[j], g.down[j]
			g.down[u] = j
			g.up[d] = j
		}
	}

	l, r := g.left[c], g.right[c]
	g.right[l] = c
	g.left[r] = c

	g.covered[col] = false
}

// UncoveredColumns lazily walks the live column headers in header-list
// order, starting from the root sentinel. The sequence is stable as long as
// no Cover/Uncover happens between yields.
func (g *Grid) UncoveredColumns() iter.Seq[Column] {
	return func(yield func(Column) bool) {
		for c := g.right[0]; c != 0; c = g.right[c] {
			if !yield(int(c)) {
				return
			}
		}
	}
}

// UncoveredRowsInColumn lazily walks the live nodes of col, top to bottom.
func (g *Grid) UncoveredRowsInColumn(col Column) iter.Seq[Row] {
	return func(yield func(Row) bool) {
		c := int32(col)
		for i := g.down[c]; i != c; i = g.down[i] {
			if !yield(int(i)) {
				return
			}
		}
	}
}

// UncoveredColumnsInRow lazily walks every column touched by row's row,
// including the column row itself belongs to.
func (g *Grid) UncoveredColumnsInRow(row Row) iter.Seq[Column] {
	return func(yield func(Column) bool) {
		n := int32(row)
		if !yield(int(g.colOf[n])) {
			return
		}
		for j := g.right[n]; j != n; j = g.right[j] {
			if !yield(int(g.colOf[j])) {
				return
			}
		}
	}
}

// ColumnSize returns the number of live nodes currently in col, excluding
// the header itself.
func (g *Grid) ColumnSize(col Column) int {
	return int(g.size[col])
}

// ColumnID returns the 0-based constraint index that col represents.
func (g *Grid) ColumnID(col Column) int {
	return col - 1
}

// RowID returns the 0-based possibility index that row belongs to.
func (g *Grid) RowID(row Row) int {
	return int(g.rowID[row])
}

// IsEmpty reports whether no column, mandatory or optional, remains in the
// header list.
func (g *Grid) IsEmpty() bool {
	return g.right[0] == 0
}

// NumColumns returns the total number of columns the grid was built with.
func (g *Grid) NumColumns() int {
	return g.numColumns
}
