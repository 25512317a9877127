package dlx

import "iter"

// Backend abstracts the grid itself, so the solver can drive either the
// sparse linked matrix in package grid or the dense one in package bitgrid
// without caring which. Column and Row are plain ints rather than an
// associated type, so both implementations can satisfy this one interface
// directly.
type Backend interface {
	// Cover hides column col and every row that intersects it. Panics if
	// col is already covered.
	Cover(col int)

	// Uncover exactly undoes the most recent matching Cover(col). Panics if
	// col is not currently covered.
	Uncover(col int)

	// UncoveredColumns lazily walks every uncovered column header.
	UncoveredColumns() iter.Seq[int]

	// UncoveredRowsInColumn lazily walks every uncovered row with a live
	// entry in col, top to bottom.
	UncoveredRowsInColumn(col int) iter.Seq[int]

	// UncoveredColumnsInRow lazily walks every uncovered column touched by
	// row's row, including the column whose walk yielded row.
	UncoveredColumnsInRow(row int) iter.Seq[int]

	// ColumnSize returns the number of live nodes currently in col.
	ColumnSize(col int) int

	// ColumnID returns the 0-based constraint index col represents.
	ColumnID(col int) int

	// RowID returns the 0-based possibility index row represents.
	RowID(row int) int

	// IsEmpty reports whether no column, mandatory or optional, remains.
	IsEmpty() bool

	// NumColumns returns the total number of columns the backend was built
	// with.
	NumColumns() int
}

// BackendFactory builds a Backend from a column count and the coordinates
// of every "1" entry (1-indexed (row, column) pairs). grid.New and
// bitgrid.New take these arguments but return their concrete *Grid types,
// so each is passed wrapped in a closure that returns it as a Backend.
type BackendFactory func(numColumns int, coords iter.Seq2[int, int]) Backend
