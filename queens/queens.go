// Package queens encodes the n-queens puzzle — place n queens on an n×n
// board so that no two share a row, column, or diagonal — as an exact-cover
// problem. The two diagonal families are optional constraints (Knuth's
// secondary items): each diagonal holds at most one queen rather than
// exactly one, since a diagonal near the board's corner may simply go
// unused.
package queens

import "fmt"

// Possibility is a candidate placement: a queen at (Row, Column), both
// 0-indexed.
type Possibility struct {
	Row, Column int
}

func (p Possibility) leadingDiagonal(sideLength int) int {
	return p.Column - p.Row + sideLength - 1
}

func (p Possibility) trailingDiagonal() int {
	return p.Row + p.Column
}

// ConstraintKind discriminates the four families of n-queens constraint.
type ConstraintKind int

const (
	// Row: row Index holds exactly one queen.
	Row ConstraintKind = iota
	// Column: column Index holds exactly one queen.
	Column
	// LeadingDiagonal: the diagonal running top-left to bottom-right holds
	// at most one queen. Optional.
	LeadingDiagonal
	// TrailingDiagonal: the diagonal running top-right to bottom-left holds
	// at most one queen. Optional.
	TrailingDiagonal
)

// Constraint is one column of the n-queens exact-cover matrix.
type Constraint struct {
	Kind  ConstraintKind
	Index int
}

func satisfiedConstraints(p Possibility, sideLength int) []Constraint {
	return []Constraint{
		{Kind: Row, Index: p.Row},
		{Kind: Column, Index: p.Column},
		{Kind: LeadingDiagonal, Index: p.leadingDiagonal(sideLength)},
		{Kind: TrailingDiagonal, Index: p.trailingDiagonal()},
	}
}

func allPossibilities(sideLength int) []Possibility {
	var out []Possibility
	for col := 0; col < sideLength; col++ {
		for row := 0; row < sideLength; row++ {
			out = append(out, Possibility{Row: row, Column: col})
		}
	}
	return out
}

func allConstraints(sideLength int) []Constraint {
	var out []Constraint
	for i := 0; i < sideLength; i++ {
		out = append(out, Constraint{Kind: Row, Index: i})
	}
	for i := 0; i < sideLength; i++ {
		out = append(out, Constraint{Kind: Column, Index: i})
	}
	for i := 0; i < 2*sideLength-1; i++ {
		out = append(out, Constraint{Kind: LeadingDiagonal, Index: i})
	}
	for i := 0; i < 2*sideLength-1; i++ {
		out = append(out, Constraint{Kind: TrailingDiagonal, Index: i})
	}
	return out
}

// NQueens is an exact-cover encoding of one n-queens instance.
type NQueens struct {
	sideLength    int
	possibilities []Possibility
	constraints   []Constraint
}

// New builds an n-queens instance of the given side length with the given
// queens already placed.
//
// New panics if sideLength is negative.
func New(sideLength int, filled ...Possibility) *NQueens {
	if sideLength < 0 {
		panic(fmt.Sprintf("queens: side length must be non-negative, got %d", sideLength))
	}

	satisfied := make(map[Constraint]struct{}, len(filled)*4)
	filledCoords := make(map[[2]int]struct{}, len(filled))
	for _, p := range filled {
		for _, c := range satisfiedConstraints(p, sideLength) {
			satisfied[c] = struct{}{}
		}
		filledCoords[[2]int{p.Row, p.Column}] = struct{}{}
	}

	var possibilities []Possibility
	for _, p := range allPossibilities(sideLength) {
		if _, done := filledCoords[[2]int{p.Row, p.Column}]; !done {
			possibilities = append(possibilities, p)
		}
	}

	var constraints []Constraint
	for _, c := range allConstraints(sideLength) {
		if _, done := satisfied[c]; !done {
			constraints = append(constraints, c)
		}
	}

	return &NQueens{sideLength: sideLength, possibilities: possibilities, constraints: constraints}
}

// SideLength returns the board's side length.
func (q *NQueens) SideLength() int { return q.sideLength }

// Possibilities implements dlx.Problem.
func (q *NQueens) Possibilities() []Possibility { return q.possibilities }

// Constraints implements dlx.Problem.
func (q *NQueens) Constraints() []Constraint { return q.constraints }

// Satisfies implements dlx.Problem.
func (q *NQueens) Satisfies(p Possibility, c Constraint) bool {
	switch c.Kind {
	case Row:
		return p.Row == c.Index
	case Column:
		return p.Column == c.Index
	case LeadingDiagonal:
		return p.leadingDiagonal(q.sideLength) == c.Index
	case TrailingDiagonal:
		return p.trailingDiagonal() == c.Index
	default:
		panic(fmt.Sprintf("queens: unknown constraint kind %d", c.Kind))
	}
}

// IsOptional implements dlx.Problem. Both diagonal families are optional;
// row and column are mandatory.
func (q *NQueens) IsOptional(c Constraint) bool {
	return c.Kind == LeadingDiagonal || c.Kind == TrailingDiagonal
}
