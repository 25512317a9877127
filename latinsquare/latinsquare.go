// Package latinsquare encodes the Latin square puzzle — fill an n×n grid
// with the symbols 1..n so that no symbol repeats in any row or column — as
// an exact-cover problem.
package latinsquare

import "fmt"

// Possibility is a candidate placement: symbol Value at (Row, Column).
// Row, Column are 0-indexed; Value ranges over 1..sideLength.
type Possibility struct {
	Row, Column, Value int
}

// ConstraintKind discriminates the three families of Latin-square
// constraint.
type ConstraintKind int

const (
	// RowNumber: row Row contains value Value exactly once.
	RowNumber ConstraintKind = iota
	// ColumnNumber: column Column contains value Value exactly once.
	ColumnNumber
	// RowColumn: cell (Row, Column) holds exactly one value.
	RowColumn
)

// Constraint is one column of the exact-cover matrix. Only the fields
// relevant to Kind are meaningful.
type Constraint struct {
	Kind        ConstraintKind
	Row, Column int
	Value       int
}

func rowNumber(row, value int) Constraint    { return Constraint{Kind: RowNumber, Row: row, Value: value} }
func columnNumber(col, value int) Constraint {
	return Constraint{Kind: ColumnNumber, Column: col, Value: value}
}
func rowColumn(row, col int) Constraint { return Constraint{Kind: RowColumn, Row: row, Column: col} }

func satisfiedConstraints(p Possibility) []Constraint {
	return []Constraint{
		rowNumber(p.Row, p.Value),
		columnNumber(p.Column, p.Value),
		rowColumn(p.Row, p.Column),
	}
}

func allPossibilities(sideLength int) []Possibility {
	var out []Possibility
	for col := 0; col < sideLength; col++ {
		for row := 0; row < sideLength; row++ {
			for value := 1; value <= sideLength; value++ {
				out = append(out, Possibility{Row: row, Column: col, Value: value})
			}
		}
	}
	return out
}

func allConstraints(sideLength int) []Constraint {
	var out []Constraint
	for row := 0; row < sideLength; row++ {
		for value := 1; value <= sideLength; value++ {
			out = append(out, rowNumber(row, value))
		}
	}
	for col := 0; col < sideLength; col++ {
		for value := 1; value <= sideLength; value++ {
			out = append(out, columnNumber(col, value))
		}
	}
	for row := 0; row < sideLength; row++ {
		for col := 0; col < sideLength; col++ {
			out = append(out, rowColumn(row, col))
		}
	}
	return out
}

// LatinSquare is an exact-cover encoding of one Latin square instance, with
// any filled values already pruned out of its possibility and constraint
// lists.
type LatinSquare struct {
	sideLength    int
	possibilities []Possibility
	constraints   []Constraint
}

// New builds a LatinSquare of the given side length with the given values
// already placed. Possibilities and constraints already satisfied by a
// filled value are pruned out at construction, not left for the solver to
// discover — this is what makes the impossible-square case (two filled
// cells in the same row sharing a value) surface as zero solutions rather
// than a contradiction the solver has to search its way into.
//
// New panics if any filled value is outside [1, sideLength].
func New(sideLength int, filled ...Possibility) *LatinSquare {
	for _, p := range filled {
		if p.Value < 1 || p.Value > sideLength {
			panic(fmt.Sprintf("latinsquare: value %d out of range [1,%d]", p.Value, sideLength))
		}
	}

	satisfied := make(map[Constraint]struct{}, len(filled)*3)
	filledCoords := make(map[[2]int]struct{}, len(filled))
	for _, p := range filled {
		for _, c := range satisfiedConstraints(p) {
			satisfied[c] = struct{}{}
		}
		filledCoords[[2]int{p.Row, p.Column}] = struct{}{}
	}

	var possibilities []Possibility
	for _, p := range allPossibilities(sideLength) {
		if _, filled := filledCoords[[2]int{p.Row, p.Column}]; !filled {
			possibilities = append(possibilities, p)
		}
	}

	var constraints []Constraint
	for _, c := range allConstraints(sideLength) {
		if _, done := satisfied[c]; !done {
			constraints = append(constraints, c)
		}
	}

	return &LatinSquare{sideLength: sideLength, possibilities: possibilities, constraints: constraints}
}

// SideLength returns the square's side length.
func (l *LatinSquare) SideLength() int { return l.sideLength }

// Possibilities implements dlx.Problem.
func (l *LatinSquare) Possibilities() []Possibility { return l.possibilities }

// Constraints implements dlx.Problem.
func (l *LatinSquare) Constraints() []Constraint { return l.constraints }

// Satisfies implements dlx.Problem.
func (l *LatinSquare) Satisfies(p Possibility, c Constraint) bool {
	switch c.Kind {
	case RowNumber:
		return p.Row == c.Row && p.Value == c.Value
	case ColumnNumber:
		return p.Column == c.Column && p.Value == c.Value
	case RowColumn:
		return p.Row == c.Row && p.Column == c.Column
	default:
		panic(fmt.Sprintf("latinsquare: unknown constraint kind %d", c.Kind))
	}
}

// IsOptional implements dlx.Problem. Every Latin-square constraint is
// mandatory.
func (l *LatinSquare) IsOptional(Constraint) bool { return false }
