// Package sudoku encodes Sudoku puzzles as an exact-cover problem, built on
// top of package latinsquare the same way a Sudoku grid is a Latin square
// with one extra family of constraints: each box must also contain every
// symbol exactly once.
package sudoku

import (
	"fmt"

	"github.com/halfvector/dlx/latinsquare"
)

// Possibility is a candidate placement, carrying both the underlying Latin
// square possibility and the box it falls in.
type Possibility struct {
	Latin latinsquare.Possibility
	Box   int
}

// ConstraintKind discriminates a plain Latin-square constraint from the
// box constraint Sudoku adds.
type ConstraintKind int

const (
	// Latin wraps a latinsquare.Constraint unchanged.
	Latin ConstraintKind = iota
	// BoxNumber: box Box contains value Value exactly once.
	BoxNumber
)

// Constraint is one column of the Sudoku exact-cover matrix.
type Constraint struct {
	Kind  ConstraintKind
	Latin latinsquare.Constraint
	Box   int
	Value int
}

func boxOf(row, col, boxSideLength int) int {
	sideLength := boxSideLength * boxSideLength
	index := row*sideLength + col
	return (index%sideLength)/boxSideLength + boxSideLength*(index/(sideLength*boxSideLength))
}

func fromLatin(p latinsquare.Possibility, boxSideLength int) Possibility {
	return Possibility{Latin: p, Box: boxOf(p.Row, p.Column, boxSideLength)}
}

func boxNumber(box, value int) Constraint {
	return Constraint{Kind: BoxNumber, Box: box, Value: value}
}

func fromLatinConstraint(c latinsquare.Constraint) Constraint {
	return Constraint{Kind: Latin, Latin: c}
}

func satisfiedConstraints(p Possibility) []Constraint {
	return []Constraint{
		fromLatinConstraint(latinsquare.Constraint{Kind: latinsquare.RowNumber, Row: p.Latin.Row, Value: p.Latin.Value}),
		fromLatinConstraint(latinsquare.Constraint{Kind: latinsquare.ColumnNumber, Column: p.Latin.Column, Value: p.Latin.Value}),
		fromLatinConstraint(latinsquare.Constraint{Kind: latinsquare.RowColumn, Row: p.Latin.Row, Column: p.Latin.Column}),
		boxNumber(p.Box, p.Latin.Value),
	}
}

func allBoxNumberConstraints(boxSideLength int) []Constraint {
	sideLength := boxSideLength * boxSideLength
	var out []Constraint
	for box := 0; box < sideLength; box++ {
		for value := 1; value <= sideLength; value++ {
			out = append(out, boxNumber(box, value))
		}
	}
	return out
}

// Sudoku is an exact-cover encoding of one Sudoku instance.
type Sudoku struct {
	boxSideLength int
	possibilities []Possibility
	constraints   []Constraint
}

// New builds a Sudoku puzzle with box side boxSideLength (so side length
// boxSideLength^2) and the given values already placed. As with
// latinsquare.New, possibilities and constraints already satisfied by a
// filled value are pruned at construction time.
//
// New panics if boxSideLength is less than 1 or any filled value is out of
// range.
func New(boxSideLength int, filled ...latinsquare.Possibility) *Sudoku {
	if boxSideLength < 1 {
		panic(fmt.Sprintf("sudoku: box side length must be positive, got %d", boxSideLength))
	}
	sideLength := boxSideLength * boxSideLength

	latin := latinsquare.New(sideLength, filled...)

	satisfied := make(map[Constraint]struct{}, len(filled)*4)
	for _, f := range filled {
		for _, c := range satisfiedConstraints(fromLatin(f, boxSideLength)) {
			satisfied[c] = struct{}{}
		}
	}

	possibilities := make([]Possibility, 0, len(latin.Possibilities()))
	for _, lp := range latin.Possibilities() {
		possibilities = append(possibilities, fromLatin(lp, boxSideLength))
	}

	constraints := make([]Constraint, 0, len(latin.Constraints())+sideLength*sideLength)
	for _, lc := range latin.Constraints() {
		constraints = append(constraints, fromLatinConstraint(lc))
	}
	for _, bc := range allBoxNumberConstraints(boxSideLength) {
		if _, done := satisfied[bc]; !done {
			constraints = append(constraints, bc)
		}
	}

	return &Sudoku{boxSideLength: boxSideLength, possibilities: possibilities, constraints: constraints}
}

// BoxSideLength returns the configured box side length.
func (s *Sudoku) BoxSideLength() int { return s.boxSideLength }

// SideLength returns the full grid side length (BoxSideLength squared).
func (s *Sudoku) SideLength() int { return s.boxSideLength * s.boxSideLength }

// Possibilities implements dlx.Problem.
func (s *Sudoku) Possibilities() []Possibility { return s.possibilities }

// Constraints implements dlx.Problem.
func (s *Sudoku) Constraints() []Constraint { return s.constraints }

// Satisfies implements dlx.Problem.
func (s *Sudoku) Satisfies(p Possibility, c Constraint) bool {
	switch c.Kind {
	case Latin:
		return latinSatisfies(p.Latin, c.Latin)
	case BoxNumber:
		return p.Box == c.Box && p.Latin.Value == c.Value
	default:
		panic(fmt.Sprintf("sudoku: unknown constraint kind %d", c.Kind))
	}
}

func latinSatisfies(p latinsquare.Possibility, c latinsquare.Constraint) bool {
	switch c.Kind {
	case latinsquare.RowNumber:
		return p.Row == c.Row && p.Value == c.Value
	case latinsquare.ColumnNumber:
		return p.Column == c.Column && p.Value == c.Value
	case latinsquare.RowColumn:
		return p.Row == c.Row && p.Column == c.Column
	default:
		panic(fmt.Sprintf("sudoku: unknown latin constraint kind %d", c.Kind))
	}
}

// IsOptional implements dlx.Problem. Every Sudoku constraint is mandatory.
func (s *Sudoku) IsOptional(Constraint) bool { return false }
