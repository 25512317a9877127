// Package polyomino encodes polyomino tiling puzzles — cover a rectangular
// grid exactly with a fixed catalog of polyomino shapes, optionally allowed
// to rotate and reflect — as an exact-cover problem. This domain has no
// analogue in the Sudoku/Latin-square/n-queens trio; it is restored here
// from the library's original design because nothing excludes it.
package polyomino

import (
	"fmt"
	"sort"
)

// PShape is a polyomino's shape: a row-major 0/1 mask, Width wide, with its
// height implied by len(Mask)/Width. NewPShape trims empty border rows/columns,
// so the stored mask is always tight to the shape's bounding box.
type PShape struct {
	Width int
	Mask  []byte
}

// NewPShape builds a PShape from a width and a row-major 0/1 mask, trimming
// empty rows and columns from every edge.
//
// NewPShape panics if width is zero, mask is empty, mask's length isn't a
// multiple of width, or mask is entirely zero.
func NewPShape(width int, mask []byte) PShape {
	if width == 0 {
		panic("polyomino: width of shape must be non-zero")
	}
	if len(mask) == 0 {
		panic("polyomino: mask cannot be empty")
	}
	if len(mask)%width != 0 {
		panic("polyomino: mask has incorrect length for the given width")
	}

	height := len(mask) / width
	rowAllZero := func(r int) bool {
		for c := 0; c < width; c++ {
			if mask[r*width+c] != 0 {
				return false
			}
		}
		return true
	}
	colAllZero := func(c int) bool {
		for r := 0; r < height; r++ {
			if mask[r*width+c] != 0 {
				return false
			}
		}
		return true
	}

	r1 := 0
	for r1 < height && rowAllZero(r1) {
		r1++
	}
	if r1 == height {
		panic("polyomino: mask has no filled cells")
	}
	r2 := height - 1
	for r2 > r1 && rowAllZero(r2) {
		r2--
	}

	c1 := 0
	for c1 < width && colAllZero(c1) {
		c1++
	}
	c2 := width - 1
	for c2 > c1 && colAllZero(c2) {
		c2--
	}

	trimmedWidth := c2 - c1 + 1
	trimmedHeight := r2 - r1 + 1
	trimmed := make([]byte, 0, trimmedWidth*trimmedHeight)
	for i := 0; i < trimmedHeight; i++ {
		for j := 0; j < trimmedWidth; j++ {
			trimmed = append(trimmed, mask[(i+r1)*width+(j+c1)])
		}
	}
	return PShape{Width: trimmedWidth, Mask: trimmed}
}

// PShapeFromRows builds a PShape from a rectangular slice of rows, each the
// same length, trimming empty borders the same way NewPShape does.
func PShapeFromRows(rows [][]byte) PShape {
	if len(rows) == 0 {
		panic("polyomino: mask cannot be empty")
	}
	width := len(rows[0])
	mask := make([]byte, 0, width*len(rows))
	for _, row := range rows {
		mask = append(mask, row...)
	}
	return NewPShape(width, mask)
}

// Height returns the shape's trimmed height.
func (s PShape) Height() int { return len(s.Mask) / s.Width }

func (s PShape) key() string {
	return fmt.Sprintf("%d:%s", s.Width, s.Mask)
}

// ShapeTransform selects which symmetries of a catalog shape are allowed
// during placement.
type ShapeTransform int

const (
	// NoTransform places each shape exactly as given.
	NoTransform ShapeTransform = iota
	// PureRotation allows the four rotations of each shape.
	PureRotation
	// FullSymmetry allows the four rotations and their reflections.
	FullSymmetry
)

func rotate(s PShape) PShape {
	cols := s.Width
	rows := s.Height()
	rotated := make([]byte, 0, len(s.Mask))
	for c := 0; c < cols; c++ {
		for r := rows - 1; r >= 0; r-- {
			rotated = append(rotated, s.Mask[r*cols+c])
		}
	}
	return NewPShape(rows, rotated)
}

func verticalFlip(s PShape) PShape {
	width := s.Width
	height := s.Height()
	flipped := make([]byte, 0, len(s.Mask))
	for r := height - 1; r >= 0; r-- {
		flipped = append(flipped, s.Mask[r*width:(r+1)*width]...)
	}
	return NewPShape(width, flipped)
}

func generateRotations(shape PShape) []PShape {
	rotations := []PShape{shape}
	current := shape
	for i := 0; i < 3; i++ {
		current = rotate(current)
		rotations = append(rotations, current)
	}
	return rotations
}

func generateSymmetries(shape PShape, transform ShapeTransform) []PShape {
	switch transform {
	case NoTransform:
		return []PShape{shape}
	case PureRotation:
		return generateRotations(shape)
	case FullSymmetry:
		rotations := generateRotations(shape)
		symmetries := append([]PShape(nil), rotations...)
		for _, r := range rotations {
			symmetries = append(symmetries, verticalFlip(r))
		}
		return symmetries
	default:
		panic(fmt.Sprintf("polyomino: unknown shape transform %d", transform))
	}
}

func dedupeShapes(shapes []PShape) []PShape {
	sort.Slice(shapes, func(i, j int) bool { return shapes[i].key() < shapes[j].key() })
	out := shapes[:0:0]
	for i, s := range shapes {
		if i == 0 || s.key() != shapes[i-1].key() {
			out = append(out, s)
		}
	}
	return out
}

// Possibility is a candidate placement of one shape at one position: the
// index of the shape in the catalog, and every grid cell it occupies.
type Possibility struct {
	ShapeIndex    int
	OccupiedCells [][2]int
}

// ConstraintKind discriminates the two families of polyomino constraint.
type ConstraintKind int

const (
	// ShapeIndex: shape Index must be placed exactly once.
	ShapeIndex ConstraintKind = iota
	// Field: cell (Row, Col) must be covered exactly once.
	Field
)

// Constraint is one column of the polyomino exact-cover matrix.
type Constraint struct {
	Kind     ConstraintKind
	Index    int
	Row, Col int
}

func generateAllPossibilities(shapes []PShape, gridRows, gridCols int, transform ShapeTransform) []Possibility {
	var possibilities []Possibility
	for shapeIndex, shape := range shapes {
		symmetries := dedupeShapes(generateSymmetries(shape, transform))
		for _, sym := range symmetries {
			h, w := sym.Height(), sym.Width
			if h > gridRows || w > gridCols {
				continue
			}
			for gridRow := 0; gridRow <= gridRows-h; gridRow++ {
				for gridCol := 0; gridCol <= gridCols-w; gridCol++ {
					var occupied [][2]int
					for r := 0; r < h; r++ {
						for c := 0; c < w; c++ {
							if sym.Mask[r*w+c] == 1 {
								occupied = append(occupied, [2]int{gridRow + r, gridCol + c})
							}
						}
					}
					possibilities = append(possibilities, Possibility{
						ShapeIndex:    shapeIndex,
						OccupiedCells: occupied,
					})
				}
			}
		}
	}
	return possibilities
}

func allConstraints(gridRows, gridCols, shapeCount int) []Constraint {
	var out []Constraint
	for i := 0; i < shapeCount; i++ {
		out = append(out, Constraint{Kind: ShapeIndex, Index: i})
	}
	for row := 0; row < gridRows; row++ {
		for col := 0; col < gridCols; col++ {
			out = append(out, Constraint{Kind: Field, Row: row, Col: col})
		}
	}
	return out
}

// Polyomino is an exact-cover encoding of one tiling instance.
type Polyomino struct {
	gridRows, gridCols int
	shapes             []PShape
	transform          ShapeTransform
	possibilities      []Possibility
	constraints        []Constraint
}

// New builds a polyomino tiling instance over a gridRows×gridCols grid from
// a catalog of shapes, with the given symmetries allowed during placement.
//
// New panics if either grid dimension is non-positive or shapes is empty.
func New(gridRows, gridCols int, shapes []PShape, transform ShapeTransform) *Polyomino {
	if gridRows <= 0 || gridCols <= 0 {
		panic("polyomino: grid dimensions must be positive")
	}
	if len(shapes) == 0 {
		panic("polyomino: shapes list cannot be empty")
	}

	return &Polyomino{
		gridRows:      gridRows,
		gridCols:      gridCols,
		shapes:        shapes,
		transform:     transform,
		possibilities: generateAllPossibilities(shapes, gridRows, gridCols, transform),
		constraints:   allConstraints(gridRows, gridCols, len(shapes)),
	}
}

// GridDimensions returns (rows, cols) of the tiled grid.
func (p *Polyomino) GridDimensions() (int, int) { return p.gridRows, p.gridCols }

// Shapes returns the shape catalog this instance was built from.
func (p *Polyomino) Shapes() []PShape { return p.shapes }

// Possibilities implements dlx.Problem.
func (p *Polyomino) Possibilities() []Possibility { return p.possibilities }

// Constraints implements dlx.Problem.
func (p *Polyomino) Constraints() []Constraint { return p.constraints }

// Satisfies implements dlx.Problem.
func (p *Polyomino) Satisfies(poss Possibility, c Constraint) bool {
	switch c.Kind {
	case ShapeIndex:
		return poss.ShapeIndex == c.Index
	case Field:
		for _, cell := range poss.OccupiedCells {
			if cell == [2]int{c.Row, c.Col} {
				return true
			}
		}
		return false
	default:
		panic(fmt.Sprintf("polyomino: unknown constraint kind %d", c.Kind))
	}
}

// IsOptional implements dlx.Problem. Every polyomino constraint is
// mandatory: each shape must be placed, and each cell must be filled.
func (p *Polyomino) IsOptional(Constraint) bool { return false }
