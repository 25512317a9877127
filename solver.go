package dlx

import (
	"iter"
	"log/slog"

	"github.com/halfvector/dlx/grid"
)

type frameState int

const (
	frameCover frameState = iota
	frameUncover
)

// candidate is one row under consideration at a search frame: the
// possibility's index and the columns covering it would cover.
type candidate struct {
	possibilityIndex int
	columns          []int
}

// frame is one depth level of the backtracking search: the candidate rows
// remaining to try at this level and which half of the cover/uncover cycle
// the driver is in.
type frame struct {
	state      frameState
	candidates []candidate
}

// Solver streams exact-cover solutions from a Problem, one at a time. The
// zero value is not usable; construct one with New or NewWithBackend.
type Solver[P, C any] struct {
	problem    Problem[P, C]
	newBackend BackendFactory

	backend         Backend
	partialSolution []int
	stack           []frame
}

// New creates a Solver backed by the sparse linked grid (package grid).
func New[P, C any](problem Problem[P, C]) *Solver[P, C] {
	return NewWithBackend(problem, func(n int, coords iter.Seq2[int, int]) Backend {
		return grid.New(n, coords)
	})
}

// NewWithBackend creates a Solver backed by whatever Backend newBackend
// constructs — for example a closure around bitgrid.New for small problems.
func NewWithBackend[P, C any](problem Problem[P, C], newBackend BackendFactory) *Solver[P, C] {
	s := &Solver[P, C]{
		problem:    problem,
		newBackend: newBackend,
	}
	s.Reset()
	return s
}

// Reset resets the grid and search state to just after construction,
// reusing the same problem.
func (s *Solver[P, C]) Reset() {
	s.backend = s.populateBackend()
	s.partialSolution = s.partialSolution[:0]
	s.stack = s.stack[:0]

	if s.isSolved() {
		return
	}
	col, ok := s.chooseColumn()
	if !ok {
		return
	}
	candidates := s.selectRowsFromColumn(col)
	if len(candidates) == 0 {
		return
	}
	s.stack = append(s.stack, frame{state: frameCover, candidates: candidates})
}

func (s *Solver[P, C]) populateBackend() Backend {
	possibilities := s.problem.Possibilities()
	constraints := s.problem.Constraints()

	coords := func(yield func(int, int) bool) {
		for i, p := range possibilities {
			for j, c := range constraints {
				if !s.problem.Satisfies(p, c) {
					continue
				}
				if !yield(i+1, j+1) {
					return
				}
			}
		}
	}
	return s.newBackend(len(constraints), coords)
}

// isSolved reports whether no mandatory column remains uncovered.
func (s *Solver[P, C]) isSolved() bool {
	constraints := s.problem.Constraints()
	for col := range s.backend.UncoveredColumns() {
		if !s.problem.IsOptional(constraints[s.backend.ColumnID(col)]) {
			return false
		}
	}
	return true
}

// chooseColumn picks the uncovered mandatory column with the smallest
// size, ties broken by first-seen order along the header list.
func (s *Solver[P, C]) chooseColumn() (int, bool) {
	constraints := s.problem.Constraints()

	best, bestSize, found := 0, 0, false
	for col := range s.backend.UncoveredColumns() {
		if s.problem.IsOptional(constraints[s.backend.ColumnID(col)]) {
			continue
		}
		size := s.backend.ColumnSize(col)
		if !found || size < bestSize {
			best, bestSize, found = col, size, true
		}
	}
	return best, found
}

func (s *Solver[P, C]) selectRowsFromColumn(col int) []candidate {
	var candidates []candidate
	for row := range s.backend.UncoveredRowsInColumn(col) {
		var columns []int
		for c := range s.backend.UncoveredColumnsInRow(row) {
			columns = append(columns, c)
		}
		candidates = append(candidates, candidate{
			possibilityIndex: s.backend.RowID(row),
			columns:          columns,
		})
	}
	return candidates
}

// NextSolution runs the state machine until it emits the next solution or
// exhausts the search tree. The returned slice is a fresh copy; the
// solver's internal state is safe to keep advancing after it is returned.
func (s *Solver[P, C]) NextSolution() ([]P, bool) {
	for len(s.stack) > 0 {
		top := &s.stack[len(s.stack)-1]

		var emitted []int
		var push *frame
		var pop bool

		switch top.state {
		case frameCover:
			cand := top.candidates[0]
			s.partialSolution = append(s.partialSolution, cand.possibilityIndex)
			for _, col := range cand.columns {
				s.backend.Cover(col)
			}

			switch {
			case s.isSolved():
				emitted = append([]int(nil), s.partialSolution...)
			default:
				if col, ok := s.chooseColumn(); ok {
					next := s.selectRowsFromColumn(col)
					if len(next) > 0 {
						f := frame{state: frameCover, candidates: next}
						push = &f
					}
				}
			}
			top.state = frameUncover

		case frameUncover:
			cand := top.candidates[0]
			top.candidates = top.candidates[1:]

			for i := len(cand.columns) - 1; i >= 0; i-- {
				s.backend.Uncover(cand.columns[i])
			}
			s.partialSolution = s.partialSolution[:len(s.partialSolution)-1]

			if len(top.candidates) == 0 {
				pop = true
			} else {
				top.state = frameCover
			}
		}

		if push != nil {
			s.stack = append(s.stack, *push)
		}
		if pop {
			s.stack = s.stack[:len(s.stack)-1]
		}

		if emitted != nil {
			slog.Debug("dlx: solution found", "depth", len(emitted))
			return s.materialize(emitted), true
		}
	}
	return nil, false
}

func (s *Solver[P, C]) materialize(indices []int) []P {
	possibilities := s.problem.Possibilities()
	out := make([]P, len(indices))
	for i, idx := range indices {
		out[i] = possibilities[idx]
	}
	return out
}

// AllSolutions drains every remaining solution.
func (s *Solver[P, C]) AllSolutions() [][]P {
	var all [][]P
	for {
		solution, ok := s.NextSolution()
		if !ok {
			return all
		}
		all = append(all, solution)
	}
}

// Solutions returns an iter.Seq[[]P] that drains the solver exactly like
// repeated calls to NextSolution, for idiomatic range-based consumption.
func (s *Solver[P, C]) Solutions() iter.Seq[[]P] {
	return func(yield func([]P) bool) {
		for {
			solution, ok := s.NextSolution()
			if !ok {
				return
			}
			if !yield(solution) {
				return
			}
		}
	}
}
