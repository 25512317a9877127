package dlx

// Problem is the abstract contract a domain must satisfy to be solved.
// Possibilities and Constraints are addressed purely by their position in
// the slices these methods return; P and C themselves are opaque to the
// solver.
//
// A constraint is mandatory unless IsOptional reports true for it.
// Mandatory constraints must be covered by exactly one chosen possibility;
// optional constraints ("secondary items" in Knuth's terminology) by at
// most one. IsOptional is consulted only when testing for a solution and
// when choosing the next column to branch on.
type Problem[P, C any] interface {
	// Possibilities returns every candidate row, in a fixed order.
	Possibilities() []P

	// Constraints returns every column, in a fixed order.
	Constraints() []C

	// Satisfies reports whether possibility p would, if chosen, cover
	// constraint c.
	Satisfies(p P, c C) bool

	// IsOptional reports whether c is a secondary item: at most one chosen
	// possibility may cover it, rather than exactly one.
	IsOptional(c C) bool
}
