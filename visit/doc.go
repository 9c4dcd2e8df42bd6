// Package visit dispatches operations over the active alternatives of one or
// more variants.
//
// A Visitor is built from plain functions, its cases. Each case takes one
// parameter per operand: *T binds alternative T, *variant.Empty binds an empty
// operand, and an interface parameter binds every alternative implementing it.
// For each tuple of active alternatives the most specific case wins, exact
// pointers over interfaces over any.
//
// Compiling a visitor against the operands' schemas builds a table with one
// entry per combination of discriminants, the empty state included, so a
// visit is a single lookup:
//
//	vis := visit.MustNew[string](
//		func(i *int) string { return strconv.Itoa(*i) },
//		func(s *string) string { return *s },
//	)
//	out, err := vis.Visit(v)
package visit
