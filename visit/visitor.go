package visit

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
	"sync"
	"tagged-variant/internal/common"
	"tagged-variant/variant"
)

var (
	ErrIncompleteVisitor = errors.New("visitor does not cover every combination")
	ErrOperandCount      = errors.New("wrong number of variants for the visitor")
)

// Visitor is a set of cases dispatched over the active alternatives of one or
// more variants. Tables are compiled once per distinct tuple of schemas and
// cached; a Visitor is safe for concurrent use.
type Visitor[R any] struct {
	cases  []Case
	tables sync.Map // schemas key -> *compiled[R]
}

type compiled[R any] struct {
	table *Table[R]
	err   error
}

// New returns a visitor of the given cases, which must all take the same
// number of operands and return R.
func New[R any](cases ...any) (*Visitor[R], error) {
	if common.IsEmpty(cases) {
		return nil, ErrIsNotACase
	}

	result := reflect.TypeFor[R]()
	vis := &Visitor[R]{cases: make([]Case, len(cases))}

	for i, fn := range cases {
		c, err := ParseCase(fn, result)
		if err != nil {
			return nil, fmt.Errorf("case %d: %w", i, err)
		}

		if i > 0 && c.Arity() != vis.cases[0].Arity() {
			return nil, fmt.Errorf("case %d: %w", i, ErrArityMismatch)
		}

		vis.cases[i] = c
	}

	return vis, nil
}

// MustNew is like New but panics on failure.
func MustNew[R any](cases ...any) *Visitor[R] {
	vis, err := New[R](cases...)
	if err != nil {
		panic(err)
	}

	return vis
}

// Arity is the number of variants the visitor dispatches over.
func (vis *Visitor[R]) Arity() int {
	return vis.cases[0].Arity()
}

// Compile returns the dispatch table for operands of the given schemas. The
// error wraps ErrIncompleteVisitor when a combination of alternatives has no
// case or several equally specific ones. Combinations with an empty operand
// may stay uncovered; visiting them fails with variant.ErrValuelessVisit.
func (vis *Visitor[R]) Compile(schemas ...*variant.Schema) (*Table[R], error) {
	if len(schemas) != vis.Arity() {
		return nil, fmt.Errorf("%w: want %d, got %d", ErrOperandCount, vis.Arity(), len(schemas))
	}

	key := schemaKey(schemas)
	if c, ok := vis.tables.Load(key); ok {
		return c.(*compiled[R]).table, c.(*compiled[R]).err
	}

	table := compile[R](vis.cases, schemas)

	c := &compiled[R]{table: table}
	if table.Diagnostics.HasErrors() {
		c.err = fmt.Errorf("%w: %w", ErrIncompleteVisitor, table.Diagnostics.Error())
	}

	actual, _ := vis.tables.LoadOrStore(key, c)

	return actual.(*compiled[R]).table, actual.(*compiled[R]).err
}

// Visit invokes the case matching the active alternatives of vs with pointers
// to their live values and returns its result.
func (vis *Visitor[R]) Visit(vs ...*variant.Variant) (R, error) {
	var zero R

	schemas := make([]*variant.Schema, len(vs))
	for i, v := range vs {
		if v.Schema() == nil {
			return zero, fmt.Errorf("operand %d: %w", i, variant.ErrNoSchema)
		}

		schemas[i] = v.Schema()
	}

	table, err := vis.Compile(schemas...)
	if err != nil {
		return zero, err
	}

	return table.call(vs)
}

func schemaKey(schemas []*variant.Schema) string {
	var b strings.Builder
	for _, s := range schemas {
		fmt.Fprintf(&b, "%p;", s)
	}

	return b.String()
}
