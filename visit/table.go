package visit

import (
	"fmt"
	"reflect"
	"strings"
	"tagged-variant/internal/common"
	"tagged-variant/internal/diagnostic"
	"tagged-variant/variant"
)

const (
	CodeMissingCombination = "VISIT001"
	CodeAmbiguousCases     = "VISIT002"
	CodeUnusedCase         = "VISIT003"
	CodeValuelessOperand   = "VISIT004"
)

// entry is the resolved case of one combination of active alternatives.
type entry struct {
	c     *Case
	binds []binding
}

// Table is a visitor compiled for fixed operand schemas. Each dimension has
// one slot per alternative plus slot 0 for the empty state, so a combination
// of discriminants maps to a single entry.
type Table[R any] struct {
	schemas []*variant.Schema
	radix   []int
	entries []*entry

	Diagnostics diagnostic.Diagnostics
}

// compile resolves every combination of the schemas' alternatives, the empty
// state included, to its most specific case.
func compile[R any](cases []Case, schemas []*variant.Schema) *Table[R] {
	t := &Table[R]{
		schemas: schemas,
		radix:   make([]int, len(schemas)),
	}

	size := 1
	for i, s := range schemas {
		t.radix[i] = s.Len() + 1
		size *= t.radix[i]
	}

	t.entries = make([]*entry, size)
	used := make([]bool, len(cases))
	operands := make([]reflect.Type, len(schemas))

	for slot := range t.entries {
		valueless := t.decode(slot, operands)

		best, ties := -1, []int(nil)
		var bestBinds []binding
		for ci := range cases {
			binds, score := match(&cases[ci], operands)
			switch {
			case binds == nil || score < best:
			case score == best:
				ties = append(ties, ci)
			default:
				best, ties, bestBinds = score, []int{ci}, binds
			}
		}

		combination := common.TypeList(operands)
		switch {
		case common.IsMultiple(ties):
			names := make([]string, len(ties))
			for i, ci := range ties {
				names[i] = cases[ci].String()
			}

			t.Diagnostics.AddError(CodeAmbiguousCases, "more than one case matches equally well", combination,
				strings.Join(names, ", "))

		case common.IsSingle(ties):
			used[ties[0]] = true
			t.entries[slot] = &entry{c: &cases[ties[0]], binds: bestBinds}

		case valueless:
			t.Diagnostics.AddInfo(CodeValuelessOperand, "visiting an empty operand fails", combination, "",
				"add a case taking *variant.Empty")

		default:
			t.Diagnostics.AddError(CodeMissingCombination, "no case accepts the combination", combination, "",
				suggest(operands, reflect.TypeFor[R]()), "add a case with interface parameters")
		}
	}

	for ci := range cases {
		if !used[ci] {
			t.Diagnostics.AddWarning(CodeUnusedCase, "case is never selected", "", cases[ci].String())
		}
	}

	return t
}

// decode fills operands with the alternative types of slot, nil standing for
// an empty operand, and reports whether any operand is empty.
func (t *Table[R]) decode(slot int, operands []reflect.Type) (valueless bool) {
	for i := len(t.radix) - 1; i >= 0; i-- {
		digit := slot % t.radix[i]
		slot /= t.radix[i]

		if digit == 0 {
			operands[i] = nil
			valueless = true

			continue
		}

		operands[i] = t.schemas[i].TypeAt(digit - 1)
	}

	return valueless
}

// slot returns the entry index of the variants' discriminants.
func (t *Table[R]) slot(vs []*variant.Variant) int {
	slot := 0
	for i, v := range vs {
		slot = slot*t.radix[i] + v.Index() + 1
	}

	return slot
}

// Size is the number of combinations, the empty state included.
func (t *Table[R]) Size() int {
	return len(t.entries)
}

// Covered reports whether every combination has a case, the empty ones included.
func (t *Table[R]) Covered() bool {
	for _, e := range t.entries {
		if e == nil {
			return false
		}
	}

	return true
}

func (t *Table[R]) call(vs []*variant.Variant) (R, error) {
	var result R

	e := t.entries[t.slot(vs)]
	if e == nil {
		return result, fmt.Errorf("%w: %s", variant.ErrValuelessVisit, operandList(vs))
	}

	args := make([]reflect.Value, len(vs))
	for i, v := range vs {
		args[i] = e.binds[i].arg(v.Ptr())
	}

	out := e.c.fn.Call(args)
	reflect.ValueOf(&result).Elem().Set(out[0])

	if e.c.HasErr {
		if err, ok := out[1].Interface().(error); ok && err != nil {
			return result, err
		}
	}

	return result, nil
}

func match(c *Case, operands []reflect.Type) ([]binding, int) {
	if c.Arity() != len(operands) {
		return nil, 0
	}

	binds := make([]binding, len(operands))
	score := 0
	for i, op := range operands {
		binds[i] = bind(c.Params[i], op)
		if binds[i] == bindNone {
			return nil, 0
		}

		score += binds[i].score()
	}

	return binds, score
}

func suggest(operands []reflect.Type, result reflect.Type) string {
	params := make([]string, len(operands))
	for i, op := range operands {
		params[i] = "*" + common.TypeStr(op)
	}

	return "func(" + strings.Join(params, ", ") + ") " + common.TypeStr(result)
}

func operandList(vs []*variant.Variant) string {
	types := make([]reflect.Type, len(vs))
	for i, v := range vs {
		types[i] = v.Type()
	}

	return common.TypeList(types)
}
