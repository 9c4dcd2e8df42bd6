package variant

import (
	"cmp"
	"fmt"
	"tagged-variant/internal/common"
)

// Equal reports whether a and b hold the same alternative with equal values.
// Two valueless variants are equal. It panics if the variants have different
// alternatives or the active alternative has no equality.
func Equal(a, b *Variant) bool {
	mustMix(a, b)

	if a.tag != b.tag {
		return false
	}

	if a.tag.IsValueless() {
		return true
	}

	table := a.table()
	if table.Equal == nil {
		panic(fmt.Sprintf("variant: alternative %s is not comparable", common.TypeStr(table.Type)))
	}

	return table.Equal(a.slot.Box(), b.slot.Box())
}

// Compare orders a and b by alternative index, then by value. Valueless sorts
// before every alternative. It returns -1, 0 or +1 and panics if the active
// alternative has no order.
func Compare(a, b *Variant) int {
	mustMix(a, b)

	if a.tag != b.tag {
		return cmp.Compare(a.tag.Index(), b.tag.Index())
	}

	if a.tag.IsValueless() {
		return 0
	}

	table := a.table()
	if table.Compare == nil {
		panic(fmt.Sprintf("variant: alternative %s is not ordered", common.TypeStr(table.Type)))
	}

	return cmp.Compare(table.Compare(a.slot.Box(), b.slot.Box()), 0)
}

// Less reports whether a sorts before b.
func Less(a, b *Variant) bool {
	return Compare(a, b) < 0
}

func mustMix(a, b *Variant) {
	if !a.schema.SameAlternatives(b.schema) {
		panic(fmt.Errorf("%w: %s and %s", ErrSchemaMismatch, a.schema, b.schema))
	}
}
