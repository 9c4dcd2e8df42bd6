package lifecycle

import (
	"reflect"
	"sync"
	"tagged-variant/primitive"
)

// Table is the lifecycle dispatch table of one alternative type T. Every
// operation works on boxes: a box is a *T stored as any.
//
// Operations the type cannot provide are nil and carry GuaranteeUnsupported.
// MoveAssign and Swap are nil unless the type implements the matching hook;
// the engine then falls back to relocating boxes.
type Table struct {
	Type reflect.Type

	New        func() any
	Copy       func(src any) (any, error)
	Move       func(src any) (any, error)
	CopyAssign func(dst, src any) error
	MoveAssign func(dst, src any) error
	Swap       func(a, b any) error
	Destroy    func(box any)
	Equal      func(a, b any) bool
	Compare    func(a, b any) int

	CopyGuarantee       Guarantee
	MoveGuarantee       Guarantee
	CopyAssignGuarantee Guarantee
	MoveAssignGuarantee Guarantee
	SwapGuarantee       Guarantee
}

// HandsOff reports whether relocation keeps the box itself, so the value keeps
// its address.
func (t *Table) HandsOff() bool {
	return t.MoveGuarantee.Nothrow()
}

var tables sync.Map // reflect.Type -> *Table

// For returns the cached dispatch table of T.
func For[T any]() *Table {
	rtype := reflect.TypeFor[T]()
	if t, ok := tables.Load(rtype); ok {
		return t.(*Table)
	}

	t, _ := tables.LoadOrStore(rtype, build[T](rtype))

	return t.(*Table)
}

// Lookup returns the table of rtype if For was already called for it.
func Lookup(rtype reflect.Type) (*Table, bool) {
	t, ok := tables.Load(rtype)
	if !ok {
		return nil, false
	}

	return t.(*Table), true
}

// hook finds H on *T or, for pointer and other non-struct receivers, on T itself.
func hook[H any, T any]() (func(p *T) H, bool) {
	if _, ok := any(new(T)).(H); ok {
		return func(p *T) H { return any(p).(H) }, true
	}

	var zero T
	if _, ok := any(zero).(H); ok {
		return func(p *T) H { return any(*p).(H) }, true
	}

	return nil, false
}

func build[T any](rtype reflect.Type) *Table {
	t := &Table{
		Type: rtype,
		New:  func() any { return new(T) },
	}

	t.Destroy = func(any) {}
	if destroyer, ok := hook[Destroyer, T](); ok {
		t.Destroy = func(box any) { destroyer(box.(*T)).Destroy() }
	}

	t.Copy = func(src any) (any, error) {
		p := new(T)
		*p = *src.(*T)

		return p, nil
	}
	t.CopyGuarantee = GuaranteeNothrow

	if copier, ok := hook[Copier[T], T](); ok {
		t.Copy = func(src any) (any, error) {
			c, err := copier(src.(*T)).Copy()
			if err != nil {
				return nil, err
			}

			p := new(T)
			*p = c

			return p, nil
		}
		t.CopyGuarantee = GuaranteeMayFail
	}

	buildMove[T](t)
	buildAssign[T](t)
	buildRelational[T](t, rtype)

	if swapper, ok := hook[Swapper[T], T](); ok {
		t.Swap = func(a, b any) error { return swapper(a.(*T)).Swap(b.(*T)) }
		t.SwapGuarantee = GuaranteeMayFail
	} else {
		t.SwapGuarantee = GuaranteeUnsupported
	}

	return t
}

func buildMove[T any](t *Table) {
	if _, ok := hook[Immovable, T](); ok {
		t.MoveGuarantee = GuaranteeUnsupported
		return
	}

	if mover, ok := hook[Mover[T], T](); ok {
		t.Move = func(src any) (any, error) {
			m, err := mover(src.(*T)).Move()
			if err != nil {
				return nil, err
			}

			p := new(T)
			*p = m

			return p, nil
		}
		t.MoveGuarantee = GuaranteeMayFail

		return
	}

	t.Move = func(src any) (any, error) { return src, nil }
	t.MoveGuarantee = GuaranteeNothrow
}

func buildAssign[T any](t *Table) {
	if assigner, ok := hook[CopyAssigner[T], T](); ok {
		t.CopyAssign = func(dst, src any) error { return assigner(dst.(*T)).CopyAssign(src.(*T)) }
		t.CopyAssignGuarantee = GuaranteeMayFail
	} else {
		// copy first so a failing copy leaves dst untouched
		t.CopyAssign = func(dst, src any) error {
			c, err := t.Copy(src)
			if err != nil {
				return err
			}

			t.Destroy(dst)
			*dst.(*T) = *c.(*T)

			return nil
		}
		t.CopyAssignGuarantee = t.CopyGuarantee
	}

	if assigner, ok := hook[MoveAssigner[T], T](); ok {
		t.MoveAssign = func(dst, src any) error { return assigner(dst.(*T)).MoveAssign(src.(*T)) }
		t.MoveAssignGuarantee = GuaranteeMayFail
	} else {
		t.MoveAssignGuarantee = GuaranteeUnsupported
	}
}

func buildRelational[T any](t *Table, rtype reflect.Type) {
	switch comparer, ok := hook[Comparer[T], T](); {
	case ok:
		t.Compare = func(a, b any) int { return comparer(a.(*T)).Compare(*b.(*T)) }
	case primitive.Ordered(rtype):
		t.Compare = func(a, b any) int {
			c, _ := primitive.Compare(reflect.ValueOf(*a.(*T)), reflect.ValueOf(*b.(*T)))
			return c
		}
	}

	// an order defines equality, == may disagree with it (NaN, coarser orders)
	switch equaler, ok := hook[Equaler[T], T](); {
	case ok:
		t.Equal = func(a, b any) bool { return equaler(a.(*T)).Equal(*b.(*T)) }
	case t.Compare != nil:
		t.Equal = func(a, b any) bool { return t.Compare(a, b) == 0 }
	case rtype.Comparable():
		t.Equal = func(a, b any) bool { return any(*a.(*T)) == any(*b.(*T)) }
	}
}
