package variant

import (
	"reflect"
	"tagged-variant/lifecycle"
)

// Assign stores a copy of x. The target alternative is the one of type T or,
// with FeatureConvertibleAssign, the single alternative T is assignable to.
// When that alternative is already active, x is copy-assigned onto it.
func Assign[T any](v *Variant, x T) error {
	if v.schema == nil {
		return ErrNoSchema
	}

	i, err := v.schema.resolve(reflect.TypeFor[T]())
	if err != nil {
		return err
	}

	return v.apply(valueConstruction(v.schema.alts[i], i, x))
}

// AssignAt stores a copy of x as alternative i.
func AssignAt[T any](v *Variant, i int, x T) error {
	if v.schema == nil {
		return ErrNoSchema
	}

	if err := v.schema.accepts(i, reflect.TypeFor[T]()); err != nil {
		return err
	}

	return v.apply(valueConstruction(v.schema.alts[i], i, x))
}

func valueConstruction[T any](table *lifecycle.Table, i int, x T) construction {
	var src any = &x
	if table.Type != reflect.TypeFor[T]() {
		converted := table.New()
		reflect.ValueOf(converted).Elem().Set(reflect.ValueOf(&x).Elem())
		src = converted
	}

	return construction{
		index:     i,
		table:     table,
		guarantee: table.CopyGuarantee,
		build:     func() (any, error) { return table.Copy(src) },
		assign:    func(dst any) error { return table.CopyAssign(dst, src) },
	}
}

// CopyFrom makes v hold a copy of the value of src. Copying a valueless
// variant empties v; copying v onto itself does nothing.
func (v *Variant) CopyFrom(src *Variant) error {
	if v == src {
		return nil
	}

	if err := v.adopt(src.schema); err != nil {
		return err
	}

	if src.tag.IsValueless() {
		v.Reset()
		return nil
	}

	i := src.tag.Index()
	table := src.table()
	box := src.slot.Box()

	return v.apply(construction{
		index:     i,
		table:     table,
		guarantee: table.CopyGuarantee,
		build:     func() (any, error) { return table.Copy(box) },
		assign:    func(dst any) error { return table.CopyAssign(dst, box) },
	})
}

// MoveFrom transfers the value of src into v and leaves src empty. A value
// relocated without a Mover hook keeps its address. If the transfer fails src
// keeps its value.
func (v *Variant) MoveFrom(src *Variant) error {
	if v == src {
		return nil
	}

	if err := v.adopt(src.schema); err != nil {
		return err
	}

	if src.tag.IsValueless() {
		v.Reset()
		return nil
	}

	i := src.tag.Index()
	table := src.table()
	box := src.slot.Box()

	if !table.MoveGuarantee.Supported() {
		return unsupported("move", table.Type)
	}

	c := construction{
		index:     i,
		table:     table,
		guarantee: table.MoveGuarantee,
		build: func() (any, error) {
			moved, err := table.Move(box)
			if err != nil {
				return nil, err
			}

			src.release()

			return moved, nil
		},
	}

	if table.MoveAssign != nil {
		c.assign = func(dst any) error {
			if err := table.MoveAssign(dst, box); err != nil {
				return err
			}

			src.release()

			return nil
		}
	}

	return v.apply(c)
}

// Emplace constructs a new T in v by calling ctor on a zero T. The previous
// value is always destroyed, even when it is a T. A nil ctor leaves the zero T.
//
// A failing ctor is treated like any failing construction: the variant is
// unchanged when the backup path was taken, valueless otherwise.
func Emplace[T any](v *Variant, ctor func(*T) error) error {
	if v.schema == nil {
		return ErrNoSchema
	}

	i, err := v.schema.unique(reflect.TypeFor[T]())
	if err != nil {
		return err
	}

	return v.apply(emplaceConstruction(v.schema.alts[i], i, ctor))
}

// EmplaceAt is like Emplace but selects alternative i, which must be of type T.
// It is the only way to emplace an alternative whose type appears twice.
func EmplaceAt[T any](v *Variant, i int, ctor func(*T) error) error {
	if v.schema == nil {
		return ErrNoSchema
	}

	if err := exactlyAt[T](v.schema, i); err != nil {
		return err
	}

	return v.apply(emplaceConstruction(v.schema.alts[i], i, ctor))
}

// EmplaceNothrow is like Emplace for constructors that cannot fail, which
// lets the engine construct in place directly.
func EmplaceNothrow[T any](v *Variant, ctor func(*T)) error {
	if v.schema == nil {
		return ErrNoSchema
	}

	i, err := v.schema.unique(reflect.TypeFor[T]())
	if err != nil {
		return err
	}

	return v.apply(nothrowConstruction(v.schema.alts[i], i, ctor))
}

// EmplaceAtNothrow is the index selecting form of EmplaceNothrow.
func EmplaceAtNothrow[T any](v *Variant, i int, ctor func(*T)) error {
	if v.schema == nil {
		return ErrNoSchema
	}

	if err := exactlyAt[T](v.schema, i); err != nil {
		return err
	}

	return v.apply(nothrowConstruction(v.schema.alts[i], i, ctor))
}

func exactlyAt[T any](s *Schema, i int) error {
	alt := s.TypeAt(i)
	switch rtype := reflect.TypeFor[T](); {
	case alt == nil:
		return ErrIndexOutOfRange
	case alt != rtype:
		return noAlternative(rtype)
	default:
		return nil
	}
}

func emplaceConstruction[T any](table *lifecycle.Table, i int, ctor func(*T) error) construction {
	if ctor == nil {
		return nothrowConstruction[T](table, i, nil)
	}

	return construction{
		index:     i,
		table:     table,
		guarantee: lifecycle.GuaranteeMayFail,
		build: func() (any, error) {
			p := new(T)
			if err := ctor(p); err != nil {
				return nil, err
			}

			return p, nil
		},
	}
}

func nothrowConstruction[T any](table *lifecycle.Table, i int, ctor func(*T)) construction {
	return construction{
		index:     i,
		table:     table,
		guarantee: lifecycle.GuaranteeNothrow,
		build: func() (any, error) {
			p := new(T)
			if ctor != nil {
				ctor(p)
			}

			return p, nil
		},
	}
}

// Reset destroys the active value, leaving v valueless.
func (v *Variant) Reset() {
	v.destroy()
}
