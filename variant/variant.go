package variant

import (
	"fmt"
	"reflect"
	"tagged-variant/internal/common"
	"tagged-variant/lifecycle"
	"tagged-variant/storage"
	"tagged-variant/utils"
)

// noCopy lets go vet flag variants copied by value.
type noCopy struct{}

func (*noCopy) Lock()   {}
func (*noCopy) Unlock() {}

// Variant holds at most one alternative of its schema. The zero value is an
// empty variant without a schema; it adopts the schema of the first variant
// copied, moved or swapped into it.
//
// A Variant is not safe for concurrent use.
type Variant struct {
	_ noCopy

	schema *Schema
	tag    storage.Tag
	slot   storage.Slot
}

// New returns an empty variant of schema s.
func New(s *Schema) *Variant {
	if s == nil {
		panic("variant: nil schema")
	}

	return &Variant{schema: s}
}

// From returns a variant of schema s holding a copy of x, stored as the
// alternative x resolves to (see Assign).
func From[T any](s *Schema, x T) (*Variant, error) {
	v := New(s)
	if err := Assign(v, x); err != nil {
		return nil, err
	}

	return v, nil
}

// FromAt returns a variant of schema s holding a copy of x as alternative i.
func FromAt[T any](s *Schema, i int, x T) (*Variant, error) {
	v := New(s)
	if err := AssignAt(v, i, x); err != nil {
		return nil, err
	}

	return v, nil
}

func (v *Variant) Schema() *Schema {
	return v.schema
}

// Index returns the index of the active alternative, or Valueless.
func (v *Variant) Index() int {
	return v.tag.Index()
}

func (v *Variant) Valueless() bool {
	return v.tag.IsValueless()
}

// IsEmpty is the same as Valueless: this design has a single empty state.
func (v *Variant) IsEmpty() bool {
	return v.tag.IsValueless()
}

// Type returns the type of the active alternative, or nil if valueless.
func (v *Variant) Type() reflect.Type {
	if v.tag.IsValueless() {
		return nil
	}

	return v.table().Type
}

// Ptr returns the active value as a *T boxed in any, or *Empty if valueless.
func (v *Variant) Ptr() any {
	if v.tag.IsValueless() {
		return &emptyMarker
	}

	return v.slot.Box()
}

// Clone returns an independent copy of v.
func (v *Variant) Clone() (*Variant, error) {
	c := &Variant{schema: v.schema}
	if err := c.CopyFrom(v); err != nil {
		return nil, err
	}

	return c, nil
}

// Move transfers the value of v into a new variant and leaves v empty.
func (v *Variant) Move() (*Variant, error) {
	m := &Variant{schema: v.schema}
	if err := m.MoveFrom(v); err != nil {
		return nil, err
	}

	return m, nil
}

func (v *Variant) String() string {
	if v.tag.IsValueless() {
		return "variant(valueless)"
	}

	return fmt.Sprintf("variant[%d %s](%v)",
		v.tag.Index(), common.TypeStr(v.Type()), reflect.ValueOf(v.slot.Box()).Elem().Interface())
}

func (v *Variant) table() *lifecycle.Table {
	return v.schema.alts[v.tag.Index()]
}

func (v *Variant) badAccess(requested reflect.Type, index int) error {
	return &BadAccessError{
		Requested:      requested,
		RequestedIndex: index,
		Active:         v.Type(),
		ActiveIndex:    v.tag.Index(),
	}
}

// Get returns a pointer to the active value if it is the alternative of type T.
// Get[Empty] succeeds on a valueless variant.
func Get[T any](v *Variant) (*T, error) {
	rtype := reflect.TypeFor[T]()
	if rtype == emptyType {
		if v.tag.IsValueless() {
			return any(&emptyMarker).(*T), nil
		}

		return nil, v.badAccess(rtype, Valueless)
	}

	if v.schema == nil {
		return nil, v.badAccess(rtype, Valueless)
	}

	i, err := v.schema.unique(rtype)
	if err != nil {
		return nil, err
	}

	if v.tag.Index() != i {
		return nil, v.badAccess(rtype, Valueless)
	}

	return v.slot.Box().(*T), nil
}

// GetAt returns a pointer to the active value if it is alternative i, which must be of type T.
func GetAt[T any](v *Variant, i int) (*T, error) {
	rtype := reflect.TypeFor[T]()
	if v.schema == nil || !utils.InBounds(i, v.schema.Len()) {
		return nil, fmt.Errorf("%w: %d", ErrIndexOutOfRange, i)
	}

	if alt := v.schema.TypeAt(i); alt != rtype {
		return nil, fmt.Errorf("%w: alternative %d is %s, not %s",
			ErrNoAlternative, i, common.TypeStr(alt), common.TypeStr(rtype))
	}

	if v.tag.Index() != i {
		return nil, v.badAccess(rtype, i)
	}

	return v.slot.Box().(*T), nil
}

// MustGet is like Get but panics on failure.
func MustGet[T any](v *Variant) *T {
	p, err := Get[T](v)
	if err != nil {
		panic(err)
	}

	return p
}

// MustGetAt is like GetAt but panics on failure.
func MustGetAt[T any](v *Variant, i int) *T {
	p, err := GetAt[T](v, i)
	if err != nil {
		panic(err)
	}

	return p
}

// HoldsAlternative reports whether the active alternative is of type T.
// HoldsAlternative[Empty] reports whether v is valueless.
func HoldsAlternative[T any](v *Variant) bool {
	rtype := reflect.TypeFor[T]()
	if rtype == emptyType {
		return v.tag.IsValueless()
	}

	return v.Type() == rtype
}
