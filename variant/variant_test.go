package variant_test

import (
	"errors"
	"fmt"
	"reflect"
	"tagged-variant/options"
	"tagged-variant/variant"
	"testing"

	"github.com/davecgh/go-spew/spew"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEmptyByDefault(t *testing.T) {
	t.Parallel()

	t.Run("new variant", func(t *testing.T) {
		t.Parallel()

		v := variant.New(variant.Types1[int]())
		assert.True(t, v.IsEmpty())
		assert.True(t, v.Valueless())
		assert.Equal(t, -1, v.Index())
		assert.Nil(t, v.Type())
	})

	t.Run("zero variant", func(t *testing.T) {
		t.Parallel()

		var v variant.Variant
		assert.True(t, v.Valueless())
		assert.Equal(t, variant.Valueless, v.Index())
		assert.Nil(t, v.Schema())
	})

	t.Run("empty marker is shared", func(t *testing.T) {
		t.Parallel()

		v := variant.New(variant.Types1[int]())

		e1, err := variant.Get[variant.Empty](v)
		require.NoError(t, err)
		e2, err := variant.Get[variant.Empty](v)
		require.NoError(t, err)
		assert.Same(t, e1, e2)
		assert.Same(t, e1, v.Ptr())
		assert.True(t, variant.HoldsAlternative[variant.Empty](v))

		_, err = variant.Get[int](v)
		assert.ErrorIs(t, err, variant.ErrBadAccess)
	})
}

func TestEmplace(t *testing.T) {
	t.Parallel()

	s := variant.Types3[int, string, []byte]()
	v := variant.New(s)

	require.NoError(t, variant.EmplaceNothrow(v, func(p *int) { *p = 42 }))
	assert.Equal(t, 0, v.Index())
	assert.Equal(t, 42, *variant.MustGet[int](v))

	require.NoError(t, variant.Emplace(v, func(p *string) error {
		*p = "built"
		return nil
	}))
	assert.Equal(t, 1, v.Index())
	assert.Equal(t, "built", *variant.MustGetAt[string](v, 1))

	require.NoError(t, variant.EmplaceAt[[]byte](v, 2, nil))
	assert.Equal(t, 2, v.Index())
	assert.Empty(t, *variant.MustGet[[]byte](v))

	require.NoError(t, variant.EmplaceAtNothrow(v, 0, func(p *int) { *p = 7 }))
	assert.Equal(t, 0, v.Index())
	assert.Equal(t, 7, *variant.MustGet[int](v))

	err := variant.Emplace(v, func(p *float64) error { return nil })
	assert.ErrorIs(t, err, variant.ErrNoAlternative)

	err = variant.EmplaceAt[string](v, 0, nil)
	assert.ErrorIs(t, err, variant.ErrNoAlternative)

	err = variant.EmplaceAt[string](v, 5, nil)
	assert.ErrorIs(t, err, variant.ErrIndexOutOfRange)

	assert.Equal(t, 0, v.Index(), "rejected emplaces leave the variant alone")
}

func TestEmplaceFailure(t *testing.T) {
	t.Parallel()

	errBuild := errors.New("build failed")

	t.Run("backup path keeps the old value", func(t *testing.T) {
		t.Parallel()

		v, err := variant.From(variant.Types2[int, string](), 3)
		require.NoError(t, err)

		err = variant.Emplace(v, func(p *string) error { return errBuild })
		assert.ErrorIs(t, err, errBuild)
		assert.Equal(t, 0, v.Index())
		assert.Equal(t, 3, *variant.MustGet[int](v))
	})

	t.Run("same alternative is rebuilt", func(t *testing.T) {
		t.Parallel()

		v, err := variant.From(variant.Types2[int, string](), "old")
		require.NoError(t, err)
		before := variant.MustGet[string](v)

		require.NoError(t, variant.Emplace(v, func(p *string) error {
			*p = "new"
			return nil
		}))
		after := variant.MustGet[string](v)
		assert.Equal(t, "new", *after)
		assert.NotSame(t, before, after)
	})

	t.Run("without backup the variant becomes valueless", func(t *testing.T) {
		t.Parallel()

		s := variant.NewSchema(tables2[int, string](), variant.WithFeatures(options.FeatureNoBackup))
		v, err := variant.From(s, 3)
		require.NoError(t, err)

		err = variant.Emplace(v, func(p *string) error { return errBuild })
		assert.ErrorIs(t, err, errBuild)
		assert.True(t, v.Valueless())
	})
}

func TestRoundTrip(t *testing.T) {
	t.Parallel()

	s := variant.Types4[int, string, float64, bool]()

	tests := []struct {
		name  string
		index int
		build func() (*variant.Variant, error)
		check func(t *testing.T, v *variant.Variant)
	}{
		{"int", 0, func() (*variant.Variant, error) { return variant.From(s, 12) },
			func(t *testing.T, v *variant.Variant) { assert.Equal(t, 12, *variant.MustGet[int](v)) }},
		{"string", 1, func() (*variant.Variant, error) { return variant.From(s, "x") },
			func(t *testing.T, v *variant.Variant) { assert.Equal(t, "x", *variant.MustGet[string](v)) }},
		{"float", 2, func() (*variant.Variant, error) { return variant.From(s, 2.5) },
			func(t *testing.T, v *variant.Variant) { assert.InDelta(t, 2.5, *variant.MustGet[float64](v), 0) }},
		{"bool", 3, func() (*variant.Variant, error) { return variant.FromAt(s, 3, true) },
			func(t *testing.T, v *variant.Variant) { assert.True(t, *variant.MustGet[bool](v)) }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			v, err := tt.build()
			require.NoError(t, err)
			assert.Equal(t, tt.index, v.Index())
			assert.Equal(t, s.TypeAt(tt.index), v.Type())
			tt.check(t, v)

			for i := range s.Len() {
				if i != tt.index {
					_, err := variant.GetAt[any](v, i)
					assert.Error(t, err)
				}
			}
		})
	}
}

func TestMove(t *testing.T) {
	t.Parallel()

	s := variant.Types2[int, string]()
	v, err := variant.From(s, "hi")
	require.NoError(t, err)
	payload := variant.MustGet[string](v)

	v2 := variant.New(s)
	require.NoError(t, v2.MoveFrom(v))

	assert.Equal(t, variant.Valueless, v.Index())
	assert.Equal(t, 1, v2.Index())
	assert.Equal(t, "hi", *variant.MustGet[string](v2))
	assert.Same(t, payload, variant.MustGet[string](v2), "the moved value keeps its identity")

	v3, err := v2.Move()
	require.NoError(t, err)
	assert.True(t, v2.Valueless())
	assert.Same(t, payload, variant.MustGet[string](v3))

	t.Run("zero variant adopts the schema", func(t *testing.T) {
		var z variant.Variant
		require.NoError(t, z.MoveFrom(v3))
		assert.Same(t, s, z.Schema())
		assert.Equal(t, "hi", *variant.MustGet[string](&z))
	})

	t.Run("moving an empty variant empties the target", func(t *testing.T) {
		dst, err := variant.From(s, 5)
		require.NoError(t, err)

		require.NoError(t, dst.MoveFrom(variant.New(s)))
		assert.True(t, dst.Valueless())
	})

	t.Run("immovable alternatives refuse to move", func(t *testing.T) {
		led := &ledger{}
		src, err := variant.From(variant.Types2[int, pinnedCounted](), pinnedCounted{newCounted(led, 1)})
		require.NoError(t, err)

		_, err = src.Move()
		assert.ErrorIs(t, err, variant.ErrUnsupported)
		assert.Equal(t, 1, src.Index())
	})

	t.Run("a failing relocation keeps the source", func(t *testing.T) {
		led := &ledger{failMove: 1}
		ms := variant.Types2[int, movable]()
		src, err := variant.From(ms, movable{name: "m", led: led})
		require.NoError(t, err)
		dst, err := variant.From(ms, 9)
		require.NoError(t, err)

		err = dst.MoveFrom(src)
		assert.ErrorIs(t, err, errMove)
		assert.Equal(t, 1, src.Index())
		assert.True(t, dst.Valueless(), "no nothrow relocation exists, the target lost its value")

		require.NoError(t, dst.MoveFrom(src))
		assert.True(t, src.Valueless())
		assert.Equal(t, "m", variant.MustGet[movable](dst).name)
	})
}

func TestCopy(t *testing.T) {
	t.Parallel()

	s := variant.Types2[int, []int]()
	v, err := variant.From(s, []int{1, 2, 3})
	require.NoError(t, err)

	c, err := v.Clone()
	require.NoError(t, err)

	assert.Equal(t, v.Index(), c.Index())
	assert.Equal(t, *variant.MustGet[[]int](v), *variant.MustGet[[]int](c))
	assert.NotSame(t, variant.MustGet[[]int](v), variant.MustGet[[]int](c))
	assert.Equal(t, []int{1, 2, 3}, *variant.MustGet[[]int](v), "source unchanged")

	t.Run("copies without a Copier are shallow", func(t *testing.T) {
		src, err := variant.From(s, []int{1, 2})
		require.NoError(t, err)
		dst, err := src.Clone()
		require.NoError(t, err)

		(*variant.MustGet[[]int](dst))[0] = 9
		assert.Equal(t, []int{9, 2}, *variant.MustGet[[]int](src), "the backing array is shared")
	})

	t.Run("copy of a valueless variant", func(t *testing.T) {
		dst, err := variant.From(s, 1)
		require.NoError(t, err)

		require.NoError(t, dst.CopyFrom(variant.New(s)))
		assert.True(t, dst.Valueless())

		var zero variant.Variant
		require.NoError(t, dst.CopyFrom(&zero))
		assert.True(t, dst.Valueless())
	})

	t.Run("copy into another alternative", func(t *testing.T) {
		dst, err := variant.From(s, 1)
		require.NoError(t, err)

		require.NoError(t, dst.CopyFrom(v))
		assert.Equal(t, 1, dst.Index())
	})
}

func TestSelfAssignment(t *testing.T) {
	t.Parallel()

	s := variant.Types2[int, string]()
	v, err := variant.From(s, "me")
	require.NoError(t, err)
	payload := variant.MustGet[string](v)

	require.NoError(t, v.CopyFrom(v))
	require.NoError(t, v.MoveFrom(v))
	assert.Same(t, payload, variant.MustGet[string](v))

	a, b := variant.New(s), variant.New(s)
	require.NoError(t, a.CopyFrom(b))
	require.NoError(t, a.MoveFrom(b))
	assert.True(t, a.Valueless())
	assert.True(t, b.Valueless())
}

func TestStrongGuarantee(t *testing.T) {
	t.Parallel()

	t.Run("failed copy into another alternative keeps the old value", func(t *testing.T) {
		t.Parallel()

		led := &ledger{}
		buf, opts := traced()
		s := variant.NewSchema(tables2[string, counted](), opts...)

		v, err := variant.From(s, "keep")
		require.NoError(t, err)

		led.failCopy = led.copies + 1
		err = variant.Assign(v, newCounted(led, 1))
		assert.ErrorIs(t, err, errCopy)
		assert.Equal(t, 0, v.Index())
		assert.Equal(t, "keep", *variant.MustGet[string](v))
		assert.Contains(t, buf.String(), "path=PathBackup")
	})

	t.Run("failed copy onto the same alternative keeps the old value", func(t *testing.T) {
		t.Parallel()

		led := &ledger{}
		s := variant.Types2[string, counted]()

		lhs, err := variant.From(s, newCounted(led, 1))
		require.NoError(t, err)
		rhs, err := variant.From(s, newCounted(led, 2))
		require.NoError(t, err)

		led.failCopy = led.copies + 1
		err = lhs.CopyFrom(rhs)
		assert.ErrorIs(t, err, errCopy)
		assert.Equal(t, 1, lhs.Index())
		assert.Equal(t, 1, variant.MustGet[counted](lhs).id)

		require.NoError(t, lhs.CopyFrom(rhs))
		assert.Equal(t, 2, variant.MustGet[counted](lhs).id)
		assert.True(t, variant.Equal(lhs, rhs))
	})
}

func TestBasicGuarantee(t *testing.T) {
	t.Parallel()

	led := &ledger{}
	buf, opts := traced()
	s := variant.NewSchema(tables2[int, pinnedCounted](), opts...)

	v, err := variant.From(s, 10)
	require.NoError(t, err)

	led.failCopy = led.copies + 1
	err = variant.Assign(v, pinnedCounted{newCounted(led, 1)})
	assert.ErrorIs(t, err, errCopy)
	assert.True(t, v.Valueless(), "no relocation path: the variant is valueless, not half built")
	assert.Contains(t, buf.String(), "path=PathValueless")

	require.NoError(t, variant.Assign(v, pinnedCounted{newCounted(led, 2)}))
	assert.Equal(t, 2, variant.MustGet[pinnedCounted](v).id)
}

func TestDestroyOnce(t *testing.T) {
	t.Parallel()

	led := &ledger{}
	s := variant.Types2[int, counted]()

	original := newCounted(led, 1)
	v, err := variant.From(s, original)
	require.NoError(t, err)
	assert.Equal(t, 2, led.live)

	c, err := v.Clone()
	require.NoError(t, err)
	assert.Equal(t, 3, led.live)

	require.NoError(t, variant.Assign(v, original))
	assert.Equal(t, 3, led.live, "copy assignment destroys what it overwrites")

	m, err := c.Move()
	require.NoError(t, err)
	assert.Equal(t, 3, led.live, "moves neither copy nor destroy")

	require.NoError(t, variant.Assign(v, 1))
	m.Reset()
	m.Reset()
	assert.Equal(t, 1, led.live)
	assert.Equal(t, 3, led.destroyed)
}

func TestAssign(t *testing.T) {
	t.Parallel()

	t.Run("exact type", func(t *testing.T) {
		t.Parallel()

		v := variant.New(variant.Types2[int, string]())
		require.NoError(t, variant.Assign(v, "a"))
		require.NoError(t, variant.Assign(v, "b"))
		assert.Equal(t, "b", *variant.MustGet[string](v))

		assert.ErrorIs(t, variant.Assign(v, 1.5), variant.ErrNoAlternative)
	})

	t.Run("assignable to an interface alternative", func(t *testing.T) {
		t.Parallel()

		v := variant.New(variant.Types2[fmt.Stringer, int]())
		require.NoError(t, variant.Assign(v, name("bob")))
		assert.Equal(t, 0, v.Index())
		assert.Equal(t, "bob", (*variant.MustGet[fmt.Stringer](v)).String())

		strict := variant.NewSchema(tables2[fmt.Stringer, int](), variant.WithFeatures(options.FeatureNone))
		assert.ErrorIs(t, variant.Assign(variant.New(strict), name("bob")), variant.ErrNoAlternative)
	})

	t.Run("ambiguous conversion", func(t *testing.T) {
		t.Parallel()

		v := variant.New(variant.Types2[fmt.Stringer, any]())
		assert.ErrorIs(t, variant.Assign(v, name("x")), variant.ErrAmbiguousAlternative)
	})

	t.Run("duplicate alternatives by index", func(t *testing.T) {
		t.Parallel()

		v := variant.New(variant.Types2[int, int]())
		assert.ErrorIs(t, variant.Assign(v, 1), variant.ErrAmbiguousAlternative)

		require.NoError(t, variant.AssignAt(v, 1, 5))
		assert.Equal(t, 1, v.Index())
		assert.Equal(t, 5, *variant.MustGetAt[int](v, 1))

		_, err := variant.Get[int](v)
		assert.ErrorIs(t, err, variant.ErrAmbiguousAlternative)

		_, err = variant.GetAt[int](v, 0)
		assert.ErrorIs(t, err, variant.ErrBadAccess)
	})

	t.Run("zero variant has no schema", func(t *testing.T) {
		t.Parallel()

		var v variant.Variant
		assert.ErrorIs(t, variant.Assign(&v, 1), variant.ErrNoSchema)
		assert.ErrorIs(t, variant.Emplace[int](&v, nil), variant.ErrNoSchema)
	})

	t.Run("mixing schemas", func(t *testing.T) {
		t.Parallel()

		a, err := variant.From(variant.Types2[int, string](), 1)
		require.NoError(t, err)
		b, err := variant.From(variant.Types2[string, int](), 1)
		require.NoError(t, err)

		assert.ErrorIs(t, a.CopyFrom(b), variant.ErrSchemaMismatch)
		assert.ErrorIs(t, a.MoveFrom(b), variant.ErrSchemaMismatch)
		assert.ErrorIs(t, variant.Swap(a, b), variant.ErrSchemaMismatch)

		same := variant.NewSchema(tables2[int, string]())
		c, err := variant.From(same, "ok")
		require.NoError(t, err)
		require.NoError(t, a.CopyFrom(c))
		assert.Equal(t, "ok", *variant.MustGet[string](a))
	})
}

func TestBadAccessError(t *testing.T) {
	t.Parallel()

	v, err := variant.From(variant.Types2[int, string](), 3)
	require.NoError(t, err)

	_, err = variant.Get[string](v)
	require.ErrorIs(t, err, variant.ErrBadAccess)

	var bad *variant.BadAccessError
	require.ErrorAs(t, err, &bad)
	assert.Equal(t, reflect.TypeFor[string](), bad.Requested)
	assert.Equal(t, 0, bad.ActiveIndex)
	assert.Equal(t, "bad variant access: requested string, variant holds int at 0", err.Error())

	_, err = variant.GetAt[string](v, 1)
	assert.EqualError(t, err, "bad variant access: requested string at 1, variant holds int at 0")

	v.Reset()
	_, err = variant.Get[int](v)
	assert.EqualError(t, err, "bad variant access: requested int, variant is valueless")

	require.NoError(t, variant.Assign(v, 1))
	_, err = variant.Get[variant.Empty](v)
	assert.ErrorIs(t, err, variant.ErrBadAccess)

	assert.Panics(t, func() { variant.MustGet[string](v) })
	assert.Panics(t, func() { variant.MustGetAt[int](v, 9) })
}

func TestHoldsAlternative(t *testing.T) {
	t.Parallel()

	v, err := variant.From(variant.Types2[int, string](), "s")
	require.NoError(t, err)

	assert.True(t, variant.HoldsAlternative[string](v))
	assert.False(t, variant.HoldsAlternative[int](v))
	assert.False(t, variant.HoldsAlternative[variant.Empty](v))
	assert.False(t, variant.HoldsAlternative[float32](v))
}

func TestSchema(t *testing.T) {
	t.Parallel()

	s := variant.Types3[int, string, error]()
	assert.Same(t, s, variant.Types3[int, string, error](), "default schemas are shared")
	assert.Equal(t, 3, s.Len())
	assert.Nil(t, s.TypeAt(3))
	assert.Equal(t, "variant(int, string, error)", s.String())
	assert.Equal(t, []reflect.Type{reflect.TypeFor[int](), reflect.TypeFor[string](), reflect.TypeFor[error]()}, s.Types())

	assert.Panics(t, func() { variant.NewSchema(nil) })
	assert.Panics(t, func() { variant.Types2[int, variant.Empty]() })
}

func TestString(t *testing.T) {
	t.Parallel()

	v, err := variant.From(variant.Types2[int, string](), "hi")
	require.NoError(t, err)
	assert.Equal(t, "variant[1 string](hi)", v.String())

	v.Reset()
	assert.Equal(t, "variant(valueless)", v.String())
}

func TestDump(t *testing.T) {
	t.Parallel()

	type point struct{ X, Y int }

	v, err := variant.From(variant.Types2[int, point](), point{1, 2})
	require.NoError(t, err)

	out := variant.Dump(v)
	assert.Contains(t, out, "index=1")
	assert.Contains(t, out, "X: (int) 1")

	spew.Dump(variant.MustGet[point](v))
}

func ExampleVariant_MoveFrom() {
	s := variant.Types2[int, string]()

	v, _ := variant.From(s, "hi")
	v2 := variant.New(s)
	_ = v2.MoveFrom(v)

	fmt.Println(v.Index(), v2.Index(), *variant.MustGet[string](v2))
	// Output:
	// -1 1 hi
}

func ExampleDump() {
	v, _ := variant.From(variant.Types2[int, string](), 7)
	fmt.Print(variant.Dump(v))

	v.Reset()
	fmt.Print(variant.Dump(v))
	// Output:
	// variant(int, string) index=0 (*int)(7)
	// variant(int, string) index=-1 <valueless>
}
