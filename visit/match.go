package visit

import (
	"fmt"
	"reflect"
	"slices"
	"tagged-variant/internal/common"
	"tagged-variant/variant"
)

// Match2 calls onA or onB with the live value of a two-alternative variant.
func Match2[A, B, R any](v *variant.Variant, onA func(*A) R, onB func(*B) R) (R, error) {
	var zero R
	if err := conforms(v, typeOf[A](), typeOf[B]()); err != nil {
		return zero, err
	}

	switch v.Index() {
	case 0:
		return onA(variant.MustGetAt[A](v, 0)), nil
	case 1:
		return onB(variant.MustGetAt[B](v, 1)), nil
	default:
		return zero, variant.ErrValuelessVisit
	}
}

// Match3 is Match2 for three alternatives.
func Match3[A, B, C, R any](v *variant.Variant, onA func(*A) R, onB func(*B) R, onC func(*C) R) (R, error) {
	var zero R
	if err := conforms(v, typeOf[A](), typeOf[B](), typeOf[C]()); err != nil {
		return zero, err
	}

	switch v.Index() {
	case 0:
		return onA(variant.MustGetAt[A](v, 0)), nil
	case 1:
		return onB(variant.MustGetAt[B](v, 1)), nil
	case 2:
		return onC(variant.MustGetAt[C](v, 2)), nil
	default:
		return zero, variant.ErrValuelessVisit
	}
}

func typeOf[T any]() reflect.Type {
	return reflect.TypeFor[T]()
}

// conforms checks that v has exactly the alternatives types, in order.
func conforms(v *variant.Variant, types ...reflect.Type) error {
	s := v.Schema()
	switch {
	case s == nil:
		return variant.ErrNoSchema
	case !slices.Equal(s.Types(), types):
		return fmt.Errorf("%w: %s and match%s", variant.ErrSchemaMismatch, s, common.TypeList(types))
	default:
		return nil
	}
}
