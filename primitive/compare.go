package primitive

import (
	"cmp"
	"reflect"
	"time"
)

// Ordered reports whether values of rtype have a natural total order.
func Ordered(rtype reflect.Type) bool {
	return FromReflectType(rtype) != 0
}

// Compare orders two values of the same primitive type, returning -1, 0 or +1.
// ok is false when the type has no primitive kind.
//
// NaN floats sort before every other float and compare equal to each other,
// so the order stays total.
func Compare(a, b reflect.Value) (c int, ok bool) {
	kind := FromReflectType(a.Type())
	switch {
	case kind == 0:
		return 0, false
	case kind == KindTime:
		return a.Interface().(time.Time).Compare(b.Interface().(time.Time)), true
	case kind == KindPrimitiveEnum:
		return compareByReflectKind(a, b), true
	case kind.IsSigned():
		return cmp.Compare(a.Int(), b.Int()), true
	case kind.IsUnsigned():
		return cmp.Compare(a.Uint(), b.Uint()), true
	case kind.IsFloat():
		return cmp.Compare(a.Float(), b.Float()), true
	case kind == KindBool:
		return compareBool(a.Bool(), b.Bool()), true
	case kind == KindString:
		return cmp.Compare(a.String(), b.String()), true
	}

	return 0, false
}

func compareByReflectKind(a, b reflect.Value) int {
	switch a.Kind() {
	default:
		panic("primitive enum of unexpected reflect kind: " + a.Kind().String())
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return cmp.Compare(a.Int(), b.Int())
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return cmp.Compare(a.Uint(), b.Uint())
	case reflect.Bool:
		return compareBool(a.Bool(), b.Bool())
	case reflect.String:
		return cmp.Compare(a.String(), b.String())
	}
}

func compareBool(a, b bool) int {
	switch {
	case a == b:
		return 0
	case !a:
		return -1
	default:
		return 1
	}
}
