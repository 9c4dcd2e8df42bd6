package common

import (
	"reflect"
	"strconv"
)

const (
	UnknownStr   = "unknown"
	ValuelessStr = "<valueless>"
)

// TypeStr renders t for messages: fully qualified named types, builtin
// spelling for basics. A nil type is the valueless state.
func TypeStr(t reflect.Type) string {
	if t == nil {
		return ValuelessStr
	}

	switch t.Kind() {
	case reflect.Ptr:
		return "*" + TypeStr(t.Elem())
	case reflect.Slice:
		return "[]" + TypeStr(t.Elem())
	case reflect.Array:
		return "[" + strconv.Itoa(t.Len()) + "]" + TypeStr(t.Elem())
	case reflect.Map:
		return "map[" + TypeStr(t.Key()) + "]" + TypeStr(t.Elem())
	default:
		if t.PkgPath() == "" || t.Name() == "" {
			return t.String()
		}
		return t.PkgPath() + "." + t.Name()
	}
}

// TypeList renders a parenthesised, comma separated list of types.
func TypeList(types []reflect.Type) string {
	s := "("
	for i, t := range types {
		if i > 0 {
			s += ", "
		}
		s += TypeStr(t)
	}

	return s + ")"
}
