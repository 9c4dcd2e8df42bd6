package visit

import (
	"errors"
	"path"
	"reflect"
	"runtime"
	"strings"
	"tagged-variant/internal/common"
	"tagged-variant/utils"
	"tagged-variant/variant"
)

var (
	ErrIsNotACase         = errors.New("provided function is not a recognizable visitor case")
	ErrCaseIsNotAFunction = errors.New("provided case is not a function")
	ErrDoublePointer      = errors.New("visitor case does not support double pointers")
	ErrBadParameter       = errors.New("visitor case parameter must be a pointer or an interface")
	ErrResultMismatch     = errors.New("visitor case returns a different type than the visitor")
	ErrArityMismatch      = errors.New("visitor cases take different numbers of operands")
)

var (
	emptyPtrType = reflect.TypeFor[*variant.Empty]()
	errorType    = reflect.TypeFor[error]()
)

// Case is one overload of a visitor.
type Case struct {
	Params       []reflect.Type
	Result       reflect.Type
	PackageAlias string
	Name         string
	HasErr       bool

	fn reflect.Value
}

// ParseCase inspects fn and returns a Case if it is a valid visitor case
// producing result.
//
// Supports interfaces:
//   - func(*A, *B, ...) R
//   - func(*A, *B, ...) (R, error)
//
// A *A parameter receives the live value of alternative A, *variant.Empty
// receives the empty marker. An interface parameter receives the value of any
// alternative implementing it, directly or through its pointer.
func ParseCase(fn any, result reflect.Type) (Case, error) {
	fnVal := reflect.ValueOf(fn)
	if !fnVal.IsValid() || fnVal.Kind() != reflect.Func {
		return Case{}, ErrCaseIsNotAFunction
	}

	fnType := fnVal.Type()
	if fnType.NumIn() == 0 || fnType.IsVariadic() {
		return Case{}, ErrIsNotACase
	}

	params := make([]reflect.Type, fnType.NumIn())
	for i := range params {
		param := fnType.In(i)
		switch {
		case param.Kind() == reflect.Ptr && param.Elem().Kind() == reflect.Ptr:
			return Case{}, ErrDoublePointer
		case param.Kind() != reflect.Ptr && param.Kind() != reflect.Interface:
			return Case{}, ErrBadParameter
		}

		params[i] = param
	}

	fnPC := runtime.FuncForPC(fnVal.Pointer())
	alias, name := utils.Unpack2(strings.SplitN(fnPC.Name(), ".", 2))

	c := Case{
		Params:       params,
		Result:       result,
		Name:         name,
		PackageAlias: utils.Second(path.Split(alias)),
		fn:           fnVal,
	}

	switch fnType.NumOut() {
	default:
		return Case{}, ErrIsNotACase

	case 1:
	case 2:
		if !isError(fnType.Out(1)) {
			return Case{}, ErrIsNotACase
		}

		c.HasErr = true
	}

	if !fnType.Out(0).AssignableTo(result) {
		return Case{}, ErrResultMismatch
	}

	return c, nil
}

func (c *Case) Arity() int {
	return len(c.Params)
}

// String renders the case as package.Name(params).
func (c *Case) String() string {
	return c.PackageAlias + "." + c.Name + common.TypeList(c.Params)
}

// binding says how an operand reaches a parameter, ordered by specificity.
type binding int

const (
	bindNone         binding = iota
	bindAny                  // value passed as any
	bindInterface            // value passed as a non-empty interface
	bindInterfacePtr         // pointer to the value passed as a non-empty interface
	bindExact                // pointer to the value of exactly the parameter's type
)

func (b binding) score() int {
	switch b {
	default:
		return 0
	case bindAny:
		return 1
	case bindInterface, bindInterfacePtr:
		return 2
	case bindExact:
		return 3
	}
}

// bind matches an alternative of type alt, nil for the empty state, to param.
func bind(param, alt reflect.Type) binding {
	if alt == nil {
		if param == emptyPtrType {
			return bindExact
		}

		return bindNone
	}

	switch {
	case param.Kind() == reflect.Ptr && param.Elem() == alt:
		return bindExact
	case param.Kind() != reflect.Interface:
		return bindNone
	case param.NumMethod() == 0:
		return bindAny
	case alt.Implements(param):
		return bindInterface
	case reflect.PointerTo(alt).Implements(param):
		return bindInterfacePtr
	default:
		return bindNone
	}
}

// arg turns the boxed operand (a *T, or *variant.Empty) into the argument.
func (b binding) arg(box any) reflect.Value {
	ptr := reflect.ValueOf(box)
	switch b {
	case bindAny, bindInterface:
		return ptr.Elem()
	default:
		return ptr
	}
}

func isError(t reflect.Type) bool {
	if t == nil {
		return false
	}

	return t.Implements(errorType)
}
