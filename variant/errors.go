package variant

import (
	"errors"
	"fmt"
	"reflect"
	"tagged-variant/internal/common"
)

var (
	ErrBadAccess            = errors.New("bad variant access")
	ErrValuelessVisit       = errors.New("visit of a valueless variant")
	ErrNoSchema             = errors.New("variant has no schema")
	ErrNoAlternative        = errors.New("type is not an alternative of the variant")
	ErrAmbiguousAlternative = errors.New("type matches more than one alternative")
	ErrSchemaMismatch       = errors.New("variants have different alternatives")
	ErrIndexOutOfRange      = errors.New("alternative index out of range")
	ErrUnsupported          = errors.New("alternative does not support the operation")
)

// BadAccessError reports a read of an alternative that is not the active one.
type BadAccessError struct {
	Requested      reflect.Type
	RequestedIndex int // Valueless when requested by type
	Active         reflect.Type
	ActiveIndex    int
}

func (e *BadAccessError) Error() string {
	requested := common.TypeStr(e.Requested)
	if e.RequestedIndex != Valueless {
		requested = fmt.Sprintf("%s at %d", requested, e.RequestedIndex)
	}

	if e.ActiveIndex == Valueless {
		return fmt.Sprintf("%s: requested %s, variant is valueless", ErrBadAccess, requested)
	}

	return fmt.Sprintf("%s: requested %s, variant holds %s at %d",
		ErrBadAccess, requested, common.TypeStr(e.Active), e.ActiveIndex)
}

func (e *BadAccessError) Unwrap() error {
	return ErrBadAccess
}

func unsupported(op string, t reflect.Type) error {
	return fmt.Errorf("%w: %s of %s", ErrUnsupported, op, common.TypeStr(t))
}

func noAlternative(t reflect.Type) error {
	return fmt.Errorf("%w: %s", ErrNoAlternative, common.TypeStr(t))
}

func ambiguous(t reflect.Type, indices []int) error {
	return fmt.Errorf("%w: %s at %v", ErrAmbiguousAlternative, common.TypeStr(t), indices)
}
