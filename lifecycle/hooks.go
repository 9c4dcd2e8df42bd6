package lifecycle

// The interfaces below are opt-in hooks an alternative type implements to
// change its lifecycle. A type without hooks copies and assigns by plain Go
// assignment, relocates by handing its box over and needs no destruction.

// Copier is implemented by T (value receiver) when copying may fail or must do
// more than a shallow copy. Without it a copy is plain Go assignment, so slice,
// map and pointer alternatives share what they refer to with the source.
type Copier[T any] interface {
	Copy() (T, error)
}

// Mover is implemented by T (value receiver) when relocating a value to new
// storage must rebuild it, typically because it is address sensitive. The
// moved-from value is released without Destroy.
type Mover[T any] interface {
	Move() (T, error)
}

// Immovable marks a type whose values must stay in the storage they were
// constructed in. Such an alternative has no relocation path at all.
type Immovable interface {
	Immovable()
}

// CopyAssigner is implemented by *T to assign a copy of src onto a live value.
type CopyAssigner[T any] interface {
	CopyAssign(src *T) error
}

// MoveAssigner is implemented by *T to move src onto a live value.
type MoveAssigner[T any] interface {
	MoveAssign(src *T) error
}

// Destroyer is implemented by *T to release resources. It is called exactly
// once per value the container gives up.
type Destroyer interface {
	Destroy()
}

// Swapper is implemented by *T to exchange contents with another value of the
// same type.
type Swapper[T any] interface {
	Swap(other *T) error
}

// Equaler is implemented by T to define equality. When T is also ordered, by
// Comparer or as a primitive, Equal must report true exactly when the order
// compares 0. Without an Equaler an ordered type's equality is derived from
// the order.
type Equaler[T any] interface {
	Equal(other T) bool
}

// Comparer is implemented by T to define a total order: it returns < 0 if the
// receiver is less than other, 0 if they are equal and > 0 otherwise.
type Comparer[T any] interface {
	Compare(other T) int
}
