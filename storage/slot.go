package storage

import "fmt"

// Slot owns at most one boxed alternative.
type Slot struct {
	box any
}

func (s *Slot) Alive() bool {
	return s.box != nil
}

// Box returns the live box, or nil.
func (s *Slot) Box() any {
	return s.box
}

// Construct places box into an empty slot.
func (s *Slot) Construct(box any) {
	if box == nil {
		panic("storage: constructing a nil box")
	}

	if s.box != nil {
		panic(fmt.Sprintf("storage: slot already holds %T", s.box))
	}

	s.box = box
}

// Release hands the box out without destroying it, leaving the slot empty.
func (s *Slot) Release() any {
	box := s.box
	s.box = nil

	return box
}

// Destroy releases the box and passes it to destroy. It is a no-op on an empty slot.
func (s *Slot) Destroy(destroy func(box any)) {
	if s.box == nil {
		return
	}

	destroy(s.Release())
}

// Exchange swaps the boxes of two slots.
func (s *Slot) Exchange(other *Slot) {
	s.box, other.box = other.box, s.box
}
