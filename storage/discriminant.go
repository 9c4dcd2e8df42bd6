package storage

import "tagged-variant/utils"

// Valueless is the index reported when no alternative is alive.
const Valueless = -1

// Tag records which alternative occupies a slot. The zero Tag means none, so a
// zero-value variant is empty without any initialisation.
type Tag uint32

// TagOf returns the tag of the alternative at index i, or the zero Tag for Valueless.
func TagOf(i int) Tag {
	if i < 0 {
		return 0
	}

	return Tag(i + 1)
}

// Index returns the alternative index, or Valueless.
func (t Tag) Index() int {
	return int(t) - 1
}

func (t Tag) IsValueless() bool {
	return t == 0
}

// Valid reports whether t names one of n alternatives.
func (t Tag) Valid(n int) bool {
	return utils.InBounds(t.Index(), n)
}
