package storage

// Backup is a secondary slot that lives for a single engine call. It owns at
// most one staged box, symmetric to Slot.
type Backup struct {
	slot Slot
	tag  Tag
}

// Stage places a fully built box together with the tag it will carry.
func (b *Backup) Stage(box any, tag Tag) {
	b.slot.Construct(box)
	b.tag = tag
}

func (b *Backup) Staged() bool {
	return b.slot.Alive()
}

func (b *Backup) Tag() Tag {
	return b.tag
}

// Box returns the staged box, or nil.
func (b *Backup) Box() any {
	return b.slot.Box()
}

// Commit relocates the staged box into primary and returns its tag. relocate
// must not fail: the primary slot has already given up its previous value.
func (b *Backup) Commit(primary *Slot, relocate func(box any) any) Tag {
	primary.Construct(relocate(b.slot.Release()))

	tag := b.tag
	b.tag = 0

	return tag
}

// Take releases the staged box and tag to the caller, who becomes responsible for it.
func (b *Backup) Take() (any, Tag) {
	tag := b.tag
	b.tag = 0

	return b.slot.Release(), tag
}

// Discard destroys whatever is still staged.
func (b *Backup) Discard(destroy func(box any)) {
	b.slot.Destroy(destroy)
	b.tag = 0
}
