package variant

import (
	"tagged-variant/lifecycle"
	"tagged-variant/options"
	"tagged-variant/storage"
)

// construction describes how to make alternative index the active one.
type construction struct {
	index     int
	table     *lifecycle.Table
	guarantee lifecycle.Guarantee // of build

	// build returns a fresh box. It must leave every other variant untouched
	// when it fails.
	build func() (any, error)

	// assign overwrites the live value of the same alternative. A nil assign
	// rebuilds the value even when the alternative is already active.
	assign func(dst any) error
}

func (v *Variant) choose(c *construction) PathEnum {
	switch {
	case v.tag.Index() == c.index && c.assign != nil:
		return PathAssign
	case v.tag.IsValueless(), c.guarantee.Nothrow():
		return PathDirect
	case c.table.HandsOff() && !v.schema.features.Has(options.FeatureNoBackup):
		return PathBackup
	default:
		return PathValueless
	}
}

// apply runs the assign-or-emplace decision tree. The tag changes only after
// the new value is in the slot.
func (v *Variant) apply(c construction) error {
	path := v.choose(&c)
	v.schema.trace(path, v.tag.Index(), c.index, c.table.Type)

	switch path {
	case PathAssign:
		return c.assign(v.slot.Box())

	case PathBackup:
		box, err := c.build()
		if err != nil {
			return err
		}

		var backup storage.Backup
		backup.Stage(box, storage.TagOf(c.index))

		v.destroy()
		v.tag = backup.Commit(&v.slot, handOff)

		return nil

	default:
		v.destroy()

		box, err := c.build()
		if err != nil {
			return err
		}

		v.slot.Construct(box)
		v.tag = storage.TagOf(c.index)

		return nil
	}
}

func handOff(box any) any {
	return box
}

// destroy ends the life of the active value. The variant is valueless before
// the alternative's Destroy runs.
func (v *Variant) destroy() {
	if v.tag.IsValueless() {
		return
	}

	table := v.table()
	v.tag = 0
	v.slot.Destroy(table.Destroy)
}

// release gives up the active box without destroying it, after it was moved out.
func (v *Variant) release() {
	v.tag = 0
	v.slot.Release()
}

// adopt makes v compatible with s, taking s when v has no schema yet.
func (v *Variant) adopt(s *Schema) error {
	switch {
	case s == nil:
		return nil
	case v.schema == nil:
		v.schema = s
		return nil
	case !v.schema.SameAlternatives(s):
		return ErrSchemaMismatch
	default:
		return nil
	}
}
