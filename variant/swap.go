package variant

import (
	"errors"
	"tagged-variant/lifecycle"
	"tagged-variant/storage"
)

// Swap exchanges the contents of a and b.
//
// When both hold the same alternative its Swapper hook is used, or the boxes
// are exchanged. Otherwise the values are relocated through backup storage;
// if a relocation fails at most one of the two variants ends up valueless.
func Swap(a, b *Variant) error {
	if a == b {
		return nil
	}

	if !a.schema.SameAlternatives(b.schema) {
		return ErrSchemaMismatch
	}

	if a.schema == nil {
		a.schema = b.schema
	}

	if b.schema == nil {
		b.schema = a.schema
	}

	if a.tag.IsValueless() && b.tag.IsValueless() {
		return nil
	}

	if a.tag == b.tag {
		return swapSame(a, b)
	}

	return swapRelocating(a, b)
}

func swapSame(a, b *Variant) error {
	table := a.table()

	switch {
	case table.Swap != nil:
		a.schema.trace(PathExchange, a.tag.Index(), b.tag.Index(), table.Type)
		return table.Swap(a.slot.Box(), b.slot.Box())
	case table.HandsOff():
		a.schema.trace(PathExchange, a.tag.Index(), b.tag.Index(), table.Type)
		a.slot.Exchange(&b.slot)
		return nil
	default:
		return swapRelocating(a, b)
	}
}

// tableOrNil returns the table of the active alternative, or nil if valueless.
func (v *Variant) tableOrNil() *lifecycle.Table {
	if v.tag.IsValueless() {
		return nil
	}

	return v.table()
}

func handsOffOrEmpty(t *lifecycle.Table) bool {
	return t == nil || t.HandsOff()
}

func swapRelocating(a, b *Variant) error {
	ta, tb := a.tableOrNil(), b.tableOrNil()

	for _, t := range []*lifecycle.Table{ta, tb} {
		if t != nil && !t.MoveGuarantee.Supported() {
			return unsupported("swap", t.Type)
		}
	}

	if handsOffOrEmpty(ta) && handsOffOrEmpty(tb) {
		a.schema.trace(PathExchange, a.tag.Index(), b.tag.Index(), nil)
		a.slot.Exchange(&b.slot)
		a.tag, b.tag = b.tag, a.tag

		return nil
	}

	a.schema.trace(PathRelocate, a.tag.Index(), b.tag.Index(), nil)

	var backup storage.Backup

	// a -> backup; on failure nothing has changed
	if ta != nil {
		moved, err := ta.Move(a.slot.Box())
		if err != nil {
			return err
		}

		backup.Stage(moved, a.tag)
		a.release()
	}

	// b -> a; on failure put a's value back
	if tb != nil {
		moved, err := tb.Move(b.slot.Box())
		if err != nil {
			if rerr := restore(a, ta, &backup); rerr != nil {
				return errors.Join(err, rerr)
			}

			return err
		}

		a.slot.Construct(moved)
		a.tag = b.tag
		b.release()
	}

	// backup -> b; on failure b stays valueless
	return restore(b, ta, &backup)
}

// restore relocates the staged value of backup into the valueless variant v,
// destroying it if the relocation fails.
func restore(v *Variant, t *lifecycle.Table, backup *storage.Backup) error {
	if !backup.Staged() {
		return nil
	}

	box, tag := backup.Take()

	moved, err := t.Move(box)
	if err != nil {
		t.Destroy(box)
		return err
	}

	v.slot.Construct(moved)
	v.tag = tag

	return nil
}
