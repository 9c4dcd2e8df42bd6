// Package storage provides the owning slot and discriminant used by a variant.
//
// A Slot holds at most one boxed alternative (a *T stored as any). It never
// constructs or destroys anything on its own: the variant engine builds boxes,
// places them, releases them for relocation and destroys them through the
// alternative's lifecycle table.
//
// Backup is the transient secondary slot the engine stages a new value in when
// building it in place could lose the current one.
package storage
