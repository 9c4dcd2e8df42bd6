// Package variant implements a discriminated union: a Variant holds at most one
// value chosen from a closed, ordered set of alternative types (its Schema)
// together with the index of the active alternative.
//
// A zero or freshly created Variant is empty: Index reports -1 and only
// Get[Empty] succeeds. Values are owned by the variant; copy one with Clone or
// CopyFrom and transfer one with Move or MoveFrom, which leaves the source empty.
// Assigning a Variant struct by value would alias its storage.
//
// Changing the active alternative picks one of the engine paths (see PathEnum)
// from the failure characteristics recorded in the lifecycle table of the
// target type:
//
//   - PathAssign: the same alternative is active, assign onto it.
//   - PathDirect: construction cannot fail, destroy and construct in place.
//   - PathBackup: construction may fail but the value relocates freely, so it is
//     built in backup storage first; a failure leaves the variant untouched.
//   - PathValueless: nothing offers a failure-free path; a failure after the
//     old value is destroyed leaves the variant empty.
//
// Failures of the alternatives' own hooks are returned unchanged.
package variant
