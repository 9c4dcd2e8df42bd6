package variant

//go:generate go tool stringer -type=PathEnum -output=path_string.go

// PathEnum names the strategy the engine used for one mutation.
type PathEnum int

const (
	PathUnknown   PathEnum = iota
	PathAssign             // assign onto the live value of the same alternative
	PathDirect             // destroy, then construct in place; construction cannot fail
	PathBackup             // construct in backup storage, then destroy and relocate
	PathValueless          // destroy, then construct; a failure leaves the variant valueless
	PathExchange           // swap through the alternative's hook or by exchanging boxes
	PathRelocate           // swap by three relocations through backup storage

	// PathTotal is a constant that represents the total number of paths defined
	PathTotal = int(iota)
)

// Strong reports whether a failure on this path leaves the variant unchanged.
func (p PathEnum) Strong() bool {
	switch p {
	default:
		return false
	case PathBackup, PathExchange:
		return true
	}
}
