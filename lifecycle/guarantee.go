package lifecycle

//go:generate go tool stringer -type=Guarantee -output=guarantee_string.go

// Guarantee is the failure characteristic of one lifecycle operation.
type Guarantee int

const (
	_ Guarantee = iota // skip zero value, an unset guarantee is invalid

	GuaranteeNothrow     // the operation never fails
	GuaranteeMayFail     // the operation may return an error or panic
	GuaranteeUnsupported // the alternative does not provide the operation

	// GuaranteeTotal is a constant that represents the total number of guarantees defined
	GuaranteeTotal = int(iota)
)

func (g Guarantee) Nothrow() bool {
	return g == GuaranteeNothrow
}

func (g Guarantee) Supported() bool {
	return g == GuaranteeNothrow || g == GuaranteeMayFail
}

// And returns the weaker of two guarantees, for operations composed of both.
func (g Guarantee) And(other Guarantee) Guarantee {
	return max(g, other)
}
