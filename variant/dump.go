package variant

import (
	"fmt"
	"tagged-variant/internal/common"

	"github.com/davecgh/go-spew/spew"
)

var dumper = spew.ConfigState{
	Indent:                  "  ",
	DisablePointerAddresses: true,
	DisableCapacities:       true,
	SortKeys:                true,
}

// Dump renders the schema, the discriminant and a deep dump of the active value.
func Dump(v *Variant) string {
	header := fmt.Sprintf("%s index=%d", v.schema, v.tag.Index())
	if v.schema == nil {
		header = fmt.Sprintf("variant() index=%d", v.tag.Index())
	}

	if v.tag.IsValueless() {
		return header + " " + common.ValuelessStr + "\n"
	}

	return header + " " + dumper.Sdump(v.slot.Box())
}
