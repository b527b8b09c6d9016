package ir

import "github.com/davecgh/go-spew/spew"

// dumpConfig renders IR values for diagnostics: no pointer addresses and
// no Stringer calls, so enums show their encoded values.
var dumpConfig = spew.ConfigState{
	Indent:                  "  ",
	DisablePointerAddresses: true,
	DisableCapacities:       true,
	DisableMethods:          true,
	SortKeys:                true,
}

// Dump returns a multi-line rendering of any IR value, typically an
// Instruction, for diagnostic output.
func Dump(v any) string {
	return dumpConfig.Sdump(v)
}
