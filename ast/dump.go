package ast

import (
	"github.com/davecgh/go-spew/spew"
)

var dumpConfig = spew.ConfigState{
	Indent:                  "  ",
	DisablePointerAddresses: true,
	DisableCapacities:       true,
	SortKeys:                true,
}

// Dump returns the debug tree of nodes, one field per line.
func Dump(nodes ...any) string {
	return dumpConfig.Sdump(nodes...)
}
