package recipebook

import (
	"fmt"
	"io"
	"path/filepath"
	"runtime"

	"github.com/davecgh/go-spew/spew"
)

// dumpConfig prints pointer fields such as ingredient amounts by value.
var dumpConfig = spew.ConfigState{
	Indent:                  "  ",
	SortKeys:                true,
	DisablePointerAddresses: true,
	DisableCapacities:       true,
}

// Dump writes v to w, prefixed with the caller's file and line.
func Dump(w io.Writer, v ...any) {
	_, file, line, _ := runtime.Caller(1)
	fmt.Fprintf(w, "%s:%d:\n", filepath.Base(file), line)
	dumpConfig.Fdump(w, v...)
}
