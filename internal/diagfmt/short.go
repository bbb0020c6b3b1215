package diagfmt

import (
	"fmt"
	"io"
	"strings"

	"stylint/internal/diag"
	"stylint/internal/source"
)

// Short renders diagnostics one line per finding in a stable shape suitable
// for scripting and golden tests:
//
//	<severity> <code> <path>:<line>:<col> <message>
func Short(w io.Writer, bag *diag.Bag, fs *source.FileSet, pathMode PathMode) {
	fmt.Fprint(w, FormatShort(bag, fs, pathMode))
}

// FormatShort returns the short rendering as a string, one finding per line.
// The bag is expected to be sorted; empty bags format to the empty string.
func FormatShort(bag *diag.Bag, fs *source.FileSet, pathMode PathMode) string {
	items := bag.Items()
	if len(items) == 0 {
		return ""
	}

	var b strings.Builder
	for _, d := range items {
		start, _ := fs.Resolve(d.Primary)
		fmt.Fprintf(&b, "%s %s %s:%d:%d %s\n",
			d.Severity.String(), d.Code.ID(),
			displayPath(fs, d.Primary.File, pathMode),
			start.Line, start.Col, d.Message)
	}
	return b.String()
}
