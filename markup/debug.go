package markup

import (
	"fmt"

	"stext/attr"
	"stext/utils/debug"
)

// Dump renders the resolved buffer as an indented tree for debug reports:
// the plain text first, then every attribute run with its keys and values.
func Dump(buf *attr.Buffer) string {
	tw := debug.NewTreeWriter()
	tw.TextBlock(0, "text", buf.String())
	tw.Line(0, "runs: %d", len(buf.Runs()))
	for _, run := range buf.Runs() {
		tw.TextBlock(1, fmt.Sprintf("[%d,%d)", run.Start, run.End), buf.Slice(attr.Range{Start: run.Start, End: run.End}))
		for _, k := range run.Attrs.Keys() {
			tw.Line(2, "%s: %v", k, run.Attrs[k])
		}
	}
	return tw.String()
}
