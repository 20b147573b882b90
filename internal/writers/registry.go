// internal/writers/registry.go
package writers

import (
	"fmt"
	"io"
	"sort"

	"misclass/pkg/api"
)

// Options are the presentation switches shared by all formats.
type Options struct {
	Header bool // text: print the TSV header row
	Pretty bool // text: sketch each broken-bone candidate after the table
}

// ReportWriterFunc serializes one report.
type ReportWriterFunc func(w io.Writer, r api.ReportV1, o Options) error

// ReportWriters maps format → handler. Register in init() blocks.
var ReportWriters = map[string]ReportWriterFunc{}

// RegisterReport adds or replaces (last wins) the writer for format.
func RegisterReport(format string, fn ReportWriterFunc) { ReportWriters[format] = fn }

// Formats lists registered formats in sorted order.
func Formats() []string {
	out := make([]string, 0, len(ReportWriters))
	for f := range ReportWriters {
		out = append(out, f)
	}
	sort.Strings(out)
	return out
}

// WriteReport dispatches to the writer registered for format.
func WriteReport(format string, w io.Writer, r api.ReportV1, o Options) error {
	fn, ok := ReportWriters[format]
	if !ok {
		return fmt.Errorf("unknown report format %q (no writer registered)", format)
	}
	return fn(w, r, o)
}
