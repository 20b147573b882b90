// Package pretty draws ASCII sketches of broken-bone candidates: both
// alignments on a shared, scaled contig axis with the overlap marked.
package pretty

import (
	"fmt"
	"strconv"
	"strings"

	"misclass/pkg/api"
)

// Options control the ASCII rendering.
type Options struct {
	// Track width in columns. If <=0, use default (60).
	Width int

	// Mark the overlap with a caret track under the alignments.
	ShowCaret bool

	// Glyphs
	BarGlyph   string // default "="
	CaretGlyph string // default "^"
	DotGlyph   string // default "."
}

// DefaultOptions is the look used by --pretty.
var DefaultOptions = Options{
	Width:      60,
	ShowCaret:  true,
	BarGlyph:   "=",
	CaretGlyph: "^",
	DotGlyph:   ".",
}

const (
	linePrefix = "# "
	labelWidth = 7
)

func (o Options) withDefaults() Options {
	if o.Width <= 1 {
		o.Width = DefaultOptions.Width
	}
	if o.BarGlyph == "" {
		o.BarGlyph = DefaultOptions.BarGlyph
	}
	if o.CaretGlyph == "" {
		o.CaretGlyph = DefaultOptions.CaretGlyph
	}
	if o.DotGlyph == "" {
		o.DotGlyph = DefaultOptions.DotGlyph
	}
	return o
}

// scale an offset into the printed width (endpoint-preserving)
func scalePos(off, interior, inner int) int {
	if interior <= 1 || inner <= 1 {
		return 0
	}
	if off < 0 {
		off = 0
	}
	if off > interior-1 {
		off = interior - 1
	}
	return (off * (inner - 1)) / (interior - 1)
}

func span(a api.AlignmentV1) (lo, hi int) {
	return min(a.ContigStart, a.ContigEnd), max(a.ContigStart, a.ContigEnd)
}

// track draws one alignment; the arrow head points along its strand.
func track(a api.AlignmentV1, lo, interior, inner int, bar string) string {
	s, e := span(a)
	cs, ce := scalePos(s-lo, interior, inner), scalePos(e-lo, interior, inner)
	row := make([]string, inner)
	for i := range row {
		row[i] = " "
	}
	for i := cs; i <= ce; i++ {
		row[i] = bar
	}
	if a.Strand == "rc" {
		row[cs] = "<"
	} else {
		row[ce] = ">"
	}
	return strings.TrimRight(strings.Join(row, ""), " ")
}

func label(s string) string { return fmt.Sprintf("%-*s", labelWidth, s) }

// RenderCandidate sketches one candidate.
func RenderCandidate(c api.CandidateV1, opt Options) string {
	opt = opt.withDefaults()
	m := c.Misassembly
	fLo, fHi := span(m.First)
	sLo, sHi := span(m.Second)
	lo, hi := min(fLo, sLo), max(fHi, sHi)
	interior := hi - lo + 1
	inner := min(opt.Width, interior)
	if inner < 2 {
		inner = 2
	}

	var b strings.Builder
	fmt.Fprintf(&b, "%s%s %s overlap %d bp\n", linePrefix, m.Contig, m.Kind, c.Overlap)

	loS, hiS := strconv.Itoa(lo), strconv.Itoa(hi)
	gap := max(inner-len(loS)-len(hiS), 1)
	fmt.Fprintf(&b, "%s%s%s%s%s\n", linePrefix, label("contig"), loS, strings.Repeat(opt.DotGlyph, gap), hiS)

	fmt.Fprintf(&b, "%s%s%s\n", linePrefix, label("first"), track(m.First, lo, interior, inner, opt.BarGlyph))
	fmt.Fprintf(&b, "%s%s%s\n", linePrefix, label("second"), track(m.Second, lo, interior, inner, opt.BarGlyph))

	if opt.ShowCaret && c.Overlap > 0 {
		cs := scalePos(sLo-lo, interior, inner)
		ce := scalePos(fHi-lo, interior, inner)
		if ce >= cs {
			fmt.Fprintf(&b, "%s%s%s\n", linePrefix, strings.Repeat(" ", labelWidth+cs), strings.Repeat(opt.CaretGlyph, ce-cs+1))
		}
	}

	if c.Narrative != "" {
		fmt.Fprintf(&b, "%s%s\n", linePrefix, c.Narrative)
	}
	// spacer
	b.WriteString("#\n")
	return b.String()
}
