package pretty

import (
	"strings"
	"testing"

	"misclass/pkg/api"
)

func cand(first, second api.AlignmentV1, overlap int) api.CandidateV1 {
	return api.CandidateV1{
		Misassembly: api.MisassemblyV1{Contig: "NODE_1", Kind: "relocation", First: first, Second: second},
		Overlap:     overlap,
		Narrative:   "pending",
	}
}

func TestRenderCandidate_Overlap(t *testing.T) {
	c := cand(
		api.AlignmentV1{ContigStart: 1, ContigEnd: 1000, Strand: "fs"},
		api.AlignmentV1{ContigStart: 700, ContigEnd: 1700, Strand: "fs"},
		300,
	)
	got := RenderCandidate(c, Options{Width: 17, ShowCaret: true})
	want := strings.Join([]string{
		"# NODE_1 relocation overlap 300 bp",
		"# contig 1............1700",
		"# first  =========>",
		"# second       ==========>",
		"#              ^^^^",
		"# pending",
		"#",
		"",
	}, "\n")
	if got != want {
		t.Fatalf("render mismatch:\n%s\nwant:\n%s", got, want)
	}
}

func TestRenderCandidate_ReverseAndNoCaret(t *testing.T) {
	c := cand(
		api.AlignmentV1{ContigStart: 1000, ContigEnd: 1, Strand: "rc"},
		api.AlignmentV1{ContigStart: 1500, ContigEnd: 2500, Strand: "fs"},
		0,
	)
	got := RenderCandidate(c, Options{Width: 11})
	lines := strings.Split(got, "\n")
	if !strings.HasPrefix(lines[2], "# first  <") {
		t.Fatalf("reverse alignment must point left: %q", lines[2])
	}
	if strings.Contains(got, "^") {
		t.Fatalf("no overlap, no caret:\n%s", got)
	}
}

func TestRenderCandidate_TinySpanUsesMinimumWidth(t *testing.T) {
	c := cand(
		api.AlignmentV1{ContigStart: 5, ContigEnd: 5, Strand: "fs"},
		api.AlignmentV1{ContigStart: 5, ContigEnd: 5, Strand: "fs"},
		0,
	)
	if out := RenderCandidate(c, DefaultOptions); !strings.Contains(out, "# first  >") {
		t.Fatalf("unexpected render:\n%s", out)
	}
}

func TestDefaultOptions_Stable(t *testing.T) {
	d := DefaultOptions
	if d.DotGlyph != "." || d.BarGlyph != "=" || d.CaretGlyph != "^" || d.Width != 60 || !d.ShowCaret {
		t.Fatalf("DefaultOptions visual defaults changed")
	}
}
