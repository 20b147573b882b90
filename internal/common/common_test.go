package common

import (
	"testing"

	"misclass/internal/report"
)

func TestParseNodeName(t *testing.T) {
	info, ok := ParseNodeName("NODE_12_length_4521_cov_17.31")
	if !ok || info.Node != 12 || info.Length != 4521 || info.Coverage != 17.31 {
		t.Fatalf("unexpected %+v ok=%v", info, ok)
	}
	if _, ok := ParseNodeName("NODE_12_length_4521_cov_17.31_ID_5"); !ok {
		t.Fatalf("suffixed SPAdes name should parse")
	}
	for _, bad := range []string{"contig_1", "NODE_x_length_1_cov_1", "NODE_1_len_1_cov_1", "NODE_1_length_1_cov_high"} {
		if _, ok := ParseNodeName(bad); ok {
			t.Errorf("%q should not parse", bad)
		}
	}
}

func TestUniqueNames(t *testing.T) {
	got := UniqueNames([]string{"b", " a", "b", "", "a "})
	if len(got) != 2 || got[0] != "b" || got[1] != "a" {
		t.Fatalf("got %v", got)
	}
}

func TestSortMisassemblies(t *testing.T) {
	in := []report.Misassembly{
		{Index: 0, Contig: "NODE_2", First: report.NewAlignment(0, 0, 0, 10)},
		{Index: 1, Contig: "NODE_1", First: report.NewAlignment(0, 0, 0, 50)},
		{Index: 2, Contig: "NODE_1", First: report.NewAlignment(0, 0, 20, 0)},
	}
	got := SortMisassemblies(in)
	if got[0].Index != 2 || got[1].Index != 1 || got[2].Index != 0 {
		t.Fatalf("unexpected order %+v", got)
	}
	if in[0].Index != 0 {
		t.Fatalf("input must not be reordered")
	}
}
