package common

import (
	"sort"

	"misclass/internal/report"
)

// LessMisassembly orders records by contig, then breakpoint position.
func LessMisassembly(a, b report.Misassembly) bool {
	if a.Contig != b.Contig {
		return a.Contig < b.Contig
	}
	if a.First.ContigMax() != b.First.ContigMax() {
		return a.First.ContigMax() < b.First.ContigMax()
	}
	return a.Index < b.Index
}

// SortMisassemblies sorts a copy of list; the input keeps hand-off order.
func SortMisassemblies(list []report.Misassembly) []report.Misassembly {
	out := append([]report.Misassembly(nil), list...)
	sort.SliceStable(out, func(i, j int) bool { return LessMisassembly(out[i], out[j]) })
	return out
}
