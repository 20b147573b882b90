package report

import "fmt"

// Strand is the orientation of an alignment, derived from contig coordinate order.
type Strand int

const (
	Forward Strand = iota
	ReverseComplement
)

func (s Strand) String() string {
	if s == ReverseComplement {
		return "rc"
	}
	return "fs"
}

// Alignment maps a contig region onto a reference region.
// Coordinates are taken verbatim from a "Real Alignment" line.
type Alignment struct {
	RefPos1    int
	RefPos2    int
	ContigPos1 int
	ContigPos2 int
}

// NewAlignment builds an Alignment from the four raw report integers.
func NewAlignment(ref1, ref2, contig1, contig2 int) Alignment {
	return Alignment{RefPos1: ref1, RefPos2: ref2, ContigPos1: contig1, ContigPos2: contig2}
}

// Strand is Forward when the contig coordinates do not decrease.
func (a Alignment) Strand() Strand {
	if a.ContigPos2-a.ContigPos1 >= 0 {
		return Forward
	}
	return ReverseComplement
}

// ContigMax is the far end of the alignment within the contig.
func (a Alignment) ContigMax() int { return max(a.ContigPos1, a.ContigPos2) }

// ContigMin is the near end of the alignment within the contig.
func (a Alignment) ContigMin() int { return min(a.ContigPos1, a.ContigPos2) }

func (a Alignment) String() string {
	return fmt.Sprintf("%d %d | %d %d", a.RefPos1, a.RefPos2, a.ContigPos1, a.ContigPos2)
}

// Misassembly is one extensive misassembly: the alignments immediately
// before (First) and after (Second) the breakpoint.
type Misassembly struct {
	Index  int // position in parse order
	Line   int // 1-based report line of the misassembly marker
	Contig string
	Kind   string
	First  Alignment
	Second Alignment
}

// Skip describes a misassembly sub-block that could not be turned into a record.
type Skip struct {
	Contig string
	Line   int
	Reason string
}

func (s Skip) String() string {
	if s.Contig == "" {
		return fmt.Sprintf("line %d: %s", s.Line, s.Reason)
	}
	return fmt.Sprintf("line %d (%s): %s", s.Line, s.Contig, s.Reason)
}

// Result is the outcome of parsing one report.
type Result struct {
	Records []Misassembly
	Skipped []Skip
}
