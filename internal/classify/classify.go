// Package classify buckets extensive misassemblies by the geometry of the
// two alignments flanking each breakpoint.
package classify

import "misclass/internal/report"

// DefaultOverlapThreshold is the minimum contig overlap, in bp, for a
// same-strand pair to count as a broken bone.
const DefaultOverlapThreshold = 200

// Category names a bucket.
type Category string

const (
	BrokenBone Category = "broken_bone"
	Ignored    Category = "ignored"
	Unknown    Category = "unknown"
)

// Buckets partitions a record set. Input order is preserved in each bucket.
type Buckets struct {
	BrokenBone []report.Misassembly
	Ignored    []report.Misassembly
	Unknown    []report.Misassembly
}

// Total is the number of classified records.
func (b Buckets) Total() int { return len(b.BrokenBone) + len(b.Ignored) + len(b.Unknown) }

// Classifier decides the bucket of each record.
type Classifier struct {
	Threshold int
}

// New returns a Classifier; a negative threshold falls back to the default.
func New(threshold int) Classifier {
	if threshold < 0 {
		threshold = DefaultOverlapThreshold
	}
	return Classifier{Threshold: threshold}
}

// Overlap is how far the first alignment's far end reaches past the second
// alignment's near end in contig coordinates (0 when they do not meet).
func Overlap(m report.Misassembly) int {
	pos1 := m.First.ContigMax()
	pos2 := m.Second.ContigMin()
	if pos2 > pos1 {
		return 0
	}
	return pos1 - pos2
}

// Category returns the bucket for a single record.
func (c Classifier) Category(m report.Misassembly) Category {
	if m.First.Strand() != report.Forward || m.Second.Strand() != report.Forward {
		return Unknown
	}
	if Overlap(m) >= c.Threshold {
		return BrokenBone
	}
	return Ignored
}

// Classify places every record in exactly one bucket.
func (c Classifier) Classify(records []report.Misassembly) Buckets {
	var b Buckets
	for _, m := range records {
		switch c.Category(m) {
		case BrokenBone:
			b.BrokenBone = append(b.BrokenBone, m)
		case Ignored:
			b.Ignored = append(b.Ignored, m)
		default:
			b.Unknown = append(b.Unknown, m)
		}
	}
	return b
}
