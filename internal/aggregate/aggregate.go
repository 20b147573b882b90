// Package aggregate joins classified misassemblies with the assembler's
// verdicts into the final result of a run.
package aggregate

import (
	"errors"
	"fmt"

	"misclass/internal/classify"
	"misclass/internal/common"
	"misclass/internal/protocol"
	"misclass/internal/report"
)

// ErrVerdictCount means the verdicts do not line up with the broken-bone bucket.
var ErrVerdictCount = errors.New("verdict count does not match broken-bone candidates")

// Counts are the per-bucket sizes of a run.
type Counts struct {
	Total      int
	BrokenBone int
	Ignored    int
	Unknown    int
	Skipped    int
}

// Tally summarizes verdicts over the broken-bone bucket.
type Tally struct {
	Pending  int // no verdict collected yet
	NotReady int
	Intact   int // both endpoints intact
	Broken   int // at least one endpoint broken
}

// Entry is one broken-bone candidate with its verdict.
type Entry struct {
	ID        string
	Record    report.Misassembly
	Overlap   int
	Node      common.NodeInfo
	HasNode   bool
	Verdict   *protocol.Verdict // nil while pending
	Narrative string
}

// Result is the structured outcome of a run.
type Result struct {
	Counts      Counts
	Tally       Tally
	BrokenBones []Entry
	Ignored     []report.Misassembly
	Unknown     []report.Misassembly
	Skipped     []report.Skip
}

// Aggregate pairs b.BrokenBone[i] with verdicts[i].
func Aggregate(b classify.Buckets, verdicts []protocol.Verdict, skipped []report.Skip) (Result, error) {
	if len(verdicts) != len(b.BrokenBone) {
		return Result{}, fmt.Errorf("%w: %d verdicts, %d candidates", ErrVerdictCount, len(verdicts), len(b.BrokenBone))
	}
	res := base(b, skipped)
	for i := range res.BrokenBones {
		v := verdicts[i]
		e := &res.BrokenBones[i]
		e.Verdict = &v
		e.Narrative = Narrative(v)
		switch {
		case !v.Ready:
			res.Tally.NotReady++
		case v.Start.Broken() || v.End.Broken():
			res.Tally.Broken++
		default:
			res.Tally.Intact++
		}
	}
	return res, nil
}

// Preview is the result before any verdict has been collected.
func Preview(b classify.Buckets, skipped []report.Skip) Result {
	res := base(b, skipped)
	res.Tally.Pending = len(res.BrokenBones)
	return res
}

func base(b classify.Buckets, skipped []report.Skip) Result {
	res := Result{
		Counts: Counts{
			Total:      b.Total(),
			BrokenBone: len(b.BrokenBone),
			Ignored:    len(b.Ignored),
			Unknown:    len(b.Unknown),
			Skipped:    len(skipped),
		},
		Ignored: b.Ignored,
		Unknown: b.Unknown,
		Skipped: skipped,
	}
	res.BrokenBones = make([]Entry, 0, len(b.BrokenBone))
	for _, m := range b.BrokenBone {
		node, ok := common.ParseNodeName(m.Contig)
		res.BrokenBones = append(res.BrokenBones, Entry{
			ID:        protocol.RecordID(m),
			Record:    m,
			Overlap:   classify.Overlap(m),
			Node:      node,
			HasNode:   ok,
			Narrative: "pending",
		})
	}
	return res
}

// Narrative describes a verdict in one line.
func Narrative(v protocol.Verdict) string {
	if !v.Ready {
		return "not ready"
	}
	return "start: " + v.Start.String() + "; end: " + v.End.String()
}
