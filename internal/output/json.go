// internal/output/json.go
package output

import (
	"encoding/json"
	"io"

	"misclass/internal/aggregate"
	"misclass/internal/protocol"
	"misclass/internal/report"
	"misclass/pkg/api"
)

// Meta describes the run a Result came from.
type Meta struct {
	Report     string
	Vocabulary string
	Threshold  int
}

// ToAPIReport converts a domain Result to the stable wire schema (v1).
func ToAPIReport(res aggregate.Result, meta Meta) api.ReportV1 {
	v := api.ReportV1{
		SchemaVersion:    SchemaVersion,
		Report:           meta.Report,
		Vocabulary:       meta.Vocabulary,
		OverlapThreshold: meta.Threshold,
		Counts: api.CountsV1{
			Total:      res.Counts.Total,
			BrokenBone: res.Counts.BrokenBone,
			Ignored:    res.Counts.Ignored,
			Unknown:    res.Counts.Unknown,
			Skipped:    res.Counts.Skipped,
		},
		Verification: api.VerificationV1{
			Pending:  res.Tally.Pending,
			NotReady: res.Tally.NotReady,
			Intact:   res.Tally.Intact,
			Broken:   res.Tally.Broken,
		},
		BrokenBones: make([]api.CandidateV1, 0, len(res.BrokenBones)),
		Ignored:     toAPIMisassemblies(res.Ignored),
		Unknown:     toAPIMisassemblies(res.Unknown),
	}
	for _, e := range res.BrokenBones {
		v.BrokenBones = append(v.BrokenBones, toAPICandidate(e))
	}
	for _, s := range res.Skipped {
		v.Skipped = append(v.Skipped, api.SkipV1{Contig: s.Contig, Line: s.Line, Reason: s.Reason})
	}
	return v
}

func toAPICandidate(e aggregate.Entry) api.CandidateV1 {
	c := api.CandidateV1{
		ID:          e.ID,
		Misassembly: toAPIMisassembly(e.Record),
		Overlap:     e.Overlap,
		Narrative:   e.Narrative,
	}
	if e.HasNode {
		c.ContigLength = e.Node.Length
		c.ContigCov = e.Node.Coverage
	}
	switch {
	case e.Verdict == nil:
		c.Status = "pending"
	case !e.Verdict.Ready:
		c.Status = "not_ready"
	default:
		c.Status = "ready"
		c.Start = toAPIEndpoint(e.Verdict.Start)
		c.End = toAPIEndpoint(e.Verdict.End)
	}
	return c
}

func toAPIEndpoint(o protocol.EndpointOutcome) *api.EndpointV1 {
	ep := &api.EndpointV1{State: o.State.String()}
	if o.State == protocol.BrokenCoverage {
		cov := o.Coverage
		ep.Coverage = &cov
	}
	return ep
}

func toAPIMisassemblies(list []report.Misassembly) []api.MisassemblyV1 {
	if len(list) == 0 {
		return nil
	}
	out := make([]api.MisassemblyV1, 0, len(list))
	for _, m := range list {
		out = append(out, toAPIMisassembly(m))
	}
	return out
}

func toAPIMisassembly(m report.Misassembly) api.MisassemblyV1 {
	return api.MisassemblyV1{
		Contig: m.Contig,
		Kind:   m.Kind,
		Line:   m.Line,
		First:  toAPIAlignment(m.First),
		Second: toAPIAlignment(m.Second),
	}
}

func toAPIAlignment(a report.Alignment) api.AlignmentV1 {
	return api.AlignmentV1{
		RefStart:    a.RefPos1,
		RefEnd:      a.RefPos2,
		ContigStart: a.ContigPos1,
		ContigEnd:   a.ContigPos2,
		Strand:      a.Strand().String(),
	}
}

// WriteJSON writes the report as indented JSON.
func WriteJSON(w io.Writer, r api.ReportV1) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(r)
}
