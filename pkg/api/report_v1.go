// pkg/api/report_v1.go
package api

// ReportV1 is the stable JSON/YAML schema of a classification run.
// Keep fields, names, and types stable. Add new fields only with ",omitempty".
type ReportV1 struct {
	SchemaVersion    string          `json:"schema_version" yaml:"schema_version"`
	Report           string          `json:"report" yaml:"report"`
	Vocabulary       string          `json:"vocabulary" yaml:"vocabulary"`
	OverlapThreshold int             `json:"overlap_threshold" yaml:"overlap_threshold"`
	Counts           CountsV1        `json:"counts" yaml:"counts"`
	Verification     VerificationV1  `json:"verification" yaml:"verification"`
	BrokenBones      []CandidateV1   `json:"broken_bones" yaml:"broken_bones"`
	Ignored          []MisassemblyV1 `json:"ignored,omitempty" yaml:"ignored,omitempty"`
	Unknown          []MisassemblyV1 `json:"unknown,omitempty" yaml:"unknown,omitempty"`
	Skipped          []SkipV1        `json:"skipped,omitempty" yaml:"skipped,omitempty"`
}

// CountsV1 are per-bucket sizes.
type CountsV1 struct {
	Total      int `json:"total" yaml:"total"`
	BrokenBone int `json:"broken_bone" yaml:"broken_bone"`
	Ignored    int `json:"ignored" yaml:"ignored"`
	Unknown    int `json:"unknown" yaml:"unknown"`
	Skipped    int `json:"skipped" yaml:"skipped"`
}

// VerificationV1 tallies verdicts over broken-bone candidates.
type VerificationV1 struct {
	Pending  int `json:"pending" yaml:"pending"`
	NotReady int `json:"not_ready" yaml:"not_ready"`
	Intact   int `json:"intact" yaml:"intact"`
	Broken   int `json:"broken" yaml:"broken"`
}

// AlignmentV1 is one "Real Alignment" line.
type AlignmentV1 struct {
	RefStart    int    `json:"ref_start" yaml:"ref_start"`
	RefEnd      int    `json:"ref_end" yaml:"ref_end"`
	ContigStart int    `json:"contig_start" yaml:"contig_start"`
	ContigEnd   int    `json:"contig_end" yaml:"contig_end"`
	Strand      string `json:"strand" yaml:"strand"` // "fs" | "rc"
}

// MisassemblyV1 is a parsed extensive misassembly.
type MisassemblyV1 struct {
	Contig string      `json:"contig" yaml:"contig"`
	Kind   string      `json:"kind" yaml:"kind"`
	Line   int         `json:"line" yaml:"line"`
	First  AlignmentV1 `json:"first" yaml:"first"`
	Second AlignmentV1 `json:"second" yaml:"second"`
}

// EndpointV1 is the outcome at one end of a candidate.
type EndpointV1 struct {
	State    string   `json:"state" yaml:"state"` // intact | broken_coverage | broken_unknown
	Coverage *float64 `json:"coverage,omitempty" yaml:"coverage,omitempty"`
}

// CandidateV1 is a broken-bone candidate and its verdict.
type CandidateV1 struct {
	ID           string        `json:"id" yaml:"id"`
	Misassembly  MisassemblyV1 `json:"misassembly" yaml:"misassembly"`
	Overlap      int           `json:"overlap" yaml:"overlap"`
	ContigLength int           `json:"contig_length,omitempty" yaml:"contig_length,omitempty"`
	ContigCov    float64       `json:"contig_coverage,omitempty" yaml:"contig_coverage,omitempty"`
	Status       string        `json:"status" yaml:"status"` // pending | not_ready | ready
	Start        *EndpointV1   `json:"start,omitempty" yaml:"start,omitempty"`
	End          *EndpointV1   `json:"end,omitempty" yaml:"end,omitempty"`
	Narrative    string        `json:"narrative" yaml:"narrative"`
}

// SkipV1 is a misassembly sub-block the parser could not use.
type SkipV1 struct {
	Contig string `json:"contig,omitempty" yaml:"contig,omitempty"`
	Line   int    `json:"line" yaml:"line"`
	Reason string `json:"reason" yaml:"reason"`
}
