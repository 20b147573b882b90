package protocol

import "fmt"

// OutcomeState is the verification result for one end of a candidate.
type OutcomeState int

const (
	Intact OutcomeState = iota
	BrokenCoverage
	BrokenUnknown
)

func (s OutcomeState) String() string {
	switch s {
	case BrokenCoverage:
		return "broken_coverage"
	case BrokenUnknown:
		return "broken_unknown"
	default:
		return "intact"
	}
}

// EndpointOutcome describes the start or end of a candidate. Coverage is
// only meaningful for BrokenCoverage.
type EndpointOutcome struct {
	State    OutcomeState
	Coverage float64
}

// Broken reports whether a break was observed at this endpoint.
func (o EndpointOutcome) Broken() bool { return o.State != Intact }

func (o EndpointOutcome) String() string {
	switch o.State {
	case BrokenCoverage:
		return fmt.Sprintf("broken (low coverage edge removed, coverage %.2f)", o.Coverage)
	case BrokenUnknown:
		return "broken (unknown reason)"
	default:
		return "intact"
	}
}

// Verdict is the decoded outcome for one broken-bone candidate.
type Verdict struct {
	Ready  bool
	Contig string
	ID     string // tagged dialect only
	Start  EndpointOutcome
	End    EndpointOutcome
}

// NotReady is the verdict for a candidate the assembler failed to process.
func NotReady() Verdict { return Verdict{} }
