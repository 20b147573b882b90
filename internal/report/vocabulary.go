package report

import "fmt"

// Vocabulary is the set of tokens and patterns that identify misassembly
// information in a contigs report. Format drift is handled by adding a new
// entry, never by editing the parser.
type Vocabulary struct {
	Version string

	// Plain substrings.
	ContigMarker      string
	MisassemblyMarker string
	AlignmentHeader   string

	// Regular expressions (RE2). Alignment must capture ref-start, ref-end,
	// contig-start, contig-end in that order; Kind captures the tag.
	ContigName string
	Alignment  string
	Kind       string
}

// QUAST5 matches the contigs_report_contigs.stdout layout of QUAST 4.x/5.x.
var QUAST5 = Vocabulary{
	Version:           "quast-5",
	ContigMarker:      "CONTIG",
	MisassemblyMarker: "Extensive misassembly",
	AlignmentHeader:   "Real Alignment",
	ContigName:        `NODE_\S+`,
	Alignment:         `Real Alignment \d+: (\d+) (\d+) \| (\d+) (\d+)`,
	Kind:              `Extensive misassembly\s*\(\s*(\w+)`,
}

var vocabularies = map[string]Vocabulary{
	QUAST5.Version: QUAST5,
}

// DefaultVocabulary is used when no version is configured.
const DefaultVocabulary = "quast-5"

// LookupVocabulary returns the vocabulary registered under version.
func LookupVocabulary(version string) (Vocabulary, error) {
	if version == "" {
		version = DefaultVocabulary
	}
	v, ok := vocabularies[version]
	if !ok {
		return Vocabulary{}, fmt.Errorf("unknown report vocabulary %q", version)
	}
	return v, nil
}
