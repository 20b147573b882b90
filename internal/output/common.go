package output

// TSVHeader is the canonical header row for the broken-bone table in text output.
// Keep this as the single source of truth; all writers should use it.
const TSVHeader = "id\tcontig\tkind\tline\tref1_start\tref1_end\tcontig1_start\tcontig1_end\tref2_start\tref2_end\tcontig2_start\tcontig2_end\toverlap\tstatus\tnarrative"

// Output formats.
const (
	FormatText = "text"
	FormatJSON = "json"
	FormatYAML = "yaml"
)

// SchemaVersion is stamped on every structured report.
const SchemaVersion = "v1"
