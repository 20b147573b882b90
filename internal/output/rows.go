// internal/output/rows.go
package output

import (
	"fmt"

	"misclass/pkg/api"
)

// FormatCandidateRowTSV returns one broken-bone row (no trailing newline).
func FormatCandidateRowTSV(c api.CandidateV1) string {
	m := c.Misassembly
	return fmt.Sprintf("%s\t%s\t%s\t%d\t%d\t%d\t%d\t%d\t%d\t%d\t%d\t%d\t%d\t%s\t%s",
		c.ID, m.Contig, m.Kind, m.Line,
		m.First.RefStart, m.First.RefEnd, m.First.ContigStart, m.First.ContigEnd,
		m.Second.RefStart, m.Second.RefEnd, m.Second.ContigStart, m.Second.ContigEnd,
		c.Overlap, c.Status, c.Narrative,
	)
}
