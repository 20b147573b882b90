// internal/output/text.go
package output

import (
	"fmt"
	"io"

	"misclass/pkg/api"
)

// WriteText prints the classification summary, the verification tally and
// a TSV table of broken-bone candidates.
func WriteText(w io.Writer, r api.ReportV1, header bool) error {
	c := r.Counts
	v := r.Verification
	if _, err := fmt.Fprintf(w,
		"Predicted classification\nBroken bone: %d\nIgnored:     %d\nUnknown:     %d\nSkipped:     %d\n\n",
		c.BrokenBone, c.Ignored, c.Unknown, c.Skipped,
	); err != nil {
		return err
	}
	if v.Pending > 0 {
		if _, err := fmt.Fprintf(w, "Verification pending for %d candidate(s)\n\n", v.Pending); err != nil {
			return err
		}
	} else if c.BrokenBone > 0 {
		if _, err := fmt.Fprintf(w,
			"Verification\nNot ready:   %d\nIntact:      %d\nBroken:      %d\n\n",
			v.NotReady, v.Intact, v.Broken,
		); err != nil {
			return err
		}
	}
	if len(r.BrokenBones) == 0 {
		return nil
	}
	if header {
		if _, err := fmt.Fprintln(w, TSVHeader); err != nil {
			return err
		}
	}
	for _, cand := range r.BrokenBones {
		if _, err := fmt.Fprintln(w, FormatCandidateRowTSV(cand)); err != nil {
			return err
		}
	}
	return nil
}
