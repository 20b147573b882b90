package writers

import (
	"io"

	"misclass/internal/output"
	"misclass/internal/pretty"
	"misclass/pkg/api"
)

func init() {
	RegisterReport(output.FormatText, writeText)
	RegisterReport(output.FormatJSON, func(w io.Writer, r api.ReportV1, _ Options) error {
		return output.WriteJSON(w, r)
	})
	RegisterReport(output.FormatYAML, func(w io.Writer, r api.ReportV1, _ Options) error {
		return output.WriteYAML(w, r)
	})
}

func writeText(w io.Writer, r api.ReportV1, o Options) error {
	if err := output.WriteText(w, r, o.Header); err != nil {
		return err
	}
	if !o.Pretty || len(r.BrokenBones) == 0 {
		return nil
	}
	if _, err := io.WriteString(w, "\n"); err != nil {
		return err
	}
	for _, c := range r.BrokenBones {
		if _, err := io.WriteString(w, pretty.RenderCandidate(c, pretty.DefaultOptions)); err != nil {
			return err
		}
	}
	return nil
}
