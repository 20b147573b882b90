package output

import (
	"io"

	"gopkg.in/yaml.v3"

	"misclass/pkg/api"
)

// WriteYAML writes the report as a YAML document.
func WriteYAML(w io.Writer, r api.ReportV1) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(r); err != nil {
		return err
	}
	return enc.Close()
}
