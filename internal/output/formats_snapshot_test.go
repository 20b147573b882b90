package output

import "testing"

func TestFormats_Stable(t *testing.T) {
	if FormatText != "text" || FormatJSON != "json" || FormatYAML != "yaml" {
		t.Fatalf("output format constants changed")
	}
}
