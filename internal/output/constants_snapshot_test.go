package output

import "testing"

func TestTSVHeader_Stable(t *testing.T) {
	const want = "id\tcontig\tkind\tline\tref1_start\tref1_end\tcontig1_start\tcontig1_end\tref2_start\tref2_end\tcontig2_start\tcontig2_end\toverlap\tstatus\tnarrative"
	if TSVHeader != want {
		t.Fatalf("TSVHeader changed:\n got:  %q\n want: %q", TSVHeader, want)
	}
}
