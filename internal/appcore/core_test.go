package appcore

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"misclass/internal/aggregate"
	"misclass/internal/classify"
	"misclass/internal/config"
	"misclass/internal/report"
	"misclass/pkg/api"
)

const report1 = `	CONTIG: NODE_9_length_2000_cov_4.0 (2000bp)
			Real Alignment 1: 1 1000 | 1 1000 | 1000 1000 | 100.0 | chr1 NODE_9
			  Extensive misassembly ( relocation, inconsistency = 1300 ) between these two alignments
			Real Alignment 2: 2000 3000 | 700 1700 | 1001 1001 | 100.0 | chr1 NODE_9

`

func TestClassify_JSON(t *testing.T) {
	p := filepath.Join(t.TempDir(), "contigs.stdout")
	if err := os.WriteFile(p, []byte(report1), 0o644); err != nil {
		t.Fatal(err)
	}
	cfg := config.Default()
	cfg.Output.Format = "json"
	var out bytes.Buffer
	if err := Classify(context.Background(), Env{Config: cfg, Stdout: &out}, p); err != nil {
		t.Fatalf("classify: %v", err)
	}
	var rep api.ReportV1
	if err := json.Unmarshal(out.Bytes(), &rep); err != nil {
		t.Fatalf("json: %v\n%s", err, out.String())
	}
	if rep.Counts.BrokenBone != 1 || rep.Verification.Pending != 1 || rep.BrokenBones[0].Status != "pending" {
		t.Fatalf("unexpected report %+v", rep)
	}
	if rep.BrokenBones[0].Overlap != 300 || rep.Report != p {
		t.Fatalf("unexpected candidate %+v", rep.BrokenBones[0])
	}
}

func TestEmit_SortAndUnknownFormat(t *testing.T) {
	mk := func(contig string, idx int) report.Misassembly {
		return report.Misassembly{Index: idx, Contig: contig, Kind: "relocation",
			First: report.NewAlignment(1, 1000, 1, 1000), Second: report.NewAlignment(2000, 3000, 1500, 2500)}
	}
	b := classify.Buckets{Ignored: []report.Misassembly{mk("NODE_b", 0), mk("NODE_a", 1)}}
	res := aggregate.Preview(b, nil)

	cfg := config.Default()
	cfg.Output.Format = "yaml"
	var out bytes.Buffer
	if err := Emit(Env{Config: cfg, Stdout: &out, Sort: true}, res, "r"); err != nil {
		t.Fatal(err)
	}
	s := out.String()
	if strings.Index(s, "NODE_a") > strings.Index(s, "NODE_b") {
		t.Fatalf("ignored list not sorted:\n%s", s)
	}
	if res.Ignored[0].Contig != "NODE_b" {
		t.Fatalf("Emit must not reorder the caller's slice")
	}

	cfg.Output.Format = "xml"
	if err := Emit(Env{Config: cfg, Stdout: &out}, res, "r"); err == nil {
		t.Fatalf("expected unknown format error")
	}
}

func TestCheckFormat(t *testing.T) {
	for _, f := range []string{"text", "json", "yaml"} {
		if err := CheckFormat(f); err != nil {
			t.Fatalf("%s: %v", f, err)
		}
	}
	if err := CheckFormat("fasta"); err == nil {
		t.Fatalf("expected error for fasta")
	}
}
