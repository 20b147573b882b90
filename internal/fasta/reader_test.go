package fasta

import (
	"compress/gzip"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

const plain = `>NODE_1_length_5000_cov_12.5 assembled
ACGT
>NODE_2_length_900_cov_3.0
NNnn
`

func writeFile(t *testing.T, name, data string) string {
	t.Helper()
	p := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(p, []byte(data), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	return p
}

func writeGz(t *testing.T, name string, data string) string {
	t.Helper()
	p := filepath.Join(t.TempDir(), name)
	fh, err := os.Create(p)
	if err != nil {
		t.Fatalf("tmp: %v", err)
	}
	gw := gzip.NewWriter(fh)
	if _, err := gw.Write([]byte(data)); err != nil {
		t.Fatalf("write gz: %v", err)
	}
	gw.Close()
	fh.Close()
	return p
}

func TestIDsGzip(t *testing.T) {
	ids, err := IDs(writeGz(t, "contigs.fa.gz", plain))
	if err != nil {
		t.Fatalf("ids gz: %v", err)
	}
	if len(ids) != 2 {
		t.Fatalf("want 2 ids, got %v", ids)
	}
	for _, want := range []string{"NODE_1_length_5000_cov_12.5", "NODE_2_length_900_cov_3.0"} {
		if _, ok := ids[want]; !ok {
			t.Fatalf("missing %s in %v", want, ids)
		}
	}
}

func TestReadIDsNoTrailingNewline(t *testing.T) {
	ids, err := ReadIDs(strings.NewReader(">a\nAC\n>b"))
	if err != nil {
		t.Fatal(err)
	}
	if _, ok := ids["b"]; !ok || len(ids) != 2 {
		t.Fatalf("unexpected ids %v", ids)
	}
}

func TestSniff(t *testing.T) {
	if err := Sniff(writeFile(t, "ok.fa", "\n\n"+plain)); err != nil {
		t.Fatalf("sniff plain: %v", err)
	}
	if err := Sniff(writeGz(t, "ok.fa.gz", plain)); err != nil {
		t.Fatalf("sniff gz: %v", err)
	}
	if err := Sniff(writeFile(t, "report.txt", "CONTIG: NODE_1\n")); !errors.Is(err, ErrNotFASTA) {
		t.Fatalf("want ErrNotFASTA, got %v", err)
	}
	if err := Sniff(writeFile(t, "empty.fa", "")); !errors.Is(err, ErrNotFASTA) {
		t.Fatalf("want ErrNotFASTA for empty file, got %v", err)
	}
	if err := Sniff(filepath.Join(t.TempDir(), "absent.fa")); !errors.Is(err, os.ErrNotExist) {
		t.Fatalf("want ErrNotExist, got %v", err)
	}
}
