// Package cliutil validates the positional paths the misclass commands take.
package cliutil

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"golang.org/x/sync/errgroup"

	"misclass/internal/fasta"
)

// ProbeFile is created and removed to prove the assembler dir is writable.
const ProbeFile = "__miss_classification_test_file.txt"

// Inputs are the four positional arguments.
type Inputs struct {
	ReportRoot   string
	AssemblerDir string
	Contigs      string
	Reference    string
}

// ResolveReport returns the contigs stdout file for root. root may be the
// QUAST report folder (rel is joined to it) or the stdout file itself.
func ResolveReport(root, rel string) (string, error) {
	fi, err := os.Stat(root)
	if err != nil {
		return "", fmt.Errorf("report %s: %w", root, err)
	}
	path := root
	if fi.IsDir() {
		path = filepath.Join(root, rel)
		if _, err := os.Stat(path); err != nil {
			return "", fmt.Errorf("%s is not a QUAST report folder: %w", root, err)
		}
	}
	if err := ReadableFile(path); err != nil {
		return "", err
	}
	return path, nil
}

// ReadableFile checks path exists, is not a directory, and opens for reading.
func ReadableFile(path string) error {
	fi, err := os.Stat(path)
	if err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}
	if fi.IsDir() {
		return fmt.Errorf("%s is a directory", path)
	}
	fh, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("reading %s: %w", path, err)
	}
	return fh.Close()
}

// WritableDir checks dir exists and a file can be created in it.
func WritableDir(dir string) error {
	fi, err := os.Stat(dir)
	if err != nil {
		return fmt.Errorf("%s is not a correct assembler folder: %w", dir, err)
	}
	if !fi.IsDir() {
		return fmt.Errorf("%s is not a directory", dir)
	}
	probe := filepath.Join(dir, ProbeFile)
	fh, err := os.Create(probe)
	if err != nil {
		return fmt.Errorf("writing in %s: %w", dir, err)
	}
	return errors.Join(fh.Close(), os.Remove(probe))
}

// Validate checks all inputs and returns the resolved report path. The two
// FASTA files are sniffed concurrently.
func Validate(ctx context.Context, in Inputs, reportRel string) (string, error) {
	reportPath, err := ResolveReport(in.ReportRoot, reportRel)
	if err != nil {
		return "", err
	}
	if err := WritableDir(in.AssemblerDir); err != nil {
		return "", err
	}

	g, gctx := errgroup.WithContext(ctx)
	for _, p := range []string{in.Contigs, in.Reference} {
		p := p
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			if err := ReadableFile(p); err != nil {
				return err
			}
			return fasta.Sniff(p)
		})
	}
	if err := g.Wait(); err != nil {
		return "", err
	}
	return reportPath, nil
}
