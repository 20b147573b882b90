// Package fasta reads just enough of a FASTA file to validate it and list
// its record IDs. Sequences are never held in memory.
package fasta

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"io"

	"misclass/internal/fileio"
)

// ErrNotFASTA is returned when the first non-empty line is not a header.
var ErrNotFASTA = errors.New("not a FASTA file")

// Sniff checks that path opens (plain or gzip) and starts with a '>' header.
func Sniff(path string) error {
	rc, err := fileio.Open(path)
	if err != nil {
		return err
	}
	defer rc.Close()

	r := bufio.NewReader(rc)
	for {
		line, err := r.ReadBytes('\n')
		line = bytes.TrimSpace(line)
		if len(line) > 0 {
			if line[0] != '>' {
				return fmt.Errorf("%s: %w", path, ErrNotFASTA)
			}
			return nil
		}
		if err == io.EOF {
			return fmt.Errorf("%s: empty file: %w", path, ErrNotFASTA)
		}
		if err != nil {
			return fmt.Errorf("%s: %w", path, err)
		}
	}
}

// IDs returns the set of record IDs (the first whitespace-delimited token of
// each header line) in path.
func IDs(path string) (map[string]struct{}, error) {
	rc, err := fileio.Open(path)
	if err != nil {
		return nil, err
	}
	defer rc.Close()
	ids, err := ReadIDs(rc)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return ids, nil
}

// ReadIDs is IDs over an open stream.
func ReadIDs(rd io.Reader) (map[string]struct{}, error) {
	ids := make(map[string]struct{})
	r := bufio.NewReader(rd)
	for {
		line, err := r.ReadBytes('\n')
		if len(line) > 0 && line[0] == '>' {
			if f := bytes.Fields(line[1:]); len(f) > 0 {
				ids[string(f[0])] = struct{}{}
			}
		}
		if err == io.EOF {
			return ids, nil
		}
		if err != nil {
			return nil, err
		}
	}
}
