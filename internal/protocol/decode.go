package protocol

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	"misclass/internal/report"
)

var (
	ErrCountMismatch  = errors.New("record count mismatch")
	ErrMalformed      = errors.New("malformed field")
	ErrUnexpectedEOF  = errors.New("unexpected end of hand-off output")
	ErrRecordMismatch = errors.New("record does not match the encoded candidate")
	ErrTrailingData   = errors.New("trailing data after last record")
)

// DecodeError locates a protocol violation in the output file.
type DecodeError struct {
	Line  int // 1-based; 0 when the file ended early
	Field string
	Err   error
}

func (e *DecodeError) Error() string {
	if e.Line == 0 {
		return fmt.Sprintf("hand-off output: %s: %v", e.Field, e.Err)
	}
	return fmt.Sprintf("hand-off output line %d: %s: %v", e.Line, e.Field, e.Err)
}

func (e *DecodeError) Unwrap() error { return e.Err }

type token struct {
	text string
	line int
}

type tokenizer struct {
	toks []token
	pos  int
}

func (t *tokenizer) next(field string) (token, error) {
	if t.pos >= len(t.toks) {
		return token{}, &DecodeError{Field: field, Err: ErrUnexpectedEOF}
	}
	tok := t.toks[t.pos]
	t.pos++
	return tok, nil
}

func (t *tokenizer) flag(field string) (bool, error) {
	tok, err := t.next(field)
	if err != nil {
		return false, err
	}
	switch tok.text {
	case "0":
		return false, nil
	case "1":
		return true, nil
	}
	return false, &DecodeError{Line: tok.line, Field: field, Err: fmt.Errorf("%w: want 0 or 1, got %q", ErrMalformed, tok.text)}
}

// Decode reads the assembler's output for the candidates in expected, which
// must be the exact slice that was encoded. Verdicts are returned in the same
// order, so len(result) == len(expected) on success.
func Decode(r io.Reader, expected []report.Misassembly, d Dialect) ([]Verdict, error) {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 64*1024), 16*1024*1024)

	var (
		tz   tokenizer
		line int
	)
	for sc.Scan() {
		line++
		if line <= 2 {
			continue // contigs and reference paths
		}
		for _, f := range strings.Fields(sc.Text()) {
			tz.toks = append(tz.toks, token{text: f, line: line})
		}
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("read hand-off output: %w", err)
	}
	if line < 2 {
		return nil, &DecodeError{Field: "header", Err: ErrUnexpectedEOF}
	}

	countTok, err := tz.next("count")
	if err != nil {
		return nil, err
	}
	count, err := strconv.Atoi(countTok.text)
	if err != nil || count < 0 {
		return nil, &DecodeError{Line: countTok.line, Field: "count", Err: fmt.Errorf("%w: %q", ErrMalformed, countTok.text)}
	}
	if count != len(expected) {
		return nil, &DecodeError{Line: countTok.line, Field: "count", Err: fmt.Errorf("%w: got %d, encoded %d", ErrCountMismatch, count, len(expected))}
	}

	out := make([]Verdict, 0, count)
	for i := 0; i < count; i++ {
		v, err := decodeRecord(&tz, expected[i], d)
		if err != nil {
			return nil, err
		}
		out = append(out, v)
	}
	if tz.pos < len(tz.toks) {
		tok := tz.toks[tz.pos]
		return nil, &DecodeError{Line: tok.line, Field: "end", Err: fmt.Errorf("%w: %q", ErrTrailingData, tok.text)}
	}
	return out, nil
}

func decodeRecord(tz *tokenizer, want report.Misassembly, d Dialect) (Verdict, error) {
	ready, err := tz.flag("is_ready")
	if err != nil || !ready {
		return NotReady(), err
	}

	v := Verdict{Ready: true}
	name, err := tz.next("contig_name")
	if err != nil {
		return Verdict{}, err
	}
	if name.text != want.Contig {
		return Verdict{}, &DecodeError{Line: name.line, Field: "contig_name", Err: fmt.Errorf("%w: got %q, want %q", ErrRecordMismatch, name.text, want.Contig)}
	}
	v.Contig = name.text
	if d == Tagged {
		id, err := tz.next("record_id")
		if err != nil {
			return Verdict{}, err
		}
		if wantID := RecordID(want); id.text != wantID {
			return Verdict{}, &DecodeError{Line: id.line, Field: "record_id", Err: fmt.Errorf("%w: got %s, want %s", ErrRecordMismatch, id.text, wantID)}
		}
		v.ID = id.text
	}

	if v.Start, err = decodeOutcome(tz, "start"); err != nil {
		return Verdict{}, err
	}
	if v.End, err = decodeOutcome(tz, "end"); err != nil {
		return Verdict{}, err
	}
	return v, nil
}

func decodeOutcome(tz *tokenizer, side string) (EndpointOutcome, error) {
	broken, err := tz.flag("is_" + side)
	if err != nil || !broken {
		return EndpointOutcome{State: Intact}, err
	}
	byCoverage, err := tz.flag("is_" + side + "_broken")
	if err != nil {
		return EndpointOutcome{}, err
	}
	if !byCoverage {
		return EndpointOutcome{State: BrokenUnknown}, nil
	}
	field := side + "_coverage"
	tok, err := tz.next(field)
	if err != nil {
		return EndpointOutcome{}, err
	}
	cov, err := strconv.ParseFloat(tok.text, 64)
	if err != nil || math.IsNaN(cov) || math.IsInf(cov, 0) || cov < 0 {
		return EndpointOutcome{}, &DecodeError{Line: tok.line, Field: field, Err: fmt.Errorf("%w: %q", ErrMalformed, tok.text)}
	}
	return EndpointOutcome{State: BrokenCoverage, Coverage: cov}, nil
}
