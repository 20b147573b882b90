package protocol

import (
	"bytes"
	"io"
	"strconv"

	"misclass/internal/report"
)

// Header is the two path lines that open every hand-off file.
type Header struct {
	ContigsPath   string
	ReferencePath string
}

// Marshal renders the hand-off input for the given broken-bone records.
// It never fails; count always equals len(records) and order is kept.
func Marshal(h Header, records []report.Misassembly, d Dialect) []byte {
	var b bytes.Buffer
	b.WriteString(h.ContigsPath)
	b.WriteByte('\n')
	b.WriteString(h.ReferencePath)
	b.WriteByte('\n')
	b.WriteString(strconv.Itoa(len(records)))
	b.WriteByte('\n')
	for _, m := range records {
		b.WriteString(m.Contig)
		if d == Tagged {
			b.WriteByte(' ')
			b.WriteString(RecordID(m))
		}
		b.WriteByte('\n')
		writeAlignment(&b, m.First)
		writeAlignment(&b, m.Second)
	}
	return b.Bytes()
}

// Encode writes Marshal's output to w.
func Encode(w io.Writer, h Header, records []report.Misassembly, d Dialect) error {
	_, err := w.Write(Marshal(h, records, d))
	return err
}

func writeAlignment(b *bytes.Buffer, a report.Alignment) {
	b.WriteString(strconv.Itoa(a.RefPos1))
	b.WriteByte(' ')
	b.WriteString(strconv.Itoa(a.RefPos2))
	b.WriteByte(' ')
	b.WriteString(strconv.Itoa(a.ContigPos1))
	b.WriteByte(' ')
	b.WriteString(strconv.Itoa(a.ContigPos2))
	b.WriteByte('\n')
}

// MarshalVerdicts renders an output file in the layout the decoder reads.
// It mirrors what the assembler's second stage writes and is used to stand
// in for it.
func MarshalVerdicts(h Header, verdicts []Verdict, d Dialect) []byte {
	var b bytes.Buffer
	b.WriteString(h.ContigsPath)
	b.WriteByte('\n')
	b.WriteString(h.ReferencePath)
	b.WriteByte('\n')
	b.WriteString(strconv.Itoa(len(verdicts)))
	b.WriteByte('\n')
	for _, v := range verdicts {
		if !v.Ready {
			b.WriteString("0\n")
			continue
		}
		b.WriteString("1\n")
		b.WriteString(v.Contig)
		if d == Tagged {
			b.WriteByte(' ')
			b.WriteString(v.ID)
		}
		b.WriteByte('\n')
		writeOutcome(&b, v.Start)
		writeOutcome(&b, v.End)
	}
	return b.Bytes()
}

func writeOutcome(b *bytes.Buffer, o EndpointOutcome) {
	switch o.State {
	case BrokenCoverage:
		b.WriteString("1 1 ")
		b.WriteString(strconv.FormatFloat(o.Coverage, 'g', -1, 64))
	case BrokenUnknown:
		b.WriteString("1 0")
	default:
		b.WriteString("0")
	}
	b.WriteByte('\n')
}
