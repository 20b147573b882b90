package report

import (
	"fmt"
	"io"
	"regexp"
	"strconv"
	"strings"

	"misclass/internal/fileio"
)

// Parser extracts extensive misassemblies from a contigs report.
// A Parser is immutable and safe to reuse.
type Parser struct {
	vocab Vocabulary

	contigRe *regexp.Regexp // contig marker followed by at least one character
	markerRe *regexp.Regexp // misassembly marker with text on both sides
	prevRe   *regexp.Regexp // alignment header that opens a sub-block
	nextRe   *regexp.Regexp // alignment header that closes a sub-block
	nameRe   *regexp.Regexp
	alignRe  *regexp.Regexp
	kindRe   *regexp.Regexp
}

// NewParser compiles v into a Parser.
func NewParser(v Vocabulary) (*Parser, error) {
	if v.ContigMarker == "" || v.MisassemblyMarker == "" || v.AlignmentHeader == "" {
		return nil, fmt.Errorf("vocabulary %q: markers must not be empty", v.Version)
	}
	p := &Parser{vocab: v}
	var err error
	compile := func(dst **regexp.Regexp, expr string) {
		if err != nil {
			return
		}
		*dst, err = regexp.Compile(expr)
		if err != nil {
			err = fmt.Errorf("vocabulary %q: %w", v.Version, err)
		}
	}
	compile(&p.contigRe, regexp.QuoteMeta(v.ContigMarker)+`.`)
	compile(&p.markerRe, `.`+regexp.QuoteMeta(v.MisassemblyMarker)+`.`)
	compile(&p.prevRe, regexp.QuoteMeta(v.AlignmentHeader)+` .`)
	compile(&p.nextRe, `.`+regexp.QuoteMeta(v.AlignmentHeader)+`.`)
	compile(&p.nameRe, v.ContigName)
	compile(&p.alignRe, v.Alignment)
	compile(&p.kindRe, v.Kind)
	if err != nil {
		return nil, err
	}
	if n := p.alignRe.NumSubexp(); n != 4 {
		return nil, fmt.Errorf("vocabulary %q: alignment pattern has %d groups, want 4", v.Version, n)
	}
	if p.kindRe.NumSubexp() < 1 {
		return nil, fmt.Errorf("vocabulary %q: kind pattern needs a capture group", v.Version)
	}
	return p, nil
}

// Vocabulary returns the vocabulary the parser was built from.
func (p *Parser) Vocabulary() Vocabulary { return p.vocab }

// ParseReader reads r to the end and parses it.
func (p *Parser) ParseReader(r io.Reader) (Result, error) {
	b, err := io.ReadAll(r)
	if err != nil {
		return Result{}, err
	}
	return p.Parse(string(b)), nil
}

// ParseFile parses the report at path ("-" reads stdin, gzip is detected).
func (p *Parser) ParseFile(path string) (Result, error) {
	rc, err := fileio.Open(path)
	if err != nil {
		return Result{}, fmt.Errorf("read report %s: %w", path, err)
	}
	defer rc.Close()
	res, err := p.ParseReader(rc)
	if err != nil {
		return Result{}, fmt.Errorf("read report %s: %w", path, err)
	}
	return res, nil
}

// Parse scans text paragraph by paragraph. Records keep their order of
// appearance; malformed sub-blocks are reported in Result.Skipped.
func (p *Parser) Parse(text string) Result {
	lines := splitLines(text)
	var res Result
	for i := 0; i < len(lines); {
		if lines[i] == "" {
			i++
			continue
		}
		end := i
		for end < len(lines) && lines[end] != "" {
			end++
		}
		p.scanParagraph(lines[i:end], i, &res)
		i = end
	}
	return res
}

// scanParagraph handles one run of non-blank lines. base is the 0-based
// index of para[0] in the whole report.
func (p *Parser) scanParagraph(para []string, base int, res *Result) {
	start := -1
	for i, l := range para {
		if loc := p.contigRe.FindStringIndex(l); loc != nil {
			start = i
			// The block text begins at the marker itself.
			para = append([]string(nil), para...)
			para[i] = l[loc[0]:]
			break
		}
	}
	if start < 0 {
		return
	}
	block := para[start:]
	base += start

	var markers []int
	for j := 1; j < len(block)-1; j++ {
		if p.markerRe.MatchString(block[j]) {
			markers = append(markers, j)
		}
	}
	if len(markers) == 0 {
		return
	}

	name := p.nameRe.FindString(strings.Join(block, "\n"))

	// Each marker opens its own window, so two markers around a shared
	// alignment line both produce a record.
	for _, j := range markers {
		line := base + j + 1
		prevLoc := p.prevRe.FindStringIndex(block[j-1])
		if prevLoc == nil || !p.nextRe.MatchString(block[j+1]) {
			continue
		}
		if name == "" {
			res.Skipped = append(res.Skipped, Skip{Line: line, Reason: "contig block has no contig name"})
			continue
		}
		window := block[j-1][prevLoc[0]:] + "\n" + block[j] + "\n" + block[j+1]
		m, reason := p.buildRecord(window, block[j])
		if reason != "" {
			res.Skipped = append(res.Skipped, Skip{Contig: name, Line: line, Reason: reason})
			continue
		}
		m.Index = len(res.Records)
		m.Line = line
		m.Contig = name
		res.Records = append(res.Records, m)
	}
}

func (p *Parser) buildRecord(window, markerLine string) (Misassembly, string) {
	matches := p.alignRe.FindAllStringSubmatch(window, -1)
	if len(matches) != 2 {
		return Misassembly{}, fmt.Sprintf("found %d alignments around breakpoint, want 2", len(matches))
	}
	var aligns [2]Alignment
	for i, m := range matches {
		var v [4]int
		for k := 0; k < 4; k++ {
			n, err := strconv.Atoi(m[k+1])
			if err != nil {
				return Misassembly{}, fmt.Sprintf("bad coordinate %q: %v", m[k+1], err)
			}
			v[k] = n
		}
		aligns[i] = NewAlignment(v[0], v[1], v[2], v[3])
	}

	from := strings.Index(markerLine, p.vocab.MisassemblyMarker)
	km := p.kindRe.FindStringSubmatch(markerLine[from:])
	if km == nil {
		return Misassembly{}, "misassembly kind not found"
	}
	return Misassembly{Kind: km[1], First: aligns[0], Second: aligns[1]}, ""
}

func splitLines(text string) []string {
	lines := strings.Split(text, "\n")
	for i, l := range lines {
		lines[i] = strings.TrimSuffix(l, "\r")
	}
	return lines
}
