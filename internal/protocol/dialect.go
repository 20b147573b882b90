package protocol

import (
	"fmt"

	"github.com/google/uuid"

	"misclass/internal/report"
)

// Dialect selects the hand-off layout.
type Dialect string

const (
	// Legacy is the positional layout understood by unmodified assemblers.
	Legacy Dialect = "legacy"
	// Tagged appends a record id to every contig name line.
	Tagged Dialect = "tagged"
)

// ParseDialect validates a dialect name; empty means Legacy.
func ParseDialect(s string) (Dialect, error) {
	switch Dialect(s) {
	case "", Legacy:
		return Legacy, nil
	case Tagged:
		return Tagged, nil
	}
	return "", fmt.Errorf("unknown hand-off dialect %q (want legacy or tagged)", s)
}

var recordNamespace = uuid.NewSHA1(uuid.NameSpaceURL, []byte("misclass/handoff/record"))

// RecordID is a deterministic id for m: the same report always yields the
// same ids, so prepare and collect can run as separate processes.
func RecordID(m report.Misassembly) string {
	key := fmt.Sprintf("%s|%d|%s|%s", m.Contig, m.Index, m.First, m.Second)
	return uuid.NewSHA1(recordNamespace, []byte(key)).String()
}
