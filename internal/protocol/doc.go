// Package protocol implements the line-oriented hand-off files exchanged with
// the assembler's distance-estimation stage.
//
// The input file lists broken-bone candidates; the output file carries one
// verdict per candidate in the same order. Records are correlated by
// position. The tagged dialect adds a record id to each contig name line so
// that a reordered or truncated output is detected instead of misattributed.
package protocol
