// Package pipeline wires the report parser, classifier, hand-off protocol
// and aggregator into the prepare / verify / collect steps of a run.
//
// The external assembler is reached only through stage.Runner, so the
// whole flow is testable with a fake runner.
package pipeline
