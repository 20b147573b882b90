// Package writers turns a run's result into serialized output.
//
// Design:
//   • Writers own all presentation knowledge (text summary + TSV, JSON, YAML).
//   • Parsing, classification and the hand-off protocol stay presentation-free.
//   • JSON/YAML go through pkg/api (v1) for a stable wire format.
package writers
