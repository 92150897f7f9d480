// Package dump decodes the symbolic automaton dump emitted by the synthesis
// solver into an intermediate model. Two encodings are supported: a textual
// block of key=value records delimited by fixed sentinel lines, and a
// structured document (JSON or HCL) carrying the same field set.
//
// The parsers perform no validation against automaton invariants; index
// ranges are checked by the explicit builder.
package dump
