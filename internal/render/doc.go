// Package render composes the analyzed automaton into a Graphviz DOT
// document and drives the external layout tool. The document is byte-stable
// for a given automaton: nodes and edges are emitted in sorted order.
package render
