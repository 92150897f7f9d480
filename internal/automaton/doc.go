// Package automaton expands a symbolic dump into a fully explicit
// transition table and analyzes it: reachability from the initial state,
// strongly connected components over the reachable subgraph, and the
// weak-automaton property. The explicit form is built once and treated as
// immutable by every analysis.
package automaton
