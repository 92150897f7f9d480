// Package guard compresses the set of input/output assignments labeling one
// explicit edge into a compact Boolean guard over the named input and output
// variables.
//
// The minimization capability is an explicit value chosen once at startup
// and passed to callers, never a package-level toggle. The exact minimizer
// computes a sum-of-products cover of precisely the given assignment set;
// the fallback renders a single representative term and marks the guard as
// non-canonical. Verify cross-checks a cover against its assignment set
// with a SAT query.
package guard
