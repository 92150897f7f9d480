package guard

import "github.com/vk/dfaviz/internal/automaton"

// Fallback returns the minimizer used when exact minimization is switched
// off: one explicit conjunctive term for the smallest assignment vector,
// with the remaining vectors elided. The produced guard is satisfiable by
// every elided vector's edge only through the ellipsis marker, trading
// label precision for availability; Render appends the marker so the result
// is never mistaken for a minimized formula.
func Fallback() Minimizer { return fallbackMinimizer{} }

type fallbackMinimizer struct{}

func (fallbackMinimizer) Name() string { return "fallback" }

func (fallbackMinimizer) Minimize(pairs []automaton.IOPair, s Space) Cover {
	vs := vectors(pairs, s)
	if len(vs) == 0 {
		return Cover{}
	}
	if len(vs) == s.Size() {
		return fullCover(s)
	}
	return Cover{
		Terms:  []Term{{Value: vs[0]}},
		Elided: len(vs) > 1,
	}
}
