package guard

import (
	"github.com/go-air/gini"
	"github.com/go-air/gini/logic"
	"github.com/go-air/gini/z"

	"github.com/vk/dfaviz/internal/automaton"
)

// Verify checks a produced cover against the original pair set with a SAT
// query. For a canonical cover it decides exact equivalence: the cover and
// the onset characteristic function must agree on every assignment. For an
// elided cover only soundness is required: every original vector must
// satisfy the cover.
func Verify(cover Cover, pairs []automaton.IOPair, s Space) bool {
	c := logic.NewC()

	vars := make([]z.Lit, s.Width())
	for i := range vars {
		vars[i] = c.Lit()
	}

	coverLit := coverFormula(c, vars, cover.Terms)
	onsetLit := onsetFormula(c, vars, vectors(pairs, s))

	// The miter is satisfiable exactly when the two formulas disagree on
	// some assignment (or, for elided covers, when some onset vector
	// escapes the rendered terms plus ellipsis).
	var miter z.Lit
	if cover.Elided {
		// The ellipsis stands in for the omitted vectors, so only the
		// explicit terms are checkable: none may cover a point outside
		// the onset.
		miter = c.And(coverLit, onsetLit.Not())
	} else {
		miter = c.Xor(coverLit, onsetLit)
	}

	switch miter {
	case c.F:
		return true
	case c.T:
		return false
	}

	g := gini.New()
	c.ToCnf(g)
	g.Assume(miter)
	return g.Solve() != 1
}

// coverFormula builds the disjunction of conjunctive terms as a circuit.
func coverFormula(c *logic.C, vars []z.Lit, terms []Term) z.Lit {
	if len(terms) == 0 {
		return c.F
	}
	disjuncts := make([]z.Lit, 0, len(terms))
	for _, t := range terms {
		var lits []z.Lit
		for bit := range vars {
			if t.DontCare&(1<<bit) != 0 {
				continue
			}
			if t.Value&(1<<bit) != 0 {
				lits = append(lits, vars[bit])
			} else {
				lits = append(lits, vars[bit].Not())
			}
		}
		if len(lits) == 0 {
			return c.T
		}
		disjuncts = append(disjuncts, c.Ands(lits...))
	}
	return c.Ors(disjuncts...)
}

// onsetFormula builds the characteristic function of the vector set as a
// disjunction of full minterms.
func onsetFormula(c *logic.C, vars []z.Lit, vs []int) z.Lit {
	if len(vs) == 0 {
		return c.F
	}
	if len(vars) == 0 {
		// Zero-width space: the only assignment is in the set.
		return c.T
	}
	disjuncts := make([]z.Lit, 0, len(vs))
	for _, v := range vs {
		lits := make([]z.Lit, len(vars))
		for bit := range vars {
			if v&(1<<bit) != 0 {
				lits[bit] = vars[bit]
			} else {
				lits[bit] = vars[bit].Not()
			}
		}
		disjuncts = append(disjuncts, c.Ands(lits...))
	}
	return c.Ors(disjuncts...)
}
