package guard

import (
	"sort"
	"strings"

	"github.com/vk/dfaviz/internal/automaton"
)

// Space describes the Boolean variable space of a guard: input variables
// first, then output variables, each bit position one named variable.
type Space struct {
	NumInputs    int
	NumOutputs   int
	InputLabels  []string
	OutputLabels []string
}

// SpaceOf derives the guard space of an explicit automaton.
func SpaceOf(e *automaton.Explicit) Space {
	return Space{
		NumInputs:    e.NumInputs,
		NumOutputs:   e.NumOutputs,
		InputLabels:  e.InputLabels,
		OutputLabels: e.OutputLabels,
	}
}

// Width returns the number of Boolean variables.
func (s Space) Width() int { return s.NumInputs + s.NumOutputs }

// Size returns the number of points in the assignment space.
func (s Space) Size() int { return 1 << s.Width() }

// Name returns the variable name at a bit position.
func (s Space) Name(bit int) string {
	if bit < s.NumInputs {
		return s.InputLabels[bit]
	}
	return s.OutputLabels[bit-s.NumInputs]
}

// Vector packs an I/O pair into a single assignment vector, inputs in the
// low bits.
func (s Space) Vector(p automaton.IOPair) int {
	return p.Input | p.Output<<s.NumInputs
}

// Term is one conjunctive implicant: bits set in DontCare are unconstrained,
// every other bit must equal the corresponding bit of Value. Value is kept
// normalized with don't-care positions zeroed.
type Term struct {
	Value    int
	DontCare int
}

// Covers reports whether the term is satisfied by an assignment vector.
func (t Term) Covers(v int) bool {
	return v&^t.DontCare == t.Value
}

// Cover is a disjunction of terms over a guard space. An empty cover is the
// constant false; a cover containing an all-don't-care term is the constant
// true. Elided marks a non-canonical cover whose rendering omits terms.
type Cover struct {
	Terms  []Term
	Elided bool
}

// Covers reports whether any term covers the assignment vector.
func (c Cover) Covers(v int) bool {
	for _, t := range c.Terms {
		if t.Covers(v) {
			return true
		}
	}
	return false
}

// Render formats the cover with ! for negation, & for conjunction and | for
// disjunction. Multi-literal disjuncts are parenthesized. An elided cover
// gets a trailing ellipsis so it is never mistaken for a minimized formula.
func (c Cover) Render(s Space) string {
	if len(c.Terms) == 0 {
		return "false"
	}

	parts := make([]string, 0, len(c.Terms))
	for _, t := range c.Terms {
		lits := renderLiterals(t, s)
		switch {
		case len(lits) == 0:
			return "true"
		case len(lits) == 1 || len(c.Terms) == 1 && !c.Elided:
			parts = append(parts, strings.Join(lits, " & "))
		default:
			parts = append(parts, "("+strings.Join(lits, " & ")+")")
		}
	}
	out := strings.Join(parts, " | ")
	if c.Elided {
		out += " | ..."
	}
	return out
}

func renderLiterals(t Term, s Space) []string {
	var lits []string
	for bit := 0; bit < s.Width(); bit++ {
		if t.DontCare&(1<<bit) != 0 {
			continue
		}
		if t.Value&(1<<bit) != 0 {
			lits = append(lits, s.Name(bit))
		} else {
			lits = append(lits, "!"+s.Name(bit))
		}
	}
	return lits
}

// Minimizer is the guard-minimization capability threaded through the
// pipeline. Implementations must be deterministic: the same pair set always
// yields the same cover.
type Minimizer interface {
	// Minimize produces a guard cover for the assignments taking one edge.
	Minimize(pairs []automaton.IOPair, s Space) Cover
	// Name identifies the capability in configuration and diagnostics.
	Name() string
}

// vectors packs, deduplicates and sorts the pair set.
func vectors(pairs []automaton.IOPair, s Space) []int {
	set := make(map[int]struct{}, len(pairs))
	for _, p := range pairs {
		set[s.Vector(p)] = struct{}{}
	}
	out := make([]int, 0, len(set))
	for v := range set {
		out = append(out, v)
	}
	sort.Ints(out)
	return out
}

// fullCover is the constant-true cover for a saturated edge.
func fullCover(s Space) Cover {
	return Cover{Terms: []Term{{Value: 0, DontCare: s.Size() - 1}}}
}
