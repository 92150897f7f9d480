package automaton

import (
	"fmt"

	"github.com/vk/dfaviz/internal/dump"
)

// IOPair is one input/output assignment taking a transition, each component
// an LSB-first bit pattern over the respective variables.
type IOPair struct {
	Input  int
	Output int
}

// Edge identifies a (state, next state) pair in the edge-grouped view.
type Edge struct {
	From int
	To   int
}

// Explicit is the fully expanded automaton. The transition function is
// total: Next[s][io] is defined for every state and every combined I/O
// assignment io = input | output<<NumInputs.
type Explicit struct {
	StateBits  int
	NumInputs  int
	NumOutputs int

	StateCount int
	Initial    int
	Accepting  map[int]bool

	InputLabels  []string
	OutputLabels []string

	// Next is the explicit transition table, indexed [state][io].
	Next [][]int

	// Edges groups the I/O assignments taking each (state, next state)
	// pair, the view used for reachability and rendering.
	Edges map[Edge][]IOPair
}

// IOCount returns the number of combined input/output assignments.
func (e *Explicit) IOCount() int {
	return 1 << (e.NumInputs + e.NumOutputs)
}

// FromSymbolic expands a symbolic automaton into its explicit form by
// enumerating the full state × input × output cross product and assembling
// each next state bit-by-bit, LSB first. The cost is exponential in the
// declared widths; the dumps are produced for diagnostic-sized automata.
//
// Any index outside its declared bit-width is a MalformedDumpError naming
// the offending field and triple.
func FromSymbolic(a *dump.Automaton) (*Explicit, error) {
	for _, w := range []struct {
		field string
		width int
	}{
		{"num_state_bits", a.StateBits},
		{"num_inputs", a.NumInputs},
		{"num_outputs", a.NumOutputs},
	} {
		if w.width < 0 {
			return nil, &dump.MalformedDumpError{
				Field:  w.field,
				Detail: fmt.Sprintf("negative bit width %d", w.width),
			}
		}
	}

	stateCount := 1 << a.StateBits
	inputCount := 1 << a.NumInputs
	outputCount := 1 << a.NumOutputs

	// Index the per-bit characteristic functions for direct membership
	// tests, validating ranges on the way.
	onset := make([]map[dump.Minterm]struct{}, a.StateBits)
	for bit := range onset {
		onset[bit] = make(map[dump.Minterm]struct{})
	}
	for bit, minterms := range a.TransFuncs {
		field := fmt.Sprintf("trans_func_%d", bit)
		if bit < 0 || bit >= a.StateBits {
			return nil, &dump.MalformedDumpError{
				Field:  field,
				Detail: fmt.Sprintf("bit index %d outside declared width %d", bit, a.StateBits),
			}
		}
		for _, m := range minterms {
			if m.State < 0 || m.State >= stateCount ||
				m.Input < 0 || m.Input >= inputCount ||
				m.Output < 0 || m.Output >= outputCount {
				return nil, &dump.MalformedDumpError{
					Field:  field,
					Detail: fmt.Sprintf("triple %s outside declared widths (bit %d)", m, bit),
				}
			}
			onset[bit][m] = struct{}{}
		}
	}

	initial, err := decodeStateMinterm(a.InitialMinterm, stateCount, "initial_minterm")
	if err != nil {
		return nil, err
	}

	accepting := make(map[int]bool, len(a.AcceptingMinterms))
	for _, s := range a.AcceptingMinterms {
		// Empty entries come from trailing separators in the dump; only the
		// initial minterm treats empty as state 0.
		if s == "" {
			continue
		}
		v, err := decodeStateMinterm(s, stateCount, "accepting_minterms")
		if err != nil {
			return nil, err
		}
		accepting[v] = true
	}

	inputLabels, outputLabels := a.VarLabels()

	e := &Explicit{
		StateBits:    a.StateBits,
		NumInputs:    a.NumInputs,
		NumOutputs:   a.NumOutputs,
		StateCount:   stateCount,
		Initial:      initial,
		Accepting:    accepting,
		InputLabels:  inputLabels,
		OutputLabels: outputLabels,
		Next:         make([][]int, stateCount),
		Edges:        make(map[Edge][]IOPair),
	}

	ioCount := e.IOCount()
	for s := 0; s < stateCount; s++ {
		row := make([]int, ioCount)
		for in := 0; in < inputCount; in++ {
			for out := 0; out < outputCount; out++ {
				next := 0
				for bit := 0; bit < a.StateBits; bit++ {
					if _, ok := onset[bit][dump.Minterm{State: s, Input: in, Output: out}]; ok {
						next |= 1 << bit
					}
				}
				row[in|out<<a.NumInputs] = next
				edge := Edge{From: s, To: next}
				e.Edges[edge] = append(e.Edges[edge], IOPair{Input: in, Output: out})
			}
		}
		e.Next[s] = row
	}

	return e, nil
}

// decodeStateMinterm converts an LSB-first binary string into a state index,
// rejecting values outside the declared state space. An empty string means
// state 0, the solver's convention for an unstated initial state.
func decodeStateMinterm(s string, stateCount int, field string) (int, error) {
	if s == "" {
		return 0, nil
	}
	v, err := dump.MintermValue(s)
	if err != nil {
		return 0, &dump.MalformedDumpError{Field: field, Detail: err.Error()}
	}
	if v >= stateCount {
		return 0, &dump.MalformedDumpError{
			Field:  field,
			Detail: fmt.Sprintf("state %d (from minterm %q) outside declared state space of %d", v, s, stateCount),
		}
	}
	return v, nil
}
