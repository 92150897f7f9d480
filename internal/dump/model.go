package dump

import "fmt"

// Minterm is one satisfying assignment of a transition-function bit: the
// (state, input, output) triple for which that bit evaluates to 1.
type Minterm struct {
	State  int
	Input  int
	Output int
}

// String renders the triple in the dump's own comma-separated form.
func (m Minterm) String() string {
	return fmt.Sprintf("%d,%d,%d", m.State, m.Input, m.Output)
}

// Automaton is the parsed symbolic form of a DFA: a positive-form
// characteristic function per next-state bit, plus acceptance and initial
// minterms. Indices are untrusted until the explicit builder validates them.
type Automaton struct {
	StateBits  int
	NumInputs  int
	NumOutputs int

	// StateVarIndices records the solver's variable ordering. Informational only.
	StateVarIndices []int

	InputLabels  []string
	OutputLabels []string

	// TransFuncs maps a state-bit index to the minterms of its characteristic
	// function. A missing or empty entry means the bit is constantly 0.
	TransFuncs map[int][]Minterm

	// AcceptingMinterms holds LSB-first binary strings denoting accepting states.
	AcceptingMinterms []string

	// InitialMinterm is an LSB-first binary string; empty means state 0.
	InitialMinterm string
}

// VarLabels returns the input and output variable names in bit order,
// synthesizing i0,i1,... and o0,o1,... when the dump carried no labels.
func (a *Automaton) VarLabels() (inputs, outputs []string) {
	inputs = make([]string, a.NumInputs)
	for i := range inputs {
		if i < len(a.InputLabels) {
			inputs[i] = a.InputLabels[i]
		} else {
			inputs[i] = fmt.Sprintf("i%d", i)
		}
	}
	outputs = make([]string, a.NumOutputs)
	for i := range outputs {
		if i < len(a.OutputLabels) {
			outputs[i] = a.OutputLabels[i]
		} else {
			outputs[i] = fmt.Sprintf("o%d", i)
		}
	}
	return inputs, outputs
}

// MintermValue decodes an LSB-first binary string: the character at index i
// contributes 1<<i when it is '1'. This bit ordering is a fixed contract with
// the solver; swapping it would silently renumber every state.
func MintermValue(s string) (int, error) {
	v := 0
	for i, c := range s {
		switch c {
		case '1':
			v |= 1 << i
		case '0':
		default:
			return 0, fmt.Errorf("invalid character %q in minterm %q", c, s)
		}
	}
	return v, nil
}
