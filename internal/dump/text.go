package dump

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// Sentinel lines delimiting the dump block inside the solver's text output.
// Everything outside the block is ignored, so the solver's ordinary logging
// can be piped in unfiltered.
const (
	BeginSentinel = "===PYDFA_BEGIN==="
	EndSentinel   = "===PYDFA_END==="
)

// mandatoryFields must all be present inside a dump block. Their absence is
// a parse failure; every other field defaults to an empty collection.
var mandatoryFields = []string{"num_state_bits", "num_inputs", "num_outputs"}

// ParseText scans a text stream for a sentinel-delimited dump block and
// decodes its key=value records. Field order inside the block is irrelevant.
// It returns ErrEmptyDump when no block is found or the declared state width
// is zero, and a MalformedDumpError for unparsable records.
func ParseText(r io.Reader) (*Automaton, error) {
	a := &Automaton{TransFuncs: make(map[int][]Minterm)}
	seen := make(map[string]bool)

	inBlock := false
	sawBlock := false
	lineNo := 0

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 16*1024*1024)
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())

		switch line {
		case BeginSentinel:
			inBlock = true
			sawBlock = true
			continue
		case EndSentinel:
			inBlock = false
			continue
		}
		if !inBlock {
			continue
		}

		key, val, ok := strings.Cut(line, "=")
		if !ok {
			continue
		}
		if err := applyField(a, seen, key, val, lineNo); err != nil {
			return nil, err
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading dump: %w", err)
	}

	if !sawBlock {
		return nil, ErrEmptyDump
	}
	return finish(a, seen)
}

// applyField decodes a single key=value record into the automaton. Unknown
// keys are ignored, matching the solver's habit of growing the dump format.
func applyField(a *Automaton, seen map[string]bool, key, val string, line int) error {
	switch {
	case key == "num_state_bits":
		return setIntField(&a.StateBits, seen, key, val, line)
	case key == "num_inputs":
		return setIntField(&a.NumInputs, seen, key, val, line)
	case key == "num_outputs":
		return setIntField(&a.NumOutputs, seen, key, val, line)

	case key == "state_var_indices":
		if val == "" {
			return nil
		}
		for _, part := range strings.Split(val, ",") {
			n, err := strconv.Atoi(strings.TrimSpace(part))
			if err != nil {
				return &MalformedDumpError{Field: key, Line: line, Detail: fmt.Sprintf("invalid index %q", part)}
			}
			a.StateVarIndices = append(a.StateVarIndices, n)
		}

	case key == "input_labels":
		if val != "" {
			a.InputLabels = strings.Split(val, ",")
		}
	case key == "output_labels":
		if val != "" {
			a.OutputLabels = strings.Split(val, ",")
		}

	case strings.HasPrefix(key, "trans_func_"):
		bit, err := strconv.Atoi(strings.TrimPrefix(key, "trans_func_"))
		if err != nil {
			return &MalformedDumpError{Field: key, Line: line, Detail: "invalid bit index suffix"}
		}
		minterms, err := parseMinterms(val)
		if err != nil {
			return &MalformedDumpError{Field: key, Line: line, Detail: err.Error()}
		}
		a.TransFuncs[bit] = minterms

	case key == "accepting_minterms":
		if val != "" {
			a.AcceptingMinterms = strings.Split(val, ";")
		}
	case key == "initial_minterm":
		a.InitialMinterm = val
	}
	return nil
}

func setIntField(dst *int, seen map[string]bool, key, val string, line int) error {
	n, err := strconv.Atoi(strings.TrimSpace(val))
	if err != nil || n < 0 {
		return &MalformedDumpError{Field: key, Line: line, Detail: fmt.Sprintf("expected a non-negative integer, got %q", val)}
	}
	*dst = n
	seen[key] = true
	return nil
}

// parseMinterms decodes a ;-separated list of state,input,output triples.
// An empty value means the bit's characteristic function is empty.
func parseMinterms(val string) ([]Minterm, error) {
	if val == "" {
		return []Minterm{}, nil
	}
	var out []Minterm
	for _, entry := range strings.Split(val, ";") {
		parts := strings.Split(entry, ",")
		if len(parts) != 3 {
			return nil, fmt.Errorf("expected a state,input,output triple, got %q", entry)
		}
		var m Minterm
		for i, dst := range []*int{&m.State, &m.Input, &m.Output} {
			n, err := strconv.Atoi(strings.TrimSpace(parts[i]))
			if err != nil {
				return nil, fmt.Errorf("invalid integer %q in triple %q", parts[i], entry)
			}
			*dst = n
		}
		out = append(out, m)
	}
	return out, nil
}

// finish enforces the mandatory-field contract shared by both parsers: a
// block with none of the width fields is an empty dump, a block with some
// but not all of them is malformed, and a zero state width means there is
// no automaton to reconstruct.
func finish(a *Automaton, seen map[string]bool) (*Automaton, error) {
	present := 0
	for _, f := range mandatoryFields {
		if seen[f] {
			present++
		}
	}
	if present == 0 {
		return nil, ErrEmptyDump
	}
	if present < len(mandatoryFields) {
		for _, f := range mandatoryFields {
			if !seen[f] {
				return nil, &MalformedDumpError{Field: f, Detail: "mandatory field missing"}
			}
		}
	}
	if a.StateBits == 0 {
		return nil, ErrEmptyDump
	}
	return a, nil
}
