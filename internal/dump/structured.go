package dump

import (
	"fmt"
	"sort"
	"strconv"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/zclconf/go-cty/cty"
	"github.com/zclconf/go-cty/cty/gocty"
)

// ParseStructured decodes a structured dump document carrying the same field
// set as the text format, with trans_funcs keyed by bit index. JSON and
// native HCL syntax are both accepted; the flavor is chosen by the json
// argument. The filename is used only for diagnostics.
func ParseStructured(src []byte, filename string, json bool) (*Automaton, error) {
	parser := hclparse.NewParser()

	var file *hcl.File
	var diags hcl.Diagnostics
	if json {
		file, diags = parser.ParseJSON(src, filename)
	} else {
		file, diags = parser.ParseHCL(src, filename)
	}
	if diags.HasErrors() {
		return nil, &MalformedDumpError{Field: "document", Detail: diags.Error()}
	}

	attrs, diags := file.Body.JustAttributes()
	if diags.HasErrors() {
		return nil, &MalformedDumpError{Field: "document", Detail: diags.Error()}
	}

	a := &Automaton{TransFuncs: make(map[int][]Minterm)}
	seen := make(map[string]bool)

	for name, attr := range attrs {
		val, diags := attr.Expr.Value(nil)
		if diags.HasErrors() {
			return nil, &MalformedDumpError{Field: name, Detail: diags.Error()}
		}
		var err error
		switch name {
		case "num_state_bits":
			a.StateBits, err = ctyWidth(name, val)
			seen[name] = err == nil
		case "num_inputs":
			a.NumInputs, err = ctyWidth(name, val)
			seen[name] = err == nil
		case "num_outputs":
			a.NumOutputs, err = ctyWidth(name, val)
			seen[name] = err == nil
		case "state_var_indices":
			a.StateVarIndices, err = ctyIntSlice(name, val)
		case "input_labels":
			a.InputLabels, err = ctyStringSlice(name, val)
		case "output_labels":
			a.OutputLabels, err = ctyStringSlice(name, val)
		case "trans_funcs":
			err = decodeTransFuncs(a, val)
		case "accepting_minterms":
			a.AcceptingMinterms, err = ctyStringSlice(name, val)
		case "initial_minterm":
			a.InitialMinterm, err = ctyString(name, val)
		}
		if err != nil {
			return nil, err
		}
	}

	return finish(a, seen)
}

// decodeTransFuncs reads the per-bit characteristic functions from an object
// keyed by bit index, each value a list of 3-element state,input,output
// tuples.
func decodeTransFuncs(a *Automaton, val cty.Value) error {
	if !val.Type().IsObjectType() && !val.Type().IsMapType() {
		return &MalformedDumpError{Field: "trans_funcs", Detail: "expected an object keyed by bit index"}
	}
	if val.LengthInt() == 0 {
		return nil
	}

	// Sort keys so any error is reported deterministically.
	byKey := val.AsValueMap()
	keys := make([]string, 0, len(byKey))
	for k := range byKey {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	for _, k := range keys {
		bit, err := strconv.Atoi(k)
		if err != nil {
			return &MalformedDumpError{Field: "trans_funcs", Detail: fmt.Sprintf("invalid bit index key %q", k)}
		}
		field := fmt.Sprintf("trans_funcs[%d]", bit)

		entry := byKey[k]
		if !entry.CanIterateElements() {
			return &MalformedDumpError{Field: field, Detail: "expected a list of triples"}
		}
		minterms := []Minterm{}
		for _, tuple := range entry.AsValueSlice() {
			if !tuple.CanIterateElements() || tuple.LengthInt() != 3 {
				return &MalformedDumpError{Field: field, Detail: "expected a state,input,output triple"}
			}
			elems := tuple.AsValueSlice()
			var m Minterm
			for i, dst := range []*int{&m.State, &m.Input, &m.Output} {
				n, err := ctyInt(field, elems[i])
				if err != nil {
					return err
				}
				*dst = n
			}
			minterms = append(minterms, m)
		}
		a.TransFuncs[bit] = minterms
	}
	return nil
}

// ctyWidth decodes a bit-width field, which must be non-negative.
func ctyWidth(field string, val cty.Value) (int, error) {
	n, err := ctyInt(field, val)
	if err != nil {
		return 0, err
	}
	if n < 0 {
		return 0, &MalformedDumpError{Field: field, Detail: fmt.Sprintf("expected a non-negative integer, got %d", n)}
	}
	return n, nil
}

func ctyInt(field string, val cty.Value) (int, error) {
	var n int
	if err := gocty.FromCtyValue(val, &n); err != nil {
		return 0, &MalformedDumpError{Field: field, Detail: fmt.Sprintf("expected an integer: %v", err)}
	}
	return n, nil
}

func ctyString(field string, val cty.Value) (string, error) {
	var s string
	if err := gocty.FromCtyValue(val, &s); err != nil {
		return "", &MalformedDumpError{Field: field, Detail: fmt.Sprintf("expected a string: %v", err)}
	}
	return s, nil
}

func ctyIntSlice(field string, val cty.Value) ([]int, error) {
	if !val.CanIterateElements() {
		return nil, &MalformedDumpError{Field: field, Detail: "expected a list of integers"}
	}
	var out []int
	for _, elem := range val.AsValueSlice() {
		n, err := ctyInt(field, elem)
		if err != nil {
			return nil, err
		}
		out = append(out, n)
	}
	return out, nil
}

func ctyStringSlice(field string, val cty.Value) ([]string, error) {
	if !val.CanIterateElements() {
		return nil, &MalformedDumpError{Field: field, Detail: "expected a list of strings"}
	}
	var out []string
	for _, elem := range val.AsValueSlice() {
		s, err := ctyString(field, elem)
		if err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	return out, nil
}
