package dump

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseText(t *testing.T) {
	full := `
[solver] some unrelated log line
===PYDFA_BEGIN===
num_state_bits=2
num_inputs=1
num_outputs=1
state_var_indices=3,5
input_labels=req
output_labels=grant
trans_func_0=0,1,0;1,0,1
trans_func_1=
accepting_minterms=10;01
initial_minterm=00
===PYDFA_END===
[solver] trailing noise
`

	a, err := ParseText(strings.NewReader(full))
	require.NoError(t, err)

	assert.Equal(t, 2, a.StateBits)
	assert.Equal(t, 1, a.NumInputs)
	assert.Equal(t, 1, a.NumOutputs)
	assert.Equal(t, []int{3, 5}, a.StateVarIndices)
	assert.Equal(t, []string{"req"}, a.InputLabels)
	assert.Equal(t, []string{"grant"}, a.OutputLabels)
	assert.Equal(t, []Minterm{{State: 0, Input: 1, Output: 0}, {State: 1, Input: 0, Output: 1}}, a.TransFuncs[0])
	assert.Empty(t, a.TransFuncs[1])
	assert.Equal(t, []string{"10", "01"}, a.AcceptingMinterms)
	assert.Equal(t, "00", a.InitialMinterm)
}

func TestParseTextErrors(t *testing.T) {
	testCases := []struct {
		name        string
		input       string
		expectEmpty bool
		field       string
	}{
		{
			name:        "no block at all",
			input:       "just solver chatter\nno sentinels anywhere\n",
			expectEmpty: true,
		},
		{
			name: "zero state bits",
			input: "===PYDFA_BEGIN===\n" +
				"num_state_bits=0\nnum_inputs=1\nnum_outputs=0\n" +
				"===PYDFA_END===\n",
			expectEmpty: true,
		},
		{
			name: "block with no mandatory fields",
			input: "===PYDFA_BEGIN===\n" +
				"input_labels=a\n" +
				"===PYDFA_END===\n",
			expectEmpty: true,
		},
		{
			name: "missing num_outputs",
			input: "===PYDFA_BEGIN===\n" +
				"num_state_bits=1\nnum_inputs=1\n" +
				"===PYDFA_END===\n",
			field: "num_outputs",
		},
		{
			name: "unparsable width",
			input: "===PYDFA_BEGIN===\n" +
				"num_state_bits=two\nnum_inputs=1\nnum_outputs=0\n" +
				"===PYDFA_END===\n",
			field: "num_state_bits",
		},
		{
			name: "negative width",
			input: "===PYDFA_BEGIN===\n" +
				"num_state_bits=-1\nnum_inputs=1\nnum_outputs=0\n" +
				"===PYDFA_END===\n",
			field: "num_state_bits",
		},
		{
			name: "triple with two components",
			input: "===PYDFA_BEGIN===\n" +
				"num_state_bits=1\nnum_inputs=1\nnum_outputs=0\n" +
				"trans_func_0=0,1\n" +
				"===PYDFA_END===\n",
			field: "trans_func_0",
		},
		{
			name: "triple with junk integer",
			input: "===PYDFA_BEGIN===\n" +
				"num_state_bits=1\nnum_inputs=1\nnum_outputs=0\n" +
				"trans_func_0=0,x,0\n" +
				"===PYDFA_END===\n",
			field: "trans_func_0",
		},
		{
			name: "bad state_var_indices",
			input: "===PYDFA_BEGIN===\n" +
				"num_state_bits=1\nnum_inputs=1\nnum_outputs=0\n" +
				"state_var_indices=1,a\n" +
				"===PYDFA_END===\n",
			field: "state_var_indices",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := ParseText(strings.NewReader(tc.input))
			require.Error(t, err)

			if tc.expectEmpty {
				require.ErrorIs(t, err, ErrEmptyDump)
				return
			}
			var malformed *MalformedDumpError
			require.ErrorAs(t, err, &malformed)
			assert.Equal(t, tc.field, malformed.Field)
		})
	}
}

func TestParseTextLineNumbers(t *testing.T) {
	input := "===PYDFA_BEGIN===\n" +
		"num_state_bits=1\n" +
		"num_inputs=1\n" +
		"num_outputs=0\n" +
		"trans_func_0=0,1\n" +
		"===PYDFA_END===\n"

	_, err := ParseText(strings.NewReader(input))
	var malformed *MalformedDumpError
	require.ErrorAs(t, err, &malformed)
	assert.Equal(t, 5, malformed.Line)
	assert.Contains(t, malformed.Error(), "line 5")
}

func TestParseTextIgnoresUnknownKeys(t *testing.T) {
	input := "===PYDFA_BEGIN===\n" +
		"num_state_bits=1\n" +
		"num_inputs=1\n" +
		"num_outputs=0\n" +
		"future_field=whatever\n" +
		"a line without any separator\n" +
		"===PYDFA_END===\n"

	a, err := ParseText(strings.NewReader(input))
	require.NoError(t, err)
	assert.Equal(t, 1, a.StateBits)
}
