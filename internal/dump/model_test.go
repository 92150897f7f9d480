package dump

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMintermValue(t *testing.T) {
	testCases := []struct {
		name      string
		minterm   string
		expectErr bool
		expected  int
	}{
		{name: "empty string", minterm: "", expected: 0},
		{name: "all zeros", minterm: "000", expected: 0},
		{name: "lsb first single bit", minterm: "10", expected: 1},
		{name: "lsb first high bit", minterm: "01", expected: 2},
		{name: "mixed bits", minterm: "011", expected: 6},
		{name: "error - non binary character", minterm: "1x0", expectErr: true},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			v, err := MintermValue(tc.minterm)

			if tc.expectErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.expected, v)
		})
	}
}

func TestVarLabels(t *testing.T) {
	t.Run("labels from dump", func(t *testing.T) {
		a := &Automaton{
			NumInputs:    2,
			NumOutputs:   1,
			InputLabels:  []string{"req", "cancel"},
			OutputLabels: []string{"grant"},
		}
		inputs, outputs := a.VarLabels()
		assert.Equal(t, []string{"req", "cancel"}, inputs)
		assert.Equal(t, []string{"grant"}, outputs)
	})

	t.Run("synthesized when absent", func(t *testing.T) {
		a := &Automaton{NumInputs: 2, NumOutputs: 2}
		inputs, outputs := a.VarLabels()
		assert.Equal(t, []string{"i0", "i1"}, inputs)
		assert.Equal(t, []string{"o0", "o1"}, outputs)
	})

	t.Run("partial labels padded", func(t *testing.T) {
		a := &Automaton{NumInputs: 2, NumOutputs: 0, InputLabels: []string{"req"}}
		inputs, outputs := a.VarLabels()
		assert.Equal(t, []string{"req", "i1"}, inputs)
		assert.Empty(t, outputs)
	})
}
