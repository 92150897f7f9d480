package automaton

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vk/dfaviz/internal/dump"
)

func TestReachable(t *testing.T) {
	e, err := FromSymbolic(twoBitCounter())
	require.NoError(t, err)

	reachable := Reachable(e)

	assert.Equal(t, map[int]bool{0: true, 1: true, 2: true}, reachable)
	assert.NotContains(t, reachable, 3)
}

func TestReachableInitialOnly(t *testing.T) {
	// An automaton with no onset minterms sinks into state 0 immediately.
	e, err := FromSymbolic(&dump.Automaton{StateBits: 2})
	require.NoError(t, err)

	assert.Equal(t, map[int]bool{0: true}, Reachable(e))
}

func TestAllStates(t *testing.T) {
	e, err := FromSymbolic(twoBitCounter())
	require.NoError(t, err)

	all := AllStates(e)
	assert.Len(t, all, 4)
	for s := 0; s < 4; s++ {
		assert.True(t, all[s], "state %d", s)
	}
}
