package automaton

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// mkEdges builds a grouped edge map from (from, to) pairs; the I/O payload is
// irrelevant to connectivity.
func mkEdges(pairs ...[2]int) map[Edge][]IOPair {
	edges := make(map[Edge][]IOPair)
	for _, p := range pairs {
		edge := Edge{From: p[0], To: p[1]}
		edges[edge] = append(edges[edge], IOPair{})
	}
	return edges
}

func mkStates(n int) map[int]bool {
	states := make(map[int]bool, n)
	for s := 0; s < n; s++ {
		states[s] = true
	}
	return states
}

func TestSCCs(t *testing.T) {
	testCases := []struct {
		name     string
		states   map[int]bool
		edges    map[Edge][]IOPair
		expected []SCC
	}{
		{
			name:     "linear chain is all singletons",
			states:   mkStates(3),
			edges:    mkEdges([2]int{0, 1}, [2]int{1, 2}),
			expected: []SCC{{0}, {1}, {2}},
		},
		{
			name:     "self loop stays a singleton",
			states:   mkStates(1),
			edges:    mkEdges([2]int{0, 0}),
			expected: []SCC{{0}},
		},
		{
			name:     "single full cycle",
			states:   mkStates(4),
			edges:    mkEdges([2]int{0, 1}, [2]int{1, 2}, [2]int{2, 3}, [2]int{3, 0}),
			expected: []SCC{{0, 1, 2, 3}},
		},
		{
			name:   "two cycles joined by a bridge",
			states: mkStates(4),
			edges: mkEdges(
				[2]int{0, 1}, [2]int{1, 0},
				[2]int{1, 2},
				[2]int{2, 3}, [2]int{3, 2},
			),
			expected: []SCC{{0, 1}, {2, 3}},
		},
		{
			name:     "edges outside the state set are ignored",
			states:   map[int]bool{0: true},
			edges:    mkEdges([2]int{0, 1}, [2]int{1, 0}),
			expected: []SCC{{0}},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, SCCs(tc.states, tc.edges))
		})
	}
}

func TestSCCsFromAutomaton(t *testing.T) {
	e, err := FromSymbolic(twoBitCounter())
	require.NoError(t, err)

	sccs := SCCs(Reachable(e), e.Edges)
	assert.Equal(t, []SCC{{0}, {1, 2}}, sccs)
}

func TestSCCsPartition(t *testing.T) {
	states := mkStates(6)
	edges := mkEdges(
		[2]int{0, 1}, [2]int{1, 2}, [2]int{2, 0},
		[2]int{2, 3},
		[2]int{3, 4}, [2]int{4, 3},
		[2]int{4, 5},
	)

	sccs := SCCs(states, edges)

	seen := make(map[int]int)
	for i, scc := range sccs {
		require.NotEmpty(t, scc)
		for _, s := range scc {
			_, dup := seen[s]
			require.False(t, dup, "state %d in two components", s)
			seen[s] = i
		}
	}
	assert.Len(t, seen, len(states))
}

func TestSCCsDeepCycle(t *testing.T) {
	// A single cycle long enough that a recursive Tarjan would be at risk of
	// exhausting the goroutine stack on pathological inputs.
	const n = 5000
	pairs := make([][2]int, n)
	for i := 0; i < n; i++ {
		pairs[i] = [2]int{i, (i + 1) % n}
	}
	edges := mkEdges(pairs...)

	sccs := SCCs(mkStates(n), edges)

	require.Len(t, sccs, 1)
	require.Len(t, sccs[0], n)
	for i, s := range sccs[0] {
		if s != i {
			t.Fatalf("component not sorted at index %d: got %d", i, s)
		}
	}
}
