package render

import (
	"bytes"
	"log/slog"
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vk/dfaviz/internal/automaton"
	"github.com/vk/dfaviz/internal/dump"
	"github.com/vk/dfaviz/internal/guard"
)

// buildFixture expands the 2-bit cycle automaton: 0 -> 1 -> 2 -> 1, state 3
// unreachable, state 1 accepting.
func buildFixture(t *testing.T) *automaton.Explicit {
	t.Helper()
	e, err := automaton.FromSymbolic(&dump.Automaton{
		StateBits: 2,
		TransFuncs: map[int][]dump.Minterm{
			0: {{State: 0}, {State: 2}},
			1: {{State: 1}},
		},
		AcceptingMinterms: []string{"10"},
	})
	require.NoError(t, err)
	return e
}

func TestDocument(t *testing.T) {
	e := buildFixture(t)
	states := automaton.Reachable(e)
	sccs := automaton.SCCs(states, e.Edges)

	doc := Document(e, states, sccs, guard.Exact())

	assert.True(t, strings.HasPrefix(doc, "digraph DFA {\n"))
	assert.True(t, strings.HasSuffix(doc, "}\n"))
	assert.Contains(t, doc, "rankdir=LR;")
	assert.Contains(t, doc, `__start [shape=none, label=""];`)
	assert.Contains(t, doc, "__start -> 0;")

	// Accepting states are green double circles; the rest plain circles.
	assert.Contains(t, doc, `1 [shape=doublecircle, color=green`)
	assert.Contains(t, doc, `0 [shape=circle, color=black`)
	assert.Contains(t, doc, `2 [shape=circle, color=black`)

	// The unreachable state is absent entirely.
	assert.NotContains(t, doc, "    3 [")
	assert.NotContains(t, doc, "3 ->")

	// Zero I/O variables make every guard the constant true.
	assert.Contains(t, doc, `0 -> 1 [label="true"];`)
	assert.Contains(t, doc, `1 -> 2 [label="true"];`)
	assert.Contains(t, doc, `2 -> 1 [label="true"];`)
}

func TestDocumentSCCFills(t *testing.T) {
	e := buildFixture(t)
	states := automaton.Reachable(e)
	sccs := automaton.SCCs(states, e.Edges)
	require.Equal(t, []automaton.SCC{{0}, {1, 2}}, sccs)

	doc := Document(e, states, sccs, guard.Exact())

	// States 1 and 2 share a component and therefore a fill color.
	fills := make(map[int]string)
	for _, line := range strings.Split(doc, "\n") {
		if s, fill, ok := parseNodeLine(line); ok {
			fills[s] = fill
		}
	}
	require.Len(t, fills, 3)
	assert.Equal(t, fills[1], fills[2])
	assert.NotEqual(t, fills[0], fills[1])
}

// parseNodeLine extracts the state id and fill color from a node statement.
func parseNodeLine(line string) (int, string, bool) {
	line = strings.TrimSpace(line)
	id, rest, found := strings.Cut(line, " [")
	if !found || !strings.Contains(rest, "fillcolor=") {
		return 0, "", false
	}
	s, err := strconv.Atoi(id)
	if err != nil {
		return 0, "", false
	}
	_, after, _ := strings.Cut(rest, `fillcolor="`)
	fill, _, found := strings.Cut(after, `"`)
	if !found {
		return 0, "", false
	}
	return s, fill, true
}

func TestDocumentAllStates(t *testing.T) {
	e := buildFixture(t)
	states := automaton.AllStates(e)
	sccs := automaton.SCCs(states, e.Edges)

	doc := Document(e, states, sccs, guard.Exact())

	assert.Contains(t, doc, "    3 [")
	assert.Contains(t, doc, `3 -> 0 [label="true"];`)
}

func TestDocumentDeterministic(t *testing.T) {
	e := buildFixture(t)
	states := automaton.Reachable(e)
	sccs := automaton.SCCs(states, e.Edges)

	first := Document(e, states, sccs, guard.Exact())
	second := Document(e, states, sccs, guard.Exact())
	assert.Equal(t, first, second)
}

func TestReportWeakness(t *testing.T) {
	t.Run("weak report is silent", func(t *testing.T) {
		buf := &bytes.Buffer{}
		logger := slog.New(slog.NewTextHandler(buf, nil))

		ReportWeakness(logger, automaton.WeaknessReport{Weak: true})
		assert.Empty(t, buf.String())
	})

	t.Run("violations emit the marker and details", func(t *testing.T) {
		buf := &bytes.Buffer{}
		logger := slog.New(slog.NewTextHandler(buf, nil))

		ReportWeakness(logger, automaton.WeaknessReport{
			Violations: []automaton.Violation{
				{SCC: []int{1, 2}, Accepting: []int{1}, Rejecting: []int{2}},
			},
		})

		out := buf.String()
		assert.Contains(t, out, WeaknessMarker)
		assert.Contains(t, out, "mixed SCC")
		assert.Contains(t, out, "accepting")
	})
}

func TestSCCFillsCycle(t *testing.T) {
	sccs := make([]automaton.SCC, len(palette)+1)
	for i := range sccs {
		sccs[i] = automaton.SCC{i}
	}

	fills := sccFills(sccs)

	// The palette wraps around once exhausted.
	assert.Equal(t, fills[0], fills[len(palette)])
	assert.NotEqual(t, fills[0], fills[1])
}
