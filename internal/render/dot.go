package render

import (
	"fmt"
	"log/slog"
	"sort"
	"strings"

	"github.com/vk/dfaviz/internal/automaton"
	"github.com/vk/dfaviz/internal/guard"
)

// WeaknessMarker is the fixed prefix of the weakness diagnostic, scanned for
// by orchestrating harnesses that treat non-weak automata as suspicious.
const WeaknessMarker = "WARNING: DFA IS NOT WEAK!"

// Document renders the automaton as a DOT digraph: one node per state in
// the given set, accepting states drawn as green double circles, fills
// grouping states by SCC, an unlabeled pseudo-node marking the initial
// state, and one edge per grouped (state, next state) pair labeled with its
// minimized guard.
func Document(e *automaton.Explicit, states map[int]bool, sccs []automaton.SCC, minimizer guard.Minimizer) string {
	space := guard.SpaceOf(e)
	fills := sccFills(sccs)

	var sb strings.Builder
	sb.WriteString("digraph DFA {\n")
	sb.WriteString("    rankdir=LR;\n")
	sb.WriteString("    node [shape=circle, fontname=\"monospace\"];\n")
	sb.WriteString("    edge [fontname=\"monospace\", fontsize=10];\n")
	sb.WriteString("\n")

	sb.WriteString("    __start [shape=none, label=\"\"];\n")
	fmt.Fprintf(&sb, "    __start -> %d;\n", e.Initial)
	sb.WriteString("\n")

	for s := 0; s < e.StateCount; s++ {
		if !states[s] {
			continue
		}
		shape, border := "circle", "black"
		if e.Accepting[s] {
			shape, border = "doublecircle", "green"
		}
		fill, ok := fills[s]
		if !ok {
			fill = "white"
		}
		fmt.Fprintf(&sb, "    %d [shape=%s, color=%s, style=filled, fillcolor=\"%s\", label=\"%d\"];\n",
			s, shape, border, fill, s)
	}
	sb.WriteString("\n")

	edges := make([]automaton.Edge, 0, len(e.Edges))
	for edge := range e.Edges {
		if states[edge.From] {
			edges = append(edges, edge)
		}
	}
	sort.Slice(edges, func(i, j int) bool {
		if edges[i].From != edges[j].From {
			return edges[i].From < edges[j].From
		}
		return edges[i].To < edges[j].To
	})

	for _, edge := range edges {
		cover := minimizer.Minimize(e.Edges[edge], space)
		label := strings.ReplaceAll(cover.Render(space), `"`, `\"`)
		fmt.Fprintf(&sb, "    %d -> %d [label=\"%s\"];\n", edge.From, edge.To, label)
	}

	sb.WriteString("}\n")
	return sb.String()
}

// ReportWeakness emits the weakness violations to the diagnostic stream.
// Violations are a finding, not an error; the marker string lets callers
// detect them programmatically.
func ReportWeakness(logger *slog.Logger, report automaton.WeaknessReport) {
	if report.Weak {
		return
	}
	logger.Warn(WeaknessMarker)
	for _, v := range report.Violations {
		logger.Warn("mixed SCC",
			"scc", v.SCC,
			"accepting", v.Accepting,
			"rejecting", v.Rejecting,
		)
	}
}
