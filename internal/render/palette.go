package render

import "github.com/vk/dfaviz/internal/automaton"

// palette is the fixed fill palette for SCC grouping, cycled when the
// component count exceeds it. Pastel tones keep node labels readable.
var palette = []string{
	"#FFB3BA", "#BAFFC9", "#BAE1FF", "#FFFFBA", "#FFDFba",
	"#E0BBE4", "#957DAD", "#D4A5A5", "#A8E6CF", "#DCEDC1",
}

// sccFills assigns each state its component's fill color.
func sccFills(sccs []automaton.SCC) map[int]string {
	fills := make(map[int]string)
	for i, scc := range sccs {
		color := palette[i%len(palette)]
		for _, s := range scc {
			fills[s] = color
		}
	}
	return fills
}
