package automaton

import "sort"

// SCC is one strongly connected component, sorted ascending.
type SCC []int

// SCCs partitions the reachable state set into strongly connected
// components over the edge relation restricted to it, using Tarjan's
// single-pass algorithm. The traversal keeps an explicit work stack instead
// of recursing, so the depth is bounded regardless of the reachable-state
// count. Components are returned sorted by their smallest member.
func SCCs(reachable map[int]bool, edges map[Edge][]IOPair) []SCC {
	succs := successors(edges, reachable)

	states := make([]int, 0, len(reachable))
	for s := range reachable {
		states = append(states, s)
	}
	sort.Ints(states)

	index := make(map[int]int, len(states))
	lowlink := make(map[int]int, len(states))
	onStack := make(map[int]bool, len(states))
	var stack []int
	var sccs []SCC
	next := 0

	// frame mirrors one suspended strongConnect(v) activation: which
	// successor of v to examine next.
	type frame struct {
		v    int
		succ int
	}

	for _, root := range states {
		if _, visited := index[root]; visited {
			continue
		}
		work := []frame{{v: root}}
		for len(work) > 0 {
			f := &work[len(work)-1]
			v := f.v

			if f.succ == 0 {
				index[v] = next
				lowlink[v] = next
				next++
				stack = append(stack, v)
				onStack[v] = true
			}

			descended := false
			for f.succ < len(succs[v]) {
				w := succs[v][f.succ]
				f.succ++
				if _, visited := index[w]; !visited {
					work = append(work, frame{v: w})
					descended = true
					break
				}
				if onStack[w] && index[w] < lowlink[v] {
					lowlink[v] = index[w]
				}
			}
			if descended {
				continue
			}

			// All successors of v examined; retire the frame.
			work = work[:len(work)-1]
			if len(work) > 0 {
				p := work[len(work)-1].v
				if lowlink[v] < lowlink[p] {
					lowlink[p] = lowlink[v]
				}
			}
			if lowlink[v] == index[v] {
				var scc SCC
				for {
					w := stack[len(stack)-1]
					stack = stack[:len(stack)-1]
					onStack[w] = false
					scc = append(scc, w)
					if w == v {
						break
					}
				}
				sort.Ints(scc)
				sccs = append(sccs, scc)
			}
		}
	}

	sort.Slice(sccs, func(i, j int) bool { return sccs[i][0] < sccs[j][0] })
	return sccs
}
