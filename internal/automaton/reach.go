package automaton

import "sort"

// Reachable returns the set of states reachable from the initial state over
// the edge-grouped view. The grouped edges are sparser than the full
// transition table and carry the same connectivity once grouped.
func Reachable(e *Explicit) map[int]bool {
	succs := successors(e.Edges, nil)

	reachable := map[int]bool{e.Initial: true}
	queue := []int{e.Initial}
	for len(queue) > 0 {
		s := queue[0]
		queue = queue[1:]
		for _, next := range succs[s] {
			if !reachable[next] {
				reachable[next] = true
				queue = append(queue, next)
			}
		}
	}
	return reachable
}

// AllStates returns the full declared state range, for exhaustive
// visualization that bypasses reachability.
func AllStates(e *Explicit) map[int]bool {
	all := make(map[int]bool, e.StateCount)
	for s := 0; s < e.StateCount; s++ {
		all[s] = true
	}
	return all
}

// successors builds sorted adjacency lists from the grouped edges,
// optionally restricted to a state subset. Sorted order keeps every
// traversal over the automaton deterministic.
func successors(edges map[Edge][]IOPair, within map[int]bool) map[int][]int {
	succs := make(map[int][]int)
	for e := range edges {
		if within != nil && (!within[e.From] || !within[e.To]) {
			continue
		}
		succs[e.From] = append(succs[e.From], e.To)
	}
	for s := range succs {
		sort.Ints(succs[s])
	}
	return succs
}
