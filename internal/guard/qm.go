package guard

import (
	"math/bits"
	"sort"

	"github.com/vk/dfaviz/internal/automaton"
)

// Exact returns the Quine-McCluskey minimizer. It computes a minimized
// sum-of-products cover of exactly the given assignment set: no don't-cares
// are introduced, since every point outside the set belongs to a different
// edge and must not be covered.
func Exact() Minimizer { return exactMinimizer{} }

type exactMinimizer struct{}

func (exactMinimizer) Name() string { return "exact" }

func (exactMinimizer) Minimize(pairs []automaton.IOPair, s Space) Cover {
	vs := vectors(pairs, s)
	if len(vs) == 0 {
		return Cover{}
	}
	if len(vs) == s.Size() {
		return fullCover(s)
	}
	return Cover{Terms: minimalCover(vs, s.Width())}
}

// primeImplicants runs the merging phase of Quine-McCluskey: terms agreeing
// in all but one cared-for bit combine into a term with that bit freed.
// Since only onset minterms seed the process, every produced implicant
// covers onset points exclusively.
func primeImplicants(vs []int, width int) []Term {
	cur := make([]Term, len(vs))
	for i, v := range vs {
		cur[i] = Term{Value: v}
	}

	var primes []Term
	for len(cur) > 0 {
		merged := make([]bool, len(cur))
		nextSet := make(map[Term]struct{})

		for i := 0; i < len(cur); i++ {
			for j := i + 1; j < len(cur); j++ {
				if cur[i].DontCare != cur[j].DontCare {
					continue
				}
				diff := cur[i].Value ^ cur[j].Value
				if bits.OnesCount(uint(diff)) != 1 {
					continue
				}
				merged[i] = true
				merged[j] = true
				nextSet[Term{
					Value:    cur[i].Value &^ diff,
					DontCare: cur[i].DontCare | diff,
				}] = struct{}{}
			}
		}

		for i, t := range cur {
			if !merged[i] {
				primes = append(primes, t)
			}
		}

		cur = cur[:0]
		for t := range nextSet {
			cur = append(cur, t)
		}
		sortTerms(cur)
	}

	sortTerms(primes)
	return primes
}

// minimalCover selects a small deterministic subset of the prime implicants
// covering every vector: essential primes first, then greedy completion by
// remaining coverage.
func minimalCover(vs []int, width int) []Term {
	primes := primeImplicants(vs, width)

	covering := make(map[int][]int) // vector -> indices into primes
	for _, v := range vs {
		for i, p := range primes {
			if p.Covers(v) {
				covering[v] = append(covering[v], i)
			}
		}
	}

	chosen := make(map[int]bool)
	remaining := make(map[int]bool, len(vs))
	for _, v := range vs {
		remaining[v] = true
	}

	// Essential primes: some vector has no other cover.
	for _, v := range vs {
		if len(covering[v]) == 1 {
			chosen[covering[v][0]] = true
		}
	}
	dropCovered(primes, chosen, remaining)

	for len(remaining) > 0 {
		best, bestCount := -1, 0
		for i, p := range primes {
			if chosen[i] {
				continue
			}
			count := 0
			for v := range remaining {
				if p.Covers(v) {
					count++
				}
			}
			if count > bestCount {
				best, bestCount = i, count
			}
		}
		// Every vector has at least one covering prime, so the greedy
		// pass always progresses.
		if best < 0 {
			break
		}
		chosen[best] = true
		dropCovered(primes, chosen, remaining)
	}

	out := make([]Term, 0, len(chosen))
	for i := range primes {
		if chosen[i] {
			out = append(out, primes[i])
		}
	}
	sortTerms(out)
	return out
}

func dropCovered(primes []Term, chosen map[int]bool, remaining map[int]bool) {
	for v := range remaining {
		for i := range chosen {
			if primes[i].Covers(v) {
				delete(remaining, v)
				break
			}
		}
	}
}

// sortTerms orders terms by descending specificity, then by value, so every
// phase of the minimizer is deterministic.
func sortTerms(ts []Term) {
	sort.Slice(ts, func(i, j int) bool {
		if ts[i].DontCare != ts[j].DontCare {
			return ts[i].DontCare < ts[j].DontCare
		}
		return ts[i].Value < ts[j].Value
	})
}
