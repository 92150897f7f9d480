package automaton

// Violation records one non-trivial SCC mixing accepting and rejecting
// states. All three slices are sorted ascending.
type Violation struct {
	SCC       []int
	Accepting []int
	Rejecting []int
}

// WeaknessReport is the outcome of the weak-automaton check. Weak is true
// iff no violations were recorded.
type WeaknessReport struct {
	Weak       bool
	Violations []Violation
}

// CheckWeak decides the weak-automaton property: every non-trivial SCC must
// be homogeneous with respect to acceptance. Only components with more than
// one state can mix, so singletons are skipped whether or not they carry a
// self-loop. The check is a pure predicate; surfacing a failure is the
// caller's concern.
func CheckWeak(sccs []SCC, accepting map[int]bool) WeaknessReport {
	report := WeaknessReport{Weak: true}
	for _, scc := range sccs {
		if len(scc) <= 1 {
			continue
		}
		var acc, rej []int
		for _, s := range scc {
			if accepting[s] {
				acc = append(acc, s)
			} else {
				rej = append(rej, s)
			}
		}
		if len(acc) > 0 && len(rej) > 0 {
			report.Violations = append(report.Violations, Violation{
				SCC:       append([]int(nil), scc...),
				Accepting: acc,
				Rejecting: rej,
			})
		}
	}
	report.Weak = len(report.Violations) == 0
	return report
}
