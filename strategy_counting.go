package untimed

// countingConstraint only applies to constraints of size > 2 (spec
// §4.6(7)). It watches every literal of every AT and maintains counts[a],
// the number of currently-true literals in that AT's nogood; Propagate
// increments, Undo decrements, and the nogood is only formed and checked
// once counts[a] >= size-1 (i.e. it could plausibly be a unit or
// conflict). Undo is mandatory here: every other strategy's Undo is a
// no-op.
type countingConstraint struct {
	*base
	watchToATs map[SolverLit][]int
	counts     map[int]int
	size       int
}

var _ TheoryConstraint = (*countingConstraint)(nil)

func newCountingConstraint(b *base) *countingConstraint {
	return &countingConstraint{
		base:       b,
		watchToATs: make(map[SolverLit][]int),
		counts:     make(map[int]int),
		size:       len(b.atoms),
	}
}

func (c *countingConstraint) BuildWatches(init Init) []SolverLit {
	c.groundEagerly(init)
	seen := make(map[SolverLit]struct{})
	var watches []SolverLit
	for a := c.tmin; a <= c.tmax; a++ {
		if c.eagerlyGrounded(a) {
			continue
		}
		ng, ok := c.formNogood(a)
		if !ok {
			continue
		}
		for _, lit := range ng {
			c.watchToATs[lit] = append(c.watchToATs[lit], a)
			if _, dup := seen[lit]; !dup {
				seen[lit] = struct{}{}
				watches = append(watches, lit)
			}
		}
	}
	return watches
}

func (c *countingConstraint) Propagate(ctl Control, lit SolverLit) ([]WatchReplacement, bool) {
	asg := ctl.Assignment()
	for _, a := range c.watchToATs[lit] {
		if !c.isValidTime(a) {
			continue
		}
		c.counts[a]++
		if c.counts[a] < c.size-1 {
			continue
		}
		ng, ok := c.formNogood(a)
		if !ok {
			continue
		}
		result, _ := CheckAssignment(ng, asg)
		if result == ResultUnit || result == ResultConflict {
			if _, ok := c.addNogood(ctl, a); !ok {
				return nil, false
			}
		}
	}
	return nil, true
}

// Undo reverts the per-AT true-literal counters Propagate incremented for
// lit. A counter going negative is the fatal assertion of spec §7: it
// means a propagate/undo pair was unbalanced, which the core cannot
// recover from.
func (c *countingConstraint) Undo(_ Assignment, lit SolverLit) {
	for _, a := range c.watchToATs[lit] {
		if !c.isValidTime(a) {
			continue
		}
		if c.counts[a] <= 0 {
			panic(InvariantViolation{Reason: "counting strategy counter underflow on undo"})
		}
		c.counts[a]--
	}
}
