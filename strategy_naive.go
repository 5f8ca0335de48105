package untimed

// naiveConstraint watches every literal of every non-pre-grounded AT
// (spec §4.6(1)). On a change it enumerates every AT that literal
// participates in and checks/adds each one's nogood; it never moves a
// watch.
type naiveConstraint struct {
	*base
	watchToATs map[SolverLit][]int
}

var _ TheoryConstraint = (*naiveConstraint)(nil)

func newNaiveConstraint(b *base) *naiveConstraint {
	return &naiveConstraint{base: b, watchToATs: make(map[SolverLit][]int)}
}

func (c *naiveConstraint) BuildWatches(init Init) []SolverLit {
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

func (c *naiveConstraint) Propagate(ctl Control, lit SolverLit) ([]WatchReplacement, bool) {
	asg := ctl.Assignment()
	for _, a := range c.watchToATs[lit] {
		if !c.isValidTime(a) {
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
