package untimed

// oneWatchConstraint watches a single literal per AT and rewatches
// greedily on change (spec §4.6(3)). Legal, but strictly weaker than the
// two-watched-literal strategy: a conflict/unit can go unnoticed until the
// watched literal itself is touched again, so it relies more heavily on
// Check to catch up.
type oneWatchConstraint struct {
	*base
	watchToATs map[SolverLit][]int
	watched    map[int]SolverLit
}

var _ TheoryConstraint = (*oneWatchConstraint)(nil)

func newOneWatchConstraint(b *base) *oneWatchConstraint {
	return &oneWatchConstraint{
		base:       b,
		watchToATs: make(map[SolverLit][]int),
		watched:    make(map[int]SolverLit),
	}
}

func (c *oneWatchConstraint) BuildWatches(init Init) []SolverLit {
	c.groundEagerly(init)
	seen := make(map[SolverLit]struct{})
	var watches []SolverLit
	for a := c.tmin; a <= c.tmax; a++ {
		if c.eagerlyGrounded(a) {
			continue
		}
		ng, ok := c.formNogood(a)
		if !ok || len(ng) == 0 {
			continue
		}
		lit := ng[0]
		c.watched[a] = lit
		c.watchToATs[lit] = append(c.watchToATs[lit], a)
		if _, dup := seen[lit]; !dup {
			seen[lit] = struct{}{}
			watches = append(watches, lit)
		}
	}
	return watches
}

func (c *oneWatchConstraint) Propagate(ctl Control, lit SolverLit) ([]WatchReplacement, bool) {
	asg := ctl.Assignment()
	ats := append([]int(nil), c.watchToATs[lit]...)
	var replacements []WatchReplacement
	for _, a := range ats {
		if !c.isValidTime(a) {
			continue
		}
		ng, ok := c.formNogood(a)
		if !ok {
			continue
		}
		result, _ := CheckAssignment(ng, asg)
		switch result {
		case ResultConflict, ResultUnit:
			if _, ok := c.addNogood(ctl, a); !ok {
				return nil, false
			}
		case ResultNone:
			for _, candidate := range ng {
				if candidate == lit || asg.Value(candidate) != Unassigned {
					continue
				}
				c.watchToATs[lit] = removeAT(c.watchToATs[lit], a)
				c.watchToATs[candidate] = append(c.watchToATs[candidate], a)
				c.watched[a] = candidate
				replacements = append(replacements, WatchReplacement{Old: lit, New: candidate})
				break
			}
		}
	}
	return replacements, true
}
