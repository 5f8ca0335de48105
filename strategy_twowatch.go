package untimed

// twoWatchConstraint watches (up to) the first two literals of each AT's
// nogood and rewatches when a watch is no longer useful (spec §4.6(2)).
// watchToATs indexes, for each watched literal, the ATs it currently
// supports; watched records, for each AT, the literals currently watched
// on its behalf.
type twoWatchConstraint struct {
	*base
	watchToATs map[SolverLit][]int
	watched    map[int][]SolverLit
}

var _ TheoryConstraint = (*twoWatchConstraint)(nil)

func newTwoWatchConstraint(b *base) *twoWatchConstraint {
	return &twoWatchConstraint{
		base:       b,
		watchToATs: make(map[SolverLit][]int),
		watched:    make(map[int][]SolverLit),
	}
}

func (c *twoWatchConstraint) watchLits(n int) int {
	if n > 2 {
		return 2
	}
	return n
}

func (c *twoWatchConstraint) BuildWatches(init Init) []SolverLit {
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
		n := c.watchLits(len(ng))
		pair := append([]SolverLit(nil), ng[:n]...)
		c.watched[a] = pair
		for _, lit := range pair {
			c.watchToATs[lit] = append(c.watchToATs[lit], a)
			if _, dup := seen[lit]; !dup {
				seen[lit] = struct{}{}
				watches = append(watches, lit)
			}
		}
	}
	return watches
}

func (c *twoWatchConstraint) Propagate(ctl Control, lit SolverLit) ([]WatchReplacement, bool) {
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
			if newLit, found := c.findReplacement(a, lit, ng, asg); found {
				c.rewatch(a, lit, newLit)
				replacements = append(replacements, WatchReplacement{Old: lit, New: newLit})
			}
		}
	}
	return replacements, true
}

// findReplacement looks for a literal of ng, not currently watched for AT
// a, whose value is unassigned.
func (c *twoWatchConstraint) findReplacement(a int, old SolverLit, ng []SolverLit, asg Assignment) (SolverLit, bool) {
	current := c.watched[a]
	for _, candidate := range ng {
		if asg.Value(candidate) != Unassigned {
			continue
		}
		if candidate == old || containsLit(current, candidate) {
			continue
		}
		return candidate, true
	}
	return 0, false
}

func (c *twoWatchConstraint) rewatch(a int, old, newLit SolverLit) {
	c.watchToATs[old] = removeAT(c.watchToATs[old], a)
	c.watchToATs[newLit] = append(c.watchToATs[newLit], a)
	pair := c.watched[a]
	for i, l := range pair {
		if l == old {
			pair[i] = newLit
		}
	}
	c.watched[a] = pair
}

func containsLit(lits []SolverLit, target SolverLit) bool {
	for _, l := range lits {
		if l == target {
			return true
		}
	}
	return false
}

func removeAT(ats []int, target int) []int {
	out := ats[:0]
	for _, a := range ats {
		if a != target {
			out = append(out, a)
		}
	}
	return out
}
