package untimed

type litAT struct {
	lit SolverLit
	at  int
}

// twoWatchMapConstraint is the two-watched-literal strategy keyed by
// (literal, AT) pairs rather than by literal alone (spec §4.6(4)): useful
// when many ATs share the same literal and a flat per-literal AT list
// would force scanning ATs that turn out not to need rechecking.
type twoWatchMapConstraint struct {
	*base
	watchToATs map[SolverLit][]int
	isWatched  map[litAT]struct{}
	watched    map[int][]SolverLit
}

var _ TheoryConstraint = (*twoWatchMapConstraint)(nil)

func newTwoWatchMapConstraint(b *base) *twoWatchMapConstraint {
	return &twoWatchMapConstraint{
		base:       b,
		watchToATs: make(map[SolverLit][]int),
		isWatched:  make(map[litAT]struct{}),
		watched:    make(map[int][]SolverLit),
	}
}

func (c *twoWatchMapConstraint) BuildWatches(init Init) []SolverLit {
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
		n := 2
		if len(ng) < n {
			n = len(ng)
		}
		pair := append([]SolverLit(nil), ng[:n]...)
		c.watched[a] = pair
		for _, lit := range pair {
			c.watchToATs[lit] = append(c.watchToATs[lit], a)
			c.isWatched[litAT{lit, a}] = struct{}{}
			if _, dup := seen[lit]; !dup {
				seen[lit] = struct{}{}
				watches = append(watches, lit)
			}
		}
	}
	return watches
}

func (c *twoWatchMapConstraint) Propagate(ctl Control, lit SolverLit) ([]WatchReplacement, bool) {
	asg := ctl.Assignment()
	ats := append([]int(nil), c.watchToATs[lit]...)
	var replacements []WatchReplacement
	for _, a := range ats {
		if _, ok := c.isWatched[litAT{lit, a}]; !ok {
			// Already rewatched away from lit earlier in this call.
			continue
		}
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
				if candidate == lit {
					continue
				}
				if _, already := c.isWatched[litAT{candidate, a}]; already {
					continue
				}
				if asg.Value(candidate) != Unassigned {
					continue
				}
				delete(c.isWatched, litAT{lit, a})
				c.isWatched[litAT{candidate, a}] = struct{}{}
				c.watchToATs[lit] = removeAT(c.watchToATs[lit], a)
				c.watchToATs[candidate] = append(c.watchToATs[candidate], a)
				pair := c.watched[a]
				for i, l := range pair {
					if l == lit {
						pair[i] = candidate
					}
				}
				c.watched[a] = pair
				replacements = append(replacements, WatchReplacement{Old: lit, New: candidate})
				break
			}
		}
	}
	return replacements, true
}
