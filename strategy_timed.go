package untimed

// timedAtomConstraint watches every literal of every AT once, dispatched
// by untimed projection rather than by a per-(literal, AT) table (spec
// §4.6(5)): given the internal literal an assigned solver literal
// corresponds to, it recovers the wall-clock time directly and checks only
// the ATs consistent with it, for each atom sharing that untimed literal.
// Pre-grounded ATs are simply never valid (base.isValidTime), which is the
// "ground-only" sub-variant the spec calls out.
type timedAtomConstraint struct {
	*base
}

var _ TheoryConstraint = (*timedAtomConstraint)(nil)

func newTimedAtomConstraint(b *base) *timedAtomConstraint {
	return &timedAtomConstraint{base: b}
}

func (c *timedAtomConstraint) BuildWatches(init Init) []SolverLit {
	c.groundEagerly(init)
	seen := make(map[SolverLit]struct{})
	var watches []SolverLit
	for a := c.tmin; a <= c.tmax; a++ {
		if c.eagerlyGrounded(a) {
			continue
		}
		for _, atom := range c.atoms {
			wallTime := a - atom.TimeMod
			il := EncodeInternal(atom.signedUntimed(), wallTime, c.sigLen)
			sl := c.litMap.GrabLit(il)
			if sl == LitTrue || sl == LitFalse {
				continue
			}
			if _, dup := seen[sl]; !dup {
				seen[sl] = struct{}{}
				watches = append(watches, sl)
			}
		}
	}
	return watches
}

func (c *timedAtomConstraint) Propagate(ctl Control, lit SolverLit) ([]WatchReplacement, bool) {
	asg := ctl.Assignment()
	for _, il := range c.litMap.InternalLitsOf(lit) {
		wallTime := il.Time(c.sigLen)
		untimed := il.Untimed(c.sigLen)
		for _, atom := range c.atoms {
			if atom.signedUntimed() != untimed {
				continue
			}
			a := wallTime + atom.TimeMod
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
	}
	return nil, true
}
