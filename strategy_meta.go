package untimed

// metaConstraint is functionally equivalent to the timed-atom strategy but
// lowers per-call overhead by precomputing, once at build time, a dispatch
// table from each distinct signed untimed literal the constraint
// participates in to the indices of the atoms that reference it (spec
// §4.6(6)). This stands in for "code generation": rather than emitting and
// compiling a specialised propagate routine per constraint, a systems
// implementation gets the same effect from a precomputed table and a tight
// loop that indexes straight into it (spec §9 design notes).
type metaConstraint struct {
	*base
	dispatch map[UntimedLit][]int // signed untimed lit -> atom indices
}

var _ TheoryConstraint = (*metaConstraint)(nil)

func newMetaConstraint(b *base) *metaConstraint {
	dispatch := make(map[UntimedLit][]int)
	for idx, atom := range b.atoms {
		key := atom.signedUntimed()
		dispatch[key] = append(dispatch[key], idx)
	}
	return &metaConstraint{base: b, dispatch: dispatch}
}

func (c *metaConstraint) BuildWatches(init Init) []SolverLit {
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

func (c *metaConstraint) Propagate(ctl Control, lit SolverLit) ([]WatchReplacement, bool) {
	asg := ctl.Assignment()
	for _, il := range c.litMap.InternalLitsOf(lit) {
		wallTime := il.Time(c.sigLen)
		untimed := il.Untimed(c.sigLen)
		for _, idx := range c.dispatch[untimed] {
			a := wallTime + c.atoms[idx].TimeMod
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
