package untimed

// consequencePair precomputes, for one atom in a size-2 constraint, the
// signed untimed literal and time offset of the *other* atom, so Propagate
// can derive the paired solver literal directly instead of walking
// base.atoms.
type consequencePair struct {
	otherUntimed UntimedLit
	otherMod     int
}

// consequenceConstraint only applies to constraints with exactly two atoms
// (spec §4.6(8)). A nogood of size two says the atoms cannot both hold, so
// once one resolves true the other is an immediate binary consequence:
// this strategy precomputes the pairing at build time and, on propagate,
// builds the two-literal nogood directly rather than walking every atom
// through FormNogood.
type consequenceConstraint struct {
	*base
	dispatch map[UntimedLit][]int // signed untimed lit -> atom indices (0 or 1)
	pairs    [2]consequencePair
}

var _ TheoryConstraint = (*consequenceConstraint)(nil)

// newConsequenceConstraint panics if b does not describe exactly two atoms;
// the caller (newConstraintForTerm, selecting a strategy per constraint) is
// responsible for only using this strategy on size-2 constraints.
func newConsequenceConstraint(b *base) *consequenceConstraint {
	if len(b.atoms) != 2 {
		panic(InvariantViolation{Reason: "consequence strategy requires exactly two atoms"})
	}
	c := &consequenceConstraint{base: b, dispatch: make(map[UntimedLit][]int)}
	c.pairs[0] = consequencePair{otherUntimed: b.atoms[1].signedUntimed(), otherMod: b.atoms[1].TimeMod}
	c.pairs[1] = consequencePair{otherUntimed: b.atoms[0].signedUntimed(), otherMod: b.atoms[0].TimeMod}
	for idx, atom := range b.atoms {
		key := atom.signedUntimed()
		c.dispatch[key] = append(c.dispatch[key], idx)
	}
	return c
}

func (c *consequenceConstraint) BuildWatches(init Init) []SolverLit {
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

func (c *consequenceConstraint) Propagate(ctl Control, lit SolverLit) ([]WatchReplacement, bool) {
	asg := ctl.Assignment()
	for _, il := range c.litMap.InternalLitsOf(lit) {
		wallTime := il.Time(c.sigLen)
		untimed := il.Untimed(c.sigLen)
		for _, idx := range c.dispatch[untimed] {
			a := wallTime + c.atoms[idx].TimeMod
			if !c.isValidTime(a) {
				continue
			}
			pair := c.pairs[idx]
			otherWallTime := a - pair.otherMod
			otherIL := EncodeInternal(pair.otherUntimed, otherWallTime, c.sigLen)
			otherLit := c.litMap.GrabLit(otherIL)
			if otherLit == LitTrue {
				// The conjunction can never be falsified through this AT;
				// nothing to derive.
				continue
			}
			if otherLit == LitFalse {
				// Already trivially satisfied.
				continue
			}
			ng := []SolverLit{lit, otherLit}
			if otherLit == lit {
				ng = ng[:1]
			}
			result, _ := CheckAssignment(ng, asg)
			if result == ResultUnit || result == ResultConflict {
				lock := c.lockFor(a)
				if !ctl.AddNogood(ng, lock) {
					return nil, false
				}
				if lock && c.lock.Kind == LockThreshold {
					c.retired[a] = true
				}
			}
		}
	}
	return nil, true
}
