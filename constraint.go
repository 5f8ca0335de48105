package untimed

// WatchReplacement instructs the propagator shell to stop observing Old and
// start observing New on behalf of the constraint that returned it
// (spec §4.5, §5: new is installed before old is removed).
type WatchReplacement struct {
	Old, New SolverLit
}

// TheoryConstraint is the lifecycle contract every watch strategy
// implements (spec §4.5). All eight concrete strategies (spec §4.6)
// share the bookkeeping in `base` and differ only in BuildWatches and
// Propagate.
type TheoryConstraint interface {
	// BuildWatches returns the literals this strategy wants the host to
	// watch on its behalf, computed once during Init.
	BuildWatches(init Init) []SolverLit

	// Propagate reacts to lit having just been assigned. ok is false iff
	// the host rejected a nogood this call tried to add; propagation for
	// the current round must then stop.
	Propagate(ctl Control, lit SolverLit) (replacements []WatchReplacement, ok bool)

	// Check scans every still-valid AT against a total model. ok is false
	// iff the host rejected an added nogood, in which case the shell stops
	// calling Check on further constraints this round.
	Check(ctl Control) (ok bool)

	// Undo reverts any propagate-time bookkeeping lit's assignment caused.
	// Only the counting strategy needs this; every other strategy's Undo
	// is a no-op.
	Undo(asg Assignment, lit SolverLit)

	// Atoms and TimeRange expose the constraint's static shape, mostly
	// for tests and for the timed-atom / meta strategies' dispatch tables.
	Atoms() []AtomInfo
	TimeRange() (tmin, tmax int)
}

// base carries the bookkeeping common to every TheoryConstraint: the
// nogood template, the assigned-time range, the literal map and current
// signature size needed to form nogoods, the locking policy, and eager
// grounding (spec §4.5).
type base struct {
	atoms  []AtomInfo
	tmin   int
	tmax   int
	litMap *LiteralMap
	sigLen int

	lock     LockPolicy
	counters map[int]int  // remaining additions before locking, threshold policy only
	retired  map[int]bool // ATs permanently pre-grounded or threshold-retired

	lockUpTo int // [tmin, lockUpTo) is eagerly pre-grounded at build time
	lockFrom int // [lockFrom, tmax] is eagerly pre-grounded at build time; 0 means "unset"
}

func newBase(litMap *LiteralMap, sigLen int, atoms []AtomInfo, tmin, tmax int, lock LockPolicy) *base {
	return &base{
		atoms:    atoms,
		tmin:     tmin,
		tmax:     tmax,
		litMap:   litMap,
		sigLen:   sigLen,
		lock:     lock,
		counters: make(map[int]int),
		retired:  make(map[int]bool),
	}
}

func (b *base) Atoms() []AtomInfo          { return b.atoms }
func (b *base) TimeRange() (int, int)      { return b.tmin, b.tmax }
func (b *base) Undo(Assignment, SolverLit) {}

// Check implements the base-level check(control) contract of spec §4.5:
// for every AT still valid, form its nogood and test it against the total
// model; on conflict, add it. This is shared by every watch strategy
// (embedding base promotes it); the counting strategy is the only one with
// anything extra to do, and it does so in its own Undo, not Check.
func (b *base) Check(ctl Control) bool {
	asg := ctl.Assignment()
	for a := b.tmin; a <= b.tmax; a++ {
		if !b.isValidTime(a) {
			continue
		}
		ng, formed := b.formNogood(a)
		if !formed {
			continue
		}
		if CheckAssignmentComplete(ng, asg) == ResultConflict {
			if _, ok := b.addNogood(ctl, a); !ok {
				return false
			}
		}
	}
	return true
}

// isValidTime reports whether AT a is within [tmin, tmax] and, for
// threshold locking, has not yet been permanently retired (spec §4.5).
func (b *base) isValidTime(a int) bool {
	if a < b.tmin || a > b.tmax {
		return false
	}
	return !b.retired[a]
}

// eagerlyGrounded reports whether AT a falls inside the pre-grounded
// prefix/suffix configured by SetEagerGrounding.
func (b *base) eagerlyGrounded(a int) bool {
	if b.lockUpTo > 0 && a < b.lockUpTo {
		return true
	}
	if b.lockFrom > 0 && a >= b.lockFrom {
		return true
	}
	return false
}

// SetEagerGrounding configures the [tmin, upTo) and [from, tmax] ranges to
// be pre-grounded as permanent clauses at build time and retired from the
// lazy path (spec §4.5, §6 --ground-up-to/--ground-from).
func (b *base) SetEagerGrounding(upTo, from int) {
	b.lockUpTo = upTo
	b.lockFrom = from
}

// groundEagerly adds a permanent clause for every AT inside the configured
// eager-grounding ranges and marks those ATs retired. Returns false iff the
// host rejected one of the added clauses.
func (b *base) groundEagerly(init Init) bool {
	for a := b.tmin; a <= b.tmax; a++ {
		if !b.eagerlyGrounded(a) {
			continue
		}
		ng, ok := FormNogood(b.litMap, b.sigLen, b.atoms, a)
		b.retired[a] = true
		if !ok {
			continue
		}
		if !init.AddClause(negateAll(ng)) {
			return false
		}
	}
	return true
}

func negateAll(lits []SolverLit) []SolverLit {
	out := make([]SolverLit, len(lits))
	for i, l := range lits {
		out[i] = negateSolverLit(l)
	}
	return out
}

func (b *base) formNogood(a int) ([]SolverLit, bool) {
	return FormNogood(b.litMap, b.sigLen, b.atoms, a)
}

// lockFor decides whether the nogood about to be added for AT a should be
// locked, and updates the threshold counter/retirement bookkeeping. Must
// be called at most once per actual addition for AT a.
func (b *base) lockFor(a int) bool {
	switch b.lock.Kind {
	case LockAlways:
		return true
	case LockThreshold:
		remaining, ok := b.counters[a]
		if !ok {
			remaining = b.lock.Threshold
		}
		remaining--
		b.counters[a] = remaining
		return remaining <= 0
	default:
		return false
	}
}

// addNogood forms and adds the nogood for AT a, applying the locking
// policy, and retires the AT if it was threshold-locked this call.
// Returns (added, ok): added is false if FormNogood returned "None";
// ok is false iff the host rejected the nogood.
func (b *base) addNogood(ctl Control, a int) (added, ok bool) {
	ng, formed := b.formNogood(a)
	if !formed {
		return false, true
	}
	lock := b.lockFor(a)
	if !ctl.AddNogood(ng, lock) {
		return true, false
	}
	if lock && b.lock.Kind == LockThreshold {
		b.retired[a] = true
	}
	return true, true
}
