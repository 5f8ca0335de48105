package untimed

// WatchType selects the propagation strategy a constraint uses, mirroring
// the host CLI's --watch-type enumeration (spec §6).
type WatchType int8

const (
	WatchNaive WatchType = iota
	WatchTwoWatch
	WatchOneWatch
	WatchTwoWatchMap
	WatchTimed
	// WatchTimedGroundOnly is spec §4.6(5)'s ground-only sub-variant; it
	// shares the timed-atom constraint's implementation because
	// pre-grounded ATs are already excluded by isValidTime.
	WatchTimedGroundOnly
	WatchMeta
	// WatchMetaPerUntimedAtom is the "meta_ta" CLI variant; it shares the
	// meta constraint's dispatch-table implementation.
	WatchMetaPerUntimedAtom
	WatchCounting
	WatchConsequence
	WatchGround
	WatchCheckOnly
)

func newConstraintForTerm(watchType WatchType, b *base) TheoryConstraint {
	if len(b.atoms) == 1 {
		return newSizeOneConstraint(b)
	}
	switch watchType {
	case WatchTwoWatch:
		return newTwoWatchConstraint(b)
	case WatchOneWatch:
		return newOneWatchConstraint(b)
	case WatchTwoWatchMap:
		return newTwoWatchMapConstraint(b)
	case WatchTimed, WatchTimedGroundOnly:
		return newTimedAtomConstraint(b)
	case WatchMeta, WatchMetaPerUntimedAtom:
		return newMetaConstraint(b)
	case WatchCounting:
		if len(b.atoms) > 2 {
			return newCountingConstraint(b)
		}
		return newTwoWatchConstraint(b)
	case WatchConsequence:
		if len(b.atoms) == 2 {
			return newConsequenceConstraint(b)
		}
		return newTwoWatchConstraint(b)
	case WatchGround:
		return newGroundConstraint(b)
	case WatchCheckOnly:
		return newCheckOnlyConstraint(b)
	default:
		return newNaiveConstraint(b)
	}
}

// Shell is the propagator shell of spec §4.7: it owns the signature
// registry and literal map, builds one TheoryConstraint per grounded
// constraint theory atom, and dispatches the host's propagate/undo/check
// callbacks to the constraints observing the affected literals.
type Shell struct {
	watchType  WatchType
	lock       LockPolicy
	groundUpTo int
	groundFrom int

	registry *SignatureRegistry
	litMap   *LiteralMap

	constraints        []TheoryConstraint
	watchToConstraints map[SolverLit][]TheoryConstraint

	tracer Tracer
}

// NewShell returns a Shell configured with a watch strategy, a locking
// policy, and the eager-grounding prefix/suffix sizes (0 disables each).
func NewShell(watchType WatchType, lock LockPolicy, groundUpTo, groundFrom int, opts ...Option) *Shell {
	s := &Shell{
		watchType:          watchType,
		lock:               lock,
		groundUpTo:         groundUpTo,
		groundFrom:         groundFrom,
		registry:           NewSignatureRegistry(),
		litMap:             NewLiteralMap(),
		watchToConstraints: make(map[SolverLit][]TheoryConstraint),
		tracer:             DefaultTracer{},
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Init implements spec §4.7's init sequence: register signatures, build
// one constraint per grounded &constraint{} theory atom, populate the
// literal map, then ask every constraint for its watch list and register
// those with the host. Returns a non-nil error on any construction error;
// a clause the host rejects while constraints are being built is not
// reported.
func (s *Shell) Init(init Init) error {
	type pending struct {
		atoms    []AtomInfo
		tmin     int
		tmax     int
		id       string
		hasID    bool
	}
	var terms []pending

	for _, ta := range init.TheoryAtoms() {
		switch {
		case ta.Decl != nil:
			s.registry.AddSigned(ta.Decl.Sign, ta.Decl.Functor, ta.Decl.Arity)
		case ta.Term != nil:
			atoms, tmin, tmax, err := BuildAtoms(s.registry, *ta.Term)
			if err != nil {
				return err
			}
			terms = append(terms, pending{atoms: atoms, tmin: tmin, tmax: tmax, id: ta.Term.ID, hasID: ta.Term.HasID})
		}
	}

	if err := s.litMap.Populate(s.registry, init.AtomsBySignature); err != nil {
		return err
	}

	sigLen := s.registry.Size()
	for _, p := range terms {
		b := newBase(s.litMap, sigLen, p.atoms, p.tmin, p.tmax, s.lock)
		if s.watchType != WatchGround {
			b.SetEagerGrounding(s.groundUpTo, s.groundFrom)
		}
		c := newConstraintForTerm(s.watchType, b)
		watches := c.BuildWatches(init)
		s.constraints = append(s.constraints, c)
		seen := make(map[SolverLit]struct{}, len(watches))
		for _, w := range watches {
			if _, dup := seen[w]; dup {
				continue
			}
			seen[w] = struct{}{}
			s.watchToConstraints[w] = append(s.watchToConstraints[w], c)
			init.AddWatch(w)
		}
	}
	return nil
}

// Propagate implements spec §4.7's propagate sequence and §5's ordering
// rule: changes are processed in order, and within one literal every
// affected constraint's nogood-add-and-check runs before any watch
// replacement is applied to the host (new watch installed before the old
// one is dropped).
func (s *Shell) Propagate(ctl Control, changes []SolverLit) bool {
	for _, lit := range changes {
		constraints := append([]TheoryConstraint(nil), s.watchToConstraints[lit]...)
		type pendingReplacement struct {
			c TheoryConstraint
			r WatchReplacement
		}
		var deferred []pendingReplacement
		for _, c := range constraints {
			replacements, ok := c.Propagate(ctl, lit)
			if !ok {
				s.tracer.Tracef("propagator: host rejected nogood, aborting propagate call")
				return false
			}
			for _, r := range replacements {
				deferred = append(deferred, pendingReplacement{c: c, r: r})
			}
		}
		for _, p := range deferred {
			s.applyReplacement(ctl, p.c, p.r)
		}
	}
	return true
}

func (s *Shell) applyReplacement(ctl Control, c TheoryConstraint, r WatchReplacement) {
	alreadyWatching := false
	for _, existing := range s.watchToConstraints[r.New] {
		if existing == c {
			alreadyWatching = true
			break
		}
	}
	if !alreadyWatching {
		s.watchToConstraints[r.New] = append(s.watchToConstraints[r.New], c)
	}
	ctl.AddWatch(r.New)

	remaining := s.watchToConstraints[r.Old][:0]
	for _, existing := range s.watchToConstraints[r.Old] {
		if existing != c {
			remaining = append(remaining, existing)
		}
	}
	if len(remaining) == 0 {
		delete(s.watchToConstraints, r.Old)
		ctl.RemoveWatch(r.Old)
	} else {
		s.watchToConstraints[r.Old] = remaining
	}
}

// Undo implements spec §4.5/§4.7: every constraint observing a literal in
// changes gets a chance to revert propagate-time bookkeeping. Only the
// counting strategy does anything here.
func (s *Shell) Undo(asg Assignment, changes []SolverLit) {
	for _, lit := range changes {
		for _, c := range s.watchToConstraints[lit] {
			c.Undo(asg, lit)
		}
	}
}

// Check implements spec §4.7's check sequence: iterate every constraint
// and call its check; abort early if any returns false (host rejection).
func (s *Shell) Check(ctl Control) bool {
	for _, c := range s.constraints {
		if !c.Check(ctl) {
			return false
		}
	}
	return true
}
