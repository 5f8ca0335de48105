package untimed

// Handler implements spec §4.8's theory handler: it optionally partitions
// constraints by their trailing id term, building one Shell per distinct
// id so each propagator only ever sees its own constraints. Signature
// declarations are shared across every partition, since they only feed
// the registry, not a specific propagator.
type Handler struct {
	watchType  WatchType
	lock       LockPolicy
	groundUpTo int
	groundFrom int
	useIDs     bool
	opts       []Option
}

// NewHandler returns a Handler configured to build Shells with the given
// watch strategy, locking policy and eager-grounding ranges. When useIDs
// is true, Propagators returns one Shell per distinct constraint id;
// otherwise it returns a single Shell covering every constraint.
func NewHandler(watchType WatchType, lock LockPolicy, groundUpTo, groundFrom int, useIDs bool, opts ...Option) *Handler {
	return &Handler{
		watchType:  watchType,
		lock:       lock,
		groundUpTo: groundUpTo,
		groundFrom: groundFrom,
		useIDs:     useIDs,
		opts:       opts,
	}
}

type idKey struct {
	id    string
	hasID bool
}

// idFilteredInit presents only the theory atoms belonging to one id
// partition: every signature declaration (they feed the registry only,
// spec §4.8) plus the constraint terms matching id/hasID. Every other
// method is promoted straight through to the embedded Init.
type idFilteredInit struct {
	Init
	key idKey
}

func (f idFilteredInit) TheoryAtoms() []TheoryAtom {
	all := f.Init.TheoryAtoms()
	out := make([]TheoryAtom, 0, len(all))
	for _, ta := range all {
		switch {
		case ta.Decl != nil:
			out = append(out, ta)
		case ta.Term != nil && ta.Term.HasID == f.key.hasID && ta.Term.ID == f.key.id:
			out = append(out, ta)
		}
	}
	return out
}

// Propagators builds and initializes every Shell this Handler is
// responsible for, registering each with the host via init.
func (h *Handler) Propagators(init Init) ([]*Shell, error) {
	if !h.useIDs {
		s := NewShell(h.watchType, h.lock, h.groundUpTo, h.groundFrom, h.opts...)
		if err := s.Init(init); err != nil {
			return nil, err
		}
		return []*Shell{s}, nil
	}

	seen := make(map[idKey]struct{})
	var order []idKey
	for _, ta := range init.TheoryAtoms() {
		if ta.Term == nil {
			continue
		}
		k := idKey{id: ta.Term.ID, hasID: ta.Term.HasID}
		if _, ok := seen[k]; !ok {
			seen[k] = struct{}{}
			order = append(order, k)
		}
	}

	shells := make([]*Shell, 0, len(order))
	for _, k := range order {
		s := NewShell(h.watchType, h.lock, h.groundUpTo, h.groundFrom, h.opts...)
		if err := s.Init(idFilteredInit{Init: init, key: k}); err != nil {
			return nil, err
		}
		shells = append(shells, s)
	}
	return shells, nil
}
