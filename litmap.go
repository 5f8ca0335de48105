package untimed

// SolverLit is the opaque signed literal used by the host CDCL solver.
// The sentinels LitTrue and LitFalse stand for "always true" and "always
// false" respectively, exactly as the host's own sentinel literals do.
type SolverLit int32

const (
	// LitTrue is the sentinel meaning "always true".
	LitTrue SolverLit = 1
	// LitFalse is the sentinel meaning "always false".
	LitFalse SolverLit = -1
)

// GroundAtom is one atom the grounder produced: its solver literal and its
// argument list, with the time index always last. The core never
// interprets argument values beyond matching them against a registered
// template and parsing the trailing one as an integer time.
type GroundAtom struct {
	Functor string
	Args    []string
	Lit     SolverLit
}

// LiteralMap is the write-once-during-init, read-only-during-search
// bidirectional table between internal literals (untimed_lit, time) and
// solver literals (spec §4.2).
type LiteralMap struct {
	idToLit  map[InternalLit]SolverLit
	litToIDs map[SolverLit]map[InternalLit]struct{}
}

// NewLiteralMap returns an empty LiteralMap.
func NewLiteralMap() *LiteralMap {
	return &LiteralMap{
		idToLit:  make(map[InternalLit]SolverLit),
		litToIDs: make(map[SolverLit]map[InternalLit]struct{}),
	}
}

// insert records the correspondence between an internal literal and a
// solver literal. Called only during population.
func (m *LiteralMap) insert(il InternalLit, sl SolverLit) {
	m.idToLit[il] = sl
	set, ok := m.litToIDs[sl]
	if !ok {
		set = make(map[InternalLit]struct{})
		m.litToIDs[sl] = set
	}
	set[il] = struct{}{}
}

// GrabLit returns the solver literal corresponding to an internal literal,
// applying the sentinel rules of spec §4.2 when no such literal was ever
// registered:
//
//   - a positive internal literal that was never registered means that
//     atom does not exist for that time, so the positive literal is false
//     (LitFalse);
//   - a negative internal literal that was never registered is vacuously
//     true (LitTrue).
func (m *LiteralMap) GrabLit(il InternalLit) SolverLit {
	if sl, ok := m.idToLit[il]; ok {
		return sl
	}
	if il > 0 {
		return LitFalse
	}
	return LitTrue
}

// InternalLitsOf returns every internal literal that maps to the given
// solver literal, in no particular order.
func (m *LiteralMap) InternalLitsOf(sl SolverLit) []InternalLit {
	set := m.litToIDs[sl]
	out := make([]InternalLit, 0, len(set))
	for il := range set {
		out = append(out, il)
	}
	return out
}

// Populate implements the population rule of spec §4.2: for every
// (sign, signature) registered in the SignatureRegistry, enumerate ground
// atoms matching that signature, split off the trailing time argument,
// match the remaining arguments against the registered template and, on a
// match, insert the (internal_lit*sign) <-> (solver_lit*sign) pair.
//
// byATime matches (functor, arity) to the ground atoms the grounder
// produced for that signature (spec §6: init.symbolic_atoms.by_signature).
func (m *LiteralMap) Populate(reg *SignatureRegistry, byATime func(Signature) []GroundAtom) error {
	fullSig := reg.Size()
	for _, ss := range reg.Signed() {
		for _, atom := range byATime(ss.Signature) {
			if len(atom.Args) == 0 {
				return ConstructionError{Reason: "ground atom " + ss.Functor + " has no time argument"}
			}
			timeArg := atom.Args[len(atom.Args)-1]
			templateArgs := atom.Args[:len(atom.Args)-1]
			time, err := parseTime(timeArg)
			if err != nil {
				return ConstructionError{Reason: err.Error()}
			}
			key := templateKey{functor: ss.Functor, args: joinArgs(templateArgs)}
			id, ok := reg.ids[key]
			if !ok {
				// This ground atom's non-time arguments don't correspond
				// to any template a constraint referenced; nothing to map.
				continue
			}
			signedUntimed := UntimedLit(int32(ss.Sign) * int32(id))
			il := EncodeInternal(signedUntimed, time, fullSig)
			sl := atom.Lit
			if ss.Sign < 0 {
				sl = negateSolverLit(sl)
			}
			m.insert(il, sl)
		}
	}
	return nil
}

func negateSolverLit(sl SolverLit) SolverLit {
	switch sl {
	case LitTrue:
		return LitFalse
	case LitFalse:
		return LitTrue
	default:
		return -sl
	}
}
