package untimed

import "strconv"

// Prefix is the two-character marker on a constraint element that fixes
// its polarity and whether it refers to the current or the previous time
// step (spec §4.3, §6): `+.`, `+~`, `-.`, `-~`.
type Prefix string

const (
	PrefixPos     Prefix = "+."
	PrefixPosPrev Prefix = "+~"
	PrefixNeg     Prefix = "-."
	PrefixNegPrev Prefix = "-~"
)

// sign returns the polarity a Prefix carries.
func (p Prefix) sign() (int8, bool) {
	switch p {
	case PrefixPos, PrefixPosPrev:
		return 1, true
	case PrefixNeg, PrefixNegPrev:
		return -1, true
	default:
		return 0, false
	}
}

// timeMod returns the time_mod a Prefix carries: 1 for the "previous time
// step" operator (`~`), 0 for "current time step" (`.`).
func (p Prefix) timeMod() (int, bool) {
	switch p {
	case PrefixPosPrev, PrefixNegPrev:
		return 1, true
	case PrefixPos, PrefixNeg:
		return 0, true
	default:
		return 0, false
	}
}

// AtomInfo is one element of a TheoryConstraint's nogood template: a
// signed, time-shifted reference to an untimed literal (spec §3).
type AtomInfo struct {
	Sign       int8
	TimeMod    int
	UntimedLit UntimedLit
}

// signedUntimed returns the signed untimed literal this atom refers to,
// independent of time.
func (a AtomInfo) signedUntimed() UntimedLit {
	return UntimedLit(int32(a.Sign) * int32(a.UntimedLit))
}

// ConstraintElement is one `pfx · p(args)` element of a grounded
// `&constraint{...}` theory term, before it is resolved against a
// SignatureRegistry.
type ConstraintElement struct {
	Prefix  Prefix
	Functor string
	Args    []string // non-time arguments only
	Arity   int       // including the trailing time argument
}

// ConstraintTerm is one grounded `constraint(tmin?, tmax, id?){...}`
// theory atom, before its elements are resolved into AtomInfo values.
type ConstraintTerm struct {
	TMin     int
	HasTMin  bool
	TMax     int
	Elements []ConstraintElement
	ID       string
	HasID    bool
}

// BuildAtoms resolves a ConstraintTerm's elements against reg, registering
// any new untimed-literal templates and signed signatures as it goes, and
// returns the constraint's atoms together with its normalized tmin/tmax.
// This is the parser/builder of spec §4.3.
func BuildAtoms(reg *SignatureRegistry, term ConstraintTerm) ([]AtomInfo, int, int, error) {
	tmin := 0
	if term.HasTMin {
		tmin = term.TMin
	}
	tmax := term.TMax
	if tmin > tmax || tmin < 0 {
		return nil, 0, 0, ConstructionError{Reason: "tmin must be non-negative and <= tmax"}
	}

	atoms := make([]AtomInfo, 0, len(term.Elements))
	for _, el := range term.Elements {
		sign, ok := el.Prefix.sign()
		if !ok {
			return nil, 0, 0, ConstructionError{Reason: "unknown prefix " + string(el.Prefix)}
		}
		timeMod, ok := el.Prefix.timeMod()
		if !ok {
			return nil, 0, 0, ConstructionError{Reason: "unknown prefix " + string(el.Prefix)}
		}
		reg.AddSigned(sign, el.Functor, el.Arity)
		id := reg.Register(el.Functor, el.Args)
		atoms = append(atoms, AtomInfo{Sign: sign, TimeMod: timeMod, UntimedLit: id})
	}

	return atoms, tmin, tmax, nil
}

func parseTime(s string) (int, error) {
	t, err := strconv.Atoi(s)
	if err != nil {
		return 0, err
	}
	return t, nil
}
