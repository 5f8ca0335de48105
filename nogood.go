package untimed

import "sort"

// NogoodResult classifies a nogood against a (possibly partial) assignment.
type NogoodResult int8

const (
	// ResultNone means the nogood is neither a conflict nor a unit under
	// the current assignment: at least one literal is false, or (in
	// CheckAssignment) more than one literal is unassigned.
	ResultNone NogoodResult = iota
	// ResultUnit means exactly one literal is unassigned and every other
	// literal is true.
	ResultUnit
	// ResultConflict means every literal in the nogood is true.
	ResultConflict
)

// FormNogood builds the logical nogood for one constraint at assigned time
// a: the set of solver literals corresponding to each atom, resolved via
// lm.GrabLit (spec §4.4). It reports ok=false (the "None" return of the
// spec) in either sentinel case:
//
//   - some atom resolves to LitTrue: the conjunction can never be
//     falsified through this atom, so the nogood is vacuously unreachable;
//   - some atom resolves to LitFalse: the conjunction can never be made
//     entirely true, so the nogood is trivially satisfied.
//
// Otherwise it returns a deduplicated, sorted list of at most len(atoms)
// solver literals (property 3).
func FormNogood(lm *LiteralMap, fullSigSize int, atoms []AtomInfo, a int) (ng []SolverLit, ok bool) {
	seen := make(map[SolverLit]struct{}, len(atoms))
	for _, atom := range atoms {
		wallTime := a - atom.TimeMod
		il := EncodeInternal(atom.signedUntimed(), wallTime, fullSigSize)
		sl := lm.GrabLit(il)
		if sl == LitTrue || sl == LitFalse {
			return nil, false
		}
		seen[sl] = struct{}{}
	}

	ng = make([]SolverLit, 0, len(seen))
	for sl := range seen {
		ng = append(ng, sl)
	}
	sort.Slice(ng, func(i, j int) bool { return ng[i] < ng[j] })
	return ng, true
}

// CheckAssignment classifies a nogood under a partial assignment:
// CONFLICT if every literal is currently true, UNIT if exactly one literal
// is unassigned and the rest are true, NONE otherwise (including the case
// where some literal is already false).
func CheckAssignment(ng []SolverLit, asg Assignment) (result NogoodResult, unit SolverLit) {
	unassigned := 0
	var last SolverLit
	for _, lit := range ng {
		if asg.IsFalse(lit) {
			return ResultNone, 0
		}
		if !asg.IsTrue(lit) {
			unassigned++
			last = lit
		}
	}
	switch unassigned {
	case 0:
		return ResultConflict, 0
	case 1:
		return ResultUnit, last
	default:
		return ResultNone, 0
	}
}

// CheckAssignmentComplete specializes CheckAssignment for a total model:
// CONFLICT iff no literal of ng is false.
func CheckAssignmentComplete(ng []SolverLit, asg Assignment) NogoodResult {
	for _, lit := range ng {
		if asg.IsFalse(lit) {
			return ResultNone
		}
	}
	return ResultConflict
}
